package search

import (
	"errors"
	"fmt"
)

type ErrorCode string

const (
	ErrorInvalidInput    ErrorCode = "INVALID_INPUT"
	ErrorUnauthenticated ErrorCode = "UNAUTHENTICATED"
	ErrorNotFound        ErrorCode = "NOT_FOUND"
	ErrorConfiguration   ErrorCode = "CONFIGURATION_ERROR"
	ErrorUpstream        ErrorCode = "UPSTREAM_ERROR"
	ErrorInternal        ErrorCode = "INTERNAL_ERROR"
)

// Error is the coded failure every store and gateway operation returns.
// Code drives the HTTP mapping; Reason is a short machine-friendly tag;
// Err carries the underlying cause when there is one.
type Error struct {
	Code   ErrorCode
	Reason string
	Err    error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.Err == nil {
		return fmt.Sprintf("search: %s (%s)", e.Code, e.Reason)
	}
	return fmt.Sprintf("search: %s (%s): %v", e.Code, e.Reason, e.Err)
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

func newError(code ErrorCode, reason string, err error) *Error {
	return &Error{Code: code, Reason: reason, Err: err}
}

// CodeOf extracts the ErrorCode from err, or ErrorInternal when err is
// not a search error.
func CodeOf(err error) ErrorCode {
	var se *Error
	if errors.As(err, &se) {
		return se.Code
	}
	return ErrorInternal
}
