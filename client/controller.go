// Package client holds the UI-facing state controller: the transient
// state of the search screen (query text, in-flight flag, last result or
// error, history panel) plus the two cached history views, orchestrated
// over the backend's client-facing operations. It is transport-agnostic:
// API can be the in-process search.Service or an HTTP client, and a
// change-event stream feeds Refresh.
package client

import (
	"context"
	"log"
	"strings"
	"sync"

	"seeker/models"
	"seeker/search"
)

// API is the set of operations the UI consumes. Identity is implicit in
// the API value (a session-bound HTTP client, or a service wrapper that
// closes over the user id) - the controller never handles identities.
type API interface {
	PerformSearch(ctx context.Context, query string) (search.Result, error)
	ListRecent(ctx context.Context) ([]models.Search, error)
	ListAll(ctx context.Context) ([]models.Search, error)
	DeleteRecord(ctx context.Context, id int64) error
}

// State is a snapshot of everything the search screen renders.
type State struct {
	QueryText     string
	IsSearching   bool
	CurrentResult *search.Result
	ErrorMessage  string
	ShowHistory   bool
	Recent        []models.Search
	History       []models.Search
}

// Controller serializes UI actions over an API. At most one search is in
// flight at a time: a Submit while searching is ignored, mirroring the
// disabled submit control in the UI.
type Controller struct {
	api API

	mu    sync.Mutex
	state State
}

func NewController(api API) *Controller {
	return &Controller{api: api}
}

// State returns a copy safe to render from.
func (ctl *Controller) State() State {
	ctl.mu.Lock()
	defer ctl.mu.Unlock()
	return ctl.state
}

// SetQueryText mirrors the input field.
func (ctl *Controller) SetQueryText(text string) {
	ctl.mu.Lock()
	defer ctl.mu.Unlock()
	ctl.state.QueryText = text
}

// ToggleHistory flips the history panel.
func (ctl *Controller) ToggleHistory() {
	ctl.mu.Lock()
	defer ctl.mu.Unlock()
	ctl.state.ShowHistory = !ctl.state.ShowHistory
}

// Submit runs one search. Empty (after trimming) input is a no-op, and
// so is a submit while another search is in flight. The in-flight flag
// always clears, on success and on failure alike.
func (ctl *Controller) Submit(ctx context.Context, text string) {
	if strings.TrimSpace(text) == "" {
		return
	}

	ctl.mu.Lock()
	if ctl.state.IsSearching {
		ctl.mu.Unlock()
		return
	}
	ctl.state.QueryText = text
	ctl.state.IsSearching = true
	ctl.state.ErrorMessage = ""
	ctl.state.CurrentResult = nil
	ctl.mu.Unlock()

	result, err := ctl.api.PerformSearch(ctx, text)

	ctl.mu.Lock()
	if err != nil {
		ctl.state.ErrorMessage = err.Error()
	} else {
		ctl.state.CurrentResult = &result
	}
	ctl.state.IsSearching = false
	ctl.mu.Unlock()

	if err == nil {
		ctl.Refresh(ctx)
	}
}

// SelectHistoryEntry closes the panel and re-runs the stored query live.
// Deliberately a fresh provider call (and a fresh record), not a replay
// of the stored answer.
func (ctl *Controller) SelectHistoryEntry(ctx context.Context, record models.Search) {
	ctl.mu.Lock()
	ctl.state.QueryText = record.Query
	ctl.state.ShowHistory = false
	ctl.mu.Unlock()

	ctl.Submit(ctx, record.Query)
}

// DeleteEntry removes a record. Failures are logged and surfaced in
// ErrorMessage instead of being dropped.
func (ctl *Controller) DeleteEntry(ctx context.Context, record models.Search) {
	if err := ctl.api.DeleteRecord(ctx, record.ID); err != nil {
		log.Printf("client: delete record %d: %v", record.ID, err)
		ctl.mu.Lock()
		ctl.state.ErrorMessage = err.Error()
		ctl.mu.Unlock()
		return
	}
	ctl.Refresh(ctx)
}

// Refresh re-queries both history views. Call it after own mutations
// and on every change event from the server stream.
func (ctl *Controller) Refresh(ctx context.Context) {
	recent, err := ctl.api.ListRecent(ctx)
	if err != nil {
		log.Printf("client: refresh recent: %v", err)
		return
	}
	history, err := ctl.api.ListAll(ctx)
	if err != nil {
		log.Printf("client: refresh history: %v", err)
		return
	}

	ctl.mu.Lock()
	ctl.state.Recent = recent
	ctl.state.History = history
	ctl.mu.Unlock()
}
