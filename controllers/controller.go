package controllers

import (
	"net/http"

	"seeker/search"

	"github.com/gin-gonic/gin"
)

func RespondError(c *gin.Context, msg string, code int) {
	c.JSON(code, gin.H{"error": msg})
}

func RespondSuccess(c *gin.Context, payload any) {
	c.JSON(200, payload)
}

// RespondSearchError maps the domain error taxonomy onto HTTP statuses.
// Every failure reaches the UI as a single human-readable message.
func RespondSearchError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch search.CodeOf(err) {
	case search.ErrorInvalidInput:
		status = http.StatusBadRequest
	case search.ErrorUnauthenticated:
		status = http.StatusUnauthorized
	case search.ErrorNotFound:
		status = http.StatusNotFound
	case search.ErrorUpstream:
		status = http.StatusBadGateway
	}
	RespondError(c, err.Error(), status)
}
