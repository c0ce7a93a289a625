package controllers

import (
	"io"
	"log"
	"net/http"
	"strings"

	"seeker/search"

	"github.com/gin-gonic/gin"
)

type SearchRequest struct {
	Query string `json:"query" form:"query"`
}

var (
	recentLimit = search.DefaultRecentLimit
	listLimit   = search.DefaultListLimit
)

// SetListLimits overrides the two history-view bounds from config.
func SetListLimits(recent, list int) {
	if recent > 0 {
		recentLimit = recent
	}
	if list > 0 {
		listLimit = list
	}
}

// GET /api/searches/recent (identity optional)
// Returns the caller's newest records, or an empty list with no session.
func GetRecentSearches(c *gin.Context) {
	svc := search.ServiceInstance(c)
	if svc == nil {
		RespondError(c, "search service not configured in context", http.StatusInternalServerError)
		return
	}

	items, err := svc.ListRecent(Identity(c), QueryLimit(c, recentLimit, recentLimit))
	if err != nil {
		RespondSearchError(c, err)
		return
	}
	RespondSuccess(c, gin.H{"searches": items})
}

// GET /api/searches (identity optional)
// The larger history view, same ordering.
func GetSearches(c *gin.Context) {
	svc := search.ServiceInstance(c)
	if svc == nil {
		RespondError(c, "search service not configured in context", http.StatusInternalServerError)
		return
	}

	items, err := svc.ListAll(Identity(c), QueryLimit(c, listLimit, listLimit))
	if err != nil {
		RespondSearchError(c, err)
		return
	}
	RespondSuccess(c, gin.H{"searches": items})
}

// POST /api/search (auth required)
// Forwards the query to the provider, records the answer, returns it.
func PerformSearch(c *gin.Context) {
	user, ok := GetUserLogged(c)
	if !ok {
		RespondError(c, "unauthorized", http.StatusUnauthorized)
		return
	}

	var req SearchRequest
	if err := c.Bind(&req); err != nil {
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(req.Query) == "" {
		RespondError(c, "query is required", http.StatusBadRequest)
		return
	}

	svc := search.ServiceInstance(c)
	if svc == nil {
		RespondError(c, "search service not configured in context", http.StatusInternalServerError)
		return
	}

	result, err := svc.PerformSearch(c.Request.Context(), user.ID, req.Query)
	if err != nil {
		log.Printf("search: user=%d query error: %v", user.ID, err)
		RespondSearchError(c, err)
		return
	}
	RespondSuccess(c, result)
}

// DELETE /api/searches/:id (auth required)
func DeleteSearch(c *gin.Context) {
	user, ok := GetUserLogged(c)
	if !ok {
		RespondError(c, "unauthorized", http.StatusUnauthorized)
		return
	}

	id, ok := ParamID(c, "id")
	if !ok {
		return
	}

	svc := search.ServiceInstance(c)
	if svc == nil {
		RespondError(c, "search service not configured in context", http.StatusInternalServerError)
		return
	}

	if err := svc.Delete(user.ID, id); err != nil {
		log.Printf("search: user=%d delete id=%d error: %v", user.ID, id, err)
		RespondSearchError(c, err)
		return
	}
	RespondSuccess(c, gin.H{"status": "deleted"})
}

// GET /api/searches/events (auth required)
// SSE stream of store-change events. Clients re-fetch the list views on
// every event; the event itself carries no record data.
func SearchEvents(c *gin.Context) {
	user, ok := GetUserLogged(c)
	if !ok {
		RespondError(c, "unauthorized", http.StatusUnauthorized)
		return
	}

	svc := search.ServiceInstance(c)
	if svc == nil {
		RespondError(c, "search service not configured in context", http.StatusInternalServerError)
		return
	}

	token, events := svc.Hub().Subscribe(user.ID)
	defer svc.Hub().Unsubscribe(user.ID, token)

	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Stream(func(w io.Writer) bool {
		select {
		case ev, open := <-events:
			if !open {
				return false
			}
			c.SSEvent("change", ev)
			return true
		case <-c.Request.Context().Done():
			return false
		}
	})
}
