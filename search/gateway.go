package search

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"seeker/models"
	"seeker/tools"

	"github.com/jinzhu/gorm"
)

// Provider is the outbound search API: one query in, answer text and
// citation URLs out. tools.PerplexityClient is the production
// implementation.
type Provider interface {
	Search(ctx context.Context, query string) (answer string, citations []string, err error)
}

// Result is what the caller gets back from a successful search. The same
// data was durably recorded before Result is ever returned.
type Result struct {
	Response string                `json:"response"`
	Sources  []models.SearchSource `json:"sources"`
}

// Service bundles the record store, the provider and the change hub into
// the operations the API layer exposes.
type Service struct {
	store    *Store
	provider Provider
	hub      *Hub
}

func NewService(db *gorm.DB, provider Provider) *Service {
	return &Service{
		store:    NewStore(db),
		provider: provider,
		hub:      NewHub(),
	}
}

func (s *Service) Store() *Store {
	return s.store
}

func (s *Service) Hub() *Hub {
	return s.hub
}

// ListRecent proxies the store's bounded recent view.
func (s *Service) ListRecent(identity int64, limit int) ([]models.Search, error) {
	return s.store.ListRecent(identity, limit)
}

// ListAll proxies the store's larger history view.
func (s *Service) ListAll(identity int64, limit int) ([]models.Search, error) {
	return s.store.ListAll(identity, limit)
}

// Delete removes a record and notifies the owner's subscribers.
func (s *Service) Delete(identity int64, recordID int64) error {
	if err := s.store.Delete(identity, recordID); err != nil {
		return err
	}
	s.hub.Publish(identity, Event{Kind: EventDeleted, RecordID: recordID})
	return nil
}

// PerformSearch sends query to the provider, persists the answer with
// its synthesized source list, and returns both. The caller never sees
// an answer that was not recorded first: a failed insert fails the whole
// operation. One provider round trip, no retry.
func (s *Service) PerformSearch(ctx context.Context, identity int64, query string) (Result, error) {
	if identity == NoIdentity {
		return Result{}, newError(ErrorUnauthenticated, "no_identity", nil)
	}
	if strings.TrimSpace(query) == "" {
		return Result{}, newError(ErrorInvalidInput, "empty_query", nil)
	}

	answer, citations, err := s.provider.Search(ctx, query)
	if err != nil {
		return Result{}, mapProviderError(err)
	}

	sources := make([]models.SearchSource, 0, len(citations))
	for i, url := range citations {
		sources = append(sources, models.SearchSource{
			Title: fmt.Sprintf("Source %d", i+1),
			URL:   url,
		})
	}

	recordID, err := s.store.Insert(identity, query, answer, sources)
	if err != nil {
		return Result{}, err
	}
	s.hub.Publish(identity, Event{Kind: EventInserted, RecordID: recordID})

	return Result{Response: answer, Sources: sources}, nil
}

func mapProviderError(err error) error {
	if errors.Is(err, tools.ErrMissingAPIKey) {
		return newError(ErrorConfiguration, "provider_key_missing", err)
	}
	var statusErr *tools.HTTPStatusError
	if errors.As(err, &statusErr) {
		return newError(ErrorUpstream, "provider_status_error", err)
	}
	return newError(ErrorUpstream, "provider_unreachable", err)
}
