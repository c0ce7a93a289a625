package client

import (
	"context"

	"seeker/models"
	"seeker/search"
)

// LocalAPI binds a search.Service to one session identity, giving the
// controller an in-process backend. Useful for tests and for embedding
// the assistant without the HTTP layer.
type LocalAPI struct {
	svc      *search.Service
	identity int64
}

func NewLocalAPI(svc *search.Service, identity int64) *LocalAPI {
	return &LocalAPI{svc: svc, identity: identity}
}

func (a *LocalAPI) PerformSearch(ctx context.Context, query string) (search.Result, error) {
	return a.svc.PerformSearch(ctx, a.identity, query)
}

func (a *LocalAPI) ListRecent(_ context.Context) ([]models.Search, error) {
	return a.svc.ListRecent(a.identity, 0)
}

func (a *LocalAPI) ListAll(_ context.Context) ([]models.Search, error) {
	return a.svc.ListAll(a.identity, 0)
}

func (a *LocalAPI) DeleteRecord(_ context.Context, id int64) error {
	return a.svc.Delete(a.identity, id)
}
