package client

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"seeker/models"
	"seeker/search"
)

type mockAPI struct {
	result      search.Result
	searchErr   error
	deleteErr   error
	recent      []models.Search
	history     []models.Search
	listErr     error
	searchCalls int
	deleteCalls int
	lastQuery   string
	lastDeleted int64
}

func (m *mockAPI) PerformSearch(_ context.Context, query string) (search.Result, error) {
	m.searchCalls++
	m.lastQuery = query
	return m.result, m.searchErr
}

func (m *mockAPI) ListRecent(_ context.Context) ([]models.Search, error) {
	return m.recent, m.listErr
}

func (m *mockAPI) ListAll(_ context.Context) ([]models.Search, error) {
	return m.history, m.listErr
}

func (m *mockAPI) DeleteRecord(_ context.Context, id int64) error {
	m.deleteCalls++
	m.lastDeleted = id
	return m.deleteErr
}

func TestSubmit_Success(t *testing.T) {
	api := &mockAPI{
		result: search.Result{
			Response: "Paris",
			Sources:  []models.SearchSource{{Title: "Source 1", URL: "https://a.example"}},
		},
		recent: []models.Search{{ID: 1, Query: "capital of France"}},
	}
	ctl := NewController(api)

	ctl.Submit(context.Background(), "capital of France")

	st := ctl.State()
	require.False(t, st.IsSearching)
	require.Empty(t, st.ErrorMessage)
	require.NotNil(t, st.CurrentResult)
	require.Equal(t, "Paris", st.CurrentResult.Response)
	require.Equal(t, 1, api.searchCalls)
	require.Len(t, st.Recent, 1, "lists refresh after a successful search")
}

func TestSubmit_FailureSurfacesMessageAndClearsFlag(t *testing.T) {
	api := &mockAPI{searchErr: errors.New("search: UPSTREAM_ERROR (provider_status_error)")}
	ctl := NewController(api)

	ctl.Submit(context.Background(), "anything")

	st := ctl.State()
	require.False(t, st.IsSearching, "in-flight flag clears on failure too")
	require.Nil(t, st.CurrentResult)
	require.Contains(t, st.ErrorMessage, "UPSTREAM_ERROR")
}

func TestSubmit_EmptyInputIsNoOp(t *testing.T) {
	api := &mockAPI{}
	ctl := NewController(api)

	ctl.Submit(context.Background(), "   ")

	require.Zero(t, api.searchCalls)
	require.Empty(t, ctl.State().QueryText)
}

func TestSubmit_ClearsPreviousResultAndError(t *testing.T) {
	api := &mockAPI{searchErr: errors.New("boom")}
	ctl := NewController(api)

	ctl.Submit(context.Background(), "first")
	require.NotEmpty(t, ctl.State().ErrorMessage)

	api.searchErr = nil
	api.result = search.Result{Response: "second answer"}
	ctl.Submit(context.Background(), "second")

	st := ctl.State()
	require.Empty(t, st.ErrorMessage)
	require.Equal(t, "second answer", st.CurrentResult.Response)
}

func TestSubmit_IgnoredWhileInFlight(t *testing.T) {
	api := &mockAPI{}
	ctl := NewController(api)

	ctl.mu.Lock()
	ctl.state.IsSearching = true
	ctl.mu.Unlock()

	ctl.Submit(context.Background(), "second query")
	require.Zero(t, api.searchCalls)
}

func TestSelectHistoryEntry_RerunsSearchLive(t *testing.T) {
	api := &mockAPI{result: search.Result{Response: "fresh answer"}}
	ctl := NewController(api)
	ctl.ToggleHistory()

	ctl.SelectHistoryEntry(context.Background(), models.Search{
		ID:       3,
		Query:    "capital of France",
		Response: "stale stored answer",
	})

	st := ctl.State()
	require.False(t, st.ShowHistory, "panel closes on selection")
	require.Equal(t, "capital of France", st.QueryText)
	require.Equal(t, 1, api.searchCalls, "selection triggers a live search, not a replay")
	require.Equal(t, "capital of France", api.lastQuery)
	require.Equal(t, "fresh answer", st.CurrentResult.Response)
}

func TestDeleteEntry_Success(t *testing.T) {
	api := &mockAPI{history: []models.Search{}}
	ctl := NewController(api)

	ctl.DeleteEntry(context.Background(), models.Search{ID: 9})

	require.Equal(t, 1, api.deleteCalls)
	require.Equal(t, int64(9), api.lastDeleted)
	require.Empty(t, ctl.State().ErrorMessage)
}

func TestDeleteEntry_FailureIsSurfaced(t *testing.T) {
	api := &mockAPI{deleteErr: errors.New("search: NOT_FOUND (record_not_found)")}
	ctl := NewController(api)

	ctl.DeleteEntry(context.Background(), models.Search{ID: 9})

	require.Contains(t, ctl.State().ErrorMessage, "NOT_FOUND")
}

func TestRefresh_PopulatesBothViews(t *testing.T) {
	api := &mockAPI{
		recent:  []models.Search{{ID: 3}, {ID: 2}},
		history: []models.Search{{ID: 3}, {ID: 2}, {ID: 1}},
	}
	ctl := NewController(api)

	ctl.Refresh(context.Background())

	st := ctl.State()
	require.Len(t, st.Recent, 2)
	require.Len(t, st.History, 3)
}
