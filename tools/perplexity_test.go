package tools

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPerplexitySearch_Success(t *testing.T) {
	var gotAuth string
	var gotBody map[string]any

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/chat/completions", r.URL.Path)
		gotAuth = r.Header.Get("Authorization")

		raw, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		require.NoError(t, json.Unmarshal(raw, &gotBody))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"choices":[{"message":{"content":"Paris"}}],
			"citations":["https://a.example","https://b.example"]
		}`))
	}))
	defer srv.Close()

	client := NewPerplexityClient(srv.URL, "sonar", "pplx-test-key")

	answer, citations, err := client.Search(context.Background(), "capital of France")
	require.NoError(t, err)
	require.Equal(t, "Paris", answer)
	require.Equal(t, []string{"https://a.example", "https://b.example"}, citations)

	require.Equal(t, "Bearer pplx-test-key", gotAuth)
	require.Equal(t, "sonar", gotBody["model"])
	require.Equal(t, true, gotBody["return_citations"])
	require.Equal(t, false, gotBody["return_images"])

	msgs, ok := gotBody["messages"].([]any)
	require.True(t, ok)
	require.Len(t, msgs, 2)
	system := msgs[0].(map[string]any)
	user := msgs[1].(map[string]any)
	require.Equal(t, "system", system["role"])
	require.Contains(t, system["content"], "search assistant")
	require.Equal(t, "user", user["role"])
	require.Equal(t, "capital of France", user["content"])
}

func TestPerplexitySearch_EmptyPayloadFallsBack(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"choices":[],"citations":null}`))
	}))
	defer srv.Close()

	client := NewPerplexityClient(srv.URL, "", "pplx-test-key")

	answer, citations, err := client.Search(context.Background(), "anything")
	require.NoError(t, err)
	require.Equal(t, NoResponseFallback, answer)
	require.Empty(t, citations)
}

func TestPerplexitySearch_NonSuccessStatusPreservesBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"model overloaded"}`))
	}))
	defer srv.Close()

	client := NewPerplexityClient(srv.URL, "sonar", "pplx-test-key")

	_, _, err := client.Search(context.Background(), "anything")
	require.Error(t, err)

	var statusErr *HTTPStatusError
	require.ErrorAs(t, err, &statusErr)
	require.Equal(t, http.StatusInternalServerError, statusErr.StatusCode)
	require.Contains(t, statusErr.Body, "model overloaded")
}

func TestPerplexitySearch_MissingKeySkipsNetwork(t *testing.T) {
	called := false
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		called = true
	}))
	defer srv.Close()

	client := NewPerplexityClient(srv.URL, "sonar", "")

	_, _, err := client.Search(context.Background(), "anything")
	require.ErrorIs(t, err, ErrMissingAPIKey)
	require.False(t, called, "no request may leave the process without a credential")
}

func TestNewPerplexityClient_Defaults(t *testing.T) {
	client := NewPerplexityClient("", "", "key")
	require.Equal(t, "https://api.perplexity.ai", client.BaseURL)
	require.Equal(t, "sonar", client.Model)
	require.NotNil(t, client.HTTPClient)
}
