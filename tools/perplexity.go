package tools

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// System instruction sent on every request. Single-turn: there is no
// conversation history, each query stands alone.
const searchSystemPrompt = "You are a helpful search assistant. Provide clear, concise, and accurate answers based on web search results. Format your response in markdown for readability."

// Answer returned when the provider replies 2xx but the payload carries
// no message content.
const NoResponseFallback = "No response received"

// ErrMissingAPIKey means no provider credential was configured in the
// environment. This is a deployment problem, not a per-request one.
var ErrMissingAPIKey = errors.New("perplexity: api key not set")

// HTTPStatusError preserves the provider's non-2xx status and error body
// for diagnostics.
type HTTPStatusError struct {
	StatusCode int
	Body       string
}

func (e *HTTPStatusError) Error() string {
	return fmt.Sprintf("perplexity api error %d: %s", e.StatusCode, e.Body)
}

// PerplexityClient calls the Perplexity chat-completions endpoint.
type PerplexityClient struct {
	BaseURL    string
	Model      string
	APIKey     string
	HTTPClient *http.Client
}

// NewPerplexityClient builds a client. baseURL and model fall back to the
// production endpoint and the "sonar" model when empty.
func NewPerplexityClient(baseURL, model, apiKey string) *PerplexityClient {
	if strings.TrimSpace(baseURL) == "" {
		baseURL = "https://api.perplexity.ai"
	}
	if strings.TrimSpace(model) == "" {
		model = "sonar"
	}
	return &PerplexityClient{
		BaseURL:    strings.TrimRight(baseURL, "/"),
		Model:      model,
		APIKey:     strings.TrimSpace(apiKey),
		HTTPClient: &http.Client{Timeout: 30 * time.Second},
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model           string        `json:"model"`
	Messages        []chatMessage `json:"messages"`
	ReturnCitations bool          `json:"return_citations"`
	ReturnImages    bool          `json:"return_images"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Citations []string `json:"citations"`
}

// Search sends a single-turn query and returns the answer text plus the
// citation URL list, in provider order. One best-effort round trip: no
// retry, no backoff.
func (p *PerplexityClient) Search(ctx context.Context, query string) (string, []string, error) {
	if p.APIKey == "" {
		return "", nil, ErrMissingAPIKey
	}

	reqBody := chatRequest{
		Model: p.Model,
		Messages: []chatMessage{
			{Role: "system", Content: searchSystemPrompt},
			{Role: "user", Content: query},
		},
		ReturnCitations: true,
		ReturnImages:    false,
	}

	b, _ := json.Marshal(reqBody)

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		p.BaseURL+"/chat/completions",
		bytes.NewReader(b),
	)
	if err != nil {
		return "", nil, err
	}
	req.Header.Set("Authorization", "Bearer "+p.APIKey)
	req.Header.Set("Content-Type", "application/json")

	client := p.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: 30 * time.Second}
	}

	resp, err := client.Do(req)
	if err != nil {
		return "", nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
		return "", nil, &HTTPStatusError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	var parsed chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", nil, err
	}

	answer := NoResponseFallback
	if len(parsed.Choices) > 0 && strings.TrimSpace(parsed.Choices[0].Message.Content) != "" {
		answer = parsed.Choices[0].Message.Content
	}

	return answer, parsed.Citations, nil
}
