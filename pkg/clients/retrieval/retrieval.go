package retrieval

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

// Client defines the narrow contract with the external knowledge-retrieval
// service. Callers treat any failure as empty context.
type Client interface {
	RetrieveContext(ctx context.Context, query string, k int) (string, error)
}

// APIClient is a resty-backed implementation of Client.
type APIClient struct {
	httpClient *resty.Client
}

// NewClient builds a retrieval service client for the given base URL.
func NewClient(baseURL string) *APIClient {
	client := resty.New().
		SetBaseURL(strings.TrimSuffix(baseURL, "/")).
		SetHeader("Content-Type", "application/json").
		SetTimeout(15 * time.Second)

	return &APIClient{httpClient: client}
}

type retrieveRequest struct {
	Query string `json:"query"`
	K     int    `json:"k"`
}

// Snippet is one scored passage returned by the retrieval service.
type Snippet struct {
	Text  string  `json:"text"`
	Score float64 `json:"score"`
}

type retrieveResponse struct {
	Context  string    `json:"context"`
	Snippets []Snippet `json:"snippets"`
}

// apiError mirrors the error payload returned by the retrieval service.
type apiError struct {
	Error struct {
		Message string `json:"message"`
		Code    int    `json:"code"`
	} `json:"error"`
}

// RetrieveContext fetches a context string for the query. When the service
// returns only scored snippets, they are joined into one context block.
func (c *APIClient) RetrieveContext(ctx context.Context, query string, k int) (string, error) {
	if k <= 0 {
		k = 3
	}

	result := new(retrieveResponse)
	apiErr := new(apiError)

	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetBody(retrieveRequest{Query: query, K: k}).
		SetResult(result).
		SetError(apiErr).
		Post("/retrieve")
	if err != nil {
		return "", fmt.Errorf("retrieval api call: %w", err)
	}

	if resp.StatusCode() >= http.StatusBadRequest {
		message := apiErr.Error.Message
		code := resp.StatusCode()
		if apiErr.Error.Code != 0 {
			code = apiErr.Error.Code
		}
		return "", fmt.Errorf("retrieval api error: code=%d, message=%s", code, message)
	}

	if result.Context != "" {
		return result.Context, nil
	}

	parts := make([]string, 0, len(result.Snippets))
	for _, s := range result.Snippets {
		if s.Text != "" {
			parts = append(parts, s.Text)
		}
	}
	return strings.Join(parts, "\n"), nil
}
