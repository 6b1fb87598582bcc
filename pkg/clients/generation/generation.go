package generation

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

const defaultMaxTokens = 300

// Client defines the narrow contract with the external text-generation
// service. Callers treat any failure as "no AI insight".
type Client interface {
	GenerateText(ctx context.Context, prompt, contextText string, maxTokens int) (string, error)
}

// APIClient is a resty-backed implementation of Client.
type APIClient struct {
	httpClient *resty.Client
}

// NewClient builds a generation service client for the given base URL.
func NewClient(baseURL string) *APIClient {
	client := resty.New().
		SetBaseURL(strings.TrimSuffix(baseURL, "/")).
		SetHeader("Content-Type", "application/json").
		SetTimeout(15 * time.Second)

	return &APIClient{httpClient: client}
}

type generateRequest struct {
	Prompt    string `json:"prompt"`
	Context   string `json:"context,omitempty"`
	MaxTokens int    `json:"max_tokens,omitempty"`
}

type generateResponse struct {
	Text string `json:"text"`
}

// apiError mirrors the error payload returned by the generation service.
type apiError struct {
	Error struct {
		Message string `json:"message"`
		Code    int    `json:"code"`
	} `json:"error"`
}

// GenerateText sends a prompt with optional grounding context and returns the
// generated text.
func (c *APIClient) GenerateText(ctx context.Context, prompt, contextText string, maxTokens int) (string, error) {
	if maxTokens <= 0 {
		maxTokens = defaultMaxTokens
	}

	result := new(generateResponse)
	apiErr := new(apiError)

	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetBody(generateRequest{Prompt: prompt, Context: contextText, MaxTokens: maxTokens}).
		SetResult(result).
		SetError(apiErr).
		Post("/generate")
	if err != nil {
		return "", fmt.Errorf("generation api call: %w", err)
	}

	if resp.StatusCode() >= http.StatusBadRequest {
		message := apiErr.Error.Message
		code := resp.StatusCode()
		if apiErr.Error.Code != 0 {
			code = apiErr.Error.Code
		}
		return "", fmt.Errorf("generation api error: code=%d, message=%s", code, message)
	}

	if strings.TrimSpace(result.Text) == "" {
		return "", fmt.Errorf("empty response from generation service")
	}

	return result.Text, nil
}
