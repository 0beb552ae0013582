package itinerary

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"go.uber.org/zap"

	applog "github.com/janisto/travel-planner-api/internal/platform/logging"
)

const (
	defaultBaseURL = "https://api.openai.com/v1"
	defaultModel   = "gpt-4o"
	userAgent      = "travel-planner-api"

	maxTokens   = 2500
	temperature = 0.7

	// Upper bound on an error body kept for logs.
	maxErrorDetail = 512
)

// Client implements Service against an OpenAI-compatible chat completions endpoint.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	model      string
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL sets a custom base URL (useful for testing).
func WithBaseURL(url string) Option {
	return func(c *Client) {
		if url != "" {
			c.baseURL = strings.TrimRight(url, "/")
		}
	}
}

// WithAPIKey sets the bearer token. Without one Generate returns ErrNotConfigured.
func WithAPIKey(key string) Option {
	return func(c *Client) {
		c.apiKey = key
	}
}

// WithModel overrides the chat model.
func WithModel(model string) Option {
	return func(c *Client) {
		if model != "" {
			c.model = model
		}
	}
}

// NewClient creates a new chat completions client.
func NewClient(httpClient *http.Client, opts ...Option) *Client {
	c := &Client{
		httpClient: httpClient,
		baseURL:    defaultBaseURL,
		model:      defaultModel,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Wire types for the chat completions API.

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	MaxTokens   int           `json:"max_tokens"`
	Temperature float64       `json:"temperature"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

type chatError struct {
	Error struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error"`
}

// Generate asks the model for an itinerary and returns the first choice, trimmed.
func (c *Client) Generate(ctx context.Context, req Request) (string, error) {
	if c.apiKey == "" {
		return "", ErrNotConfigured
	}

	payload := chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: userPrompt(req)},
		},
		MaxTokens:   maxTokens,
		Temperature: temperature,
	}

	resp, err := c.doRequest(ctx, "/chat/completions", payload)
	if err != nil {
		applog.LogError(ctx, "chat completion request failed", err)
		return "", &UpstreamError{Kind: UpstreamErrorKindUpstream, Detail: err.Error(), cause: ErrUpstream}
	}
	defer func() { _ = resp.Body.Close() }()

	var out chatResponse
	if err := c.decodeResponse(ctx, resp, &out); err != nil {
		return "", err
	}
	if len(out.Choices) == 0 {
		return "", &UpstreamError{
			Kind:   UpstreamErrorKindUpstream,
			Status: resp.StatusCode,
			Detail: "response contained no choices",
			cause:  ErrUpstream,
		}
	}
	return strings.TrimSpace(out.Choices[0].Message.Content), nil
}

func (c *Client) doRequest(ctx context.Context, path string, body any) (*http.Response, error) {
	buf, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("encoding request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(buf))
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	return c.httpClient.Do(req)
}

func (c *Client) decodeResponse(ctx context.Context, resp *http.Response, target any) error {
	if resp.StatusCode == http.StatusOK {
		if err := json.NewDecoder(resp.Body).Decode(target); err != nil {
			applog.LogError(ctx, "chat completion decode failed", err)
			return &UpstreamError{
				Kind:   UpstreamErrorKindUpstream,
				Status: resp.StatusCode,
				Detail: fmt.Sprintf("decoding response: %v", err),
				cause:  ErrUpstream,
			}
		}
		return nil
	}

	upstreamErr := upstreamErrorFromResponse(resp)
	switch resp.StatusCode {
	case http.StatusTooManyRequests:
		upstreamErr.Kind = UpstreamErrorKindRateLimited
		upstreamErr.cause = ErrRateLimited
		applog.LogWarn(ctx, "chat completion rate limited",
			zap.Int("status", resp.StatusCode),
			zap.String("Retry-After", upstreamErr.RetryAfter),
		)
	case http.StatusUnauthorized, http.StatusForbidden:
		upstreamErr.Kind = UpstreamErrorKindUnauthorized
		upstreamErr.cause = ErrUnauthorized
		applog.LogError(ctx, "chat completion credentials rejected", upstreamErr, zap.Int("status", resp.StatusCode))
	default:
		applog.LogError(ctx, "chat completion failed", upstreamErr, zap.Int("status", resp.StatusCode))
	}
	return upstreamErr
}

func upstreamErrorFromResponse(resp *http.Response) *UpstreamError {
	return &UpstreamError{
		Kind:       UpstreamErrorKindUpstream,
		Status:     resp.StatusCode,
		RetryAfter: strings.TrimSpace(resp.Header.Get("Retry-After")),
		Detail:     errorDetail(resp.Body),
		cause:      ErrUpstream,
	}
}

func errorDetail(body io.Reader) string {
	raw, err := io.ReadAll(io.LimitReader(body, maxErrorDetail))
	if err != nil || len(raw) == 0 {
		return ""
	}
	var parsed chatError
	if json.Unmarshal(raw, &parsed) == nil && parsed.Error.Message != "" {
		return parsed.Error.Message
	}
	return strings.TrimSpace(string(raw))
}

// Compile-time interface check
var _ Service = (*Client)(nil)
