package groq

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/personachat/persona"
)

// defaultTimeout bounds each request/response cycle. There is no retry;
// a timed-out turn is terminal.
const defaultTimeout = 30 * time.Second

// Interface compliance check.
var _ persona.Completer = (*Client)(nil)

// Client implements [persona.Completer] for the Groq chat completions API.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
	logger     zerolog.Logger
}

// Option configures a [Client].
type Option func(*Client)

// WithBaseURL sets the API base URL. Useful for testing with httptest.
func WithBaseURL(url string) Option {
	return func(c *Client) { c.baseURL = strings.TrimRight(url, "/") }
}

// WithHTTPClient sets a custom HTTP client. The caller is responsible for
// its timeout configuration.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithTimeout sets the per-request timeout on the default HTTP client.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.httpClient.Timeout = d }
}

// WithLogger sets the logger used for per-call debug logging.
func WithLogger(logger zerolog.Logger) Option {
	return func(c *Client) { c.logger = logger }
}

// New creates a Groq [Client]. The apiKey is the default key; a non-empty
// [persona.Request.APIKey] overrides it per call. An empty apiKey is
// allowed at construction time because the key may be supplied
// interactively later.
func New(apiKey string, opts ...Option) *Client {
	c := &Client{
		apiKey:     apiKey,
		baseURL:    defaultBaseURL,
		httpClient: &http.Client{Timeout: defaultTimeout},
		logger:     zerolog.Nop(),
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// Complete sends one non-streaming chat completion request and returns the
// first choice's message content.
//
// Failure taxonomy: non-200 responses yield an [*APIError]; timeouts
// (client timeout, context deadline, transport timeout) are wrapped with
// [persona.ErrTimeout]; a 200 response without reply text yields
// [persona.ErrEmptyReply].
func (c *Client) Complete(ctx context.Context, req persona.Request) (string, error) {
	key := req.APIKey
	if key == "" {
		key = c.apiKey
	}
	if key == "" {
		return "", fmt.Errorf("groq: %w", persona.ErrMissingAPIKey)
	}
	if err := req.Validate(); err != nil {
		return "", fmt.Errorf("groq: %w", err)
	}

	body, err := json.Marshal(buildRequestBody(req))
	if err != nil {
		return "", fmt.Errorf("groq: marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+completionsPath, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("groq: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+key)

	start := time.Now()
	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		if isTimeout(err) {
			return "", fmt.Errorf("groq: %w", persona.ErrTimeout)
		}
		return "", fmt.Errorf("groq: %w", err)
	}
	defer resp.Body.Close()

	c.logger.Debug().
		Int("status", resp.StatusCode).
		Dur("elapsed", time.Since(start)).
		Int("messages", len(req.Messages)).
		Msg("chat completion request")

	if resp.StatusCode != http.StatusOK {
		return "", parseHTTPError(resp)
	}

	var apiResp apiResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		if isTimeout(err) {
			return "", fmt.Errorf("groq: %w", persona.ErrTimeout)
		}
		return "", fmt.Errorf("groq: decode response: %w", err)
	}

	if len(apiResp.Choices) == 0 || apiResp.Choices[0].Message.Content == "" {
		return "", fmt.Errorf("groq: %w", persona.ErrEmptyReply)
	}
	return apiResp.Choices[0].Message.Content, nil
}

// buildRequestBody maps a persona.Request to the wire shape, filling in
// client defaults for zero-valued fields.
func buildRequestBody(req persona.Request) apiRequest {
	model := req.Model
	if model == "" {
		model = defaultModel
	}
	maxTokens := req.MaxTokens
	if maxTokens == 0 {
		maxTokens = defaultMaxTokens
	}
	messages := make([]apiMessage, 0, len(req.Messages))
	for _, m := range req.Messages {
		messages = append(messages, apiMessage{Role: string(m.Role), Content: m.Content})
	}
	return apiRequest{
		Model:       model,
		Messages:    messages,
		Temperature: req.Temperature,
		MaxTokens:   maxTokens,
		Stream:      false,
	}
}

// APIError represents a non-200 response from the API.
type APIError struct {
	StatusCode int
	Type       string
	Message    string
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("groq: unexpected status %d", e.StatusCode)
	}
	return fmt.Sprintf("groq: unexpected status %d: %s", e.StatusCode, e.Message)
}

// parseHTTPError reads a non-200 response body and returns an *APIError.
// The OpenAI-style error envelope is parsed when present; otherwise the
// raw body is used as the message.
func parseHTTPError(resp *http.Response) error {
	body, err := io.ReadAll(io.LimitReader(resp.Body, 8192))
	apiErr := &APIError{StatusCode: resp.StatusCode}
	if err != nil {
		return apiErr
	}

	var envelope apiErrorResponse
	if jsonErr := json.Unmarshal(body, &envelope); jsonErr == nil && envelope.Error.Message != "" {
		apiErr.Type = envelope.Error.Type
		apiErr.Message = envelope.Error.Message
		return apiErr
	}
	apiErr.Message = strings.TrimSpace(string(body))
	return apiErr
}

// isTimeout reports whether err is any flavor of deadline expiry: the
// http.Client timeout, a context deadline, or a transport-level timeout.
func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var ne net.Error
	return errors.As(err, &ne) && ne.Timeout()
}
