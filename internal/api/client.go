// Package api is the typed HTTP client for the TaskFlow REST backend.
package api

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"reflect"
	"strings"
	"time"

	json "github.com/goccy/go-json"
	"github.com/google/uuid"
)

// DefaultTimeout bounds a single request when the caller sets none
const DefaultTimeout = 10 * time.Second

// TokenSource supplies the bearer credential attached to each request
type TokenSource interface {
	Token(ctx context.Context) string
}

// TokenStore is a TokenSource that can also be updated (login/logout)
type TokenStore interface {
	TokenSource
	Set(ctx context.Context, token string) error
}

// Client issues JSON requests against a base URL
type Client struct {
	baseURL    string
	httpClient *http.Client
	timeout    time.Duration
	tokens     TokenSource
	logger     *slog.Logger
}

// Option configures a Client
type Option func(*Client)

// WithHTTPClient replaces the underlying http.Client
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) {
		c.httpClient = h
	}
}

// WithTimeout sets the per-request timeout. It applies after every other
// option and never modifies an http.Client passed to WithHTTPClient.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.timeout = d
		}
	}
}

// WithLogger sets the logger used for request diagnostics
func WithLogger(l *slog.Logger) Option {
	return func(c *Client) {
		c.logger = l
	}
}

// NewClient creates a client for baseURL. tokens may be nil for anonymous use.
func NewClient(baseURL string, tokens TokenSource, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: DefaultTimeout},
		tokens:     tokens,
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.timeout > 0 {
		hc := *c.httpClient
		hc.Timeout = c.timeout
		c.httpClient = &hc
	}
	return c
}

// BaseURL returns the configured base URL
func (c *Client) BaseURL() string {
	return c.baseURL
}

// RequestOptions carries the optional parts of a request
type RequestOptions struct {
	// Body is JSON-encoded when non-nil
	Body any
	// Query values that are nil (or nil pointers) are omitted
	Query map[string]any
}

// Request performs method against path and decodes a success body into out.
// A 204 response, or a nil out, leaves out untouched. Non-2xx responses
// return *Error; transport failures return *NetworkError.
func (c *Client) Request(ctx context.Context, method, path string, opts RequestOptions, out any) error {
	fullURL := c.baseURL + path + buildQuery(opts.Query)
	requestID := uuid.NewString()

	var body io.Reader
	if opts.Body != nil {
		payload, err := json.Marshal(opts.Body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, fullURL, body)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", requestID)
	if c.tokens != nil {
		if token := c.tokens.Token(ctx); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn("request failed",
			"method", method, "path", path, "request_id", requestID, "error", err)
		return &NetworkError{Method: method, URL: fullURL, Err: err}
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			c.logger.Error("error closing response body", "error", closeErr)
		}
	}()

	c.logger.Debug("request completed",
		"method", method,
		"path", path,
		"status", resp.StatusCode,
		"duration", time.Since(start),
		"request_id", requestID,
	)

	if resp.StatusCode == http.StatusNoContent {
		return nil
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return &NetworkError{Method: method, URL: fullURL, Err: fmt.Errorf("reading response: %w", err)}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := newError(resp.StatusCode, raw)
		c.logger.Warn("request rejected",
			"method", method, "path", path, "status", resp.StatusCode,
			"message", apiErr.Message, "request_id", requestID)
		return apiErr
	}

	if out == nil || len(bytes.TrimSpace(raw)) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("failed to decode %s %s response: %w", method, path, err)
	}
	return nil
}

// Get issues a GET with query parameters
func (c *Client) Get(ctx context.Context, path string, query map[string]any, out any) error {
	return c.Request(ctx, http.MethodGet, path, RequestOptions{Query: query}, out)
}

// Post issues a POST with a JSON body
func (c *Client) Post(ctx context.Context, path string, body, out any) error {
	return c.Request(ctx, http.MethodPost, path, RequestOptions{Body: body}, out)
}

// Put issues a PUT with a JSON body
func (c *Client) Put(ctx context.Context, path string, body, out any) error {
	return c.Request(ctx, http.MethodPut, path, RequestOptions{Body: body}, out)
}

// Patch issues a PATCH with a JSON body
func (c *Client) Patch(ctx context.Context, path string, body, out any) error {
	return c.Request(ctx, http.MethodPatch, path, RequestOptions{Body: body}, out)
}

// Delete issues a DELETE
func (c *Client) Delete(ctx context.Context, path string) error {
	return c.Request(ctx, http.MethodDelete, path, RequestOptions{}, nil)
}

// newError builds an *Error from a failed response body. An unparsable body
// is treated as an empty object.
func newError(status int, raw []byte) *Error {
	body := map[string]any{}
	if err := json.Unmarshal(raw, &body); err != nil || body == nil {
		body = map[string]any{}
	}

	message := fmt.Sprintf("API error: %d", status)
	switch detail := body["detail"].(type) {
	case nil:
	case string:
		message = detail
	default:
		// FastAPI-style validation details arrive as a list of objects
		if encoded, err := json.Marshal(detail); err == nil {
			message = string(encoded)
		}
	}

	return &Error{Status: status, Message: message, Body: body}
}

// buildQuery renders params as "?k=v&..." dropping nil values
func buildQuery(params map[string]any) string {
	if len(params) == 0 {
		return ""
	}

	values := url.Values{}
	for key, value := range params {
		if value == nil {
			continue
		}
		rv := reflect.ValueOf(value)
		if rv.Kind() == reflect.Pointer {
			if rv.IsNil() {
				continue
			}
			value = rv.Elem().Interface()
		}
		values.Set(key, fmt.Sprint(value))
	}

	if len(values) == 0 {
		return ""
	}
	return "?" + values.Encode()
}
