package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/pterm/pterm"

	"hiringhook/cli/internal/config"
	"hiringhook/cli/internal/logging"
)

// userAgent identifies the CLI to the hiring API.
const userAgent = "hiringhook-cli/1.0"

// maxErrorBody caps how much of a failed response is kept for error messages.
const maxErrorBody = 512

// HTTP implements API over the hiring REST endpoints.
type HTTP struct {
	// endpoints holds the registration and submission URLs
	endpoints config.Endpoints
	// client is the underlying HTTP client with configured timeout
	client *http.Client
	// requestID is sent as X-Request-Id on every call when set
	requestID string
	logger    *pterm.Logger
}

// Option customizes the HTTP client.
type Option func(*HTTP)

// WithHTTPClient replaces the underlying *http.Client.
func WithHTTPClient(c *http.Client) Option {
	return func(h *HTTP) { h.client = c }
}

// WithRequestID tags every request with the given run identifier.
func WithRequestID(id string) Option {
	return func(h *HTTP) { h.requestID = id }
}

// WithLogger sets the logger used for request-level debug output.
func WithLogger(l *pterm.Logger) Option {
	return func(h *HTTP) { h.logger = l }
}

// newHTTP creates a new HTTP client for the given endpoints.
// A non-positive timeout falls back to config.DefaultTimeout.
func newHTTP(endpoints config.Endpoints, timeout time.Duration, opts ...Option) *HTTP {
	if timeout <= 0 {
		timeout = config.DefaultTimeout
	}
	h := &HTTP{
		endpoints: endpoints,
		client:    &http.Client{Timeout: timeout},
		logger:    pterm.DefaultLogger.WithLevel(pterm.LogLevelDisabled),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// postJSON marshals body and POSTs it to url. The caller owns the response body.
func (h *HTTP) postJSON(ctx context.Context, url string, body any, bearer string) (*http.Response, error) {
	b, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json, */*")
	req.Header.Set("User-Agent", userAgent)
	if h.requestID != "" {
		req.Header.Set("X-Request-Id", h.requestID)
	}
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}

	h.logger.Debug("sending request", h.logger.Args(
		"method", req.Method,
		"url", url,
		"body_bytes", len(b),
		"authenticated", bearer != "",
	))

	start := time.Now()
	resp, err := h.client.Do(req)
	if err != nil {
		return nil, err
	}
	h.logger.Debug("received response", h.logger.Args(
		"url", url,
		"status", resp.StatusCode,
		"elapsed", time.Since(start).Round(time.Millisecond).String(),
	))
	return resp, nil
}

// StatusError reports a non-2xx response.
type StatusError struct {
	Op         string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("%s failed: %d %s", e.Op, e.StatusCode, http.StatusText(e.StatusCode))
	}
	return fmt.Sprintf("%s failed: %d %s", e.Op, e.StatusCode, e.Body)
}

// checkStatus returns a *StatusError for non-2xx responses.
// The body snippet is masked since the API may echo credentials back.
func checkStatus(op string, resp *http.Response) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}
	b, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	return &StatusError{
		Op:         op,
		StatusCode: resp.StatusCode,
		Body:       logging.Mask(strings.TrimSpace(string(b))),
	}
}
