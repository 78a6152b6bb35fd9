// Package api provides the HTTP client for the PortfolioAI backend.
// It centralizes base-URL handling, timeouts, and error shaping for every
// outbound call the workflow coordinator makes.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"net/url"
	"time"
)

// DefaultTimeout is the fixed timeout applied to every backend call.
const DefaultTimeout = 30 * time.Second

// ErrTimeout marks a call that exceeded the request timeout. Callers surface
// it with a timeout-specific message rather than a generic failure.
var ErrTimeout = errors.New("request timed out")

// Error represents a failed backend call.
type Error struct {
	Op      string
	URL     string
	Status  int
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Op, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Op, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Client talks to the PortfolioAI REST API.
type Client struct {
	baseURL    string
	httpClient *http.Client
	authToken  string
}

// Option configures a Client.
type Option func(*Client)

// WithTimeout overrides the default request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.httpClient.Timeout = d }
}

// WithAuthToken attaches a bearer token to every request.
func WithAuthToken(token string) Option {
	return func(c *Client) { c.authToken = token }
}

// NewClient creates a client for the given base URL.
func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: DefaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// errorPayload is the backend's error response shape.
type errorPayload struct {
	Error string `json:"error"`
}

// do executes a request and decodes a JSON response into out (when non-nil).
// Backend error payloads are surfaced verbatim; timeouts are wrapped with
// ErrTimeout so callers can show a distinct notification.
func (c *Client) do(ctx context.Context, op, method, path string, body io.Reader, contentType string, out any) error {
	fullURL := c.baseURL + path
	req, err := http.NewRequestWithContext(ctx, method, fullURL, body)
	if err != nil {
		return &Error{Op: op, URL: fullURL, Message: "failed to create request", Cause: err}
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if c.authToken != "" {
		req.Header.Set("Authorization", "Bearer "+c.authToken)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		if isTimeout(err) {
			return &Error{Op: op, URL: fullURL, Message: "request timed out after " + c.httpClient.Timeout.String(), Cause: ErrTimeout}
		}
		return &Error{Op: op, URL: fullURL, Message: "request failed", Cause: err}
	}
	defer func() { _ = resp.Body.Close() }()
	log.Printf("[api] %s %s -> %d (%v)", method, path, resp.StatusCode, time.Since(start).Round(time.Millisecond))

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return &Error{Op: op, URL: fullURL, Status: resp.StatusCode, Message: "failed to read response", Cause: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var payload errorPayload
		if err := json.Unmarshal(data, &payload); err == nil && payload.Error != "" {
			return &Error{Op: op, URL: fullURL, Status: resp.StatusCode, Message: payload.Error}
		}
		return &Error{Op: op, URL: fullURL, Status: resp.StatusCode, Message: fmt.Sprintf("HTTP status %d", resp.StatusCode)}
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return &Error{Op: op, URL: fullURL, Status: resp.StatusCode, Message: "unexpected response shape", Cause: err}
	}
	return nil
}

func (c *Client) getJSON(ctx context.Context, op, path string, out any) error {
	return c.do(ctx, op, http.MethodGet, path, nil, "", out)
}

func (c *Client) postJSON(ctx context.Context, op, path string, in, out any) error {
	body, err := json.Marshal(in)
	if err != nil {
		return &Error{Op: op, Message: "failed to encode request", Cause: err}
	}
	return c.do(ctx, op, http.MethodPost, path, bytes.NewReader(body), "application/json", out)
}

// postMultipart uploads a file plus form fields.
func (c *Client) postMultipart(ctx context.Context, op, path string, fields map[string]string, fileField, fileName string, file []byte, out any) error {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, v := range fields {
		if err := w.WriteField(k, v); err != nil {
			return &Error{Op: op, Message: "failed to build form", Cause: err}
		}
	}
	part, err := w.CreateFormFile(fileField, fileName)
	if err != nil {
		return &Error{Op: op, Message: "failed to build form file", Cause: err}
	}
	if _, err := part.Write(file); err != nil {
		return &Error{Op: op, Message: "failed to write form file", Cause: err}
	}
	if err := w.Close(); err != nil {
		return &Error{Op: op, Message: "failed to finalize form", Cause: err}
	}
	return c.do(ctx, op, http.MethodPost, path, &buf, w.FormDataContentType(), out)
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var uerr *url.Error
	if errors.As(err, &uerr) && uerr.Timeout() {
		return true
	}
	return false
}
