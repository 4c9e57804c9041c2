package httpclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"shop-admin/internal/core/apperr"

	"github.com/google/uuid"
)

// RequestIDHeader carries the correlation id from the admin API to the backend.
const RequestIDHeader = "X-Request-ID"

type requestIDKey struct{}

// WithRequestID stores the inbound request id so backend calls can reuse it.
func WithRequestID(ctx context.Context, id string) context.Context {
	if id == "" {
		return ctx
	}
	return context.WithValue(ctx, requestIDKey{}, id)
}

// RequestID returns the id stored by WithRequestID, or a fresh one.
func RequestID(ctx context.Context) string {
	if id, ok := ctx.Value(requestIDKey{}).(string); ok && id != "" {
		return id
	}
	return uuid.NewString()
}

// ErrEmptyResponse means the backend answered 2xx without the body the caller expected.
var ErrEmptyResponse = errors.New("empty response body")

// APIError is a non-2xx answer from the backend.
type APIError struct {
	// Method is the HTTP method of the failed call.
	Method string
	// Path is the request path relative to the backend base URL.
	Path string
	// StatusCode is the HTTP status returned by the backend.
	StatusCode int
	// Message is the backend's error message, or the status text.
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s %s: status %d: %s", e.Method, e.Path, e.StatusCode, e.Message)
}

// Unwrap lets callers match the failure against the apperr taxonomy.
func (e *APIError) Unwrap() error {
	if e.StatusCode == http.StatusNotFound {
		return apperr.ErrNotFound
	}
	return apperr.ErrBackend
}

// RESTClient talks JSON to the e-commerce backend.
type RESTClient struct {
	baseURL string
	client  *http.Client
}

// Option customizes a RESTClient.
type Option func(*RESTClient)

// WithTransport sends requests through rt instead of http.DefaultTransport.
// The logging middleware still wraps it.
func WithTransport(rt http.RoundTripper) Option {
	return func(c *RESTClient) {
		c.client.Transport = &LoggingRoundTripper{Proxied: rt}
	}
}

// NewRESTClient creates a client rooted at baseURL.
func NewRESTClient(baseURL string, timeout time.Duration, opts ...Option) *RESTClient {
	c := &RESTClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  NewClient(timeout),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL returns the backend root the client was built with.
func (c *RESTClient) BaseURL() string {
	return c.baseURL
}

// Get performs a GET and decodes the JSON answer into out.
func (c *RESTClient) Get(ctx context.Context, path string, query url.Values, out any) error {
	return c.Do(ctx, http.MethodGet, path, query, nil, out)
}

// Post sends body as JSON and decodes the answer into out.
func (c *RESTClient) Post(ctx context.Context, path string, body, out any) error {
	return c.Do(ctx, http.MethodPost, path, nil, body, out)
}

// Put sends body as JSON and decodes the answer into out.
func (c *RESTClient) Put(ctx context.Context, path string, query url.Values, body, out any) error {
	return c.Do(ctx, http.MethodPut, path, query, body, out)
}

// Patch sends body as JSON and decodes the answer into out.
func (c *RESTClient) Patch(ctx context.Context, path string, body, out any) error {
	return c.Do(ctx, http.MethodPatch, path, nil, body, out)
}

// Delete performs a DELETE; pass a nil out when the backend answers without a body.
func (c *RESTClient) Delete(ctx context.Context, path string, out any) error {
	return c.Do(ctx, http.MethodDelete, path, nil, nil, out)
}

// Do encodes body as JSON (when non-nil), executes the request and decodes the answer into out.
// A non-nil out requires a JSON body unless the backend answers 204.
func (c *RESTClient) Do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	var reader io.Reader
	contentType := ""
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(payload)
		contentType = "application/json"
	}
	return c.DoRaw(ctx, method, path, query, contentType, reader, out)
}

// DoRaw executes a request whose body is already encoded, e.g. a multipart stream.
func (c *RESTClient) DoRaw(ctx context.Context, method, path string, query url.Values, contentType string, body io.Reader, out any) error {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set(RequestIDHeader, RequestID(ctx))

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %s %s: %w", apperr.ErrBackend, method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &APIError{
			Method:     method,
			Path:       path,
			StatusCode: resp.StatusCode,
			Message:    readErrorMessage(resp),
		}
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		if errors.Is(err, io.EOF) {
			return fmt.Errorf("%w: %s %s: %w", apperr.ErrBackend, method, path, ErrEmptyResponse)
		}
		return fmt.Errorf("%w: failed to decode %s %s response: %w", apperr.ErrBackend, method, path, err)
	}
	return nil
}

// readErrorMessage extracts {"message": "..."} from an error body, falling back to the status text.
func readErrorMessage(resp *http.Response) string {
	var payload struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	data, err := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	if err == nil && json.Unmarshal(data, &payload) == nil {
		if payload.Message != "" {
			return payload.Message
		}
		if payload.Error != "" {
			return payload.Error
		}
	}
	return http.StatusText(resp.StatusCode)
}
