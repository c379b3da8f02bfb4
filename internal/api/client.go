package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/google/uuid"
)

// Client is the core abstraction over the backend API.
type Client interface {
	// Post sends body as JSON to path and returns the normalized outcome.
	// It never returns a Go error: every failure is folded into
	// Outcome.Err so callers cannot forget to handle it.
	Post(ctx context.Context, path string, body any) Outcome
}

// TokenSource supplies the bearer token for authenticated calls.
type TokenSource interface {
	Token() string
}

// HTTPClient talks to the backend over HTTP.
type HTTPClient struct {
	baseURL string
	http    *http.Client
	jar     *sessionJar
	tokens  TokenSource
}

var (
	_ Client         = (*HTTPClient)(nil)
	_ CookieResetter = (*HTTPClient)(nil)
)

// Option configures an HTTPClient.
type Option func(*HTTPClient)

// WithTokenSource attaches a bearer token source.
func WithTokenSource(ts TokenSource) Option {
	return func(c *HTTPClient) { c.tokens = ts }
}

// WithHTTPClient replaces the underlying *http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *HTTPClient) { c.http = hc }
}

// NewHTTPClient creates a client for the API at cfg.BaseURL.
func NewHTTPClient(cfg Config, opts ...Option) (*HTTPClient, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	jar, err := newSessionJar()
	if err != nil {
		return nil, fmt.Errorf("create cookie jar: %w", err)
	}

	c := &HTTPClient{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		http: &http.Client{
			Jar:     jar,
			Timeout: cfg.Timeout,
		},
		jar: jar,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.http.Jar != http.CookieJar(jar) {
		// A caller-supplied client manages its own cookies.
		c.jar = nil
	}
	return c, nil
}

// ResetCookies forgets every cookie the backend has set.
func (c *HTTPClient) ResetCookies() {
	if c.jar != nil {
		c.jar.reset()
	}
}

// BaseURL returns the API root this client targets.
func (c *HTTPClient) BaseURL() string {
	return c.baseURL
}

func (c *HTTPClient) Post(ctx context.Context, path string, body any) Outcome {
	url := c.baseURL + "/" + strings.TrimLeft(path, "/")

	resp, err := c.do(ctx, url, body)
	if err != nil {
		return normalize(err)
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return normalize(&ErrTransport{URL: url, Err: fmt.Errorf("read body: %w", err)})
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return normalize(&ErrApplication{Status: resp.StatusCode, URL: url, Body: data})
	}

	return Outcome{Status: resp.StatusCode, Data: data}
}

func (c *HTTPClient) do(ctx context.Context, url string, body any) (*http.Response, error) {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			// Request bodies are our own structs; this only trips on a
			// programming error, which still surfaces as a failed outcome.
			return nil, &ErrTransport{URL: url, Err: fmt.Errorf("encode body: %w", err)}
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, reader)
	if err != nil {
		return nil, &ErrTransport{URL: url, Err: err}
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("X-Request-ID", RequestIDFrom(ctx))
	if c.tokens != nil {
		if tok := c.tokens.Token(); tok != "" {
			req.Header.Set("Authorization", "Bearer "+tok)
		}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &ErrTransport{URL: url, Err: err}
	}
	return resp, nil
}

// newRequestID returns a fresh id for the X-Request-ID header.
func newRequestID() string {
	return uuid.New().String()
}
