// Copyright 2026 The avanza-mcp Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package avanza implements the resilient HTTP client for the Avanza
// public market data API.
//
// The client owns a pooled connection resource bound to a base address,
// classifies responses and transport failures into a closed error
// taxonomy, and retries transient failures with exponential backoff.
// Permanent errors (4xx) propagate on first occurrence; only timeouts,
// network failures, and 5xx responses consume retry attempts.
package avanza

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"net/url"
	"strings"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/marknad/avanza-mcp/internal/version"
)

// DefaultBaseURL is the production Avanza host. All endpoints under it
// are public and require no authentication.
const DefaultBaseURL = "https://www.avanza.se"

// Config holds the connection and retry settings consumed at client
// acquisition. No dynamic reconfiguration happens after NewClient.
type Config struct {
	// BaseURL is the upstream base address (default: DefaultBaseURL).
	BaseURL string

	// ReadTimeout bounds the whole request including body read (default: 30s).
	ReadTimeout time.Duration

	// ConnectTimeout bounds connection establishment only (default: 5s).
	// It runs independently of ReadTimeout so an unreachable server is
	// distinguishable from a slow one.
	ConnectTimeout time.Duration

	// MaxConnections caps total connections to the host (default: 10).
	MaxConnections int

	// MaxIdleConnections caps pooled keepalive connections (default: 5).
	MaxIdleConnections int

	// MaxAttempts is the per-call retry budget (default: 3).
	MaxAttempts int

	// UserAgent overrides the default avanza-mcp/<version> identifier.
	UserAgent string

	// Logger receives per-attempt diagnostics. Defaults to slog.Default().
	Logger *slog.Logger
}

// DefaultConfig returns the default client configuration.
func DefaultConfig() Config {
	return Config{
		BaseURL:            DefaultBaseURL,
		ReadTimeout:        30 * time.Second,
		ConnectTimeout:     5 * time.Second,
		MaxConnections:     10,
		MaxIdleConnections: 5,
		MaxAttempts:        3,
	}
}

// Validate checks the configuration. NewClient performs no I/O, so this
// is the only way acquisition can fail.
func (c Config) Validate() error {
	u, err := url.Parse(c.BaseURL)
	if err != nil {
		return fmt.Errorf("base_url is not a valid URL: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("base_url must use http or https, got %q", c.BaseURL)
	}
	if u.Host == "" {
		return fmt.Errorf("base_url has no host: %q", c.BaseURL)
	}
	if c.ReadTimeout <= 0 {
		return fmt.Errorf("read_timeout must be positive, got %v", c.ReadTimeout)
	}
	if c.ConnectTimeout <= 0 {
		return fmt.Errorf("connect_timeout must be positive, got %v", c.ConnectTimeout)
	}
	if c.MaxConnections < 1 {
		return fmt.Errorf("max_connections must be at least 1, got %d", c.MaxConnections)
	}
	if c.MaxIdleConnections < 0 || c.MaxIdleConnections > c.MaxConnections {
		return fmt.Errorf("max_idle_connections must be between 0 and max_connections, got %d", c.MaxIdleConnections)
	}
	if c.MaxAttempts < 1 {
		return fmt.Errorf("max_attempts must be at least 1, got %d", c.MaxAttempts)
	}
	return nil
}

// Client is a scoped, exclusively-owned handle on a pooled connection
// resource. Create with NewClient, release with Close. Requests issued
// on a zero Client or after Close fail with a programming-error sentinel
// and perform no network I/O.
type Client struct {
	baseURL     *url.URL
	httpClient  *http.Client
	transport   *http.Transport
	maxAttempts int
	userAgent   string
	logger      *slog.Logger
	closed      atomic.Bool

	// backoff computes the delay before the next attempt. Overridden in
	// tests to avoid multi-second sleeps.
	backoff func(attempt int) time.Duration
}

// NewClient validates the configuration and builds the pooled transport.
// No network I/O occurs until the first request.
func NewClient(cfg Config) (*Client, error) {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	def := DefaultConfig()
	if cfg.ReadTimeout == 0 {
		cfg.ReadTimeout = def.ReadTimeout
	}
	if cfg.ConnectTimeout == 0 {
		cfg.ConnectTimeout = def.ConnectTimeout
	}
	if cfg.MaxConnections == 0 {
		cfg.MaxConnections = def.MaxConnections
	}
	if cfg.MaxIdleConnections == 0 {
		cfg.MaxIdleConnections = def.MaxIdleConnections
	}
	if cfg.MaxAttempts == 0 {
		cfg.MaxAttempts = def.MaxAttempts
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("avanza: invalid config: %w", err)
	}

	base, err := url.Parse(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("avanza: invalid config: %w", err)
	}

	transport := &http.Transport{
		DialContext: (&net.Dialer{
			Timeout: cfg.ConnectTimeout,
		}).DialContext,
		TLSHandshakeTimeout: cfg.ConnectTimeout,
		MaxConnsPerHost:     cfg.MaxConnections,
		MaxIdleConnsPerHost: cfg.MaxIdleConnections,
		MaxIdleConns:        cfg.MaxIdleConnections,
		IdleConnTimeout:     90 * time.Second,
	}

	userAgent := cfg.UserAgent
	if userAgent == "" {
		userAgent = "avanza-mcp/" + version.Version
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Client{
		baseURL: base,
		httpClient: &http.Client{
			Transport: transport,
			Timeout:   cfg.ReadTimeout,
		},
		transport:   transport,
		maxAttempts: cfg.MaxAttempts,
		userAgent:   userAgent,
		logger:      logger,
		backoff:     backoffDelay,
	}, nil
}

// Close releases the pooled connections. Safe to call if no request was
// ever issued, and safe to call more than once.
func (c *Client) Close() error {
	if c == nil || c.transport == nil {
		return nil
	}
	c.closed.Store(true)
	c.transport.CloseIdleConnections()
	return nil
}

// Get issues a GET request against the given path with optional query
// parameters and returns the raw JSON payload.
func (c *Client) Get(ctx context.Context, path string, params url.Values) (json.RawMessage, error) {
	return c.do(ctx, http.MethodGet, path, params, nil)
}

// Post issues a POST request with an optional JSON body and returns the
// raw JSON payload. All POST endpoints on this API are read-only filter
// queries, so retrying them is as safe as retrying a GET.
func (c *Client) Post(ctx context.Context, path string, body any) (json.RawMessage, error) {
	var encoded []byte
	if body != nil {
		var err error
		encoded, err = json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("avanza: encoding request body: %w", err)
		}
	}
	return c.do(ctx, http.MethodPost, path, nil, encoded)
}

// do runs the retry loop for one external call. The correlation id is
// generated once per call and is stable across its retries.
func (c *Client) do(ctx context.Context, method, path string, params url.Values, body []byte) (json.RawMessage, error) {
	if c == nil || c.httpClient == nil {
		return nil, ErrClientNotInitialized
	}
	if c.closed.Load() {
		return nil, ErrClientClosed
	}

	corrID := newCorrelationID()
	requestURL := c.requestURL(path, params)

	var lastErr *Error
	for attempt := 1; attempt <= c.maxAttempts; attempt++ {
		out := c.attempt(ctx, method, requestURL, path, body, corrID)

		switch out.kind {
		case outcomeSuccess:
			return out.payload, nil

		case outcomePermanent:
			c.logOutcome(out.err, attempt, false)
			return nil, out.err

		case outcomeRetry:
			lastErr = out.err
			retrying := attempt < c.maxAttempts
			c.logOutcome(out.err, attempt, retrying)
			if !retrying {
				return nil, finalize(lastErr)
			}
			if err := sleepBackoff(ctx, c.backoff(attempt)); err != nil {
				return nil, finalize(lastErr)
			}
		}
	}

	// Unreachable while maxAttempts >= 1; keeps the compiler honest.
	return nil, finalize(lastErr)
}

// attempt issues a single transport request and classifies the result.
func (c *Client) attempt(ctx context.Context, method, requestURL, path string, body []byte, corrID string) outcome {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, requestURL, reader)
	if err != nil {
		return permanent(&Error{
			Kind:          KindAPIError,
			Message:       fmt.Sprintf("building request: %s", truncate(err.Error())),
			Path:          path,
			CorrelationID: corrID,
			Cause:         err,
		})
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return classifyTransportError(err, path, corrID)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return classifyTransportError(err, path, corrID)
	}

	return classifyResponse(resp, respBody, path, corrID)
}

// requestURL joins the base address with the request path and query.
func (c *Client) requestURL(path string, params url.Values) string {
	u := *c.baseURL
	u.Path = strings.TrimSuffix(u.Path, "/") + path
	if len(params) > 0 {
		u.RawQuery = params.Encode()
	}
	return u.String()
}

// logOutcome records one classified attempt so operators can reconstruct
// the retry history from logs alone.
func (c *Client) logOutcome(e *Error, attempt int, retrying bool) {
	c.logger.Debug("request attempt failed",
		slog.String("kind", string(e.Kind)),
		slog.Int("status", e.StatusCode),
		slog.String("path", e.Path),
		slog.String("correlation_id", e.CorrelationID),
		slog.Int("attempt", attempt),
		slog.Bool("retrying", retrying),
	)
}

// newCorrelationID returns a short opaque token for tying together the
// log lines and retry attempts of one call. Diagnostic only; collision
// risk is accepted.
func newCorrelationID() string {
	return uuid.NewString()[:8]
}
