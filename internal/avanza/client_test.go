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

package avanza

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestClient builds a client against the given test server with the
// retry backoff disabled.
func newTestClient(t *testing.T, baseURL string, maxAttempts int) *Client {
	t.Helper()

	client, err := NewClient(Config{
		BaseURL:     baseURL,
		MaxAttempts: maxAttempts,
		ReadTimeout: 5 * time.Second,
		Logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	require.NoError(t, err)
	t.Cleanup(func() { client.Close() })

	client.backoff = func(int) time.Duration { return 0 }
	return client
}

func TestGetSuccess(t *testing.T) {
	var gotAccept, gotUserAgent string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAccept = r.Header.Get("Accept")
		gotUserAgent = r.Header.Get("User-Agent")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"name":"Volvo B"}`))
	}))
	defer srv.Close()

	client := newTestClient(t, srv.URL, 3)
	payload, err := client.Get(context.Background(), "/_api/market-guide/stock/5247", nil)
	require.NoError(t, err)

	var decoded map[string]string
	require.NoError(t, json.Unmarshal(payload, &decoded))
	assert.Equal(t, "Volvo B", decoded["name"])
	assert.Equal(t, "application/json", gotAccept)
	assert.True(t, strings.HasPrefix(gotUserAgent, "avanza-mcp/"))
}

func TestGetQueryParameters(t *testing.T) {
	var gotQuery url.Values
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	client := newTestClient(t, srv.URL, 1)
	_, err := client.Get(context.Background(), "/_api/price-chart/stock/5247",
		url.Values{"timePeriod": []string{"one_month"}})
	require.NoError(t, err)

	assert.Equal(t, "one_month", gotQuery.Get("timePeriod"))
}

func TestPostSendsJSONBody(t *testing.T) {
	var gotContentType string
	var gotBody []byte
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotContentType = r.Header.Get("Content-Type")
		gotBody, _ = io.ReadAll(r.Body)
		w.Write([]byte(`{"totalNumberOfHits":0}`))
	}))
	defer srv.Close()

	client := newTestClient(t, srv.URL, 1)
	_, err := client.Post(context.Background(), "/_api/search/filtered-search",
		map[string]any{"query": "Volvo", "limit": 10})
	require.NoError(t, err)

	assert.Equal(t, "application/json", gotContentType)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(gotBody, &decoded))
	assert.Equal(t, "Volvo", decoded["query"])
}

func TestRetriesServerErrorsThenSucceeds(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) <= 2 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.Write([]byte(`{"ok":true}`))
	}))
	defer srv.Close()

	client := newTestClient(t, srv.URL, 3)
	payload, err := client.Get(context.Background(), "/x", nil)
	require.NoError(t, err)

	assert.JSONEq(t, `{"ok":true}`, string(payload))
	assert.Equal(t, int32(3), calls.Load())
}

func TestRetryBudgetExhausted(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	client := newTestClient(t, srv.URL, 3)
	_, err := client.Get(context.Background(), "/x", nil)
	require.Error(t, err)

	assert.Equal(t, int32(3), calls.Load())

	var aerr *Error
	require.ErrorAs(t, err, &aerr)
	// The internal transient classification never reaches callers.
	assert.Equal(t, KindAPIError, aerr.Kind)
	assert.Equal(t, http.StatusBadGateway, aerr.StatusCode)
}

func TestPermanentErrorsSingleAttempt(t *testing.T) {
	tests := []struct {
		status int
		kind   ErrorKind
	}{
		{http.StatusBadRequest, KindAPIError},
		{http.StatusUnauthorized, KindAuthFailure},
		{http.StatusForbidden, KindAuthFailure},
		{http.StatusNotFound, KindNotFound},
		{http.StatusTooManyRequests, KindRateLimited},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			var calls atomic.Int32
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				calls.Add(1)
				w.WriteHeader(tt.status)
			}))
			defer srv.Close()

			client := newTestClient(t, srv.URL, 3)
			_, err := client.Get(context.Background(), "/x", nil)
			require.Error(t, err)

			assert.Equal(t, int32(1), calls.Load(), "permanent errors must not be retried")

			var aerr *Error
			require.ErrorAs(t, err, &aerr)
			assert.Equal(t, tt.kind, aerr.Kind)
			assert.Equal(t, tt.status, aerr.StatusCode)
			assert.False(t, aerr.Retryable())
		})
	}
}

func TestRateLimitedRetryAfter(t *testing.T) {
	tests := []struct {
		name   string
		header string
		want   *int
	}{
		{"integer seconds", "60", intPtr(60)},
		{"absent", "", nil},
		{"unparseable", "soon", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if tt.header != "" {
					w.Header().Set("Retry-After", tt.header)
				}
				w.WriteHeader(http.StatusTooManyRequests)
			}))
			defer srv.Close()

			client := newTestClient(t, srv.URL, 3)
			_, err := client.Get(context.Background(), "/x", nil)
			require.Error(t, err)

			var aerr *Error
			require.ErrorAs(t, err, &aerr)
			require.Equal(t, KindRateLimited, aerr.Kind)
			if tt.want == nil {
				assert.Nil(t, aerr.RetryAfter)
			} else {
				require.NotNil(t, aerr.RetryAfter)
				assert.Equal(t, *tt.want, *aerr.RetryAfter)
			}
		})
	}
}

func TestErrorMessageFromBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"message":"invalid orderbook id","code":"BAD_ID"}`))
	}))
	defer srv.Close()

	client := newTestClient(t, srv.URL, 1)
	_, err := client.Get(context.Background(), "/x", nil)
	require.Error(t, err)

	var aerr *Error
	require.ErrorAs(t, err, &aerr)
	assert.Equal(t, "invalid orderbook id", aerr.Message)
	assert.Equal(t, "BAD_ID", aerr.Body["code"])
}

func TestEmptySuccessBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	client := newTestClient(t, srv.URL, 1)
	payload, err := client.Get(context.Background(), "/x", nil)
	require.NoError(t, err)
	assert.Equal(t, "{}", string(payload))
}

func TestInvalidJSONOnSuccessStatus(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.Write([]byte(`<html>maintenance</html>`))
	}))
	defer srv.Close()

	client := newTestClient(t, srv.URL, 3)
	_, err := client.Get(context.Background(), "/x", nil)
	require.Error(t, err)

	assert.Equal(t, int32(1), calls.Load())

	var aerr *Error
	require.ErrorAs(t, err, &aerr)
	assert.Equal(t, KindAPIError, aerr.Kind)
	assert.Equal(t, http.StatusOK, aerr.StatusCode)
}

func TestReadTimeoutClassification(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(500 * time.Millisecond)
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	client, err := NewClient(Config{
		BaseURL:     srv.URL,
		ReadTimeout: 50 * time.Millisecond,
		MaxAttempts: 1,
		Logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	require.NoError(t, err)
	defer client.Close()

	_, err = client.Get(context.Background(), "/x", nil)
	require.Error(t, err)

	var aerr *Error
	require.ErrorAs(t, err, &aerr)
	assert.Equal(t, KindTimeout, aerr.Kind)
	assert.Zero(t, aerr.StatusCode)
	assert.True(t, aerr.Retryable())
}

func TestNetworkFailureClassification(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	baseURL := srv.URL
	srv.Close()

	client := newTestClient(t, baseURL, 1)
	_, err := client.Get(context.Background(), "/x", nil)
	require.Error(t, err)

	var aerr *Error
	require.ErrorAs(t, err, &aerr)
	assert.Equal(t, KindNetworkFailure, aerr.Kind)
	assert.True(t, aerr.Retryable())
}

func TestUseAfterClose(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	client := newTestClient(t, srv.URL, 1)
	require.NoError(t, client.Close())
	require.NoError(t, client.Close(), "close must be idempotent")

	_, err := client.Get(context.Background(), "/x", nil)
	assert.ErrorIs(t, err, ErrClientClosed)
	assert.Zero(t, calls.Load(), "no request may be issued after close")
}

func TestZeroClientNotInitialized(t *testing.T) {
	var client Client
	_, err := client.Get(context.Background(), "/x", nil)
	assert.ErrorIs(t, err, ErrClientNotInitialized)

	var nilClient *Client
	_, err = nilClient.Get(context.Background(), "/x", nil)
	assert.ErrorIs(t, err, ErrClientNotInitialized)
}

func TestConcurrentCallsHaveDistinctCorrelationIDs(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	client := newTestClient(t, srv.URL, 1)

	const callers = 8
	ids := make([]string, callers)
	var wg sync.WaitGroup
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(slot int) {
			defer wg.Done()
			_, err := client.Get(context.Background(), "/x", nil)
			var aerr *Error
			if errors.As(err, &aerr) {
				ids[slot] = aerr.CorrelationID
			}
		}(i)
	}
	wg.Wait()

	seen := make(map[string]bool, callers)
	for _, id := range ids {
		require.Len(t, id, 8)
		assert.False(t, seen[id], "correlation id %q reused across calls", id)
		seen[id] = true
	}
}

func TestBackoffCancelledByContext(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := newTestClient(t, srv.URL, 3)
	client.backoff = func(int) time.Duration { return time.Hour }

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	start := time.Now()
	_, err := client.Get(ctx, "/x", nil)
	require.Error(t, err)

	assert.Less(t, time.Since(start), time.Second, "cancellation must interrupt the backoff sleep")
	assert.Equal(t, int32(1), calls.Load())

	var aerr *Error
	require.ErrorAs(t, err, &aerr)
	assert.Equal(t, KindAPIError, aerr.Kind, "last classified error surfaces on abort")
}

func TestBackoffDelayBounds(t *testing.T) {
	tests := []struct {
		attempt int
		floor   time.Duration
	}{
		{1, 2 * time.Second},
		{2, 4 * time.Second},
		{3, 8 * time.Second},
		{4, 10 * time.Second},
		{7, 10 * time.Second},
	}

	for _, tt := range tests {
		delay := backoffDelay(tt.attempt)
		assert.GreaterOrEqual(t, delay, tt.floor, "attempt %d", tt.attempt)
		assert.Less(t, delay, tt.floor+backoffMaxJitter, "attempt %d", tt.attempt)
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"bad scheme", func(c *Config) { c.BaseURL = "ftp://example.com" }},
		{"no host", func(c *Config) { c.BaseURL = "https://" }},
		{"negative read timeout", func(c *Config) { c.ReadTimeout = -time.Second }},
		{"negative connect timeout", func(c *Config) { c.ConnectTimeout = -time.Second }},
		{"zero max connections", func(c *Config) { c.MaxConnections = -1 }},
		{"idle exceeds total", func(c *Config) { c.MaxIdleConnections = 99 }},
		{"negative attempts", func(c *Config) { c.MaxAttempts = -1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			_, err := NewClient(cfg)
			assert.Error(t, err)
		})
	}
}

func TestTruncateBoundsLongMessages(t *testing.T) {
	long := strings.Repeat("x", 2*maxMessageLen)
	got := truncate(long)
	assert.Len(t, got, maxMessageLen+len("..."))
	assert.True(t, strings.HasSuffix(got, "..."))

	short := "all good"
	assert.Equal(t, short, truncate(short))
}

func intPtr(v int) *int { return &v }
