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
	"errors"
	"fmt"
)

// ErrorKind classifies API errors for routing and retry decisions.
type ErrorKind string

const (
	// KindNotFound indicates the requested resource does not exist (404).
	KindNotFound ErrorKind = "not_found"

	// KindAuthFailure indicates authentication failure (401, 403).
	KindAuthFailure ErrorKind = "auth_failure"

	// KindRateLimited indicates rate limiting (429 Too Many Requests).
	KindRateLimited ErrorKind = "rate_limited"

	// KindTimeout indicates a connect or read timeout was exceeded.
	KindTimeout ErrorKind = "timeout"

	// KindNetworkFailure indicates a connection, DNS, or reset error.
	KindNetworkFailure ErrorKind = "network_failure"

	// KindServerTransient indicates an upstream 5xx response. It is an
	// internal retry signal and is never surfaced to callers: once the
	// retry budget is exhausted it is rewritten to KindAPIError.
	KindServerTransient ErrorKind = "server_transient"

	// KindAPIError indicates any other non-success response, or a
	// response body that could not be parsed as JSON.
	KindAPIError ErrorKind = "api_error"
)

// Programming-error sentinels, distinct from the network error taxonomy.
// Neither ever triggers network I/O.
var (
	// ErrClientNotInitialized is returned when a request is issued
	// through a Client that was not created via NewClient.
	ErrClientNotInitialized = errors.New("avanza: client not initialized")

	// ErrClientClosed is returned when a request is issued after Close.
	ErrClientClosed = errors.New("avanza: client is closed")
)

// maxMessageLen bounds upstream-supplied message text embedded in errors
// and logs. Malformed upstream payloads can be arbitrarily large.
const maxMessageLen = 200

// Error is a classified failure from the Avanza API client.
type Error struct {
	// Kind classifies the error.
	Kind ErrorKind

	// StatusCode is the HTTP status code, zero for transport errors.
	StatusCode int

	// Message is a human-readable description. Upstream-supplied text
	// is truncated to maxMessageLen.
	Message string

	// Path is the request path the error relates to.
	Path string

	// CorrelationID ties the error to the log lines of its call.
	CorrelationID string

	// RetryAfter is the parsed Retry-After header in seconds.
	// Only set for KindRateLimited when the upstream supplied one.
	RetryAfter *int

	// Body is the decoded error response body, when it parsed as JSON.
	// Only set for KindAPIError.
	Body map[string]any

	// Cause is the underlying transport error, if any.
	Cause error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("avanza: %s (status %d) [%s %s]: %s", e.Kind, e.StatusCode, e.CorrelationID, e.Path, e.Message)
	}
	return fmt.Sprintf("avanza: %s [%s %s]: %s", e.Kind, e.CorrelationID, e.Path, e.Message)
}

// Unwrap returns the underlying error for error chain inspection.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Retryable reports whether the retry loop may attempt the request again.
func (e *Error) Retryable() bool {
	switch e.Kind {
	case KindTimeout, KindNetworkFailure, KindServerTransient:
		return true
	}
	return false
}

// IsKind reports whether the error is of the given kind.
func (e *Error) IsKind(k ErrorKind) bool {
	return e.Kind == k
}

// truncate bounds upstream message text before it reaches errors or logs.
func truncate(s string) string {
	if len(s) <= maxMessageLen {
		return s
	}
	return s[:maxMessageLen] + "..."
}
