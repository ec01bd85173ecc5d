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
	"fmt"
	"net"
	"net/http"
	"strconv"
)

// outcomeKind is the retry loop's decision about a single attempt.
type outcomeKind int

const (
	outcomeSuccess outcomeKind = iota
	outcomeRetry
	outcomePermanent
)

// outcome is the classification of one request attempt. Exactly one of
// payload (success) or err (retry/permanent) is meaningful.
type outcome struct {
	kind    outcomeKind
	payload json.RawMessage
	err     *Error
}

// classifyTransportError maps a transport-level failure into the taxonomy.
// Timeouts (connect or read) are distinguished from other network errors
// because they say different things about whether a retry can help.
func classifyTransportError(err error, path, corrID string) outcome {
	kind := KindNetworkFailure
	msg := "connection failed"

	var netErr net.Error
	switch {
	case errors.As(err, &netErr) && netErr.Timeout():
		kind = KindTimeout
		msg = "request timed out"
	case errors.Is(err, context.DeadlineExceeded):
		kind = KindTimeout
		msg = "request timed out"
	}

	return outcome{
		kind: outcomeRetry,
		err: &Error{
			Kind:          kind,
			Message:       fmt.Sprintf("%s: %s", msg, truncate(err.Error())),
			Path:          path,
			CorrelationID: corrID,
			Cause:         err,
		},
	}
}

// classifyResponse maps a received HTTP response into the taxonomy.
// The body has already been fully read.
func classifyResponse(resp *http.Response, body []byte, path, corrID string) outcome {
	status := resp.StatusCode

	if status >= 200 && status < 300 {
		return classifyPayload(status, body, path, corrID)
	}

	message, decoded := decodeErrorBody(body, status)

	switch {
	case status == http.StatusNotFound:
		return permanent(&Error{
			Kind:          KindNotFound,
			StatusCode:    status,
			Message:       message,
			Path:          path,
			CorrelationID: corrID,
		})
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return permanent(&Error{
			Kind:          KindAuthFailure,
			StatusCode:    status,
			Message:       message,
			Path:          path,
			CorrelationID: corrID,
		})
	case status == http.StatusTooManyRequests:
		return permanent(&Error{
			Kind:          KindRateLimited,
			StatusCode:    status,
			Message:       message,
			Path:          path,
			CorrelationID: corrID,
			RetryAfter:    parseRetryAfter(resp.Header.Get("Retry-After")),
		})
	case status >= 500:
		return outcome{
			kind: outcomeRetry,
			err: &Error{
				Kind:          KindServerTransient,
				StatusCode:    status,
				Message:       message,
				Path:          path,
				CorrelationID: corrID,
			},
		}
	default:
		return permanent(&Error{
			Kind:          KindAPIError,
			StatusCode:    status,
			Message:       message,
			Path:          path,
			CorrelationID: corrID,
			Body:          decoded,
		})
	}
}

// classifyPayload handles a success-status body. An empty body is an empty
// result, not an error. A body that fails to parse as JSON is an API error
// carrying the original (successful) status code.
func classifyPayload(status int, body []byte, path, corrID string) outcome {
	if len(body) == 0 {
		return outcome{kind: outcomeSuccess, payload: json.RawMessage("{}")}
	}
	if !json.Valid(body) {
		return permanent(&Error{
			Kind:          KindAPIError,
			StatusCode:    status,
			Message:       "response body is not valid JSON",
			Path:          path,
			CorrelationID: corrID,
		})
	}
	return outcome{kind: outcomeSuccess, payload: json.RawMessage(body)}
}

// decodeErrorBody extracts a message and the decoded body from an error
// response. Falls back to the raw text, then the bare status.
func decodeErrorBody(body []byte, status int) (string, map[string]any) {
	var decoded map[string]any
	if len(body) > 0 && json.Unmarshal(body, &decoded) == nil {
		if msg, ok := decoded["message"].(string); ok && msg != "" {
			return truncate(msg), decoded
		}
	}
	if len(body) > 0 {
		return truncate(string(body)), decoded
	}
	return fmt.Sprintf("HTTP %d", status), decoded
}

// parseRetryAfter parses an integer-seconds Retry-After value.
// Absent or unparseable values yield nil.
func parseRetryAfter(header string) *int {
	if header == "" {
		return nil
	}
	seconds, err := strconv.Atoi(header)
	if err != nil {
		return nil
	}
	return &seconds
}

// finalize converts the last classified error into its caller-visible form
// once the retry budget is exhausted. ServerTransient is an internal signal
// only; callers see it as a plain API error with the original status.
func finalize(e *Error) *Error {
	if e.Kind == KindServerTransient {
		e.Kind = KindAPIError
	}
	return e
}

func permanent(e *Error) outcome {
	return outcome{kind: outcomePermanent, err: e}
}
