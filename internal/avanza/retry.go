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
	"math/rand"
	"time"
)

// Backoff schedule bounds, in seconds per attempt.
const (
	backoffFloorSeconds   = 2
	backoffCeilingSeconds = 10
	backoffMaxJitter      = 500 * time.Millisecond
)

// backoffDelay returns the sleep before the attempt following the given
// one. Exponential with a floor and ceiling: min(10, max(2, 2^attempt))
// seconds, plus up to 500ms of jitter to avoid synchronized retries.
func backoffDelay(attempt int) time.Duration {
	seconds := backoffCeilingSeconds
	if attempt < 4 {
		seconds = 1 << attempt
	}
	if seconds < backoffFloorSeconds {
		seconds = backoffFloorSeconds
	}
	jitter := time.Duration(rand.Int63n(int64(backoffMaxJitter)))
	return time.Duration(seconds)*time.Second + jitter
}

// sleepBackoff waits for the backoff delay, aborting early if the context
// is cancelled.
func sleepBackoff(ctx context.Context, delay time.Duration) error {
	timer := time.NewTimer(delay)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
