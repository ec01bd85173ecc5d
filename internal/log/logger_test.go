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

package log

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&Config{Level: "warn", Format: FormatText, Output: &buf})

	logger.Info("hidden")
	logger.Warn("visible")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "visible")
}

func TestNewJSONFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&Config{Level: "info", Format: FormatJSON, Output: &buf})

	logger.Info("structured", slog.String(PathKey, "/x"), slog.Int(StatusKey, 200))

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "structured", entry["msg"])
	assert.Equal(t, "/x", entry[PathKey])
	assert.Equal(t, float64(200), entry[StatusKey])
}

func TestNewNilConfigDefaults(t *testing.T) {
	assert.NotNil(t, New(nil))
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"ERROR", slog.LevelError},
		{"bogus", slog.LevelInfo},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, parseLevel(tt.in), "input %q", tt.in)
	}
}

func TestFromEnvDebugWins(t *testing.T) {
	t.Setenv("AVANZA_MCP_DEBUG", "1")
	t.Setenv("AVANZA_MCP_LOG_LEVEL", "error")

	cfg := FromEnv()
	assert.Equal(t, "debug", cfg.Level)
	assert.True(t, cfg.AddSource)
}

func TestFromEnvLevelPrecedence(t *testing.T) {
	t.Setenv("AVANZA_MCP_DEBUG", "")
	t.Setenv("AVANZA_MCP_LOG_LEVEL", "warn")
	t.Setenv("LOG_LEVEL", "error")
	t.Setenv("LOG_FORMAT", "JSON")

	cfg := FromEnv()
	assert.Equal(t, "warn", cfg.Level)
	assert.Equal(t, FormatJSON, cfg.Format)
}

func TestWithComponent(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&Config{Level: "info", Format: FormatText, Output: &buf})

	WithComponent(logger, "avanza").Info("hello")
	assert.True(t, strings.Contains(buf.String(), "component=avanza"))
}
