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

package server

import (
	"strings"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/marknad/avanza-mcp/internal/avanza"
	"github.com/marknad/avanza-mcp/internal/models"
)

func TestNewServer_ValidConfig(t *testing.T) {
	config := ServerConfig{
		Name:     "test-server",
		Version:  "1.0.0",
		LogLevel: "debug",
	}

	server, err := NewServer(config)
	if err != nil {
		t.Fatalf("NewServer() failed: %v", err)
	}

	if server == nil {
		t.Fatal("NewServer() returned nil server")
	}

	if server.name != "test-server" {
		t.Errorf("server.name = %q, want %q", server.name, "test-server")
	}

	if server.version != "1.0.0" {
		t.Errorf("server.version = %q, want %q", server.version, "1.0.0")
	}

	if server.logger == nil {
		t.Error("server.logger is nil")
	}

	if server.client == nil {
		t.Error("server.client is nil")
	}
}

func TestNewServer_Defaults(t *testing.T) {
	server, err := NewServer(ServerConfig{})
	if err != nil {
		t.Fatalf("NewServer() failed: %v", err)
	}

	if server.name != "avanza-mcp" {
		t.Errorf("server.name = %q, want %q", server.name, "avanza-mcp")
	}

	if server.version != "dev" {
		t.Errorf("server.version = %q, want %q", server.version, "dev")
	}
}

func TestNewServer_InvalidClientConfig(t *testing.T) {
	server, err := NewServer(ServerConfig{
		Client: avanza.Config{MaxAttempts: -1},
	})
	if err == nil {
		t.Error("NewServer() with invalid client config should return error")
	}
	if server != nil {
		t.Errorf("NewServer() should return nil server on error, got %v", server)
	}
}

func TestRateLimiter_AllowCall(t *testing.T) {
	rl := NewRateLimiter(2)

	if !rl.AllowCall() {
		t.Error("first call should be allowed")
	}
	if !rl.AllowCall() {
		t.Error("second call should be allowed")
	}
	if rl.AllowCall() {
		t.Error("third call should be denied")
	}
}

func requestWithArgs(args map[string]any) mcp.CallToolRequest {
	var request mcp.CallToolRequest
	request.Params.Arguments = args
	return request
}

func TestIntArg(t *testing.T) {
	tests := []struct {
		name string
		args map[string]any
		want int
	}{
		{"json number", map[string]any{"limit": float64(25)}, 25},
		{"missing", map[string]any{}, 10},
		{"wrong type", map[string]any{"limit": "abc"}, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := intArg(requestWithArgs(tt.args), "limit", 10)
			if got != tt.want {
				t.Errorf("intArg() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestStringSliceArg(t *testing.T) {
	request := requestWithArgs(map[string]any{
		"directions": []interface{}{"long", "short", 3.0},
	})

	got := stringSliceArg(request, "directions")
	if len(got) != 2 || got[0] != "long" || got[1] != "short" {
		t.Errorf("stringSliceArg() = %v, want [long short]", got)
	}

	if empty := stringSliceArg(request, "missing"); len(empty) != 0 {
		t.Errorf("stringSliceArg() for missing key = %v, want empty", empty)
	}
}

func TestFloatSliceArg(t *testing.T) {
	request := requestWithArgs(map[string]any{
		"leverages": []interface{}{1.0, 2.5, "x"},
	})

	got := floatSliceArg(request, "leverages")
	if len(got) != 2 || got[0] != 1.0 || got[1] != 2.5 {
		t.Errorf("floatSliceArg() = %v, want [1 2.5]", got)
	}
}

func TestClampFilterLimit(t *testing.T) {
	tests := []struct {
		limit int
		want  int
	}{
		{0, defaultFilterLimit},
		{-5, defaultFilterLimit},
		{50, 50},
		{500, maxFilterLimit},
	}

	for _, tt := range tests {
		if got := clampFilterLimit(tt.limit); got != tt.want {
			t.Errorf("clampFilterLimit(%d) = %d, want %d", tt.limit, got, tt.want)
		}
	}
}

func TestSortByArg(t *testing.T) {
	request := requestWithArgs(map[string]any{
		"sort_field": "leverage",
		"sort_order": "desc",
	})

	sortBy := sortByArg(request, "name", models.SortAsc)
	if sortBy.Field != "leverage" || sortBy.Order != models.SortDesc {
		t.Errorf("sortByArg() = %+v, want leverage/desc", sortBy)
	}

	invalid := requestWithArgs(map[string]any{"sort_order": "sideways"})
	sortBy = sortByArg(invalid, "name", models.SortAsc)
	if sortBy.Field != "name" || sortBy.Order != models.SortAsc {
		t.Errorf("sortByArg() with invalid order = %+v, want name/asc", sortBy)
	}
}

func TestResourceID(t *testing.T) {
	id, err := resourceID("avanza://stock/5247", "avanza://stock/")
	if err != nil {
		t.Fatalf("resourceID() returned error: %v", err)
	}
	if id != "5247" {
		t.Errorf("resourceID() = %q, want %q", id, "5247")
	}

	for _, uri := range []string{
		"avanza://stock/",
		"avanza://fund/41567",
		"avanza://stock/a/b",
	} {
		if _, err := resourceID(uri, "avanza://stock/"); err == nil {
			t.Errorf("resourceID(%q) should return error", uri)
		}
	}
}

func TestServiceErrorResponse(t *testing.T) {
	server, err := NewServer(ServerConfig{LogLevel: "error"})
	if err != nil {
		t.Fatalf("NewServer() failed: %v", err)
	}

	tests := []struct {
		name string
		err  error
		want string
	}{
		{"not found", &avanza.Error{Kind: avanza.KindNotFound, StatusCode: 404}, "Instrument not found"},
		{"timeout", &avanza.Error{Kind: avanza.KindTimeout}, "timed out"},
		{"network", &avanza.Error{Kind: avanza.KindNetworkFailure}, "Network failure"},
		{"rate limited", &avanza.Error{Kind: avanza.KindRateLimited, StatusCode: 429}, "rate limit"},
		{"generic", &avanza.Error{Kind: avanza.KindAPIError, StatusCode: 502}, "Request failed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := server.serviceErrorResponse("test_tool", tt.err)
			if result == nil {
				t.Fatal("serviceErrorResponse() returned nil")
			}
			if !result.IsError {
				t.Error("result should be marked as error")
			}
			text, ok := result.Content[0].(mcp.TextContent)
			if !ok {
				t.Fatalf("content is %T, want TextContent", result.Content[0])
			}
			if !containsFold(text.Text, tt.want) {
				t.Errorf("message %q does not contain %q", text.Text, tt.want)
			}
		})
	}
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}
