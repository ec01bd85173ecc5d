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

// Package server implements an MCP server that exposes Avanza market data
// as tools, resources, and prompts.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/marknad/avanza-mcp/internal/avanza"
	"github.com/marknad/avanza-mcp/internal/log"
	"github.com/marknad/avanza-mcp/internal/service"
)

// Server wraps the MCP server and the shared upstream client. One client
// instance serves all tool calls so the connection pool is reused across
// requests.
type Server struct {
	mcpServer   *server.MCPServer
	name        string
	version     string
	rateLimiter *RateLimiter
	logger      *slog.Logger
	client      *avanza.Client
	market      *service.MarketData
	search      *service.Search
}

// ServerConfig configures the MCP server
type ServerConfig struct {
	// Name is the server name (default: "avanza-mcp")
	Name string

	// Version is the avanza-mcp version
	Version string

	// LogLevel controls logging verbosity (debug, info, warn, error)
	LogLevel string

	// CallsPerMinute caps tool calls per minute (default: 120)
	CallsPerMinute int

	// Client configures the upstream HTTP client. Zero fields take
	// defaults.
	Client avanza.Config
}

// NewServer creates a new MCP server instance
func NewServer(config ServerConfig) (*Server, error) {
	if config.Name == "" {
		config.Name = "avanza-mcp"
	}
	if config.Version == "" {
		config.Version = "dev"
	}
	if config.CallsPerMinute <= 0 {
		config.CallsPerMinute = defaultCallsPerMinute
	}

	logCfg := log.FromEnv()
	if config.LogLevel != "" {
		logCfg.Level = config.LogLevel
	}
	logger := log.New(logCfg)

	if config.Client.Logger == nil {
		config.Client.Logger = log.WithComponent(logger, "avanza")
	}
	client, err := avanza.NewClient(config.Client)
	if err != nil {
		return nil, fmt.Errorf("failed to create upstream client: %w", err)
	}

	mcpServer := server.NewMCPServer(config.Name, config.Version,
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(true, true),
		server.WithPromptCapabilities(true),
	)

	s := &Server{
		mcpServer:   mcpServer,
		name:        config.Name,
		version:     config.Version,
		rateLimiter: NewRateLimiter(config.CallsPerMinute),
		logger:      logger,
		client:      client,
		market:      service.NewMarketData(client),
		search:      service.NewSearch(client),
	}

	s.registerTools()
	s.registerResources()
	s.registerPrompts()

	return s, nil
}

// registerTools registers all tool categories with the MCP server
func (s *Server) registerTools() {
	s.registerSearchTools()
	s.registerStockTools()
	s.registerFundTools()
	s.registerCertificateTools()
	s.registerWarrantTools()
	s.registerETFTools()
	s.registerFutureForwardTools()
	s.registerInstrumentTools()
}

// Run starts the MCP server using stdio transport
func (s *Server) Run(ctx context.Context) error {
	s.logger.Info("Starting Avanza MCP server", slog.String("version", s.version))

	if err := server.ServeStdio(s.mcpServer); err != nil {
		return fmt.Errorf("MCP server error: %w", err)
	}

	return nil
}

// Shutdown gracefully shuts down the server and releases the upstream
// connection pool.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down Avanza MCP server")
	return s.client.Close()
}

// Helper function to create error response
func errorResponse(message string) *mcp.CallToolResult {
	return mcp.NewToolResultError(message)
}

// Helper function to create success response
func textResponse(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			mcp.NewTextContent(text),
		},
	}
}

// jsonResponse marshals a result value into an indented JSON text response
func jsonResponse(v any) *mcp.CallToolResult {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return errorResponse(fmt.Sprintf("Failed to encode result: %v", err))
	}
	return textResponse(string(data))
}

// serviceErrorResponse maps an upstream failure to a tool error. Protocol
// errors stay nil so the client treats every failure as a tool-level
// result.
func (s *Server) serviceErrorResponse(toolName string, err error) *mcp.CallToolResult {
	s.logger.Warn("Tool call failed",
		slog.String(log.ToolKey, toolName),
		slog.String("error", err.Error()))

	var aerr *avanza.Error
	if errors.As(err, &aerr) {
		switch aerr.Kind {
		case avanza.KindNotFound:
			return errorResponse(fmt.Sprintf("Instrument not found: %v", err))
		case avanza.KindRateLimited:
			msg := fmt.Sprintf("Upstream rate limit exceeded: %v", err)
			if aerr.RetryAfter != nil {
				msg = fmt.Sprintf("%s (retry after %d seconds)", msg, *aerr.RetryAfter)
			}
			return errorResponse(msg)
		case avanza.KindTimeout:
			return errorResponse(fmt.Sprintf("Upstream request timed out: %v", err))
		case avanza.KindNetworkFailure:
			return errorResponse(fmt.Sprintf("Network failure reaching Avanza: %v", err))
		}
	}
	return errorResponse(fmt.Sprintf("Request failed: %v", err))
}

// idArgument is the shared schema for the instrument_id tool argument
func idArgument(description string) map[string]interface{} {
	return map[string]interface{}{
		"type":        "string",
		"description": description,
	}
}

// stringSliceArg extracts an optional list-of-strings argument
func stringSliceArg(request mcp.CallToolRequest, name string) []string {
	args := request.GetArguments()
	raw, ok := args[name].([]interface{})
	if !ok {
		return []string{}
	}
	out := make([]string, 0, len(raw))
	for _, v := range raw {
		if str, ok := v.(string); ok {
			out = append(out, str)
		}
	}
	return out
}

// floatSliceArg extracts an optional list-of-numbers argument
func floatSliceArg(request mcp.CallToolRequest, name string) []float64 {
	args := request.GetArguments()
	raw, ok := args[name].([]interface{})
	if !ok {
		return []float64{}
	}
	out := make([]float64, 0, len(raw))
	for _, v := range raw {
		if f, ok := v.(float64); ok {
			out = append(out, f)
		}
	}
	return out
}

// intArg extracts an optional integer argument. JSON numbers arrive as
// float64.
func intArg(request mcp.CallToolRequest, name string, def int) int {
	args := request.GetArguments()
	switch v := args[name].(type) {
	case float64:
		return int(v)
	case int:
		return v
	default:
		return def
	}
}
