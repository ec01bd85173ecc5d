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
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/marknad/avanza-mcp/internal/format"
)

// registerResources registers instrument resources and documentation
func (s *Server) registerResources() {
	s.mcpServer.AddResourceTemplate(mcp.NewResourceTemplate(
		"avanza://stock/{id}",
		"Stock information",
		mcp.WithTemplateDescription("Stock information as a markdown document: price, company profile, and key ratios"),
		mcp.WithTemplateMIMEType("text/markdown"),
	), s.handleStockResource)

	s.mcpServer.AddResourceTemplate(mcp.NewResourceTemplate(
		"avanza://fund/{id}",
		"Fund information",
		mcp.WithTemplateDescription("Fund information as a markdown document: NAV, performance, risk, and fees"),
		mcp.WithTemplateMIMEType("text/markdown"),
	), s.handleFundResource)

	s.mcpServer.AddResource(mcp.NewResource(
		"avanza://docs/usage",
		"Usage guide",
		mcp.WithResourceDescription("Guidance on when to use MCP tools versus providing scripts for bulk data fetching"),
		mcp.WithMIMEType("text/markdown"),
	), staticResource(usageGuide))

	s.mcpServer.AddResource(mcp.NewResource(
		"avanza://docs/quick-start",
		"Quick start guide",
		mcp.WithResourceDescription("Quick reference for the tool-versus-script decision"),
		mcp.WithMIMEType("text/markdown"),
	), staticResource(quickStartGuide))
}

// staticResource returns a handler serving fixed markdown content
func staticResource(content string) func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	return func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		return []mcp.ResourceContents{
			mcp.TextResourceContents{
				URI:      request.Params.URI,
				MIMEType: "text/markdown",
				Text:     content,
			},
		}, nil
	}
}

// resourceID extracts the trailing id from an instrument resource URI
func resourceID(uri, prefix string) (string, error) {
	id := strings.TrimPrefix(uri, prefix)
	if id == "" || id == uri || strings.Contains(id, "/") {
		return "", fmt.Errorf("invalid resource URI: %s", uri)
	}
	return id, nil
}

// handleStockResource serves avanza://stock/{id}
func (s *Server) handleStockResource(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	id, err := resourceID(request.Params.URI, "avanza://stock/")
	if err != nil {
		return nil, err
	}

	info, err := s.market.GetStockInfo(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load stock %s: %w", id, err)
	}

	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      request.Params.URI,
			MIMEType: "text/markdown",
			Text:     format.StockMarkdown(info),
		},
	}, nil
}

// handleFundResource serves avanza://fund/{id}
func (s *Server) handleFundResource(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	id, err := resourceID(request.Params.URI, "avanza://fund/")
	if err != nil {
		return nil, err
	}

	info, err := s.market.GetFundInfo(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load fund %s: %w", id, err)
	}

	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      request.Params.URI,
			MIMEType: "text/markdown",
			Text:     format.FundMarkdown(info),
		},
	}, nil
}
