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

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/marknad/avanza-mcp/internal/models"
	"github.com/marknad/avanza-mcp/internal/service"
)

// registerSearchTools registers instrument search tools
func (s *Server) registerSearchTools() {
	// Tool: search_instruments
	s.mcpServer.AddTool(mcp.Tool{
		Name:        "search_instruments",
		Description: "Search for financial instruments on Avanza. Searches across stocks, funds, ETFs, certificates, and warrants. Returns detailed search results including price info, sectors, and metadata.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"query": map[string]interface{}{
					"type":        "string",
					"description": "Search term (company name, ticker symbol, or ISIN)",
				},
				"instrument_type": map[string]interface{}{
					"type":        "string",
					"description": "Type of instrument to search for: stock, fund, etf, certificate, warrant, or all (default: all)",
					"enum":        []string{"stock", "fund", "etf", "certificate", "warrant", "all"},
					"default":     "all",
				},
				"limit": map[string]interface{}{
					"type":        "integer",
					"description": "Maximum number of results to return (1-50, default: 10)",
					"default":     service.DefaultSearchLimit,
				},
			},
			Required: []string{"query"},
		},
	}, s.handleSearchInstruments)

	// Tool: get_instrument_by_order_book_id
	s.mcpServer.AddTool(mcp.Tool{
		Name:        "get_instrument_by_order_book_id",
		Description: "Look up a financial instrument by its order book ID. The order book ID is the unique identifier returned from search results.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"order_book_id": map[string]interface{}{
					"type":        "string",
					"description": "Order book ID to search for",
				},
			},
			Required: []string{"order_book_id"},
		},
	}, s.handleGetInstrumentByOrderBookID)
}

// handleSearchInstruments implements the search_instruments tool
func (s *Server) handleSearchInstruments(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if !s.rateLimiter.AllowCall() {
		return errorResponse("Rate limit exceeded. Please try again later."), nil
	}

	query, err := request.RequireString("query")
	if err != nil {
		return errorResponse("Missing or invalid 'query' argument"), nil
	}

	instrumentType := models.InstrumentTypeFromString(request.GetString("instrument_type", "all"))
	limit := intArg(request, "limit", service.DefaultSearchLimit)

	response, err := s.search.Instruments(ctx, query, limit, instrumentType)
	if err != nil {
		return s.serviceErrorResponse("search_instruments", err), nil
	}
	return jsonResponse(response), nil
}

// handleGetInstrumentByOrderBookID implements the
// get_instrument_by_order_book_id tool
func (s *Server) handleGetInstrumentByOrderBookID(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if !s.rateLimiter.AllowCall() {
		return errorResponse("Rate limit exceeded. Please try again later."), nil
	}

	orderBookID, err := request.RequireString("order_book_id")
	if err != nil {
		return errorResponse("Missing or invalid 'order_book_id' argument"), nil
	}

	response, err := s.search.Instruments(ctx, orderBookID, 1, models.TypeAll)
	if err != nil {
		return s.serviceErrorResponse("get_instrument_by_order_book_id", err), nil
	}
	if len(response.Hits) == 0 {
		return errorResponse("No instrument found with that order book ID"), nil
	}
	return jsonResponse(response.Hits[0]), nil
}
