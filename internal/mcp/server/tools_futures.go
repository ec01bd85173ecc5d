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
)

// registerFutureForwardTools registers futures/forwards tools
func (s *Server) registerFutureForwardTools() {
	properties := paginationProperties("strikePrice", "desc")
	properties["underlying_instruments"] = listArgument("Filter by underlying instrument IDs")
	properties["option_types"] = listArgument("Filter by option types")
	properties["end_dates"] = listArgument("Filter by end dates (YYYY-MM-DD)")

	// Tool: list_futures_forwards
	s.mcpServer.AddTool(mcp.Tool{
		Name:        "list_futures_forwards",
		Description: "List available futures and forward contracts, with optional filtering by underlying instruments, option types, and end dates.",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: properties,
		},
	}, s.handleListFuturesForwards)

	// Tool: get_future_forward_filter_options
	s.mcpServer.AddTool(mcp.Tool{
		Name:        "get_future_forward_filter_options",
		Description: "Get the available filter options for the futures/forwards matrix: underlying instruments, option types, and end dates.",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, s.handleGetFutureForwardFilterOptions)

	s.addIDTool("get_future_forward_info",
		"Get detailed information about a future or forward contract: expiration date, underlying instrument, and current pricing.",
		"Avanza future/forward ID from the matrix or search results",
		func(ctx context.Context, id string) (any, error) {
			return s.market.GetFutureForwardInfo(ctx, id)
		})

	s.addIDTool("get_future_forward_details",
		"Get the extended future/forward record with complete contract terms.",
		"Avanza future/forward ID from the matrix or search results",
		func(ctx context.Context, id string) (any, error) {
			return s.market.GetFutureForwardDetails(ctx, id)
		})
}

// handleListFuturesForwards implements the list_futures_forwards tool
func (s *Server) handleListFuturesForwards(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if !s.rateLimiter.AllowCall() {
		return errorResponse("Rate limit exceeded. Please try again later."), nil
	}

	req := models.FutureForwardMatrixRequest{
		Filter: models.FutureForwardMatrixFilter{
			UnderlyingInstruments: stringSliceArg(request, "underlying_instruments"),
			OptionTypes:           stringSliceArg(request, "option_types"),
			EndDates:              stringSliceArg(request, "end_dates"),
			CallIndicators:        []string{},
		},
		Offset: intArg(request, "offset", 0),
		Limit:  clampFilterLimit(intArg(request, "limit", defaultFilterLimit)),
		SortBy: sortByArg(request, "strikePrice", models.SortDesc),
	}

	result, err := s.market.ListFuturesForwards(ctx, req)
	if err != nil {
		return s.serviceErrorResponse("list_futures_forwards", err), nil
	}
	return jsonResponse(result), nil
}

// handleGetFutureForwardFilterOptions implements the
// get_future_forward_filter_options tool
func (s *Server) handleGetFutureForwardFilterOptions(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if !s.rateLimiter.AllowCall() {
		return errorResponse("Rate limit exceeded. Please try again later."), nil
	}

	options, err := s.market.GetFutureForwardFilterOptions(ctx)
	if err != nil {
		return s.serviceErrorResponse("get_future_forward_filter_options", err), nil
	}
	return jsonResponse(options), nil
}
