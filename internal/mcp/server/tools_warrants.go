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

// registerWarrantTools registers warrant tools
func (s *Server) registerWarrantTools() {
	properties := paginationProperties("name", "asc")
	properties["directions"] = listArgument("Filter by direction, e.g. [\"long\"] or [\"short\"]")
	properties["sub_types"] = listArgument("Filter by sub-type, e.g. [\"TURBO\"] or [\"MINI\"]")
	properties["issuers"] = listArgument("Filter by issuer names")
	properties["underlying_instruments"] = listArgument("Filter by underlying instrument IDs")

	// Tool: filter_warrants
	s.mcpServer.AddTool(mcp.Tool{
		Name:        "filter_warrants",
		Description: "Filter and list warrants (turbos, mini futures, etc.) with pagination. Filters cover direction, sub-type, issuer, and underlying instrument.",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: properties,
		},
	}, s.handleFilterWarrants)

	s.addIDTool("get_warrant_info",
		"Get detailed information about a warrant: pricing, direction, issuer, and underlying instrument.",
		"Avanza warrant ID from filter or search results",
		func(ctx context.Context, id string) (any, error) {
			return s.market.GetWarrantInfo(ctx, id)
		})

	s.addIDTool("get_warrant_details",
		"Get the extended warrant record with complete product terms.",
		"Avanza warrant ID from filter or search results",
		func(ctx context.Context, id string) (any, error) {
			return s.market.GetWarrantDetails(ctx, id)
		})
}

// handleFilterWarrants implements the filter_warrants tool
func (s *Server) handleFilterWarrants(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if !s.rateLimiter.AllowCall() {
		return errorResponse("Rate limit exceeded. Please try again later."), nil
	}

	req := models.WarrantFilterRequest{
		Filter: models.WarrantFilter{
			Directions:            stringSliceArg(request, "directions"),
			SubTypes:              stringSliceArg(request, "sub_types"),
			Issuers:               stringSliceArg(request, "issuers"),
			UnderlyingInstruments: stringSliceArg(request, "underlying_instruments"),
		},
		Offset: intArg(request, "offset", 0),
		Limit:  clampFilterLimit(intArg(request, "limit", defaultFilterLimit)),
		SortBy: sortByArg(request, "name", models.SortAsc),
	}

	result, err := s.market.FilterWarrants(ctx, req)
	if err != nil {
		return s.serviceErrorResponse("filter_warrants", err), nil
	}
	return jsonResponse(result), nil
}
