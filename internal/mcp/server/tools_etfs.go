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

// registerETFTools registers ETF tools
func (s *Server) registerETFTools() {
	properties := paginationProperties("numberOfOwners", "desc")
	properties["asset_categories"] = listArgument("Filter by asset categories")
	properties["sub_categories"] = listArgument("Filter by sub-categories")
	properties["exposures"] = listArgument("Filter by geographic or thematic exposures")
	properties["risk_scores"] = listArgument("Filter by risk scores")
	properties["directions"] = listArgument("Filter by direction, e.g. [\"long\"] or [\"short\"]")
	properties["issuers"] = listArgument("Filter by issuer names")
	properties["currency_codes"] = listArgument("Filter by currency codes, e.g. [\"SEK\", \"USD\"]")

	// Tool: filter_etfs
	s.mcpServer.AddTool(mcp.Tool{
		Name:        "filter_etfs",
		Description: "Filter and list exchange-traded funds with optional filtering and pagination. Filters cover asset category, exposure, issuer, risk score, and currency.",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: properties,
		},
	}, s.handleFilterETFs)

	s.addIDTool("get_etf_info",
		"Get detailed information about an ETF: pricing, key indicators, listing, and marketplace data.",
		"Avanza ETF ID from filter or search results",
		func(ctx context.Context, id string) (any, error) {
			return s.market.GetETFInfo(ctx, id)
		})

	s.addIDTool("get_etf_details",
		"Get the extended ETF record with complete product data.",
		"Avanza ETF ID from filter or search results",
		func(ctx context.Context, id string) (any, error) {
			return s.market.GetETFDetails(ctx, id)
		})
}

// handleFilterETFs implements the filter_etfs tool
func (s *Server) handleFilterETFs(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if !s.rateLimiter.AllowCall() {
		return errorResponse("Rate limit exceeded. Please try again later."), nil
	}

	req := models.ETFFilterRequest{
		Filter: models.ETFFilter{
			AssetCategories: stringSliceArg(request, "asset_categories"),
			SubCategories:   stringSliceArg(request, "sub_categories"),
			Exposures:       stringSliceArg(request, "exposures"),
			RiskScores:      stringSliceArg(request, "risk_scores"),
			Directions:      stringSliceArg(request, "directions"),
			Issuers:         stringSliceArg(request, "issuers"),
			CurrencyCodes:   stringSliceArg(request, "currency_codes"),
		},
		Offset: intArg(request, "offset", 0),
		Limit:  clampFilterLimit(intArg(request, "limit", defaultFilterLimit)),
		SortBy: sortByArg(request, "numberOfOwners", models.SortDesc),
	}

	result, err := s.market.FilterETFs(ctx, req)
	if err != nil {
		return s.serviceErrorResponse("filter_etfs", err), nil
	}
	return jsonResponse(result), nil
}
