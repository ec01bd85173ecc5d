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

// maxFilterLimit caps the page size accepted by the filter endpoints.
const maxFilterLimit = 100

// defaultFilterLimit applies when filter tools are called without a limit.
const defaultFilterLimit = 20

func clampFilterLimit(limit int) int {
	switch {
	case limit <= 0:
		return defaultFilterLimit
	case limit > maxFilterLimit:
		return maxFilterLimit
	default:
		return limit
	}
}

// sortByArg builds a sort configuration from the shared sort arguments
func sortByArg(request mcp.CallToolRequest, defaultField string, defaultOrder models.SortOrder) models.SortBy {
	order := models.SortOrder(request.GetString("sort_order", string(defaultOrder)))
	if order != models.SortAsc && order != models.SortDesc {
		order = defaultOrder
	}
	return models.SortBy{
		Field: request.GetString("sort_field", defaultField),
		Order: order,
	}
}

// paginationProperties is the shared schema for offset/limit/sort
// arguments on filter tools
func paginationProperties(defaultSortField, defaultSortOrder string) map[string]interface{} {
	return map[string]interface{}{
		"offset": map[string]interface{}{
			"type":        "integer",
			"description": "Number of results to skip (default: 0)",
			"default":     0,
		},
		"limit": map[string]interface{}{
			"type":        "integer",
			"description": "Maximum number of results to return (default: 20, max: 100)",
			"default":     defaultFilterLimit,
		},
		"sort_field": map[string]interface{}{
			"type":        "string",
			"description": "Field to sort by (default: " + defaultSortField + ")",
			"default":     defaultSortField,
		},
		"sort_order": map[string]interface{}{
			"type":        "string",
			"description": "Sort order (default: " + defaultSortOrder + ")",
			"enum":        []string{"asc", "desc"},
			"default":     defaultSortOrder,
		},
	}
}

func listArgument(description string) map[string]interface{} {
	return map[string]interface{}{
		"type":        "array",
		"items":       map[string]interface{}{"type": "string"},
		"description": description,
	}
}

// registerCertificateTools registers certificate tools
func (s *Server) registerCertificateTools() {
	properties := paginationProperties("name", "asc")
	properties["directions"] = listArgument("Filter by direction, e.g. [\"long\"] or [\"short\"]")
	properties["leverages"] = map[string]interface{}{
		"type":        "array",
		"items":       map[string]interface{}{"type": "number"},
		"description": "Filter by leverage values, e.g. [1.0, 2.0]",
	}
	properties["issuers"] = listArgument("Filter by issuer names")
	properties["categories"] = listArgument("Filter by categories")
	properties["exposures"] = listArgument("Filter by exposures")
	properties["underlying_instruments"] = listArgument("Filter by underlying instrument IDs")

	// Tool: filter_certificates
	s.mcpServer.AddTool(mcp.Tool{
		Name:        "filter_certificates",
		Description: "Filter and list certificates with optional filtering and pagination. Filters cover direction (long/short), leverage, issuer, category, exposure, and underlying instrument.",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: properties,
		},
	}, s.handleFilterCertificates)

	s.addIDTool("get_certificate_info",
		"Get detailed information about a certificate: pricing, leverage, issuer, and underlying instrument.",
		"Avanza certificate ID from filter or search results",
		func(ctx context.Context, id string) (any, error) {
			return s.market.GetCertificateInfo(ctx, id)
		})

	s.addIDTool("get_certificate_details",
		"Get the extended certificate record with complete product terms.",
		"Avanza certificate ID from filter or search results",
		func(ctx context.Context, id string) (any, error) {
			return s.market.GetCertificateDetails(ctx, id)
		})
}

// handleFilterCertificates implements the filter_certificates tool
func (s *Server) handleFilterCertificates(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if !s.rateLimiter.AllowCall() {
		return errorResponse("Rate limit exceeded. Please try again later."), nil
	}

	req := models.CertificateFilterRequest{
		Filter: models.CertificateFilter{
			Directions:            stringSliceArg(request, "directions"),
			Leverages:             floatSliceArg(request, "leverages"),
			Issuers:               stringSliceArg(request, "issuers"),
			Categories:            stringSliceArg(request, "categories"),
			Exposures:             stringSliceArg(request, "exposures"),
			UnderlyingInstruments: stringSliceArg(request, "underlying_instruments"),
		},
		Offset: intArg(request, "offset", 0),
		Limit:  clampFilterLimit(intArg(request, "limit", defaultFilterLimit)),
		SortBy: sortByArg(request, "name", models.SortAsc),
	}

	result, err := s.market.FilterCertificates(ctx, req)
	if err != nil {
		return s.serviceErrorResponse("filter_certificates", err), nil
	}
	return jsonResponse(result), nil
}
