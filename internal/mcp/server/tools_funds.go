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

// registerFundTools registers fund data tools
func (s *Server) registerFundTools() {
	s.addIDTool("get_fund_info",
		"Get detailed information about a mutual fund: NAV, performance, risk level, fees, and portfolio allocation.",
		"Avanza fund ID from search results",
		func(ctx context.Context, id string) (any, error) {
			return s.market.GetFundInfo(ctx, id)
		})

	s.addIDTool("get_fund_sustainability",
		"Get fund sustainability and ESG metrics: ESG scores, carbon metrics, product involvements, and UN SDG alignments.",
		"Avanza fund ID from search results",
		func(ctx context.Context, id string) (any, error) {
			return s.market.GetFundSustainability(ctx, id)
		})

	s.addIDTool("get_fund_chart_periods",
		"Get available fund performance periods with the fund's percentage change for each period.",
		"Avanza fund ID from search results",
		func(ctx context.Context, id string) (any, error) {
			periods, err := s.market.GetFundChartPeriods(ctx, id)
			if err != nil {
				return nil, err
			}
			return map[string]any{"periods": periods}, nil
		})

	s.addIDTool("get_fund_description",
		"Get detailed fund description and category information: investment strategy and category classification.",
		"Avanza fund ID from search results",
		func(ctx context.Context, id string) (any, error) {
			return s.market.GetFundDescription(ctx, id)
		})

	s.addIDTool("get_fund_holdings",
		"Get fund portfolio holdings and allocation breakdown: geographic allocation, sector allocation, and top holdings.",
		"Avanza fund ID from search results",
		func(ctx context.Context, id string) (any, error) {
			return s.market.GetFundHoldings(ctx, id)
		})

	// Tool: get_fund_chart
	s.mcpServer.AddTool(mcp.Tool{
		Name:        "get_fund_chart",
		Description: "Get fund chart data with historical performance. Returns a time series showing fund performance over the selected period.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"instrument_id": idArgument("Avanza fund ID from search results"),
				"time_period": map[string]interface{}{
					"type":        "string",
					"description": "Time period for chart data (default: three_years)",
					"enum": []string{
						"one_week", "one_month", "three_months",
						"one_year", "three_years", "five_years", "this_year",
					},
					"default": "three_years",
				},
			},
			Required: []string{"instrument_id"},
		},
	}, s.handleGetFundChart)
}

// handleGetFundChart implements the get_fund_chart tool
func (s *Server) handleGetFundChart(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if !s.rateLimiter.AllowCall() {
		return errorResponse("Rate limit exceeded. Please try again later."), nil
	}

	instrumentID, err := request.RequireString("instrument_id")
	if err != nil {
		return errorResponse("Missing or invalid 'instrument_id' argument"), nil
	}
	period := models.TimePeriod(request.GetString("time_period", string(models.PeriodThreeYears)))

	chart, err := s.market.GetFundChart(ctx, instrumentID, period)
	if err != nil {
		return s.serviceErrorResponse("get_fund_chart", err), nil
	}
	return jsonResponse(chart), nil
}
