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

// registerInstrumentTools registers cross-instrument tools
func (s *Server) registerInstrumentTools() {
	s.addIDTool("get_number_of_owners",
		"Get the number of Avanza customers who own an instrument. A popularity indicator.",
		"Avanza instrument ID from search results",
		func(ctx context.Context, id string) (any, error) {
			return s.market.GetNumberOfOwners(ctx, id)
		})

	s.addIDTool("get_short_selling",
		"Get short-interest data for an instrument: short selling volume and percentage of shares sold short.",
		"Avanza instrument ID from search results",
		func(ctx context.Context, id string) (any, error) {
			return s.market.GetShortSelling(ctx, id)
		})

	// Tool: get_marketmaker_chart
	s.mcpServer.AddTool(mcp.Tool{
		Name:        "get_marketmaker_chart",
		Description: "Get price chart data for traded products (certificates, warrants, ETFs). Returns OHLC candlestick data with market maker information.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"instrument_id": idArgument("Avanza instrument ID (orderbookId)"),
				"time_period": map[string]interface{}{
					"type":        "string",
					"description": "Time period for chart data (default: today)",
					"enum": []string{
						"today", "one_week", "one_month", "three_months",
						"this_year", "one_year", "three_years", "five_years",
					},
					"default": "today",
				},
			},
			Required: []string{"instrument_id"},
		},
	}, s.handleGetMarketMakerChart)
}

// handleGetMarketMakerChart implements the get_marketmaker_chart tool
func (s *Server) handleGetMarketMakerChart(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if !s.rateLimiter.AllowCall() {
		return errorResponse("Rate limit exceeded. Please try again later."), nil
	}

	instrumentID, err := request.RequireString("instrument_id")
	if err != nil {
		return errorResponse("Missing or invalid 'instrument_id' argument"), nil
	}
	period := models.TimePeriod(request.GetString("time_period", string(models.PeriodToday)))

	chart, err := s.market.GetMarketMakerChart(ctx, instrumentID, period)
	if err != nil {
		return s.serviceErrorResponse("get_marketmaker_chart", err), nil
	}
	return jsonResponse(chart), nil
}
