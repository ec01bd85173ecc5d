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

// registerStockTools registers stock market data tools
func (s *Server) registerStockTools() {
	s.addIDTool("get_stock_info",
		"Get detailed information about a stock: price quote, company profile, key indicators, listing and marketplace data.",
		"Avanza instrument ID from search results",
		func(ctx context.Context, id string) (any, error) {
			return s.market.GetStockInfo(ctx, id)
		})

	s.addIDTool("get_stock_quote",
		"Get the real-time price quote for a stock: last price, bid/ask, change, spread, and traded volume.",
		"Avanza instrument ID from search results",
		func(ctx context.Context, id string) (any, error) {
			return s.market.GetStockQuote(ctx, id)
		})

	s.addIDTool("get_stock_analysis",
		"Get fundamental analysis data for a stock: key ratios by year and quarter, dividends, and company financials.",
		"Avanza instrument ID from search results",
		func(ctx context.Context, id string) (any, error) {
			return s.market.GetStockAnalysis(ctx, id)
		})

	s.addIDTool("get_marketplace_info",
		"Get marketplace status and trading hours for a stock's exchange.",
		"Avanza instrument ID from search results",
		func(ctx context.Context, id string) (any, error) {
			return s.market.GetMarketplaceInfo(ctx, id)
		})

	s.addIDTool("get_orderbook",
		"Get real-time order book depth for an instrument: current buy and sell orders with prices and volumes at each level. Levels are empty outside trading hours.",
		"Avanza instrument ID from search results",
		func(ctx context.Context, id string) (any, error) {
			return s.market.GetOrderDepth(ctx, id)
		})

	s.addIDTool("get_recent_trades",
		"Get recent trades for an instrument: price, volume, buyer and seller for each trade.",
		"Avanza instrument ID from search results",
		func(ctx context.Context, id string) (any, error) {
			return s.market.GetTrades(ctx, id)
		})

	s.addIDTool("get_broker_trade_summary",
		"Get per-broker trade summaries for an instrument: net buy/sell volumes by broker.",
		"Avanza instrument ID from search results",
		func(ctx context.Context, id string) (any, error) {
			return s.market.GetBrokerTrades(ctx, id)
		})

	s.addIDTool("get_dividends",
		"Get dividend history for a stock: dividends by year including amounts and yields.",
		"Avanza instrument ID from search results",
		func(ctx context.Context, id string) (any, error) {
			return s.market.GetDividends(ctx, id)
		})

	s.addIDTool("get_company_financials",
		"Get company financial statements for a stock: income and balance figures by year, quarter, and trailing twelve months.",
		"Avanza instrument ID from search results",
		func(ctx context.Context, id string) (any, error) {
			return s.market.GetCompanyFinancials(ctx, id)
		})

	// Tool: get_stock_chart
	s.mcpServer.AddTool(mcp.Tool{
		Name:        "get_stock_chart",
		Description: "Get historical price chart data (OHLC) for a stock. Retrieves time series price data with open, high, low, close values and volume.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"instrument_id": idArgument("Avanza instrument ID from search results"),
				"time_period": map[string]interface{}{
					"type":        "string",
					"description": "Time period for chart data (default: one_year)",
					"enum": []string{
						"today", "one_week", "one_month", "three_months",
						"this_year", "one_year", "three_years", "five_years",
					},
					"default": "one_year",
				},
			},
			Required: []string{"instrument_id"},
		},
	}, s.handleGetStockChart)
}

// handleGetStockChart implements the get_stock_chart tool
func (s *Server) handleGetStockChart(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if !s.rateLimiter.AllowCall() {
		return errorResponse("Rate limit exceeded. Please try again later."), nil
	}

	instrumentID, err := request.RequireString("instrument_id")
	if err != nil {
		return errorResponse("Missing or invalid 'instrument_id' argument"), nil
	}
	period := models.TimePeriod(request.GetString("time_period", string(models.PeriodOneYear)))

	chart, err := s.market.GetStockChart(ctx, instrumentID, period)
	if err != nil {
		return s.serviceErrorResponse("get_stock_chart", err), nil
	}
	return jsonResponse(chart), nil
}
