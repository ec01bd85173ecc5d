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
	"strconv"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
)

// registerPrompts registers analysis and workflow prompt templates
func (s *Server) registerPrompts() {
	s.mcpServer.AddPrompt(mcp.NewPrompt("analyze_stock",
		mcp.WithPromptDescription("Comprehensive stock analysis workflow covering company information, price performance, and valuation metrics"),
		mcp.WithArgument("stock_symbol",
			mcp.ArgumentDescription("Stock ticker symbol or name to analyze"),
			mcp.RequiredArgument()),
	), s.handleAnalyzeStockPrompt)

	s.mcpServer.AddPrompt(mcp.NewPrompt("compare_funds",
		mcp.WithPromptDescription("Compare multiple funds on performance, fees, and risk metrics"),
		mcp.WithArgument("fund_names",
			mcp.ArgumentDescription("Comma-separated list of fund names to compare"),
			mcp.RequiredArgument()),
	), s.handleCompareFundsPrompt)

	s.mcpServer.AddPrompt(mcp.NewPrompt("screen_dividend_stocks",
		mcp.WithPromptDescription("Screen for dividend-paying stocks above a minimum yield"),
		mcp.WithArgument("min_yield",
			mcp.ArgumentDescription("Minimum dividend yield percentage (default: 3.0)")),
	), s.handleScreenDividendStocksPrompt)

	s.mcpServer.AddPrompt(mcp.NewPrompt("bulk_data_script_guide",
		mcp.WithPromptDescription("Guide for providing scripts instead of tool calls when the user requests data for 50+ items"),
		mcp.WithArgument("item_count",
			mcp.ArgumentDescription("Number of items to fetch"),
			mcp.RequiredArgument()),
		mcp.WithArgument("operation_type",
			mcp.ArgumentDescription("Type of operation, e.g. 'stock analysis' or 'ETF screening'"),
			mcp.RequiredArgument()),
	), s.handleBulkDataScriptGuidePrompt)

	s.mcpServer.AddPrompt(mcp.NewPrompt("decide_tool_or_script",
		mcp.WithPromptDescription("Decide whether to serve a request with tools or a script based on item count"),
		mcp.WithArgument("user_request",
			mcp.ArgumentDescription("What the user wants to do"),
			mcp.RequiredArgument()),
		mcp.WithArgument("estimated_items",
			mcp.ArgumentDescription("Estimated number of items to process"),
			mcp.RequiredArgument()),
	), s.handleDecideToolOrScriptPrompt)

	s.mcpServer.AddPrompt(mcp.NewPrompt("analyze_vs_fetch",
		mcp.WithPromptDescription("Distinguish between analysis (use tools) and bulk fetching (use scripts)"),
		mcp.WithArgument("operation_description",
			mcp.ArgumentDescription("What the user wants to do"),
			mcp.RequiredArgument()),
		mcp.WithArgument("requires_bulk_data",
			mcp.ArgumentDescription("Whether the operation needs 50+ items (true/false)")),
	), s.handleAnalyzeVsFetchPrompt)
}

func promptResult(description, text string) *mcp.GetPromptResult {
	return mcp.NewGetPromptResult(description, []mcp.PromptMessage{
		mcp.NewPromptMessage(mcp.RoleUser, mcp.NewTextContent(text)),
	})
}

func (s *Server) handleAnalyzeStockPrompt(ctx context.Context, request mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	symbol := request.Params.Arguments["stock_symbol"]
	if symbol == "" {
		return nil, fmt.Errorf("missing required argument: stock_symbol")
	}

	text := fmt.Sprintf(`Please perform a comprehensive analysis of %s:

1. **Find the stock**: Use search_instruments() to find the stock and get its instrument_id
2. **Get detailed information**: Use get_stock_info() to retrieve:
   - Current price and recent performance
   - Company description and sector
   - Key financial ratios (P/E, dividend yield, etc.)
3. **Analyze price trends**: Use get_stock_chart() to get historical data (1 year)
4. **Check fundamentals**: Use get_stock_analysis() and get_company_financials()
5. **Assess the orderbook**: Use get_orderbook() to check current liquidity

Based on this data, provide:
- **Current valuation assessment** (is it overvalued/undervalued?)
- **Price trend analysis** (what's the recent momentum?)
- **Key risks and opportunities**
- **Overall investment perspective**

Focus on factual analysis based on the available data.
`, symbol)

	return promptResult("Stock analysis workflow", text), nil
}

func (s *Server) handleCompareFundsPrompt(ctx context.Context, request mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	fundNames := request.Params.Arguments["fund_names"]
	if fundNames == "" {
		return nil, fmt.Errorf("missing required argument: fund_names")
	}

	var funds []string
	for _, f := range strings.Split(fundNames, ",") {
		if f = strings.TrimSpace(f); f != "" {
			funds = append(funds, f)
		}
	}

	var list strings.Builder
	for _, fund := range funds {
		fmt.Fprintf(&list, "- %s\n", fund)
	}

	text := fmt.Sprintf(`Compare the following funds:
%s
For each fund:
1. **Find the fund**: Use search_instruments() with instrument_type="fund"
2. **Get fund details**: Use get_fund_info() to retrieve:
   - Current NAV and recent performance
   - Performance over multiple periods (YTD, 1Y, 3Y, 5Y)
   - Risk rating and metrics
   - Fees (ongoing charges, entry/exit fees)
   - Fund characteristics (type, category, AUM)

Then create a comparison table covering NAV, returns per period, risk
level (1-7), ongoing charges, and fund size.

Conclude with:
- Which fund has the best risk-adjusted returns?
- Which has the lowest fees?
- Recommendation based on the comparison
`, list.String())

	return promptResult("Fund comparison workflow", text), nil
}

func (s *Server) handleScreenDividendStocksPrompt(ctx context.Context, request mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	minYield := 3.0
	if raw := request.Params.Arguments["min_yield"]; raw != "" {
		if parsed, err := strconv.ParseFloat(raw, 64); err == nil {
			minYield = parsed
		}
	}

	text := fmt.Sprintf(`Help me find dividend stocks with yields above %.1f%%.

Process:
1. Search for major Swedish stocks (you might start with well-known companies)
2. For each stock, use get_stock_info() to check the dividend yield
3. Filter for stocks with dividend yield >= %.1f%%

Present results as a table:

| Stock | Ticker | Price | Dividend Yield | P/E Ratio | Market Cap |
|-------|--------|-------|----------------|-----------|------------|
| ...   | ...    | ...   | ...%%          | ...       | ...        |

Sort by dividend yield (highest first) and include:
- Brief assessment of sustainability (based on P/E and other metrics)
- Any notable risks or observations
`, minYield, minYield)

	return promptResult("Dividend screening workflow", text), nil
}

func (s *Server) handleBulkDataScriptGuidePrompt(ctx context.Context, request mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	itemCount := request.Params.Arguments["item_count"]
	operationType := request.Params.Arguments["operation_type"]
	if itemCount == "" || operationType == "" {
		return nil, fmt.Errorf("missing required arguments: item_count, operation_type")
	}

	text := fmt.Sprintf(`For %s involving %s items, I should provide a script instead of using MCP tools.

## Why Not Use MCP Tools?

Making %s MCP tool calls would:
- Take several minutes to complete
- Overload the MCP connection
- Be inefficient and error-prone

## What to Provide Instead

A ready-to-run script that:
- Fetches all %s items (see avanza://docs/usage for endpoint reference)
- Saves data to a file for analysis
- Includes error handling and rate limiting (0.5-1s delay between requests)

## Next Steps

After the user runs the script:
1. They share the output file or key findings
2. Analyze patterns together
3. Drill down into specific interesting items using MCP tools
`, operationType, itemCount, itemCount, itemCount)

	return promptResult("Bulk data script guidance", text), nil
}

func (s *Server) handleDecideToolOrScriptPrompt(ctx context.Context, request mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	userRequest := request.Params.Arguments["user_request"]
	rawItems := request.Params.Arguments["estimated_items"]
	if userRequest == "" || rawItems == "" {
		return nil, fmt.Errorf("missing required arguments: user_request, estimated_items")
	}

	items, err := strconv.Atoi(rawItems)
	if err != nil {
		return nil, fmt.Errorf("estimated_items must be an integer: %w", err)
	}

	var approach, reason string
	switch {
	case items <= 20:
		approach = "USE MCP TOOLS"
		reason = "small enough for interactive exploration"
	case items <= 50:
		approach = "ASK USER PREFERENCE"
		reason = "medium size - tools work but a script is faster"
	default:
		approach = "PROVIDE SCRIPT"
		reason = "too many for MCP tools - a script is much more efficient"
	}

	text := fmt.Sprintf(`Request: "%s"
Estimated items: %d

## Decision: %s

**Reason**: %s

See avanza://docs/usage for endpoint reference and script templates.
`, userRequest, items, approach, reason)

	return promptResult("Tool versus script decision", text), nil
}

func (s *Server) handleAnalyzeVsFetchPrompt(ctx context.Context, request mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	description := request.Params.Arguments["operation_description"]
	if description == "" {
		return nil, fmt.Errorf("missing required argument: operation_description")
	}
	requiresBulk := request.Params.Arguments["requires_bulk_data"] == "true"

	var text string
	if requiresBulk {
		text = fmt.Sprintf(`Operation: "%s"

## This Requires Bulk Data Fetching

### Two-Step Approach:

**Step 1: Fetch Data (the user does this)**
Provide a script that fetches the data, saves it to a file, and handles
errors gracefully. See avanza://docs/usage for endpoint reference.

**Step 2: Analyze Data (assist with this)**
After the data exists:
- The user shares the file or key metrics
- Use MCP tools for specific deep dives
- Explore patterns together

### Why This Approach?

- **Efficient**: bulk fetching beats sequential MCP calls
- **Reliable**: better error handling, can resume if failed
- **Flexible**: the user owns the data for other analyses
`, description)
	} else {
		text = fmt.Sprintf(`Operation: "%s"

## This Can Use MCP Tools Directly

Use MCP tools interactively because:
- The dataset is small (< 20 items)
- Interactive exploration is valuable
- Results are available immediately

Proceed with the appropriate MCP tools for this analysis.
`, description)
	}

	return promptResult("Analyze versus fetch guidance", text), nil
}
