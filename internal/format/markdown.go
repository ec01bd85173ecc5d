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

// Package format renders instrument records as markdown for resource
// consumers.
package format

import (
	"fmt"
	"strings"

	"github.com/marknad/avanza-mcp/internal/models"
)

const defaultCurrency = "SEK"

// StockMarkdown renders a stock record as a markdown document with price,
// company profile and key ratios.
func StockMarkdown(stock *models.StockInfo) string {
	var b strings.Builder

	name := stock.Name
	if name == "" {
		name = "Unknown"
	}
	currency := defaultCurrency
	if stock.Listing != nil && stock.Listing.Currency != "" {
		currency = stock.Listing.Currency
	}

	fmt.Fprintf(&b, "# %s\n\n", name)

	price := "N/A"
	var change, changePct float64
	if q := stock.Quote; q != nil {
		if q.Last != nil {
			price = fmt.Sprintf("%g", *q.Last)
		}
		if q.Change != nil {
			change = *q.Change
		}
		if q.ChangePercent != nil {
			changePct = *q.ChangePercent
		}
	}
	fmt.Fprintf(&b, "**Price:** %s %s\n", price, currency)
	fmt.Fprintf(&b, "**Change:** %+.2f (%+.2f%%)\n\n", change, changePct)

	if c := stock.Company; c != nil {
		if c.Description != nil && *c.Description != "" {
			fmt.Fprintf(&b, "## Company\n%s\n\n", *c.Description)
		}
		if c.MarketCapital != nil {
			cur := c.MarketCapital.Currency
			if cur == "" {
				cur = currency
			}
			fmt.Fprintf(&b, "**Market Cap:** %.0f %s\n", c.MarketCapital.Value, cur)
		}
	}

	if k := stock.KeyIndicators; k != nil && (k.PriceEarningsRatio != nil || k.DirectYield != nil) {
		b.WriteString("\n## Key Ratios\n")
		if k.PriceEarningsRatio != nil {
			fmt.Fprintf(&b, "- **P/E Ratio:** %.2f\n", *k.PriceEarningsRatio)
		}
		if k.DirectYield != nil {
			fmt.Fprintf(&b, "- **Dividend Yield:** %.2f%%\n", *k.DirectYield)
		}
	}

	return b.String()
}

// FundMarkdown renders a fund record as a markdown document with NAV,
// performance, risk and fees.
func FundMarkdown(fund *models.FundInfo) string {
	var b strings.Builder

	name := fund.Name
	if name == "" {
		name = "Unknown"
	}
	currency := defaultCurrency
	if fund.Currency != nil && *fund.Currency != "" {
		currency = *fund.Currency
	}

	fmt.Fprintf(&b, "# %s\n\n", name)

	nav := "N/A"
	if fund.NAV != nil {
		nav = fmt.Sprintf("%g", *fund.NAV)
	}
	fmt.Fprintf(&b, "**NAV:** %s %s\n\n", nav, currency)

	if fund.Description != nil && *fund.Description != "" {
		fmt.Fprintf(&b, "%s\n\n", *fund.Description)
	}

	if d := fund.Development; d != nil && (d.ThisYear != nil || d.OneYear != nil || d.ThreeYears != nil) {
		b.WriteString("## Performance\n")
		if d.ThisYear != nil {
			fmt.Fprintf(&b, "- **YTD:** %+.2f%%\n", *d.ThisYear)
		}
		if d.OneYear != nil {
			fmt.Fprintf(&b, "- **1 Year:** %+.2f%%\n", *d.OneYear)
		}
		if d.ThreeYears != nil {
			fmt.Fprintf(&b, "- **3 Years:** %+.2f%%\n", *d.ThreeYears)
		}
	}

	if fund.Risk != nil {
		fmt.Fprintf(&b, "\n**Risk Level:** %d/7\n", *fund.Risk)
	}
	if fund.Fee != nil && fund.Fee.OngoingCharges != nil {
		fmt.Fprintf(&b, "**Ongoing Charges:** %.2f%%\n", *fund.Fee.OngoingCharges)
	}

	return b.String()
}
