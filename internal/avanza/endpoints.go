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

package avanza

import (
	"fmt"
	"net/http"
	"net/url"
	"sort"
	"strings"
)

// Operation is the logical name of a catalog entry.
type Operation string

// All public API operations. Every endpoint is unauthenticated.
const (
	OpSearch Operation = "search"

	OpStockInfo         Operation = "stock_info"
	OpStockAnalysis     Operation = "stock_analysis"
	OpStockQuote        Operation = "stock_quote"
	OpStockMarketplace  Operation = "stock_marketplace"
	OpStockOrderDepth   Operation = "stock_orderdepth"
	OpStockTrades       Operation = "stock_trades"
	OpStockBrokerTrades Operation = "stock_broker_trades"
	OpStockChart        Operation = "stock_chart"

	OpMarketMakerChart Operation = "marketmaker_chart"

	OpFundInfo           Operation = "fund_info"
	OpFundSustainability Operation = "fund_sustainability"
	OpFundChart          Operation = "fund_chart"
	OpFundChartPeriods   Operation = "fund_chart_periods"
	OpFundDescription    Operation = "fund_description"

	OpCertificateFilter  Operation = "certificate_filter"
	OpCertificateInfo    Operation = "certificate_info"
	OpCertificateDetails Operation = "certificate_details"

	OpWarrantFilter  Operation = "warrant_filter"
	OpWarrantInfo    Operation = "warrant_info"
	OpWarrantDetails Operation = "warrant_details"

	OpETFFilter  Operation = "etf_filter"
	OpETFInfo    Operation = "etf_info"
	OpETFDetails Operation = "etf_details"

	OpFutureForwardMatrix        Operation = "future_forward_matrix"
	OpFutureForwardFilterOptions Operation = "future_forward_filter_options"
	OpFutureForwardInfo          Operation = "future_forward_info"
	OpFutureForwardDetails       Operation = "future_forward_details"

	OpNumberOfOwners Operation = "number_of_owners"
	OpShortSelling   Operation = "short_selling"
)

// Endpoint pairs a URL path template with its HTTP verb and the exact set
// of placeholders the template requires.
type Endpoint struct {
	Method       string
	Template     string
	Placeholders []string
}

// catalog is the static operation table. Lookups for known operations
// never fail; the table is immutable after init.
var catalog = map[Operation]Endpoint{
	OpSearch: {http.MethodPost, "/_api/search/filtered-search", nil},

	OpStockInfo:         {http.MethodGet, "/_api/market-guide/stock/{id}", []string{"id"}},
	OpStockAnalysis:     {http.MethodGet, "/_api/market-guide/stock/{id}/analysis", []string{"id"}},
	OpStockQuote:        {http.MethodGet, "/_api/market-guide/stock/{id}/quote", []string{"id"}},
	OpStockMarketplace:  {http.MethodGet, "/_api/market-guide/stock/{id}/marketplace", []string{"id"}},
	OpStockOrderDepth:   {http.MethodGet, "/_api/market-guide/stock/{id}/orderdepth", []string{"id"}},
	OpStockTrades:       {http.MethodGet, "/_api/market-guide/stock/{id}/trades", []string{"id"}},
	OpStockBrokerTrades: {http.MethodGet, "/_api/market-guide/stock/{id}/broker-trade-summaries", []string{"id"}},
	OpStockChart:        {http.MethodGet, "/_api/price-chart/stock/{id}", []string{"id"}},

	OpMarketMakerChart: {http.MethodGet, "/_api/price-chart/marketmaker/{id}", []string{"id"}},

	OpFundInfo:           {http.MethodGet, "/_api/fund-guide/guide/{id}", []string{"id"}},
	OpFundSustainability: {http.MethodGet, "/_api/fund-reference/sustainability/{id}", []string{"id"}},
	OpFundChart:          {http.MethodGet, "/_api/fund-guide/chart/{id}/{time_period}", []string{"id", "time_period"}},
	OpFundChartPeriods:   {http.MethodGet, "/_api/fund-guide/chart/timeperiods/{id}", []string{"id"}},
	OpFundDescription:    {http.MethodGet, "/_api/fund-guide/description/{id}", []string{"id"}},

	OpCertificateFilter:  {http.MethodPost, "/_api/market-certificate-filter/", nil},
	OpCertificateInfo:    {http.MethodGet, "/_api/market-guide/certificate/{id}", []string{"id"}},
	OpCertificateDetails: {http.MethodGet, "/_api/market-guide/certificate/{id}/details", []string{"id"}},

	OpWarrantFilter:  {http.MethodPost, "/_api/market-warrant-filter/", nil},
	OpWarrantInfo:    {http.MethodGet, "/_api/market-guide/warrant/{id}", []string{"id"}},
	OpWarrantDetails: {http.MethodGet, "/_api/market-guide/warrant/{id}/details", []string{"id"}},

	OpETFFilter:  {http.MethodPost, "/_api/market-etf-filter/", nil},
	OpETFInfo:    {http.MethodGet, "/_api/market-etf/{id}", []string{"id"}},
	OpETFDetails: {http.MethodGet, "/_api/market-etf/{id}/details", []string{"id"}},

	OpFutureForwardMatrix:        {http.MethodPost, "/_api/market-option-future-forward-list/matrix", nil},
	OpFutureForwardFilterOptions: {http.MethodGet, "/_api/market-option-future-forward-list/filter-options", nil},
	OpFutureForwardInfo:          {http.MethodGet, "/_api/market-guide/futureforward/{id}", []string{"id"}},
	OpFutureForwardDetails:       {http.MethodGet, "/_api/market-guide/futureforward/{id}/details", []string{"id"}},

	OpNumberOfOwners: {http.MethodGet, "/_api/market-guide/number-of-owners/{id}", []string{"id"}},
	OpShortSelling:   {http.MethodGet, "/_api/market-guide/short-selling/{id}", []string{"id"}},
}

// Lookup returns the catalog entry for an operation.
func Lookup(op Operation) (Endpoint, bool) {
	e, ok := catalog[op]
	return e, ok
}

// PlaceholderError reports a template/argument mismatch. It is a
// programming error on the caller's side, distinct from the network
// error taxonomy: no request is ever issued for a mismatched template.
type PlaceholderError struct {
	Operation  Operation
	Missing    []string
	Unexpected []string
}

// Error implements the error interface.
func (e *PlaceholderError) Error() string {
	var parts []string
	if len(e.Missing) > 0 {
		parts = append(parts, fmt.Sprintf("missing placeholders %v", e.Missing))
	}
	if len(e.Unexpected) > 0 {
		parts = append(parts, fmt.Sprintf("unexpected placeholders %v", e.Unexpected))
	}
	return fmt.Sprintf("avanza: endpoint %s: %s", e.Operation, strings.Join(parts, ", "))
}

// Resolve substitutes the arguments into the operation's path template.
// The supplied argument set must exactly match the template's required
// placeholder set; any mismatch fails loudly before a request is built.
func Resolve(op Operation, args map[string]string) (string, error) {
	e, ok := catalog[op]
	if !ok {
		return "", fmt.Errorf("avanza: unknown operation %q", op)
	}

	perr := &PlaceholderError{Operation: op}
	path := e.Template
	for _, name := range e.Placeholders {
		value, ok := args[name]
		if !ok || value == "" {
			perr.Missing = append(perr.Missing, name)
			continue
		}
		path = strings.ReplaceAll(path, "{"+name+"}", url.PathEscape(value))
	}
	for name := range args {
		if !contains(e.Placeholders, name) {
			perr.Unexpected = append(perr.Unexpected, name)
		}
	}
	sort.Strings(perr.Unexpected)

	if len(perr.Missing) > 0 || len(perr.Unexpected) > 0 {
		return "", perr
	}
	return path, nil
}

func contains(set []string, name string) bool {
	for _, s := range set {
		if s == name {
			return true
		}
	}
	return false
}
