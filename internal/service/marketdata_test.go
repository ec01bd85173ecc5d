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

package service

import (
	"context"
	"encoding/json"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marknad/avanza-mcp/internal/avanza"
	"github.com/marknad/avanza-mcp/internal/models"
)

type fakeClient struct {
	lastPath   string
	lastParams url.Values
	lastBody   any
	response   json.RawMessage
	err        error
}

func (f *fakeClient) Get(_ context.Context, path string, params url.Values) (json.RawMessage, error) {
	f.lastPath = path
	f.lastParams = params
	return f.response, f.err
}

func (f *fakeClient) Post(_ context.Context, path string, body any) (json.RawMessage, error) {
	f.lastPath = path
	f.lastBody = body
	return f.response, f.err
}

func TestGetStockInfo(t *testing.T) {
	fake := &fakeClient{response: json.RawMessage(`{
		"orderbookId": "5247",
		"name": "Volvo B",
		"isin": "SE0000115446"
	}`)}
	svc := NewMarketData(fake)

	info, err := svc.GetStockInfo(context.Background(), "5247")
	require.NoError(t, err)
	assert.Equal(t, "/_api/market-guide/stock/5247", fake.lastPath)
	assert.Equal(t, "5247", info.OrderbookID)
	assert.Equal(t, "Volvo B", info.Name)
}

func TestGetStockInfoEscapesID(t *testing.T) {
	fake := &fakeClient{response: json.RawMessage(`{"orderbookId": "x", "name": "x"}`)}
	svc := NewMarketData(fake)

	_, err := svc.GetStockInfo(context.Background(), "a/b")
	require.NoError(t, err)
	assert.Equal(t, "/_api/market-guide/stock/a%2Fb", fake.lastPath)
}

func TestGetStockInfoEmptyID(t *testing.T) {
	fake := &fakeClient{}
	svc := NewMarketData(fake)

	_, err := svc.GetStockInfo(context.Background(), "")
	require.Error(t, err)
	var perr *avanza.PlaceholderError
	require.ErrorAs(t, err, &perr)
	assert.Contains(t, perr.Missing, "id")
	assert.Empty(t, fake.lastPath, "no request should be issued")
}

func TestGetStockInfoPropagatesClientError(t *testing.T) {
	want := &avanza.Error{Kind: avanza.KindNotFound, StatusCode: 404}
	fake := &fakeClient{err: want}
	svc := NewMarketData(fake)

	_, err := svc.GetStockInfo(context.Background(), "5247")
	var aerr *avanza.Error
	require.ErrorAs(t, err, &aerr)
	assert.Equal(t, avanza.KindNotFound, aerr.Kind)
}

func TestGetStockInfoValidationFailure(t *testing.T) {
	fake := &fakeClient{response: json.RawMessage(`{"isin": "SE0000115446"}`)}
	svc := NewMarketData(fake)

	_, err := svc.GetStockInfo(context.Background(), "5247")
	var verr *models.ValidationError
	require.ErrorAs(t, err, &verr)
}

func TestGetDividendsProjection(t *testing.T) {
	fake := &fakeClient{response: json.RawMessage(`{
		"dividendsByYear": [{"year": 2025, "amount": 7.5}],
		"companyFinancialsByYear": [{"year": 2025}]
	}`)}
	svc := NewMarketData(fake)

	out, err := svc.GetDividends(context.Background(), "5247")
	require.NoError(t, err)
	assert.Equal(t, "/_api/market-guide/stock/5247/analysis", fake.lastPath)
	require.Contains(t, out, "dividendsByYear")
	assert.Len(t, out, 1, "projection keeps only dividend history")
	assert.Len(t, out["dividendsByYear"], 1)
}

func TestGetDividendsMissingField(t *testing.T) {
	fake := &fakeClient{response: json.RawMessage(`{}`)}
	svc := NewMarketData(fake)

	out, err := svc.GetDividends(context.Background(), "5247")
	require.NoError(t, err)
	assert.Equal(t, []any{}, out["dividendsByYear"])
}

func TestGetCompanyFinancialsProjection(t *testing.T) {
	fake := &fakeClient{response: json.RawMessage(`{
		"companyFinancialsByYear": [{"year": 2025}],
		"companyFinancialsByQuarter": [{"quarter": "Q2"}],
		"dividendsByYear": []
	}`)}
	svc := NewMarketData(fake)

	out, err := svc.GetCompanyFinancials(context.Background(), "5247")
	require.NoError(t, err)
	assert.Len(t, out, 3)
	assert.Len(t, out["companyFinancialsByYear"], 1)
	assert.Len(t, out["companyFinancialsByQuarter"], 1)
	assert.Equal(t, []any{}, out["companyFinancialsByQuarterTTM"])
	assert.NotContains(t, out, "dividendsByYear")
}

func TestGetStockChartPeriodParam(t *testing.T) {
	fake := &fakeClient{response: json.RawMessage(`{"ohlc": []}`)}
	svc := NewMarketData(fake)

	_, err := svc.GetStockChart(context.Background(), "5247", models.PeriodThreeMonths)
	require.NoError(t, err)
	assert.Equal(t, "/_api/price-chart/stock/5247", fake.lastPath)
	assert.Equal(t, "three_months", fake.lastParams.Get("timePeriod"))
}

func TestGetMarketMakerChartPeriodParam(t *testing.T) {
	fake := &fakeClient{response: json.RawMessage(`{"ohlc": []}`)}
	svc := NewMarketData(fake)

	_, err := svc.GetMarketMakerChart(context.Background(), "12345", models.PeriodToday)
	require.NoError(t, err)
	assert.Equal(t, "/_api/price-chart/marketmaker/12345", fake.lastPath)
	assert.Equal(t, "today", fake.lastParams.Get("timePeriod"))
}

func TestGetFundChartPathEmbedsPeriod(t *testing.T) {
	fake := &fakeClient{response: json.RawMessage(`{"id": "41567", "dataSerie": []}`)}
	svc := NewMarketData(fake)

	chart, err := svc.GetFundChart(context.Background(), "41567", models.PeriodOneYear)
	require.NoError(t, err)
	assert.Equal(t, "/_api/fund-guide/chart/41567/one_year", fake.lastPath)
	assert.Equal(t, "41567", chart.ID)
}

func TestGetFundHoldingsProjection(t *testing.T) {
	fake := &fakeClient{response: json.RawMessage(`{
		"name": "Global Index",
		"countryChartData": [{"name": "USA", "y": 62.1}],
		"portfolioDate": "2026-06-30"
	}`)}
	svc := NewMarketData(fake)

	holdings, err := svc.GetFundHoldings(context.Background(), "41567")
	require.NoError(t, err)
	assert.Equal(t, "/_api/fund-guide/guide/41567", fake.lastPath)
	require.Len(t, holdings.CountryChartData, 1)
	assert.Equal(t, "USA", *holdings.CountryChartData[0].Name)
	assert.Empty(t, holdings.SectorChartData)
	assert.NotNil(t, holdings.SectorChartData, "absent allocations render as empty arrays")
	require.NotNil(t, holdings.PortfolioDate)
	assert.Equal(t, "2026-06-30", *holdings.PortfolioDate)
}

func TestGetTradesDecodesSlice(t *testing.T) {
	fake := &fakeClient{response: json.RawMessage(`[
		{"buyer": "AVA", "seller": "NON", "price": 101.5, "volume": 200},
		{"buyer": "NON", "seller": "AVA", "price": 101.4, "volume": 50}
	]`)}
	svc := NewMarketData(fake)

	trades, err := svc.GetTrades(context.Background(), "5247")
	require.NoError(t, err)
	require.Len(t, trades, 2)
	assert.Equal(t, "/_api/market-guide/stock/5247/trades", fake.lastPath)
}

func TestFilterCertificatesPostsBody(t *testing.T) {
	fake := &fakeClient{response: json.RawMessage(`{"certificates": []}`)}
	svc := NewMarketData(fake)

	req := models.CertificateFilterRequest{
		Filter: models.CertificateFilter{Directions: []string{"LONG"}},
		Limit:  20,
		SortBy: models.SortBy{Field: "name", Order: models.SortAsc},
	}
	resp, err := svc.FilterCertificates(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "/_api/market-certificate-filter/", fake.lastPath)
	assert.Equal(t, req, fake.lastBody)
	assert.Empty(t, resp.Certificates)
}

func TestGetETFDetailsFreeForm(t *testing.T) {
	fake := &fakeClient{response: json.RawMessage(`{"anything": {"nested": true}}`)}
	svc := NewMarketData(fake)

	details, err := svc.GetETFDetails(context.Background(), "98765")
	require.NoError(t, err)
	assert.Equal(t, "/_api/market-etf/98765/details", fake.lastPath)
	assert.Contains(t, details, "anything")
}

func TestGetNumberOfOwners(t *testing.T) {
	fake := &fakeClient{response: json.RawMessage(`{"orderbookId": "5247", "numberOfOwners": 12000}`)}
	svc := NewMarketData(fake)

	owners, err := svc.GetNumberOfOwners(context.Background(), "5247")
	require.NoError(t, err)
	require.NotNil(t, owners.NumberOfOwners)
	assert.Equal(t, 12000, *owners.NumberOfOwners)
}
