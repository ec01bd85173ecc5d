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

// Package service maps catalog operations onto the client and the typed
// response models. Services are pure orchestration: resolve the endpoint,
// call the client, decode and validate. They add no failure semantics of
// their own.
package service

import (
	"context"
	"encoding/json"
	"net/url"

	"github.com/marknad/avanza-mcp/internal/avanza"
	"github.com/marknad/avanza-mcp/internal/models"
)

// Client is the subset of the avanza client the services consume.
type Client interface {
	Get(ctx context.Context, path string, params url.Values) (json.RawMessage, error)
	Post(ctx context.Context, path string, body any) (json.RawMessage, error)
}

// MarketData retrieves instrument market data.
type MarketData struct {
	client Client
}

// NewMarketData creates a market data service on the given client.
func NewMarketData(client Client) *MarketData {
	return &MarketData{client: client}
}

// byID resolves a single-placeholder endpoint.
func byID(op avanza.Operation, instrumentID string) (string, error) {
	return avanza.Resolve(op, map[string]string{"id": instrumentID})
}

// getByID fetches a single-placeholder endpoint and decodes the record.
func getByID[T any](ctx context.Context, c Client, op avanza.Operation, instrumentID string) (*T, error) {
	path, err := byID(op, instrumentID)
	if err != nil {
		return nil, err
	}
	raw, err := c.Get(ctx, path, nil)
	if err != nil {
		return nil, err
	}
	return models.Decode[T](raw)
}

// GetStockInfo fetches detailed stock information.
func (s *MarketData) GetStockInfo(ctx context.Context, instrumentID string) (*models.StockInfo, error) {
	return getByID[models.StockInfo](ctx, s.client, avanza.OpStockInfo, instrumentID)
}

// GetStockQuote fetches the real-time quote for a stock.
func (s *MarketData) GetStockQuote(ctx context.Context, instrumentID string) (*models.Quote, error) {
	return getByID[models.Quote](ctx, s.client, avanza.OpStockQuote, instrumentID)
}

// GetStockAnalysis fetches key ratios by year and quarter. The analysis
// payload has no stable schema, so it stays free-form.
func (s *MarketData) GetStockAnalysis(ctx context.Context, instrumentID string) (map[string]any, error) {
	path, err := byID(avanza.OpStockAnalysis, instrumentID)
	if err != nil {
		return nil, err
	}
	raw, err := s.client.Get(ctx, path, nil)
	if err != nil {
		return nil, err
	}
	var analysis map[string]any
	if err := json.Unmarshal(raw, &analysis); err != nil {
		return nil, &models.ValidationError{Cause: err}
	}
	return analysis, nil
}

// GetDividends projects the dividend history out of the analysis payload.
func (s *MarketData) GetDividends(ctx context.Context, instrumentID string) (map[string]any, error) {
	analysis, err := s.GetStockAnalysis(ctx, instrumentID)
	if err != nil {
		return nil, err
	}
	return map[string]any{
		"dividendsByYear": fieldOrEmpty(analysis, "dividendsByYear"),
	}, nil
}

// GetCompanyFinancials projects the financial statements out of the
// analysis payload.
func (s *MarketData) GetCompanyFinancials(ctx context.Context, instrumentID string) (map[string]any, error) {
	analysis, err := s.GetStockAnalysis(ctx, instrumentID)
	if err != nil {
		return nil, err
	}
	return map[string]any{
		"companyFinancialsByYear":       fieldOrEmpty(analysis, "companyFinancialsByYear"),
		"companyFinancialsByQuarter":    fieldOrEmpty(analysis, "companyFinancialsByQuarter"),
		"companyFinancialsByQuarterTTM": fieldOrEmpty(analysis, "companyFinancialsByQuarterTTM"),
	}, nil
}

func fieldOrEmpty(m map[string]any, key string) any {
	if v, ok := m[key]; ok && v != nil {
		return v
	}
	return []any{}
}

// GetMarketplaceInfo fetches marketplace status and trading hours.
func (s *MarketData) GetMarketplaceInfo(ctx context.Context, instrumentID string) (*models.MarketplaceInfo, error) {
	return getByID[models.MarketplaceInfo](ctx, s.client, avanza.OpStockMarketplace, instrumentID)
}

// GetOrderDepth fetches the current order book depth. Levels are empty
// outside trading hours; that is a valid result, not an error.
func (s *MarketData) GetOrderDepth(ctx context.Context, instrumentID string) (*models.OrderDepth, error) {
	return getByID[models.OrderDepth](ctx, s.client, avanza.OpStockOrderDepth, instrumentID)
}

// GetTrades fetches recent trades for an instrument.
func (s *MarketData) GetTrades(ctx context.Context, instrumentID string) ([]models.Trade, error) {
	path, err := byID(avanza.OpStockTrades, instrumentID)
	if err != nil {
		return nil, err
	}
	raw, err := s.client.Get(ctx, path, nil)
	if err != nil {
		return nil, err
	}
	return models.DecodeSlice[models.Trade](raw)
}

// GetBrokerTrades fetches per-broker trade summaries.
func (s *MarketData) GetBrokerTrades(ctx context.Context, instrumentID string) ([]models.BrokerTradeSummary, error) {
	path, err := byID(avanza.OpStockBrokerTrades, instrumentID)
	if err != nil {
		return nil, err
	}
	raw, err := s.client.Get(ctx, path, nil)
	if err != nil {
		return nil, err
	}
	return models.DecodeSlice[models.BrokerTradeSummary](raw)
}

// GetStockChart fetches OHLC chart data for a stock.
func (s *MarketData) GetStockChart(ctx context.Context, instrumentID string, period models.TimePeriod) (*models.ChartData, error) {
	path, err := byID(avanza.OpStockChart, instrumentID)
	if err != nil {
		return nil, err
	}
	raw, err := s.client.Get(ctx, path, url.Values{"timePeriod": {string(period)}})
	if err != nil {
		return nil, err
	}
	return models.Decode[models.ChartData](raw)
}

// GetMarketMakerChart fetches OHLC chart data for traded products
// (certificates, warrants, ETFs).
func (s *MarketData) GetMarketMakerChart(ctx context.Context, instrumentID string, period models.TimePeriod) (*models.ChartData, error) {
	path, err := byID(avanza.OpMarketMakerChart, instrumentID)
	if err != nil {
		return nil, err
	}
	raw, err := s.client.Get(ctx, path, url.Values{"timePeriod": {string(period)}})
	if err != nil {
		return nil, err
	}
	return models.Decode[models.ChartData](raw)
}

// GetFundInfo fetches detailed fund information.
func (s *MarketData) GetFundInfo(ctx context.Context, instrumentID string) (*models.FundInfo, error) {
	return getByID[models.FundInfo](ctx, s.client, avanza.OpFundInfo, instrumentID)
}

// GetFundSustainability fetches fund ESG metrics.
func (s *MarketData) GetFundSustainability(ctx context.Context, instrumentID string) (*models.FundSustainability, error) {
	return getByID[models.FundSustainability](ctx, s.client, avanza.OpFundSustainability, instrumentID)
}

// GetFundChart fetches a fund's performance series over the given period.
func (s *MarketData) GetFundChart(ctx context.Context, instrumentID string, period models.TimePeriod) (*models.FundChart, error) {
	path, err := avanza.Resolve(avanza.OpFundChart, map[string]string{
		"id":          instrumentID,
		"time_period": string(period),
	})
	if err != nil {
		return nil, err
	}
	raw, err := s.client.Get(ctx, path, nil)
	if err != nil {
		return nil, err
	}
	return models.Decode[models.FundChart](raw)
}

// FundHoldings is the allocation breakdown projected out of the fund
// record.
type FundHoldings struct {
	CountryChartData []models.AllocationPoint `json:"countryChartData"`
	SectorChartData  []models.AllocationPoint `json:"sectorChartData"`
	HoldingChartData []models.AllocationPoint `json:"holdingChartData"`
	PortfolioDate    *string                  `json:"portfolioDate"`
}

// GetFundHoldings projects the portfolio composition out of the fund
// record.
func (s *MarketData) GetFundHoldings(ctx context.Context, instrumentID string) (*FundHoldings, error) {
	info, err := s.GetFundInfo(ctx, instrumentID)
	if err != nil {
		return nil, err
	}
	return &FundHoldings{
		CountryChartData: emptyIfNil(info.CountryChartData),
		SectorChartData:  emptyIfNil(info.SectorChartData),
		HoldingChartData: emptyIfNil(info.HoldingChartData),
		PortfolioDate:    info.PortfolioDate,
	}, nil
}

func emptyIfNil(points []models.AllocationPoint) []models.AllocationPoint {
	if points == nil {
		return []models.AllocationPoint{}
	}
	return points
}

// GetFundChartPeriods fetches the periods available for a fund chart.
func (s *MarketData) GetFundChartPeriods(ctx context.Context, instrumentID string) ([]models.FundChartPeriod, error) {
	path, err := byID(avanza.OpFundChartPeriods, instrumentID)
	if err != nil {
		return nil, err
	}
	raw, err := s.client.Get(ctx, path, nil)
	if err != nil {
		return nil, err
	}
	return models.DecodeSlice[models.FundChartPeriod](raw)
}

// GetFundDescription fetches the fund description text.
func (s *MarketData) GetFundDescription(ctx context.Context, instrumentID string) (*models.FundDescription, error) {
	return getByID[models.FundDescription](ctx, s.client, avanza.OpFundDescription, instrumentID)
}

// FilterCertificates runs a certificate filter query.
func (s *MarketData) FilterCertificates(ctx context.Context, req models.CertificateFilterRequest) (*models.CertificateFilterResponse, error) {
	path, err := avanza.Resolve(avanza.OpCertificateFilter, nil)
	if err != nil {
		return nil, err
	}
	raw, err := s.client.Post(ctx, path, req)
	if err != nil {
		return nil, err
	}
	return models.Decode[models.CertificateFilterResponse](raw)
}

// GetCertificateInfo fetches detailed certificate information.
func (s *MarketData) GetCertificateInfo(ctx context.Context, instrumentID string) (*models.CertificateInfo, error) {
	return getByID[models.CertificateInfo](ctx, s.client, avanza.OpCertificateInfo, instrumentID)
}

// GetCertificateDetails fetches the extended certificate record.
func (s *MarketData) GetCertificateDetails(ctx context.Context, instrumentID string) (models.CertificateDetails, error) {
	d, err := getByID[models.CertificateDetails](ctx, s.client, avanza.OpCertificateDetails, instrumentID)
	if err != nil {
		return nil, err
	}
	return *d, nil
}

// FilterWarrants runs a warrant filter query.
func (s *MarketData) FilterWarrants(ctx context.Context, req models.WarrantFilterRequest) (*models.WarrantFilterResponse, error) {
	path, err := avanza.Resolve(avanza.OpWarrantFilter, nil)
	if err != nil {
		return nil, err
	}
	raw, err := s.client.Post(ctx, path, req)
	if err != nil {
		return nil, err
	}
	return models.Decode[models.WarrantFilterResponse](raw)
}

// GetWarrantInfo fetches detailed warrant information.
func (s *MarketData) GetWarrantInfo(ctx context.Context, instrumentID string) (*models.WarrantInfo, error) {
	return getByID[models.WarrantInfo](ctx, s.client, avanza.OpWarrantInfo, instrumentID)
}

// GetWarrantDetails fetches the extended warrant record.
func (s *MarketData) GetWarrantDetails(ctx context.Context, instrumentID string) (models.WarrantDetails, error) {
	d, err := getByID[models.WarrantDetails](ctx, s.client, avanza.OpWarrantDetails, instrumentID)
	if err != nil {
		return nil, err
	}
	return *d, nil
}

// FilterETFs runs an ETF filter query.
func (s *MarketData) FilterETFs(ctx context.Context, req models.ETFFilterRequest) (*models.ETFFilterResponse, error) {
	path, err := avanza.Resolve(avanza.OpETFFilter, nil)
	if err != nil {
		return nil, err
	}
	raw, err := s.client.Post(ctx, path, req)
	if err != nil {
		return nil, err
	}
	return models.Decode[models.ETFFilterResponse](raw)
}

// GetETFInfo fetches detailed ETF information.
func (s *MarketData) GetETFInfo(ctx context.Context, instrumentID string) (*models.ETFInfo, error) {
	return getByID[models.ETFInfo](ctx, s.client, avanza.OpETFInfo, instrumentID)
}

// GetETFDetails fetches the extended ETF record.
func (s *MarketData) GetETFDetails(ctx context.Context, instrumentID string) (models.ETFDetails, error) {
	d, err := getByID[models.ETFDetails](ctx, s.client, avanza.OpETFDetails, instrumentID)
	if err != nil {
		return nil, err
	}
	return *d, nil
}

// ListFuturesForwards runs a futures/forwards matrix query.
func (s *MarketData) ListFuturesForwards(ctx context.Context, req models.FutureForwardMatrixRequest) (models.FutureForwardMatrixResponse, error) {
	path, err := avanza.Resolve(avanza.OpFutureForwardMatrix, nil)
	if err != nil {
		return nil, err
	}
	raw, err := s.client.Post(ctx, path, req)
	if err != nil {
		return nil, err
	}
	d, err := models.Decode[models.FutureForwardMatrixResponse](raw)
	if err != nil {
		return nil, err
	}
	return *d, nil
}

// GetFutureForwardInfo fetches detailed future/forward information.
func (s *MarketData) GetFutureForwardInfo(ctx context.Context, instrumentID string) (*models.FutureForwardInfo, error) {
	return getByID[models.FutureForwardInfo](ctx, s.client, avanza.OpFutureForwardInfo, instrumentID)
}

// GetFutureForwardDetails fetches the extended future/forward record.
func (s *MarketData) GetFutureForwardDetails(ctx context.Context, instrumentID string) (models.FutureForwardDetails, error) {
	d, err := getByID[models.FutureForwardDetails](ctx, s.client, avanza.OpFutureForwardDetails, instrumentID)
	if err != nil {
		return nil, err
	}
	return *d, nil
}

// GetFutureForwardFilterOptions fetches the matrix filter options.
func (s *MarketData) GetFutureForwardFilterOptions(ctx context.Context) (map[string]any, error) {
	path, err := avanza.Resolve(avanza.OpFutureForwardFilterOptions, nil)
	if err != nil {
		return nil, err
	}
	raw, err := s.client.Get(ctx, path, nil)
	if err != nil {
		return nil, err
	}
	var options map[string]any
	if err := json.Unmarshal(raw, &options); err != nil {
		return nil, &models.ValidationError{Cause: err}
	}
	return options, nil
}

// GetNumberOfOwners fetches the owner count for an instrument.
func (s *MarketData) GetNumberOfOwners(ctx context.Context, instrumentID string) (*models.NumberOfOwners, error) {
	return getByID[models.NumberOfOwners](ctx, s.client, avanza.OpNumberOfOwners, instrumentID)
}

// GetShortSelling fetches short-interest data for an instrument.
func (s *MarketData) GetShortSelling(ctx context.Context, instrumentID string) (*models.ShortSellingData, error) {
	return getByID[models.ShortSellingData](ctx, s.client, avanza.OpShortSelling, instrumentID)
}
