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

package models

// ETFListItem is an ETF row in filter results.
type ETFListItem struct {
	OrderbookID             string   `json:"orderbookId" validate:"required"`
	CountryCode             string   `json:"countryCode"`
	Name                    string   `json:"name" validate:"required"`
	DirectYield             *float64 `json:"directYield,omitempty"`
	OneDayChangePercent     *float64 `json:"oneDayChangePercent,omitempty"`
	ThreeYearsChangePercent *float64 `json:"threeYearsChangePercent,omitempty"`
	ManagementFee           *float64 `json:"managementFee,omitempty"`
	ProductFee              *float64 `json:"productFee,omitempty"`
	NumberOfOwners          *int     `json:"numberOfOwners,omitempty"`
	RiskScore               *int     `json:"riskScore,omitempty"`
	HasPosition             bool     `json:"hasPosition"`
}

// ETFInfo is the detailed ETF record.
type ETFInfo struct {
	OrderbookID             string                   `json:"orderbookId" validate:"required"`
	Name                    string                   `json:"name" validate:"required"`
	ISIN                    *string                  `json:"isin,omitempty"`
	Tradable                *string                  `json:"tradable,omitempty"`
	Listing                 *Listing                 `json:"listing,omitempty"`
	MarketPlace             *MarketPlace             `json:"marketPlace,omitempty"`
	HistoricalClosingPrices *HistoricalClosingPrices `json:"historicalClosingPrices,omitempty"`
	KeyIndicators           map[string]any           `json:"keyIndicators,omitempty"`
	Quote                   *Quote                   `json:"quote,omitempty"`
	Type                    *string                  `json:"type,omitempty"`

	Extra Extra `json:"-"`
}

func (v *ETFInfo) UnmarshalJSON(data []byte) error {
	type plain ETFInfo
	var p plain
	if err := unmarshalExtra(data, &p, &p.Extra); err != nil {
		return err
	}
	*v = ETFInfo(p)
	return nil
}

func (v ETFInfo) MarshalJSON() ([]byte, error) {
	type plain ETFInfo
	return marshalExtra(plain(v), v.Extra)
}

// ETFDetails is a free-form extended record.
type ETFDetails map[string]any

// ETFFilter selects ETFs in filter requests.
type ETFFilter struct {
	AssetCategories []string `json:"assetCategories"`
	SubCategories   []string `json:"subCategories"`
	Exposures       []string `json:"exposures"`
	RiskScores      []string `json:"riskScores"`
	Directions      []string `json:"directions"`
	Issuers         []string `json:"issuers"`
	CurrencyCodes   []string `json:"currencyCodes"`
}

// ETFFilterRequest is the complete ETF filter body.
type ETFFilterRequest struct {
	Filter ETFFilter `json:"filter"`
	Offset int       `json:"offset"`
	Limit  int       `json:"limit"`
	SortBy SortBy    `json:"sortBy"`
}

// ETFFilterResponse is the ETF filter result page.
type ETFFilterResponse struct {
	ETFs                    []ETFListItem  `json:"etfs"`
	Pagination              *Pagination    `json:"pagination,omitempty"`
	TotalNumberOfOrderbooks *int           `json:"totalNumberOfOrderbooks,omitempty"`
	Filter                  *ETFFilter     `json:"filter,omitempty"`
	FilterOptions           map[string]any `json:"filterOptions,omitempty"`
	SortBy                  *SortBy        `json:"sortBy,omitempty"`

	Extra Extra `json:"-"`
}

func (v *ETFFilterResponse) UnmarshalJSON(data []byte) error {
	type plain ETFFilterResponse
	var p plain
	if err := unmarshalExtra(data, &p, &p.Extra); err != nil {
		return err
	}
	*v = ETFFilterResponse(p)
	return nil
}

func (v ETFFilterResponse) MarshalJSON() ([]byte, error) {
	type plain ETFFilterResponse
	return marshalExtra(plain(v), v.Extra)
}
