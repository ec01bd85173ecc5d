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

// WarrantListItem is a warrant row in filter results.
type WarrantListItem struct {
	OrderbookID          string                `json:"orderbookId" validate:"required"`
	CountryCode          string                `json:"countryCode"`
	Name                 string                `json:"name" validate:"required"`
	Direction            string                `json:"direction"`
	Issuer               string                `json:"issuer"`
	SubType              string                `json:"subType"`
	HasPosition          bool                  `json:"hasPosition"`
	UnderlyingInstrument *UnderlyingInstrument `json:"underlyingInstrument,omitempty"`
	TotalValueTraded     *float64              `json:"totalValueTraded,omitempty"`
	StopLoss             *float64              `json:"stopLoss,omitempty"`
	OneDayChangePercent  *float64              `json:"oneDayChangePercent,omitempty"`
	Spread               *float64              `json:"spread,omitempty"`
	BuyPrice             *float64              `json:"buyPrice,omitempty"`
	SellPrice            *float64              `json:"sellPrice,omitempty"`
}

// WarrantInfo is the detailed warrant record. KeyIndicators stays
// free-form here: warrants use a different indicator structure than
// stocks.
type WarrantInfo struct {
	OrderbookID             string                   `json:"orderbookId" validate:"required"`
	Name                    string                   `json:"name" validate:"required"`
	ISIN                    *string                  `json:"isin,omitempty"`
	Tradable                *string                  `json:"tradable,omitempty"`
	Listing                 *Listing                 `json:"listing,omitempty"`
	HistoricalClosingPrices *HistoricalClosingPrices `json:"historicalClosingPrices,omitempty"`
	KeyIndicators           map[string]any           `json:"keyIndicators,omitempty"`
	Quote                   *Quote                   `json:"quote,omitempty"`
	Type                    *string                  `json:"type,omitempty"`
	Underlying              map[string]any           `json:"underlying,omitempty"`
	AssetCategory           *string                  `json:"assetCategory,omitempty"`
	Category                *string                  `json:"category,omitempty"`
	SubCategory             *string                  `json:"subCategory,omitempty"`

	Extra Extra `json:"-"`
}

func (v *WarrantInfo) UnmarshalJSON(data []byte) error {
	type plain WarrantInfo
	var p plain
	if err := unmarshalExtra(data, &p, &p.Extra); err != nil {
		return err
	}
	*v = WarrantInfo(p)
	return nil
}

func (v WarrantInfo) MarshalJSON() ([]byte, error) {
	type plain WarrantInfo
	return marshalExtra(plain(v), v.Extra)
}

// WarrantDetails is a free-form extended record.
type WarrantDetails map[string]any

// WarrantFilter selects warrants in filter requests.
type WarrantFilter struct {
	Directions            []string `json:"directions"`
	SubTypes              []string `json:"subTypes"`
	Issuers               []string `json:"issuers"`
	UnderlyingInstruments []string `json:"underlyingInstruments"`
}

// WarrantFilterRequest is the complete warrant filter body.
type WarrantFilterRequest struct {
	Filter WarrantFilter `json:"filter"`
	Offset int           `json:"offset"`
	Limit  int           `json:"limit"`
	SortBy SortBy        `json:"sortBy"`
}

// WarrantFilterResponse is the warrant filter result page.
type WarrantFilterResponse struct {
	Warrants                []WarrantListItem `json:"warrants"`
	Pagination              *Pagination       `json:"pagination,omitempty"`
	TotalNumberOfOrderbooks *int              `json:"totalNumberOfOrderbooks,omitempty"`
	Filter                  *WarrantFilter    `json:"filter,omitempty"`
	SortBy                  *SortBy           `json:"sortBy,omitempty"`

	Extra Extra `json:"-"`
}

func (v *WarrantFilterResponse) UnmarshalJSON(data []byte) error {
	type plain WarrantFilterResponse
	var p plain
	if err := unmarshalExtra(data, &p, &p.Extra); err != nil {
		return err
	}
	*v = WarrantFilterResponse(p)
	return nil
}

func (v WarrantFilterResponse) MarshalJSON() ([]byte, error) {
	type plain WarrantFilterResponse
	return marshalExtra(plain(v), v.Extra)
}
