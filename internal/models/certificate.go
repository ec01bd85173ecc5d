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

// CertificateListItem is a certificate row in filter results.
type CertificateListItem struct {
	OrderbookID          string                `json:"orderbookId" validate:"required"`
	CountryCode          string                `json:"countryCode"`
	Name                 string                `json:"name" validate:"required"`
	Direction            string                `json:"direction"`
	MarketplaceCode      string                `json:"marketplaceCode"`
	Issuer               string                `json:"issuer"`
	HasPosition          bool                  `json:"hasPosition"`
	TotalValueTraded     *float64              `json:"totalValueTraded,omitempty"`
	UnderlyingInstrument *UnderlyingInstrument `json:"underlyingInstrument,omitempty"`
	Leverage             *float64              `json:"leverage,omitempty"`
	Spread               *float64              `json:"spread,omitempty"`
	BuyPrice             *float64              `json:"buyPrice,omitempty"`
	SellPrice            *float64              `json:"sellPrice,omitempty"`
}

// CertificateInfo is the detailed certificate record.
type CertificateInfo struct {
	OrderbookID             string                   `json:"orderbookId" validate:"required"`
	Name                    string                   `json:"name" validate:"required"`
	ISIN                    *string                  `json:"isin,omitempty"`
	Tradable                *string                  `json:"tradable,omitempty"`
	Listing                 *Listing                 `json:"listing,omitempty"`
	HistoricalClosingPrices *HistoricalClosingPrices `json:"historicalClosingPrices,omitempty"`
	KeyIndicators           *KeyIndicators           `json:"keyIndicators,omitempty"`
	Quote                   *Quote                   `json:"quote,omitempty"`
	Type                    *string                  `json:"type,omitempty"`
	AssetCategory           *string                  `json:"assetCategory,omitempty"`
	Category                *string                  `json:"category,omitempty"`
	SubCategory             *string                  `json:"subCategory,omitempty"`

	Extra Extra `json:"-"`
}

func (v *CertificateInfo) UnmarshalJSON(data []byte) error {
	type plain CertificateInfo
	var p plain
	if err := unmarshalExtra(data, &p, &p.Extra); err != nil {
		return err
	}
	*v = CertificateInfo(p)
	return nil
}

func (v CertificateInfo) MarshalJSON() ([]byte, error) {
	type plain CertificateInfo
	return marshalExtra(plain(v), v.Extra)
}

// CertificateDetails is a free-form extended record; the upstream shape
// varies too much to model field by field.
type CertificateDetails map[string]any

// CertificateFilter selects certificates in filter requests.
type CertificateFilter struct {
	Directions            []string  `json:"directions"`
	Leverages             []float64 `json:"leverages"`
	UnderlyingInstruments []string  `json:"underlyingInstruments"`
	Categories            []string  `json:"categories"`
	Exposures             []string  `json:"exposures"`
	Issuers               []string  `json:"issuers"`
}

// CertificateFilterRequest is the complete certificate filter body.
type CertificateFilterRequest struct {
	Filter CertificateFilter `json:"filter"`
	Offset int               `json:"offset"`
	Limit  int               `json:"limit"`
	SortBy SortBy            `json:"sortBy"`
}

// CertificateFilterResponse is the certificate filter result page.
type CertificateFilterResponse struct {
	Certificates             []CertificateListItem `json:"certificates"`
	Pagination               *Pagination           `json:"pagination,omitempty"`
	TotalNumberOfOrderbooks  *int                  `json:"totalNumberOfOrderbooks,omitempty"`
	Filter                   *CertificateFilter    `json:"filter,omitempty"`
	SortBy                   *SortBy               `json:"sortBy,omitempty"`

	Extra Extra `json:"-"`
}

func (v *CertificateFilterResponse) UnmarshalJSON(data []byte) error {
	type plain CertificateFilterResponse
	var p plain
	if err := unmarshalExtra(data, &p, &p.Extra); err != nil {
		return err
	}
	*v = CertificateFilterResponse(p)
	return nil
}

func (v CertificateFilterResponse) MarshalJSON() ([]byte, error) {
	type plain CertificateFilterResponse
	return marshalExtra(plain(v), v.Extra)
}
