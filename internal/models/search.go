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

// SearchRequest is the body of a filtered-search call.
type SearchRequest struct {
	Query          string         `json:"query"`
	Limit          int            `json:"limit"`
	InstrumentType InstrumentType `json:"instrumentType,omitempty"`
}

// SearchPrice is the price block on a search hit. The upstream returns
// display strings here, not numbers.
type SearchPrice struct {
	Last                          *string `json:"last,omitempty"`
	Currency                      *string `json:"currency,omitempty"`
	TodayChangePercent            *string `json:"todayChangePercent,omitempty"`
	TodayChangeValue              *string `json:"todayChangeValue,omitempty"`
	TodayChangeDirection          int     `json:"todayChangeDirection"`
	ThreeMonthsAgoChangePercent   *string `json:"threeMonthsAgoChangePercent,omitempty"`
	ThreeMonthsAgoChangeDirection int     `json:"threeMonthsAgoChangeDirection"`
	Spread                        *string `json:"spread,omitempty"`
}

// StockSector is a sector classification on a search hit.
type StockSector struct {
	ID              int     `json:"id"`
	Level           int     `json:"level"`
	Name            string  `json:"name"`
	EnglishName     string  `json:"englishName"`
	HighlightedName *string `json:"highlightedName,omitempty"`
}

// FundTag is a fund classification tag on a search hit.
type FundTag struct {
	Title            string  `json:"title"`
	Category         string  `json:"category"`
	TagCategory      string  `json:"tagCategory"`
	HighlightedTitle *string `json:"highlightedTitle,omitempty"`
}

// SearchHit is one search result. OrderBookID and Price may be absent
// for some instrument types.
type SearchHit struct {
	Type                   string        `json:"type"`
	Title                  string        `json:"title" validate:"required"`
	HighlightedTitle       string        `json:"highlightedTitle"`
	Description            string        `json:"description"`
	HighlightedDescription string        `json:"highlightedDescription"`
	Path                   *string       `json:"path,omitempty"`
	FlagCode               *string       `json:"flagCode,omitempty"`
	OrderBookID            *string       `json:"orderBookId,omitempty"`
	URLSlugName            string        `json:"urlSlugName"`
	Tradeable              bool          `json:"tradeable"`
	Sellable               bool          `json:"sellable"`
	Buyable                bool          `json:"buyable"`
	Price                  *SearchPrice  `json:"price,omitempty"`
	StockSectors           []StockSector `json:"stockSectors,omitempty"`
	FundTags               []FundTag     `json:"fundTags,omitempty"`
	MarketPlaceName        string        `json:"marketPlaceName"`
	SubType                *string       `json:"subType,omitempty"`
	HighlightedSubType     string        `json:"highlightedSubType"`

	Extra Extra `json:"-"`
}

func (v *SearchHit) UnmarshalJSON(data []byte) error {
	type plain SearchHit
	var p plain
	if err := unmarshalExtra(data, &p, &p.Extra); err != nil {
		return err
	}
	*v = SearchHit(p)
	return nil
}

func (v SearchHit) MarshalJSON() ([]byte, error) {
	type plain SearchHit
	return marshalExtra(plain(v), v.Extra)
}

// TypeFacet is a per-instrument-type result count.
type TypeFacet struct {
	Type  string `json:"type"`
	Count int    `json:"count"`
}

// SearchFacets groups facet counts.
type SearchFacets struct {
	Types []TypeFacet `json:"types"`
}

// SearchFilter echoes the applied type filters.
type SearchFilter struct {
	Types []string `json:"types,omitempty"`
}

// SearchPagination is the result window. The wire field `from` is renamed
// to From; its wire name is preserved on serialization.
type SearchPagination struct {
	Size int `json:"size"`
	From int `json:"from"`
}

// SearchResponse is the complete filtered-search response.
type SearchResponse struct {
	TotalNumberOfHits int              `json:"totalNumberOfHits"`
	Hits              []SearchHit      `json:"hits"`
	SearchQuery       string           `json:"searchQuery"`
	SearchFilter      SearchFilter     `json:"searchFilter"`
	Facets            SearchFacets     `json:"facets"`
	Pagination        SearchPagination `json:"pagination"`

	Extra Extra `json:"-"`
}

func (v *SearchResponse) UnmarshalJSON(data []byte) error {
	type plain SearchResponse
	var p plain
	if err := unmarshalExtra(data, &p, &p.Extra); err != nil {
		return err
	}
	*v = SearchResponse(p)
	return nil
}

func (v SearchResponse) MarshalJSON() ([]byte, error) {
	type plain SearchResponse
	return marshalExtra(plain(v), v.Extra)
}
