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

// FutureForwardInfo is the detailed future/forward record.
type FutureForwardInfo struct {
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

	Extra Extra `json:"-"`
}

func (v *FutureForwardInfo) UnmarshalJSON(data []byte) error {
	type plain FutureForwardInfo
	var p plain
	if err := unmarshalExtra(data, &p, &p.Extra); err != nil {
		return err
	}
	*v = FutureForwardInfo(p)
	return nil
}

func (v FutureForwardInfo) MarshalJSON() ([]byte, error) {
	type plain FutureForwardInfo
	return marshalExtra(plain(v), v.Extra)
}

// FutureForwardDetails is a free-form extended record.
type FutureForwardDetails map[string]any

// FutureForwardMatrixFilter selects contracts in matrix requests.
type FutureForwardMatrixFilter struct {
	UnderlyingInstruments []string `json:"underlyingInstruments"`
	OptionTypes           []string `json:"optionTypes"`
	EndDates              []string `json:"endDates"`
	CallIndicators        []string `json:"callIndicators"`
}

// FutureForwardMatrixRequest is the complete matrix list body.
type FutureForwardMatrixRequest struct {
	Filter FutureForwardMatrixFilter `json:"filter"`
	Offset int                       `json:"offset"`
	Limit  int                       `json:"limit"`
	SortBy SortBy                    `json:"sortBy"`
}

// FutureForwardMatrixResponse is free-form: the matrix shape is not
// stable enough to model.
type FutureForwardMatrixResponse map[string]any
