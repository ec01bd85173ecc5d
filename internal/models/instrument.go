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

// NumberOfOwners is the owner count for an instrument.
type NumberOfOwners struct {
	OrderbookID    *string `json:"orderbookId,omitempty"`
	NumberOfOwners *int    `json:"numberOfOwners,omitempty"`
	Timestamp      *int64  `json:"timestamp,omitempty"`

	Extra Extra `json:"-"`
}

func (v *NumberOfOwners) UnmarshalJSON(data []byte) error {
	type plain NumberOfOwners
	var p plain
	if err := unmarshalExtra(data, &p, &p.Extra); err != nil {
		return err
	}
	*v = NumberOfOwners(p)
	return nil
}

func (v NumberOfOwners) MarshalJSON() ([]byte, error) {
	type plain NumberOfOwners
	return marshalExtra(plain(v), v.Extra)
}

// ShortSellingData is the short-interest summary for an instrument.
type ShortSellingData struct {
	OrderbookID            *string  `json:"orderbookId,omitempty"`
	ShortSellingVolume     *float64 `json:"shortSellingVolume,omitempty"`
	ShortSellingPercentage *float64 `json:"shortSellingPercentage,omitempty"`
	Date                   *string  `json:"date,omitempty"`

	Extra Extra `json:"-"`
}

func (v *ShortSellingData) UnmarshalJSON(data []byte) error {
	type plain ShortSellingData
	var p plain
	if err := unmarshalExtra(data, &p, &p.Extra); err != nil {
		return err
	}
	*v = ShortSellingData(p)
	return nil
}

func (v ShortSellingData) MarshalJSON() ([]byte, error) {
	type plain ShortSellingData
	return marshalExtra(plain(v), v.Extra)
}
