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

// SortOrder is the direction of a filter sort.
type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

// SortBy is the sort configuration for list/filter endpoints.
type SortBy struct {
	Field string    `json:"field"`
	Order SortOrder `json:"order"`
}

// UnderlyingInstrument references the underlying of a derivative.
type UnderlyingInstrument struct {
	Name           *string `json:"name,omitempty"`
	OrderbookID    *string `json:"orderbookId,omitempty"`
	InstrumentType *string `json:"instrumentType,omitempty"`
	CountryCode    *string `json:"countryCode,omitempty"`
}

// Pagination echoes the offset/limit window of a filter response.
type Pagination struct {
	Offset *int `json:"offset,omitempty"`
	Limit  *int `json:"limit,omitempty"`
}
