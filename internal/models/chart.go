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

import "encoding/json"

// OHLCPoint is one Open-High-Low-Close candlestick bucket.
type OHLCPoint struct {
	Timestamp         int64   `json:"timestamp"`
	Open              float64 `json:"open"`
	Close             float64 `json:"close"`
	Low               float64 `json:"low"`
	High              float64 `json:"high"`
	TotalVolumeTraded int64   `json:"totalVolumeTraded"`
}

// ChartResolution is the bucket granularity of a chart response.
type ChartResolution struct {
	ChartResolution      string   `json:"chartResolution"`
	AvailableResolutions []string `json:"availableResolutions,omitempty"`
}

// ChartMetadata carries chart response metadata. Resolution arrives as
// either an object or a bare string depending on endpoint, so it is kept
// raw and exposed through an accessor.
type ChartMetadata struct {
	Resolution json.RawMessage `json:"resolution,omitempty"`
}

// ResolutionInfo decodes the resolution when it arrived as an object.
func (m *ChartMetadata) ResolutionInfo() (*ChartResolution, bool) {
	if m == nil || len(m.Resolution) == 0 {
		return nil, false
	}
	var r ChartResolution
	if err := json.Unmarshal(m.Resolution, &r); err != nil {
		return nil, false
	}
	return &r, true
}

// ChartData is a price chart response, used for stock charts and
// marketmaker charts alike. The wire field `from` is renamed to From;
// its wire name is preserved on serialization. From and To arrive as a
// timestamp or a date string depending on resolution, so they stay raw.
type ChartData struct {
	OHLC                 []OHLCPoint       `json:"ohlc"`
	Metadata             *ChartMetadata    `json:"metadata,omitempty"`
	From                 json.RawMessage   `json:"from,omitempty"`
	To                   json.RawMessage   `json:"to,omitempty"`
	MarketMaker          []map[string]any  `json:"marketMaker,omitempty"`
	PreviousClosingPrice *float64          `json:"previousClosingPrice,omitempty"`

	Extra Extra `json:"-"`
}

func (v *ChartData) UnmarshalJSON(data []byte) error {
	type plain ChartData
	var p plain
	if err := unmarshalExtra(data, &p, &p.Extra); err != nil {
		return err
	}
	*v = ChartData(p)
	return nil
}

func (v ChartData) MarshalJSON() ([]byte, error) {
	type plain ChartData
	return marshalExtra(plain(v), v.Extra)
}
