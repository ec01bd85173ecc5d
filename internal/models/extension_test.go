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

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtensionBagPreservesUnknownFields(t *testing.T) {
	payload := []byte(`{
		"orderbookId": "5247",
		"name": "Volvo B",
		"brandNewField": {"nested": true},
		"anotherOne": [1, 2, 3]
	}`)

	var stock StockInfo
	require.NoError(t, json.Unmarshal(payload, &stock))

	assert.Equal(t, "5247", stock.OrderbookID)
	assert.Equal(t, "Volvo B", stock.Name)
	require.Contains(t, stock.Extra, "brandNewField")
	require.Contains(t, stock.Extra, "anotherOne")

	out, err := json.Marshal(stock)
	require.NoError(t, err)

	var roundTripped map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(out, &roundTripped))
	assert.JSONEq(t, `{"nested": true}`, string(roundTripped["brandNewField"]))
	assert.JSONEq(t, `[1, 2, 3]`, string(roundTripped["anotherOne"]))
}

func TestExtensionBagEmptyWhenAllFieldsKnown(t *testing.T) {
	payload := []byte(`{"orderbookId": "5247", "name": "Volvo B"}`)

	var stock StockInfo
	require.NoError(t, json.Unmarshal(payload, &stock))
	assert.Empty(t, stock.Extra)
}

func TestModeledFieldsWinOnCollision(t *testing.T) {
	var quote Quote
	require.NoError(t, json.Unmarshal([]byte(`{"last": 100.5, "weird": "x"}`), &quote))

	// Mutating the typed field must be reflected on marshal even though
	// the extension bag was populated from the same payload.
	newLast := 200.0
	quote.Last = &newLast

	out, err := json.Marshal(quote)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(out, &decoded))
	assert.Equal(t, 200.0, decoded["last"])
	assert.Equal(t, "x", decoded["weird"])
}

func TestChartDataFromWireName(t *testing.T) {
	payload := []byte(`{
		"ohlc": [{"timestamp": 1700000000000, "open": 1, "close": 2, "low": 0.5, "high": 2.5, "totalVolumeTraded": 1000}],
		"from": "2025-01-02",
		"to": 1700000000000,
		"metadata": {"resolution": {"chartResolution": "DAY"}}
	}`)

	var chart ChartData
	require.NoError(t, json.Unmarshal(payload, &chart))

	require.Len(t, chart.OHLC, 1)
	assert.Equal(t, `"2025-01-02"`, string(chart.From))
	assert.Equal(t, `1700000000000`, string(chart.To))
	assert.Empty(t, chart.Extra, "renamed fields are modeled, not unknown")

	res, ok := chart.Metadata.ResolutionInfo()
	require.True(t, ok)
	assert.Equal(t, "DAY", res.ChartResolution)

	out, err := json.Marshal(chart)
	require.NoError(t, err)

	var decoded map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(out, &decoded))
	assert.Equal(t, `"2025-01-02"`, string(decoded["from"]), "wire name survives the round trip")
}

func TestResolutionInfoOnStringValue(t *testing.T) {
	meta := &ChartMetadata{Resolution: json.RawMessage(`"DAY"`)}
	_, ok := meta.ResolutionInfo()
	assert.False(t, ok)

	var nilMeta *ChartMetadata
	_, ok = nilMeta.ResolutionInfo()
	assert.False(t, ok)
}

func TestSearchResponseRoundTrip(t *testing.T) {
	payload := []byte(`{
		"totalNumberOfHits": 1,
		"hits": [{
			"type": "STOCK",
			"title": "Volvo B",
			"orderBookId": "5247",
			"surpriseField": 42
		}],
		"pagination": {"size": 10, "from": 0},
		"unmodeledTopLevel": "keep me"
	}`)

	var resp SearchResponse
	require.NoError(t, json.Unmarshal(payload, &resp))

	assert.Equal(t, 1, resp.TotalNumberOfHits)
	require.Len(t, resp.Hits, 1)
	assert.Equal(t, "Volvo B", resp.Hits[0].Title)
	require.NotNil(t, resp.Hits[0].OrderBookID)
	assert.Equal(t, "5247", *resp.Hits[0].OrderBookID)
	assert.Contains(t, resp.Hits[0].Extra, "surpriseField")
	assert.Contains(t, resp.Extra, "unmodeledTopLevel")
	assert.Equal(t, 0, resp.Pagination.From)

	out, err := json.Marshal(resp)
	require.NoError(t, err)

	var decoded map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(out, &decoded))
	assert.JSONEq(t, `"keep me"`, string(decoded["unmodeledTopLevel"]))
}
