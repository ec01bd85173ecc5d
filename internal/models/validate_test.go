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

func TestDecodeValidRecord(t *testing.T) {
	stock, err := Decode[StockInfo](json.RawMessage(`{"orderbookId": "5247", "name": "Volvo B"}`))
	require.NoError(t, err)
	assert.Equal(t, "Volvo B", stock.Name)
}

func TestDecodeMissingIdentityField(t *testing.T) {
	_, err := Decode[StockInfo](json.RawMessage(`{"orderbookId": "5247"}`))
	require.Error(t, err)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Error(), "structural validation")
}

func TestDecodeMalformedJSON(t *testing.T) {
	_, err := Decode[StockInfo](json.RawMessage(`{"name": `))
	require.Error(t, err)

	var verr *ValidationError
	assert.ErrorAs(t, err, &verr)
}

func TestDecodeFreeFormMap(t *testing.T) {
	// Detail payloads decode into maps, which carry no structural rules.
	m, err := Decode[map[string]any](json.RawMessage(`{"anything": "goes"}`))
	require.NoError(t, err)
	assert.Equal(t, "goes", (*m)["anything"])
}

func TestDecodeSliceValidatesElements(t *testing.T) {
	hits, err := DecodeSlice[SearchHit](json.RawMessage(`[{"title": "A"}, {"title": "B"}]`))
	require.NoError(t, err)
	assert.Len(t, hits, 2)

	_, err = DecodeSlice[SearchHit](json.RawMessage(`[{"title": "A"}, {"type": "STOCK"}]`))
	require.Error(t, err)

	var verr *ValidationError
	assert.ErrorAs(t, err, &verr)
}

func TestInstrumentTypeFromString(t *testing.T) {
	tests := []struct {
		in   string
		want InstrumentType
	}{
		{"", TypeAll},
		{"all", TypeAll},
		{"stock", TypeStock},
		{"fund", TypeFund},
		{"etf", TypeExchangeTradedFund},
		{"certificate", TypeCertificate},
		{"warrant", TypeWarrant},
		{"future_forward", TypeFutureForward},
		{"index", InstrumentType("INDEX")},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, InstrumentTypeFromString(tt.in), "input %q", tt.in)
	}
}
