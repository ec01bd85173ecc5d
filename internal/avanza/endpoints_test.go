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

package avanza

import (
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveSubstitutesPlaceholders(t *testing.T) {
	path, err := Resolve(OpStockInfo, map[string]string{"id": "5247"})
	require.NoError(t, err)
	assert.Equal(t, "/_api/market-guide/stock/5247", path)

	path, err = Resolve(OpFundChart, map[string]string{"id": "41567", "time_period": "three_years"})
	require.NoError(t, err)
	assert.Equal(t, "/_api/fund-guide/chart/41567/three_years", path)
}

func TestResolveEscapesPathValues(t *testing.T) {
	path, err := Resolve(OpStockInfo, map[string]string{"id": "a/b c"})
	require.NoError(t, err)
	assert.Equal(t, "/_api/market-guide/stock/a%2Fb%20c", path)
}

func TestResolveMissingPlaceholder(t *testing.T) {
	for _, args := range []map[string]string{
		nil,
		{},
		{"id": ""},
	} {
		_, err := Resolve(OpStockQuote, args)
		require.Error(t, err)

		var perr *PlaceholderError
		require.ErrorAs(t, err, &perr)
		assert.Equal(t, OpStockQuote, perr.Operation)
		assert.Equal(t, []string{"id"}, perr.Missing)
	}
}

func TestResolveUnexpectedPlaceholder(t *testing.T) {
	_, err := Resolve(OpSearch, map[string]string{"id": "5247"})
	require.Error(t, err)

	var perr *PlaceholderError
	require.ErrorAs(t, err, &perr)
	assert.Empty(t, perr.Missing)
	assert.Equal(t, []string{"id"}, perr.Unexpected)
}

func TestResolveMixedMismatch(t *testing.T) {
	_, err := Resolve(OpFundChart, map[string]string{"id": "41567", "period": "one_year"})
	require.Error(t, err)

	var perr *PlaceholderError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, []string{"time_period"}, perr.Missing)
	assert.Equal(t, []string{"period"}, perr.Unexpected)
}

func TestResolveUnknownOperation(t *testing.T) {
	_, err := Resolve(Operation("bogus"), nil)
	require.Error(t, err)

	var perr *PlaceholderError
	assert.False(t, strings.Contains(err.Error(), "placeholder"))
	assert.False(t, errors.As(err, &perr))
}

// Every catalog entry must declare exactly the placeholders its template
// embeds, and filter endpoints must be POST.
func TestCatalogConsistency(t *testing.T) {
	for op, e := range catalog {
		require.NotEmpty(t, e.Template, "operation %s", op)
		require.True(t, strings.HasPrefix(e.Template, "/_api/"), "operation %s", op)
		require.Contains(t, []string{http.MethodGet, http.MethodPost}, e.Method, "operation %s", op)

		for _, name := range e.Placeholders {
			assert.Contains(t, e.Template, "{"+name+"}", "operation %s", op)
		}

		rest := e.Template
		for _, name := range e.Placeholders {
			rest = strings.ReplaceAll(rest, "{"+name+"}", "")
		}
		assert.NotContains(t, rest, "{", "operation %s declares too few placeholders", op)
	}
}

func TestLookup(t *testing.T) {
	e, ok := Lookup(OpSearch)
	require.True(t, ok)
	assert.Equal(t, http.MethodPost, e.Method)

	_, ok = Lookup(Operation("bogus"))
	assert.False(t, ok)
}
