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

package service

import (
	"context"
	"fmt"

	"github.com/marknad/avanza-mcp/internal/avanza"
	"github.com/marknad/avanza-mcp/internal/models"
)

const (
	// DefaultSearchLimit applies when the caller passes limit <= 0.
	DefaultSearchLimit = 10
	// MaxSearchLimit caps the result count accepted by the upstream API.
	MaxSearchLimit = 50
)

// Search queries instruments by name, ticker or ISIN.
type Search struct {
	client Client
}

// NewSearch creates a search service on the given client.
func NewSearch(client Client) *Search {
	return &Search{client: client}
}

// Instruments searches across all instrument types, or a single type when
// instrumentType is non-empty and not TypeAll. The limit is clamped to
// [1, MaxSearchLimit].
func (s *Search) Instruments(ctx context.Context, query string, limit int, instrumentType models.InstrumentType) (*models.SearchResponse, error) {
	if query == "" {
		return nil, fmt.Errorf("search: query must not be empty")
	}

	req := models.SearchRequest{
		Query: query,
		Limit: clampLimit(limit),
	}
	if instrumentType != "" && instrumentType != models.TypeAll {
		req.InstrumentType = instrumentType
	}

	path, err := avanza.Resolve(avanza.OpSearch, nil)
	if err != nil {
		return nil, err
	}
	raw, err := s.client.Post(ctx, path, req)
	if err != nil {
		return nil, err
	}
	return models.Decode[models.SearchResponse](raw)
}

func clampLimit(limit int) int {
	switch {
	case limit <= 0:
		return DefaultSearchLimit
	case limit > MaxSearchLimit:
		return MaxSearchLimit
	default:
		return limit
	}
}
