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

// Package models defines the typed response mapping for the Avanza
// public API.
//
// The upstream API is not under our control: record types therefore treat
// every field outside identity as optional, and the top-level types carry
// an extension bag that preserves unrecognized fields verbatim through a
// marshal/unmarshal round-trip.
package models

import (
	"encoding/json"
	"reflect"
	"strings"
)

// Extra is the extension bag for fields the schema does not model.
// Preserved verbatim on serialization.
type Extra map[string]json.RawMessage

// unmarshalExtra decodes data into the shadow struct v and collects every
// wire field not covered by v's json tags into the extension bag.
func unmarshalExtra(data []byte, v any, extra *Extra) error {
	if err := json.Unmarshal(data, v); err != nil {
		return err
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	known := knownFields(reflect.TypeOf(v).Elem())
	for name := range raw {
		if _, ok := known[name]; ok {
			delete(raw, name)
		}
	}
	if len(raw) > 0 {
		*extra = raw
	}
	return nil
}

// marshalExtra encodes the shadow struct v and merges the extension bag
// back in. Modeled fields win on name collision.
func marshalExtra(v any, extra Extra) ([]byte, error) {
	base, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	if len(extra) == 0 {
		return base, nil
	}

	var merged map[string]json.RawMessage
	if err := json.Unmarshal(base, &merged); err != nil {
		return nil, err
	}
	for name, value := range extra {
		if _, ok := merged[name]; !ok {
			merged[name] = value
		}
	}
	return json.Marshal(merged)
}

// knownFields returns the wire names a struct type produces, derived from
// its json tags. Untagged exported fields map under their Go name, as
// encoding/json does. Anonymous embedded structs are flattened.
func knownFields(t reflect.Type) map[string]struct{} {
	names := make(map[string]struct{})
	collectFields(t, names)
	return names
}

func collectFields(t reflect.Type, names map[string]struct{}) {
	if t.Kind() != reflect.Struct {
		return
	}
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if f.PkgPath != "" {
			continue // unexported
		}
		tag := f.Tag.Get("json")
		if tag == "-" {
			continue
		}
		name, _, _ := strings.Cut(tag, ",")
		if name == "" {
			if f.Anonymous {
				ft := f.Type
				if ft.Kind() == reflect.Pointer {
					ft = ft.Elem()
				}
				collectFields(ft, names)
				continue
			}
			name = f.Name
		}
		names[name] = struct{}{}
	}
}
