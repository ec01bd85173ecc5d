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
	"fmt"
	"reflect"

	"github.com/go-playground/validator/v10"
)

// validate performs structural checks only: identity fields are required,
// everything else is optional. No business-rule validation happens here.
var validate = validator.New(validator.WithRequiredStructEnabled())

// ValidationError reports a structurally invalid upstream payload. It is
// a distinct category from the client's transport/API error taxonomy: a
// malformed body under a 200 status is a mapping failure, not an API error.
type ValidationError struct {
	Cause error
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("models: response failed structural validation: %v", e.Cause)
}

// Unwrap returns the underlying validator error.
func (e *ValidationError) Unwrap() error {
	return e.Cause
}

// Validate checks the structural constraints of a mapped record.
// Non-struct records (free-form detail payloads) have no constraints.
func Validate(v any) error {
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer {
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return nil
	}
	if err := validate.Struct(v); err != nil {
		return &ValidationError{Cause: err}
	}
	return nil
}

// Decode unmarshals a raw JSON payload into a record type and validates
// its structure.
func Decode[T any](data json.RawMessage) (*T, error) {
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, &ValidationError{Cause: err}
	}
	if err := Validate(&v); err != nil {
		return nil, err
	}
	return &v, nil
}

// DecodeSlice unmarshals a raw JSON array into a slice of records and
// validates each element.
func DecodeSlice[T any](data json.RawMessage) ([]T, error) {
	var vs []T
	if err := json.Unmarshal(data, &vs); err != nil {
		return nil, &ValidationError{Cause: err}
	}
	for i := range vs {
		if err := Validate(&vs[i]); err != nil {
			return nil, err
		}
	}
	return vs, nil
}
