// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// Comparison is a filter operator understood by the remote service.
type Comparison string

// Supported comparison operators. The service matches them case-insensitively,
// so "equalto" and "EqualTo" are the same operator.
const (
	EqualTo              Comparison = "EqualTo"
	NotEqualTo           Comparison = "NotEqualTo"
	LessThan             Comparison = "LessThan"
	GreaterThan          Comparison = "GreaterThan"
	LessThanOrEqualTo    Comparison = "LessThanOrEqualTo"
	GreaterThanOrEqualTo Comparison = "GreaterThanOrEqualTo"
	Contains             Comparison = "Contains"
	StartsWith           Comparison = "StartsWith"
	EndsWith             Comparison = "EndsWith"
	IsIn                 Comparison = "IsIn"
	HasIntersectionWith  Comparison = "HasIntersectionWith"
)

// Comparisons lists every supported operator in declaration order.
var Comparisons = []Comparison{
	EqualTo,
	NotEqualTo,
	LessThan,
	GreaterThan,
	LessThanOrEqualTo,
	GreaterThanOrEqualTo,
	Contains,
	StartsWith,
	EndsWith,
	IsIn,
	HasIntersectionWith,
}

// ParseComparison resolves s against [Comparisons] ignoring case and returns
// the canonical operator.
func ParseComparison(s string) (Comparison, bool) {
	for _, c := range Comparisons {
		if strings.EqualFold(string(c), s) {
			return c, true
		}
	}
	return "", false
}

// IsValid reports whether c names a supported operator in any letter case.
func (c Comparison) IsValid() bool {
	_, ok := ParseComparison(string(c))
	return ok
}

// Filter narrows a schema or search query to records whose Property compares
// to Value using Comparison. On the wire a filter is the ordered triple
// [property, comparison, value]; the comparison is sent exactly as given.
type Filter struct {
	Property   string
	Comparison Comparison
	Value      any
}

// NewFilter is a convenience constructor for [Filter].
func NewFilter(property string, comparison Comparison, value any) Filter {
	return Filter{Property: property, Comparison: comparison, Value: value}
}

// MarshalJSON encodes f as [property, comparison, value].
func (f Filter) MarshalJSON() ([]byte, error) {
	return json.Marshal([]any{f.Property, string(f.Comparison), f.Value})
}

// UnmarshalJSON decodes the [property, comparison, value] triple. Numeric
// values are kept as [json.Number] so they are re-encoded verbatim.
func (f *Filter) UnmarshalJSON(b []byte) error {
	var triple []json.RawMessage
	if err := json.Unmarshal(b, &triple); err != nil {
		return fmt.Errorf("filter must be a [property, comparison, value] array: %w", err)
	}
	if len(triple) != 3 {
		return fmt.Errorf("filter must have exactly 3 elements, got %d", len(triple))
	}

	var property, comparison string
	if err := json.Unmarshal(triple[0], &property); err != nil {
		return fmt.Errorf("filter property must be a string: %w", err)
	}
	if err := json.Unmarshal(triple[1], &comparison); err != nil {
		return fmt.Errorf("filter comparison must be a string: %w", err)
	}

	dec := json.NewDecoder(bytes.NewReader(triple[2]))
	dec.UseNumber()
	var value any
	if err := dec.Decode(&value); err != nil {
		return fmt.Errorf("filter value: %w", err)
	}

	*f = Filter{Property: property, Comparison: Comparison(comparison), Value: value}
	return nil
}

// Filters is an ordered list of filters, ANDed together by the service.
// An empty list means the query is unfiltered.
type Filters []Filter

// ParseFilters decodes filters from their JSON notation, e.g.
// `[["price","equalto",5],["tags","isin",["a","b"]]]`. Blank input yields an
// empty list.
func ParseFilters(s string) (Filters, error) {
	if strings.TrimSpace(s) == "" {
		return Filters{}, nil
	}

	var filters Filters
	if err := json.Unmarshal([]byte(s), &filters); err != nil {
		return nil, fmt.Errorf("error parsing filters: %w", err)
	}
	return filters, nil
}

func (fs Filters) orEmpty() Filters {
	if fs == nil {
		return Filters{}
	}
	return fs
}
