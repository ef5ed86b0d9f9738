// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// DefaultPageSize is used when a query leaves PageSize unset.
const DefaultPageSize = 10

// Pagination selects one page of a listing or search.
//
// Record listings are zero-based while searches start at page 1; the
// defaults applied by [ListQuery] and [SearchQuery] reflect that.
type Pagination struct {
	Page     int
	PageSize int
}

func (p Pagination) withDefaults(firstPage int) Pagination {
	if p.Page == 0 {
		p.Page = firstPage
	}
	if p.PageSize == 0 {
		p.PageSize = DefaultPageSize
	}
	return p
}

// ListQuery lists the records of one type.
type ListQuery struct {
	RecordType string
	Pagination Pagination
}

// Params builds the query parameters of GET /records.
func (q ListQuery) Params() Params {
	p := q.Pagination.withDefaults(0)
	return Params{
		"type":      q.RecordType,
		"page":      p.Page,
		"page_size": p.PageSize,
	}
}

// SchemaQuery asks for the distinct property values, and their counts,
// across the records matching the query.
type SchemaQuery struct {
	RecordType  string
	Query       string
	RecordIDs   []string
	ObjectTypes []string
	Filters     Filters

	IncludeHidden      bool
	DisableAutocorrect bool

	// ExcludedProperties are left out of the schema entirely.
	ExcludedProperties []string
	// AggregateProperties have list values flattened before counting.
	AggregateProperties []string
	// SortByCount orders values by count instead of by value.
	SortByCount bool
}

// Params builds the query parameters of GET /schema/{record_type}.
func (q SchemaQuery) Params() Params {
	return Params{
		"query":                q.Query,
		"record_uids":          orEmpty(q.RecordIDs),
		"object_types":         orEmpty(q.ObjectTypes),
		"filters":              q.Filters.orEmpty(),
		"include_hidden":       q.IncludeHidden,
		"disable_autocorrect":  q.DisableAutocorrect,
		"excluded_properties":  orEmpty(q.ExcludedProperties),
		"aggregate_properties": orEmpty(q.AggregateProperties),
		"sort_by_count":        q.SortByCount,
	}
}

// SearchQuery is a full-text search over the records of one type.
type SearchQuery struct {
	RecordType  string
	Query       string
	RecordIDs   []string
	ObjectTypes []string
	Filters     Filters

	IncludeHidden      bool
	DisableAutocorrect bool

	Sort SortSpec
	// Detailed switches to the /detailed variant of the endpoint.
	Detailed   bool
	Pagination Pagination
}

// Params builds the query parameters of GET /search/{record_type}.
func (q SearchQuery) Params() Params {
	p := q.Pagination.withDefaults(1)
	return Params{
		"query":               q.Query,
		"record_uids":         orEmpty(q.RecordIDs),
		"object_types":        orEmpty(q.ObjectTypes),
		"filters":             q.Filters.orEmpty(),
		"include_hidden":      q.IncludeHidden,
		"disable_autocorrect": q.DisableAutocorrect,
		"sort_by":             q.Sort.String(),
		"page":                p.Page,
		"page_size":           p.PageSize,
	}
}

func orEmpty(list []string) []string {
	if list == nil {
		return []string{}
	}
	return list
}
