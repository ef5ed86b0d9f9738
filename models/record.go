// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Record is the body of a create or update record call.
//
// Type partitions the search domain, Name is a non-indexed label,
// Properties are indexed and searchable, while Data is returned with the
// record but never searched. Hidden records are excluded from searches
// unless include_hidden is requested.
type Record struct {
	Type       string   `json:"type,omitempty"`
	Name       string   `json:"name"`
	Properties Document `json:"properties"`
	Data       Document `json:"data"`
	Hidden     bool     `json:"hidden"`
}

// Objects is the payload of a create-objects call, keyed by object type.
//
// Each key is in one of three states:
//   - a non-nil value replaces the content of that object type;
//   - a nil value keeps the content currently stored by the service;
//   - an absent key removes that object type from the record.
//
// The service applies these rules; the client only has to preserve them
// when building the mapping.
type Objects map[string]any

// Set stores new content for objectType.
func (o Objects) Set(objectType string, content any) Objects {
	o[objectType] = content
	return o
}

// Keep marks objectType as unchanged.
func (o Objects) Keep(objectType string) Objects {
	o[objectType] = nil
	return o
}

// Remove drops objectType, which deletes it on the service side.
func (o Objects) Remove(objectType string) Objects {
	delete(o, objectType)
	return o
}

// ObjectsRequest wraps [Objects] in the body expected by
// POST /records/{uid}/objects.
type ObjectsRequest struct {
	Objects Objects `json:"objects"`
}
