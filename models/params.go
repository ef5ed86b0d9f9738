// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Params is the query-parameter mapping of a single remote call.
// Values may be strings, numbers, booleans, slices, maps or any
// JSON-marshalable value; falsy values are dropped before encoding.
type Params map[string]any

// Clone returns a shallow copy of p. A nil receiver yields an empty,
// writable mapping.
func (p Params) Clone() Params {
	out := make(Params, len(p)+1)
	for k, v := range p {
		out[k] = v
	}
	return out
}

// Document is a decoded JSON object as returned by the remote service or
// produced from a template file.
type Document = map[string]any
