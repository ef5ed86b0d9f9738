// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"encoding/json"
	"fmt"
	"net/url"
	"reflect"
	"strconv"

	"github.com/MKhiriev/go-omnisearch/models"
)

// CleanParams returns a copy of params without falsy values: nil, "",
// numeric zero, false, nil pointers and empty slices, arrays or maps.
// The input is never modified.
func CleanParams(params models.Params) models.Params {
	cleaned := make(models.Params, len(params))
	for k, v := range params {
		if isFalsy(v) {
			continue
		}
		cleaned[k] = v
	}
	return cleaned
}

// EncodeParams sanitizes params with [CleanParams] and URL-encodes the
// result with keys in sorted order.
//
// Strings are sent verbatim, booleans as "true"/"false" and numbers in
// decimal notation. Slices, maps and structs are sent as JSON text, which is
// how the service expects list-valued parameters such as record_uids or
// filters.
func EncodeParams(params models.Params) (string, error) {
	values := url.Values{}
	for k, v := range CleanParams(params) {
		s, err := encodeValue(v)
		if err != nil {
			return "", fmt.Errorf("encode param %q: %w", k, err)
		}
		values.Set(k, s)
	}
	return values.Encode(), nil
}

// MergeURL appends the encoded params to rawURL. When nothing survives
// sanitization rawURL is returned unchanged, without a trailing "?".
func MergeURL(rawURL string, params models.Params) (string, error) {
	query, err := EncodeParams(params)
	if err != nil {
		return "", err
	}
	if query == "" {
		return rawURL, nil
	}
	return rawURL + "?" + query, nil
}

func isFalsy(v any) bool {
	if v == nil {
		return true
	}
	if n, ok := v.(json.Number); ok {
		f, err := n.Float64()
		return err == nil && f == 0
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.String, reflect.Slice, reflect.Array, reflect.Map:
		return rv.Len() == 0
	case reflect.Bool:
		return !rv.Bool()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int() == 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return rv.Uint() == 0
	case reflect.Float32, reflect.Float64:
		return rv.Float() == 0
	case reflect.Pointer, reflect.Interface:
		return rv.IsNil()
	default:
		return false
	}
}

func encodeValue(v any) (string, error) {
	switch val := v.(type) {
	case string:
		return val, nil
	case json.Number:
		return val.String(), nil
	case bool:
		return strconv.FormatBool(val), nil
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.String:
		return rv.String(), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return strconv.FormatUint(rv.Uint(), 10), nil
	case reflect.Float32, reflect.Float64:
		return strconv.FormatFloat(rv.Float(), 'f', -1, 64), nil
	}

	b, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
