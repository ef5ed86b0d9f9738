package generator

import (
	"encoding/json"
	"fmt"
	"math"
)

// Options holds the keyword arguments of one generator call as decoded from
// a generate spec.
type Options map[string]any

// Has reports whether key was given.
func (o Options) Has(key string) bool {
	_, ok := o[key]
	return ok
}

// Int returns the integer option key, or def when it is absent.
func (o Options) Int(key string, def int) (int, error) {
	v, ok := o[key]
	if !ok || v == nil {
		return def, nil
	}

	var f float64
	switch n := v.(type) {
	case int:
		return n, nil
	case int64:
		return int(n), nil
	case float64:
		f = n
	case json.Number:
		parsed, err := n.Float64()
		if err != nil {
			return 0, fmt.Errorf("%w: %s: %w", ErrInvalidOption, key, err)
		}
		f = parsed
	default:
		return 0, fmt.Errorf("%w: %s must be a number, got %T", ErrInvalidOption, key, v)
	}

	if f != math.Trunc(f) {
		return 0, fmt.Errorf("%w: %s must be an integer, got %v", ErrInvalidOption, key, f)
	}
	return int(f), nil
}

// String returns the string option key, or def when it is absent.
func (o Options) String(key, def string) (string, error) {
	v, ok := o[key]
	if !ok || v == nil {
		return def, nil
	}
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("%w: %s must be a string, got %T", ErrInvalidOption, key, v)
	}
	return s, nil
}

// Bool returns the boolean option key, or def when it is absent.
func (o Options) Bool(key string, def bool) (bool, error) {
	v, ok := o[key]
	if !ok || v == nil {
		return def, nil
	}
	b, ok := v.(bool)
	if !ok {
		return false, fmt.Errorf("%w: %s must be a boolean, got %T", ErrInvalidOption, key, v)
	}
	return b, nil
}

// List returns the list option key. A missing key yields nil.
func (o Options) List(key string) ([]any, error) {
	v, ok := o[key]
	if !ok || v == nil {
		return nil, nil
	}
	switch l := v.(type) {
	case []any:
		return l, nil
	case []string:
		out := make([]any, len(l))
		for i, s := range l {
			out[i] = s
		}
		return out, nil
	default:
		return nil, fmt.Errorf("%w: %s must be a list, got %T", ErrInvalidOption, key, v)
	}
}
