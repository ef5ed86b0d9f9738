package generator

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptions_Int(t *testing.T) {
	opts := Options{"a": 3, "b": 4.0, "c": json.Number("5"), "d": nil, "e": json.Number("x")}

	for key, want := range map[string]int{"a": 3, "b": 4, "c": 5, "d": 9, "missing": 9} {
		got, err := opts.Int(key, 9)
		require.NoError(t, err, key)
		assert.Equal(t, want, got, key)
	}

	_, err := opts.Int("e", 0)
	assert.ErrorIs(t, err, ErrInvalidOption)
}

func TestOptions_StringBoolList(t *testing.T) {
	opts := Options{"s": "x", "b": true, "l": []string{"a"}, "n": 1}

	s, err := opts.String("s", "")
	require.NoError(t, err)
	assert.Equal(t, "x", s)

	b, err := opts.Bool("b", false)
	require.NoError(t, err)
	assert.True(t, b)

	l, err := opts.List("l")
	require.NoError(t, err)
	assert.Equal(t, []any{"a"}, l)

	_, err = opts.String("n", "")
	assert.ErrorIs(t, err, ErrInvalidOption)
	_, err = opts.Bool("n", false)
	assert.ErrorIs(t, err, ErrInvalidOption)

	assert.True(t, opts.Has("n"))
	assert.False(t, opts.Has("z"))
}
