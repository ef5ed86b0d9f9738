package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── Comparison ───────────────────────────────────────────────────────────────

func TestParseComparison(t *testing.T) {
	tests := []struct {
		in     string
		want   Comparison
		wantOK bool
	}{
		{in: "EqualTo", want: EqualTo, wantOK: true},
		{in: "equalto", want: EqualTo, wantOK: true},
		{in: "HASINTERSECTIONWITH", want: HasIntersectionWith, wantOK: true},
		{in: "isin", want: IsIn, wantOK: true},
		{in: "like", wantOK: false},
		{in: "", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseComparison(tt.in)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestComparisons_Complete(t *testing.T) {
	assert.Len(t, Comparisons, 11)
	for _, c := range Comparisons {
		assert.True(t, c.IsValid(), c)
	}
	assert.False(t, Comparison("between").IsValid())
}

// ── Filter JSON ──────────────────────────────────────────────────────────────

func TestFilter_MarshalTriple(t *testing.T) {
	b, err := json.Marshal(Filters{
		NewFilter("price", "equalto", 5),
		NewFilter("tags", IsIn, []string{"a", "b"}),
	})
	require.NoError(t, err)
	assert.JSONEq(t, `[["price","equalto",5],["tags","IsIn",["a","b"]]]`, string(b))
}

func TestFilter_ComparisonSentAsGiven(t *testing.T) {
	b, err := json.Marshal(NewFilter("name", "sTaRtSwItH", "Al"))
	require.NoError(t, err)
	assert.Equal(t, `["name","sTaRtSwItH","Al"]`, string(b))
}

func TestFilter_UnmarshalErrors(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{name: "object", in: `{"property":"a"}`},
		{name: "two elements", in: `["a","equalto"]`},
		{name: "four elements", in: `["a","equalto",1,2]`},
		{name: "numeric property", in: `[1,"equalto",1]`},
		{name: "numeric comparison", in: `["a",2,1]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var f Filter
			assert.Error(t, json.Unmarshal([]byte(tt.in), &f))
		})
	}
}

// ── ParseFilters ─────────────────────────────────────────────────────────────

func TestParseFilters(t *testing.T) {
	filters, err := ParseFilters(`[["price","lessthan",10.5],["tags","isin",["x"]],["draft","equalto",false]]`)
	require.NoError(t, err)
	require.Len(t, filters, 3)

	assert.Equal(t, Filter{Property: "price", Comparison: "lessthan", Value: json.Number("10.5")}, filters[0])
	assert.Equal(t, []any{"x"}, filters[1].Value)
	assert.Equal(t, false, filters[2].Value)

	b, err := json.Marshal(filters)
	require.NoError(t, err)
	assert.Equal(t, `[["price","lessthan",10.5],["tags","isin",["x"]],["draft","equalto",false]]`, string(b))
}

func TestParseFilters_Blank(t *testing.T) {
	for _, in := range []string{"", "   "} {
		filters, err := ParseFilters(in)
		require.NoError(t, err)
		assert.NotNil(t, filters)
		assert.Empty(t, filters)
	}
}

func TestParseFilters_Invalid(t *testing.T) {
	_, err := ParseFilters(`[["price","equalto"]]`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error parsing filters")
}
