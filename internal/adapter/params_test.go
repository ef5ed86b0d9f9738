package adapter

import (
	"encoding/json"
	"net/url"
	"testing"

	"github.com/MKhiriev/go-omnisearch/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── CleanParams ──────────────────────────────────────────────────────────────

func TestCleanParams_DropsFalsyValues(t *testing.T) {
	var nilPtr *int
	params := models.Params{
		"empty_string": "",
		"zero_int":     0,
		"zero_float":   0.0,
		"zero_number":  json.Number("0"),
		"false":        false,
		"nil":          nil,
		"nil_ptr":      nilPtr,
		"empty_slice":  []string{},
		"empty_map":    map[string]any{},
		"empty_filter": models.Filters{},

		"text":    "go",
		"number":  3,
		"true":    true,
		"list":    []string{"a"},
		"decimal": json.Number("0.5"),
	}

	cleaned := CleanParams(params)

	assert.Equal(t, models.Params{
		"text":    "go",
		"number":  3,
		"true":    true,
		"list":    []string{"a"},
		"decimal": json.Number("0.5"),
	}, cleaned)
}

func TestCleanParams_DoesNotMutateInput(t *testing.T) {
	params := models.Params{"a": "", "b": "x"}

	_ = CleanParams(params)

	assert.Len(t, params, 2)
}

func TestCleanParams_Nil(t *testing.T) {
	assert.Empty(t, CleanParams(nil))
}

// ── EncodeParams ─────────────────────────────────────────────────────────────

func TestEncodeParams_ValueForms(t *testing.T) {
	query, err := EncodeParams(models.Params{
		"query":          "big cats",
		"page":           2,
		"include_hidden": true,
		"ratio":          1.5,
		"record_uids":    []string{"a", "b"},
		"order":          models.Descending,
	})
	require.NoError(t, err)

	values, err := url.ParseQuery(query)
	require.NoError(t, err)

	assert.Equal(t, "big cats", values.Get("query"))
	assert.Equal(t, "2", values.Get("page"))
	assert.Equal(t, "true", values.Get("include_hidden"))
	assert.Equal(t, "1.5", values.Get("ratio"))
	assert.Equal(t, `["a","b"]`, values.Get("record_uids"))
	assert.Equal(t, "descending", values.Get("order"))
}

func TestEncodeParams_SortedKeys(t *testing.T) {
	query, err := EncodeParams(models.Params{"b": 1, "a": 2, "c": 3})
	require.NoError(t, err)
	assert.Equal(t, "a=2&b=1&c=3", query)
}

func TestEncodeParams_Filters(t *testing.T) {
	query, err := EncodeParams(models.Params{
		"filters": models.Filters{models.NewFilter("price", "equalto", 5)},
	})
	require.NoError(t, err)

	values, err := url.ParseQuery(query)
	require.NoError(t, err)
	assert.Equal(t, `[["price","equalto",5]]`, values.Get("filters"))
}

func TestEncodeParams_Unmarshalable(t *testing.T) {
	_, err := EncodeParams(models.Params{"bad": []any{func() {}}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"bad"`)
}

// ── MergeURL ─────────────────────────────────────────────────────────────────

func TestMergeURL(t *testing.T) {
	const base = "https://acme.omnisearch.ai/api/v1/records"

	tests := []struct {
		name   string
		params models.Params
		want   string
	}{
		{name: "nil params", params: nil, want: base},
		{name: "empty params", params: models.Params{}, want: base},
		{name: "only falsy params", params: models.Params{"a": "", "b": 0, "c": false}, want: base},
		{name: "single param", params: models.Params{"a": 1}, want: base + "?a=1"},
		{name: "escaping", params: models.Params{"q": "a&b c"}, want: base + "?q=a%26b+c"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := MergeURL(base, tt.params)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
