package output

import (
	"bytes"
	"encoding/json"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var ansi = regexp.MustCompile("\x1b\\[[0-9;]*m")

func payload() map[string]any {
	return map[string]any{
		"uid":     "r1",
		"total":   json.Number("12"),
		"score":   json.Number("0.5"),
		"hidden":  false,
		"parent":  nil,
		"tags":    []any{"a", "b"},
		"content": "<p>x: \"y\"</p>",
	}
}

const payloadJSON = `{
  "content": "<p>x: \"y\"</p>",
  "hidden": false,
  "parent": null,
  "score": 0.5,
  "tags": [
    "a",
    "b"
  ],
  "total": 12,
  "uid": "r1"
}
`

func TestPrinter_JSON(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, NewPrinter(&buf, FormatJSON, false).Print(payload()))
	assert.Equal(t, payloadJSON, buf.String())
}

func TestPrinter_DefaultFormatIsJSON(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, NewPrinter(&buf, "", false).Print([]any{"x"}))
	assert.Equal(t, "[\n  \"x\"\n]\n", buf.String())
}

func TestPrinter_ColourKeepsText(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, NewPrinter(&buf, FormatJSON, true).Print(payload()))

	assert.Regexp(t, ansi, buf.String())
	assert.Equal(t, payloadJSON, ansi.ReplaceAllString(buf.String(), ""))
}

func TestPrinter_YAML(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, NewPrinter(&buf, "YAML", false).Print(map[string]any{
		"uid":    "r1",
		"total":  json.Number("12"),
		"score":  json.Number("0.5"),
		"hidden": false,
		"parent": nil,
		"tags":   []any{"a", "b"},
	}))
	assert.Equal(t, `hidden: false
parent: null
score: 0.5
tags:
  - a
  - b
total: 12
uid: r1
`, buf.String())
}

func TestPrinter_NilPrintsNothing(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, NewPrinter(&buf, FormatJSON, true).Print(nil))
	assert.Empty(t, buf.String())
}

func TestPrinter_UnknownFormat(t *testing.T) {
	err := NewPrinter(&bytes.Buffer{}, "xml", false).Print("x")
	assert.Error(t, err)
}

func TestColourize_TokenClasses(t *testing.T) {
	styles := newJSONStyles(&bytes.Buffer{})
	out, err := colourize(`{"k": "v", "n": -1.5e3, "b": true, "z": null}`, styles)
	require.NoError(t, err)

	assert.Contains(t, out, styles.key.Render(`"k"`))
	assert.Contains(t, out, styles.str.Render(`"v"`))
	assert.Contains(t, out, styles.number.Render(`-1.5e3`))
	assert.Contains(t, out, styles.literal.Render(`true`))
	assert.Contains(t, out, styles.null.Render(`null`))
}

func TestColourize_KeepsWhitespace(t *testing.T) {
	text := "{\n  \"a\": [\n    1,\n    \"x y\"\n  ]\n}\n"

	out, err := colourize(text, newJSONStyles(&bytes.Buffer{}))
	require.NoError(t, err)
	assert.Equal(t, text, ansi.ReplaceAllString(out, ""))
}

func TestNormalize(t *testing.T) {
	got := normalize(map[string]any{
		"i": json.Number("3"),
		"f": json.Number("1.25"),
		"l": []any{json.Number("1")},
	})
	assert.Equal(t, map[string]any{"i": int64(3), "f": 1.25, "l": []any{int64(1)}}, got)
}
