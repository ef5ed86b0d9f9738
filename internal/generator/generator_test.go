package generator

import (
	"encoding/json"
	"os"
	"path/filepath"
	"regexp"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestGenerator(t *testing.T) *Generator {
	t.Helper()
	g := New(42)
	g.now = func() time.Time { return time.Date(2026, time.June, 15, 12, 0, 0, 0, time.UTC) }
	return g
}

// ── Registry ─────────────────────────────────────────────────────────────────

func TestGenerate_EveryKindProducesAValue(t *testing.T) {
	g := newTestGenerator(t)

	opts := map[Kind]Options{
		KindPickOne:  {"values": []any{"a", "b"}},
		KindPickMany: {"values": []any{"a", "b"}, "minimum": 1, "maximum": 3},
	}

	for kind := range producers {
		t.Run(string(kind), func(t *testing.T) {
			v, err := g.Generate(kind, opts[kind])
			require.NoError(t, err)
			assert.NotNil(t, v)
		})
	}
}

func TestGenerate_ValueShapes(t *testing.T) {
	g := newTestGenerator(t)

	tests := []struct {
		kind  Kind
		opts  Options
		check func(t *testing.T, v any)
	}{
		{kind: KindBoolean, check: func(t *testing.T, v any) { assert.IsType(t, true, v) }},
		{kind: KindBoolean, opts: Options{"likelihood": 100}, check: func(t *testing.T, v any) { assert.Equal(t, true, v) }},
		{kind: KindBoolean, opts: Options{"likelihood": 0}, check: func(t *testing.T, v any) { assert.Equal(t, false, v) }},
		{kind: KindCharacter, opts: Options{"pool": "x"}, check: func(t *testing.T, v any) { assert.Equal(t, "x", v) }},
		{kind: KindString, opts: Options{"length": 8, "alpha": true, "casing": "upper"}, check: func(t *testing.T, v any) {
			assert.Regexp(t, `^[A-Z]{8}$`, v)
		}},
		{kind: KindString, opts: Options{"length": json.Number("3"), "pool": "ab"}, check: func(t *testing.T, v any) {
			assert.Regexp(t, `^[ab]{3}$`, v)
		}},
		{kind: KindSyllable, check: func(t *testing.T, v any) { assert.Regexp(t, `^[a-z]{2,3}$`, v) }},
		{kind: KindWord, opts: Options{"length": 7}, check: func(t *testing.T, v any) { assert.Len(t, v, 7) }},
		{kind: KindAge, opts: Options{"type": "child"}, check: func(t *testing.T, v any) {
			assert.GreaterOrEqual(t, v, 0)
			assert.LessOrEqual(t, v, 12)
		}},
		{kind: KindDate, opts: Options{"year": 1999}, check: func(t *testing.T, v any) {
			require.IsType(t, time.Time{}, v)
			assert.Equal(t, 1999, v.(time.Time).Year())
		}},
		{kind: KindDate, opts: Options{"year": 2001, "string": true}, check: func(t *testing.T, v any) {
			assert.Regexp(t, `^\d{1,2}/\d{1,2}/2001$`, v)
		}},
		{kind: KindBirthday, opts: Options{"type": "teen"}, check: func(t *testing.T, v any) {
			require.IsType(t, time.Time{}, v)
			year := v.(time.Time).Year()
			assert.GreaterOrEqual(t, year, 2026-20)
			assert.LessOrEqual(t, year, 2026-13)
		}},
		{kind: KindEmail, opts: Options{"domain": "example.com"}, check: func(t *testing.T, v any) {
			assert.Regexp(t, `@example\.com$`, v)
		}},
		{kind: KindDomain, opts: Options{"tld": "io"}, check: func(t *testing.T, v any) { assert.Regexp(t, `^.+\.io$`, v) }},
		{kind: KindPath, check: func(t *testing.T, v any) { assert.Regexp(t, `^/.+/$`, v) }},
		{kind: KindFilepath, opts: Options{"extension": ".txt"}, check: func(t *testing.T, v any) {
			assert.Regexp(t, `^/.+/.+\.txt$`, v)
		}},
		{kind: KindIP, check: func(t *testing.T, v any) { assert.Regexp(t, `^\d+\.\d+\.\d+\.\d+$`, v) }},
		{kind: KindHexHash, check: func(t *testing.T, v any) { assert.Regexp(t, `^[0-9a-f]{40}$`, v) }},
		{kind: KindColor, check: func(t *testing.T, v any) { assert.Regexp(t, `^#[0-9a-f]{6}$`, v) }},
		{kind: KindColor, opts: Options{"format": "shorthex"}, check: func(t *testing.T, v any) { assert.Regexp(t, `^#[0-9a-f]{3}$`, v) }},
		{kind: KindColor, opts: Options{"format": "rgb"}, check: func(t *testing.T, v any) {
			assert.Regexp(t, `^rgb\(\d+,\d+,\d+\)$`, v)
		}},
		{kind: KindGUID, check: func(t *testing.T, v any) {
			_, err := uuid.Parse(v.(string))
			assert.NoError(t, err)
		}},
		{kind: KindPickOne, opts: Options{"values": []string{"only"}}, check: func(t *testing.T, v any) { assert.Equal(t, "only", v) }},
	}

	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			v, err := g.Generate(tt.kind, tt.opts)
			require.NoError(t, err)
			tt.check(t, v)
		})
	}
}

func TestGenerate_InvalidOptions(t *testing.T) {
	g := newTestGenerator(t)

	tests := []struct {
		kind Kind
		opts Options
	}{
		{kind: KindBoolean, opts: Options{"likelihood": 101}},
		{kind: KindString, opts: Options{"length": -1}},
		{kind: KindString, opts: Options{"length": "ten"}},
		{kind: KindString, opts: Options{"length": 2.5}},
		{kind: KindCharacter, opts: Options{"casing": "title"}},
		{kind: KindAge, opts: Options{"type": "ancient"}},
		{kind: KindColor, opts: Options{"format": "cmyk"}},
		{kind: KindPickOne, opts: Options{"values": "abc"}},
	}

	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			_, err := g.Generate(tt.kind, tt.opts)
			assert.ErrorIs(t, err, ErrInvalidOption)
		})
	}
}

func TestGenerate_UnknownKind(t *testing.T) {
	_, err := newTestGenerator(t).Generate("nope", nil)
	assert.ErrorIs(t, err, ErrInvalidSpec)
}

func TestGenerate_SameSeedSameValues(t *testing.T) {
	specs := Specs{
		"title": {Type: KindSentence, Options: Options{"words": 4}},
		"name":  {Type: KindName},
		"id":    {Type: KindGUID},
		"tags":  {Type: KindPickMany, Options: Options{"values": []any{"a", "b", "c"}, "minimum": 1, "maximum": 4}},
	}

	first, err := New(7).Dictionary(specs)
	require.NoError(t, err)
	second, err := New(7).Dictionary(specs)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

// ── PickOne / PickMany ───────────────────────────────────────────────────────

func TestPickOne(t *testing.T) {
	g := newTestGenerator(t)
	values := []any{"x", "y", "z"}

	for range 50 {
		v, err := g.PickOne(values)
		require.NoError(t, err)
		assert.Contains(t, values, v)
	}

	_, err := g.PickOne(nil)
	assert.ErrorIs(t, err, ErrNoCandidates)
}

func TestPickMany_Properties(t *testing.T) {
	g := newTestGenerator(t)
	values := []any{"a", "b", "c"}

	for range 200 {
		out, err := g.PickMany(values, 1, 3)
		require.NoError(t, err)

		var picked []string
		require.NoError(t, json.Unmarshal([]byte(out), &picked))

		assert.GreaterOrEqual(t, len(picked), 1)
		assert.LessOrEqual(t, len(picked), 2, "count is drawn from [1, 3)")

		seen := map[string]bool{}
		for _, p := range picked {
			assert.Contains(t, []string{"a", "b", "c"}, p)
			assert.False(t, seen[p], "duplicate %q", p)
			seen[p] = true
		}
	}
}

func TestPickMany_CountBeforeDedup(t *testing.T) {
	g := newTestGenerator(t)

	// пять выборок из одного кандидата дают одно значение
	out, err := g.PickMany([]any{"same"}, 5, 6)
	require.NoError(t, err)
	assert.Equal(t, `["same"]`, out)
}

func TestPickMany_ZeroCount(t *testing.T) {
	out, err := newTestGenerator(t).PickMany([]any{"a"}, 0, 1)
	require.NoError(t, err)
	assert.Equal(t, `[]`, out)
}

func TestPickMany_Errors(t *testing.T) {
	g := newTestGenerator(t)

	_, err := g.PickMany(nil, 1, 2)
	assert.ErrorIs(t, err, ErrNoCandidates)

	_, err = g.PickMany([]any{"a"}, 2, 2)
	assert.ErrorIs(t, err, ErrInvalidRange)

	_, err = g.PickMany([]any{"a"}, -1, 2)
	assert.ErrorIs(t, err, ErrInvalidRange)
}

// ── Dictionary ───────────────────────────────────────────────────────────────

func TestDictionary_LiteralPassThrough(t *testing.T) {
	g := newTestGenerator(t)

	got, err := g.Dictionary(Specs{
		"static": {Type: "fixed", Options: Options{"value": "x"}},
		"flag":   {Type: KindBoolean, Options: Options{"likelihood": 100}},
	})
	require.NoError(t, err)

	assert.Equal(t, true, got["flag"])
	assert.Equal(t, Literal{Type: "fixed", Options: Options{"value": "x"}}, got["static"])

	b, err := json.Marshal(got["static"])
	require.NoError(t, err)
	assert.Equal(t, `["fixed",{"value":"x"}]`, string(b))
}

func TestDictionary_PropagatesErrors(t *testing.T) {
	_, err := newTestGenerator(t).Dictionary(Specs{
		"tags": {Type: KindPickMany, Options: Options{"values": []any{}}},
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNoCandidates)
	assert.Contains(t, err.Error(), `"tags"`)
}

func TestLiteral_String(t *testing.T) {
	assert.Equal(t, `["fixed",{}]`, Literal{Type: "fixed"}.String())
}

// ── LoadSpecs ────────────────────────────────────────────────────────────────

func TestLoadSpecs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "generate.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"title": {"type": "sentence", "options": {"words": 3}},
		"hash":  {"type": "hex_hash", "options": {}}
	}`), 0o600))

	specs, err := LoadSpecs(path)
	require.NoError(t, err)
	assert.Equal(t, Spec{Type: KindSentence, Options: Options{"words": json.Number("3")}}, specs["title"])

	got, err := newTestGenerator(t).Dictionary(specs)
	require.NoError(t, err)
	assert.Regexp(t, regexp.MustCompile(`^[0-9a-f]{40}$`), got["hash"])
}

func TestLoadSpecs_Errors(t *testing.T) {
	_, err := LoadSpecs(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)

	_, err = ParseSpecs([]byte(`{"a": {"options": {}}}`))
	assert.ErrorIs(t, err, ErrInvalidSpec)

	_, err = ParseSpecs([]byte(`[1, 2]`))
	assert.ErrorIs(t, err, ErrInvalidSpec)
}
