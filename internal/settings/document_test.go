package settings

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── ParseDocument ─────────────────────────────────────────────────────────────

func TestParseDocument_PreservesKeyOrder(t *testing.T) {
	doc, err := ParseDocument([]byte(`{"b": 1, "a": {"x": [1, 2]}, "c": "v"}`))
	require.NoError(t, err)

	assert.Equal(t, []string{"b", "a", "c"}, doc.Keys())
	assert.Equal(t, 3, doc.Len())

	raw, ok := doc.Get("a")
	require.True(t, ok)
	assert.JSONEq(t, `{"x":[1,2]}`, string(raw))
}

func TestParseDocument_EmptyObject(t *testing.T) {
	doc, err := ParseDocument([]byte("  {}\n"))
	require.NoError(t, err)
	assert.Zero(t, doc.Len())
}

func TestParseDocument_DuplicateKeys(t *testing.T) {
	doc, err := ParseDocument([]byte(`{"a": 1, "b": 2, "a": 3}`))
	require.NoError(t, err)

	assert.Equal(t, []string{"a", "b"}, doc.Keys())
	raw, _ := doc.Get("a")
	assert.Equal(t, "3", string(raw))
}

func TestParseDocument_EmptyKey(t *testing.T) {
	doc, err := ParseDocument([]byte(`{"": "blank", "k": null}`))
	require.NoError(t, err)
	assert.Equal(t, []string{"", "k"}, doc.Keys())
}

func TestParseDocument_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "empty", input: ""},
		{name: "whitespace only", input: " \n\t"},
		{name: "truncated", input: `{"a": 1`},
		{name: "unquoted key", input: `{a: 1}`},
		{name: "missing colon", input: `{"a" 1}`},
		{name: "missing comma", input: `{"a": 1 "b": 2}`},
		{name: "trailing comma", input: `{"a": 1,}`},
		{name: "bad value", input: `{"a": tru}`},
		{name: "array", input: `[]`},
		{name: "null", input: `null`},
		{name: "string", input: `"settings"`},
		{name: "number", input: `42`},
		{name: "two objects", input: `{} {}`},
		{name: "trailing garbage", input: `{}x`},
		{name: "comment", input: "// editor settings\n{}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := ParseDocument([]byte(tt.input))
			assert.Nil(t, doc)
			assert.ErrorIs(t, err, ErrParseSettings)
		})
	}
}

// ── Set / Get ─────────────────────────────────────────────────────────────────

func TestDocument_SetString_AppendsNewKey(t *testing.T) {
	doc, err := ParseDocument([]byte(`{"z": true, "a": false}`))
	require.NoError(t, err)

	doc.SetString(LanguageKey, "de")

	assert.Equal(t, []string{"z", "a", LanguageKey}, doc.Keys())
	got, ok := doc.GetString(LanguageKey)
	require.True(t, ok)
	assert.Equal(t, "de", got)
}

func TestDocument_SetString_KeepsPosition(t *testing.T) {
	doc, err := ParseDocument([]byte(`{"rfsuite.deploy.language": "en", "after": 1}`))
	require.NoError(t, err)

	doc.SetString(LanguageKey, "it")

	assert.Equal(t, []string{LanguageKey, "after"}, doc.Keys())
	got, _ := doc.GetString(LanguageKey)
	assert.Equal(t, "it", got)
}

func TestDocument_GetString_NonString(t *testing.T) {
	doc, err := ParseDocument([]byte(`{"n": 5}`))
	require.NoError(t, err)

	_, ok := doc.GetString("n")
	assert.False(t, ok)
	_, ok = doc.GetString("missing")
	assert.False(t, ok)
}

func TestDocument_Set_Value(t *testing.T) {
	doc := NewDocument()
	require.NoError(t, doc.Set("list", []int{1, 2}))
	require.Error(t, doc.Set("bad", func() {}))

	raw, ok := doc.Get("list")
	require.True(t, ok)
	assert.Equal(t, "[1,2]", string(raw))
	assert.Equal(t, []string{"list"}, doc.Keys())
}

// TestDocument_Keys_ReturnsCopy verifies that callers cannot reorder the
// document through the returned slice.
func TestDocument_Keys_ReturnsCopy(t *testing.T) {
	doc, err := ParseDocument([]byte(`{"a": 1, "b": 2}`))
	require.NoError(t, err)

	keys := doc.Keys()
	keys[0] = "mutated"

	assert.Equal(t, []string{"a", "b"}, doc.Keys())
}

// ── Encode ────────────────────────────────────────────────────────────────────

func TestDocument_Encode_Layout(t *testing.T) {
	doc, err := ParseDocument([]byte(`{"editor.tabSize":4,"files.exclude":{"**/.git":true},"empty":[]}`))
	require.NoError(t, err)
	doc.SetString(LanguageKey, "fr")

	out, err := doc.Encode()
	require.NoError(t, err)

	want := `{
  "editor.tabSize": 4,
  "files.exclude": {
    "**/.git": true
  },
  "empty": [],
  "rfsuite.deploy.language": "fr"
}
`
	assert.Equal(t, want, string(out))
}

func TestDocument_Encode_Empty(t *testing.T) {
	out, err := NewDocument().Encode()
	require.NoError(t, err)
	assert.Equal(t, "{}\n", string(out))
}

// TestDocument_Encode_PassesValuesThrough verifies that untouched values keep
// their exact textual form.
func TestDocument_Encode_PassesValuesThrough(t *testing.T) {
	input := `{"big": 12345678901234567890, "f": 1.50, "esc": "café", "html": "<a>&"}`
	doc, err := ParseDocument([]byte(input))
	require.NoError(t, err)

	out, err := doc.Encode()
	require.NoError(t, err)

	s := string(out)
	assert.Contains(t, s, `"big": 12345678901234567890`)
	assert.Contains(t, s, `"f": 1.50`)
	assert.Contains(t, s, `"esc": "café"`)
	assert.Contains(t, s, `"html": "<a>&"`)
}

func TestDocument_Encode_NoHTMLEscaping(t *testing.T) {
	doc := NewDocument()
	doc.SetString("k<&>", "<b>&</b>")

	out, err := doc.Encode()
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"k<&>\": \"<b>&</b>\"\n}\n", string(out))
}

// TestDocument_Encode_RoundTrip verifies that encoding then parsing yields
// an equivalent document.
func TestDocument_Encode_RoundTrip(t *testing.T) {
	input := `{"a": {"b": [1, {"c": null}]}, "d": "x", "e": -0.5e3}`
	doc, err := ParseDocument([]byte(input))
	require.NoError(t, err)

	out, err := doc.Encode()
	require.NoError(t, err)

	reparsed, err := ParseDocument(out)
	require.NoError(t, err)
	assert.Equal(t, doc.Keys(), reparsed.Keys())

	var want, got map[string]any
	require.NoError(t, json.Unmarshal([]byte(input), &want))
	require.NoError(t, json.Unmarshal(out, &got))
	assert.Equal(t, want, got)
}
