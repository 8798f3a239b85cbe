package metadata

import (
	"testing"

	assert_ "github.com/stretchr/testify/assert"
)

func TestExtractObject(t *testing.T) {
	assert := assert_.New(t)

	text := `<script>var ytInitialPlayerResponse = {"a": {"b": {"c": 1}}, "s": "quote \" and brace {"};var other = 1;</script>`
	obj, ok := ExtractObject(text, PlayerResponseMarker)
	if assert.True(ok) {
		assert.Equal(`quote " and brace {`, obj["s"])
		assert.Equal(float64(1), lookup(obj, "a", "b", "c"))
	}
}

func TestExtractObjectEscapedBackslash(t *testing.T) {
	assert := assert_.New(t)

	// The string ends after an escaped backslash, so the following brace closes the object.
	text := `marker {"path": "C:\\", "n": {"m": 2}} trailing }`
	obj, ok := ExtractObject(text, "marker")
	if assert.True(ok) {
		assert.Equal(`C:\`, obj["path"])
		assert.Equal(float64(2), lookup(obj, "n", "m"))
	}
}

func TestExtractObjectMissing(t *testing.T) {
	assert := assert_.New(t)

	_, ok := ExtractObject(`no marker here {"a": 1}`, PlayerResponseMarker)
	assert.False(ok)

	_, ok = ExtractObject(`ytInitialPlayerResponse = null;`, PlayerResponseMarker)
	assert.False(ok, "marker with no following brace")

	_, ok = ExtractObject(`ytInitialPlayerResponse = {"a": {"b": 1}`, PlayerResponseMarker)
	assert.False(ok, "unterminated object")

	_, ok = ExtractObject(`ytInitialPlayerResponse = {a: 1}`, PlayerResponseMarker)
	assert.False(ok, "balanced but not JSON")
}

func TestExtractObjectUsesFirstMarker(t *testing.T) {
	assert := assert_.New(t)

	text := `ytInitialData = {"first": true}; ytInitialData = {"second": true}`
	obj, ok := ExtractObject(text, InitialDataMarker)
	if assert.True(ok) {
		assert.Equal(true, obj["first"])
		assert.NotContains(obj, "second")
	}
}

func TestLookup(t *testing.T) {
	assert := assert_.New(t)

	obj := map[string]any{
		"a": map[string]any{"b": "  value  "},
		"n": 1.0,
	}
	assert.Equal("value", lookupString(obj, "a", "b"))
	assert.Equal("", lookupString(obj, "n"))
	assert.Equal("", lookupString(obj, "a", "b", "c"))
	assert.Nil(lookup(nil, "a"))
	assert.Nil(lookupSlice(obj, "a"))
}
