package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	assert_ "github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPaths(t *testing.T) {
	assert := assert_.New(t)

	paths := NewPaths("/home/user/.config/ytt")
	assert.Equal("/home/user/.config/ytt", paths.ConfigDir)
	assert.Equal("/home/user/.config/ytt/config.json", paths.ConfigFile)
	assert.Equal("/home/user/.config/ytt/cache", paths.CacheDir)
}

func TestDefaultPaths(t *testing.T) {
	assert := assert_.New(t)
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")
	t.Setenv("HOME", "/tmp/home")

	paths, err := DefaultPaths()
	if assert.NoError(err) {
		assert.Equal(DirName, filepath.Base(paths.ConfigDir))
	}
}

func TestParseLanguages(t *testing.T) {
	assert := assert_.New(t)

	assert.Equal([]string{"en", "es", "fr"}, ParseLanguages("en,es,fr"))
	assert.Equal([]string{"en", "ES"}, ParseLanguages(" en, ,ES "))
	assert.Equal([]string{}, ParseLanguages(""))
}

func TestUnknownLanguages(t *testing.T) {
	assert := assert_.New(t)

	assert.Empty(UnknownLanguages([]string{"en", "pt-BR", "zh-Hans"}))
	assert.Equal([]string{"not a language"}, UnknownLanguages([]string{"en", "not a language"}))
}

func TestStoreMissingFile(t *testing.T) {
	assert := assert_.New(t)
	store := NewStore(filepath.Join(t.TempDir(), "config.json"))

	languages, err := store.PreferredLanguages()
	assert.NoError(err)
	assert.Empty(languages)
}

func TestStoreRoundTrip(t *testing.T) {
	assert := assert_.New(t)
	path := filepath.Join(t.TempDir(), "nested", "config.json")
	store := NewStore(path)

	require.NoError(t, store.SetPreferredLanguages(ParseLanguages(" en, ,ES ")))
	languages, err := store.PreferredLanguages()
	assert.NoError(err)
	assert.Equal([]string{"en", "ES"}, languages)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var decoded map[string][]string
	assert.NoError(json.Unmarshal(data, &decoded))
	assert.Equal(map[string][]string{"preferred_languages": {"en", "ES"}}, decoded)
}

func TestStorePreservesUnknownSettings(t *testing.T) {
	assert := assert_.New(t)
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"theme": "dark", "preferred_languages": ["de"]}`), 0644))
	store := NewStore(path)

	require.NoError(t, store.SetPreferredLanguages([]string{"fr"}))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var decoded map[string]any
	assert.NoError(json.Unmarshal(data, &decoded))
	assert.Equal("dark", decoded["theme"])
	assert.Equal([]any{"fr"}, decoded["preferred_languages"])
}

func TestStoreInvalidFile(t *testing.T) {
	assert := assert_.New(t)
	path := filepath.Join(t.TempDir(), "config.json")
	store := NewStore(path)

	require.NoError(t, os.WriteFile(path, []byte(`{not json`), 0644))
	languages, err := store.PreferredLanguages()
	assert.NoError(err)
	assert.Empty(languages)

	require.NoError(t, os.WriteFile(path, []byte(`{"preferred_languages": ["en", 3, "", " fr "]}`), 0644))
	languages, err = store.PreferredLanguages()
	assert.NoError(err)
	assert.Equal([]string{"en", "fr"}, languages)

	require.NoError(t, os.WriteFile(path, []byte(`{"preferred_languages": "en"}`), 0644))
	languages, err = store.PreferredLanguages()
	assert.NoError(err)
	assert.Empty(languages)
}
