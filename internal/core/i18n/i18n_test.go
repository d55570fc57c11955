package i18n

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func TestParse_Flattens(t *testing.T) {
	data := []byte(`
title: Details
info:
  request: Info text
  nested:
    deep: value
count: 3
empty:
`)
	got, err := Parse(data)
	require.NoError(t, err)

	assert.Equal(t, "Details", got["title"])
	assert.Equal(t, "Info text", got["info.request"])
	assert.Equal(t, "value", got["info.nested.deep"])
	assert.Equal(t, "3", got["count"])
	assert.NotContains(t, got, "empty")
}

func TestParse_Invalid(t *testing.T) {
	_, err := Parse([]byte("title: [unterminated"))
	require.Error(t, err)
}

func TestCatalog_ExistsAndT(t *testing.T) {
	c := NewCatalog(language.English, map[string]string{"info.request": "hello"})

	assert.True(t, c.Exists("info.request"))
	assert.Equal(t, "hello", c.T("info.request"))

	assert.False(t, c.Exists("info.card"))
	assert.Equal(t, "info.card", c.T("info.card"), "missing keys echo the key")
}

func TestLoad_BuiltinLocales(t *testing.T) {
	tests := []struct {
		locale string
		want   string
		title  string
	}{
		{"en", "en", "Request details"},
		{"en-US", "en", "Request details"},
		{"ru", "ru", "Детали заявки"},
		{"ru-RU", "ru", "Детали заявки"},
		{"ja", "en", "Request details"},
	}

	for _, tt := range tests {
		t.Run(tt.locale, func(t *testing.T) {
			c, err := Load(tt.locale, "")
			require.NoError(t, err)

			base, _ := c.Locale().Base()
			assert.Equal(t, tt.want, base.String())
			assert.Equal(t, tt.title, c.T("title"))
		})
	}
}

func TestLoad_InfoKeysOnlyForSomeServices(t *testing.T) {
	c, err := Load("en", "")
	require.NoError(t, err)

	assert.True(t, c.Exists("info.request"))
	assert.True(t, c.Exists("info.claim"))
	assert.False(t, c.Exists("info.card"))
	assert.False(t, c.Exists("info.unknown"))
}

func TestLoad_OverrideDir(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "en.yaml"), []byte("info:\n  card: Card info\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "de.yaml"), []byte("title: Antragsdetails\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "not a locale.yaml"), []byte("title: x\n"), 0o644))

	en, err := Load("en", dir)
	require.NoError(t, err)
	assert.Equal(t, "Card info", en.T("info.card"))
	assert.Equal(t, "Request details", en.T("title"), "built-in keys survive overrides")

	de, err := Load("de-AT", dir)
	require.NoError(t, err)
	assert.Equal(t, "Antragsdetails", de.T("title"))
	assert.Equal(t, "Retry", de.T("error.retry"), "falls back to English for missing keys")
}

func TestLoad_MissingOverrideDir(t *testing.T) {
	c, err := Load("en", filepath.Join(t.TempDir(), "nope"))
	require.NoError(t, err)
	assert.True(t, c.Exists("title"))
}

func TestLoad_InvalidLocale(t *testing.T) {
	_, err := Load("!!", "")
	require.Error(t, err)
}

func TestLoad_RussianCoversEnglishKeys(t *testing.T) {
	en, err := Load("en", "")
	require.NoError(t, err)

	ruData, err := builtin.ReadFile("locales/ru.yaml")
	require.NoError(t, err)
	ru, err := Parse(ruData)
	require.NoError(t, err)

	for _, key := range en.Keys() {
		assert.Contains(t, ru, key)
	}
}
