package styles

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestThemeNames(t *testing.T) {
	names := ThemeNames()
	assert.Equal(t, []string{"catppuccin", "gruvbox", "tokyo-night"}, names)
	for _, name := range names {
		_, ok := GetPalette(name)
		assert.True(t, ok, name)
	}
}

func TestGetPalette_Unknown(t *testing.T) {
	_, ok := GetPalette("neon")
	assert.False(t, ok)
}

func TestSetTheme(t *testing.T) {
	t.Cleanup(func() { SetTheme(themes[DefaultTheme]) })

	p, ok := GetPalette("gruvbox")
	require.True(t, ok)
	SetTheme(p)

	assert.Equal(t, p, CurrentPalette)
	assert.Equal(t, p.Error, ErrorTitleStyle.GetForeground())
}

func TestGlamourStyle_UsesPalette(t *testing.T) {
	cfg := GlamourStyle()
	require.NotNil(t, cfg.Link.Color)
	assert.Equal(t, string(CurrentPalette.Secondary), *cfg.Link.Color)
	assert.Nil(t, cfg.Document.Margin)
}
