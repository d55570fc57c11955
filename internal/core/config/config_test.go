package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	dataDir := t.TempDir()
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"), dataDir)
	require.NoError(t, err)

	assert.Equal(t, "en", cfg.Locale)
	assert.Equal(t, "tokyo-night", cfg.Theme)
	assert.True(t, cfg.Watch)
	assert.True(t, cfg.Letters.AutoPresent)
	assert.Equal(t, "project", cfg.Letters.Source)
	assert.Equal(t, dataDir, cfg.DataDir)
	assert.Equal(t, []string{"r"}, cfg.KeysFor(ActionRetry))
}

func TestLoad_FileOverrides(t *testing.T) {
	path := writeConfig(t, `
locale: ru
theme: gruvbox
watch: false
letters:
  auto_present: false
  sender: Support
export:
  dir: /tmp/exports
skeleton:
  stepper:
    width: 200
keybindings:
  R:
    action: retry
  q:
    action: download
`)
	cfg, err := Load(path, "/data")
	require.NoError(t, err)

	assert.Equal(t, "ru", cfg.Locale)
	assert.Equal(t, "gruvbox", cfg.Theme)
	assert.False(t, cfg.Watch)
	assert.False(t, cfg.Letters.AutoPresent)
	assert.Equal(t, "project", cfg.Letters.Source, "empty source gets default")
	assert.Equal(t, "Support", cfg.Letters.Sender)
	assert.Equal(t, "/tmp/exports", cfg.ExportDir())
	assert.Equal(t, 200, cfg.Skeleton["stepper"].Width)
	assert.Equal(t, "/data", cfg.DataDir, "data dir comes from the caller")

	assert.Equal(t, []string{"R", "r"}, cfg.KeysFor(ActionRetry))
	assert.Equal(t, []string{"d", "q"}, cfg.KeysFor(ActionDownload))
	assert.Empty(t, cfg.KeysFor(ActionQuit), "user binding replaced the default q")
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr string
	}{
		{"bad yaml", "locale: [", "parse config file"},
		{"bad locale", "locale: '!!'", "not a valid language tag"},
		{"negative geometry", "skeleton:\n  stepper:\n    width: -1\n", "must not be negative"},
		{"unknown action", "keybindings:\n  z:\n    action: explode\n", "invalid action"},
		{"missing action", "keybindings:\n  z:\n    help: nothing\n", "must have an action"},
		{"header action key", "keybindings:\n  x:\n    action: download\n", "reserved for the cancel header action"},
		{"navigation key", "keybindings:\n  enter:\n    action: open-letters\n", "reserved for navigation"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.body), t.TempDir())
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestValidate_EmptyDataDir(t *testing.T) {
	cfg := DefaultConfig()
	require.ErrorContains(t, cfg.Validate(), "data directory")
}

func TestDirectories(t *testing.T) {
	cfg := DefaultConfig()
	cfg.DataDir = "/data"

	assert.Equal(t, filepath.Join("/data", "documents"), cfg.DocumentsDir())
	assert.Equal(t, filepath.Join("/data", "letters"), cfg.LettersDir())
	assert.Equal(t, filepath.Join("/data", "locales"), cfg.LocalesDir())
	assert.Equal(t, filepath.Join("/data", "exports"), cfg.ExportDir())
}

func TestValidate_DefaultKeybindingsAreFree(t *testing.T) {
	cfg := DefaultConfig()
	cfg.DataDir = t.TempDir()
	cfg.Keybindings = mergeKeybindings(defaultKeybindings, nil)
	assert.NoError(t, cfg.Validate())
}
