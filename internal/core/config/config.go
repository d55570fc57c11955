// Package config handles configuration loading and validation for dossier.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"sort"

	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"github.com/colonyops/dossier/internal/core/document"
)

// Built-in action names for keybindings.
const (
	ActionRetry        = "retry"
	ActionDownload     = "download"
	ActionOpenLetters  = "open-letters"
	ActionCloseOverlay = "close-overlay"
	ActionQuit         = "quit"
)

// defaultKeybindings provides built-in keybindings that users can override.
var defaultKeybindings = map[string]Keybinding{
	"r":   {Action: ActionRetry, Help: "retry"},
	"d":   {Action: ActionDownload, Help: "download"},
	"l":   {Action: ActionOpenLetters, Help: "letters"},
	"esc": {Action: ActionCloseOverlay, Help: "close"},
	"q":   {Action: ActionQuit, Help: "quit"},
}

// navigationKeys are the fixed keys the details view uses for attachment
// selection and overlay scrolling.
var navigationKeys = []string{"up", "down", "k", "j", "enter"}

// Config holds the application configuration.
type Config struct {
	Locale      string                `yaml:"locale"`
	Theme       string                `yaml:"theme"`
	Watch       bool                  `yaml:"watch"` // reload the open document when its file changes
	Letters     LettersConfig         `yaml:"letters"`
	Export      ExportConfig          `yaml:"export"`
	Skeleton    map[string]Geometry   `yaml:"skeleton"`
	Keybindings map[string]Keybinding `yaml:"keybindings"`
	DataDir     string                `yaml:"-"` // set by caller, not from config file
}

// LettersConfig configures the correspondence region.
type LettersConfig struct {
	Source      string `yaml:"source"`       // tag attached to letters written from the details view
	AutoPresent bool   `yaml:"auto_present"` // present unread letters in the side overlay
	Sender      string `yaml:"sender"`       // default sender for `letters add`
}

// ExportConfig configures the download action.
type ExportConfig struct {
	Dir string `yaml:"dir"` // defaults to <data-dir>/exports
}

// Geometry overrides a skeleton slot's placeholder size, in pixels.
type Geometry struct {
	Width     int   `yaml:"width"`
	Height    int   `yaml:"height"`
	Component *bool `yaml:"component"`
	Circle    *bool `yaml:"circle"`
}

// Keybinding maps a key to a built-in action.
type Keybinding struct {
	Action string `yaml:"action"` // built-in action name
	Help   string `yaml:"help"`   // help text shown in TUI
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Locale: "en",
		Theme:  "tokyo-night",
		Watch:  true,
		Letters: LettersConfig{
			Source:      "project",
			AutoPresent: true,
		},
		Skeleton:    map[string]Geometry{},
		Keybindings: map[string]Keybinding{},
	}
}

// Load reads configuration from the given path and sets the data directory.
// If configPath is empty or doesn't exist, returns defaults with the provided dataDir.
func Load(configPath, dataDir string) (*Config, error) {
	cfg := DefaultConfig()
	cfg.DataDir = dataDir

	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			data, err := os.ReadFile(configPath)
			if err != nil {
				return nil, fmt.Errorf("read config file: %w", err)
			}

			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return nil, fmt.Errorf("parse config file: %w", err)
			}

			// Re-set dataDir since Unmarshal may have cleared it
			cfg.DataDir = dataDir
		}
	}

	// Merge user keybindings into defaults (user config overrides defaults)
	cfg.Keybindings = mergeKeybindings(defaultKeybindings, cfg.Keybindings)

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

// applyDefaults sets default values for any unset configuration options.
func (c *Config) applyDefaults() {
	defaults := DefaultConfig()
	if c.Locale == "" {
		c.Locale = defaults.Locale
	}
	if c.Theme == "" {
		c.Theme = defaults.Theme
	}
	if c.Letters.Source == "" {
		c.Letters.Source = defaults.Letters.Source
	}
	if c.Skeleton == nil {
		c.Skeleton = map[string]Geometry{}
	}
}

// mergeKeybindings merges user keybindings into defaults.
// User keybindings override defaults for the same key.
func mergeKeybindings(defaults, user map[string]Keybinding) map[string]Keybinding {
	result := make(map[string]Keybinding, len(defaults)+len(user))

	for k, v := range defaults {
		result[k] = v
	}

	for k, v := range user {
		result[k] = v
	}

	return result
}

// Validate checks that the configuration is structurally valid.
func (c *Config) Validate() error {
	if c.DataDir == "" {
		return fmt.Errorf("data directory cannot be empty")
	}

	if _, err := language.Parse(c.Locale); err != nil {
		return fmt.Errorf("locale %q is not a valid language tag", c.Locale)
	}

	for slot, g := range c.Skeleton {
		if g.Width < 0 || g.Height < 0 {
			return fmt.Errorf("skeleton %q: width and height must not be negative", slot)
		}
	}

	for key, kb := range c.Keybindings {
		if kb.Action == "" {
			return fmt.Errorf("keybinding %q must have an action", key)
		}
		if !isValidAction(kb.Action) {
			return fmt.Errorf("keybinding %q has invalid action %q", key, kb.Action)
		}
		if id, ok := document.ActionForKey(key); ok {
			return fmt.Errorf("keybinding %q is reserved for the %s header action", key, id)
		}
		if slices.Contains(navigationKeys, key) {
			return fmt.Errorf("keybinding %q is reserved for navigation", key)
		}
	}

	return nil
}

// KeysFor returns the keys bound to action, sorted.
func (c *Config) KeysFor(action string) []string {
	var keys []string
	for key, kb := range c.Keybindings {
		if kb.Action == action {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)
	return keys
}

// DocumentsDir returns the directory document files are read from.
func (c *Config) DocumentsDir() string {
	return filepath.Join(c.DataDir, "documents")
}

// LettersDir returns the directory correspondence files are stored in.
func (c *Config) LettersDir() string {
	return filepath.Join(c.DataDir, "letters")
}

// LocalesDir returns the directory user translation catalogs are read from.
func (c *Config) LocalesDir() string {
	return filepath.Join(c.DataDir, "locales")
}

// ExportDir returns the directory downloads are written to.
func (c *Config) ExportDir() string {
	if c.Export.Dir != "" {
		return c.Export.Dir
	}
	return filepath.Join(c.DataDir, "exports")
}

func isValidAction(action string) bool {
	switch action {
	case ActionRetry, ActionDownload, ActionOpenLetters, ActionCloseOverlay, ActionQuit:
		return true
	default:
		return false
	}
}
