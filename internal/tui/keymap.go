package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"

	"github.com/colonyops/dossier/internal/core/config"
	"github.com/colonyops/dossier/internal/tui/views/details"
)

// keyMap holds the resolved bindings of the application.
type keyMap struct {
	details details.KeyMap
	quit    key.Binding
}

// newKeyMap resolves the configured keybindings into key.Bindings. Actions
// without a key are disabled.
func newKeyMap(cfg *config.Config) keyMap {
	km := details.DefaultKeyMap()
	km.Retry = binding(cfg, config.ActionRetry)
	km.Download = binding(cfg, config.ActionDownload)
	km.OpenLetters = binding(cfg, config.ActionOpenLetters)
	km.CloseOverlay = binding(cfg, config.ActionCloseOverlay)

	quit := binding(cfg, config.ActionQuit)
	quit.SetKeys(append(quit.Keys(), "ctrl+c")...)
	if quit.Help().Key == "" {
		quit.SetHelp("ctrl+c", "quit")
	}
	quit.SetEnabled(true)

	return keyMap{details: km, quit: quit}
}

func binding(cfg *config.Config, action string) key.Binding {
	keys := cfg.KeysFor(action)
	if len(keys) == 0 {
		return key.NewBinding(key.WithDisabled())
	}

	help := action
	if kb, ok := cfg.Keybindings[keys[0]]; ok && kb.Help != "" {
		help = kb.Help
	}
	return key.NewBinding(
		key.WithKeys(keys...),
		key.WithHelp(strings.Join(keys, "/"), help),
	)
}

// helpBindings returns the bindings relevant to the current state.
func (k keyMap) helpBindings(isError, overlayOpen bool) []key.Binding {
	if isError {
		return []key.Binding{k.details.Retry, k.quit}
	}
	if overlayOpen {
		return []key.Binding{k.details.Up, k.details.Down, k.details.CloseOverlay, k.quit}
	}
	return []key.Binding{
		k.details.Up, k.details.Down, k.details.Sign,
		k.details.OpenLetters, k.details.Download, k.quit,
	}
}
