package details

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds the key bindings of the details view. Header action keys
// come from the actions themselves.
type KeyMap struct {
	Retry        key.Binding
	Download     key.Binding
	OpenLetters  key.Binding
	CloseOverlay key.Binding
	Up           key.Binding
	Down         key.Binding
	Sign         key.Binding
}

// DefaultKeyMap returns the built-in bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Retry:        key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "retry")),
		Download:     key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "download")),
		OpenLetters:  key.NewBinding(key.WithKeys("l"), key.WithHelp("l", "letters")),
		CloseOverlay: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close")),
		Up:           key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:         key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Sign:         key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "sign file")),
	}
}

// Keys returns the keys of b, or nil when b is disabled.
func Keys(b key.Binding) []string {
	if !b.Enabled() {
		return nil
	}
	return b.Keys()
}
