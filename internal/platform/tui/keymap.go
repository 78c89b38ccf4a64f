package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds the active key bindings. Flap comes from the config so
// players can rebind it; quit stays fixed.
type KeyMap struct {
	Flap key.Binding
	Quit key.Binding
}

// NewKeyMap builds the bindings from the configured flap keys.
func NewKeyMap(flapKeys []string) KeyMap {
	return KeyMap{
		Flap: key.NewBinding(
			key.WithKeys(flapKeys...),
			key.WithHelp("space", "flap"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c", "esc"),
			key.WithHelp("q", "quit"),
		),
	}
}
