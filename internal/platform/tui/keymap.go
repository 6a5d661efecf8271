package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds the platform-level bindings that bypass the configurable
// action bindings entirely. Everything else flows through the input system.
type KeyMap struct {
	Quit       key.Binding
	Screenshot key.Binding
}

// DefaultKeyMap returns the platform bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
	}
}
