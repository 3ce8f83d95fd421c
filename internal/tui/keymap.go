package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines all keyboard shortcuts.
type KeyMap struct {
	// Forging
	Forge key.Binding
	Copy  key.Binding
	Peek  key.Binding

	// Materials
	ToggleUpper     key.Binding
	ToggleLower     key.Binding
	ToggleDigits    key.Binding
	ToggleSymbols   key.Binding
	ToggleAmbiguous key.Binding
	Longer          key.Binding
	Shorter         key.Binding

	// View modes
	ToggleBlind key.Binding
	Help        key.Binding

	// Application
	Quit      key.Binding
	ForceQuit key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Forge: key.NewBinding(
			key.WithKeys(" ", "space", "enter"),
			key.WithHelp("Space/Enter", "forge"),
		),
		Copy: key.NewBinding(
			key.WithKeys("c", "y"),
			key.WithHelp("c/y", "copy"),
		),
		Peek: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "peek"),
		),

		ToggleUpper: key.NewBinding(
			key.WithKeys("u"),
			key.WithHelp("u", "uppercase"),
		),
		ToggleLower: key.NewBinding(
			key.WithKeys("l"),
			key.WithHelp("l", "lowercase"),
		),
		ToggleDigits: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "digits"),
		),
		ToggleSymbols: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "symbols"),
		),
		ToggleAmbiguous: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "exclude 0O1lI"),
		),
		Longer: key.NewBinding(
			key.WithKeys("right", "+", "="),
			key.WithHelp("→/+", "longer"),
		),
		Shorter: key.NewBinding(
			key.WithKeys("left", "-"),
			key.WithHelp("←/-", "shorter"),
		),

		ToggleBlind: key.NewBinding(
			key.WithKeys("b"),
			key.WithHelp("b", "blind mode"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),

		Quit: key.NewBinding(
			key.WithKeys("q", "esc"),
			key.WithHelp("q/Esc", "quit"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("Ctrl+C", "force quit"),
		),
	}
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Forge, k.Copy, k.Peek, k.Help, k.Quit}
}

// FullHelp returns all key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Forge, k.Copy, k.Peek, k.ToggleBlind},
		{k.ToggleUpper, k.ToggleLower, k.ToggleDigits, k.ToggleSymbols},
		{k.ToggleAmbiguous, k.Longer, k.Shorter},
		{k.Help, k.Quit},
	}
}
