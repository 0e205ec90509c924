package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines all keyboard bindings for the overlay.
type keyMap struct {
	Start        key.Binding
	Pause        key.Binding
	Reload       key.Binding
	RestartStart key.Binding
	Next         key.Binding
	Previous     key.Binding
	AddMinute    key.Binding
	RemoveMinute key.Binding
	Blink        key.Binding
	Blackout     key.Binding

	ToggleMode       key.Binding
	ToggleBackground key.Binding
	Help             key.Binding
	Quit             key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() keyMap {
	return keyMap{
		Start: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "start"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "pause"),
		),
		Reload: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reload"),
		),
		RestartStart: key.NewBinding(
			key.WithKeys("R"),
			key.WithHelp("R", "reload+start"),
		),
		Next: key.NewBinding(
			key.WithKeys("n", "right"),
			key.WithHelp("n", "next event"),
		),
		Previous: key.NewBinding(
			key.WithKeys("b", "left"),
			key.WithHelp("b", "previous event"),
		),
		AddMinute: key.NewBinding(
			key.WithKeys("+", "="),
			key.WithHelp("+", "+1 min"),
		),
		RemoveMinute: key.NewBinding(
			key.WithKeys("-", "_"),
			key.WithHelp("-", "-1 min"),
		),
		Blink: key.NewBinding(
			key.WithKeys("B"),
			key.WithHelp("B", "blink"),
		),
		Blackout: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "blackout"),
		),
		ToggleMode: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "timer/clock"),
		),
		ToggleBackground: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "background"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}
