package components

import "charm.land/bubbles/v2/key"

// KeyMap holds every binding the quiz screens react to.
type KeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Submit key.Binding
	Next   key.Binding
	Back   key.Binding
	Quit   key.Binding
}

// Keys is the application's key map.
var Keys = KeyMap{
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "Up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "Down"),
	),
	Select: key.NewBinding(
		key.WithKeys("space", " "),
		key.WithHelp("Space/1-9", "Select"),
	),
	Submit: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("Enter", "Submit"),
	),
	Next: key.NewBinding(
		key.WithKeys("enter", "n"),
		key.WithHelp("Enter/n", "Next"),
	),
	Back: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("Esc", "Back"),
	),
	Quit: key.NewBinding(
		key.WithKeys("ctrl+c"),
		key.WithHelp("Ctrl+C", "Quit"),
	),
}

// DigitIndex returns the zero-based option index for keys "1" to "9".
func DigitIndex(k string) (int, bool) {
	if len(k) != 1 || k[0] < '1' || k[0] > '9' {
		return 0, false
	}
	return int(k[0] - '1'), true
}
