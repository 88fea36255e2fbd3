package components

import (
	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/studyquiz/internal/ui/theme"
)

// Button is a styled button pressed by its key binding while active.
type Button struct {
	Label   string
	Active  bool
	Binding key.Binding
	OnPress func() tea.Cmd
}

// NewButton creates a new button pressed by binding.
func NewButton(label string, binding key.Binding, onPress func() tea.Cmd) Button {
	return Button{
		Label:   label,
		Binding: binding,
		OnPress: onPress,
	}
}

// Update presses the button when an active button sees its binding.
func (b Button) Update(msg tea.Msg) (Button, tea.Cmd) {
	if !b.Active || b.OnPress == nil {
		return b, nil
	}

	if kmsg, ok := msg.(tea.KeyPressMsg); ok && key.Matches(kmsg, b.Binding) {
		return b, b.OnPress()
	}

	return b, nil
}

// View renders the button.
func (b Button) View() string {
	if b.Active {
		return theme.ButtonActive.Render("▸ " + b.Label)
	}
	return theme.ButtonInactive.Render(b.Label)
}
