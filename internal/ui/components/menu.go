package components

import (
	"strings"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
)

// MenuItem represents a single item in a navigation menu.
type MenuItem struct {
	Label  string
	Action func() tea.Cmd
}

// Menu is a vertical navigation menu.
type Menu struct {
	Items    []MenuItem
	Selected int
}

// NewMenu creates a new menu with the given items.
func NewMenu(items []MenuItem) Menu {
	return Menu{Items: items}
}

// Update handles keyboard navigation.
func (m Menu) Update(msg tea.Msg) (Menu, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok || len(m.Items) == 0 {
		return m, nil
	}

	switch {
	case key.Matches(kmsg, Keys.Up):
		if m.Selected > 0 {
			m.Selected--
		}
	case key.Matches(kmsg, Keys.Down):
		if m.Selected < len(m.Items)-1 {
			m.Selected++
		}
	case key.Matches(kmsg, Keys.Submit):
		if item := m.Items[m.Selected]; item.Action != nil {
			return m, item.Action()
		}
	}

	return m, nil
}

// View renders the menu as one button per line.
func (m Menu) View() string {
	lines := make([]string, len(m.Items))
	for i, item := range m.Items {
		b := Button{Label: item.Label, Active: i == m.Selected}
		lines[i] = b.View()
	}
	return strings.Join(lines, "\n")
}
