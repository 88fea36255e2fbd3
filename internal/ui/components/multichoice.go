package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/studyquiz/internal/ui/theme"
)

// MultiChoice renders a numbered option list with a cursor and a selection.
// Once revealed it marks the correct option and the learner's wrong choice.
type MultiChoice struct {
	Options  []string
	Cursor   int
	Selected int // -1 when nothing is selected

	Revealed bool
	Correct  string
	Chosen   string
}

// NewMultiChoice creates an unrevealed list with nothing selected.
func NewMultiChoice(options []string) MultiChoice {
	return MultiChoice{
		Options:  options,
		Selected: -1,
	}
}

// MoveUp moves the cursor up one option.
func (m *MultiChoice) MoveUp() {
	if m.Cursor > 0 {
		m.Cursor--
	}
}

// MoveDown moves the cursor down one option.
func (m *MultiChoice) MoveDown() {
	if m.Cursor < len(m.Options)-1 {
		m.Cursor++
	}
}

// Choose selects option i and moves the cursor to it. It reports false
// when i is out of range.
func (m *MultiChoice) Choose(i int) bool {
	if i < 0 || i >= len(m.Options) {
		return false
	}
	m.Selected = i
	m.Cursor = i
	return true
}

// SelectedOption returns the selected option text, or "".
func (m MultiChoice) SelectedOption() string {
	if m.Selected < 0 || m.Selected >= len(m.Options) {
		return ""
	}
	return m.Options[m.Selected]
}

// Reveal marks the answer and the learner's choice.
func (m *MultiChoice) Reveal(correct, chosen string) {
	m.Revealed = true
	m.Correct = correct
	m.Chosen = chosen
}

// View renders the options, wrapped to width.
func (m MultiChoice) View(width int) string {
	var b strings.Builder
	for i, opt := range m.Options {
		marker := "( )"
		if i == m.Selected || (m.Revealed && opt == m.Chosen) {
			marker = "(•)"
		}
		prefix := "  "
		if i == m.Cursor && !m.Revealed {
			prefix = theme.Cursor.Render("▸ ")
		}

		line := fmt.Sprintf("%s %d. %s", marker, i+1, opt)
		style := m.optionStyle(i, opt).Width(max(width-4, 10))
		b.WriteString(prefix + style.Render(line))
		b.WriteString("\n")
	}
	return b.String()
}

func (m MultiChoice) optionStyle(i int, opt string) lipgloss.Style {
	switch {
	case m.Revealed && opt == m.Correct:
		return theme.Correct
	case m.Revealed && opt == m.Chosen:
		return theme.Incorrect
	case m.Revealed:
		return lipgloss.NewStyle().Foreground(theme.TextDim)
	case i == m.Selected:
		return theme.Selected
	default:
		return theme.Unselected
	}
}
