package session

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	sess "github.com/abhisek/studyquiz/internal/session"
	"github.com/abhisek/studyquiz/internal/ui/components"
	"github.com/abhisek/studyquiz/internal/ui/theme"
)

// maxTextWidth caps prompt and explanation width on wide terminals.
const maxTextWidth = 90

func (s *SessionScreen) View(width, height int) string {
	if s.state.IsComplete() {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("\n\nTallying results...")
	}

	tw := min(width-4, maxTextWidth)
	p := s.state.Progress()

	var b strings.Builder

	info := fmt.Sprintf("Question %d / %d  |  Score: %d", p.Number(), p.Total, s.state.Score())
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).Render("  " + info))
	b.WriteString("\n  ")
	b.WriteString(components.NewProgressBar("", p.Fraction(), tw).View())
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render("  " + strings.Repeat("─", tw)))
	b.WriteString("\n\n")

	prompt := lipgloss.NewStyle().
		Width(tw).
		Foreground(theme.Text).
		Bold(true).
		Render(s.current.Prompt())
	b.WriteString(indent(prompt))
	b.WriteString("\n\n")

	b.WriteString(indent(s.choices.View(tw)))
	b.WriteString("\n")

	if s.notice != "" {
		b.WriteString("  " + theme.Incorrect.Render(s.notice))
		b.WriteString("\n\n")
	}

	if fb, ok := s.state.Feedback(); ok {
		b.WriteString(s.renderFeedback(fb, tw))
	}

	b.WriteString("  " + lipgloss.JoinHorizontal(lipgloss.Center, s.submit.View(), "  ", s.next.View()))
	return b.String()
}

func (s *SessionScreen) renderFeedback(fb sess.Feedback, tw int) string {
	var b strings.Builder

	headline := theme.Incorrect
	if fb.Correct {
		headline = theme.Correct
	}
	b.WriteString("  " + headline.Render(fb.Headline()))
	b.WriteString("\n\n")

	if fb.Explanation != "" {
		exp := lipgloss.NewStyle().
			Width(tw).
			Foreground(theme.Text).
			Render("Explanation: " + fb.Explanation)
		b.WriteString(indent(exp))
		b.WriteString("\n\n")
	}
	return b.String()
}

func indent(block string) string {
	lines := strings.Split(block, "\n")
	for i, l := range lines {
		if l != "" {
			lines[i] = "  " + l
		}
	}
	return strings.Join(lines, "\n")
}
