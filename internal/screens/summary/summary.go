package summary

import (
	"fmt"
	"image/color"
	"log"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/studyquiz/internal/router"
	"github.com/abhisek/studyquiz/internal/screen"
	"github.com/abhisek/studyquiz/internal/session"
	"github.com/abhisek/studyquiz/internal/ui/components"
	"github.com/abhisek/studyquiz/internal/ui/layout"
	"github.com/abhisek/studyquiz/internal/ui/theme"
)

// RestartFunc builds the screen for a fresh session.
type RestartFunc func() (screen.Screen, error)

// SummaryScreen displays the results of a finished session.
type SummaryScreen struct {
	summary session.Summary
	menu    components.Menu
	errMsg  string
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)
var _ screen.StatusProvider = (*SummaryScreen)(nil)

// New creates a SummaryScreen. restart is called by RESTART QUIZ.
func New(sum session.Summary, restart RestartFunc) *SummaryScreen {
	s := &SummaryScreen{summary: sum}
	s.menu = components.NewMenu([]components.MenuItem{
		{Label: "RESTART QUIZ", Action: func() tea.Cmd {
			next, err := restart()
			if err != nil {
				log.Printf("summary: restart failed: %v", err)
				s.errMsg = fmt.Sprintf("Could not restart: %v", err)
				return nil
			}
			return func() tea.Msg { return router.ReplaceScreenMsg{Screen: next} }
		}},
		{Label: "EXIT", Action: func() tea.Cmd {
			return tea.Quit
		}},
	})
	return s
}

func (s *SummaryScreen) Init() tea.Cmd {
	return nil
}

func (s *SummaryScreen) Title() string {
	return "Results"
}

func (s *SummaryScreen) Status() string {
	return fmt.Sprintf("Score %d/%d", s.summary.Score, s.summary.Total)
}

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	k := components.Keys
	return layout.HintsFor(k.Up, k.Down, k.Submit, k.Back)
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	s.menu, cmd = s.menu.Update(msg)
	return s, cmd
}

func (s *SummaryScreen) View(width, height int) string {
	sum := s.summary
	center := func(st lipgloss.Style, text string) string {
		return st.Width(width).Align(lipgloss.Center).Render(text)
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(center(theme.Title, "Quiz Complete!"))
	b.WriteString("\n\n")

	b.WriteString(center(theme.Body, fmt.Sprintf("Your Score: %d / %d", sum.Score, sum.Total)))
	b.WriteString("\n")
	b.WriteString(center(theme.Body, "Percentage: "+session.FormatPercentage(sum.Percentage)))
	b.WriteString("\n\n")

	rating := lipgloss.NewStyle().Foreground(ratingColor(sum.Rating)).Bold(true)
	b.WriteString(center(rating, sum.Rating.String()))
	b.WriteString("\n")
	b.WriteString(center(lipgloss.NewStyle().Foreground(ratingColor(sum.Rating)), sum.Rating.Message()))
	b.WriteString("\n\n")

	mins := int(sum.Duration.Minutes())
	secs := int(sum.Duration.Seconds()) % 60
	b.WriteString(center(theme.Subtitle, fmt.Sprintf("Duration: %d:%02d", mins, secs)))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.menu.View()))

	if s.errMsg != "" {
		b.WriteString("\n\n")
		b.WriteString(center(theme.Incorrect, s.errMsg))
	}
	return b.String()
}

// ratingColor returns the theme color for a rating.
func ratingColor(r session.Rating) color.Color {
	switch r {
	case session.RatingExcellent:
		return theme.Success
	case session.RatingGreat:
		return theme.Secondary
	case session.RatingGood:
		return theme.Accent
	default:
		return theme.Error
	}
}
