package home

import (
	"fmt"
	"log"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/studyquiz/internal/router"
	"github.com/abhisek/studyquiz/internal/screen"
	sessionscreen "github.com/abhisek/studyquiz/internal/screens/session"
	"github.com/abhisek/studyquiz/internal/session"
	"github.com/abhisek/studyquiz/internal/ui/components"
	"github.com/abhisek/studyquiz/internal/ui/layout"
	"github.com/abhisek/studyquiz/internal/ui/theme"
)

var features = []string{
	"Randomized question order and answer options",
	"Immediate feedback with explanations",
	"Score and rating at the end",
}

// HomeScreen is the start screen of the application.
type HomeScreen struct {
	engine *session.Engine
	menu   components.Menu
	errMsg string
}

var _ screen.Screen = (*HomeScreen)(nil)
var _ screen.KeyHintProvider = (*HomeScreen)(nil)

// New creates a new HomeScreen for engine.
func New(engine *session.Engine) *HomeScreen {
	h := &HomeScreen{engine: engine}
	h.menu = components.NewMenu([]components.MenuItem{
		{Label: "START QUIZ", Action: h.start},
		{Label: "EXIT", Action: func() tea.Cmd {
			return tea.Quit
		}},
	})
	return h
}

func (h *HomeScreen) start() tea.Cmd {
	next, err := sessionscreen.Start(h.engine)
	if err != nil {
		log.Printf("home: start failed: %v", err)
		h.errMsg = fmt.Sprintf("Could not start quiz: %v", err)
		return nil
	}
	h.errMsg = ""
	return func() tea.Msg {
		return router.PushScreenMsg{Screen: next}
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Title() string {
	return "Home"
}

func (h *HomeScreen) KeyHints() []layout.KeyHint {
	k := components.Keys
	return layout.HintsFor(k.Up, k.Down, k.Submit, k.Quit)
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	var sections []string

	sections = append(sections, theme.Title.Render(h.engine.Bank().Title()))
	sections = append(sections, theme.Subtitle.Render(fmt.Sprintf(
		"Test your knowledge with %d randomized questions", h.engine.QuestionCount())))

	bullets := make([]string, len(features))
	for i, f := range features {
		bullets[i] = lipgloss.NewStyle().Foreground(theme.Secondary).Render("• ") + theme.Body.Render(f)
	}
	sections = append(sections, strings.Join(bullets, "\n"))

	sections = append(sections, h.menu.View())

	if h.errMsg != "" {
		sections = append(sections, theme.Incorrect.Render(h.errMsg))
	}

	content := lipgloss.JoinVertical(lipgloss.Center, interleave(sections, "")...)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func interleave(items []string, sep string) []string {
	out := make([]string, 0, 2*len(items))
	for i, it := range items {
		if i > 0 {
			out = append(out, sep)
		}
		out = append(out, it)
	}
	return out
}
