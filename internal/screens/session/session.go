package session

import (
	"errors"
	"fmt"
	"log"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/studyquiz/internal/router"
	"github.com/abhisek/studyquiz/internal/screen"
	"github.com/abhisek/studyquiz/internal/screens/summary"
	sess "github.com/abhisek/studyquiz/internal/session"
	"github.com/abhisek/studyquiz/internal/ui/components"
	"github.com/abhisek/studyquiz/internal/ui/layout"
)

// SessionScreen implements screen.Screen for the active quiz session.
type SessionScreen struct {
	engine  *sess.Engine
	state   *sess.Session
	current sess.Question
	choices components.MultiChoice
	submit  components.Button
	next    components.Button
	notice  string
}

var _ screen.Screen = (*SessionScreen)(nil)
var _ screen.KeyHintProvider = (*SessionScreen)(nil)
var _ screen.StatusProvider = (*SessionScreen)(nil)

// New creates a SessionScreen over state, an active session of engine.
func New(engine *sess.Engine, state *sess.Session) *SessionScreen {
	s := &SessionScreen{
		engine: engine,
		state:  state,
		submit: components.NewButton("Submit", components.Keys.Submit, func() tea.Cmd {
			return func() tea.Msg { return submitMsg{} }
		}),
		next: components.NewButton("Next", components.Keys.Next, func() tea.Cmd {
			return func() tea.Msg { return advanceMsg{} }
		}),
	}
	s.loadQuestion()
	return s
}

// Start begins a fresh session on engine and returns its screen.
func Start(engine *sess.Engine) (*SessionScreen, error) {
	state, err := engine.Restart()
	if err != nil {
		return nil, err
	}
	return New(engine, state), nil
}

func (s *SessionScreen) Init() tea.Cmd {
	if s.state.IsComplete() {
		return s.finish()
	}
	return nil
}

func (s *SessionScreen) Title() string {
	return "Quiz"
}

func (s *SessionScreen) Status() string {
	p := s.state.Progress()
	return fmt.Sprintf("Q %d/%d  Score %d", p.Number(), p.Total, s.state.Score())
}

func (s *SessionScreen) KeyHints() []layout.KeyHint {
	k := components.Keys
	var bindings []key.Binding
	switch s.state.Phase() {
	case sess.PhaseAwaitingAnswer:
		bindings = []key.Binding{k.Up, k.Down, k.Select, k.Submit, k.Back}
	case sess.PhaseShowingFeedback:
		bindings = []key.Binding{k.Next, k.Back}
	default:
		bindings = []key.Binding{k.Back}
	}
	return layout.HintsFor(bindings...)
}

func (s *SessionScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case submitMsg:
		return s.handleSubmit()
	case advanceMsg:
		return s.handleAdvance()
	case tea.KeyPressMsg:
		return s.handleKey(msg)
	}
	return s, nil
}

func (s *SessionScreen) handleKey(msg tea.KeyPressMsg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd

	switch s.state.Phase() {
	case sess.PhaseAwaitingAnswer:
		switch {
		case key.Matches(msg, components.Keys.Up):
			s.choices.MoveUp()
			return s, nil
		case key.Matches(msg, components.Keys.Down):
			s.choices.MoveDown()
			return s, nil
		case key.Matches(msg, components.Keys.Select):
			s.choose(s.choices.Cursor)
			return s, nil
		}
		if i, ok := components.DigitIndex(msg.String()); ok {
			s.choose(i)
			return s, nil
		}
		s.submit, cmd = s.submit.Update(msg)

	case sess.PhaseShowingFeedback:
		s.next, cmd = s.next.Update(msg)
	}

	return s, cmd
}

// choose selects option i in both the list and the session.
func (s *SessionScreen) choose(i int) {
	prev := s.choices.Selected
	if !s.choices.Choose(i) {
		return
	}
	if err := s.state.Select(s.choices.SelectedOption()); err != nil {
		log.Printf("session screen: select rejected: %v", err)
		s.choices.Selected = prev
		return
	}
	s.notice = ""
}

func (s *SessionScreen) handleSubmit() (screen.Screen, tea.Cmd) {
	fb, err := s.state.SubmitSelected()
	switch {
	case errors.Is(err, sess.ErrNoSelection):
		s.notice = sess.NoSelectionMessage
		return s, nil
	case err != nil:
		log.Printf("session screen: submit rejected: %v", err)
		return s, nil
	}

	s.notice = ""
	s.choices.Reveal(fb.Answer, fb.Chosen)
	s.syncButtons()
	return s, nil
}

func (s *SessionScreen) handleAdvance() (screen.Screen, tea.Cmd) {
	if err := s.state.Advance(); err != nil {
		log.Printf("session screen: advance rejected: %v", err)
		return s, nil
	}
	if s.state.IsComplete() {
		s.syncButtons()
		return s, s.finish()
	}
	s.loadQuestion()
	return s, nil
}

// finish swaps this screen for the summary.
func (s *SessionScreen) finish() tea.Cmd {
	sum, err := s.state.Summary()
	if err != nil {
		log.Printf("session screen: summary unavailable: %v", err)
		return nil
	}
	engine := s.engine
	restart := func() (screen.Screen, error) {
		return Start(engine)
	}
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: summary.New(sum, restart)}
	}
}

// loadQuestion resets the option list for the current question.
func (s *SessionScreen) loadQuestion() {
	q, err := s.state.CurrentQuestion()
	if err == nil {
		s.current = q
	}
	s.choices = components.NewMultiChoice(s.current.Options)
	s.notice = ""
	s.syncButtons()
}

func (s *SessionScreen) syncButtons() {
	phase := s.state.Phase()
	s.submit.Active = phase == sess.PhaseAwaitingAnswer
	s.next.Active = phase == sess.PhaseShowingFeedback
}
