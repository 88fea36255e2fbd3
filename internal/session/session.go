package session

import (
	"fmt"
	"log"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Session is one quiz attempt: a fixed list of questions walked through in
// order, one answer per question.
//
// A Session is safe for concurrent use; every operation runs under the
// session's lock and either succeeds completely or leaves it untouched.
type Session struct {
	mu sync.Mutex

	id        string
	questions []Question
	index     int
	score     int
	phase     Phase
	selected  string
	feedback  *Feedback

	startedAt  time.Time
	finishedAt time.Time
}

// New creates a session over questions, which must already carry their
// shuffled options. A session with no questions starts out completed.
func New(questions []Question) *Session {
	now := time.Now()
	s := &Session{
		id:        uuid.New().String(),
		questions: slices.Clone(questions),
		phase:     PhaseAwaitingAnswer,
		startedAt: now,
	}
	if len(s.questions) == 0 {
		s.phase = PhaseCompleted
		s.finishedAt = now
	}
	return s
}

// ID returns the session's unique identifier.
func (s *Session) ID() string {
	return s.id
}

// Phase returns the current phase.
func (s *Session) Phase() Phase {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.phase
}

// IsComplete reports whether every question has been resolved.
func (s *Session) IsComplete() bool {
	return s.Phase() == PhaseCompleted
}

// Score returns the number of correct answers so far.
func (s *Session) Score() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.score
}

// Progress returns the current position in the session.
func (s *Session) Progress() Progress {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.progressLocked()
}

func (s *Session) progressLocked() Progress {
	answered := s.index
	if s.phase == PhaseShowingFeedback {
		answered++
	}
	return Progress{
		Index:    s.index,
		Answered: answered,
		Total:    len(s.questions),
	}
}

// Questions returns every question in session order.
func (s *Session) Questions() []Question {
	out := make([]Question, len(s.questions))
	for i, q := range s.questions {
		out[i] = q.clone()
	}
	return out
}

// CurrentQuestion returns the question at the current position.
func (s *Session) CurrentQuestion() (Question, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.phase == PhaseCompleted {
		return Question{}, fmt.Errorf("%w: session is complete", ErrInvalidState)
	}
	return s.questions[s.index].clone(), nil
}

// Selected returns the option currently selected, or "" if none.
func (s *Session) Selected() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.selected
}

// Select marks choice as the pending answer without submitting it.
// An empty choice clears the selection.
func (s *Session) Select(choice string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.phase != PhaseAwaitingAnswer {
		return fmt.Errorf("%w: cannot select while %s", ErrInvalidState, s.phase)
	}
	if choice != "" && !s.questions[s.index].Record.HasOption(choice) {
		return fmt.Errorf("%w: %q is not an option", ErrInvalidArgument, choice)
	}
	s.selected = choice
	return nil
}

// Submit answers the current question with choice. The comparison against
// the correct answer is an exact string match.
//
// Only one answer is accepted per question: a second Submit before Advance
// fails with ErrInvalidState.
func (s *Session) Submit(choice string) (Feedback, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.submitLocked(choice)
}

// SubmitSelected submits whatever Select last recorded.
func (s *Session) SubmitSelected() (Feedback, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.submitLocked(s.selected)
}

func (s *Session) submitLocked(choice string) (Feedback, error) {
	if s.phase != PhaseAwaitingAnswer {
		return Feedback{}, fmt.Errorf("%w: cannot submit while %s", ErrInvalidState, s.phase)
	}
	if choice == "" {
		return Feedback{}, ErrNoSelection
	}

	q := s.questions[s.index]
	if !q.Record.HasOption(choice) {
		return Feedback{}, fmt.Errorf("%w: %q is not an option", ErrInvalidArgument, choice)
	}

	fb := Feedback{
		Correct:     choice == q.Record.Answer,
		Chosen:      choice,
		Answer:      q.Record.Answer,
		Explanation: q.Record.Explanation,
	}
	if fb.Correct {
		s.score++
	}
	s.selected = choice
	s.feedback = &fb
	s.phase = PhaseShowingFeedback
	return fb, nil
}

// Feedback returns the feedback for the answered question. The second return
// value is false unless the session is showing feedback.
func (s *Session) Feedback() (Feedback, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.phase != PhaseShowingFeedback || s.feedback == nil {
		return Feedback{}, false
	}
	return *s.feedback, true
}

// Advance leaves the feedback for the current question and moves on to the
// next one, or completes the session after the last question.
func (s *Session) Advance() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.phase != PhaseShowingFeedback {
		return fmt.Errorf("%w: cannot advance while %s", ErrInvalidState, s.phase)
	}

	s.index++
	s.selected = ""
	s.feedback = nil

	if s.index < len(s.questions) {
		s.phase = PhaseAwaitingAnswer
		return nil
	}

	s.phase = PhaseCompleted
	s.finishedAt = time.Now()
	sum := s.summaryLocked()
	log.Printf("session %s complete: %d/%d (%s) %s",
		s.id, sum.Score, sum.Total, FormatPercentage(sum.Percentage), sum.Rating)
	return nil
}
