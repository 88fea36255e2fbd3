package session

import (
	"slices"

	"github.com/abhisek/studyquiz/internal/bank"
)

// Phase is the step a session is at within the current question's lifecycle.
type Phase int

const (
	PhaseAwaitingAnswer  Phase = iota // Question shown, no answer submitted yet
	PhaseShowingFeedback              // Answer submitted, feedback on screen
	PhaseCompleted                    // Every question resolved
)

func (p Phase) String() string {
	switch p {
	case PhaseAwaitingAnswer:
		return "awaiting answer"
	case PhaseShowingFeedback:
		return "showing feedback"
	case PhaseCompleted:
		return "completed"
	}
	return "unknown"
}

// Question is a bank record as it appears in one session: the record plus the
// option order drawn for it when the session was built.
type Question struct {
	// Record is a copy of the bank entry.
	Record bank.Question

	// BankIndex is the record's position in the bank it was sampled from.
	BankIndex int

	// Options is a permutation of Record.Options, fixed for the session.
	Options []string
}

// Prompt returns the question text.
func (q Question) Prompt() string {
	return q.Record.Prompt
}

func (q Question) clone() Question {
	q.Options = slices.Clone(q.Options)
	q.Record.Options = slices.Clone(q.Record.Options)
	return q
}

// Feedback is what the learner sees after submitting an answer.
type Feedback struct {
	Correct     bool
	Chosen      string
	Answer      string
	Explanation string
}

// Headline is the one-line verdict shown after an answer.
func (f Feedback) Headline() string {
	if f.Correct {
		return "✓ Correct! The answer is: " + f.Answer
	}
	return "✗ Incorrect. The correct answer is: " + f.Answer
}
