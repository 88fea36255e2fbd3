package session

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/abhisek/studyquiz/internal/bank"
)

// makeBank returns a bank of n distinct four-option questions whose correct
// answer is always the second option.
func makeBank(t *testing.T, n int) *bank.Bank {
	t.Helper()
	qs := make([]bank.Question, n)
	for i := range qs {
		qs[i] = bank.Question{
			Prompt: fmt.Sprintf("Question %d?", i),
			Options: []string{
				fmt.Sprintf("q%d-a", i),
				fmt.Sprintf("q%d-b", i),
				fmt.Sprintf("q%d-c", i),
				fmt.Sprintf("q%d-d", i),
			},
			Answer:      fmt.Sprintf("q%d-b", i),
			Explanation: fmt.Sprintf("Because %d.", i),
		}
	}
	b, err := bank.New("test", qs)
	require.NoError(t, err)
	return b
}

// wrongOption returns an option of q that is not the correct answer.
func wrongOption(q Question) string {
	for _, opt := range q.Options {
		if opt != q.Record.Answer {
			return opt
		}
	}
	return ""
}

func bankIndices(s *Session) []int {
	var out []int
	for _, q := range s.Questions() {
		out = append(out, q.BankIndex)
	}
	return out
}

// answer submits for the current question and advances past the feedback.
func answer(t *testing.T, s *Session, correct bool) {
	t.Helper()
	q, err := s.CurrentQuestion()
	require.NoError(t, err)

	choice := q.Record.Answer
	if !correct {
		choice = wrongOption(q)
	}
	fb, err := s.Submit(choice)
	require.NoError(t, err)
	require.Equal(t, correct, fb.Correct)
	require.NoError(t, s.Advance())
}
