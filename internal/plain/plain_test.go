package plain

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/studyquiz/internal/bank"
	"github.com/abhisek/studyquiz/internal/session"
)

// sameAnswerBank returns n questions that all share the options
// yes/no/maybe with "yes" correct, so a script can answer without knowing
// the sampled order.
func sameAnswerBank(t *testing.T, n int) *bank.Bank {
	t.Helper()
	qs := make([]bank.Question, n)
	for i := range qs {
		qs[i] = bank.Question{
			Prompt:      fmt.Sprintf("Question %d?", i),
			Options:     []string{"yes", "no", "maybe"},
			Answer:      "yes",
			Explanation: "It is always yes.",
		}
	}
	b, err := bank.New("Script Quiz", qs)
	require.NoError(t, err)
	return b
}

func run(t *testing.T, e *session.Engine, input string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	err := Run(context.Background(), e, strings.NewReader(input), &out)
	return out.String(), err
}

func TestRun_ScriptedSession(t *testing.T) {
	e := session.NewEngine(sameAnswerBank(t, 3), session.WithQuestionCount(3), session.WithSeed(4))

	script := strings.Join([]string{
		"yes", "",
		"no", "",
		"", "yes", "",
		"n",
	}, "\n") + "\n"

	out, err := run(t, e, script)
	require.NoError(t, err)

	assert.Contains(t, out, "Script Quiz")
	assert.Contains(t, out, "Test your knowledge with 3 randomized questions.")
	assert.Contains(t, out, "Question 1 / 3  |  Score: 0")
	assert.Contains(t, out, "Question 2 / 3  |  Score: 1")
	assert.Contains(t, out, "Question 3 / 3  |  Score: 1")
	assert.Contains(t, out, "✓ Correct! The answer is: yes")
	assert.Contains(t, out, "✗ Incorrect. The correct answer is: yes")
	assert.Contains(t, out, "Explanation: It is always yes.")
	assert.Contains(t, out, session.NoSelectionMessage)
	assert.Contains(t, out, "Quiz Complete!")
	assert.Contains(t, out, "Your Score: 2 / 3")
	assert.Contains(t, out, "Percentage: 66.7%")
	assert.Contains(t, out, "Rating: Good")
	assert.Contains(t, out, "Restart quiz? [y/N]")

	assert.True(t, e.Current().IsComplete())
	assert.Equal(t, 2, e.Current().Score())
}

func TestRun_AnswerByNumber(t *testing.T) {
	b := sameAnswerBank(t, 1)
	e := session.NewEngine(b, session.WithQuestionCount(1), session.WithSeed(12))

	// Same seed, same draw: find where "yes" landed.
	twin, err := session.Build(b, 1, session.NewRand(12))
	require.NoError(t, err)
	q, err := twin.CurrentQuestion()
	require.NoError(t, err)
	var pos int
	for i, opt := range q.Options {
		if opt == "yes" {
			pos = i + 1
		}
	}

	out, err := run(t, e, fmt.Sprintf("%d\n\n", pos))
	require.NoError(t, err)
	assert.Contains(t, out, "Your Score: 1 / 1")
}

func TestRun_UnknownChoiceReprompts(t *testing.T) {
	e := session.NewEngine(sameAnswerBank(t, 1), session.WithQuestionCount(1), session.WithSeed(1))

	out, err := run(t, e, "7\nperhaps\nyes\n\n")
	require.NoError(t, err)

	assert.Equal(t, 2, strings.Count(out, "Unknown choice"))
	assert.Contains(t, out, `Unknown choice "7"`)
	assert.Contains(t, out, "Your Score: 1 / 1")
}

func TestRun_Restart(t *testing.T) {
	e := session.NewEngine(sameAnswerBank(t, 2), session.WithQuestionCount(2), session.WithSeed(3))

	out, err := run(t, e, "yes\n\nyes\n\ny\nno\n\nno\n\nn\n")
	require.NoError(t, err)

	assert.Equal(t, 2, strings.Count(out, "Quiz Complete!"))
	assert.Contains(t, out, "Your Score: 2 / 2")
	assert.Contains(t, out, "Your Score: 0 / 2")
	assert.Contains(t, out, "Needs review")
}

func TestRun_EOF(t *testing.T) {
	e := session.NewEngine(sameAnswerBank(t, 2), session.WithQuestionCount(2), session.WithSeed(3))

	out, err := run(t, e, "")
	require.NoError(t, err)
	assert.Contains(t, out, "Question 1 / 2  |  Score: 0")
	assert.NotContains(t, out, "Quiz Complete!")

	// Input ending mid-feedback is just as clean.
	e = session.NewEngine(sameAnswerBank(t, 2), session.WithQuestionCount(2), session.WithSeed(3))
	out, err = run(t, e, "yes\n")
	require.NoError(t, err)
	assert.Contains(t, out, "✓ Correct!")
	assert.Equal(t, session.PhaseShowingFeedback, e.Current().Phase())
}

func TestRun_CancelledContext(t *testing.T) {
	e := session.NewEngine(sameAnswerBank(t, 2), session.WithQuestionCount(2), session.WithSeed(3))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out bytes.Buffer
	err := Run(ctx, e, strings.NewReader("yes\n"), &out)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 0, e.Current().Score())
}

func TestRun_ResumesActiveSession(t *testing.T) {
	e := session.NewEngine(sameAnswerBank(t, 2), session.WithQuestionCount(2), session.WithSeed(3))
	s, err := e.Start()
	require.NoError(t, err)
	_, err = s.Submit("yes")
	require.NoError(t, err)
	require.NoError(t, s.Advance())

	out, err := run(t, e, "yes\n\n")
	require.NoError(t, err)
	assert.Same(t, s, e.Current())
	assert.Contains(t, out, "Question 2 / 2  |  Score: 1")
	assert.Contains(t, out, "Your Score: 2 / 2")
}

func TestResolveChoice(t *testing.T) {
	q := session.Question{Options: []string{"alpha", "beta", "0.6"}}

	assert.Equal(t, "alpha", resolveChoice(q, "1"))
	assert.Equal(t, "beta", resolveChoice(q, " 2 "))
	assert.Equal(t, "0.6", resolveChoice(q, "0.6"))
	assert.Equal(t, "4", resolveChoice(q, "4"))
	assert.Equal(t, "", resolveChoice(q, "   "))
}
