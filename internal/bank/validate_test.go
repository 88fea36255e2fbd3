package bank

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate_Empty(t *testing.T) {
	err := Validate(nil)
	assert.ErrorIs(t, err, ErrEmptyBank)
}

func TestValidate_Valid(t *testing.T) {
	err := Validate([]Question{
		{Prompt: "p", Options: []string{"a", "b", "c"}, Answer: "c"},
	})
	assert.NoError(t, err)
}

func TestValidate_Rules(t *testing.T) {
	tests := []struct {
		name  string
		q     Question
		field string
	}{
		{"blank prompt", Question{Prompt: "  ", Options: []string{"a", "b"}, Answer: "a"}, "prompt"},
		{"too few options", Question{Prompt: "p", Options: []string{"a"}, Answer: "a"}, "options"},
		{"empty option", Question{Prompt: "p", Options: []string{"a", ""}, Answer: "a"}, "options"},
		{"duplicate option", Question{Prompt: "p", Options: []string{"a", "b", "a"}, Answer: "a"}, "options"},
		{"empty answer", Question{Prompt: "p", Options: []string{"a", "b"}}, "answer"},
		{"answer not an option", Question{Prompt: "p", Options: []string{"a", "b"}, Answer: "A"}, "answer"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate([]Question{tt.q})
			require.Error(t, err)

			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.field, verr.Field)
		})
	}
}

func TestValidate_ReportsEveryProblem(t *testing.T) {
	err := Validate([]Question{
		{Prompt: "ok", Options: []string{"a", "b"}, Answer: "a"},
		{Prompt: "", Options: []string{"a", "b"}, Answer: "a"},
		{Prompt: "p", Options: []string{"a", "b"}, Answer: "z"},
	})
	require.Error(t, err)

	joined, ok := err.(interface{ Unwrap() []error })
	require.True(t, ok, "expected a joined error")

	var indices []int
	for _, e := range joined.Unwrap() {
		var verr *ValidationError
		if errors.As(e, &verr) {
			indices = append(indices, verr.Index)
		}
	}
	assert.Equal(t, []int{1, 2}, indices)
}

func TestValidationError_Message(t *testing.T) {
	err := &ValidationError{Index: 4, Field: "answer", Message: "boom"}
	assert.Equal(t, "question 5: answer: boom", err.Error())
}
