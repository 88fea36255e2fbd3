package bank

import (
	"errors"
	"fmt"
	"strings"
)

// ErrEmptyBank is returned when a bank has no questions at all.
var ErrEmptyBank = errors.New("bank has no questions")

// ValidationError describes one problem with one question.
type ValidationError struct {
	Index   int    // zero-based position in the bank
	Field   string // "prompt", "options" or "answer"
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("question %d: %s: %s", e.Index+1, e.Field, e.Message)
}

// Validate checks every question and returns all problems joined together,
// or nil if the set is usable as a bank.
func Validate(questions []Question) error {
	if len(questions) == 0 {
		return ErrEmptyBank
	}

	var errs []error
	for i, q := range questions {
		errs = append(errs, validateQuestion(i, q)...)
	}
	return errors.Join(errs...)
}

func validateQuestion(i int, q Question) []error {
	var errs []error
	fail := func(field, format string, args ...any) {
		errs = append(errs, &ValidationError{
			Index:   i,
			Field:   field,
			Message: fmt.Sprintf(format, args...),
		})
	}

	if strings.TrimSpace(q.Prompt) == "" {
		fail("prompt", "must not be empty")
	}

	if len(q.Options) < 2 {
		fail("options", "need at least 2, got %d", len(q.Options))
	}
	seen := make(map[string]bool, len(q.Options))
	for _, opt := range q.Options {
		if opt == "" {
			fail("options", "empty option")
			continue
		}
		if seen[opt] {
			fail("options", "duplicate option %q", opt)
		}
		seen[opt] = true
	}

	if q.Answer == "" {
		fail("answer", "must not be empty")
	} else if !seen[q.Answer] {
		fail("answer", "%q is not one of the options", q.Answer)
	}

	return errs
}
