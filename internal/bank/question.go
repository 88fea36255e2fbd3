package bank

import "slices"

// Question is a single multiple-choice record in a bank.
type Question struct {
	Prompt      string   `yaml:"prompt"`
	Options     []string `yaml:"options"`
	Answer      string   `yaml:"answer"`
	Explanation string   `yaml:"explanation,omitempty"`

	// KnownIssue flags a record whose content is known to be questionable.
	// It is kept for maintainers and never shown during a quiz.
	KnownIssue string `yaml:"known_issue,omitempty"`
}

// HasOption reports whether choice is exactly one of the question's options.
func (q Question) HasOption(choice string) bool {
	return slices.Contains(q.Options, choice)
}

func (q Question) clone() Question {
	q.Options = slices.Clone(q.Options)
	return q
}
