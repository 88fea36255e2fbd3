package session

// Progress reports how far through a session the learner is.
type Progress struct {
	// Index is the zero-based position of the current question. It equals
	// Total once the session is complete.
	Index int

	// Answered counts resolved questions, including the current one while
	// its feedback is showing.
	Answered int

	// Total is the fixed number of questions in the session.
	Total int
}

// Number is the one-based question number for display, capped at Total.
func (p Progress) Number() int {
	if p.Index >= p.Total {
		return p.Total
	}
	return p.Index + 1
}

// Fraction is Index/Total in [0, 1]. An empty session counts as done.
func (p Progress) Fraction() float64 {
	if p.Total == 0 {
		return 1
	}
	return float64(p.Index) / float64(p.Total)
}
