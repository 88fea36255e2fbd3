package session

import (
	"fmt"
	"time"
)

// Rating is the qualitative grade for a finished session.
type Rating int

const (
	RatingNeedsReview Rating = iota
	RatingGood
	RatingGreat
	RatingExcellent
)

// ratingThresholds is evaluated top-down; the first minimum met wins.
var ratingThresholds = []struct {
	min    float64
	rating Rating
}{
	{90, RatingExcellent},
	{75, RatingGreat},
	{60, RatingGood},
	{0, RatingNeedsReview},
}

// RateScore maps a percentage in [0, 100] to a Rating.
func RateScore(pct float64) Rating {
	for _, t := range ratingThresholds {
		if pct >= t.min {
			return t.rating
		}
	}
	return RatingNeedsReview
}

func (r Rating) String() string {
	switch r {
	case RatingExcellent:
		return "Excellent"
	case RatingGreat:
		return "Great"
	case RatingGood:
		return "Good"
	default:
		return "Needs review"
	}
}

// Message is the encouragement line shown with the rating.
func (r Rating) Message() string {
	switch r {
	case RatingExcellent:
		return "Excellent! You've mastered the material!"
	case RatingGreat:
		return "Great job! Strong understanding of the concepts."
	case RatingGood:
		return "Good effort! Review the concepts you missed."
	default:
		return "Keep studying! Review the fundamentals."
	}
}

// Summary holds the results displayed once a session is complete.
type Summary struct {
	SessionID  string
	Score      int
	Total      int
	Percentage float64
	Rating     Rating
	Duration   time.Duration
}

// Percentage returns 100*score/total. A session with no questions has no
// meaningful percentage; it is reported as 0.
func Percentage(score, total int) float64 {
	if total <= 0 {
		return 0
	}
	return 100 * float64(score) / float64(total)
}

// FormatPercentage renders p with one decimal place, e.g. "66.7%".
func FormatPercentage(p float64) string {
	return fmt.Sprintf("%.1f%%", p)
}

// Summary returns the final results. It fails with ErrInvalidState until the
// session is complete.
func (s *Session) Summary() (Summary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.phase != PhaseCompleted {
		return Summary{}, fmt.Errorf("%w: session is not complete", ErrInvalidState)
	}
	return s.summaryLocked(), nil
}

func (s *Session) summaryLocked() Summary {
	total := len(s.questions)
	pct := Percentage(s.score, total)
	return Summary{
		SessionID:  s.id,
		Score:      s.score,
		Total:      total,
		Percentage: pct,
		Rating:     RateScore(pct),
		Duration:   s.finishedAt.Sub(s.startedAt),
	}
}
