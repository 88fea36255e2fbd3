package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRateScore(t *testing.T) {
	tests := []struct {
		pct  float64
		want Rating
	}{
		{100, RatingExcellent},
		{90, RatingExcellent},
		{89.99, RatingGreat},
		{75, RatingGreat},
		{74.9, RatingGood},
		{66.67, RatingGood},
		{60, RatingGood},
		{59.99, RatingNeedsReview},
		{0, RatingNeedsReview},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, RateScore(tt.pct), "pct=%v", tt.pct)
	}
}

func TestRating_Labels(t *testing.T) {
	assert.Equal(t, "Excellent", RatingExcellent.String())
	assert.Equal(t, "Great", RatingGreat.String())
	assert.Equal(t, "Good", RatingGood.String())
	assert.Equal(t, "Needs review", RatingNeedsReview.String())

	for _, r := range []Rating{RatingExcellent, RatingGreat, RatingGood, RatingNeedsReview} {
		assert.NotEmpty(t, r.Message())
	}
}

func TestPercentage(t *testing.T) {
	assert.Equal(t, 0.0, Percentage(0, 0))
	assert.Equal(t, 100.0, Percentage(50, 50))
	assert.Equal(t, 50.0, Percentage(1, 2))
}

func TestFormatPercentage(t *testing.T) {
	assert.Equal(t, "66.7%", FormatPercentage(Percentage(2, 3)))
	assert.Equal(t, "100.0%", FormatPercentage(100))
	assert.Equal(t, "0.0%", FormatPercentage(0))
}

func TestSummary_RequiresCompletion(t *testing.T) {
	s := newSession(t, 2)
	_, err := s.Summary()
	assert.ErrorIs(t, err, ErrInvalidState)

	answer(t, s, true)
	_, err = s.Summary()
	assert.ErrorIs(t, err, ErrInvalidState)

	answer(t, s, true)
	sum, err := s.Summary()
	require.NoError(t, err)
	assert.Equal(t, 100.0, sum.Percentage)
	assert.Equal(t, RatingExcellent, sum.Rating)
}

func TestFeedback_Headline(t *testing.T) {
	right := Feedback{Correct: true, Answer: "Nash"}
	wrong := Feedback{Correct: false, Chosen: "Pareto", Answer: "Nash"}

	assert.Equal(t, "✓ Correct! The answer is: Nash", right.Headline())
	assert.Equal(t, "✗ Incorrect. The correct answer is: Nash", wrong.Headline())
}
