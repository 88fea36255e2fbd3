package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/studyquiz/internal/ui/theme"
)

// ProgressBar displays a horizontal progress bar.
type ProgressBar struct {
	Label    string
	Fraction float64
	Width    int
}

// NewProgressBar creates a new progress bar. fraction is clamped to [0, 1].
func NewProgressBar(label string, fraction float64, width int) ProgressBar {
	return ProgressBar{
		Label:    label,
		Fraction: min(max(fraction, 0), 1),
		Width:    width,
	}
}

// View renders the label, the bar and the percentage.
func (p ProgressBar) View() string {
	var result string
	if p.Label != "" {
		result = lipgloss.NewStyle().Foreground(theme.Text).Render(p.Label) + "  "
	}

	pct := fmt.Sprintf("  %3d%%", int(p.Fraction*100))
	barWidth := max(p.Width-lipgloss.Width(result)-len(pct), 4)
	filled := int(float64(barWidth) * p.Fraction)

	result += theme.ProgressFilled.Render(strings.Repeat(" ", filled))
	result += theme.ProgressEmpty.Render(strings.Repeat(" ", barWidth-filled))
	result += lipgloss.NewStyle().Foreground(theme.TextDim).Render(pct)
	return result
}
