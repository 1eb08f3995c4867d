package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/fittrack/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

const (
	// ChartWidth is the bar length of the longest workout.
	ChartWidth = 30
	// MaxChartWidth caps a requested bar length.
	MaxChartWidth = 200
)

// FormatDurationChart draws one horizontal bar per workout in log order,
// scaled so the longest workout spans width cells. Widths outside
// [1, MaxChartWidth] fall back to ChartWidth or MaxChartWidth.
func FormatDurationChart(records []domain.Workout, width int) string {
	if len(records) == 0 {
		return Dim(domain.NoWorkoutsText)
	}
	if width < 1 {
		width = ChartWidth
	}
	width = min(width, MaxChartWidth)

	maxMin, labelWidth := 0, 0
	for _, w := range records {
		if w.DurationMin > maxMin {
			maxMin = w.DurationMin
		}
		if l := lipgloss.Width(string(w.Exercise)); l > labelWidth {
			labelWidth = l
		}
	}

	var b strings.Builder
	b.WriteString(Header("Workout durations") + "\n")
	for _, w := range records {
		pct := 0.0
		if maxMin > 0 {
			pct = float64(w.DurationMin) / float64(maxMin)
		}
		label := string(w.Exercise)
		label += strings.Repeat(" ", labelWidth-lipgloss.Width(label))
		b.WriteString(fmt.Sprintf("%s  %s %s\n",
			label,
			RenderBar(pct, width, StyleBlue),
			Dim(fmt.Sprintf("%d mins, %d cal", w.DurationMin, w.Calories)),
		))
	}
	return b.String()
}
