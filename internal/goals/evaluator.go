// Package goals compares accumulated workout totals against weekly targets.
//
// Totals are all-time cumulative: there is no calendar windowing, a "weekly"
// goal is checked against every entry in the log.
package goals

import "github.com/alexanderramin/fittrack/internal/domain"

// Evaluate pairs the summary totals with the goal targets. An empty summary
// evaluates as zero totals.
func Evaluate(s domain.Summary, g domain.WeeklyGoal) domain.GoalReport {
	var duration, calories int
	if !s.Empty {
		duration = s.TotalDuration
		calories = s.TotalCalories
	}
	return domain.GoalReport{
		Duration: domain.MetricProgress{Achieved: duration, Goal: g.DurationMin},
		Calories: domain.MetricProgress{Achieved: calories, Goal: g.Calories},
	}
}
