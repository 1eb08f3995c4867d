package domain

// WeeklyGoal holds user-supplied targets. "Weekly" is nominal: goals are
// compared against all-time cumulative totals of the log.
type WeeklyGoal struct {
	DurationMin int
	Calories    int
}

// MetricProgress pairs an achieved total with its target.
type MetricProgress struct {
	Achieved int
	Goal     int
}

// Met reports whether the achieved total reached the goal.
func (m MetricProgress) Met() bool {
	return m.Achieved >= m.Goal
}

// Ratio returns achieved/goal in [0, 1]. A zero goal counts as complete.
func (m MetricProgress) Ratio() float64 {
	if m.Goal <= 0 {
		return 1
	}
	r := float64(m.Achieved) / float64(m.Goal)
	if r > 1 {
		return 1
	}
	if r < 0 {
		return 0
	}
	return r
}

// GoalReport compares log totals against a WeeklyGoal.
type GoalReport struct {
	Duration MetricProgress
	Calories MetricProgress
}

// AllMet reports whether every metric reached its goal.
func (r GoalReport) AllMet() bool {
	return r.Duration.Met() && r.Calories.Met()
}
