package domain

import (
	"fmt"
	"strings"
)

// NoWorkoutsText is shown in place of a progress summary for an empty log.
const NoWorkoutsText = "No workouts logged yet."

// WorkoutLog is the ordered workout history of a single user. Insertion
// order is chronological order; the only removal is a full Clear.
type WorkoutLog struct {
	records []Workout
}

// NewWorkoutLog builds a log from already-ordered records.
func NewWorkoutLog(records ...Workout) *WorkoutLog {
	l := &WorkoutLog{}
	for _, r := range records {
		l.Record(r)
	}
	return l
}

// Record appends w to the log.
func (l *WorkoutLog) Record(w Workout) {
	l.records = append(l.records, w)
}

// Clear removes every record. Clearing an empty log is a no-op.
func (l *WorkoutLog) Clear() {
	l.records = nil
}

// Len returns the number of records.
func (l *WorkoutLog) Len() int {
	return len(l.records)
}

// Records returns a copy of the records in log order.
func (l *WorkoutLog) Records() []Workout {
	out := make([]Workout, len(l.records))
	copy(out, l.records)
	return out
}

// Summary aggregates a workout log. Empty is the "no workouts" sentinel: an
// empty log never reports zero totals, it reports Empty.
type Summary struct {
	Empty         bool
	TotalDuration int
	TotalCalories int
	History       []string
}

// Summarize totals duration and calories and renders each record in order.
func (l *WorkoutLog) Summarize() Summary {
	if len(l.records) == 0 {
		return Summary{Empty: true}
	}
	s := Summary{History: make([]string, 0, len(l.records))}
	for _, r := range l.records {
		s.TotalDuration += r.DurationMin
		s.TotalCalories += r.Calories
		s.History = append(s.History, r.String())
	}
	return s
}

// ProgressText renders the multi-line progress report for a user.
func ProgressText(name string, s Summary) string {
	if s.Empty {
		return NoWorkoutsText
	}
	var b strings.Builder
	fmt.Fprintf(&b, "Workout history for %s:\n", name)
	for _, line := range s.History {
		b.WriteString(line)
		b.WriteString("\n")
	}
	fmt.Fprintf(&b, "\nTotal workout duration: %d mins", s.TotalDuration)
	fmt.Fprintf(&b, "\nTotal calories burned: %d cal", s.TotalCalories)
	return b.String()
}
