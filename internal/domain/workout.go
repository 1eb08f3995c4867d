package domain

import (
	"fmt"
	"time"
)

// Workout is one logged activity. Calories are derived once at creation time
// and the value is never mutated afterwards.
type Workout struct {
	ID          string
	UserID      string
	Seq         int
	Exercise    ExerciseKind
	DurationMin int
	Calories    int
	LoggedAt    time.Time
}

// String renders the record line used by progress text and the export file.
func (w Workout) String() string {
	return fmt.Sprintf("%s - %d mins, %d cal", w.Exercise, w.DurationMin, w.Calories)
}
