package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWorkout_String(t *testing.T) {
	w := Workout{Exercise: ExerciseRunning, DurationMin: 30, Calories: 257}
	assert.Equal(t, "Running - 30 mins, 257 cal", w.String())
}

func TestSummarize_EmptyLogIsSentinel(t *testing.T) {
	l := NewWorkoutLog()
	s := l.Summarize()
	assert.True(t, s.Empty)
	assert.Zero(t, s.TotalDuration)
	assert.Zero(t, s.TotalCalories)
	assert.Empty(t, s.History)
	assert.Equal(t, NoWorkoutsText, ProgressText("Alex", s))
}

func TestSummarize_TotalsAndOrder(t *testing.T) {
	a := Workout{Exercise: ExerciseWalking, DurationMin: 20, Calories: 73}
	b := Workout{Exercise: ExerciseYoga, DurationMin: 45, Calories: 110}
	c := Workout{Exercise: ExerciseSwimming, DurationMin: 10, Calories: 85}

	l := NewWorkoutLog()
	l.Record(a)
	l.Record(b)
	l.Record(c)

	s := l.Summarize()
	require.False(t, s.Empty)
	assert.Equal(t, 75, s.TotalDuration)
	assert.Equal(t, 268, s.TotalCalories)
	assert.Equal(t, []string{a.String(), b.String(), c.String()}, s.History)
}

func TestClear_ReturnsToSentinel(t *testing.T) {
	l := NewWorkoutLog(Workout{Exercise: ExerciseCycling, DurationMin: 15, Calories: 55})
	require.Equal(t, 1, l.Len())

	l.Clear()
	assert.Equal(t, 0, l.Len())
	assert.True(t, l.Summarize().Empty)

	// Idempotent.
	l.Clear()
	assert.True(t, l.Summarize().Empty)
}

func TestRecords_ReturnsCopy(t *testing.T) {
	l := NewWorkoutLog(Workout{Exercise: ExerciseRunning, DurationMin: 5, Calories: 42})
	recs := l.Records()
	recs[0].DurationMin = 999
	assert.Equal(t, 5, l.Records()[0].DurationMin)
}

func TestProgressText_Format(t *testing.T) {
	l := NewWorkoutLog(
		Workout{Exercise: ExerciseWalking, DurationMin: 30, Calories: 110},
		Workout{Exercise: ExerciseRunning, DurationMin: 30, Calories: 257},
	)
	want := "Workout history for Alex:\n" +
		"Walking - 30 mins, 110 cal\n" +
		"Running - 30 mins, 257 cal\n" +
		"\nTotal workout duration: 60 mins" +
		"\nTotal calories burned: 367 cal"
	assert.Equal(t, want, ProgressText("Alex", l.Summarize()))
}
