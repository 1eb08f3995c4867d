package goals

import (
	"testing"

	"github.com/alexanderramin/fittrack/internal/domain"
	"github.com/stretchr/testify/assert"
)

func summary(duration, calories int) domain.Summary {
	return domain.Summary{TotalDuration: duration, TotalCalories: calories, History: []string{"x"}}
}

func TestEvaluate_BothUnmet(t *testing.T) {
	r := Evaluate(summary(40, 300), domain.WeeklyGoal{DurationMin: 60, Calories: 500})
	assert.Equal(t, 40, r.Duration.Achieved)
	assert.Equal(t, 60, r.Duration.Goal)
	assert.Equal(t, 300, r.Calories.Achieved)
	assert.Equal(t, 500, r.Calories.Goal)
	assert.False(t, r.Duration.Met())
	assert.False(t, r.Calories.Met())
}

func TestEvaluate_BothMet(t *testing.T) {
	r := Evaluate(summary(40, 300), domain.WeeklyGoal{DurationMin: 30, Calories: 200})
	assert.True(t, r.Duration.Met())
	assert.True(t, r.Calories.Met())
	assert.True(t, r.AllMet())
}

func TestEvaluate_Mixed(t *testing.T) {
	r := Evaluate(summary(40, 300), domain.WeeklyGoal{DurationMin: 40, Calories: 301})
	assert.True(t, r.Duration.Met())
	assert.False(t, r.Calories.Met())
	assert.False(t, r.AllMet())
}

func TestEvaluate_EmptySummary(t *testing.T) {
	r := Evaluate(domain.Summary{Empty: true}, domain.WeeklyGoal{DurationMin: 10, Calories: 0})
	assert.Equal(t, 0, r.Duration.Achieved)
	assert.False(t, r.Duration.Met())
	assert.True(t, r.Calories.Met())
}

func TestEvaluate_FromLog(t *testing.T) {
	l := domain.NewWorkoutLog(
		domain.Workout{Exercise: domain.ExerciseRunning, DurationMin: 30, Calories: 257},
		domain.Workout{Exercise: domain.ExerciseWalking, DurationMin: 10, Calories: 36},
	)
	r := Evaluate(l.Summarize(), domain.WeeklyGoal{DurationMin: 40, Calories: 293})
	assert.True(t, r.AllMet())
}
