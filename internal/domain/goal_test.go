package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMetricProgress_Met(t *testing.T) {
	cases := []struct {
		achieved, goal int
		met            bool
	}{
		{40, 60, false},
		{60, 60, true},
		{61, 60, true},
		{0, 0, true},
	}
	for _, tc := range cases {
		m := MetricProgress{Achieved: tc.achieved, Goal: tc.goal}
		assert.Equal(t, tc.met, m.Met(), "achieved=%d goal=%d", tc.achieved, tc.goal)
	}
}

func TestMetricProgress_Ratio(t *testing.T) {
	assert.InDelta(t, 0.5, MetricProgress{Achieved: 30, Goal: 60}.Ratio(), 1e-9)
	assert.Equal(t, 1.0, MetricProgress{Achieved: 90, Goal: 60}.Ratio())
	assert.Equal(t, 1.0, MetricProgress{Achieved: 0, Goal: 0}.Ratio())
}

func TestGoalReport_AllMet(t *testing.T) {
	r := GoalReport{
		Duration: MetricProgress{Achieved: 40, Goal: 30},
		Calories: MetricProgress{Achieved: 300, Goal: 500},
	}
	assert.False(t, r.AllMet())
	r.Calories.Goal = 200
	assert.True(t, r.AllMet())
}

func TestValidateUserName(t *testing.T) {
	for _, name := range []string{"", "   ", "\t\n"} {
		err := ValidateUserName(name)
		assert.Error(t, err, "name=%q", name)
		assert.True(t, errors.Is(err, ErrValidation))
	}
	assert.NoError(t, ValidateUserName("Alex"))
	assert.Equal(t, "Alex", NormalizeUserName("  Alex "))
}

func TestValidationError_Message(t *testing.T) {
	assert.Equal(t, "duration: enter a number", Invalid("duration", "enter a number").Error())
	assert.Equal(t, "bare", (&ValidationError{Msg: "bare"}).Error())
}
