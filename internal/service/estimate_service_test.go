package service

import (
	"context"
	"testing"

	"github.com/alexanderramin/fittrack/internal/calorie"
	"github.com/alexanderramin/fittrack/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEstimate(t *testing.T) {
	svc := NewEstimateService(calorie.Compendium())
	e, err := svc.Estimate(context.Background(), "cycling", "8")
	require.NoError(t, err)
	assert.Equal(t, &Estimation{
		Table:    calorie.TableCompendium,
		Exercise: domain.ExerciseCycling,
		Known:    true,
		Factor:   7.5,
		Minutes:  8,
		Calories: 73,
	}, e)
}

func TestEstimate_Unknown(t *testing.T) {
	e, err := NewEstimateService(calorie.Standard()).Estimate(context.Background(), "Chess", "60")
	require.NoError(t, err)
	assert.False(t, e.Known)
	assert.Equal(t, calorie.DefaultFactor, e.Factor)
	assert.Equal(t, 73, e.Calories)
}

func TestEstimate_Invalid(t *testing.T) {
	svc := NewEstimateService(calorie.Standard())
	_, err := svc.Estimate(context.Background(), "Running", "soon")
	assert.ErrorIs(t, err, domain.ErrValidation)
	_, err = svc.Estimate(context.Background(), "", "10")
	assert.ErrorIs(t, err, domain.ErrValidation)
	_, err = svc.Estimate(context.Background(), "Running", "6000000000000")
	assert.ErrorIs(t, err, domain.ErrValidation)
}
