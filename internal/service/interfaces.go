package service

import (
	"context"

	"github.com/alexanderramin/fittrack/internal/calorie"
	"github.com/alexanderramin/fittrack/internal/domain"
)

// TrackerService is the use-case facade the presentation shell talks to.
// Text arguments are raw user input; parsing and validation happen here.
type TrackerService interface {
	CreateUser(ctx context.Context, name string) (*domain.User, error)
	LogWorkout(ctx context.Context, userID, exercise, durationText string) (*domain.Workout, error)
	Progress(ctx context.Context, userID string) (domain.Summary, error)
	ProgressText(ctx context.Context, userID string) (string, error)
	History(ctx context.Context, userID string) (*domain.WorkoutLog, error)
	ClearHistory(ctx context.Context, userID string) (int, error)
	CheckGoals(ctx context.Context, userID, durationGoalText, caloriesGoalText string) (domain.GoalReport, error)
	ExportHistory(ctx context.Context, userID string) ([]string, error)
}

// Estimation is the result of a calorie estimate that was not logged.
type Estimation struct {
	Table    string
	Exercise domain.ExerciseKind
	Known    bool
	Factor   float64
	Minutes  int
	Calories int
}

type EstimateService interface {
	Estimate(ctx context.Context, exercise, durationText string) (*Estimation, error)
	Table() calorie.Table
}
