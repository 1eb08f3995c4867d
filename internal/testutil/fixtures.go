package testutil

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/alexanderramin/fittrack/internal/calorie"
	"github.com/alexanderramin/fittrack/internal/domain"
	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/uuid"
)

var nameCounter atomic.Int64

// FakeUserName returns a random first name with a numeric suffix, so names
// stay unique within a test even when the faker repeats itself.
func FakeUserName() string {
	return fmt.Sprintf("%s %d", gofakeit.FirstName(), nameCounter.Add(1))
}

// User options
type UserOption func(*domain.User)

func WithUserName(name string) UserOption {
	return func(u *domain.User) {
		u.Name = name
	}
}

func NewTestUser(opts ...UserOption) *domain.User {
	u := &domain.User{
		ID:        uuid.New().String(),
		Name:      FakeUserName(),
		CreatedAt: time.Now().UTC(),
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

// Workout options
type WorkoutOption func(*domain.Workout)

func WithExercise(kind domain.ExerciseKind) WorkoutOption {
	return func(w *domain.Workout) {
		w.Exercise = kind
	}
}

func WithDuration(minutes int) WorkoutOption {
	return func(w *domain.Workout) {
		w.DurationMin = minutes
	}
}

// NewTestWorkout builds a workout for userID with calories estimated from
// the standard table after options are applied.
func NewTestWorkout(userID string, opts ...WorkoutOption) *domain.Workout {
	w := &domain.Workout{
		ID:          uuid.New().String(),
		UserID:      userID,
		Exercise:    domain.CanonicalExercises[gofakeit.Number(0, len(domain.CanonicalExercises)-1)],
		DurationMin: gofakeit.Number(5, 90),
		LoggedAt:    time.Now().UTC(),
	}
	for _, opt := range opts {
		opt(w)
	}
	w.Calories = calorie.Estimate(calorie.Standard(), w.Exercise, w.DurationMin)
	return w
}
