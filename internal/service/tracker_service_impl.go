package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/fittrack/internal/calorie"
	"github.com/alexanderramin/fittrack/internal/db"
	"github.com/alexanderramin/fittrack/internal/domain"
	"github.com/alexanderramin/fittrack/internal/export"
	"github.com/alexanderramin/fittrack/internal/goals"
	"github.com/alexanderramin/fittrack/internal/registry"
	"github.com/alexanderramin/fittrack/internal/repository"
	"github.com/google/uuid"
	"go.uber.org/multierr"
)

type trackerService struct {
	registry *registry.Registry
	users    repository.UserRepo
	workouts repository.WorkoutRepo
	uow      db.UnitOfWork
	table    calorie.Table
	observer UseCaseObserver
}

func NewTrackerService(
	reg *registry.Registry,
	users repository.UserRepo,
	workouts repository.WorkoutRepo,
	uow db.UnitOfWork,
	table calorie.Table,
	observers ...UseCaseObserver,
) TrackerService {
	return &trackerService{
		registry: reg,
		users:    users,
		workouts: workouts,
		uow:      uow,
		table:    table,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *trackerService) CreateUser(ctx context.Context, name string) (u *domain.User, err error) {
	defer observe(ctx, s.observer, "create-user", time.Now().UTC(), nil, &err)
	return s.registry.CreateUser(ctx, name)
}

// LogWorkout validates the raw input, estimates calories with the active
// MET table and appends the record to the user's log. On any error nothing
// is written.
func (s *trackerService) LogWorkout(ctx context.Context, userID, exercise, durationText string) (w *domain.Workout, err error) {
	fields := map[string]any{"exercise": strings.TrimSpace(exercise)}
	defer observe(ctx, s.observer, "log-workout", time.Now().UTC(), fields, &err)

	if err := requireUserID(userID); err != nil {
		return nil, err
	}
	if strings.TrimSpace(exercise) == "" {
		return nil, domain.Invalid("exercise", msgMissingDetails)
	}
	minutes, err := parseMinutes("duration", durationText)
	if err != nil {
		return nil, err
	}

	kind, _ := s.table.Canonical(domain.ExerciseKind(exercise))
	w = &domain.Workout{
		ID:          uuid.New().String(),
		UserID:      userID,
		Exercise:    kind,
		DurationMin: minutes,
		Calories:    calorie.Estimate(s.table, kind, minutes),
		LoggedAt:    time.Now().UTC(),
	}

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		if _, err := lookupUser(ctx, repository.NewSQLiteUserRepo(tx), userID); err != nil {
			return err
		}
		return repository.NewSQLiteWorkoutRepo(tx).Append(ctx, w)
	})
	if err != nil {
		return nil, err
	}
	fields["minutes"] = w.DurationMin
	fields["calories"] = w.Calories
	fields["seq"] = w.Seq
	return w, nil
}

func (s *trackerService) History(ctx context.Context, userID string) (*domain.WorkoutLog, error) {
	if err := requireUserID(userID); err != nil {
		return nil, err
	}
	if _, err := lookupUser(ctx, s.users, userID); err != nil {
		return nil, err
	}
	records, err := s.workouts.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("loading workout log: %w", err)
	}
	return domain.NewWorkoutLog(records...), nil
}

func (s *trackerService) Progress(ctx context.Context, userID string) (domain.Summary, error) {
	log, err := s.History(ctx, userID)
	if err != nil {
		return domain.Summary{}, err
	}
	return log.Summarize(), nil
}

func (s *trackerService) ProgressText(ctx context.Context, userID string) (string, error) {
	if err := requireUserID(userID); err != nil {
		return "", err
	}
	u, err := lookupUser(ctx, s.users, userID)
	if err != nil {
		return "", err
	}
	summary, err := s.Progress(ctx, userID)
	if err != nil {
		return "", err
	}
	return domain.ProgressText(u.Name, summary), nil
}

// ClearHistory empties the user's log and reports how many records were
// removed. Clearing an empty log succeeds.
func (s *trackerService) ClearHistory(ctx context.Context, userID string) (n int, err error) {
	fields := map[string]any{}
	defer observe(ctx, s.observer, "clear-history", time.Now().UTC(), fields, &err)

	if err := requireUserID(userID); err != nil {
		return 0, err
	}
	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		if _, err := lookupUser(ctx, repository.NewSQLiteUserRepo(tx), userID); err != nil {
			return err
		}
		var err error
		n, err = repository.NewSQLiteWorkoutRepo(tx).DeleteByUser(ctx, userID)
		return err
	})
	if err != nil {
		return 0, err
	}
	fields["removed"] = n
	return n, nil
}

// CheckGoals validates both targets independently and reports every invalid
// field at once.
func (s *trackerService) CheckGoals(ctx context.Context, userID, durationGoalText, caloriesGoalText string) (r domain.GoalReport, err error) {
	defer observe(ctx, s.observer, "check-goals", time.Now().UTC(), nil, &err)

	if err := requireUserID(userID); err != nil {
		return domain.GoalReport{}, err
	}
	duration, durErr := parseTarget("duration goal", durationGoalText)
	calories, calErr := parseTarget("calorie goal", caloriesGoalText)
	if err := multierr.Combine(durErr, calErr); err != nil {
		return domain.GoalReport{}, err
	}

	summary, err := s.Progress(ctx, userID)
	if err != nil {
		return domain.GoalReport{}, err
	}
	return goals.Evaluate(summary, domain.WeeklyGoal{DurationMin: duration, Calories: calories}), nil
}

func (s *trackerService) ExportHistory(ctx context.Context, userID string) (lines []string, err error) {
	defer observe(ctx, s.observer, "export-history", time.Now().UTC(), nil, &err)

	log, err := s.History(ctx, userID)
	if err != nil {
		return nil, err
	}
	if log.Len() == 0 {
		return nil, domain.Invalid("", msgNothingToExport)
	}
	return export.Lines(log), nil
}

func requireUserID(userID string) error {
	if strings.TrimSpace(userID) == "" {
		return registry.ErrNoCurrentUser
	}
	return nil
}

func lookupUser(ctx context.Context, users repository.UserRepo, userID string) (*domain.User, error) {
	u, err := users.GetByID(ctx, userID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("user %q: %w", userID, domain.ErrNotFound)
	}
	return u, err
}
