package service

import (
	"context"
	"strings"
	"time"

	"github.com/alexanderramin/fittrack/internal/calorie"
	"github.com/alexanderramin/fittrack/internal/domain"
)

type estimateService struct {
	table    calorie.Table
	observer UseCaseObserver
}

func NewEstimateService(table calorie.Table, observers ...UseCaseObserver) EstimateService {
	return &estimateService{table: table, observer: useCaseObserverOrNoop(observers)}
}

func (s *estimateService) Table() calorie.Table {
	return s.table
}

// Estimate computes calories exactly as LogWorkout would, without recording.
func (s *estimateService) Estimate(ctx context.Context, exercise, durationText string) (e *Estimation, err error) {
	defer observe(ctx, s.observer, "estimate", time.Now().UTC(), map[string]any{"table": s.table.Name}, &err)

	if strings.TrimSpace(exercise) == "" {
		return nil, domain.Invalid("exercise", msgMissingDetails)
	}
	minutes, err := parseMinutes("duration", durationText)
	if err != nil {
		return nil, err
	}
	kind, known := s.table.Canonical(domain.ExerciseKind(exercise))
	return &Estimation{
		Table:    s.table.Name,
		Exercise: kind,
		Known:    known,
		Factor:   s.table.Factor(kind),
		Minutes:  minutes,
		Calories: calorie.Estimate(s.table, kind, minutes),
	}, nil
}
