package repository

import (
	"context"

	"github.com/alexanderramin/fittrack/internal/domain"
)

type UserRepo interface {
	Create(ctx context.Context, u *domain.User) error
	GetByID(ctx context.Context, id string) (*domain.User, error)
	// GetByName matches case-insensitively on the folded name key.
	GetByName(ctx context.Context, name string) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
}

type WorkoutRepo interface {
	// Append stores w at the end of its user's log and sets w.Seq.
	Append(ctx context.Context, w *domain.Workout) error
	ListByUser(ctx context.Context, userID string) ([]domain.Workout, error)
	// DeleteByUser removes the user's whole log and reports how many records
	// were dropped.
	DeleteByUser(ctx context.Context, userID string) (int, error)
}
