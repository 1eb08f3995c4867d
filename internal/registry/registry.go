// Package registry owns the users of a session and the current-user
// selection.
package registry

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/fittrack/internal/domain"
	"github.com/alexanderramin/fittrack/internal/repository"
	"github.com/google/uuid"
)

// Registry creates and resolves users.
type Registry struct {
	users repository.UserRepo
}

func New(users repository.UserRepo) *Registry {
	return &Registry{users: users}
}

// CreateUser registers a new user with an empty log. Names are trimmed and
// must be unique regardless of case.
func (r *Registry) CreateUser(ctx context.Context, name string) (*domain.User, error) {
	if err := domain.ValidateUserName(name); err != nil {
		return nil, err
	}
	name = domain.NormalizeUserName(name)

	_, err := r.users.GetByName(ctx, name)
	switch {
	case err == nil:
		return nil, domain.Invalid("name", fmt.Sprintf("user %q already exists", name))
	case !errors.Is(err, repository.ErrNotFound):
		return nil, fmt.Errorf("checking user name: %w", err)
	}

	u := &domain.User{
		ID:        uuid.New().String(),
		Name:      name,
		CreatedAt: time.Now().UTC(),
	}
	if err := r.users.Create(ctx, u); err != nil {
		return nil, fmt.Errorf("creating user: %w", err)
	}
	return u, nil
}

// Lookup resolves identity as a user ID first, then as a name.
func (r *Registry) Lookup(ctx context.Context, identity string) (*domain.User, error) {
	identity = strings.TrimSpace(identity)
	if identity == "" {
		return nil, fmt.Errorf("user %q: %w", identity, domain.ErrNotFound)
	}

	u, err := r.users.GetByID(ctx, identity)
	if err == nil {
		return u, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	u, err = r.users.GetByName(ctx, identity)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("user %q: %w", identity, domain.ErrNotFound)
		}
		return nil, err
	}
	return u, nil
}

// List returns users in creation order.
func (r *Registry) List(ctx context.Context) ([]*domain.User, error) {
	return r.users.List(ctx)
}
