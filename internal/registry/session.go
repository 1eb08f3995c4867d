package registry

import (
	"context"
	"errors"
	"fmt"

	"github.com/alexanderramin/fittrack/internal/domain"
)

// ErrNoCurrentUser is returned by Current when nothing has been selected.
var ErrNoCurrentUser = fmt.Errorf("no user selected: %w", domain.ErrNotFound)

// Session is the explicit current-user context of one interactive or
// scripted session. Selecting a user never touches any log.
type Session struct {
	reg       *Registry
	autoUser  string
	currentID string
}

// NewSession returns a session with no selection. A non-empty autoUser puts
// the session in single-user mode: Ensure creates and selects that user on
// first use.
func NewSession(reg *Registry, autoUser string) *Session {
	return &Session{reg: reg, autoUser: domain.NormalizeUserName(autoUser)}
}

func (s *Session) Registry() *Registry {
	return s.reg
}

// Adopt selects u when no user is selected yet, so the first user added to
// a session becomes current.
func (s *Session) Adopt(u *domain.User) bool {
	if s.currentID != "" || u == nil {
		return false
	}
	s.currentID = u.ID
	return true
}

// AddUser creates a user through the registry and adopts it.
func (s *Session) AddUser(ctx context.Context, name string) (*domain.User, error) {
	u, err := s.reg.CreateUser(ctx, name)
	if err != nil {
		return nil, err
	}
	s.Adopt(u)
	return u, nil
}

// Select makes the user identified by ID or name current.
func (s *Session) Select(ctx context.Context, identity string) (*domain.User, error) {
	u, err := s.reg.Lookup(ctx, identity)
	if err != nil {
		return nil, err
	}
	s.currentID = u.ID
	return u, nil
}

// Current returns the selected user or ErrNoCurrentUser.
func (s *Session) Current(ctx context.Context) (*domain.User, error) {
	if s.currentID == "" {
		return nil, ErrNoCurrentUser
	}
	return s.reg.Lookup(ctx, s.currentID)
}

// Ensure returns the current user, creating and selecting the configured
// auto user if nothing is selected.
func (s *Session) Ensure(ctx context.Context) (*domain.User, error) {
	u, err := s.Current(ctx)
	if err == nil || s.autoUser == "" || !errors.Is(err, ErrNoCurrentUser) {
		return u, err
	}

	u, err = s.reg.Lookup(ctx, s.autoUser)
	if errors.Is(err, domain.ErrNotFound) {
		u, err = s.reg.CreateUser(ctx, s.autoUser)
	}
	if err != nil {
		return nil, fmt.Errorf("auto user %q: %w", s.autoUser, err)
	}
	s.currentID = u.ID
	return u, nil
}
