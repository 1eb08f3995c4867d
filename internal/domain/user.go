package domain

import (
	"strings"
	"time"
)

type User struct {
	ID        string
	Name      string
	CreatedAt time.Time
}

// NormalizeUserName trims surrounding whitespace from a user name.
func NormalizeUserName(name string) string {
	return strings.TrimSpace(name)
}

// ValidateUserName rejects empty and whitespace-only names.
func ValidateUserName(name string) error {
	if NormalizeUserName(name) == "" {
		return Invalid("name", "please provide a valid name")
	}
	return nil
}

func (u *User) String() string {
	return u.Name
}
