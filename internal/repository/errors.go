package repository

import "github.com/alexanderramin/fittrack/internal/domain"

// ErrNotFound is returned when a lookup matches no row.
var ErrNotFound = domain.ErrNotFound
