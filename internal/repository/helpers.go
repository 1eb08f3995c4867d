package repository

import (
	"strings"
	"time"

	"golang.org/x/text/cases"
)

var nameFolder = cases.Fold()

// nameKey is the uniqueness key of a user name.
func nameKey(name string) string {
	return nameFolder.String(strings.TrimSpace(name))
}

// nowUTC returns the current UTC time formatted as RFC3339.
func nowUTC() string {
	return time.Now().UTC().Format(time.RFC3339Nano)
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return nowUTC()
	}
	return t.UTC().Format(time.RFC3339Nano)
}

// parseTime returns the zero time for values it cannot parse.
func parseTime(s string) time.Time {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}
	}
	return t
}
