package service

import (
	"strconv"
	"strings"

	"github.com/alexanderramin/fittrack/internal/calorie"
	"github.com/alexanderramin/fittrack/internal/domain"
)

const (
	msgMissingDetails  = "please enter all workout details"
	msgInvalidDuration = "please enter valid numbers for duration"
	msgInvalidGoal     = "please enter valid numbers for goals"
	msgNothingToExport = "add workouts to export"
)

// MaxGoalTarget bounds both weekly goal fields.
const MaxGoalTarget = 1_000_000_000

// parseWhole parses a base-10 integer in [0, limit]. Surrounding whitespace
// is ignored.
func parseWhole(field, text string, limit int, msg string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil || n < 0 || n > limit {
		return 0, domain.Invalid(field, msg)
	}
	return n, nil
}

// parseMinutes parses a workout duration of at most calorie.MaxMinutes.
func parseMinutes(field, text string) (int, error) {
	if strings.TrimSpace(text) == "" {
		return 0, domain.Invalid(field, msgMissingDetails)
	}
	return parseWhole(field, text, calorie.MaxMinutes, msgInvalidDuration)
}

// parseTarget parses a goal field. Goals have no "missing" variant: a blank
// target is just an invalid number.
func parseTarget(field, text string) (int, error) {
	return parseWhole(field, text, MaxGoalTarget, msgInvalidGoal)
}
