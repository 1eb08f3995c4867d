// Package calorie holds the MET calibration tables and the calorie estimator.
package calorie

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/alexanderramin/fittrack/internal/domain"
	"golang.org/x/text/cases"
)

const (
	TableStandard   = "standard"
	TableCompendium = "compendium"

	// DefaultFactor applies to exercises a table does not calibrate.
	DefaultFactor = 1.0
	// MaxFactor is the largest factor a table may carry.
	MaxFactor = 100.0
)

var folder = cases.Fold()

// Table maps exercise names to MET factors. Lookups are case-insensitive
// and ignore surrounding whitespace.
type Table struct {
	Name    string
	Default float64

	entries map[string]entry
}

type entry struct {
	display domain.ExerciseKind
	factor  float64
}

// Entry is a single exported row of a Table.
type Entry struct {
	Exercise domain.ExerciseKind
	Factor   float64
}

func key(name string) string {
	return folder.String(strings.TrimSpace(name))
}

// NewTable builds a table from display-name → factor pairs.
func NewTable(name string, factors map[domain.ExerciseKind]float64) Table {
	t := Table{Name: name, Default: DefaultFactor, entries: make(map[string]entry, len(factors))}
	for k, f := range factors {
		t.entries[key(string(k))] = entry{display: k, factor: f}
	}
	return t
}

// Standard is the integer-valued default table.
func Standard() Table {
	return NewTable(TableStandard, map[domain.ExerciseKind]float64{
		domain.ExerciseWalking:  3,
		domain.ExerciseRunning:  7,
		domain.ExerciseYoga:     2,
		domain.ExerciseSports:   6,
		domain.ExerciseSwimming: 7,
		domain.ExerciseCycling:  6,
		domain.ExerciseHiking:   5,
	})
}

// Compendium is the decimal-valued table calibrated against the
// Compendium of Physical Activities.
func Compendium() Table {
	return NewTable(TableCompendium, map[domain.ExerciseKind]float64{
		domain.ExerciseWalking:  3.5,
		domain.ExerciseRunning:  9.8,
		domain.ExerciseYoga:     3.0,
		domain.ExerciseSports:   7.0,
		domain.ExerciseSwimming: 8.0,
		domain.ExerciseCycling:  7.5,
		domain.ExerciseHiking:   6.0,
	})
}

// TableNames lists the built-in tables.
func TableNames() []string {
	return []string{TableStandard, TableCompendium}
}

// Lookup returns a built-in table by name.
func Lookup(name string) (Table, error) {
	switch key(name) {
	case TableStandard, "":
		return Standard(), nil
	case TableCompendium:
		return Compendium(), nil
	default:
		return Table{}, fmt.Errorf("unknown MET table %q (want one of %s)", name, strings.Join(TableNames(), ", "))
	}
}

// Factor returns the MET factor for kind, or the table default when the
// kind is not calibrated. It never fails.
func (t Table) Factor(kind domain.ExerciseKind) float64 {
	if e, ok := t.entries[key(string(kind))]; ok {
		return e.factor
	}
	if t.Default > 0 {
		return t.Default
	}
	return DefaultFactor
}

// Canonical returns the table's display name for kind and whether it is
// calibrated. Uncalibrated names are returned trimmed.
func (t Table) Canonical(kind domain.ExerciseKind) (domain.ExerciseKind, bool) {
	if e, ok := t.entries[key(string(kind))]; ok {
		return e.display, true
	}
	return domain.ExerciseKind(strings.TrimSpace(string(kind))), false
}

// CheckFactor rejects factors outside (0, MaxFactor].
func CheckFactor(f float64) error {
	if f <= 0 || f > MaxFactor || math.IsNaN(f) {
		return fmt.Errorf("factor must be in (0, %v], got %v", MaxFactor, f)
	}
	return nil
}

// WithOverrides returns a copy of t with the given entries replaced or added.
func (t Table) WithOverrides(overrides map[string]float64) (Table, error) {
	out := Table{Name: t.Name, Default: t.Default, entries: make(map[string]entry, len(t.entries)+len(overrides))}
	for k, e := range t.entries {
		out.entries[k] = e
	}
	for name, f := range overrides {
		trimmed := strings.TrimSpace(name)
		if trimmed == "" {
			return Table{}, fmt.Errorf("MET override with empty exercise name")
		}
		if err := CheckFactor(f); err != nil {
			return Table{}, fmt.Errorf("MET override for %q: %w", trimmed, err)
		}
		display := domain.ExerciseKind(trimmed)
		if existing, ok := out.entries[key(trimmed)]; ok {
			display = existing.display
		}
		out.entries[key(trimmed)] = entry{display: display, factor: f}
	}
	return out, nil
}

// Entries returns the calibrated rows: canonical kinds first in their fixed
// order, then any additional exercises alphabetically.
func (t Table) Entries() []Entry {
	seen := make(map[string]bool, len(t.entries))
	out := make([]Entry, 0, len(t.entries))
	for _, k := range domain.CanonicalExercises {
		if e, ok := t.entries[key(string(k))]; ok {
			out = append(out, Entry{Exercise: e.display, Factor: e.factor})
			seen[key(string(k))] = true
		}
	}
	var extra []Entry
	for k, e := range t.entries {
		if !seen[k] {
			extra = append(extra, Entry{Exercise: e.display, Factor: e.factor})
		}
	}
	sort.Slice(extra, func(i, j int) bool { return extra[i].Exercise < extra[j].Exercise })
	return append(out, extra...)
}

// Exercises returns the calibrated exercise names in Entries order.
func (t Table) Exercises() []domain.ExerciseKind {
	entries := t.Entries()
	out := make([]domain.ExerciseKind, len(entries))
	for i, e := range entries {
		out[i] = e.Exercise
	}
	return out
}
