// Package export renders a workout log as the flat text history file and
// reads such files back.
package export

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"github.com/alexanderramin/fittrack/internal/domain"
)

// DefaultFileName is written to the working directory unless configured.
const DefaultFileName = "workout_history.txt"

// ErrWriteFailed wraps every I/O failure of WriteFile.
var ErrWriteFailed = errors.New("writing export file failed")

// Entry is one parsed history line.
type Entry struct {
	Exercise    domain.ExerciseKind
	DurationMin int
	Calories    int
}

func (e Entry) String() string {
	return domain.Workout{Exercise: e.Exercise, DurationMin: e.DurationMin, Calories: e.Calories}.String()
}

// Lines renders each record of log in order.
func Lines(log *domain.WorkoutLog) []string {
	records := log.Records()
	out := make([]string, len(records))
	for i, r := range records {
		out[i] = r.String()
	}
	return out
}

// The exercise group is greedy so names containing " - " still parse.
var linePattern = regexp.MustCompile(`^(.+) - (\d+) mins, (\d+) cal$`)

// ParseLine parses a line produced by Lines.
func ParseLine(line string) (Entry, error) {
	m := linePattern.FindStringSubmatch(strings.TrimRight(line, "\r\n"))
	if m == nil {
		return Entry{}, fmt.Errorf("malformed history line %q", line)
	}
	duration, err := strconv.Atoi(m[2])
	if err != nil {
		return Entry{}, fmt.Errorf("history line %q: duration: %w", line, err)
	}
	calories, err := strconv.Atoi(m[3])
	if err != nil {
		return Entry{}, fmt.Errorf("history line %q: calories: %w", line, err)
	}
	return Entry{Exercise: domain.ExerciseKind(m[1]), DurationMin: duration, Calories: calories}, nil
}

// Read parses every non-blank line of r.
func Read(r io.Reader) ([]Entry, error) {
	var entries []Entry
	sc := bufio.NewScanner(r)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		if strings.TrimSpace(sc.Text()) == "" {
			continue
		}
		e, err := ParseLine(sc.Text())
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		entries = append(entries, e)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading history: %w", err)
	}
	return entries, nil
}

// WriteFile replaces path with lines, one per line, each newline-terminated.
// The content goes to a temporary file in the same directory that is renamed
// over path, so a failed write never leaves a partial file behind.
func WriteFile(path string, lines []string) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("%w: %w", ErrWriteFailed, err)
	}
	tmpName := tmp.Name()
	cleanup := func(cause error) error {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return fmt.Errorf("%w: %s: %w", ErrWriteFailed, path, cause)
	}

	w := bufio.NewWriter(tmp)
	for _, line := range lines {
		if _, err := w.WriteString(line + "\n"); err != nil {
			return cleanup(err)
		}
	}
	if err := w.Flush(); err != nil {
		return cleanup(err)
	}
	if err := tmp.Sync(); err != nil {
		return cleanup(err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("%w: %s: %w", ErrWriteFailed, path, err)
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("%w: %s: %w", ErrWriteFailed, path, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("%w: %s: %w", ErrWriteFailed, path, err)
	}
	return nil
}
