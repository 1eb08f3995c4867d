package export

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alexanderramin/fittrack/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleLog() *domain.WorkoutLog {
	return domain.NewWorkoutLog(
		domain.Workout{Exercise: domain.ExerciseRunning, DurationMin: 30, Calories: 257},
		domain.Workout{Exercise: domain.ExerciseHiking, DurationMin: 90, Calories: 551},
		domain.Workout{Exercise: "Tai Chi - Yang style", DurationMin: 20, Calories: 24},
	)
}

func TestLines(t *testing.T) {
	assert.Equal(t, []string{
		"Running - 30 mins, 257 cal",
		"Hiking/Trekking - 90 mins, 551 cal",
		"Tai Chi - Yang style - 20 mins, 24 cal",
	}, Lines(sampleLog()))
	assert.Empty(t, Lines(domain.NewWorkoutLog()))
}

func TestParseLine(t *testing.T) {
	e, err := ParseLine("Tai Chi - Yang style - 20 mins, 24 cal\n")
	require.NoError(t, err)
	assert.Equal(t, Entry{Exercise: "Tai Chi - Yang style", DurationMin: 20, Calories: 24}, e)

	for _, bad := range []string{"", "Running", "Running - x mins, 1 cal", "Running - 30 mins", "Running - -3 mins, 0 cal"} {
		_, err := ParseLine(bad)
		assert.Error(t, err, bad)
	}
}

func TestWriteFile_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultFileName)
	lines := Lines(sampleLog())
	require.NoError(t, WriteFile(path, lines))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, strings.Join(lines, "\n")+"\n", string(data))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	entries, err := Read(f)
	require.NoError(t, err)
	require.Len(t, entries, len(lines))
	for i, e := range entries {
		assert.Equal(t, lines[i], e.String())
	}
}

func TestWriteFile_Overwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultFileName)
	require.NoError(t, os.WriteFile(path, []byte("stale\nstale\nstale\n"), 0o644))
	require.NoError(t, WriteFile(path, []string{"Yoga - 10 mins, 12 cal"}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Yoga - 10 mins, 12 cal\n", string(data))
}

func TestWriteFile_FailureLeavesNoFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "missing-dir", DefaultFileName)

	err := WriteFile(path, []string{"Yoga - 10 mins, 12 cal"})
	require.ErrorIs(t, err, ErrWriteFailed)

	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr))
	leftovers, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, leftovers)
}

func TestWriteFile_TargetIsDirectory(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "history")
	require.NoError(t, os.Mkdir(target, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(target, "keep"), nil, 0o644))

	err := WriteFile(target, []string{"Yoga - 10 mins, 12 cal"})
	require.ErrorIs(t, err, ErrWriteFailed)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1, "temporary file must be removed")
	assert.Equal(t, "history", entries[0].Name())
}

func TestRead_ReportsLineNumber(t *testing.T) {
	_, err := Read(strings.NewReader("Yoga - 10 mins, 12 cal\n\nbroken\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 3")
}
