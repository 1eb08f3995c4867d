package repository

import (
	"context"
	"fmt"

	"github.com/alexanderramin/fittrack/internal/db"
	"github.com/alexanderramin/fittrack/internal/domain"
)

// SQLiteWorkoutRepo implements WorkoutRepo using a SQLite database.
type SQLiteWorkoutRepo struct {
	db db.DBTX
}

// NewSQLiteWorkoutRepo creates a new SQLiteWorkoutRepo.
func NewSQLiteWorkoutRepo(conn db.DBTX) *SQLiteWorkoutRepo {
	return &SQLiteWorkoutRepo{db: conn}
}

// Append allocates the next per-user sequence number in the same statement
// as the insert, so the log order is the insertion order.
func (r *SQLiteWorkoutRepo) Append(ctx context.Context, w *domain.Workout) error {
	loggedAt := formatTime(w.LoggedAt)
	query := `INSERT INTO workouts (id, user_id, seq, exercise, duration_min, calories, logged_at)
		SELECT ?, ?, COALESCE(MAX(seq), 0) + 1, ?, ?, ?, ?
		FROM workouts WHERE user_id = ?
		RETURNING seq`
	var seq int
	err := r.db.QueryRowContext(ctx, query,
		w.ID, w.UserID, string(w.Exercise), w.DurationMin, w.Calories, loggedAt, w.UserID,
	).Scan(&seq)
	if err != nil {
		return fmt.Errorf("appending workout: %w", err)
	}
	w.Seq = seq
	w.LoggedAt = parseTime(loggedAt)
	return nil
}

func (r *SQLiteWorkoutRepo) ListByUser(ctx context.Context, userID string) ([]domain.Workout, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, user_id, seq, exercise, duration_min, calories, logged_at
		FROM workouts WHERE user_id = ? ORDER BY seq`, userID)
	if err != nil {
		return nil, fmt.Errorf("listing workouts: %w", err)
	}
	defer rows.Close()

	var out []domain.Workout
	for rows.Next() {
		var w domain.Workout
		var exercise, loggedAt string
		if err := rows.Scan(&w.ID, &w.UserID, &w.Seq, &exercise, &w.DurationMin, &w.Calories, &loggedAt); err != nil {
			return nil, fmt.Errorf("scanning workout: %w", err)
		}
		w.Exercise = domain.ExerciseKind(exercise)
		w.LoggedAt = parseTime(loggedAt)
		out = append(out, w)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating workouts: %w", err)
	}
	return out, nil
}

func (r *SQLiteWorkoutRepo) DeleteByUser(ctx context.Context, userID string) (int, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM workouts WHERE user_id = ?`, userID)
	if err != nil {
		return 0, fmt.Errorf("clearing workouts: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("clearing workouts: %w", err)
	}
	return int(n), nil
}
