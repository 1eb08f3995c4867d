package db

import (
	"database/sql"
	"fmt"
)

// Migrate creates the session schema. Every statement is idempotent.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id         TEXT PRIMARY KEY,
		name       TEXT NOT NULL CHECK(length(trim(name)) > 0),
		name_key   TEXT NOT NULL UNIQUE,
		created_at TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS workouts (
		id           TEXT PRIMARY KEY,
		user_id      TEXT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		seq          INTEGER NOT NULL CHECK(seq > 0),
		exercise     TEXT NOT NULL CHECK(length(exercise) > 0),
		duration_min INTEGER NOT NULL CHECK(duration_min >= 0),
		calories     INTEGER NOT NULL CHECK(calories >= 0),
		logged_at    TEXT NOT NULL,
		UNIQUE(user_id, seq)
	)`,

	`CREATE INDEX IF NOT EXISTS idx_workouts_user ON workouts(user_id, seq)`,
}
