package testutil

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/alexanderramin/fittrack/internal/db"
)

// FailingCommitUoW runs fn inside a real transaction and then rolls it back
// with Err instead of committing, as if the commit itself had failed. Every
// write fn made must therefore be invisible afterwards.
type FailingCommitUoW struct {
	DB  *sql.DB
	Err error
}

func (u *FailingCommitUoW) WithinTx(ctx context.Context, fn func(ctx context.Context, tx db.DBTX) error) error {
	tx, err := u.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	if fnErr := fn(ctx, tx); fnErr != nil {
		_ = tx.Rollback()
		return fnErr
	}
	_ = tx.Rollback()
	return fmt.Errorf("committing transaction: %w", u.Err)
}
