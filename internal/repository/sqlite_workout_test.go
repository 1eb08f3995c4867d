package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/alexanderramin/fittrack/internal/db"
	"github.com/alexanderramin/fittrack/internal/domain"
	"github.com/alexanderramin/fittrack/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedUser(t *testing.T, conn db.DBTX) *domain.User {
	t.Helper()
	u := testutil.NewTestUser()
	require.NoError(t, NewSQLiteUserRepo(conn).Create(context.Background(), u))
	return u
}

func TestWorkoutRepo_AppendAssignsSequence(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLiteWorkoutRepo(database)
	ctx := context.Background()
	u := seedUser(t, database)

	for i := 1; i <= 3; i++ {
		w := testutil.NewTestWorkout(u.ID)
		require.NoError(t, repo.Append(ctx, w))
		assert.Equal(t, i, w.Seq)
	}
}

func TestWorkoutRepo_SequencesArePerUser(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLiteWorkoutRepo(database)
	ctx := context.Background()
	a := seedUser(t, database)
	b := seedUser(t, database)

	require.NoError(t, repo.Append(ctx, testutil.NewTestWorkout(a.ID)))
	require.NoError(t, repo.Append(ctx, testutil.NewTestWorkout(a.ID)))
	wb := testutil.NewTestWorkout(b.ID)
	require.NoError(t, repo.Append(ctx, wb))
	assert.Equal(t, 1, wb.Seq)
}

func TestWorkoutRepo_ListByUserPreservesOrder(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLiteWorkoutRepo(database)
	ctx := context.Background()
	u := seedUser(t, database)

	kinds := []domain.ExerciseKind{domain.ExerciseYoga, domain.ExerciseRunning, "Rowing", domain.ExerciseYoga}
	for i, k := range kinds {
		w := testutil.NewTestWorkout(u.ID, testutil.WithExercise(k), testutil.WithDuration(10*(i+1)))
		require.NoError(t, repo.Append(ctx, w))
	}

	got, err := repo.ListByUser(ctx, u.ID)
	require.NoError(t, err)
	require.Len(t, got, len(kinds))
	for i, w := range got {
		assert.Equal(t, kinds[i], w.Exercise)
		assert.Equal(t, 10*(i+1), w.DurationMin)
		assert.Equal(t, i+1, w.Seq)
		assert.Equal(t, u.ID, w.UserID)
	}
}

func TestWorkoutRepo_DeleteByUserOnlyTouchesThatUser(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLiteWorkoutRepo(database)
	ctx := context.Background()
	a := seedUser(t, database)
	b := seedUser(t, database)

	require.NoError(t, repo.Append(ctx, testutil.NewTestWorkout(a.ID)))
	require.NoError(t, repo.Append(ctx, testutil.NewTestWorkout(a.ID)))
	require.NoError(t, repo.Append(ctx, testutil.NewTestWorkout(b.ID)))

	n, err := repo.DeleteByUser(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	left, err := repo.ListByUser(ctx, a.ID)
	require.NoError(t, err)
	assert.Empty(t, left)

	other, err := repo.ListByUser(ctx, b.ID)
	require.NoError(t, err)
	assert.Len(t, other, 1)

	// Clearing twice is a no-op.
	n, err = repo.DeleteByUser(ctx, a.ID)
	require.NoError(t, err)
	assert.Zero(t, n)

	// A cleared log restarts its sequence.
	w := testutil.NewTestWorkout(a.ID)
	require.NoError(t, repo.Append(ctx, w))
	assert.Equal(t, 1, w.Seq)
}

func TestWorkoutRepo_AppendUnknownUserFails(t *testing.T) {
	database := testutil.NewTestDB(t)
	err := NewSQLiteWorkoutRepo(database).Append(context.Background(), testutil.NewTestWorkout("ghost"))
	assert.Error(t, err)
}

func TestWorkoutRepo_AppendInsideUnitOfWork(t *testing.T) {
	database := testutil.NewTestDB(t)
	ctx := context.Background()
	u := seedUser(t, database)

	boom := errors.New("boom")
	uow := &testutil.FailingCommitUoW{DB: database, Err: boom}
	err := uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		return NewSQLiteWorkoutRepo(tx).Append(ctx, testutil.NewTestWorkout(u.ID))
	})
	require.ErrorIs(t, err, boom)

	got, err := NewSQLiteWorkoutRepo(database).ListByUser(ctx, u.ID)
	require.NoError(t, err)
	assert.Empty(t, got)
}
