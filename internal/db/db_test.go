package db_test

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/alexanderramin/hourlog/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestUoW(t *testing.T) (*db.SQLiteUnitOfWork, func(id string) bool) {
	t.Helper()
	database, err := db.OpenDB(db.MemoryPath)
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })

	exists := func(id string) bool {
		var n int
		require.NoError(t, database.QueryRow(`SELECT COUNT(*) FROM reports WHERE id = ?`, id).Scan(&n))
		return n == 1
	}
	return db.NewSQLiteUnitOfWork(database), exists
}

func insertReport(ctx context.Context, tx db.DBTX, id string) error {
	_, err := tx.ExecContext(ctx, `INSERT INTO reports (id, date, duration, study_hours, observations, created_at, updated_at)
		VALUES (?, '2025-06-01T00:00:00.000Z', 30, 0, '', '2025-06-01T00:00:00Z', '2025-06-01T00:00:00Z')`, id)
	return err
}

func TestOpenDB_SeedsDefaults(t *testing.T) {
	database, err := db.OpenDB(db.MemoryPath)
	require.NoError(t, err)
	defer database.Close()

	var goals, info, days, selected int
	require.NoError(t, database.QueryRow(`SELECT COUNT(*) FROM goals`).Scan(&goals))
	require.NoError(t, database.QueryRow(`SELECT COUNT(*) FROM personal_info`).Scan(&info))
	require.NoError(t, database.QueryRow(`SELECT COUNT(*), COALESCE(SUM(is_selected), 0) FROM work_days`).Scan(&days, &selected))

	assert.Equal(t, 1, goals)
	assert.Equal(t, 1, info)
	assert.Equal(t, 7, days)
	assert.Equal(t, 0, selected)
}

func TestOpenDB_ReopenIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "hourlog.db")

	first, err := db.OpenDB(path)
	require.NoError(t, err)
	_, err = first.Exec(`UPDATE goals SET monthly_minutes = 600`)
	require.NoError(t, err)
	require.NoError(t, first.Close())

	second, err := db.OpenDB(path)
	require.NoError(t, err)
	defer second.Close()

	var minutes, rows int
	require.NoError(t, second.QueryRow(`SELECT monthly_minutes FROM goals`).Scan(&minutes))
	require.NoError(t, second.QueryRow(`SELECT COUNT(*) FROM work_days`).Scan(&rows))
	assert.Equal(t, 600, minutes, "reseeding must not reset existing values")
	assert.Equal(t, 7, rows)
}

func TestSchema_RejectsSecondGoalRow(t *testing.T) {
	database, err := db.OpenDB(db.MemoryPath)
	require.NoError(t, err)
	defer database.Close()

	_, err = database.Exec(`INSERT INTO goals (id, monthly_minutes) VALUES ('other', 10)`)
	assert.Error(t, err)
	_, err = database.Exec(`INSERT INTO work_days (day_of_week, is_selected) VALUES (7, 1)`)
	assert.Error(t, err)
}

func TestWithinTx_CommitOnSuccess(t *testing.T) {
	uow, exists := openTestUoW(t)

	err := uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
		return insertReport(ctx, tx, "r1")
	})
	require.NoError(t, err)
	assert.True(t, exists("r1"))
}

func TestWithinTx_RollbackOnError(t *testing.T) {
	uow, exists := openTestUoW(t)

	err := uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
		if err := insertReport(ctx, tx, "r2"); err != nil {
			return err
		}
		return fmt.Errorf("deliberate failure")
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "deliberate failure")
	assert.False(t, exists("r2"), "row should not exist after rollback")
}

func TestWithinTx_RollbackOnPanic(t *testing.T) {
	uow, exists := openTestUoW(t)

	assert.Panics(t, func() {
		_ = uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
			_ = insertReport(ctx, tx, "r3")
			panic("boom")
		})
	})
	assert.False(t, exists("r3"))
}
