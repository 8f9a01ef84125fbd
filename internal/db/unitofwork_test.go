package db_test

import (
	"context"
	"errors"
	"testing"

	"github.com/alexanderramin/lessonplan/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUoW(t *testing.T) *db.SQLiteUnitOfWork {
	t.Helper()
	database, err := db.OpenDB(db.MemoryPath)
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })
	return db.NewSQLiteUnitOfWork(database)
}

func putRecord(ctx context.Context, tx db.DBTX, key, value string) error {
	_, err := tx.ExecContext(ctx, `INSERT INTO records (key, value, updated_at) VALUES (?, ?, 'now')`, key, value)
	return err
}

func recordExists(uow *db.SQLiteUnitOfWork, key string) bool {
	var found bool
	_ = uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
		var v string
		found = tx.QueryRowContext(ctx, `SELECT value FROM records WHERE key = ?`, key).Scan(&v) == nil
		return nil
	})
	return found
}

func TestWithinTx_CommitsBothRecords(t *testing.T) {
	uow := newUoW(t)

	err := uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
		if err := putRecord(ctx, tx, "lessons", "[]"); err != nil {
			return err
		}
		return putRecord(ctx, tx, "units", "[]")
	})
	require.NoError(t, err)

	assert.True(t, recordExists(uow, "lessons"))
	assert.True(t, recordExists(uow, "units"))
}

func TestWithinTx_RollbackOnError(t *testing.T) {
	uow := newUoW(t)
	boom := errors.New("deliberate failure")

	err := uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
		if err := putRecord(ctx, tx, "lessons", "[]"); err != nil {
			return err
		}
		return boom
	})
	require.ErrorIs(t, err, boom)
	assert.False(t, recordExists(uow, "lessons"))
}

func TestWithinTx_RollbackOnPanic(t *testing.T) {
	uow := newUoW(t)

	assert.Panics(t, func() {
		_ = uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
			_ = putRecord(ctx, tx, "units", "[]")
			panic("boom")
		})
	})
	assert.False(t, recordExists(uow, "units"))
}
