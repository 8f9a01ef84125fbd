package testutil

import (
	"context"
	"database/sql"
	"fmt"
	"sync/atomic"

	"github.com/alexanderramin/lessonplan/internal/db"
)

// FailOnNthWriteUoW injects Err on the Nth ExecContext call inside a
// transaction so tests can check that multi-record writes roll back as a
// whole. Calls are counted from 1 across the lifetime of the UoW; reads pass
// through.
type FailOnNthWriteUoW struct {
	DB     *sql.DB
	FailOn int32
	Err    error

	count atomic.Int32
}

func (u *FailOnNthWriteUoW) WithinTx(ctx context.Context, fn func(ctx context.Context, tx db.DBTX) error) error {
	tx, err := u.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}

	if fnErr := fn(ctx, &failingTx{DBTX: tx, uow: u}); fnErr != nil {
		_ = tx.Rollback()
		return fnErr
	}
	return tx.Commit()
}

// Writes reports how many ExecContext calls were attempted.
func (u *FailOnNthWriteUoW) Writes() int {
	return int(u.count.Load())
}

type failingTx struct {
	db.DBTX
	uow *FailOnNthWriteUoW
}

func (f *failingTx) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	if f.uow.count.Add(1) == f.uow.FailOn {
		return nil, f.uow.Err
	}
	return f.DBTX.ExecContext(ctx, query, args...)
}
