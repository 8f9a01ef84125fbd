package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/alexanderramin/lessonplan/internal/db"
)

// SQLiteRecordRepo implements RecordRepo on the records table.
type SQLiteRecordRepo struct {
	db db.DBTX
}

// NewSQLiteRecordRepo creates a new SQLiteRecordRepo. tx may be a *sql.DB or
// a *sql.Tx handed out by a UnitOfWork.
func NewSQLiteRecordRepo(tx db.DBTX) *SQLiteRecordRepo {
	return &SQLiteRecordRepo{db: tx}
}

func (r *SQLiteRecordRepo) Get(ctx context.Context, key string) (*Record, error) {
	query := `SELECT key, value, updated_at FROM records WHERE key = ?`
	var rec Record
	var updatedAt string
	err := r.db.QueryRowContext(ctx, query, key).Scan(&rec.Key, &rec.Value, &updatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("record %q: %w", key, ErrNotFound)
		}
		return nil, fmt.Errorf("scanning record: %w", err)
	}
	rec.UpdatedAt = parseTimestamp(updatedAt)
	return &rec, nil
}

func (r *SQLiteRecordRepo) Put(ctx context.Context, key, value string) error {
	query := `INSERT INTO records (key, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`
	if _, err := r.db.ExecContext(ctx, query, key, value, nowUTC()); err != nil {
		return fmt.Errorf("writing record %q: %w", key, err)
	}
	return nil
}

func (r *SQLiteRecordRepo) Delete(ctx context.Context, key string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM records WHERE key = ?`, key); err != nil {
		return fmt.Errorf("deleting record %q: %w", key, err)
	}
	return nil
}

func (r *SQLiteRecordRepo) List(ctx context.Context) ([]*Record, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT key, value, updated_at FROM records ORDER BY key`)
	if err != nil {
		return nil, fmt.Errorf("listing records: %w", err)
	}
	defer rows.Close()

	var records []*Record
	for rows.Next() {
		var rec Record
		var updatedAt string
		if err := rows.Scan(&rec.Key, &rec.Value, &updatedAt); err != nil {
			return nil, fmt.Errorf("scanning record row: %w", err)
		}
		rec.UpdatedAt = parseTimestamp(updatedAt)
		records = append(records, &rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating records: %w", err)
	}
	return records, nil
}
