package repository

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound is returned when a lookup matches no row.
var ErrNotFound = errors.New("not found")

// Record is one named entry of the local key-value store.
type Record struct {
	Key       string
	Value     string
	UpdatedAt time.Time
}

type RecordRepo interface {
	Get(ctx context.Context, key string) (*Record, error)
	Put(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
	List(ctx context.Context) ([]*Record, error)
}
