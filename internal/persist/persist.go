// Package persist reads and writes named records of the local key-value
// store. It knows nothing about what the records mean.
package persist

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/alexanderramin/lessonplan/internal/db"
	"github.com/alexanderramin/lessonplan/internal/repository"
	"go.uber.org/zap"
)

// Record keys of the local store, one row per logical record. Lessons and
// units are JSON arrays; the remote URL is stored as a plain string.
const (
	KeyLessons   = "lessonplan_lessons"
	KeyUnits     = "lessonplan_units"
	KeyRemoteURL = "lessonplan_cloud_url"
)

// Store is the local persistence adapter.
type Store struct {
	records repository.RecordRepo
	uow     db.UnitOfWork
	logger  *zap.Logger
}

// New creates a Store. uow is used by SaveMany to write several records
// atomically.
func New(records repository.RecordRepo, uow db.UnitOfWork, logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{records: records, uow: uow, logger: logger.Named("persist")}
}

// Entry is one key/value pair for SaveMany. Value is JSON-encoded unless it
// is a string, which is stored verbatim.
type Entry struct {
	Key   string
	Value any
}

// Load reads key and decodes it as JSON into a T. A missing record or a
// record that does not decode yields def; the failure is logged, never
// returned.
func Load[T any](ctx context.Context, s *Store, key string, def T) T {
	rec, err := s.records.Get(ctx, key)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			s.logger.Debug("record missing, using default", zap.String("key", key))
		} else {
			s.logger.Warn("reading record failed, using default", zap.String("key", key), zap.Error(err))
		}
		return def
	}

	var v T
	if err := json.Unmarshal([]byte(rec.Value), &v); err != nil {
		s.logger.Warn("decoding record failed, using default", zap.String("key", key), zap.Error(err))
		return def
	}
	return v
}

// LoadString reads key as a plain string, returning def when it is missing.
func (s *Store) LoadString(ctx context.Context, key, def string) string {
	rec, err := s.records.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			s.logger.Warn("reading record failed, using default", zap.String("key", key), zap.Error(err))
		}
		return def
	}
	return rec.Value
}

// Save writes a single record.
func (s *Store) Save(ctx context.Context, key string, value any) error {
	encoded, err := encode(value)
	if err != nil {
		return fmt.Errorf("encoding record %q: %w", key, err)
	}
	return s.records.Put(ctx, key, encoded)
}

// SaveMany writes all entries in one transaction: either every record is
// updated or none is.
func (s *Store) SaveMany(ctx context.Context, entries ...Entry) error {
	encoded := make([]string, len(entries))
	for i, e := range entries {
		v, err := encode(e.Value)
		if err != nil {
			return fmt.Errorf("encoding record %q: %w", e.Key, err)
		}
		encoded[i] = v
	}

	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txRecords := repository.NewSQLiteRecordRepo(tx)
		for i, e := range entries {
			if err := txRecords.Put(ctx, e.Key, encoded[i]); err != nil {
				return err
			}
		}
		return nil
	})
}

func encode(value any) (string, error) {
	if s, ok := value.(string); ok {
		return s, nil
	}
	data, err := json.Marshal(value)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
