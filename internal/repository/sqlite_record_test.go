package repository

import (
	"context"
	"testing"

	"github.com/alexanderramin/lessonplan/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordRepo_PutAndGet(t *testing.T) {
	repo := NewSQLiteRecordRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Put(ctx, "lessonplan_cloud_url", "https://example.com/exec"))

	rec, err := repo.Get(ctx, "lessonplan_cloud_url")
	require.NoError(t, err)
	assert.Equal(t, "lessonplan_cloud_url", rec.Key)
	assert.Equal(t, "https://example.com/exec", rec.Value)
	assert.False(t, rec.UpdatedAt.IsZero())
}

func TestRecordRepo_PutOverwrites(t *testing.T) {
	repo := NewSQLiteRecordRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Put(ctx, "k", "first"))
	require.NoError(t, repo.Put(ctx, "k", "second"))

	rec, err := repo.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "second", rec.Value)

	all, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestRecordRepo_GetMissing(t *testing.T) {
	repo := NewSQLiteRecordRepo(testutil.NewTestDB(t))

	_, err := repo.Get(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRecordRepo_DeleteAndList(t *testing.T) {
	repo := NewSQLiteRecordRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Put(ctx, "b", "2"))
	require.NoError(t, repo.Put(ctx, "a", "1"))
	require.NoError(t, repo.Delete(ctx, "b"))
	require.NoError(t, repo.Delete(ctx, "never-existed"))

	all, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "a", all[0].Key)
}
