package sqlite_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/nemuelw/protodesk/internal/domain/entity"
	"github.com/nemuelw/protodesk/internal/infrastructure/persistence/sqlite"
	"github.com/nemuelw/protodesk/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCtx() context.Context {
	logger := logging.NewFromConfigValues("debug", "console")
	return logging.WithContext(context.Background(), logger)
}

func finishedTask(t *testing.T, name string, finishedAt time.Time, fail bool) *entity.DownloadTask {
	t.Helper()
	task := entity.NewDownloadTask(name)
	require.NoError(t, task.Accept("/home/u/Downloads/"+name))
	if fail {
		require.NoError(t, task.Fail("Network error"))
	} else {
		require.NoError(t, task.Complete())
	}
	task.FinishedAt = finishedAt
	return task
}

func TestDownloadHistoryRepository_RecordAndRecent(t *testing.T) {
	ctx := testCtx()
	db, err := sqlite.NewConnection(ctx, filepath.Join(t.TempDir(), "protodesk.sqlite"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	repo := sqlite.NewDownloadHistoryRepository(db)

	base := time.Now().Add(-time.Hour).Truncate(time.Millisecond)
	older := finishedTask(t, "report.pdf", base, false)
	newer := finishedTask(t, "archive.zip", base.Add(time.Minute), true)

	require.NoError(t, repo.Record(ctx, older))
	require.NoError(t, repo.Record(ctx, newer))

	got, err := repo.Recent(ctx, 10)
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, newer.ID, got[0].ID)
	assert.Equal(t, entity.DownloadFailed, got[0].State)
	assert.Equal(t, "Network error", got[0].LastError)
	assert.Equal(t, "/home/u/Downloads/archive.zip", got[0].SavePath)
	assert.True(t, newer.FinishedAt.Equal(got[0].FinishedAt))

	assert.Equal(t, older.ID, got[1].ID)
	assert.Equal(t, entity.DownloadCompleted, got[1].State)
	assert.Empty(t, got[1].LastError)
	assert.Equal(t, older.RequestedAt.UnixMilli(), got[1].RequestedAt.UnixMilli())

	limited, err := repo.Recent(ctx, 1)
	require.NoError(t, err)
	require.Len(t, limited, 1)
	assert.Equal(t, newer.ID, limited[0].ID)
}

func TestDownloadHistoryRepository_RecordIsUpsert(t *testing.T) {
	ctx := testCtx()
	db, err := sqlite.NewConnection(ctx, filepath.Join(t.TempDir(), "protodesk.sqlite"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	repo := sqlite.NewDownloadHistoryRepository(db)
	task := finishedTask(t, "notes.txt", time.Now(), false)

	require.NoError(t, repo.Record(ctx, task))
	require.NoError(t, repo.Record(ctx, task))

	got, err := repo.Recent(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestDownloadHistoryRepository_CancelledAndClear(t *testing.T) {
	ctx := testCtx()
	db, err := sqlite.NewConnection(ctx, filepath.Join(t.TempDir(), "protodesk.sqlite"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	repo := sqlite.NewDownloadHistoryRepository(db)
	task := entity.NewDownloadTask("declined.bin")
	require.NoError(t, task.Cancel())

	require.NoError(t, repo.Record(ctx, task))
	got, err := repo.Recent(ctx, 5)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, entity.DownloadCancelled, got[0].State)
	assert.Empty(t, got[0].SavePath)

	require.NoError(t, repo.Clear(ctx))
	got, err = repo.Recent(ctx, 5)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestDownloadHistoryRepository_RecordNil(t *testing.T) {
	ctx := testCtx()
	db, err := sqlite.NewConnection(ctx, filepath.Join(t.TempDir(), "protodesk.sqlite"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	assert.Error(t, sqlite.NewDownloadHistoryRepository(db).Record(ctx, nil))
}

func TestLazyDownloadHistoryRepository_OpensOnFirstUse(t *testing.T) {
	ctx := testCtx()
	lazy := sqlite.NewLazyDB(filepath.Join(t.TempDir(), "protodesk.sqlite"))
	t.Cleanup(func() { _ = lazy.Close() })

	repo := sqlite.NewLazyDownloadHistoryRepository(lazy)
	assert.False(t, lazy.IsInitialized())

	require.NoError(t, repo.Record(ctx, finishedTask(t, "a.txt", time.Now(), false)))
	assert.True(t, lazy.IsInitialized())

	got, err := repo.Recent(ctx, 5)
	require.NoError(t, err)
	assert.Len(t, got, 1)
}
