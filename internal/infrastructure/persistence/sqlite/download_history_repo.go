// Package sqlite provides SQLite implementations of domain repositories.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/nemuelw/protodesk/internal/domain/entity"
	"github.com/nemuelw/protodesk/internal/domain/repository"
	"github.com/nemuelw/protodesk/internal/infrastructure/persistence/sqlite/sqlc"
	"github.com/nemuelw/protodesk/internal/logging"
)

// defaultRecentLimit is used when Recent is called with a non-positive limit.
const defaultRecentLimit = 20

type downloadHistoryRepo struct {
	queries *sqlc.Queries
}

// NewDownloadHistoryRepository creates a new SQLite-backed download history repository.
func NewDownloadHistoryRepository(db *sql.DB) repository.DownloadHistoryRepository {
	return &downloadHistoryRepo{queries: sqlc.New(db)}
}

func (r *downloadHistoryRepo) Record(ctx context.Context, task *entity.DownloadTask) error {
	if task == nil {
		return fmt.Errorf("download task is nil")
	}
	logging.FromContext(ctx).Debug().
		Str("download_id", string(task.ID)).
		Stringer("state", task.State).
		Msg("recording download outcome")

	finished := task.FinishedAt
	if finished.IsZero() {
		finished = time.Now()
	}
	return r.queries.UpsertDownload(ctx, sqlc.UpsertDownloadParams{
		ID:            string(task.ID),
		SuggestedName: task.SuggestedName,
		SavePath:      task.SavePath,
		State:         string(task.State),
		LastError:     task.LastError,
		RequestedAt:   task.RequestedAt.UnixMilli(),
		FinishedAt:    finished.UnixMilli(),
	})
}

func (r *downloadHistoryRepo) Recent(ctx context.Context, limit int) ([]*entity.DownloadTask, error) {
	if limit <= 0 {
		limit = defaultRecentLimit
	}
	rows, err := r.queries.ListRecentDownloads(ctx, int64(limit))
	if err != nil {
		return nil, err
	}
	tasks := make([]*entity.DownloadTask, 0, len(rows))
	for _, row := range rows {
		tasks = append(tasks, downloadFromRow(row))
	}
	return tasks, nil
}

func (r *downloadHistoryRepo) Clear(ctx context.Context) error {
	return r.queries.DeleteAllDownloads(ctx)
}

func downloadFromRow(row sqlc.DownloadHistory) *entity.DownloadTask {
	return &entity.DownloadTask{
		ID:            entity.DownloadID(row.ID),
		SuggestedName: row.SuggestedName,
		SavePath:      row.SavePath,
		State:         entity.DownloadState(row.State),
		LastError:     row.LastError,
		RequestedAt:   time.UnixMilli(row.RequestedAt),
		FinishedAt:    time.UnixMilli(row.FinishedAt),
	}
}
