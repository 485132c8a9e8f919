package repository

import (
	"context"

	"github.com/nemuelw/protodesk/internal/domain/entity"
)

// DownloadHistoryRepository persists the terminal outcome of download tasks.
type DownloadHistoryRepository interface {
	// Record stores a task that reached a terminal state.
	Record(ctx context.Context, task *entity.DownloadTask) error

	// Recent returns up to limit tasks, most recently finished first.
	Recent(ctx context.Context, limit int) ([]*entity.DownloadTask, error)

	// Clear removes every stored entry.
	Clear(ctx context.Context) error
}
