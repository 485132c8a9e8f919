package sqlite

import (
	"context"
	"sync"

	"github.com/nemuelw/protodesk/internal/application/port"
	"github.com/nemuelw/protodesk/internal/domain/entity"
	"github.com/nemuelw/protodesk/internal/domain/repository"
)

// LazyDownloadHistoryRepository wraps the download history repository with
// lazy database initialization.
type LazyDownloadHistoryRepository struct {
	provider port.DatabaseProvider
	repo     repository.DownloadHistoryRepository
	once     sync.Once
	initErr  error
}

// NewLazyDownloadHistoryRepository creates a lazy-loading download history repository.
func NewLazyDownloadHistoryRepository(provider port.DatabaseProvider) repository.DownloadHistoryRepository {
	return &LazyDownloadHistoryRepository{provider: provider}
}

func (r *LazyDownloadHistoryRepository) init(ctx context.Context) error {
	r.once.Do(func() {
		db, err := r.provider.DB(ctx)
		if err != nil {
			r.initErr = err
			return
		}
		r.repo = NewDownloadHistoryRepository(db)
	})
	return r.initErr
}

func (r *LazyDownloadHistoryRepository) Record(ctx context.Context, task *entity.DownloadTask) error {
	if err := r.init(ctx); err != nil {
		return err
	}
	return r.repo.Record(ctx, task)
}

func (r *LazyDownloadHistoryRepository) Recent(ctx context.Context, limit int) ([]*entity.DownloadTask, error) {
	if err := r.init(ctx); err != nil {
		return nil, err
	}
	return r.repo.Recent(ctx, limit)
}

func (r *LazyDownloadHistoryRepository) Clear(ctx context.Context) error {
	if err := r.init(ctx); err != nil {
		return err
	}
	return r.repo.Clear(ctx)
}
