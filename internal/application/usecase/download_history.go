package usecase

import (
	"context"
	"fmt"

	"github.com/nemuelw/protodesk/internal/domain/entity"
	"github.com/nemuelw/protodesk/internal/domain/repository"
	"github.com/nemuelw/protodesk/internal/logging"
)

const defaultHistoryLimit = 20

// DownloadHistoryUseCase reads and clears recorded download outcomes.
type DownloadHistoryUseCase struct {
	historyRepo repository.DownloadHistoryRepository
}

// NewDownloadHistoryUseCase creates a new download history use case.
func NewDownloadHistoryUseCase(historyRepo repository.DownloadHistoryRepository) *DownloadHistoryUseCase {
	return &DownloadHistoryUseCase{historyRepo: historyRepo}
}

// DownloadSummary counts recorded outcomes per terminal state.
type DownloadSummary struct {
	Completed int
	Failed    int
	Cancelled int
}

// RecentOutput contains the most recent outcomes and their tally.
type RecentOutput struct {
	Tasks   []*entity.DownloadTask
	Summary DownloadSummary
}

// Recent returns up to limit outcomes, newest first.
func (uc *DownloadHistoryUseCase) Recent(ctx context.Context, limit int) (*RecentOutput, error) {
	if limit <= 0 {
		limit = defaultHistoryLimit
	}

	tasks, err := uc.historyRepo.Recent(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list download history: %w", err)
	}

	out := &RecentOutput{Tasks: tasks}
	for _, task := range tasks {
		switch task.State {
		case entity.DownloadCompleted:
			out.Summary.Completed++
		case entity.DownloadFailed:
			out.Summary.Failed++
		case entity.DownloadCancelled:
			out.Summary.Cancelled++
		}
	}

	logging.FromContext(ctx).Debug().
		Int("count", len(tasks)).
		Int("limit", limit).
		Msg("download history listed")

	return out, nil
}

// Clear removes all recorded outcomes.
func (uc *DownloadHistoryUseCase) Clear(ctx context.Context) error {
	if err := uc.historyRepo.Clear(ctx); err != nil {
		return fmt.Errorf("failed to clear download history: %w", err)
	}
	logging.FromContext(ctx).Info().Msg("download history cleared")
	return nil
}
