package usecase

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/nemuelw/protodesk/internal/application/port"
	"github.com/nemuelw/protodesk/internal/domain/download"
	"github.com/nemuelw/protodesk/internal/domain/entity"
	"github.com/nemuelw/protodesk/internal/domain/repository"
	"github.com/nemuelw/protodesk/internal/logging"
)

const (
	// DefaultPollInterval is the delay between two transfer status checks.
	DefaultPollInterval = 500 * time.Millisecond

	// DefaultNotificationTimeoutMs is how long download notifications stay visible.
	DefaultNotificationTimeoutMs = 5000

	// defaultFailureReason is reported when the engine gives no error text.
	defaultFailureReason = "download failed"
)

// Notification titles for terminal download outcomes.
const (
	TitleDownloadComplete = "Download Complete"
	TitleDownloadFailed   = "Download Failed"
)

// DownloadWatcherConfig holds the tunables of a DownloadWatcher.
type DownloadWatcherConfig struct {
	PollInterval          time.Duration
	NotificationTimeoutMs int
}

// DownloadWatcher drives each download request from the save prompt to a
// single terminal notification.
type DownloadWatcher struct {
	chooser   port.SaveLocationChooser
	notifier  port.Notifier
	scheduler port.Scheduler
	history   repository.DownloadHistoryRepository // optional

	interval  time.Duration
	timeoutMs int

	mu     sync.Mutex
	active map[entity.DownloadID]*entity.DownloadTask
}

// NewDownloadWatcher creates a watcher. history may be nil.
func NewDownloadWatcher(
	chooser port.SaveLocationChooser,
	notifier port.Notifier,
	scheduler port.Scheduler,
	history repository.DownloadHistoryRepository,
	cfg DownloadWatcherConfig,
) *DownloadWatcher {
	if cfg.PollInterval <= 0 {
		cfg.PollInterval = DefaultPollInterval
	}
	if cfg.NotificationTimeoutMs <= 0 {
		cfg.NotificationTimeoutMs = DefaultNotificationTimeoutMs
	}
	return &DownloadWatcher{
		chooser:   chooser,
		notifier:  notifier,
		scheduler: scheduler,
		history:   history,
		interval:  cfg.PollInterval,
		timeoutMs: cfg.NotificationTimeoutMs,
		active:    make(map[entity.DownloadID]*entity.DownloadTask),
	}
}

// HandleRequest starts tracking a transfer the embedded view asked for.
// It prompts for a save location and returns the new task; the task state
// advances asynchronously as the prompt and the transfer progress.
func (w *DownloadWatcher) HandleRequest(ctx context.Context, transfer port.Transfer) entity.DownloadTask {
	name := download.ResolveSuggestedName(transfer.SuggestedFilename(), transfer.URI())
	task := entity.NewDownloadTask(name)
	ctx = logging.WithDownloadID(ctx, string(task.ID))
	if uri := transfer.URI(); uri != "" {
		ctx = logging.WithURL(ctx, logging.TruncateURL(uri, logURLMaxLen))
	}

	logging.FromContext(ctx).Debug().
		Str("suggested", transfer.SuggestedFilename()).
		Str("resolved", name).
		Msg("download requested")

	snapshot := *task
	w.chooser.ChooseSaveLocation(ctx, name, func(path string, ok bool) {
		w.onLocationChosen(ctx, task, transfer, path, ok)
	})
	return snapshot
}

func (w *DownloadWatcher) onLocationChosen(
	ctx context.Context,
	task *entity.DownloadTask,
	transfer port.Transfer,
	path string,
	ok bool,
) {
	log := logging.FromContext(ctx)

	if !ok || path == "" {
		w.mu.Lock()
		err := task.Cancel()
		w.mu.Unlock()
		if err != nil {
			log.Warn().Err(err).Msg("ignoring duplicate save location answer")
			return
		}
		transfer.Cancel()
		log.Info().Msg("download cancelled by user")
		w.record(ctx, task)
		return
	}

	w.mu.Lock()
	err := task.Accept(path)
	if err == nil {
		w.active[task.ID] = task
	}
	w.mu.Unlock()
	if err != nil {
		log.Warn().Err(err).Msg("ignoring duplicate save location answer")
		return
	}

	dir, file := download.SplitSavePath(path)
	transfer.SetDestination(dir, file)
	transfer.Accept()

	log.Info().Str("path", path).Msg("download accepted")
	w.poll(ctx, task, transfer)
}

// poll checks the transfer once and reschedules itself until it is finished.
func (w *DownloadWatcher) poll(ctx context.Context, task *entity.DownloadTask, transfer port.Transfer) {
	if !transfer.IsFinished() {
		w.scheduler.After(w.interval, func() {
			w.poll(ctx, task, transfer)
		})
		return
	}
	w.finish(ctx, task, transfer)
}

func (w *DownloadWatcher) finish(ctx context.Context, task *entity.DownloadTask, transfer port.Transfer) {
	log := logging.FromContext(ctx)

	state := transfer.State()
	reason := ""
	if state != port.TransferCompleted {
		reason = transfer.ErrorString()
		if reason == "" {
			reason = defaultFailureReason
		}
	}

	w.mu.Lock()
	var err error
	if state == port.TransferCompleted {
		err = task.Complete()
	} else {
		err = task.Fail(reason)
	}
	delete(w.active, task.ID)
	w.mu.Unlock()

	if err != nil {
		log.Warn().Err(err).Msg("download already reported")
		return
	}

	n := port.Notification{TimeoutMs: w.timeoutMs}
	if state == port.TransferCompleted {
		_, file := download.SplitSavePath(task.SavePath)
		n.Title = TitleDownloadComplete
		n.Body = fmt.Sprintf("%s has been downloaded successfully", file)
		n.Type = port.NotificationSuccess
		log.Info().Str("path", task.SavePath).Msg("download completed")
	} else {
		n.Title = TitleDownloadFailed
		n.Body = reason
		n.Type = port.NotificationError
		log.Warn().Str("reason", reason).Stringer("transfer_state", state).Msg("download failed")
	}

	if err := w.notifier.Notify(ctx, n); err != nil {
		log.Error().Err(err).Msg("failed to send download notification")
	}
	w.record(ctx, task)
}

func (w *DownloadWatcher) record(ctx context.Context, task *entity.DownloadTask) {
	if w.history == nil {
		return
	}
	w.mu.Lock()
	snapshot := *task
	w.mu.Unlock()
	if err := w.history.Record(ctx, &snapshot); err != nil {
		logging.FromContext(ctx).Error().Err(err).Msg("failed to record download history")
	}
}

// Active returns a snapshot of the tasks still being polled, oldest first.
func (w *DownloadWatcher) Active() []entity.DownloadTask {
	w.mu.Lock()
	defer w.mu.Unlock()

	out := make([]entity.DownloadTask, 0, len(w.active))
	for _, task := range w.active {
		out = append(out, *task)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].RequestedAt.Before(out[j].RequestedAt)
	})
	return out
}
