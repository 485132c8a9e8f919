package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/nemuelw/protodesk/internal/application/port"
	"github.com/nemuelw/protodesk/internal/application/port/mocks"
	"github.com/nemuelw/protodesk/internal/domain/entity"
	repomocks "github.com/nemuelw/protodesk/internal/domain/repository/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// fakeScheduler queues callbacks until the test runs them.
type fakeScheduler struct {
	pending []func()
	delays  []time.Duration
}

func (s *fakeScheduler) After(d time.Duration, fn func()) {
	s.delays = append(s.delays, d)
	s.pending = append(s.pending, fn)
}

// tick runs the callbacks queued so far and reports how many ran.
func (s *fakeScheduler) tick() int {
	batch := s.pending
	s.pending = nil
	for _, fn := range batch {
		fn()
	}
	return len(batch)
}

type fakeTransfer struct {
	suggested string
	uri       string
	dir       string
	name      string
	accepted  bool
	cancelled bool
	finished  bool
	state     port.TransferState
	errString string
	polls     int
}

func (f *fakeTransfer) SuggestedFilename() string { return f.suggested }
func (f *fakeTransfer) URI() string               { return f.uri }
func (f *fakeTransfer) SetDestination(dir, name string) {
	f.dir = dir
	f.name = name
}
func (f *fakeTransfer) Accept() { f.accepted = true }
func (f *fakeTransfer) Cancel() {
	f.cancelled = true
	f.finished = true
	f.state = port.TransferCancelled
}
func (f *fakeTransfer) IsFinished() bool {
	f.polls++
	return f.finished
}
func (f *fakeTransfer) State() port.TransferState { return f.state }
func (f *fakeTransfer) ErrorString() string       { return f.errString }

func (f *fakeTransfer) complete() {
	f.finished = true
	f.state = port.TransferCompleted
}

func (f *fakeTransfer) fail(msg string) {
	f.finished = true
	f.state = port.TransferFailed
	f.errString = msg
}

// fakeChooser answers immediately, or stores the callback when deferred is set.
type fakeChooser struct {
	path      string
	ok        bool
	deferred  bool
	suggested string
	done      func(string, bool)
}

func (c *fakeChooser) ChooseSaveLocation(_ context.Context, suggestedName string, done func(string, bool)) {
	c.suggested = suggestedName
	if c.deferred {
		c.done = done
		return
	}
	done(c.path, c.ok)
}

func TestDownloadWatcher_CompletedTransferNotifiesOnce(t *testing.T) {
	ctx := context.Background()
	sched := &fakeScheduler{}
	chooser := &fakeChooser{path: "/home/u/Downloads/report.pdf", ok: true}
	notifier := mocks.NewMockNotifier(t)
	notifier.EXPECT().Notify(mock.Anything, port.Notification{
		Title:     TitleDownloadComplete,
		Body:      "report.pdf has been downloaded successfully",
		Type:      port.NotificationSuccess,
		TimeoutMs: DefaultNotificationTimeoutMs,
	}).Return(nil).Once()

	w := NewDownloadWatcher(chooser, notifier, sched, nil, DownloadWatcherConfig{})
	transfer := &fakeTransfer{suggested: "report.pdf"}

	task := w.HandleRequest(ctx, transfer)

	assert.Equal(t, "report.pdf", chooser.suggested)
	assert.Equal(t, entity.DownloadRequested, task.State)
	assert.True(t, transfer.accepted)
	assert.Equal(t, "/home/u/Downloads", transfer.dir)
	assert.Equal(t, "report.pdf", transfer.name)

	active := w.Active()
	require.Len(t, active, 1)
	assert.Equal(t, entity.DownloadAccepted, active[0].State)
	assert.Equal(t, task.ID, active[0].ID)

	// Three polls while in progress, no notification yet.
	for i := 0; i < 3; i++ {
		require.Equal(t, 1, sched.tick())
	}
	notifier.AssertNotCalled(t, "Notify", mock.Anything, mock.Anything)

	transfer.complete()
	require.Equal(t, 1, sched.tick())

	assert.Empty(t, sched.pending, "no polls after terminal state")
	assert.Empty(t, w.Active())
	assert.Equal(t, 5, transfer.polls)
	for _, d := range sched.delays {
		assert.Equal(t, DefaultPollInterval, d)
	}
}

func TestDownloadWatcher_DeclinedSaveDialogCancels(t *testing.T) {
	ctx := context.Background()
	sched := &fakeScheduler{}
	notifier := mocks.NewMockNotifier(t)
	history := repomocks.NewMockDownloadHistoryRepository(t)
	history.EXPECT().Record(mock.Anything, mock.MatchedBy(func(task *entity.DownloadTask) bool {
		return task.State == entity.DownloadCancelled && task.SavePath == ""
	})).Return(nil).Once()

	w := NewDownloadWatcher(&fakeChooser{ok: false}, notifier, sched, history, DownloadWatcherConfig{})
	transfer := &fakeTransfer{suggested: "report.pdf"}

	w.HandleRequest(ctx, transfer)

	assert.True(t, transfer.cancelled)
	assert.False(t, transfer.accepted)
	assert.Empty(t, sched.pending)
	assert.Empty(t, w.Active())
	notifier.AssertNotCalled(t, "Notify", mock.Anything, mock.Anything)
}

func TestDownloadWatcher_FailedTransferReportsError(t *testing.T) {
	tests := []struct {
		name     string
		errText  string
		wantBody string
	}{
		{name: "engine message", errText: "Network error", wantBody: "Network error"},
		{name: "empty message", errText: "", wantBody: "download failed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			sched := &fakeScheduler{}
			notifier := mocks.NewMockNotifier(t)
			notifier.EXPECT().Notify(mock.Anything, mock.MatchedBy(func(n port.Notification) bool {
				return n.Title == TitleDownloadFailed && n.Body == tt.wantBody && n.Type == port.NotificationError
			})).Return(nil).Once()
			history := repomocks.NewMockDownloadHistoryRepository(t)
			history.EXPECT().Record(mock.Anything, mock.MatchedBy(func(task *entity.DownloadTask) bool {
				return task.State == entity.DownloadFailed && task.LastError == tt.wantBody
			})).Return(nil).Once()

			chooser := &fakeChooser{path: "/tmp/archive.zip", ok: true}
			w := NewDownloadWatcher(chooser, notifier, sched, history, DownloadWatcherConfig{})
			transfer := &fakeTransfer{suggested: "archive.zip"}

			w.HandleRequest(ctx, transfer)
			require.Equal(t, 1, sched.tick())

			transfer.fail(tt.errText)
			require.Equal(t, 1, sched.tick())
			assert.Zero(t, sched.tick())
		})
	}
}

func TestDownloadWatcher_AlreadyFinishedOnFirstPoll(t *testing.T) {
	ctx := context.Background()
	sched := &fakeScheduler{}
	notifier := mocks.NewMockNotifier(t)
	notifier.EXPECT().Notify(mock.Anything, mock.Anything).Return(nil).Once()

	chooser := &fakeChooser{path: "/tmp/tiny.txt", ok: true}
	w := NewDownloadWatcher(chooser, notifier, sched, nil, DownloadWatcherConfig{})
	transfer := &fakeTransfer{suggested: "tiny.txt"}
	transfer.complete()

	w.HandleRequest(ctx, transfer)

	assert.Empty(t, sched.pending)
	assert.Equal(t, 1, transfer.polls)
}

func TestDownloadWatcher_ConcurrentTasksAreIndependent(t *testing.T) {
	ctx := context.Background()
	sched := &fakeScheduler{}
	notifier := mocks.NewMockNotifier(t)
	notifier.EXPECT().Notify(mock.Anything, mock.MatchedBy(func(n port.Notification) bool {
		return n.Title == TitleDownloadComplete
	})).Return(nil).Once()
	notifier.EXPECT().Notify(mock.Anything, mock.MatchedBy(func(n port.Notification) bool {
		return n.Title == TitleDownloadFailed
	})).Return(nil).Once()

	chooserA := &fakeChooser{path: "/tmp/a.bin", ok: true}
	w := NewDownloadWatcher(chooserA, notifier, sched, nil, DownloadWatcherConfig{PollInterval: time.Second})
	first := &fakeTransfer{suggested: "a.bin"}
	second := &fakeTransfer{suggested: "b.bin"}

	w.HandleRequest(ctx, first)
	w.HandleRequest(ctx, second)
	require.Len(t, w.Active(), 2)

	first.complete()
	require.Equal(t, 2, sched.tick())
	require.Len(t, w.Active(), 1)
	assert.False(t, second.cancelled)

	second.fail("disk full")
	require.Equal(t, 1, sched.tick())
	assert.Empty(t, w.Active())
	assert.Equal(t, []time.Duration{time.Second, time.Second, time.Second}, sched.delays)
}

func TestDownloadWatcher_NotifierErrorIsNotRetried(t *testing.T) {
	ctx := context.Background()
	sched := &fakeScheduler{}
	notifier := mocks.NewMockNotifier(t)
	notifier.EXPECT().Notify(mock.Anything, mock.Anything).Return(errors.New("no bus")).Once()

	chooser := &fakeChooser{path: "/tmp/x.iso", ok: true}
	w := NewDownloadWatcher(chooser, notifier, sched, nil, DownloadWatcherConfig{})
	transfer := &fakeTransfer{suggested: "x.iso"}
	transfer.complete()

	w.HandleRequest(ctx, transfer)

	assert.Empty(t, sched.pending)
	assert.Empty(t, w.Active())
}

func TestDownloadWatcher_HistoryErrorIsLogged(t *testing.T) {
	ctx := context.Background()
	sched := &fakeScheduler{}
	notifier := mocks.NewMockNotifier(t)
	notifier.EXPECT().Notify(mock.Anything, mock.Anything).Return(nil).Once()
	history := repomocks.NewMockDownloadHistoryRepository(t)
	history.EXPECT().Record(mock.Anything, mock.Anything).Return(errors.New("db locked")).Once()

	chooser := &fakeChooser{path: "/tmp/x.iso", ok: true}
	w := NewDownloadWatcher(chooser, notifier, sched, history, DownloadWatcherConfig{})
	transfer := &fakeTransfer{suggested: "x.iso"}
	transfer.complete()

	w.HandleRequest(ctx, transfer)
	assert.Empty(t, w.Active())
}

func TestDownloadWatcher_DelayedChooserAnswer(t *testing.T) {
	ctx := context.Background()
	sched := &fakeScheduler{}
	notifier := mocks.NewMockNotifier(t)
	notifier.EXPECT().Notify(mock.Anything, mock.Anything).Return(nil).Once()

	chooser := &fakeChooser{deferred: true}
	w := NewDownloadWatcher(chooser, notifier, sched, nil, DownloadWatcherConfig{})
	transfer := &fakeTransfer{suggested: ""}

	w.HandleRequest(ctx, transfer)
	assert.Equal(t, "download", chooser.suggested)
	assert.Empty(t, w.Active())
	assert.False(t, transfer.accepted)

	require.NotNil(t, chooser.done)
	chooser.done("/tmp/download", true)
	require.Len(t, w.Active(), 1)

	// A second answer for the same request is ignored.
	chooser.done("", false)
	assert.False(t, transfer.cancelled)

	transfer.complete()
	require.Equal(t, 1, sched.tick())
	assert.Empty(t, w.Active())
}

func TestDownloadWatcher_SuggestedNameFromURIAndSanitized(t *testing.T) {
	tests := []struct {
		name      string
		suggested string
		uri       string
		want      string
	}{
		{name: "suggested wins", suggested: "invoice.pdf", uri: "https://drive.proton.me/x/other.pdf", want: "invoice.pdf"},
		{name: "uri fallback", suggested: "", uri: "https://drive.proton.me/files/photo.jpg?dl=1", want: "photo.jpg"},
		{name: "traversal stripped", suggested: "../../etc/passwd", want: "passwd"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			chooser := &fakeChooser{ok: false}
			w := NewDownloadWatcher(chooser, mocks.NewMockNotifier(t), &fakeScheduler{}, nil, DownloadWatcherConfig{})

			task := w.HandleRequest(context.Background(), &fakeTransfer{suggested: tt.suggested, uri: tt.uri})

			assert.Equal(t, tt.want, chooser.suggested)
			assert.Equal(t, tt.want, task.SuggestedName)
		})
	}
}
