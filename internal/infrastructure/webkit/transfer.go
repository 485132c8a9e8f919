package webkit

import (
	"path/filepath"
	"sync"

	"github.com/nemuelw/protodesk/internal/application/port"
)

// nativeDownload is the part of *webkit.Download a Transfer drives.
type nativeDownload interface {
	SetDestination(destination string)
	SetAllowOverwrite(allowed bool)
	Cancel()
}

// Transfer adapts one WebKit download to port.Transfer. Its state is updated
// from the download's failed and finished signals and read by the watcher's
// polls.
type Transfer struct {
	download nativeDownload
	uri      string

	mu          sync.Mutex
	suggested   string
	destination string
	state       port.TransferState
	errMsg      string
}

var _ port.Transfer = (*Transfer)(nil)

func newTransfer(d nativeDownload, uri, suggested string) *Transfer {
	return &Transfer{
		download:  d,
		uri:       uri,
		suggested: suggested,
		state:     port.TransferInProgress,
	}
}

// SuggestedFilename implements port.Transfer.
func (t *Transfer) SuggestedFilename() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.suggested
}

func (t *Transfer) setSuggested(name string) {
	t.mu.Lock()
	t.suggested = name
	t.mu.Unlock()
}

// URI implements port.Transfer.
func (t *Transfer) URI() string { return t.uri }

// SetDestination implements port.Transfer. The path is handed to WebKit on Accept.
func (t *Transfer) SetDestination(dir, name string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.destination = filepath.Join(dir, name)
}

// Accept implements port.Transfer. WebKit resumes the download once its
// destination is set; the user already confirmed any overwrite in the chooser.
func (t *Transfer) Accept() {
	t.mu.Lock()
	dest := t.destination
	t.mu.Unlock()

	if dest == "" {
		t.Cancel()
		return
	}
	t.download.SetAllowOverwrite(true)
	t.download.SetDestination(dest)
}

// Cancel implements port.Transfer.
func (t *Transfer) Cancel() {
	t.mu.Lock()
	if t.state == port.TransferInProgress {
		t.state = port.TransferCancelled
	}
	t.mu.Unlock()
	t.download.Cancel()
}

// IsFinished implements port.Transfer.
func (t *Transfer) IsFinished() bool {
	return t.State() != port.TransferInProgress
}

// State implements port.Transfer.
func (t *Transfer) State() port.TransferState {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.state
}

// ErrorString implements port.Transfer.
func (t *Transfer) ErrorString() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.errMsg
}

// Destination returns the absolute path the file is written to.
func (t *Transfer) Destination() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.destination
}

// markFailed records a failure. WebKit emits finished after failed, so the
// first terminal signal wins.
func (t *Transfer) markFailed(err error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.state != port.TransferInProgress {
		return
	}
	t.state = port.TransferFailed
	if err != nil {
		t.errMsg = err.Error()
	}
}

func (t *Transfer) markFinished() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.state != port.TransferInProgress {
		return
	}
	t.state = port.TransferCompleted
}
