package entity

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// DownloadState is the lifecycle state of a DownloadTask.
type DownloadState string

const (
	// DownloadRequested means the web view asked for a transfer and the user
	// has not picked a save location yet.
	DownloadRequested DownloadState = "requested"
	// DownloadAccepted means a save location was chosen and the transfer runs.
	DownloadAccepted DownloadState = "accepted"
	// DownloadCancelled means the user declined the save dialog.
	DownloadCancelled DownloadState = "cancelled"
	// DownloadCompleted means the file was written successfully.
	DownloadCompleted DownloadState = "completed"
	// DownloadFailed means the transfer ended with an error.
	DownloadFailed DownloadState = "failed"
)

// ErrInvalidTransition is returned when a DownloadTask is moved to a state
// its current state cannot reach.
var ErrInvalidTransition = errors.New("invalid download state transition")

// String returns the string representation of DownloadState
func (s DownloadState) String() string {
	return string(s)
}

// IsTerminal returns true for states after which no transition occurs.
func (s DownloadState) IsTerminal() bool {
	return s == DownloadCompleted || s == DownloadFailed || s == DownloadCancelled
}

// DownloadID uniquely identifies a download task.
type DownloadID string

// DownloadTask tracks one file transfer from request to terminal state.
type DownloadTask struct {
	ID            DownloadID
	SuggestedName string
	SavePath      string // empty until the user confirms a location
	State         DownloadState
	LastError     string // only set in DownloadFailed
	RequestedAt   time.Time
	FinishedAt    time.Time
}

// NewDownloadTask creates a task in the Requested state.
func NewDownloadTask(suggestedName string) *DownloadTask {
	return &DownloadTask{
		ID:            DownloadID(uuid.NewString()),
		SuggestedName: suggestedName,
		State:         DownloadRequested,
		RequestedAt:   time.Now(),
	}
}

// Accept records the chosen save path. Valid only from Requested.
func (t *DownloadTask) Accept(savePath string) error {
	if t.State != DownloadRequested {
		return t.invalid(DownloadAccepted)
	}
	if savePath == "" {
		return fmt.Errorf("%w: empty save path", ErrInvalidTransition)
	}
	t.SavePath = savePath
	t.State = DownloadAccepted
	return nil
}

// Cancel marks a declined request. Valid only from Requested.
func (t *DownloadTask) Cancel() error {
	if t.State != DownloadRequested {
		return t.invalid(DownloadCancelled)
	}
	t.State = DownloadCancelled
	t.FinishedAt = time.Now()
	return nil
}

// Complete marks a successful transfer. Valid only from Accepted.
func (t *DownloadTask) Complete() error {
	if t.State != DownloadAccepted {
		return t.invalid(DownloadCompleted)
	}
	t.State = DownloadCompleted
	t.FinishedAt = time.Now()
	return nil
}

// Fail marks a failed transfer with its error description. Valid only from Accepted.
func (t *DownloadTask) Fail(reason string) error {
	if t.State != DownloadAccepted {
		return t.invalid(DownloadFailed)
	}
	t.State = DownloadFailed
	t.LastError = reason
	t.FinishedAt = time.Now()
	return nil
}

func (t *DownloadTask) invalid(to DownloadState) error {
	return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, t.State, to)
}
