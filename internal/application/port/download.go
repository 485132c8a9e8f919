package port

// TransferState is the engine-side state of a file transfer.
type TransferState int

const (
	// TransferInProgress means bytes are still being received.
	TransferInProgress TransferState = iota
	// TransferCompleted means the file was written.
	TransferCompleted
	// TransferFailed means the engine reported an error.
	TransferFailed
	// TransferCancelled means the transfer was cancelled.
	TransferCancelled
)

// String returns a human-readable representation of the transfer state.
func (s TransferState) String() string {
	switch s {
	case TransferInProgress:
		return "in-progress"
	case TransferCompleted:
		return "completed"
	case TransferFailed:
		return "failed"
	case TransferCancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// Transfer is the embedded view's handle on one file download request.
type Transfer interface {
	// SuggestedFilename is the name proposed by the server or page.
	SuggestedFilename() string
	// URI is the address being downloaded; may be empty.
	URI() string
	// SetDestination configures where the file is written.
	SetDestination(dir, name string)
	// Accept starts writing to the configured destination.
	Accept()
	// Cancel aborts the request.
	Cancel()
	// IsFinished reports whether the transfer reached a terminal state.
	IsFinished() bool
	// State returns the current transfer state.
	State() TransferState
	// ErrorString describes the failure; empty unless State is TransferFailed.
	ErrorString() string
}
