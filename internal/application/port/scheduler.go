package port

import "time"

// Scheduler runs deferred callbacks on the UI thread.
type Scheduler interface {
	// After runs fn once after d has elapsed. It never blocks the caller.
	After(d time.Duration, fn func())
}
