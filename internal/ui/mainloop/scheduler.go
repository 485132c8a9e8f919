// Package mainloop schedules work on the GTK main loop.
package mainloop

import (
	"time"

	"github.com/diamondburned/gotk4/pkg/glib/v2"
	"github.com/nemuelw/protodesk/internal/application/port"
)

// Scheduler implements port.Scheduler with GLib timeouts. Each callback runs
// once: the source returns false so a poll schedules its own successor.
type Scheduler struct {
	timeoutAdd func(ms uint, fn func() bool)
}

var _ port.Scheduler = (*Scheduler)(nil)

// NewScheduler creates a scheduler backed by glib.TimeoutAdd.
func NewScheduler() *Scheduler {
	return &Scheduler{
		timeoutAdd: func(ms uint, fn func() bool) { glib.TimeoutAdd(ms, fn) },
	}
}

// After implements port.Scheduler.
func (s *Scheduler) After(d time.Duration, fn func()) {
	if fn == nil {
		return
	}
	s.timeoutAdd(toMillis(d), func() bool {
		fn()
		return false
	})
}

// Post runs fn on the main loop as soon as it is idle. Safe from any goroutine.
func Post(fn func()) {
	if fn == nil {
		return
	}
	glib.IdleAdd(func() bool {
		fn()
		return false
	})
}

func toMillis(d time.Duration) uint {
	if d <= 0 {
		return 0
	}
	ms := d.Milliseconds()
	if ms == 0 {
		ms = 1
	}
	return uint(ms)
}
