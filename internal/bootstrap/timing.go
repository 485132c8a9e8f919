package bootstrap

import (
	"context"
	"sync"
	"time"

	"github.com/nemuelw/protodesk/internal/logging"
	"github.com/rs/zerolog"
)

// StartupTimer records how long each startup phase took.
// Safe for concurrent use by parallel init goroutines.
type StartupTimer struct {
	mu     sync.Mutex
	start  time.Time
	last   time.Time
	phases []phase
}

type phase struct {
	name string
	dur  time.Duration
}

// NewStartupTimer starts a timer now.
func NewStartupTimer() *StartupTimer {
	now := time.Now()
	return &StartupTimer{start: now, last: now}
}

// Mark records the time since the previous mark under name.
func (t *StartupTimer) Mark(name string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	now := time.Now()
	t.phases = append(t.phases, phase{name: name, dur: now.Sub(t.last)})
	t.last = now
}

// Measure runs fn and records its own duration under name, independently of
// the mark sequence.
func (t *StartupTimer) Measure(name string, fn func() error) error {
	begin := time.Now()
	err := fn()
	d := time.Since(begin)

	t.mu.Lock()
	t.phases = append(t.phases, phase{name: name, dur: d})
	t.mu.Unlock()
	return err
}

// Phase returns the recorded duration of name.
func (t *StartupTimer) Phase(name string) (time.Duration, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	for _, p := range t.phases {
		if p.name == name {
			return p.dur, true
		}
	}
	return 0, false
}

// Total returns the time elapsed since the timer started.
func (t *StartupTimer) Total() time.Duration {
	t.mu.Lock()
	defer t.mu.Unlock()
	return time.Since(t.start)
}

// Log writes all phases at level to the context logger.
func (t *StartupTimer) Log(ctx context.Context, level zerolog.Level) {
	t.mu.Lock()
	defer t.mu.Unlock()

	event := logging.FromContext(ctx).WithLevel(level).Dur("total", time.Since(t.start))
	for _, p := range t.phases {
		event = event.Dur(p.name, p.dur)
	}
	event.Msg("startup timing")
}
