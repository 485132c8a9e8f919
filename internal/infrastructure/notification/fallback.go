package notification

import (
	"context"
	"errors"

	"github.com/nemuelw/protodesk/internal/application/port"
	"github.com/nemuelw/protodesk/internal/logging"
)

// Fallback tries each notifier in order until one accepts the notification.
type Fallback []port.Notifier

// Notify implements port.Notifier.
func (f Fallback) Notify(ctx context.Context, n port.Notification) error {
	var errs []error
	for _, notifier := range f {
		if notifier == nil {
			continue
		}
		err := notifier.Notify(ctx, n)
		if err == nil {
			return nil
		}
		logging.FromContext(ctx).Debug().Err(err).Msg("notifier failed, trying next")
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// Discard drops notifications. Used when notifications are disabled.
type Discard struct{}

// Notify implements port.Notifier.
func (Discard) Notify(ctx context.Context, n port.Notification) error {
	logging.FromContext(ctx).Debug().Str("title", n.Title).Msg("notifications disabled, dropping")
	return nil
}

// Async hands notifications to Next on its own goroutine so callers on the
// GTK main loop never wait for the bus. Delivery errors are logged.
type Async struct {
	Next port.Notifier
}

// Notify implements port.Notifier. It always returns nil.
func (a Async) Notify(ctx context.Context, n port.Notification) error {
	if a.Next == nil {
		return nil
	}
	go func() {
		if err := a.Next.Notify(ctx, n); err != nil {
			logging.FromContext(ctx).Warn().Err(err).Str("title", n.Title).Msg("notification not delivered")
		}
	}()
	return nil
}

var (
	_ port.Notifier = Fallback(nil)
	_ port.Notifier = Discard{}
	_ port.Notifier = Async{}
)
