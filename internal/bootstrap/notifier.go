package bootstrap

import (
	"github.com/nemuelw/protodesk/internal/application/port"
	"github.com/nemuelw/protodesk/internal/domain/build"
	"github.com/nemuelw/protodesk/internal/infrastructure/config"
	"github.com/nemuelw/protodesk/internal/infrastructure/notification"
)

const appIcon = "protodesk"

// Notifier selects the notification sink named by notifications.backend.
// gio is the GApplication sink created by the UI and may be nil; it also
// serves as fallback when the session bus is unavailable. Sinks that talk to
// the session bus run off the caller's goroutine.
func (a *AppContext) Notifier(gio port.Notifier) port.Notifier {
	return selectNotifier(a.Config.Notifications.Backend, gio, func() port.Notifier {
		return notification.NewDBusNotifier(build.AppName, appIcon)
	})
}

func selectNotifier(backend config.NotificationBackend, gio port.Notifier, dbus func() port.Notifier) port.Notifier {
	switch backend {
	case config.NotificationBackendNone:
		return notification.Discard{}
	case config.NotificationBackendGIO:
		if gio != nil {
			return gio
		}
		return notification.Async{Next: dbus()}
	default:
		if gio == nil {
			return notification.Async{Next: dbus()}
		}
		return notification.Async{Next: notification.Fallback{dbus(), gio}}
	}
}
