// Package notification delivers desktop notifications.
package notification

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/godbus/dbus/v5"
	"github.com/nemuelw/protodesk/internal/application/port"
	"github.com/nemuelw/protodesk/internal/logging"
)

const (
	notifyDest  = "org.freedesktop.Notifications"
	notifyPath  = "/org/freedesktop/Notifications"
	notifyIface = "org.freedesktop.Notifications"

	// Urgency hint values of org.freedesktop.Notifications
	urgencyLow      byte = 0
	urgencyNormal   byte = 1
	urgencyCritical byte = 2

	// defaultCallTimeout bounds the wait for the notification daemon's reply.
	defaultCallTimeout = 2 * time.Second
)

// busCaller is the part of dbus.BusObject used to send notifications.
type busCaller interface {
	CallWithContext(ctx context.Context, method string, flags dbus.Flags, args ...interface{}) *dbus.Call
}

// Compile-time interface check.
var _ port.Notifier = (*DBusNotifier)(nil)

// DBusNotifier sends notifications to org.freedesktop.Notifications on the
// session bus. The bus connection is opened on first use.
type DBusNotifier struct {
	appName string
	appIcon string
	timeout time.Duration

	mu      sync.Mutex
	obj     busCaller
	connect func() (busCaller, error)
}

// NewDBusNotifier creates a notifier that identifies itself as appName.
func NewDBusNotifier(appName, appIcon string) *DBusNotifier {
	return &DBusNotifier{
		appName: appName,
		appIcon: appIcon,
		timeout: defaultCallTimeout,
		connect: connectSessionBus,
	}
}

func connectSessionBus() (busCaller, error) {
	conn, err := dbus.ConnectSessionBus()
	if err != nil {
		return nil, fmt.Errorf("connect session bus: %w", err)
	}
	return conn.Object(notifyDest, notifyPath), nil
}

func (n *DBusNotifier) object() (busCaller, error) {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.obj != nil {
		return n.obj, nil
	}
	obj, err := n.connect()
	if err != nil {
		return nil, err
	}
	n.obj = obj
	return obj, nil
}

// Notify implements port.Notifier.
// Notify(app_name s, replaces_id u, app_icon s, summary s, body s, actions as, hints a{sv}, expire_timeout i) -> id u
func (n *DBusNotifier) Notify(ctx context.Context, note port.Notification) error {
	log := logging.FromContext(ctx)

	obj, err := n.object()
	if err != nil {
		return err
	}

	hints := map[string]dbus.Variant{
		"urgency": dbus.MakeVariant(urgencyFor(note.Type)),
	}
	timeout := int32(-1) // server default
	if note.TimeoutMs > 0 {
		timeout = int32(note.TimeoutMs)
	}

	callCtx, cancel := context.WithTimeout(ctx, n.timeout)
	defer cancel()

	var id uint32
	err = obj.CallWithContext(callCtx, notifyIface+".Notify", 0,
		n.appName,
		uint32(0),
		n.appIcon,
		note.Title,
		note.Body,
		[]string{},
		hints,
		timeout,
	).Store(&id)
	if err != nil {
		return fmt.Errorf("dbus notify: %w", err)
	}

	log.Debug().Uint32("id", id).Str("title", note.Title).Msg("notification sent")
	return nil
}

func urgencyFor(t port.NotificationType) byte {
	switch t {
	case port.NotificationError:
		return urgencyCritical
	case port.NotificationSuccess:
		return urgencyNormal
	default:
		return urgencyLow
	}
}
