package notification

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/godbus/dbus/v5"
	"github.com/nemuelw/protodesk/internal/application/port"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordedCall struct {
	method string
	args   []interface{}
}

type fakeBus struct {
	calls []recordedCall
	err   error
}

func (f *fakeBus) CallWithContext(_ context.Context, method string, _ dbus.Flags, args ...interface{}) *dbus.Call {
	f.calls = append(f.calls, recordedCall{method: method, args: args})
	if f.err != nil {
		return &dbus.Call{Err: f.err}
	}
	return &dbus.Call{Body: []interface{}{uint32(42)}}
}

func newTestNotifier(bus *fakeBus) *DBusNotifier {
	n := NewDBusNotifier("Protodesk", "protodesk")
	n.connect = func() (busCaller, error) { return bus, nil }
	return n
}

func TestDBusNotifier_Notify(t *testing.T) {
	bus := &fakeBus{}
	n := newTestNotifier(bus)

	err := n.Notify(context.Background(), port.Notification{
		Title:     "Download Complete",
		Body:      "report.pdf has been downloaded successfully",
		Type:      port.NotificationSuccess,
		TimeoutMs: 5000,
	})
	require.NoError(t, err)
	require.Len(t, bus.calls, 1)

	call := bus.calls[0]
	assert.Equal(t, "org.freedesktop.Notifications.Notify", call.method)
	require.Len(t, call.args, 8)
	assert.Equal(t, "Protodesk", call.args[0])
	assert.Equal(t, uint32(0), call.args[1])
	assert.Equal(t, "protodesk", call.args[2])
	assert.Equal(t, "Download Complete", call.args[3])
	assert.Equal(t, "report.pdf has been downloaded successfully", call.args[4])
	assert.Equal(t, int32(5000), call.args[7])

	hints, ok := call.args[6].(map[string]dbus.Variant)
	require.True(t, ok)
	assert.Equal(t, urgencyNormal, hints["urgency"].Value())
}

func TestDBusNotifier_DefaultTimeoutAndUrgency(t *testing.T) {
	bus := &fakeBus{}
	n := newTestNotifier(bus)

	require.NoError(t, n.Notify(context.Background(), port.Notification{
		Title: "Download Failed",
		Body:  "Network error",
		Type:  port.NotificationError,
	}))

	args := bus.calls[0].args
	assert.Equal(t, int32(-1), args[7])
	assert.Equal(t, urgencyCritical, args[6].(map[string]dbus.Variant)["urgency"].Value())
}

func TestDBusNotifier_ConnectsOnce(t *testing.T) {
	bus := &fakeBus{}
	connects := 0
	n := NewDBusNotifier("Protodesk", "")
	n.connect = func() (busCaller, error) {
		connects++
		return bus, nil
	}

	for i := 0; i < 3; i++ {
		require.NoError(t, n.Notify(context.Background(), port.Notification{Title: "x"}))
	}
	assert.Equal(t, 1, connects)
	assert.Len(t, bus.calls, 3)
}

func TestDBusNotifier_Errors(t *testing.T) {
	t.Run("no session bus", func(t *testing.T) {
		n := NewDBusNotifier("Protodesk", "")
		n.connect = func() (busCaller, error) { return nil, errors.New("no bus") }

		assert.Error(t, n.Notify(context.Background(), port.Notification{Title: "x"}))
	})

	t.Run("call fails", func(t *testing.T) {
		callErr := errors.New("ServiceUnknown")
		n := newTestNotifier(&fakeBus{err: callErr})

		err := n.Notify(context.Background(), port.Notification{Title: "x"})
		assert.ErrorIs(t, err, callErr)
	})
}

// blockingBus never answers; it only returns once the call context ends.
type blockingBus struct{}

func (blockingBus) CallWithContext(ctx context.Context, _ string, _ dbus.Flags, _ ...interface{}) *dbus.Call {
	<-ctx.Done()
	return &dbus.Call{Err: ctx.Err()}
}

func TestDBusNotifier_UnresponsiveDaemonTimesOut(t *testing.T) {
	n := NewDBusNotifier("Protodesk", "")
	n.timeout = 20 * time.Millisecond
	n.connect = func() (busCaller, error) { return blockingBus{}, nil }

	done := make(chan error, 1)
	go func() { done <- n.Notify(context.Background(), port.Notification{Title: "Download Complete"}) }()

	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.DeadlineExceeded)
	case <-time.After(2 * time.Second):
		t.Fatal("Notify did not return")
	}
}
