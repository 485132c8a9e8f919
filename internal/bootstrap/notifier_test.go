package bootstrap

import (
	"testing"

	"github.com/nemuelw/protodesk/internal/application/port"
	"github.com/nemuelw/protodesk/internal/application/port/mocks"
	"github.com/nemuelw/protodesk/internal/infrastructure/config"
	"github.com/nemuelw/protodesk/internal/infrastructure/notification"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectNotifier(t *testing.T) {
	gio := mocks.NewMockNotifier(t)
	dbus := mocks.NewMockNotifier(t)
	newDBus := func() port.Notifier { return dbus }

	t.Run("none discards", func(t *testing.T) {
		assert.IsType(t, notification.Discard{}, selectNotifier(config.NotificationBackendNone, gio, newDBus))
	})

	t.Run("gio prefers application sink", func(t *testing.T) {
		assert.Same(t, gio, selectNotifier(config.NotificationBackendGIO, gio, newDBus))
	})

	t.Run("gio without application uses dbus off the caller", func(t *testing.T) {
		n := selectNotifier(config.NotificationBackendGIO, nil, newDBus)
		async, ok := n.(notification.Async)
		require.True(t, ok)
		assert.Same(t, dbus, async.Next)
	})

	t.Run("dbus falls back to gio", func(t *testing.T) {
		n := selectNotifier(config.NotificationBackendDBus, gio, newDBus)
		async, ok := n.(notification.Async)
		require.True(t, ok)
		chain, ok := async.Next.(notification.Fallback)
		require.True(t, ok)
		require.Len(t, chain, 2)
		assert.Same(t, dbus, chain[0])
		assert.Same(t, gio, chain[1])
	})

	t.Run("dbus alone", func(t *testing.T) {
		n := selectNotifier(config.NotificationBackendDBus, nil, newDBus)
		async, ok := n.(notification.Async)
		require.True(t, ok)
		assert.Same(t, dbus, async.Next)
	})
}
