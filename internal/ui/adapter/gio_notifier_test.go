package adapter

import (
	"context"
	"testing"

	"github.com/diamondburned/gotk4/pkg/gio/v2"
	"github.com/nemuelw/protodesk/internal/application/port"
	"github.com/stretchr/testify/assert"
)

func TestPriorityFor(t *testing.T) {
	assert.Equal(t, gio.NotificationPriorityHigh, priorityFor(port.NotificationError))
	assert.Equal(t, gio.NotificationPriorityNormal, priorityFor(port.NotificationSuccess))
	assert.Equal(t, gio.NotificationPriorityLow, priorityFor(port.NotificationInfo))
}

func TestGioNotifier_NoApplication(t *testing.T) {
	g := &GioNotifier{post: func(fn func()) { fn() }}

	err := g.Notify(context.Background(), port.Notification{Title: "Download Complete"})
	assert.Error(t, err)
}
