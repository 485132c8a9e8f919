// Package adapter bridges GTK services to application ports.
package adapter

import (
	"context"
	"fmt"
	"sync/atomic"

	"github.com/diamondburned/gotk4/pkg/gio/v2"
	"github.com/nemuelw/protodesk/internal/application/port"
	"github.com/nemuelw/protodesk/internal/logging"
)

// notificationSender is satisfied by *gio.Application.
type notificationSender interface {
	SendNotification(id string, notification *gio.Notification)
}

// GioNotifier shows notifications through GApplication, which routes them to
// the portal or the freedesktop service.
type GioNotifier struct {
	app  notificationSender
	post func(func())
	seq  atomic.Uint64
}

// NewGioNotifier creates a notifier for app. post runs a function on the GTK
// main loop; nil runs it inline.
func NewGioNotifier(app *gio.Application, post func(func())) *GioNotifier {
	if post == nil {
		post = func(fn func()) { fn() }
	}
	g := &GioNotifier{post: post}
	if app != nil {
		g.app = app
	}
	return g
}

// Notify implements port.Notifier.
func (g *GioNotifier) Notify(ctx context.Context, n port.Notification) error {
	if g.app == nil {
		return fmt.Errorf("gio notify: no application")
	}
	id := fmt.Sprintf("protodesk-%d", g.seq.Add(1))
	log := logging.FromContext(ctx)

	g.post(func() {
		gn := gio.NewNotification(n.Title)
		gn.SetBody(n.Body)
		gn.SetPriority(priorityFor(n.Type))
		g.app.SendNotification(id, gn)
		log.Debug().Str("id", id).Str("title", n.Title).Msg("gio notification sent")
	})
	return nil
}

func priorityFor(t port.NotificationType) gio.NotificationPriority {
	switch t {
	case port.NotificationError:
		return gio.NotificationPriorityHigh
	case port.NotificationSuccess:
		return gio.NotificationPriorityNormal
	default:
		return gio.NotificationPriorityLow
	}
}
