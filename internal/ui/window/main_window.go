// Package window provides the Protodesk application window.
package window

import (
	"context"
	"errors"

	"github.com/diamondburned/gotk4/pkg/gdk/v4"
	"github.com/diamondburned/gotk4/pkg/gtk/v4"
	"github.com/nemuelw/protodesk/internal/logging"
	"github.com/rs/zerolog"
)

// ErrWindowCreationFailed is returned when GTK cannot create the window.
var ErrWindowCreationFailed = errors.New("failed to create application window")

// MainWindow is the top-level window: sidebar on the left, view filling the rest.
type MainWindow struct {
	window  *gtk.ApplicationWindow
	rootBox *gtk.Box

	logger zerolog.Logger
}

// New creates the main window titled title, sized to the primary monitor.
func New(ctx context.Context, app *gtk.Application, title string) (*MainWindow, error) {
	mw := &MainWindow{
		logger: *logging.FromContext(logging.WithComponent(ctx, "main-window")),
	}

	mw.window = gtk.NewApplicationWindow(app)
	if mw.window == nil {
		return nil, ErrWindowCreationFailed
	}
	mw.window.SetTitle(title)

	w, h := Size(primaryMonitorSize())
	mw.window.SetDefaultSize(w, h)
	mw.logger.Debug().Int("width", w).Int("height", h).Msg("window size")

	mw.rootBox = gtk.NewBox(gtk.OrientationHorizontal, 0)
	mw.rootBox.SetHExpand(true)
	mw.rootBox.SetVExpand(true)
	mw.window.SetChild(mw.rootBox)

	return mw, nil
}

// SetContent packs the sidebar and the view. The view takes all remaining space.
func (mw *MainWindow) SetContent(sidebar, view gtk.Widgetter) {
	mw.rootBox.Append(sidebar)

	if base := gtk.BaseWidget(view); base != nil {
		base.SetHExpand(true)
		base.SetVExpand(true)
	}
	mw.rootBox.Append(view)
}

// Window returns the underlying GTK window, for use as a dialog parent.
func (mw *MainWindow) Window() *gtk.Window {
	return &mw.window.Window
}

// Show presents the window.
func (mw *MainWindow) Show() {
	mw.window.Present()
}

// Destroy closes the window.
func (mw *MainWindow) Destroy() {
	if mw.window != nil {
		mw.window.Destroy()
		mw.window = nil
	}
}

func primaryMonitorSize() (int, int) {
	display := gdk.DisplayGetDefault()
	if display == nil {
		return 0, 0
	}
	monitors := display.Monitors()
	if monitors == nil || monitors.NItems() == 0 {
		return 0, 0
	}
	obj := monitors.Item(0)
	if obj == nil {
		return 0, 0
	}
	monitor, ok := obj.Cast().(*gdk.Monitor)
	if !ok {
		return 0, 0
	}
	geom := monitor.Geometry()
	return geom.Width(), geom.Height()
}
