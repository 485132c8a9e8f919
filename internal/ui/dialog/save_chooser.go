package dialog

import (
	"context"
	"sync"

	"github.com/diamondburned/gotk4/pkg/gio/v2"
	"github.com/diamondburned/gotk4/pkg/gtk/v4"
	"github.com/nemuelw/protodesk/internal/logging"
)

// SaveChooser asks where to save a download using the native file chooser
// (the XDG desktop portal when available).
type SaveChooser struct {
	parent    func() *gtk.Window
	directory string

	mu   sync.Mutex
	open map[*gtk.FileChooserNative]struct{}
}

// NewSaveChooser creates a chooser opening in directory. parent is resolved
// each time a dialog is shown.
func NewSaveChooser(parent func() *gtk.Window, directory string) *SaveChooser {
	return &SaveChooser{
		parent:    parent,
		directory: directory,
		open:      make(map[*gtk.FileChooserNative]struct{}),
	}
}

// ChooseSaveLocation implements port.SaveLocationChooser.
func (c *SaveChooser) ChooseSaveLocation(ctx context.Context, suggestedName string, done func(path string, ok bool)) {
	log := logging.FromContext(ctx)
	finish := onceDone(done)

	var parent *gtk.Window
	if c.parent != nil {
		parent = c.parent()
	}

	native := gtk.NewFileChooserNative("Save File", parent, gtk.FileChooserActionSave, "_Save", "_Cancel")
	native.SetModal(true)
	native.SetCurrentName(suggestedName)
	if c.directory != "" {
		if err := native.SetCurrentFolder(gio.NewFileForPath(c.directory)); err != nil {
			log.Debug().Err(err).Str("dir", c.directory).Msg("save chooser: cannot open download directory")
		}
	}

	c.track(native)
	native.ConnectResponse(func(responseID int) {
		defer c.untrack(native)

		var path string
		if responseID == int(gtk.ResponseAccept) {
			if file := native.File(); file != nil {
				path = file.Path()
			}
		}
		p, ok := resolveResponse(responseID == int(gtk.ResponseAccept), path)
		log.Debug().Bool("accepted", ok).Str("path", p).Msg("save chooser response")
		finish(p, ok)
		native.Destroy()
	})
	native.Show()
}

func (c *SaveChooser) track(n *gtk.FileChooserNative) {
	c.mu.Lock()
	c.open[n] = struct{}{}
	c.mu.Unlock()
}

func (c *SaveChooser) untrack(n *gtk.FileChooserNative) {
	c.mu.Lock()
	delete(c.open, n)
	c.mu.Unlock()
}

// resolveResponse maps a dialog response to the done arguments. An accepted
// dialog without a local path counts as declined.
func resolveResponse(accepted bool, path string) (string, bool) {
	if !accepted || path == "" {
		return "", false
	}
	return path, true
}

// onceDone guards done so it runs at most one time.
func onceDone(done func(path string, ok bool)) func(path string, ok bool) {
	var once sync.Once
	return func(path string, ok bool) {
		once.Do(func() {
			if done != nil {
				done(path, ok)
			}
		})
	}
}
