package dialog

import (
	"github.com/diamondburned/gotk4/pkg/gdk/v4"
	"github.com/diamondburned/gotk4/pkg/gtk/v4"
	"github.com/nemuelw/protodesk/internal/ui/theme"
)

// newModal creates a fixed-size modal window over parent that closes on Escape.
func newModal(parent *gtk.Window, title string, width, height int) *gtk.Window {
	win := gtk.NewWindow()
	win.SetTitle(title)
	win.SetModal(true)
	win.SetResizable(false)
	win.SetDefaultSize(width, height)
	win.AddCSSClass(theme.ClassDialog)
	if parent != nil {
		win.SetTransientFor(parent)
	}

	keys := gtk.NewEventControllerKey()
	keys.ConnectKeyPressed(func(keyval, _ uint, _ gdk.ModifierType) bool {
		if keyval == gdk.KEY_Escape {
			win.Close()
			return true
		}
		return false
	})
	win.AddController(keys)
	return win
}

func newLabel(text, class string) *gtk.Label {
	label := gtk.NewLabel(text)
	label.SetJustify(gtk.JustifyCenter)
	label.SetWrap(true)
	label.SetHAlign(gtk.AlignCenter)
	label.AddCSSClass(class)
	return label
}
