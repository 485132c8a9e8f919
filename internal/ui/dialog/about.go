package dialog

import (
	"github.com/diamondburned/gotk4/pkg/gtk/v4"
	"github.com/nemuelw/protodesk/internal/domain/build"
	"github.com/nemuelw/protodesk/internal/ui/theme"
)

// ShowAbout presents the About dialog over parent.
func ShowAbout(parent *gtk.Window, info build.Info) {
	content := NewAboutContent(info)
	win := newModal(parent, content.Title, AboutWidth, AboutHeight)

	box := gtk.NewBox(gtk.OrientationVertical, 12)
	box.SetMarginTop(16)
	box.SetMarginBottom(16)
	box.SetMarginStart(16)
	box.SetMarginEnd(16)
	box.SetVAlign(gtk.AlignCenter)

	box.Append(newLabel(content.Title, theme.ClassDialogTitle))
	box.Append(newLabel(content.Summary, theme.ClassDialogText))
	box.Append(newLabel(content.Credits, theme.ClassDialogText))

	ok := gtk.NewButtonWithLabel("Ok")
	ok.AddCSSClass(theme.ClassPrimaryButton)
	ok.SetHAlign(gtk.AlignCenter)
	ok.ConnectClicked(win.Close)
	box.Append(ok)

	win.SetChild(box)
	win.Present()
}
