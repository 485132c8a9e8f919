package dialog

import (
	"github.com/diamondburned/gotk4/pkg/gdk/v4"
	"github.com/diamondburned/gotk4/pkg/glib/v2"
	"github.com/diamondburned/gotk4/pkg/gtk/v4"
	"github.com/nemuelw/protodesk/assets"
	"github.com/nemuelw/protodesk/internal/domain/build"
	"github.com/nemuelw/protodesk/internal/ui/theme"
)

const donateIconSize = 48

// ShowDonate presents the Donate popup over parent. open is called with the
// URL of the donation page the user picked.
func ShowDonate(parent *gtk.Window, open func(url string)) {
	content := NewDonateContent()
	win := newModal(parent, content.Title, DonateWidth, DonateHeight)
	win.SetDecorated(false)

	// Behaves like a popup: losing focus dismisses it.
	win.NotifyProperty("is-active", func() {
		if !win.IsActive() {
			win.Close()
		}
	})

	box := gtk.NewBox(gtk.OrientationVertical, 16)
	box.SetMarginTop(20)
	box.SetMarginBottom(20)
	box.SetMarginStart(20)
	box.SetMarginEnd(20)
	box.SetVAlign(gtk.AlignCenter)

	box.Append(newLabel(content.Title, theme.ClassDialogTitle))
	box.Append(newLabel(content.Text, theme.ClassDialogText))

	row := gtk.NewBox(gtk.OrientationHorizontal, 16)
	row.SetHAlign(gtk.AlignCenter)
	for _, link := range content.Links {
		row.Append(donateButton(link, func(url string) {
			win.Close()
			if open != nil {
				open(url)
			}
		}))
	}
	box.Append(row)

	win.SetChild(box)
	win.Present()
}

func donateButton(link build.DonationLink, onClick func(url string)) *gtk.Button {
	btn := gtk.NewButton()
	btn.AddCSSClass(theme.ClassDonateButton)
	btn.SetTooltipText(link.Name)

	if data, err := assets.Icon(link.Icon); err == nil {
		if texture, err := gdk.NewTextureFromBytes(glib.NewBytesWithGo(data)); err == nil {
			img := gtk.NewImageFromPaintable(texture)
			img.SetPixelSize(donateIconSize)
			btn.SetChild(img)
		}
	}
	if btn.Child() == nil {
		btn.SetLabel(link.Name)
	}

	url := link.URL
	btn.ConnectClicked(func() { onClick(url) })
	return btn
}
