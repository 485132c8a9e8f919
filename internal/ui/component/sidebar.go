// Package component provides reusable GTK widgets for the shell.
package component

import (
	"github.com/diamondburned/gotk4/pkg/gdk/v4"
	"github.com/diamondburned/gotk4/pkg/glib/v2"
	"github.com/diamondburned/gotk4/pkg/gtk/v4"
	"github.com/nemuelw/protodesk/assets"
	"github.com/nemuelw/protodesk/internal/domain/entity"
	"github.com/nemuelw/protodesk/internal/ui/theme"
)

// SidebarHandlers receives sidebar clicks.
type SidebarHandlers struct {
	OnService func(id string)
	OnDonate  func()
	OnAbout   func()
}

// Sidebar is the fixed-width vertical button strip left of the view.
type Sidebar struct {
	box      *gtk.Box
	handlers SidebarHandlers
	iconSize int
}

// NewSidebar builds the sidebar for services.
func NewSidebar(services []entity.Service, width, iconSize int, handlers SidebarHandlers) *Sidebar {
	s := &Sidebar{
		box:      gtk.NewBox(gtk.OrientationVertical, 0),
		handlers: handlers,
		iconSize: iconSize,
	}
	s.box.AddCSSClass(theme.ClassSidebar)
	s.box.SetSizeRequest(width, -1)
	s.box.SetHExpand(false)
	s.box.SetVExpand(true)

	top, bottom := SidebarLayout(services)
	for _, item := range top {
		s.box.Append(s.newButton(item))
	}

	spacer := gtk.NewBox(gtk.OrientationVertical, 0)
	spacer.SetVExpand(true)
	s.box.Append(spacer)

	for _, item := range bottom {
		s.box.Append(s.newButton(item))
	}
	return s
}

// Widget returns the sidebar root for packing.
func (s *Sidebar) Widget() gtk.Widgetter {
	return s.box
}

func (s *Sidebar) newButton(item SidebarItem) *gtk.Button {
	btn := gtk.NewButton()
	btn.AddCSSClass(theme.ClassSidebarButton)
	btn.SetTooltipText(item.Tooltip)
	btn.SetChild(loadIcon(item.Icon, s.iconSize))
	btn.SetHAlign(gtk.AlignCenter)

	item := item
	btn.ConnectClicked(func() { s.dispatch(item) })
	return btn
}

func (s *Sidebar) dispatch(item SidebarItem) {
	switch item.Action {
	case ActionService:
		if s.handlers.OnService != nil {
			s.handlers.OnService(item.Key)
		}
	case ActionDonate:
		if s.handlers.OnDonate != nil {
			s.handlers.OnDonate()
		}
	case ActionAbout:
		if s.handlers.OnAbout != nil {
			s.handlers.OnAbout()
		}
	}
}

// loadIcon renders an embedded SVG at size pixels. Unknown icons fall back to
// the theme's missing-image icon.
func loadIcon(name string, size int) *gtk.Image {
	var img *gtk.Image
	if data, err := assets.Icon(name); err == nil {
		if texture, err := gdk.NewTextureFromBytes(glib.NewBytesWithGo(data)); err == nil {
			img = gtk.NewImageFromPaintable(texture)
		}
	}
	if img == nil {
		img = gtk.NewImageFromIconName("image-missing")
	}
	img.SetPixelSize(size)
	return img
}
