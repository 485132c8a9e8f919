package theme

import (
	"context"

	"github.com/diamondburned/gotk4/pkg/gdk/v4"
	"github.com/diamondburned/gotk4/pkg/gtk/v4"
	"github.com/nemuelw/protodesk/internal/logging"
)

// Manager owns the application stylesheet.
type Manager struct {
	palette      Palette
	sidebarWidth int
	provider     *gtk.CSSProvider
}

// NewManager creates a manager for the default palette.
func NewManager(sidebarWidth int) *Manager {
	return &Manager{
		palette:      DefaultPalette(),
		sidebarWidth: sidebarWidth,
	}
}

// CSS returns the stylesheet the manager installs.
func (m *Manager) CSS() string {
	return GenerateCSS(m.palette, m.sidebarWidth)
}

// ApplyToDisplay installs the stylesheet on display.
func (m *Manager) ApplyToDisplay(ctx context.Context, display *gdk.Display) {
	log := logging.FromContext(ctx)
	if display == nil {
		log.Warn().Msg("no display, skipping css")
		return
	}

	if m.provider == nil {
		m.provider = gtk.NewCSSProvider()
		gtk.StyleContextAddProviderForDisplay(display, m.provider, gtk.STYLE_PROVIDER_PRIORITY_APPLICATION)
	}
	m.provider.LoadFromString(m.CSS())

	log.Debug().Int("sidebar_width", m.sidebarWidth).Msg("css applied")
}
