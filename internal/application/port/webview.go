// Package port defines application-layer interfaces for external capabilities.
// Ports abstract infrastructure concerns, allowing the application layer to
// remain independent of specific implementations (WebKit, GTK, D-Bus, etc.).
package port

import "context"

// EmbeddedView is the browsing surface inside the main window.
type EmbeddedView interface {
	// LoadURI navigates the view to uri.
	LoadURI(ctx context.Context, uri string) error
	// URI returns the URI currently displayed.
	URI() string
}

// PopupRequest contains metadata about a request to open a new window.
type PopupRequest struct {
	TargetURI     string
	FrameName     string // e.g., "_blank", custom name, or empty
	IsUserGesture bool
}
