package port

import "context"

// ExternalBrowser opens URLs outside the application.
type ExternalBrowser interface {
	// OpenURL hands url to the user's default browser. Fire and forget:
	// the returned error is only used for logging.
	OpenURL(ctx context.Context, url string) error
}
