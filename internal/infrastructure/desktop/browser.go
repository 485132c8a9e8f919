package desktop

import (
	"context"
	"errors"
	"io"

	"github.com/nemuelw/protodesk/internal/application/port"
	"github.com/nemuelw/protodesk/internal/logging"
	"github.com/pkg/browser"
)

// ErrEmptyURL is returned when asked to open an empty URL.
var ErrEmptyURL = errors.New("empty url")

// BrowserLauncher opens URLs in the user's default browser through xdg-open.
type BrowserLauncher struct {
	open  func(url string) error
	async bool
}

// NewBrowserLauncher creates a launcher that does not block the caller.
func NewBrowserLauncher() *BrowserLauncher {
	// xdg-open chatter must not end up on our stdout.
	browser.Stdout = io.Discard
	browser.Stderr = io.Discard
	return &BrowserLauncher{open: browser.OpenURL, async: true}
}

// OpenURL hands url to the default browser. Launch failures are logged.
func (l *BrowserLauncher) OpenURL(ctx context.Context, url string) error {
	if url == "" {
		return ErrEmptyURL
	}
	log := logging.FromContext(ctx)

	launch := func() error {
		if err := l.open(url); err != nil {
			log.Warn().Err(err).Str("url", logging.TruncateURL(url, 60)).Msg("external browser launch failed")
			return err
		}
		log.Debug().Str("url", logging.TruncateURL(url, 60)).Msg("opened in external browser")
		return nil
	}

	if l.async {
		go func() { _ = launch() }()
		return nil
	}
	return launch()
}

var _ port.ExternalBrowser = (*BrowserLauncher)(nil)
