// Package usecase contains application business logic.
package usecase

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/nemuelw/protodesk/internal/application/port"
	"github.com/nemuelw/protodesk/internal/logging"
)

// ErrUnsupportedScheme is returned for links that are not http(s).
var ErrUnsupportedScheme = errors.New("unsupported url scheme")

// OpenExternalUseCase opens fixed links, such as the donation pages, in the
// system browser.
type OpenExternalUseCase struct {
	browser port.ExternalBrowser
}

// NewOpenExternalUseCase creates a new OpenExternalUseCase.
func NewOpenExternalUseCase(browser port.ExternalBrowser) *OpenExternalUseCase {
	return &OpenExternalUseCase{browser: browser}
}

// Open hands rawURL to the external browser.
// Only http and https links are accepted.
func (uc *OpenExternalUseCase) Open(ctx context.Context, rawURL string) error {
	log := logging.FromContext(ctx)

	rawURL = strings.TrimSpace(rawURL)
	u, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("parse url: %w", err)
	}
	if u.Scheme != "https" && u.Scheme != "http" {
		return fmt.Errorf("%w: %q", ErrUnsupportedScheme, u.Scheme)
	}

	if err := uc.browser.OpenURL(ctx, rawURL); err != nil {
		log.Error().Err(err).Str("url", rawURL).Msg("open external: browser launch failed")
		return fmt.Errorf("open external browser: %w", err)
	}

	log.Debug().Str("url", rawURL).Msg("opened link in external browser")
	return nil
}
