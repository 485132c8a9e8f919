// Package webkit adapts WebKitGTK 6 to the application ports.
package webkit

import (
	"context"
	"errors"
	"path/filepath"
	"sync"

	webkit "github.com/diamondburned/gotk4-webkitgtk/pkg/webkit/v6"
	"github.com/nemuelw/protodesk/internal/logging"
	"github.com/rs/zerolog"
)

const cookieDBName = "cookies.sqlite"

// WebKitContext owns the persistent NetworkSession shared by every view.
// It MUST be created before any WebView.
type WebKitContext struct {
	session *webkit.NetworkSession

	dataDir  string
	cacheDir string

	logger zerolog.Logger
	mu     sync.Mutex
}

// NewWebKitContext creates a persistent NetworkSession rooted at dataDir and
// cacheDir. Cookies are stored in SQLite under dataDir so logins survive restarts.
func NewWebKitContext(ctx context.Context, dataDir, cacheDir string) (*WebKitContext, error) {
	log := logging.FromContext(logging.WithComponent(ctx, "webkit-context"))

	if dataDir == "" {
		return nil, errors.New("data directory cannot be empty")
	}
	if cacheDir == "" {
		return nil, errors.New("cache directory cannot be empty")
	}

	session := webkit.NewNetworkSession(dataDir, cacheDir)
	if session == nil {
		return nil, errors.New("failed to create network session")
	}
	if session.IsEphemeral() {
		return nil, errors.New("network session is ephemeral despite providing data directories")
	}

	dataManager := session.WebsiteDataManager()
	if dataManager == nil {
		return nil, errors.New("failed to get website data manager")
	}
	if dataManager.IsEphemeral() {
		return nil, errors.New("website data manager is ephemeral")
	}

	cookies := session.CookieManager()
	if cookies == nil {
		return nil, errors.New("failed to get cookie manager")
	}
	cookiePath := filepath.Join(dataDir, cookieDBName)
	cookies.SetPersistentStorage(cookiePath, webkit.CookiePersistentStorageSqlite)
	cookies.SetAcceptPolicy(webkit.CookiePolicyAcceptNoThirdParty)

	session.SetPersistentCredentialStorageEnabled(true)

	log.Info().
		Str("data_dir", dataDir).
		Str("cache_dir", cacheDir).
		Str("cookies", cookiePath).
		Msg("webkit context initialized")

	return &WebKitContext{
		session:  session,
		dataDir:  dataDir,
		cacheDir: cacheDir,
		logger:   *log,
	}, nil
}

// NetworkSession returns the shared session.
func (c *WebKitContext) NetworkSession() *webkit.NetworkSession {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.session
}

// DataDir returns the website data directory.
func (c *WebKitContext) DataDir() string {
	return c.dataDir
}

// CacheDir returns the website cache directory.
func (c *WebKitContext) CacheDir() string {
	return c.cacheDir
}
