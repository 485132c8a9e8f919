package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/nemuelw/protodesk/internal/application/port"
	"github.com/nemuelw/protodesk/internal/application/usecase"
	"github.com/nemuelw/protodesk/internal/domain/allowlist"
	"github.com/nemuelw/protodesk/internal/domain/build"
	"github.com/nemuelw/protodesk/internal/domain/entity"
	"github.com/nemuelw/protodesk/internal/domain/repository"
	"github.com/nemuelw/protodesk/internal/infrastructure/config"
	"github.com/nemuelw/protodesk/internal/infrastructure/desktop"
	"github.com/nemuelw/protodesk/internal/infrastructure/filesystem"
	"github.com/nemuelw/protodesk/internal/infrastructure/persistence/sqlite"
	"github.com/nemuelw/protodesk/internal/infrastructure/xdg"
	"github.com/nemuelw/protodesk/internal/logging"
	"golang.org/x/sync/errgroup"
)

const dirPerm = 0o755

// Options configures New.
type Options struct {
	// ConfigManager is loaded by New when nil.
	ConfigManager *config.Manager
	Build         build.Info
}

// Paths holds the resolved directories of the running profile.
type Paths struct {
	WebData   string
	WebCache  string
	Downloads string
	Database  string
}

// AppContext is the single application context: configuration, the service
// catalog, the allowlist and the shared adapters. It is built once at startup
// and hands out the router and the watcher once a view exists.
type AppContext struct {
	Ctx           context.Context
	Config        *config.Config
	ConfigManager *config.Manager
	Catalog       *entity.ServiceCatalog
	Allowed       allowlist.HostSet
	Paths         Paths
	Browser       port.ExternalBrowser
	Build         build.Info
	Timer         *StartupTimer

	xdg     port.XDGPaths
	db      *sqlite.LazyDB
	history repository.DownloadHistoryRepository
}

// New loads configuration and resolves the profile paths. Directories are
// created by PrepareDirectories.
func New(ctx context.Context, opts Options) (*AppContext, error) {
	timer := NewStartupTimer()

	mgr := opts.ConfigManager
	if mgr == nil {
		var err error
		mgr, err = config.NewManager()
		if err != nil {
			return nil, fmt.Errorf("create config manager: %w", err)
		}
		if err := mgr.Load(); err != nil {
			return nil, fmt.Errorf("load config: %w", err)
		}
	}
	cfg := mgr.Get()
	timer.Mark("config")

	catalog, err := cfg.Catalog()
	if err != nil {
		return nil, fmt.Errorf("build service catalog: %w", err)
	}

	a := &AppContext{
		Ctx:           ctx,
		Config:        cfg,
		ConfigManager: mgr,
		Catalog:       catalog,
		Allowed:       cfg.AllowedHosts(catalog),
		Browser:       desktop.NewBrowserLauncher(),
		Build:         opts.Build,
		Timer:         timer,
	}

	a.xdg = xdg.New(cfg.Profile.Name, cfg.Downloads.Directory)
	paths, err := resolvePaths(a.xdg, cfg.Database.Path)
	if err != nil {
		return nil, err
	}
	a.Paths = paths
	timer.Mark("paths")

	a.db = sqlite.NewLazyDB(paths.Database)
	if cfg.Downloads.History {
		a.history = sqlite.NewLazyDownloadHistoryRepository(a.db)
	}

	logging.FromContext(ctx).Debug().
		Int("services", len(catalog.Services())).
		Str("profile", cfg.Profile.Name).
		Bool("history", a.history != nil).
		Msg("application context ready")
	return a, nil
}

func resolvePaths(paths port.XDGPaths, dbPath string) (Paths, error) {
	var p Paths
	var err error
	if p.WebData, err = paths.WebDataDir(); err != nil {
		return Paths{}, fmt.Errorf("resolve web data directory: %w", err)
	}
	if p.WebCache, err = paths.WebCacheDir(); err != nil {
		return Paths{}, fmt.Errorf("resolve web cache directory: %w", err)
	}
	if p.Downloads, err = paths.DownloadDir(); err != nil {
		return Paths{}, fmt.Errorf("resolve download directory: %w", err)
	}
	p.Database = dbPath
	if p.Database == "" {
		dataDir, err := paths.DataDir()
		if err != nil {
			return Paths{}, fmt.Errorf("resolve data directory: %w", err)
		}
		p.Database = filepath.Join(dataDir, "protodesk.sqlite")
	}
	return p, nil
}

// PrepareDirectories creates the web profile, download and database folders.
func (a *AppContext) PrepareDirectories(ctx context.Context) error {
	return a.Timer.Measure("dirs", func() error { return prepareDirs(ctx, a.Paths) })
}

// prepareDirs creates the profile directories concurrently. A missing
// download folder is not fatal: the chooser falls back to its own default.
func prepareDirs(ctx context.Context, p Paths) error {
	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error { return mkdir("web data", p.WebData) })
	g.Go(func() error { return mkdir("web cache", p.WebCache) })
	g.Go(func() error { return mkdir("database", filepath.Dir(p.Database)) })
	g.Go(func() error {
		if err := mkdir("downloads", p.Downloads); err != nil {
			logging.FromContext(ctx).Warn().Err(err).Msg("download directory unavailable")
		}
		return nil
	})
	return g.Wait()
}

func mkdir(what, dir string) error {
	if err := os.MkdirAll(dir, dirPerm); err != nil {
		return fmt.Errorf("create %s directory %s: %w", what, dir, err)
	}
	return nil
}

// History returns the download history store, or nil when disabled.
func (a *AppContext) History() repository.DownloadHistoryRepository {
	return a.history
}

// Router creates the navigation router driving view.
func (a *AppContext) Router(view port.EmbeddedView) *usecase.NavigationRouter {
	return usecase.NewNavigationRouter(a.Catalog, a.Allowed, view, a.Browser)
}

// DownloadWatcher creates the download watcher.
func (a *AppContext) DownloadWatcher(
	chooser port.SaveLocationChooser,
	notifier port.Notifier,
	scheduler port.Scheduler,
) *usecase.DownloadWatcher {
	return usecase.NewDownloadWatcher(chooser, notifier, scheduler, a.history, usecase.DownloadWatcherConfig{
		PollInterval:          a.Config.PollInterval(),
		NotificationTimeoutMs: a.Config.Notifications.TimeoutMs,
	})
}

// OpenExternal creates the use case opening fixed links in the browser.
func (a *AppContext) OpenExternal() *usecase.OpenExternalUseCase {
	return usecase.NewOpenExternalUseCase(a.Browser)
}

// DownloadHistory creates the history use case. It fails when history is
// disabled in the configuration.
func (a *AppContext) DownloadHistory() (*usecase.DownloadHistoryUseCase, error) {
	if a.history == nil {
		return nil, ErrHistoryDisabled
	}
	return usecase.NewDownloadHistoryUseCase(a.history), nil
}

// Purge creates the use case deleting local data of the running profile.
// The database is closed first so its files can be removed.
func (a *AppContext) Purge() *usecase.PurgeDataUseCase {
	if a.db != nil {
		if err := a.db.Close(); err != nil {
			logging.FromContext(a.Ctx).Warn().Err(err).Msg("failed to close database before purge")
		}
	}
	return usecase.NewPurgeDataUseCase(filesystem.New(), a.xdg, desktop.New(), a.Paths.Database)
}

// Close releases the database connection if it was opened.
func (a *AppContext) Close() error {
	if a.db == nil {
		return nil
	}
	return a.db.Close()
}

// ErrHistoryDisabled is returned when downloads.history is false.
var ErrHistoryDisabled = errors.New("download history is disabled")
