// Package cli holds the shared state of the command-line interface.
package cli

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/nemuelw/protodesk/internal/bootstrap"
	"github.com/nemuelw/protodesk/internal/cli/styles"
	"github.com/nemuelw/protodesk/internal/domain/build"
	"github.com/nemuelw/protodesk/internal/infrastructure/config"
	"github.com/nemuelw/protodesk/internal/logging"
)

// App holds CLI dependencies.
type App struct {
	*bootstrap.AppContext

	Theme     *styles.Theme
	BuildInfo build.Info
}

// NewApp loads configuration and builds the application context. The logger
// is configured from the logging section; PROTODESK_LOG_LEVEL overrides it
// through the config manager's env binding.
func NewApp(info build.Info) (*App, error) {
	mgr, err := config.NewManager()
	if err != nil {
		return nil, fmt.Errorf("create config manager: %w", err)
	}
	if err := mgr.Load(); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	cfg := mgr.Get()

	// The logger passes everything; the global level does the filtering so a
	// config reload can change it.
	logger := logging.NewFromConfigValues(zerolog.TraceLevel.String(), cfg.Logging.Format)
	zerolog.SetGlobalLevel(logging.ParseLevel(cfg.Logging.Level))
	ctx := logging.WithContext(context.Background(), logger)

	appCtx, err := bootstrap.New(ctx, bootstrap.Options{ConfigManager: mgr, Build: info})
	if err != nil {
		return nil, err
	}

	return &App{
		AppContext: appCtx,
		Theme:      styles.NewTheme(),
		BuildInfo:  info,
	}, nil
}

// WatchConfig applies log level changes from the config file while running.
func (a *App) WatchConfig() error {
	a.ConfigManager.OnConfigChange(func(cfg *config.Config) {
		level := logging.ParseLevel(cfg.Logging.Level)
		zerolog.SetGlobalLevel(level)
		logging.FromContext(a.Ctx).Info().Stringer("level", level).Msg("config reloaded")
	})
	return a.ConfigManager.Watch()
}
