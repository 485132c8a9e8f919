package ui

import (
	"context"
	"fmt"

	"github.com/diamondburned/gotk4/pkg/gdk/v4"
	"github.com/diamondburned/gotk4/pkg/gio/v2"
	"github.com/diamondburned/gotk4/pkg/gtk/v4"
	"github.com/nemuelw/protodesk/internal/application/usecase"
	"github.com/nemuelw/protodesk/internal/domain/build"
	"github.com/nemuelw/protodesk/internal/domain/entity"
	"github.com/nemuelw/protodesk/internal/infrastructure/webkit"
	"github.com/nemuelw/protodesk/internal/logging"
	"github.com/nemuelw/protodesk/internal/ui/adapter"
	"github.com/nemuelw/protodesk/internal/ui/component"
	"github.com/nemuelw/protodesk/internal/ui/dialog"
	"github.com/nemuelw/protodesk/internal/ui/mainloop"
	"github.com/nemuelw/protodesk/internal/ui/theme"
	"github.com/nemuelw/protodesk/internal/ui/window"
	"github.com/rs/zerolog"
)

// AppID is the GApplication identifier.
const AppID = "io.github.nemuelw.Protodesk"

// App wraps the GTK application and owns the window, the view and the
// use cases driving it.
type App struct {
	deps   *Dependencies
	gtkApp *gtk.Application
	logger zerolog.Logger

	mainWindow *window.MainWindow
	wkCtx      *webkit.WebKitContext
	view       *webkit.WebView

	router    *usecase.NavigationRouter
	watcher   *usecase.DownloadWatcher
	external  *usecase.OpenExternalUseCase
	popups    *webkit.PopupHandler
	downloads *webkit.DownloadHandler
}

// New creates an App with the given dependencies.
func New(deps *Dependencies) (*App, error) {
	if err := deps.Validate(); err != nil {
		return nil, err
	}
	if deps.Theme == nil {
		deps.Theme = theme.NewManager(deps.App.Config.Window.SidebarWidth)
	}
	return &App{
		deps:     deps,
		logger:   *logging.FromContext(logging.WithComponent(deps.Ctx, "ui")),
		external: deps.App.OpenExternal(),
	}, nil
}

// Run starts the GTK application and blocks until it exits.
// Returns the exit code.
func (a *App) Run(ctx context.Context, args []string) int {
	a.gtkApp = gtk.NewApplication(AppID, gio.ApplicationFlagsNone)
	if a.gtkApp == nil {
		a.logger.Error().Msg("failed to create GTK application")
		return 1
	}

	a.gtkApp.ConnectActivate(func() { a.onActivate(ctx) })
	a.gtkApp.ConnectShutdown(func() { a.onShutdown(ctx) })

	a.logger.Info().Msg("starting GTK main loop")
	return a.gtkApp.Run(args)
}

// Quit stops the main loop. Safe to call from any goroutine.
func (a *App) Quit() {
	mainloop.Post(func() {
		if a.gtkApp != nil {
			a.gtkApp.Quit()
		}
	})
}

func (a *App) onActivate(ctx context.Context) {
	if a.mainWindow != nil {
		a.mainWindow.Show()
		return
	}
	app := a.deps.App
	cfg := app.Config

	if display := gdk.DisplayGetDefault(); display != nil {
		a.deps.Theme.ApplyToDisplay(ctx, display)
	}

	if err := a.buildWindow(ctx); err != nil {
		a.logger.Error().Err(err).Msg("failed to build main window")
		a.gtkApp.Quit()
		return
	}

	gioNotifier := adapter.NewGioNotifier(&a.gtkApp.Application, mainloop.Post)
	chooser := dialog.NewSaveChooser(a.mainWindow.Window, app.Paths.Downloads)
	a.watcher = app.DownloadWatcher(chooser, app.Notifier(gioNotifier), mainloop.NewScheduler())
	a.downloads = webkit.AttachDownloadHandler(ctx, a.wkCtx, a.watcher)

	a.router = app.Router(a.view)
	a.popups = webkit.AttachPopupHandler(ctx, a.view, a.router)

	sidebar := component.NewSidebar(app.Catalog.Services(), cfg.Window.SidebarWidth, cfg.Window.IconSize, component.SidebarHandlers{
		OnService: func(id string) { a.router.SelectService(ctx, id) },
		OnDonate:  func() { dialog.ShowDonate(a.mainWindow.Window(), a.openExternal(ctx)) },
		OnAbout:   func() { dialog.ShowAbout(a.mainWindow.Window(), app.Build) },
	})
	a.mainWindow.SetContent(sidebar.Widget(), a.view.Widget())

	initial := a.deps.InitialService
	if initial == "" {
		initial = string(entity.ServiceMail)
	}
	a.router.SelectService(ctx, initial)

	a.mainWindow.Show()
	app.Timer.Mark("activate")
	app.Timer.Log(ctx, zerolog.DebugLevel)
}

func (a *App) buildWindow(ctx context.Context) error {
	app := a.deps.App

	wkCtx, err := webkit.NewWebKitContext(ctx, app.Paths.WebData, app.Paths.WebCache)
	if err != nil {
		return fmt.Errorf("web profile: %w", err)
	}
	a.wkCtx = wkCtx

	view, err := webkit.NewWebView(ctx, wkCtx, webkit.ViewOptions{DeveloperExtras: a.deps.DeveloperExtras})
	if err != nil {
		return fmt.Errorf("web view: %w", err)
	}
	a.view = view

	mw, err := window.New(ctx, a.gtkApp, build.AppName)
	if err != nil {
		view.Destroy()
		return err
	}
	a.mainWindow = mw
	return nil
}

func (a *App) openExternal(ctx context.Context) func(url string) {
	return func(url string) {
		if err := a.external.Open(ctx, url); err != nil {
			a.logger.Warn().Err(err).Str("url", url).Msg("failed to open donation link")
		}
	}
}

func (a *App) onShutdown(ctx context.Context) {
	if a.watcher != nil {
		if n := len(a.watcher.Active()); n > 0 {
			a.logger.Info().Int("downloads", n).Msg("shutting down with downloads in progress")
		}
	}
	if a.view != nil {
		a.view.Destroy()
	}
	if err := a.deps.App.Close(); err != nil {
		logging.FromContext(ctx).Warn().Err(err).Msg("failed to close database")
	}
	a.logger.Debug().Msg("GTK application shut down")
}
