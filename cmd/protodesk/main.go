package main

import (
	"os"
	"os/signal"
	"runtime"

	"golang.org/x/sys/unix"

	"github.com/nemuelw/protodesk/internal/cli"
	"github.com/nemuelw/protodesk/internal/cli/cmd"
	"github.com/nemuelw/protodesk/internal/domain/build"
	"github.com/nemuelw/protodesk/internal/logging"
	"github.com/nemuelw/protodesk/internal/ui"
)

// Build-time variables (set via ldflags).
var (
	version   = "dev"
	commit    = "unknown"
	buildDate = "unknown"
)

func init() {
	// GTK must stay on the thread that initialized it.
	runtime.LockOSThread()
}

func main() {
	enableCrashForensics()

	cmd.SetBuildInfo(build.Info{
		Version:   version,
		Commit:    commit,
		BuildDate: buildDate,
		GoVersion: runtime.Version(),
	})
	cmd.SetGUIRunner(runGUI)

	os.Exit(cmd.Execute())
}

func runGUI(app *cli.App, opts cmd.GUIOptions) int {
	ctx := app.Ctx
	log := logging.FromContext(ctx)

	if err := app.PrepareDirectories(ctx); err != nil {
		log.Error().Err(err).Msg("failed to prepare profile directories")
		return 1
	}
	if err := app.WatchConfig(); err != nil {
		log.Warn().Err(err).Msg("config watching disabled")
	}
	logCoreDumpLimits(ctx)

	shell, err := ui.New(&ui.Dependencies{
		Ctx:             ctx,
		App:             app.AppContext,
		InitialService:  opts.Service,
		DeveloperExtras: opts.DevTools,
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to create UI")
		return 1
	}

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, unix.SIGINT, unix.SIGTERM)
	defer signal.Stop(signals)
	go func() {
		if sig, ok := <-signals; ok {
			log.Info().Stringer("signal", sig).Msg("quitting")
			shell.Quit()
		}
	}()

	// GApplication parses its own argv; cobra has already consumed ours.
	return shell.Run(ctx, os.Args[:1])
}
