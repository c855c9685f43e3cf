// Package app wires configuration, strategy selection, and the execution
// modes (CLI calculation, HTTP server, TUI dashboard, fraction
// decomposition) into a single runnable application.
package app

import (
	"context"
	"errors"
	"flag"
	"io"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"

	"github.com/agbru/karatcalc/internal/config"
	"github.com/agbru/karatcalc/internal/digit"
	"github.com/agbru/karatcalc/internal/orchestration"
	"github.com/agbru/karatcalc/internal/tui"
	"github.com/agbru/karatcalc/internal/ui"
)

// Application represents the karatcalc application instance.
type Application struct {
	Config    config.AppConfig
	Factory   digit.MultiplierFactory
	ErrWriter io.Writer
}

// AppOption configures an Application during construction.
type AppOption func(*Application)

// WithFactory sets a custom MultiplierFactory for the application.
func WithFactory(f digit.MultiplierFactory) AppOption {
	return func(a *Application) { a.Factory = f }
}

// New creates a new Application instance by parsing command-line arguments.
func New(args []string, errWriter io.Writer, opts ...AppOption) (*Application, error) {
	app := &Application{ErrWriter: errWriter}
	for _, opt := range opts {
		opt(app)
	}
	if app.Factory == nil {
		app.Factory = digit.NewDefaultFactory()
	}

	availableAlgos := app.Factory.List()

	programName := "karatcalc"
	var cmdArgs []string
	if len(args) > 0 {
		programName = args[0]
		cmdArgs = args[1:]
	}

	cfg, err := config.ParseConfig(programName, cmdArgs, errWriter, availableAlgos)
	if err != nil {
		return nil, err
	}

	app.Config = config.ApplyAdaptiveThresholds(cfg)
	return app, nil
}

// Run executes the application based on the configured mode.
func (a *Application) Run(ctx context.Context, out io.Writer) int {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	ui.InitTheme(a.Config.NoColor)

	if a.Config.Egyptian != "" {
		return a.runEgyptian(out)
	}

	if a.Config.Serve != "" {
		return a.runServe(ctx)
	}

	if a.Config.TUI {
		return a.runTUI(ctx)
	}

	return a.runCalculate(ctx, out)
}

// runTUI launches the interactive TUI dashboard.
func (a *Application) runTUI(ctx context.Context) int {
	ctx, cancelTimeout := context.WithTimeout(ctx, a.Config.Timeout)
	defer cancelTimeout()
	ctx, stopSignals := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	multipliersToRun := orchestration.GetMultipliersToRun(a.Config.Algo, a.Factory)
	return tui.Run(ctx, multipliersToRun, a.Config, Version)
}

// IsHelpError checks if the error is a help flag error (--help was used).
func IsHelpError(err error) bool {
	return errors.Is(err, flag.ErrHelp)
}
