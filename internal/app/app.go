// Package app wires configuration, the estimation pipeline and the CLI
// presentation into the picalc command.
package app

import (
	"context"
	"errors"
	"flag"
	"io"

	"github.com/agbru/picalc/internal/config"
	"github.com/agbru/picalc/internal/estimation"
	"github.com/agbru/picalc/internal/logging"
	"github.com/agbru/picalc/internal/ui"
)

// Application represents the picalc application instance.
type Application struct {
	Config    config.AppConfig
	Registry  *estimation.Registry
	ErrWriter io.Writer
}

// AppOption configures an Application during construction.
type AppOption func(*Application)

// WithRegistry sets a custom method registry for the application.
func WithRegistry(r *estimation.Registry) AppOption {
	return func(a *Application) { a.Registry = r }
}

// New creates a new Application instance by parsing command-line arguments.
func New(args []string, errWriter io.Writer, opts ...AppOption) (*Application, error) {
	app := &Application{ErrWriter: errWriter}
	for _, opt := range opts {
		opt(app)
	}
	if app.Registry == nil {
		app.Registry = estimation.NewDefaultRegistry()
	}

	programName := "picalc"
	var cmdArgs []string
	if len(args) > 0 {
		programName = args[0]
		cmdArgs = args[1:]
	}

	cfg, err := config.ParseConfig(programName, cmdArgs, errWriter, app.Registry.List())
	if err != nil {
		return nil, err
	}
	app.Config = cfg
	return app, nil
}

// Run executes the application based on the configured mode and returns the
// process exit code.
func (a *Application) Run(ctx context.Context, out io.Writer) int {
	ui.InitTheme(a.Config.NoColor)

	if a.Config.Calibrate || a.Config.CalibrateQuick {
		return a.runCalibration(ctx, out)
	}
	return a.runEstimate(ctx, out)
}

// newLogger returns the console logger of the run, on the error writer and
// filtered at the configured level.
func (a *Application) newLogger() logging.Logger {
	return logging.NewConsoleLogger(a.ErrWriter, a.Config.NoColor).
		WithLevel(logging.ParseLevel(a.Config.LogLevel))
}

// IsHelpError checks if the error is a help flag error (--help was used).
func IsHelpError(err error) bool {
	return errors.Is(err, flag.ErrHelp)
}
