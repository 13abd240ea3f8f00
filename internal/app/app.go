// Package app wires the configuration, the presentation layers and the prime
// searches into the primecalc command.
package app

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"net"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/agbru/primecalc/internal/cli"
	"github.com/agbru/primecalc/internal/config"
	apperrors "github.com/agbru/primecalc/internal/errors"
	"github.com/agbru/primecalc/internal/logging"
	"github.com/agbru/primecalc/internal/metrics"
	"github.com/agbru/primecalc/internal/prime"
	"github.com/agbru/primecalc/internal/progress"
	"github.com/agbru/primecalc/internal/server"
	"github.com/agbru/primecalc/internal/ui"
)

// progressLogStep is the progress fraction between two debug log entries of
// one search.
const progressLogStep = 0.25

// Application represents the primecalc application instance.
type Application struct {
	Config    config.AppConfig
	ErrWriter io.Writer
	Logger    logging.Logger
	Metrics   *metrics.SearchMetrics
}

// AppOption configures an Application during construction.
type AppOption func(*Application)

// WithLogger sets the logger of the application instead of one built from
// --log-level.
func WithLogger(l logging.Logger) AppOption {
	return func(a *Application) { a.Logger = l }
}

// New creates a new Application instance by parsing command-line arguments.
// args includes the program name.
func New(args []string, errWriter io.Writer, opts ...AppOption) (*Application, error) {
	app := &Application{ErrWriter: errWriter}
	for _, opt := range opts {
		opt(app)
	}

	programName := "primecalc"
	var cmdArgs []string
	if len(args) > 0 {
		programName = filepath.Base(args[0])
		cmdArgs = args[1:]
	}

	cfg, err := config.ParseConfig(programName, cmdArgs, errWriter)
	if err != nil {
		return nil, err
	}
	app.Config = cfg

	if app.Logger == nil {
		logger, err := logging.NewLevelLogger(errWriter, "primecalc", cfg.LogLevel, true)
		if err != nil {
			return nil, apperrors.NewConfigError("%v", err)
		}
		app.Logger = logger.With(logging.String("mode", cfg.Mode))
	}
	return app, nil
}

// Run executes the application based on the configured mode.
func (a *Application) Run(ctx context.Context, out io.Writer) int {
	if a.Config.Completion != "" {
		return a.runCompletion(out)
	}

	ui.InitTheme(a.Config.NoColor)
	a.Logger.Debug("starting",
		logging.String("mode", a.Config.Mode),
		logging.String("layout", a.Config.Layout().String()),
		logging.String("version", Version))

	ctx, cancelTimeout := context.WithTimeout(ctx, a.Config.Timeout)
	defer cancelTimeout()
	ctx, stopSignals := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	if a.Config.MetricsAddr != "" {
		stop, err := a.startMetricsServer(ctx)
		if err != nil {
			return a.fail(err, apperrors.ExitErrorConfig)
		}
		defer stop()
	}

	switch a.Config.Mode {
	case config.ModeResume:
		return a.runResume(ctx, out)
	case config.ModeConvert:
		return a.runConvert(out)
	case config.ModeSqrt:
		return a.runSqrt(out)
	case config.ModeREPL:
		return a.runREPL(out)
	}

	if a.Config.TUI {
		return a.runTUI(ctx)
	}
	return a.runSearch(ctx, out)
}

// runCompletion generates shell completion scripts.
func (a *Application) runCompletion(out io.Writer) int {
	if err := cli.GenerateCompletion(out, a.Config.Completion, config.Modes); err != nil {
		fmt.Fprintf(a.ErrWriter, "Error generating completion: %v\n", err)
		return apperrors.ExitErrorConfig
	}
	return apperrors.ExitSuccess
}

// startMetricsServer serves the search and memory metrics on
// Config.MetricsAddr until the returned stop function is called.
func (a *Application) startMetricsServer(ctx context.Context) (stop func(), err error) {
	if a.Metrics == nil {
		a.Metrics = metrics.NewSearchMetrics()
	}
	collectors := append(a.Metrics.Collectors(), metrics.NewMemoryCollector())
	srv := server.New(a.Config.MetricsAddr, a.Logger, collectors...)

	ln, err := net.Listen("tcp", a.Config.MetricsAddr)
	if err != nil {
		return nil, fmt.Errorf("metrics server: %w", err)
	}

	srvCtx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	go func() {
		defer close(done)
		if err := srv.Serve(srvCtx, ln); err != nil {
			a.Logger.Error("metrics server", err)
		}
	}()
	return func() {
		cancel()
		<-done
	}, nil
}

// searchOptions returns the prime search options shared by every mode.
func (a *Application) searchOptions() prime.Options {
	return prime.Options{
		SampleInterval: a.Config.SampleInterval,
		Logger:         a.Logger,
		Metrics:        a.Metrics,
		Mode:           a.Config.Mode,
	}
}

// progressObserver logs search milestones when debug logging is enabled.
func (a *Application) progressObserver() progress.ProgressObserver {
	if !strings.EqualFold(a.Config.LogLevel, "debug") {
		return nil
	}
	return progress.NewLoggingObserver(a.Logger, progressLogStep)
}

// IsHelpError checks if the error is a help flag error (--help was used).
func IsHelpError(err error) bool {
	return errors.Is(err, flag.ErrHelp)
}

// IsUsageError reports whether err asks for the usage line to be printed.
func IsUsageError(err error) bool {
	var usageErr apperrors.UsageError
	return errors.As(err, &usageErr)
}
