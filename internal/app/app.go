package app

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/agbru/fibbench/internal/bench"
	"github.com/agbru/fibbench/internal/cli"
	"github.com/agbru/fibbench/internal/config"
	apperrors "github.com/agbru/fibbench/internal/errors"
	"github.com/agbru/fibbench/internal/fibonacci"
	"github.com/agbru/fibbench/internal/logging"
	"github.com/agbru/fibbench/internal/sysinfo"
	"github.com/agbru/fibbench/internal/ui"
)

// Application represents one invocation of fibbench: a parsed configuration
// and the strategy factory it selects from.
type Application struct {
	// Config holds the parsed application configuration.
	Config config.AppConfig
	// Factory provides the Fibonacci strategies by name.
	Factory *fibonacci.Factory
	// ErrWriter receives diagnostics, progress and error messages.
	ErrWriter io.Writer
}

// New creates an Application by parsing command-line arguments.
// args[0] is the program name.
func New(args []string, errWriter io.Writer) (*Application, error) {
	factory := fibonacci.GlobalFactory()

	programName := "fibbench"
	var cmdArgs []string
	if len(args) > 0 {
		programName = args[0]
		cmdArgs = args[1:]
	}

	// flag stops at the first positional argument, so "fibbench 0 5 -version"
	// would otherwise be a usage error.
	if HasVersionFlag(cmdArgs) {
		return &Application{
			Config:    config.AppConfig{ShowVersion: true},
			Factory:   factory,
			ErrWriter: errWriter,
		}, nil
	}

	cfg, err := config.ParseConfig(programName, cmdArgs, errWriter, factory.List())
	if err != nil {
		return nil, err
	}

	return &Application{
		Config:    cfg,
		Factory:   factory,
		ErrWriter: errWriter,
	}, nil
}

// Run executes the configured mode and returns the process exit code.
func (a *Application) Run(ctx context.Context, out io.Writer) int {
	if a.Config.Completion != "" {
		return a.runCompletion(out)
	}
	if a.Config.ShowVersion {
		PrintVersion(out)
		return apperrors.ExitSuccess
	}

	errFile := a.errFile()
	ui.InitTheme(a.Config.NoColor, errFile)

	logger, err := a.newLogger(errFile)
	if err != nil {
		return apperrors.HandleRunError(err, a.ErrWriter, cli.CLIColorProvider{})
	}

	ctx, stop := SetupSignals(ctx)
	defer stop()

	logger.Debug("starting",
		logging.String("mode", a.Config.Mode.String()),
		logging.String("strategy", a.Config.Algo),
		logging.String("host", sysinfo.Detect().String()))

	switch a.Config.Mode {
	case config.ModeRange:
		err = a.runRange(ctx, out)
	default:
		err = a.runBench(ctx, out, logger, errFile)
	}
	return apperrors.HandleRunError(err, a.ErrWriter, cli.CLIColorProvider{})
}

// runCompletion generates shell completion scripts.
func (a *Application) runCompletion(out io.Writer) int {
	if err := cli.GenerateCompletion(out, a.Config.Completion, a.Factory.List()); err != nil {
		fmt.Fprintf(a.ErrWriter, "Error generating completion: %v\n", err)
		return apperrors.ExitErrorConfig
	}
	return apperrors.ExitSuccess
}

// runRange prints F(RangeFrom) through F(RangeTo).
func (a *Application) runRange(ctx context.Context, out io.Writer) error {
	strategy, err := a.Factory.Create(a.Config.Algo)
	if err != nil {
		return apperrors.NewConfigError("%v", err)
	}
	return cli.PrintRange(ctx, out, strategy, a.Config.RangeFrom, a.Config.RangeTo)
}

// runBench runs the timing benchmark, printing one line per sample.
func (a *Application) runBench(ctx context.Context, out io.Writer, logger *logging.ZerologAdapter, errFile *os.File) error {
	name := a.Config.Algo
	create := func() (fibonacci.Strategy, error) { return a.Factory.Create(name) }

	opts := []bench.Option{bench.WithLogger(logger.With("strategy", name))}
	var metrics *bench.Metrics
	if a.Config.MetricsFile != "" {
		metrics = bench.NewMetrics()
		opts = append(opts, bench.WithMetrics(metrics))
	}

	env := bench.NewEnvironment(a.benchConfig(), name, create, opts...)

	var progress *cli.Progress
	if cli.ProgressEnabled(a.Config.Quiet, errFile) {
		progress = cli.StartProgress(errFile, env.HighestClaimed)
	}
	err := env.Run(ctx, cli.NewSampleWriter(out).Sink())
	if progress != nil {
		progress.Stop()
	}

	if metrics != nil {
		if werr := metrics.WriteTextfile(a.Config.MetricsFile); werr != nil {
			logger.Error("writing metrics failed", werr, logging.String("path", a.Config.MetricsFile))
			if err == nil {
				err = apperrors.WrapError(werr, "writing metrics to %s", a.Config.MetricsFile)
			}
		}
	}
	return err
}

func (a *Application) benchConfig() bench.Config {
	return bench.Config{
		Workers:     a.Config.Workers,
		Repetitions: a.Config.Repetitions,
		Step:        a.Config.Step,
		Start:       a.Config.Start,
		MaxTime:     a.Config.MaxTime,
		Epsilon:     a.Config.Epsilon,
	}
}

// newLogger writes JSON diagnostics to ErrWriter, or human-readable ones when
// ErrWriter is a terminal.
func (a *Application) newLogger(errFile *os.File) (*logging.ZerologAdapter, error) {
	level, err := logging.ParseLevel(a.Config.LogLevel)
	if err != nil {
		return nil, apperrors.NewConfigError("%v", err)
	}
	return logging.NewLogger(a.ErrWriter, logging.Options{
		Level:   level,
		Console: ui.IsTerminal(errFile),
		NoColor: a.Config.NoColor,
	}), nil
}

// errFile returns ErrWriter as a file when it is one, for terminal detection.
func (a *Application) errFile() *os.File {
	f, _ := a.ErrWriter.(*os.File)
	return f
}

// IsHelpError reports whether err comes from -h or -help.
func IsHelpError(err error) bool {
	return errors.Is(err, flag.ErrHelp)
}
