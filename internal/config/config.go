// Package config provides the configuration management for fibbench.
// It defines the configuration structure, parses command-line flags and
// positional arguments, applies FIBBENCH_ environment overrides and
// validates the result.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"
	"time"

	apperrors "github.com/agbru/fibbench/internal/errors"
	"github.com/agbru/fibbench/internal/logging"
	"github.com/agbru/fibbench/internal/ui"
)

const (
	// EnvPrefix is the prefix for all environment variables used by fibbench.
	EnvPrefix = "FIBBENCH_"
)

// Default configuration values.
const (
	// DefaultAlgo is the strategy benchmarked when none is selected.
	DefaultAlgo = "matexp"
	// DefaultWorkers is the number of concurrent measuring workers.
	DefaultWorkers = 4
	// DefaultRepetitions is the number of timed calls per index; the
	// minimum is reported.
	DefaultRepetitions = 15
	// DefaultStep is how far the shared index counter advances per claim.
	DefaultStep uint64 = 1000
	// DefaultStart is the first index claimed.
	DefaultStart uint64 = 0
	// DefaultMaxTime is the per-index time after which the run stops.
	DefaultMaxTime = time.Second
	// DefaultEpsilon is the tolerance added to DefaultMaxTime.
	DefaultEpsilon = 250 * time.Millisecond
	// DefaultLogLevel is the minimum level of diagnostics written to stderr.
	DefaultLogLevel = "warn"
)

// RangeUsage is printed when the positional arguments are malformed.
const RangeUsage = "Incorrect number of arguments. Pass no arguments to run measurements, " +
	"pass two arguments (`l` and `r`) to print all Fibonacci numbers in range [F_l, F_r]"

// Mode selects what the program does.
type Mode int

const (
	// ModeBench runs the timing benchmark.
	ModeBench Mode = iota
	// ModeRange prints F(l) through F(r).
	ModeRange
)

// String returns the name of the mode.
func (m Mode) String() string {
	switch m {
	case ModeBench:
		return "bench"
	case ModeRange:
		return "range"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// AppConfig aggregates the parsed command line.
type AppConfig struct {
	// Mode is ModeBench without positional arguments, ModeRange with two.
	Mode Mode
	// RangeFrom and RangeTo bound the inclusive range printed in ModeRange.
	RangeFrom, RangeTo uint64

	// Algo is the registry name of the strategy to run.
	Algo string
	// Workers is the number of benchmark workers, each owning a strategy.
	Workers int
	// Repetitions is the number of timed calls per index.
	Repetitions int
	// Step is the stride of the shared index counter.
	Step uint64
	// Start is the first index claimed by the benchmark.
	Start uint64
	// MaxTime and Epsilon bound the run: once an index takes longer than
	// MaxTime+Epsilon, all workers stop.
	MaxTime time.Duration
	Epsilon time.Duration

	// MetricsFile, if set, receives the Prometheus text exposition of the
	// run's metrics when it ends.
	MetricsFile string
	// Quiet suppresses the progress spinner.
	Quiet bool
	// NoColor disables colored output (NO_COLOR is honored as well).
	NoColor bool
	// LogLevel is the minimum level of stderr diagnostics.
	LogLevel string
	// ShowVersion prints version information and exits.
	ShowVersion bool
	// Completion, if set, prints a completion script for the named shell
	// (bash, zsh or fish) and exits.
	Completion string
}

// Validate checks the semantic consistency of the configuration.
//
// Parameters:
//   - availableAlgos: The registered strategy names.
//
// Returns:
//   - error: A ConfigError if the configuration is invalid, nil otherwise.
func (c AppConfig) Validate(availableAlgos []string) error {
	if !slices.Contains(availableAlgos, c.Algo) {
		return apperrors.NewConfigError("unrecognized algorithm: '%s'. Valid algorithms are: [%s]", c.Algo, strings.Join(availableAlgos, ", "))
	}
	if c.Workers <= 0 {
		return apperrors.NewConfigError("worker count must be strictly positive: %d", c.Workers)
	}
	if c.Repetitions <= 0 {
		return apperrors.NewConfigError("repetition count must be strictly positive: %d", c.Repetitions)
	}
	if c.Step == 0 {
		return apperrors.NewConfigError("step must be strictly positive")
	}
	if c.MaxTime <= 0 {
		return apperrors.NewConfigError("max time must be strictly positive")
	}
	if c.Epsilon < 0 {
		return apperrors.NewConfigError("epsilon cannot be negative: %v", c.Epsilon)
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return apperrors.NewConfigError("%v", err)
	}
	return nil
}

// ParseConfig parses the command-line arguments into an AppConfig.
//
// Flags take precedence over FIBBENCH_ environment variables, which take
// precedence over the defaults. The remaining positional arguments select
// the mode: none for the benchmark, exactly two unsigned integers for the
// range printer.
//
// Parameters:
//   - programName: The name of the program, used in the usage message.
//   - args: The command-line arguments (typically os.Args[1:]).
//   - errorWriter: Where parse errors and usage information are printed.
//   - availableAlgos: The registered strategy names.
//
// Returns:
//   - AppConfig: The populated configuration.
//   - error: flag.ErrHelp when -h was given, a UsageError for a malformed
//     command line, or a ConfigError for invalid values.
func ParseConfig(programName string, args []string, errorWriter io.Writer, availableAlgos []string) (AppConfig, error) {
	fs := flag.NewFlagSet(programName, flag.ContinueOnError)
	fs.SetOutput(errorWriter)
	algoHelp := fmt.Sprintf("Strategy to run, one of [%s].", strings.Join(availableAlgos, ", "))

	config := AppConfig{}
	fs.StringVar(&config.Algo, "algo", DefaultAlgo, algoHelp)
	fs.IntVar(&config.Workers, "workers", DefaultWorkers, "Number of concurrent benchmark workers.")
	fs.IntVar(&config.Repetitions, "reps", DefaultRepetitions, "Timed calls per index; the minimum is reported.")
	fs.Uint64Var(&config.Step, "step", DefaultStep, "Stride of the shared index counter.")
	fs.Uint64Var(&config.Start, "start", DefaultStart, "First index measured.")
	fs.DurationVar(&config.MaxTime, "max-time", DefaultMaxTime, "Stop once an index takes longer than this (plus -eps).")
	fs.DurationVar(&config.Epsilon, "eps", DefaultEpsilon, "Tolerance added to -max-time.")
	fs.StringVar(&config.MetricsFile, "metrics-file", "", "Write Prometheus metrics of the run to this file.")
	fs.BoolVar(&config.Quiet, "quiet", false, "Do not show the progress spinner.")
	fs.BoolVar(&config.Quiet, "q", false, "Quiet mode (shorthand).")
	fs.BoolVar(&config.NoColor, "no-color", false, "Disable colored output (also respects NO_COLOR env var).")
	fs.StringVar(&config.LogLevel, "log-level", DefaultLogLevel, "Diagnostics level: debug, info, warn, error or disabled.")
	fs.BoolVar(&config.ShowVersion, "version", false, "Print version information and exit.")
	fs.StringVar(&config.Completion, "completion", "", "Print a shell completion script (bash, zsh, fish) and exit.")

	setCustomUsage(fs)

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return AppConfig{}, err
		}
		return AppConfig{}, apperrors.NewUsageError("invalid command line", err)
	}

	applyEnvOverrides(&config, fs)
	config.Algo = strings.ToLower(config.Algo)

	if config.ShowVersion || config.Completion != "" {
		return config, nil
	}

	if err := parsePositional(&config, fs.Args()); err != nil {
		fmt.Fprintln(errorWriter, RangeUsage)
		fmt.Fprintf(errorWriter, "%sError:%s %v\n", ui.ColorRed(), ui.ColorReset(), err)
		return AppConfig{}, err
	}

	if err := config.Validate(availableAlgos); err != nil {
		fmt.Fprintln(errorWriter, "Configuration error:", err)
		fs.Usage()
		return AppConfig{}, err
	}
	return config, nil
}

func parsePositional(config *AppConfig, rest []string) error {
	switch len(rest) {
	case 0:
		config.Mode = ModeBench
		return nil
	case 2:
		from, err := strconv.ParseUint(rest[0], 10, 64)
		if err != nil {
			return apperrors.NewUsageError(fmt.Sprintf("invalid range start %q", rest[0]), err)
		}
		to, err := strconv.ParseUint(rest[1], 10, 64)
		if err != nil {
			return apperrors.NewUsageError(fmt.Sprintf("invalid range end %q", rest[1]), err)
		}
		config.Mode = ModeRange
		config.RangeFrom, config.RangeTo = from, to
		return nil
	default:
		return apperrors.NewUsageError(fmt.Sprintf("expected 0 or 2 arguments, got %d", len(rest)), nil)
	}
}
