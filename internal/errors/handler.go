package apperrors

import (
	"errors"
	"fmt"
	"io"
)

// ColorProvider defines the interface for obtaining terminal color codes.
// This abstraction breaks the import cycle with cli.
type ColorProvider interface {
	Yellow() string
	Red() string
	Reset() string
}

// DefaultColorProvider provides no color codes (for non-terminal output).
type DefaultColorProvider struct{}

func (d DefaultColorProvider) Yellow() string { return "" }
func (d DefaultColorProvider) Red() string    { return "" }
func (d DefaultColorProvider) Reset() string  { return "" }

// ExitCode maps an error to the process exit status without printing anything.
//
// Parameters:
//   - err: The error to classify (nil maps to ExitSuccess).
//
// Returns:
//   - int: The exit status for err.
func ExitCode(err error) int {
	var usageErr UsageError
	var configErr ConfigError
	switch {
	case err == nil:
		return ExitSuccess
	case IsContextError(err):
		return ExitErrorCanceled
	case errors.As(err, &usageErr):
		return ExitErrorUsage
	case errors.As(err, &configErr):
		return ExitErrorConfig
	default:
		return ExitErrorGeneric
	}
}

// HandleRunError formats and prints a message for an error that ended a
// benchmark or range run, and returns the matching exit code.
//
// Parameters:
//   - err: The error that occurred.
//   - out: The io.Writer to which the message will be written.
//   - colors: Provider for terminal color codes (can be nil for no colors).
//
// Returns:
//   - int: The appropriate exit code for the error type.
func HandleRunError(err error, out io.Writer, colors ColorProvider) int {
	if err == nil {
		return ExitSuccess
	}
	if colors == nil {
		colors = DefaultColorProvider{}
	}

	code := ExitCode(err)
	switch code {
	case ExitErrorCanceled:
		fmt.Fprintf(out, "%sStatus: Canceled.%s\n", colors.Yellow(), colors.Reset())
	case ExitErrorUsage, ExitErrorConfig:
		fmt.Fprintf(out, "%sError:%s %v\n", colors.Red(), colors.Reset(), err)
	default:
		fmt.Fprintf(out, "%sStatus: Failure.%s An unexpected error occurred: %v\n", colors.Red(), colors.Reset(), err)
	}
	return code
}
