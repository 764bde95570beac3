// Package apperrors defines structured application error types, allowing for a
// clear distinction between error classes (usage, configuration, internal
// contract violations) and for carrying the underlying cause.
//
// Error Wrapping Guidelines:
// This package follows Go's error wrapping conventions using fmt.Errorf with %w.
// All error types that carry a cause implement Unwrap() to support errors.Is()
// and errors.As().
package apperrors

import (
	"context"
	"errors"
	"fmt"
)

// Application exit codes define the standard exit statuses for the application.
const (
	ExitSuccess       = 0   // Indicates successful execution.
	ExitErrorGeneric  = 1   // Indicates a generic error.
	ExitErrorUsage    = 2   // Indicates wrong arguments on the command line.
	ExitErrorConfig   = 4   // Indicates a configuration error.
	ExitErrorCanceled = 130 // Indicates the operation was canceled (e.g., SIGINT).
)

// UsageError reports a malformed command line: wrong number of positional
// arguments, an unparseable index, or an unknown flag.
type UsageError struct {
	// Message explains what was wrong with the command line.
	Message string
	// Cause is the underlying parse error, if any.
	Cause error
}

// Error returns the error message for a UsageError.
func (e UsageError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the underlying parse error.
func (e UsageError) Unwrap() error { return e.Cause }

// NewUsageError creates a new UsageError with an optional cause.
//
// Parameters:
//   - message: A description of the usage problem.
//   - cause: The underlying error (can be nil).
//
// Returns:
//   - error: A new UsageError instance.
func NewUsageError(message string, cause error) error {
	return UsageError{Message: message, Cause: cause}
}

// ConfigError represents a user configuration error, such as an out of range
// flag value. It indicates that the application cannot proceed due to
// incorrect user input.
type ConfigError struct {
	// Message explains the specific configuration error.
	Message string
}

// Error returns the error message for a ConfigError.
func (e ConfigError) Error() string { return e.Message }

// NewConfigError creates a new ConfigError with a formatted message.
//
// Parameters:
//   - format: A format string (see fmt.Sprintf).
//   - a: Arguments to be formatted into the string.
//
// Returns:
//   - error: A new ConfigError instance containing the formatted message.
func NewConfigError(format string, a ...any) error {
	return ConfigError{Message: fmt.Sprintf(format, a...)}
}

// ContractError describes a broken internal precondition of the arithmetic
// core: an output buffer aliasing an input, an output that would need to grow
// past its reserved capacity, or a Fibonacci index beyond what a strategy was
// prepared for. It is never returned; it is the value passed to panic.
type ContractError struct {
	// Op is the operation whose precondition was violated (e.g. "bigint.Mul").
	Op string
	// Reason describes the violated precondition.
	Reason string
}

// Error returns the error message for a ContractError.
func (e *ContractError) Error() string {
	return fmt.Sprintf("contract violation in %s: %s", e.Op, e.Reason)
}

// NewContractError creates a ContractError with a formatted reason.
//
// Parameters:
//   - op: The name of the operation.
//   - format: A format string for the reason.
//   - a: Arguments for the format string.
//
// Returns:
//   - *ContractError: The error, ready to be passed to panic.
func NewContractError(op, format string, a ...any) *ContractError {
	return &ContractError{Op: op, Reason: fmt.Sprintf(format, a...)}
}

// WrapError wraps an error with additional context using fmt.Errorf and %w.
// This allows the wrapped error to be unwrapped with errors.Unwrap() and
// checked with errors.Is() and errors.As().
//
// Parameters:
//   - err: The error to wrap.
//   - format: A format string for the context message.
//   - args: Arguments for the format string.
//
// Returns:
//   - error: The wrapped error, or nil if err is nil.
func WrapError(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	message := fmt.Sprintf(format, args...)
	return fmt.Errorf("%s: %w", message, err)
}

// IsContextError checks if the error is a context cancellation or deadline exceeded error.
//
// Parameters:
//   - err: The error to check.
//
// Returns:
//   - bool: true if the error is a context error.
func IsContextError(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
