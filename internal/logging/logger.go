// Package logging provides the structured logger used across fibbench.
// Diagnostics go to stderr through zerolog; stdout is reserved for
// benchmark samples and range output.
package logging

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Logger is the logging interface used by the application packages.
type Logger interface {
	// Debug logs a debug message.
	Debug(msg string, fields ...Field)

	// Info logs an informational message.
	Info(msg string, fields ...Field)

	// Warn logs a warning.
	Warn(msg string, fields ...Field)

	// Error logs an error message with the associated error.
	Error(msg string, err error, fields ...Field)
}

// Field represents a key-value pair for structured logging.
type Field struct {
	Key   string
	Value any
}

// String creates a string field.
func String(key, value string) Field {
	return Field{Key: key, Value: value}
}

// Int creates an integer field.
func Int(key string, value int) Field {
	return Field{Key: key, Value: value}
}

// Uint64 creates a uint64 field.
func Uint64(key string, value uint64) Field {
	return Field{Key: key, Value: value}
}

// Duration creates a duration field.
func Duration(key string, value time.Duration) Field {
	return Field{Key: key, Value: value}
}

// Err creates an error field.
func Err(err error) Field {
	return Field{Key: "error", Value: err}
}

// ZerologAdapter adapts a zerolog.Logger to the Logger interface.
type ZerologAdapter struct {
	logger zerolog.Logger
}

// NewZerologAdapter creates a new Logger backed by zerolog.
func NewZerologAdapter(logger zerolog.Logger) *ZerologAdapter {
	return &ZerologAdapter{logger: logger}
}

// Options controls how NewLogger renders events.
type Options struct {
	// Level is the minimum level written.
	Level zerolog.Level
	// Console selects zerolog's human-readable console writer instead of JSON.
	Console bool
	// NoColor disables ANSI colors in console mode.
	NoColor bool
}

// NewLogger creates a Logger writing to w.
func NewLogger(w io.Writer, opts Options) *ZerologAdapter {
	if opts.Console {
		w = zerolog.ConsoleWriter{Out: w, NoColor: opts.NoColor, TimeFormat: time.TimeOnly}
	}
	return NewZerologAdapter(
		zerolog.New(w).Level(opts.Level).With().Timestamp().Logger(),
	)
}

// Nop returns a Logger that discards everything.
func Nop() *ZerologAdapter {
	return NewZerologAdapter(zerolog.Nop())
}

// ParseLevel maps a level name (debug, info, warn, error, disabled) to a
// zerolog level. Matching is case-insensitive; the empty string means warn.
func ParseLevel(s string) (zerolog.Level, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return zerolog.WarnLevel, nil
	}
	if s == "off" || s == "none" {
		return zerolog.Disabled, nil
	}
	lvl, err := zerolog.ParseLevel(s)
	if err != nil || lvl == zerolog.NoLevel {
		return zerolog.NoLevel, fmt.Errorf("unknown log level %q", s)
	}
	return lvl, nil
}

// With returns a child logger carrying the given field on every event.
func (z *ZerologAdapter) With(key string, value any) *ZerologAdapter {
	return NewZerologAdapter(z.logger.With().Interface(key, value).Logger())
}

func (z *ZerologAdapter) applyFields(event *zerolog.Event, fields []Field) *zerolog.Event {
	for _, f := range fields {
		switch v := f.Value.(type) {
		case string:
			event = event.Str(f.Key, v)
		case int:
			event = event.Int(f.Key, v)
		case uint64:
			event = event.Uint64(f.Key, v)
		case time.Duration:
			event = event.Dur(f.Key, v)
		case error:
			event = event.AnErr(f.Key, v)
		case bool:
			event = event.Bool(f.Key, v)
		default:
			event = event.Interface(f.Key, v)
		}
	}
	return event
}

// Debug logs a debug message.
func (z *ZerologAdapter) Debug(msg string, fields ...Field) {
	z.applyFields(z.logger.Debug(), fields).Msg(msg)
}

// Info logs an informational message.
func (z *ZerologAdapter) Info(msg string, fields ...Field) {
	z.applyFields(z.logger.Info(), fields).Msg(msg)
}

// Warn logs a warning.
func (z *ZerologAdapter) Warn(msg string, fields ...Field) {
	z.applyFields(z.logger.Warn(), fields).Msg(msg)
}

// Error logs an error message.
func (z *ZerologAdapter) Error(msg string, err error, fields ...Field) {
	z.applyFields(z.logger.Error().Err(err), fields).Msg(msg)
}
