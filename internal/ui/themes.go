// Package ui holds the color themes used for fibbench's human-facing output
// on stderr: usage text, status lines and the progress spinner. Benchmark
// samples and range values on stdout are never colored.
package ui

import (
	"os"
	"sync"

	"github.com/mattn/go-isatty"
)

// Theme holds the ANSI escape codes for each kind of stderr output.
type Theme struct {
	// Primary highlights flag names in the usage text.
	Primary string
	// Secondary is used for defaults and the spinner status.
	Secondary string
	// Warning marks section headings and the canceled status.
	Warning string
	// Error marks failures.
	Error string
	Bold  string
	Reset string
}

var (
	// DarkTheme is the 256-color palette used on terminals.
	DarkTheme = Theme{
		Primary:   "\033[38;5;39m",
		Secondary: "\033[38;5;245m",
		Warning:   "\033[38;5;220m",
		Error:     "\033[38;5;196m",
		Bold:      "\033[1m",
		Reset:     "\033[0m",
	}

	// NoColorTheme has no escape codes at all.
	NoColorTheme = Theme{}

	currentTheme = DarkTheme
	themeMutex   sync.RWMutex
)

// GetCurrentTheme returns the active theme.
func GetCurrentTheme() Theme {
	themeMutex.RLock()
	defer themeMutex.RUnlock()
	return currentTheme
}

// SetCurrentTheme replaces the active theme.
func SetCurrentTheme(t Theme) {
	themeMutex.Lock()
	defer themeMutex.Unlock()
	currentTheme = t
}

// SelectTheme returns the theme for output written to f. Colors are
// disabled when noColor is set, when NO_COLOR is present in the environment
// (https://no-color.org/), or when f is not a terminal.
func SelectTheme(noColor bool, f *os.File) Theme {
	if noColor || !IsTerminal(f) {
		return NoColorTheme
	}
	if _, exists := os.LookupEnv("NO_COLOR"); exists {
		return NoColorTheme
	}
	return DarkTheme
}

// InitTheme activates SelectTheme(noColor, f).
func InitTheme(noColor bool, f *os.File) {
	SetCurrentTheme(SelectTheme(noColor, f))
}

// IsTerminal reports whether f is attached to a terminal, including Cygwin
// and MSYS pseudo-terminals.
func IsTerminal(f *os.File) bool {
	if f == nil {
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
