package cli

import (
	apperrors "github.com/agbru/fibbench/internal/errors"
	"github.com/agbru/fibbench/internal/ui"
)

var _ apperrors.ColorProvider = CLIColorProvider{}

// CLIColorProvider implements apperrors.ColorProvider with the current ui
// theme.
type CLIColorProvider struct{}

// Yellow returns the warning color of the current theme.
func (c CLIColorProvider) Yellow() string { return ui.ColorYellow() }

// Red returns the error color of the current theme.
func (c CLIColorProvider) Red() string { return ui.ColorRed() }

// Reset returns the reset code of the current theme.
func (c CLIColorProvider) Reset() string { return ui.ColorReset() }
