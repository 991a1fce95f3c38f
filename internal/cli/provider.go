package cli

import (
	apperrors "github.com/agbru/fibiter/internal/errors"
	"github.com/agbru/fibiter/internal/ui"
)

var _ apperrors.ColorProvider = CLIColorProvider{}

// CLIColorProvider implements apperrors.ColorProvider with the active ui theme.
type CLIColorProvider struct{}

// Red returns the error color of the current theme.
func (c CLIColorProvider) Red() string { return ui.ColorRed() }

// Yellow returns the warning color of the current theme.
func (c CLIColorProvider) Yellow() string { return ui.ColorYellow() }

// Reset returns the reset code of the current theme.
func (c CLIColorProvider) Reset() string { return ui.ColorReset() }
