package apperrors

import (
	"errors"
	"fmt"
	"io"

	"github.com/agbru/fibiter/internal/fibonacci"
)

// ColorProvider defines the interface for obtaining terminal color codes.
// This abstraction breaks the import cycle with cli.
type ColorProvider interface {
	Red() string
	Yellow() string
	Reset() string
}

// DefaultColorProvider provides no color codes (for non-terminal output).
type DefaultColorProvider struct{}

func (d DefaultColorProvider) Red() string    { return "" }
func (d DefaultColorProvider) Yellow() string { return "" }
func (d DefaultColorProvider) Reset() string  { return "" }

// HandleCalculationError formats and prints error messages related to failed calculations.
// It distinguishes a rejected index from cancellation and unexpected failures
// so the user gets specific feedback and the process a specific exit code.
//
// Parameters:
//   - err: The error that occurred.
//   - out: The io.Writer to which the error message will be written.
//   - colors: Provider for terminal color codes (can be nil for no colors).
//
// Returns:
//   - int: The appropriate exit code for the error type.
func HandleCalculationError(err error, out io.Writer, colors ColorProvider) int {
	if err == nil {
		return ExitSuccess
	}

	if colors == nil {
		colors = DefaultColorProvider{}
	}

	var indexErr *fibonacci.IndexError
	switch {
	case errors.As(err, &indexErr):
		fmt.Fprintf(out, "%sStatus: Invalid argument.%s Index %d rejected: %s (supported range is %d..%d).\n",
			colors.Red(), colors.Reset(), indexErr.Index, indexErr.Reason, fibonacci.MinIndex, fibonacci.MaxIndex)
		return ExitErrorInvalidArgument
	case errors.Is(err, fibonacci.ErrInvalidArgument):
		fmt.Fprintf(out, "%sStatus: Invalid argument.%s %v\n", colors.Red(), colors.Reset(), err)
		return ExitErrorInvalidArgument
	case IsContextError(err):
		fmt.Fprintf(out, "%sStatus: Canceled.%s\n", colors.Yellow(), colors.Reset())
		return ExitErrorCanceled
	}
	fmt.Fprintf(out, "Status: Failure. An unexpected error occurred: %v\n", err)
	return ExitErrorGeneric
}
