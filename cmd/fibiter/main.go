// Command fibiter computes Fibonacci numbers with the iterative algorithm,
// either once from the command line or behind an HTTP API.
package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/agbru/fibiter/internal/app"
	apperrors "github.com/agbru/fibiter/internal/errors"
)

func main() {
	os.Exit(run(os.Args, os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	var flags []string
	if len(args) > 0 {
		flags = args[1:]
	}
	if app.HasVersionFlag(flags) {
		if err := app.PrintVersionFor(flags, stdout); err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return apperrors.ExitErrorGeneric
		}
		return apperrors.ExitSuccess
	}

	application, err := app.New(args, stderr)
	if err != nil {
		if app.IsHelpError(err) {
			return apperrors.ExitSuccess
		}
		return apperrors.ExitErrorConfig
	}

	return application.Run(context.Background(), stdout)
}
