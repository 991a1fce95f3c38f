package app

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"time"

	"github.com/agbru/fibiter/internal/cli"
	"github.com/agbru/fibiter/internal/config"
	apperrors "github.com/agbru/fibiter/internal/errors"
	"github.com/agbru/fibiter/internal/fibonacci"
	"github.com/agbru/fibiter/internal/logging"
	"github.com/agbru/fibiter/internal/server"
	"github.com/agbru/fibiter/internal/ui"
	"github.com/agbru/fibiter/pkg/models"
)

// Application represents the fibiter application instance.
// It runs either a single calculation or the HTTP server.
type Application struct {
	// Config holds the parsed application configuration.
	Config config.AppConfig
	// Calculator computes F(n). New wires the instrumented linear calculator.
	Calculator server.Calculator
	// Logger is the structured logger, written to ErrWriter.
	Logger logging.Logger
	// ErrWriter is the writer for error output (typically os.Stderr).
	ErrWriter io.Writer
}

// New creates a new Application instance by parsing command-line arguments.
//
// Parameters:
//   - args: The command-line arguments (typically os.Args).
//   - errWriter: The writer for error output and logs.
//
// Returns:
//   - *Application: A new application instance.
//   - error: An error if configuration parsing or validation fails.
func New(args []string, errWriter io.Writer) (*Application, error) {
	programName := "fibiter"
	var cmdArgs []string
	if len(args) > 0 {
		programName = args[0]
		cmdArgs = args[1:]
	}

	cfg, err := config.ParseConfig(programName, cmdArgs, errWriter)
	if err != nil {
		return nil, err
	}

	// Validate already accepted the level name.
	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, apperrors.NewConfigError("invalid log level: %v", err)
	}
	logger := logging.NewLogger(errWriter, "fibiter", level)

	return &Application{
		Config:     cfg,
		Calculator: fibonacci.NewInstrumented(fibonacci.NewLinear(), logger),
		Logger:     logger,
		ErrWriter:  errWriter,
	}, nil
}

// Run executes the application based on the configured mode.
//
// Parameters:
//   - ctx: The context for managing cancellation.
//   - out: The writer for standard output.
//
// Returns:
//   - int: An exit code (0 for success, non-zero for errors).
func (a *Application) Run(ctx context.Context, out io.Writer) int {
	ui.InitTheme(a.Config.NoColor)

	if a.Config.ServerMode {
		return a.runServer(ctx)
	}
	return a.runCalculate(ctx, out)
}

// runServer serves the HTTP API until SIGINT/SIGTERM or ctx cancellation.
func (a *Application) runServer(ctx context.Context) int {
	ctx, stop := SetupSignals(ctx)
	defer stop()

	srv := server.NewServer(a.Calculator, a.Config, server.WithLogger(a.Logger))
	if err := srv.Start(ctx); err != nil {
		fmt.Fprintf(a.ErrWriter, "Server error: %v\n", err)
		return apperrors.ExitErrorGeneric
	}
	return apperrors.ExitSuccess
}

// runCalculate computes F(n) once and renders it in the configured format.
func (a *Application) runCalculate(ctx context.Context, out io.Writer) int {
	if err := ctx.Err(); err != nil {
		return apperrors.HandleCalculationError(err, a.ErrWriter, cli.CLIColorProvider{})
	}

	n := a.Config.N
	start := time.Now()
	result, err := a.Calculator.CalculateContext(ctx, n)
	duration := time.Since(start)

	if err != nil {
		if a.Config.JSONOutput {
			kind := models.ErrorKindInternal
			if errors.Is(err, fibonacci.ErrInvalidArgument) {
				kind = models.ErrorKindInvalidArgument
			}
			if jsonErr := cli.PrintJSONError(out, n, kind, err); jsonErr != nil {
				a.Logger.Error("writing JSON error", jsonErr)
			}
		}
		return apperrors.HandleCalculationError(err, a.ErrWriter, cli.CLIColorProvider{})
	}

	switch {
	case a.Config.JSONOutput:
		if err := cli.PrintJSONResult(out, n, result, duration, a.Calculator.Name(), a.Config.HexOutput); err != nil {
			fmt.Fprintf(a.ErrWriter, "Error: %v\n", apperrors.WrapError(err, "rendering F(%d)", n))
			return apperrors.ExitErrorGeneric
		}
	case a.Config.Quiet:
		cli.DisplayQuietResult(out, result, a.Config.HexOutput)
	default:
		cli.DisplayResult(out, result, n, duration, a.Calculator.Name(), a.Config.Details, a.Config.HexOutput)
	}
	return apperrors.ExitSuccess
}

// IsHelpError reports whether err comes from -h/--help, after which the
// application should exit successfully.
func IsHelpError(err error) bool {
	return errors.Is(err, flag.ErrHelp)
}
