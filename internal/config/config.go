// Package config provides the configuration management for the fibiter application.
// It defines the configuration structure, parses command-line flags, applies
// environment overrides and validates the result.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strconv"

	apperrors "github.com/agbru/fibiter/internal/errors"
	"github.com/agbru/fibiter/internal/fibonacci"
	"github.com/agbru/fibiter/internal/logging"
)

const (
	// EnvPrefix is the prefix for all environment variables used by fibiter.
	EnvPrefix = "FIBITER_"
)

// Default configuration values.
const (
	// DefaultN is the default Fibonacci index to calculate.
	DefaultN = 10
	// DefaultPort is the default server port.
	DefaultPort = "8080"
	// DefaultLogLevel is the default zerolog level name.
	DefaultLogLevel = "info"
)

// AppConfig aggregates the application's configuration parameters.
type AppConfig struct {
	// N is the index of the Fibonacci number to be calculated. It is not
	// range-checked here: the calculator owns that rule and reports it as an
	// invalid argument.
	N int
	// Details, if true, adds the bit length and digit count to the report.
	Details bool
	// JSONOutput, if true, outputs the result in JSON format.
	JSONOutput bool
	// Quiet mode prints only the value, for scripting.
	Quiet bool
	// HexOutput, if true, displays the result in hexadecimal format.
	HexOutput bool
	// NoColor, if true, disables all color output. NO_COLOR is honoured as well.
	NoColor bool
	// ServerMode, if true, starts the application as an HTTP server.
	ServerMode bool
	// Port specifies the port to listen on in server mode.
	Port string
	// LogLevel is the minimum level written by the structured logger.
	LogLevel string
}

// Validate checks the semantic consistency of the configuration parameters.
//
// Returns:
//   - error: A ConfigError if the configuration is invalid, nil otherwise.
func (c AppConfig) Validate() error {
	port, err := strconv.Atoi(c.Port)
	if err != nil || port < 1 || port > 65535 {
		return apperrors.NewConfigError("invalid port %q: must be a number between 1 and 65535", c.Port)
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return apperrors.NewConfigError("invalid log level: %v", err)
	}
	if c.Quiet && c.JSONOutput {
		return apperrors.NewConfigError("-quiet and -json cannot be combined")
	}
	return nil
}

// ParseConfig parses the command-line arguments and populates an AppConfig.
// Flags take priority over FIBITER_* environment variables, which take
// priority over the defaults.
//
// Parameters:
//   - programName: The name of the program, used in the usage message.
//   - args: The command-line arguments (typically os.Args[1:]).
//   - errorWriter: Where parsing errors and usage information are printed.
//
// Returns:
//   - AppConfig: The populated configuration struct.
//   - error: flag.ErrHelp for -h, or an error if parsing or validation fails.
func ParseConfig(programName string, args []string, errorWriter io.Writer) (AppConfig, error) {
	fs := flag.NewFlagSet(programName, flag.ContinueOnError)
	fs.SetOutput(errorWriter)

	config := AppConfig{}
	nHelp := fmt.Sprintf("Index n of the Fibonacci number to calculate (%d to %d).", fibonacci.MinIndex, fibonacci.MaxIndex)
	fs.IntVar(&config.N, "n", DefaultN, nHelp)
	fs.BoolVar(&config.Details, "d", false, "Display result metadata (bit length, digit count).")
	fs.BoolVar(&config.Details, "details", false, "Alias for -d.")
	fs.BoolVar(&config.JSONOutput, "json", false, "Output results in JSON format.")
	fs.BoolVar(&config.Quiet, "quiet", false, "Quiet mode - print only the value.")
	fs.BoolVar(&config.Quiet, "q", false, "Quiet mode (shorthand).")
	fs.BoolVar(&config.HexOutput, "hex", false, "Display result in hexadecimal format.")
	fs.BoolVar(&config.NoColor, "no-color", false, "Disable colored output (also respects NO_COLOR env var).")
	fs.BoolVar(&config.ServerMode, "server", false, "Start in HTTP server mode.")
	fs.StringVar(&config.Port, "port", DefaultPort, "Port to listen on in server mode.")
	fs.StringVar(&config.LogLevel, "log-level", DefaultLogLevel, "Log level: trace, debug, info, warn, error, off.")

	setCustomUsage(fs)

	if err := fs.Parse(args); err != nil {
		return AppConfig{}, err
	}
	if fs.NArg() > 0 {
		fmt.Fprintf(errorWriter, "Configuration error: unexpected arguments %v\n", fs.Args())
		fs.Usage()
		return AppConfig{}, apperrors.NewConfigError("unexpected arguments: %v", fs.Args())
	}

	applyEnvOverrides(&config, fs)

	if err := config.Validate(); err != nil {
		fmt.Fprintln(errorWriter, "Configuration error:", err)
		fs.Usage()
		return AppConfig{}, errors.Join(errors.New("invalid configuration"), err)
	}
	return config, nil
}
