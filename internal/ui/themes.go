// Package ui holds the color themes shared by the command-line output, the
// usage text and the error reporter. Every color is an ANSI escape sequence
// taken from the active theme, so switching to NoColorTheme turns all styling
// off at once.
package ui

import (
	"os"
	"strings"
	"sync"

	"golang.org/x/term"
)

// ThemeEnvVar selects the theme by name when colors are enabled.
const ThemeEnvVar = "FIBITER_THEME"

// Theme defines a color scheme for terminal output.
type Theme struct {
	Name      string
	Primary   string
	Secondary string
	Success   string
	Warning   string
	Error     string
	Bold      string
	Reset     string
}

var (
	// DarkTheme targets dark terminal backgrounds.
	DarkTheme = Theme{
		Name:      "dark",
		Primary:   "\033[38;5;39m",
		Secondary: "\033[38;5;245m",
		Success:   "\033[38;5;82m",
		Warning:   "\033[38;5;220m",
		Error:     "\033[38;5;196m",
		Bold:      "\033[1m",
		Reset:     "\033[0m",
	}

	// LightTheme targets light terminal backgrounds.
	LightTheme = Theme{
		Name:      "light",
		Primary:   "\033[38;5;27m",
		Secondary: "\033[38;5;240m",
		Success:   "\033[38;5;28m",
		Warning:   "\033[38;5;130m",
		Error:     "\033[38;5;124m",
		Bold:      "\033[1m",
		Reset:     "\033[0m",
	}

	// NoColorTheme emits no escape codes at all.
	NoColorTheme = Theme{Name: "none"}

	currentTheme = DarkTheme
	themeMutex   sync.RWMutex

	// stdoutIsTerminal reports whether standard output is attached to a TTY.
	// Tests replace it to make InitTheme deterministic.
	stdoutIsTerminal = func() bool {
		return term.IsTerminal(int(os.Stdout.Fd()))
	}
)

// GetCurrentTheme returns the active theme.
func GetCurrentTheme() Theme {
	themeMutex.RLock()
	defer themeMutex.RUnlock()
	return currentTheme
}

// SetCurrentTheme replaces the active theme. Tests use it to restore state.
func SetCurrentTheme(t Theme) {
	themeMutex.Lock()
	defer themeMutex.Unlock()
	currentTheme = t
}

// ThemeByName resolves "dark", "light" or "none". Unknown names give DarkTheme.
func ThemeByName(name string) Theme {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "light":
		return LightTheme
	case "none":
		return NoColorTheme
	default:
		return DarkTheme
	}
}

// SetTheme changes the active theme by name.
func SetTheme(name string) {
	SetCurrentTheme(ThemeByName(name))
}

// InitTheme picks the theme for this process. Colors are disabled when
// noColor is set, when NO_COLOR is present in the environment
// (https://no-color.org/), or when stdout is not a terminal. Otherwise
// FIBITER_THEME chooses between the dark and light palettes.
func InitTheme(noColor bool) {
	SetCurrentTheme(resolveTheme(noColor))
}

func resolveTheme(noColor bool) Theme {
	if noColor {
		return NoColorTheme
	}
	if _, exists := os.LookupEnv("NO_COLOR"); exists {
		return NoColorTheme
	}
	if !stdoutIsTerminal() {
		return NoColorTheme
	}
	return ThemeByName(os.Getenv(ThemeEnvVar))
}
