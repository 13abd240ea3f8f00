package ui

import (
	"os"
	"sync"

	"github.com/charmbracelet/lipgloss"
)

// Theme is a set of ANSI escape codes for the CLI output.
type Theme struct {
	Name      string
	Primary   string // candidates and values
	Secondary string // labels and separators
	Success   string // primes found, completed searches
	Warning   string
	Error     string
	Info      string // hex renderings, magnitudes
	Bold      string
	Underline string
	Reset     string
}

// Theme names accepted by SetTheme.
const (
	ThemeDark  = "dark"
	ThemeLight = "light"
	ThemeNone  = "none"
)

var (
	// DarkTheme targets dark terminal backgrounds.
	DarkTheme = Theme{
		Name:      ThemeDark,
		Primary:   "\033[38;5;45m",
		Secondary: "\033[38;5;245m",
		Success:   "\033[38;5;82m",
		Warning:   "\033[38;5;220m",
		Error:     "\033[38;5;196m",
		Info:      "\033[38;5;177m",
		Bold:      "\033[1m",
		Underline: "\033[4m",
		Reset:     "\033[0m",
	}

	// LightTheme targets light terminal backgrounds.
	LightTheme = Theme{
		Name:      ThemeLight,
		Primary:   "\033[38;5;25m",
		Secondary: "\033[38;5;240m",
		Success:   "\033[38;5;28m",
		Warning:   "\033[38;5;130m",
		Error:     "\033[38;5;124m",
		Info:      "\033[38;5;90m",
		Bold:      "\033[1m",
		Underline: "\033[4m",
		Reset:     "\033[0m",
	}

	// NoColorTheme disables every escape code. It is selected by --no-color
	// and by the NO_COLOR environment variable.
	NoColorTheme = Theme{Name: ThemeNone}

	currentTheme = DarkTheme
	themeMutex   sync.RWMutex
)

// TUITheme holds the lipgloss colors of the dashboard.
type TUITheme struct {
	Text    lipgloss.TerminalColor
	Border  lipgloss.TerminalColor
	Accent  lipgloss.TerminalColor
	Success lipgloss.TerminalColor
	Warning lipgloss.TerminalColor
	Error   lipgloss.TerminalColor
	Dim     lipgloss.TerminalColor
	Info    lipgloss.TerminalColor
}

var (
	// DarkTUITheme is the default dashboard palette.
	DarkTUITheme = TUITheme{
		Text:    lipgloss.Color("#DADADA"),
		Border:  lipgloss.Color("#2E8B9A"),
		Accent:  lipgloss.Color("#39C5D6"),
		Success: lipgloss.Color("#7BD88F"),
		Warning: lipgloss.Color("#F2C14E"),
		Error:   lipgloss.Color("#F25F5C"),
		Dim:     lipgloss.Color("#6C6C6C"),
		Info:    lipgloss.Color("#B48EAD"),
	}

	// NoColorTUITheme renders with the terminal's default colors.
	NoColorTUITheme = TUITheme{
		Text:    lipgloss.NoColor{},
		Border:  lipgloss.NoColor{},
		Accent:  lipgloss.NoColor{},
		Success: lipgloss.NoColor{},
		Warning: lipgloss.NoColor{},
		Error:   lipgloss.NoColor{},
		Dim:     lipgloss.NoColor{},
		Info:    lipgloss.NoColor{},
	}
)

// GetCurrentTUITheme returns the dashboard palette matching the active theme.
func GetCurrentTUITheme() TUITheme {
	themeMutex.RLock()
	defer themeMutex.RUnlock()

	if currentTheme.Name == ThemeNone {
		return NoColorTUITheme
	}
	return DarkTUITheme
}

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

// SetTheme activates a theme by name. Unknown names select the dark theme.
func SetTheme(name string) {
	themeMutex.Lock()
	defer themeMutex.Unlock()

	switch name {
	case ThemeLight:
		currentTheme = LightTheme
	case ThemeNone:
		currentTheme = NoColorTheme
	default:
		currentTheme = DarkTheme
	}
}

// InitTheme selects the theme at startup. Colors are disabled when noColor
// is set or when NO_COLOR is present in the environment (https://no-color.org/).
func InitTheme(noColor bool) {
	themeMutex.Lock()
	defer themeMutex.Unlock()

	if noColor {
		currentTheme = NoColorTheme
		return
	}
	if _, exists := os.LookupEnv("NO_COLOR"); exists {
		currentTheme = NoColorTheme
		return
	}
	currentTheme = DarkTheme
}
