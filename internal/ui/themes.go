package ui

import (
	"os"
	"sync"

	"github.com/charmbracelet/lipgloss"
)

// Theme defines a color scheme for UI output.
// Each field contains an ANSI escape code for the corresponding color category.
type Theme struct {
	// Name is the identifier of the theme.
	Name string
	// Primary is the main accent color for important elements.
	Primary string
	// Secondary is used for less prominent elements.
	Secondary string
	// Success indicates positive outcomes or completed operations.
	Success string
	// Warning is used for caution messages or non-critical issues.
	Warning string
	// Error indicates failures or critical issues.
	Error string
	// Info is used for informational messages.
	Info string
	// Bold is the escape code for bold text.
	Bold string
	// Underline is the escape code for underlined text.
	Underline string
	// Reset clears all formatting.
	Reset string
}

var (
	// DarkTheme is optimized for dark terminal backgrounds.
	DarkTheme = Theme{
		Name:      "dark",
		Primary:   "\033[38;5;39m",  // Bright blue
		Secondary: "\033[38;5;245m", // Grey
		Success:   "\033[38;5;82m",  // Bright green
		Warning:   "\033[38;5;220m", // Yellow
		Error:     "\033[38;5;196m", // Red
		Info:      "\033[38;5;141m", // Purple
		Bold:      "\033[1m",
		Underline: "\033[4m",
		Reset:     "\033[0m",
	}

	// LightTheme is optimized for light terminal backgrounds.
	LightTheme = Theme{
		Name:      "light",
		Primary:   "\033[38;5;27m",  // Dark blue
		Secondary: "\033[38;5;240m", // Dark grey
		Success:   "\033[38;5;28m",  // Dark green
		Warning:   "\033[38;5;130m", // Orange
		Error:     "\033[38;5;124m", // Dark red
		Info:      "\033[38;5;54m",  // Dark purple
		Bold:      "\033[1m",
		Underline: "\033[4m",
		Reset:     "\033[0m",
	}

	// NoColorTheme disables all color output.
	NoColorTheme = Theme{Name: "none"}

	currentTheme = DarkTheme
	themeMutex   sync.RWMutex
)

// PanelTheme holds the lipgloss colors of the summary panel.
type PanelTheme struct {
	Border lipgloss.TerminalColor
	Title  lipgloss.TerminalColor
	Value  lipgloss.TerminalColor
	Dim    lipgloss.TerminalColor
}

var (
	// DarkPanelTheme matches DarkTheme.
	DarkPanelTheme = PanelTheme{
		Border: lipgloss.Color("#0087FF"),
		Title:  lipgloss.Color("#5FD7FF"),
		Value:  lipgloss.Color("#87FF5F"),
		Dim:    lipgloss.Color("#8A8A8A"),
	}

	// LightPanelTheme matches LightTheme.
	LightPanelTheme = PanelTheme{
		Border: lipgloss.Color("#005FFF"),
		Title:  lipgloss.Color("#005F87"),
		Value:  lipgloss.Color("#008700"),
		Dim:    lipgloss.Color("#585858"),
	}

	// NoColorPanelTheme renders with the terminal's default colors.
	NoColorPanelTheme = PanelTheme{
		Border: lipgloss.NoColor{},
		Title:  lipgloss.NoColor{},
		Value:  lipgloss.NoColor{},
		Dim:    lipgloss.NoColor{},
	}
)

// GetPanelTheme returns the panel colors matching the active theme.
func GetPanelTheme() PanelTheme {
	themeMutex.RLock()
	defer themeMutex.RUnlock()

	switch currentTheme.Name {
	case "none":
		return NoColorPanelTheme
	case "light":
		return LightPanelTheme
	default:
		return DarkPanelTheme
	}
}

// PanelStyle returns the bordered lipgloss style of the summary panel.
func PanelStyle() lipgloss.Style {
	pt := GetPanelTheme()
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(pt.Border).
		Padding(0, 1)
}

// GetCurrentTheme returns the currently active theme in a thread-safe manner.
func GetCurrentTheme() Theme {
	themeMutex.RLock()
	defer themeMutex.RUnlock()
	return currentTheme
}

// SetCurrentTheme sets the currently active theme in a thread-safe manner.
// This is primarily used for testing purposes to restore state.
func SetCurrentTheme(t Theme) {
	themeMutex.Lock()
	defer themeMutex.Unlock()
	currentTheme = t
}

// SetTheme changes the active theme by name.
// Valid names are: "dark", "light", "none". Unknown names select dark.
func SetTheme(name string) {
	themeMutex.Lock()
	defer themeMutex.Unlock()

	switch name {
	case "light":
		currentTheme = LightTheme
	case "none":
		currentTheme = NoColorTheme
	default:
		currentTheme = DarkTheme
	}
}

// InitTheme initializes the theme based on the noColor flag and environment.
// It respects the NO_COLOR environment variable (https://no-color.org/).
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
	if os.Getenv("PICALC_THEME") == "light" {
		currentTheme = LightTheme
		return
	}
	currentTheme = DarkTheme
}
