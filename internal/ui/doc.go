// Package ui provides theme and color support for the command-line output.
// It exposes ANSI escape code accessors and a lipgloss panel style that both
// honor the active theme, including the colorless theme selected by
// -no-color or NO_COLOR.
package ui
