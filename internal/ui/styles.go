// Package ui renders the styled terminal surfaces of the CLI: the color
// palette and the end-of-install report panel.
package ui

import "github.com/charmbracelet/lipgloss"

// Color palette - single magenta accent, ChittyOS brand color.
const (
	ColorMagenta    = "213" // Primary accent - bright magenta
	ColorMagentaDim = "133" // Dimmed magenta for borders
	ColorWhite      = "255" // Headers, important text
	ColorGray       = "245" // Secondary text, labels
	ColorDarkGray   = "238" // Box borders, separators
	ColorRed        = "196" // Errors
	ColorYellow     = "220" // Warnings
)

// Styles holds the lipgloss styles used by the report renderer.
type Styles struct {
	Header  lipgloss.Style
	Success lipgloss.Style
	Warning lipgloss.Style
	Error   lipgloss.Style
	Dim     lipgloss.Style
	Label   lipgloss.Style
	Panel   lipgloss.Style
}

// DefaultStyles returns the styled palette for TTY output.
func DefaultStyles() Styles {
	return Styles{
		Header:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(ColorMagenta)),
		Success: lipgloss.NewStyle().Foreground(lipgloss.Color(ColorMagenta)),
		Warning: lipgloss.NewStyle().Foreground(lipgloss.Color(ColorYellow)),
		Error:   lipgloss.NewStyle().Foreground(lipgloss.Color(ColorRed)),
		Dim:     lipgloss.NewStyle().Foreground(lipgloss.Color(ColorDarkGray)),
		Label:   lipgloss.NewStyle().Foreground(lipgloss.Color(ColorGray)),
		Panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(ColorMagentaDim)).
			Padding(0, 1),
	}
}

// NoColorStyles returns unstyled components for plain/non-TTY output.
func NoColorStyles() Styles {
	return Styles{
		Header:  lipgloss.NewStyle(),
		Success: lipgloss.NewStyle(),
		Warning: lipgloss.NewStyle(),
		Error:   lipgloss.NewStyle(),
		Dim:     lipgloss.NewStyle(),
		Label:   lipgloss.NewStyle(),
		Panel:   lipgloss.NewStyle(),
	}
}
