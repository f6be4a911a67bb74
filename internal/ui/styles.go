package ui

import "github.com/charmbracelet/lipgloss"

// Color palette (ANSI 256).
const (
	ColorRed    = "196"
	ColorYellow = "220"
	ColorGray   = "245"
)

// Styles holds the lipgloss styles used for stderr diagnostics.
type Styles struct {
	Error lipgloss.Style
	Hint  lipgloss.Style
	Dim   lipgloss.Style
}

// DefaultStyles returns the styles used on a color terminal.
func DefaultStyles() Styles {
	return Styles{
		Error: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(ColorRed)),
		Hint:  lipgloss.NewStyle().Foreground(lipgloss.Color(ColorYellow)),
		Dim:   lipgloss.NewStyle().Foreground(lipgloss.Color(ColorGray)),
	}
}
