package ui

import "github.com/charmbracelet/lipgloss"

// Brand colors for lipgloss-rendered blocks (notes, swatch frames).
var Brand = struct {
	Accent  lipgloss.Color
	Info    lipgloss.Color
	Success lipgloss.Color
	Warn    lipgloss.Color
	Error   lipgloss.Color
	Muted   lipgloss.Color
	Ink     lipgloss.Color
	Paper   lipgloss.Color
}{
	Accent:  lipgloss.Color("#BB8FCE"),
	Info:    lipgloss.Color("#98D8C8"),
	Success: lipgloss.Color("#8FBC8F"),
	Warn:    lipgloss.Color("#F8C471"),
	Error:   lipgloss.Color("#E23D2D"),
	Muted:   lipgloss.Color("#8B7F77"),
	Ink:     lipgloss.Color("#1A1A1A"),
	Paper:   lipgloss.Color("#FAFAFA"),
}
