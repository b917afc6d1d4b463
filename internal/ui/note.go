package ui

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Note displays a boxed message with optional title
func Note(message, title string) {
	fmt.Println()
	fmt.Println(RenderNote(message, title, Brand.Muted))
	fmt.Println()
}

// RenderNote returns message wrapped to the terminal and framed by a
// rounded border in the given color.
func RenderNote(message, title string, border lipgloss.Color) string {
	body := lipgloss.NewStyle().Width(noteWidth()).Render(message)
	if title != "" {
		heading := lipgloss.NewStyle().Bold(true).Foreground(border).Render(title)
		body = lipgloss.JoinVertical(lipgloss.Left, heading, "", body)
	}

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Padding(0, 1)
	if !IsRich() {
		box = box.BorderForeground(lipgloss.NoColor{})
	}
	return box.Render(body)
}

// noteWidth derives the wrap width from COLUMNS, capped to 40..80
func noteWidth() int {
	columns := 80
	if v, ok := os.LookupEnv("COLUMNS"); ok {
		if n, err := strconv.Atoi(strings.TrimSpace(v)); err == nil && n > 0 {
			columns = n
		}
	}
	return min(max(columns-10, 40), 80)
}

// InfoNote displays an info-styled note
func InfoNote(message string) {
	fmt.Println()
	fmt.Println(RenderNote(message, "ℹ Info", Brand.Info))
	fmt.Println()
}

// WarningNote displays a warning-styled note
func WarningNote(message string) {
	fmt.Println()
	fmt.Println(RenderNote(message, "⚠ Warning", Brand.Warn))
	fmt.Println()
}

// ErrorNote displays an error-styled note
func ErrorNote(message string) {
	fmt.Println()
	fmt.Println(RenderNote(message, "✗ Error", Brand.Error))
	fmt.Println()
}

// BulletList joins items as "• item" lines.
func BulletList(items []string) string {
	lines := make([]string, len(items))
	for i, item := range items {
		lines[i] = "• " + item
	}
	return strings.Join(lines, "\n")
}
