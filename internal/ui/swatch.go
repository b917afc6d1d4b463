package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
)

const swatchWidth = 11

// Swatch renders one color block labelled with its hex code. The label is
// dark on light colors and light on dark ones.
func Swatch(hex string) string {
	style := lipgloss.NewStyle().
		Width(swatchWidth).
		Align(lipgloss.Center).
		Padding(1, 0)

	c, err := colorful.Hex(hex)
	if err != nil || !IsRich() {
		return style.Border(lipgloss.NormalBorder()).Render(hex)
	}
	return style.
		Background(lipgloss.Color(c.Hex())).
		Foreground(labelColor(c)).
		Render(strings.ToUpper(hex))
}

// labelColor picks ink or paper for text drawn over c.
func labelColor(c colorful.Color) lipgloss.Color {
	l, _, _ := c.Lab()
	if l > 0.6 {
		return Brand.Ink
	}
	return Brand.Paper
}

// RenderSwatches lays the colors out side by side with a 1-based index row
// underneath, matching the numbering used by --copy.
func RenderSwatches(colors []string) string {
	blocks := make([]string, 0, len(colors))
	for i, hex := range colors {
		index := lipgloss.NewStyle().
			Width(swatchWidth).
			Align(lipgloss.Center).
			Foreground(Brand.Muted).
			Render(fmt.Sprintf("%d", i+1))
		blocks = append(blocks, lipgloss.JoinVertical(lipgloss.Center, Swatch(hex), index))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, withGaps(blocks)...)
}

func withGaps(blocks []string) []string {
	if len(blocks) < 2 {
		return blocks
	}
	out := make([]string, 0, 2*len(blocks)-1)
	for i, b := range blocks {
		if i > 0 {
			out = append(out, " ")
		}
		out = append(out, b)
	}
	return out
}

// DescribeColor returns "#RRGGBB  rgb(r, g, b)  hsl(h, s%, l%)".
func DescribeColor(hex string) string {
	c, err := colorful.Hex(hex)
	if err != nil {
		return hex
	}
	r, g, b := c.RGB255()
	h, s, l := c.Hsl()
	return fmt.Sprintf("%s  rgb(%d, %d, %d)  hsl(%.0f, %.0f%%, %.0f%%)",
		strings.ToUpper(hex), r, g, b, h, s*100, l*100)
}
