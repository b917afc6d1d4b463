package ui

import (
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/fatih/color"
	"github.com/lucasb-eyer/go-colorful"
)

// Terminal text helpers share the Brand colors with the lipgloss blocks.
// NO_COLOR and FORCE_COLOR are honored.

var (
	noColor    = os.Getenv("NO_COLOR") != ""
	forceColor = isForceColor()
)

func isForceColor() bool {
	fc := strings.TrimSpace(os.Getenv("FORCE_COLOR"))
	return fc != "" && fc != "0"
}

// IsRich returns true if the terminal supports rich output (colors)
func IsRich() bool {
	if noColor && !forceColor {
		return false
	}
	return !color.NoColor
}

// brand turns a Brand color into a truecolor printer. Unparsable colors
// print plain.
func brand(c lipgloss.Color, attrs ...color.Attribute) *color.Color {
	cc, err := colorful.Hex(string(c))
	if err != nil {
		return color.New(attrs...)
	}
	r, g, b := cc.RGB255()
	return color.RGB(int(r), int(g), int(b)).Add(attrs...)
}

var (
	styleAccentDim = brand(Brand.Accent, color.Faint)
	styleInfo      = brand(Brand.Info)
	styleSuccess   = brand(Brand.Success)
	styleWarn      = brand(Brand.Warn)
	styleError     = brand(Brand.Error)
	styleMuted     = brand(Brand.Muted)
	styleHeading   = brand(Brand.Accent, color.Bold)
	styleSubtle    = brand(Brand.Paper)
)

// AccentDim styles taglines and other secondary brand text.
func AccentDim(format string, a ...interface{}) string {
	return styleAccentDim.Sprintf(format, a...)
}

func Info(format string, a ...interface{}) string {
	return styleInfo.Sprintf(format, a...)
}

func Success(format string, a ...interface{}) string {
	return styleSuccess.Sprintf(format, a...)
}

func Warn(format string, a ...interface{}) string {
	return styleWarn.Sprintf(format, a...)
}

func Error(format string, a ...interface{}) string {
	return styleError.Sprintf(format, a...)
}

// Muted is for hints, labels and separators.
func Muted(format string, a ...interface{}) string {
	return styleMuted.Sprintf(format, a...)
}

// Heading is bold accent text for titles.
func Heading(format string, a ...interface{}) string {
	return styleHeading.Sprintf(format, a...)
}

func Subtle(format string, a ...interface{}) string {
	return styleSubtle.Sprintf(format, a...)
}

// Primary styles the spinner glyph.
func Primary(format string, a ...interface{}) string {
	return styleHeading.Sprintf(format, a...)
}
