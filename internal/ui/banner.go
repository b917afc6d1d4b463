package ui

import (
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/fatih/color"
)

var bannerArt = []string{
	"██████╗  █████╗ ██╗     ███████╗████████╗████████╗███████╗",
	"██╔══██╗██╔══██╗██║     ██╔════╝╚══██╔══╝╚══██╔══╝██╔════╝",
	"██████╔╝███████║██║     █████╗     ██║      ██║   █████╗  ",
	"██╔═══╝ ██╔══██║██║     ██╔══╝     ██║      ██║   ██╔══╝  ",
	"██║     ██║  ██║███████╗███████╗   ██║      ██║   ███████╗",
	"╚═╝     ╚═╝  ╚═╝╚══════╝╚══════╝   ╚═╝      ╚═╝   ╚══════╝",
}

// one hue per row, matching the default palette
var bannerRows = []color.Attribute{
	color.FgHiGreen,
	color.FgHiCyan,
	color.FgHiYellow,
	color.FgYellow,
	color.FgHiMagenta,
	color.FgMagenta,
}

var bannerOnce sync.Once

// FormatBannerArt returns the ASCII banner, one color per row
func FormatBannerArt() string {
	if !IsRich() {
		return strings.Join(bannerArt, "\n")
	}

	lines := make([]string, len(bannerArt))
	for i, line := range bannerArt {
		var b strings.Builder
		fill := color.New(bannerRows[i%len(bannerRows)], color.Bold)
		for _, ch := range line {
			switch ch {
			case '█':
				b.WriteString(fill.Sprint(string(ch)))
			case ' ':
				b.WriteRune(ch)
			default:
				b.WriteString(Muted("%c", ch))
			}
		}
		lines[i] = b.String()
	}
	return strings.Join(lines, "\n")
}

// FormatBannerLine returns the version/tagline line
func FormatBannerLine(version, tagline string) string {
	title := "◆ PALETTE API"

	if IsRich() {
		return fmt.Sprintf("%s %s %s %s",
			Heading("%s", title),
			Info("%s", version),
			Muted("·"),
			AccentDim("%s", tagline))
	}
	return fmt.Sprintf("%s %s · %s", title, version, tagline)
}

// EmitBanner displays the banner once, respecting TTY and flags
func EmitBanner(version, tagline string) {
	if !isTTY() {
		return
	}
	for _, arg := range os.Args {
		if arg == "--json" || arg == "--version" || arg == "-v" {
			return
		}
	}

	bannerOnce.Do(func() {
		fmt.Println()
		fmt.Println(FormatBannerArt())
		fmt.Println()
		fmt.Println(FormatBannerLine(version, tagline))
		fmt.Println()
	})
}

// isTTY checks if stdout is a terminal
func isTTY() bool {
	fi, err := os.Stdout.Stat()
	if err != nil {
		return false
	}
	return (fi.Mode() & os.ModeCharDevice) != 0
}
