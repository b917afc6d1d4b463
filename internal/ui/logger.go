package ui

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync/atomic"
	"time"

	"github.com/fatih/color"
)

var (
	clrDim    = brand(Brand.Muted)
	clrSubtle = color.New(color.FgWhite)

	clrPrimary = brand(Brand.Accent, color.Bold)
	clrAccent  = brand(Brand.Info, color.Bold)

	clrSuccess = brand(Brand.Success)
	clrError   = brand(Brand.Error)
	clrWarning = brand(Brand.Warn)
	clrInfo    = color.New(color.FgBlue)
)

const (
	boxTopLeft     = "╭"
	boxTopRight    = "╮"
	boxBottomLeft  = "╰"
	boxBottomRight = "╯"
	boxHorizontal  = "─"
	boxVertical    = "│"
)

// Level is the minimum severity LogStatus prints.
type Level int32

const (
	LevelDebug Level = iota - 1
	LevelInfo
	LevelWarn
	LevelError
)

// ParseLevel maps a LOG_LEVEL name to a Level.
func ParseLevel(name string) (Level, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return LevelDebug, true
	case "info":
		return LevelInfo, true
	case "warn", "warning":
		return LevelWarn, true
	case "error":
		return LevelError, true
	}
	return LevelInfo, false
}

var (
	debug  atomic.Bool
	level  atomic.Int32
	output io.Writer = os.Stdout
)

// SetDebug toggles LogDebug output.
func SetDebug(on bool) { debug.Store(on) }

// SetLevel drops LogStatus messages below l. LevelDebug also turns on LogDebug.
func SetLevel(l Level) { level.Store(int32(l)) }

// DebugEnabled reports whether LogDebug prints anything.
func DebugEnabled() bool { return debug.Load() || Level(level.Load()) <= LevelDebug }

// SetOutput redirects the log helpers. Not safe to call while logging.
func SetOutput(w io.Writer) { output = w }

func categoryLevel(category string) Level {
	switch category {
	case "error":
		return LevelError
	case "warning":
		return LevelWarn
	}
	return LevelInfo
}

// LogStatus displays a status message with appropriate styling
func LogStatus(category, message string) {
	if categoryLevel(category) < Level(level.Load()) {
		return
	}
	ts := clrDim.Sprint(time.Now().Format("15:04:05"))

	var icon string
	var styledMsg string

	switch category {
	case "success":
		icon = clrSuccess.Sprint("✔")
		styledMsg = clrSuccess.Sprint(message)
	case "error":
		icon = clrError.Sprint("✖")
		styledMsg = clrError.Sprint(message)
	case "warning":
		icon = clrWarning.Sprint("⚠")
		styledMsg = clrWarning.Sprint(message)
	case "info":
		icon = clrInfo.Sprint("ℹ")
		styledMsg = clrSubtle.Sprint(message)
	default:
		icon = clrDim.Sprint("●")
		styledMsg = clrSubtle.Sprint(message)
	}

	fmt.Fprintf(output, "%s  %s  %s\n", ts, icon, styledMsg)
}

// LogDebug prints message only when debug output is on. Raw model text
// goes through here.
func LogDebug(message string) {
	if !DebugEnabled() {
		return
	}
	ts := clrDim.Sprint(time.Now().Format("15:04:05"))
	fmt.Fprintf(output, "%s  %s  %s\n", ts, clrDim.Sprint("·"), clrDim.Sprint(message))
}

// LogSection creates a section header
func LogSection(title string) {
	fmt.Fprintln(output)
	header := fmt.Sprintf("%s %s %s",
		clrDim.Sprint("──"),
		clrAccent.Sprint(title),
		clrDim.Sprint(strings.Repeat("─", max(0, 50-len(title)))))
	fmt.Fprintln(output, header)
}

// LogGroup starts a grouped block of messages
func LogGroup(title string) {
	fmt.Fprintln(output)
	top := clrDim.Sprintf("%s%s %s %s%s",
		boxTopLeft,
		strings.Repeat(boxHorizontal, 2),
		clrPrimary.Sprint(title),
		clrDim.Sprint(strings.Repeat(boxHorizontal, max(0, 50-len(title)))),
		boxTopRight)
	fmt.Fprintln(output, top)
}

// LogGroupEnd closes a grouped block
func LogGroupEnd() {
	bottom := clrDim.Sprint(boxBottomLeft + strings.Repeat(boxHorizontal, 56) + boxBottomRight)
	fmt.Fprintln(output, bottom)
	fmt.Fprintln(output)
}

// LogGroupItem logs an item within a group
func LogGroupItem(label, value string) {
	line := fmt.Sprintf("%s  %s %s",
		clrDim.Sprint(boxVertical),
		clrDim.Sprint(label+":"),
		clrAccent.Sprint(value))
	fmt.Fprintln(output, line)
}

// LogRequest writes one access log line.
func LogRequest(method, path string, status int, clientIP string, elapsed time.Duration, requestID string) {
	ts := clrDim.Sprint(time.Now().Format("15:04:05"))

	arrow := clrSuccess.Sprint("→")
	code := clrSuccess.Sprintf("%d", status)
	switch {
	case status >= 500:
		arrow = clrError.Sprint("→")
		code = clrError.Sprintf("%d", status)
	case status >= 400:
		arrow = clrWarning.Sprint("→")
		code = clrWarning.Sprintf("%d", status)
	}

	fmt.Fprintf(output, "%s  %s  %s %s  %s  %s  %s  %s\n",
		ts,
		arrow,
		clrSubtle.Sprintf("%-7s", method),
		clrAccent.Sprintf("%-28s", path),
		code,
		clrDim.Sprintf("%-16s", clientIP),
		clrSubtle.Sprintf("%8s", formatElapsed(elapsed)),
		clrDim.Sprint(requestID))
}

// formatElapsed renders a request duration compactly
func formatElapsed(d time.Duration) string {
	switch {
	case d < time.Millisecond:
		return fmt.Sprintf("%dµs", d.Microseconds())
	case d < time.Second:
		return fmt.Sprintf("%dms", d.Milliseconds())
	default:
		return fmt.Sprintf("%.2fs", d.Seconds())
	}
}

// PrintFooter displays a dim footer message
func PrintFooter(message string) {
	fmt.Fprintln(output)
	fmt.Fprintf(output, "  %s %s\n", clrDim.Sprint("▸"), clrDim.Sprint(message))
}
