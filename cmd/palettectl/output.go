package main

import (
	"encoding/json"
	"fmt"

	"palette-api/internal/palette"
	"palette-api/internal/ui"
)

// Where a shown palette came from.
const (
	sourceDefault  = "default"
	sourceLocal    = "local"
	sourceAI       = "ai"
	sourceFallback = "fallback"
)

type jsonOutput struct {
	Colors palette.Palette `json:"colors"`
	Source string          `json:"source"`
	Theme  string          `json:"theme,omitempty"`
	Copied string          `json:"copied,omitempty"`
	Export string          `json:"export,omitempty"`
}

// show prints p and then applies --copy and --export.
func (a *app) show(p palette.Palette, source, theme string) error {
	n := a.v.GetInt("copy")
	if n < 0 || n > palette.Size {
		return fmt.Errorf("--copy must be between 1 and %d", palette.Size)
	}

	out := jsonOutput{Colors: p, Source: source, Theme: theme}

	if dir := a.v.GetString("export"); dir != "" {
		path, err := palette.WriteExport(dir, p.Slice(), a.now())
		if err != nil {
			return fmt.Errorf("export: %w", err)
		}
		out.Export = path
	}

	copied := false
	if n > 0 {
		if copied = a.copy(p[n-1]); copied {
			out.Copied = p[n-1]
		}
	}

	if a.v.GetBool("json") {
		enc := json.NewEncoder(a.out)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}

	if theme != "" {
		fmt.Fprintln(a.out, ui.Heading("Theme: %s", theme))
	}
	fmt.Fprintln(a.out, ui.RenderSwatches(p.Slice()))
	fmt.Fprintln(a.out)
	for i, c := range p {
		fmt.Fprintf(a.out, "  %d  %s\n", i+1, ui.DescribeColor(c))
	}

	if n > 0 {
		if copied {
			fmt.Fprintln(a.out, ui.Success("Copied! %s", p[n-1]))
		} else {
			fmt.Fprintln(a.out, ui.Warn("Could not copy %s: clipboard unavailable", p[n-1]))
		}
	}
	if out.Export != "" {
		fmt.Fprintln(a.out, ui.Muted("Exported to %s", out.Export))
	}
	return nil
}

func (a *app) warn(msg string) {
	if a.v.GetBool("json") {
		return
	}
	fmt.Fprintln(a.out, ui.RenderNote(msg, "⚠ Warning", ui.Brand.Warn))
}
