package palette

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

const (
	exportGenerator = "Color Palette Picker"
	exportVersion   = "1.0.0"
)

// ExportDocument is the JSON layout of an exported palette file.
type ExportDocument struct {
	Palette  ExportPalette  `json:"palette"`
	Metadata ExportMetadata `json:"metadata"`
}

type ExportPalette struct {
	Colors    []string `json:"colors"`
	Timestamp string   `json:"timestamp"`
}

type ExportMetadata struct {
	Generator string `json:"generator"`
	Version   string `json:"version"`
}

// NewExport builds the export document for colors taken at time at.
// Colors keep their order.
func NewExport(colors []string, at time.Time) ExportDocument {
	return ExportDocument{
		Palette: ExportPalette{
			Colors:    append([]string(nil), colors...),
			Timestamp: at.UTC().Format("2006-01-02T15:04:05.000Z07:00"),
		},
		Metadata: ExportMetadata{
			Generator: exportGenerator,
			Version:   exportVersion,
		},
	}
}

// MarshalExport renders the export document with two-space indentation.
func MarshalExport(colors []string, at time.Time) ([]byte, error) {
	return json.MarshalIndent(NewExport(colors, at), "", "  ")
}

// ExportFilename returns palette-<timestamp>.json, with colons replaced so
// the name is valid on every filesystem.
func ExportFilename(at time.Time) string {
	return "palette-" + at.UTC().Format("2006-01-02T15-04-05") + ".json"
}

// WriteExport writes the export file for colors into dir and returns its path.
func WriteExport(dir string, colors []string, at time.Time) (string, error) {
	data, err := MarshalExport(colors, at)
	if err != nil {
		return "", fmt.Errorf("marshal export: %w", err)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create export dir: %w", err)
	}
	path := filepath.Join(dir, ExportFilename(at))
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return "", fmt.Errorf("write export: %w", err)
	}
	return path, nil
}
