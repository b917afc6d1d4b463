package palette

import (
	"encoding/json"
	"math/rand"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertWellFormed(t *testing.T, p Palette) {
	t.Helper()
	require.Len(t, p, Size)
	for i, c := range p {
		assert.True(t, IsHex(c), "color %d = %q is not a hex code", i, c)
	}
}

func TestDefault(t *testing.T) {
	p := Default()
	assertWellFormed(t, p)
	assert.Equal(t, Default(), p, "default palette must be fixed")
	assert.Equal(t, "#8FBC8F", p[0])
}

func TestIsHex(t *testing.T) {
	cases := map[string]bool{
		"#AABBCC":  true,
		"#aabbcc":  true,
		"#0a1B2c":  true,
		"#ZZZZZZ":  false,
		"AABBCC":   false,
		"#ABC":     false,
		"#AABBCCD": false,
		"":         false,
	}
	for in, want := range cases {
		assert.Equal(t, want, IsHex(in), "IsHex(%q)", in)
	}
}

func TestFromSlice(t *testing.T) {
	p, err := FromSlice([]string{"#000000", "#111111", "#222222", "#333333", "#444444"})
	require.NoError(t, err)
	assert.Equal(t, "#444444", p[4])

	_, err = FromSlice([]string{"#000000", "#111111", "#222222", "#333333"})
	assert.Error(t, err)

	_, err = FromSlice([]string{"#000000", "#111111", "#222222", "#333333", "#ZZZZZZ"})
	assert.Error(t, err)
}

func TestHSLToHex(t *testing.T) {
	cases := []struct {
		h, s, l float64
		want    string
	}{
		{0, 100, 50, "#ff0000"},
		{120, 100, 50, "#00ff00"},
		{240, 100, 50, "#0000ff"},
		{60, 100, 50, "#ffff00"},
		{0, 0, 100, "#ffffff"},
		{0, 0, 0, "#000000"},
		{360, 100, 50, "#ff0000"},
		{480, 100, 50, "#00ff00"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, HSLToHex(tc.h, tc.s, tc.l), "HSLToHex(%v, %v, %v)", tc.h, tc.s, tc.l)
	}
}

func TestHarmonyHSL_StaysInBounds(t *testing.T) {
	g := NewGenerator(rand.NewSource(42))
	seen := map[Harmony]int{}

	for i := 0; i < 1000; i++ {
		harmony, colors := g.HarmonyHSL()
		seen[harmony]++

		for j, c := range colors {
			assert.GreaterOrEqual(t, c.H, 0.0)
			assert.Less(t, c.H, 360.0)

			switch harmony {
			case Analogous:
				assert.GreaterOrEqual(t, c.S, 60.0)
				assert.LessOrEqual(t, c.S, 80.0)
				assert.GreaterOrEqual(t, c.L, 50.0)
				assert.LessOrEqual(t, c.L, 80.0)
				if j > 0 {
					step := c.H - colors[j-1].H
					if step < 0 {
						step += 360
					}
					assert.InDelta(t, 30.0, step, 1e-9)
				}
			case Complementary:
				assert.GreaterOrEqual(t, c.S, 50.0)
				assert.LessOrEqual(t, c.S, 80.0)
				assert.GreaterOrEqual(t, c.L, 40.0)
				assert.LessOrEqual(t, c.L, 80.0)
			default:
				t.Fatalf("unexpected harmony %q", harmony)
			}
		}

		if harmony == Complementary {
			diff := colors[3].H - colors[0].H
			if diff < 0 {
				diff += 360
			}
			assert.InDelta(t, 180.0, diff, 1e-9)
		}
	}

	assert.Positive(t, seen[Analogous])
	assert.Positive(t, seen[Complementary])
}

func TestHarmonious_WellFormed(t *testing.T) {
	g := NewGenerator(rand.NewSource(7))
	for i := 0; i < 1000; i++ {
		assertWellFormed(t, g.Harmonious())
	}
	assertWellFormed(t, Harmonious())
}

func TestRandom_WellFormed(t *testing.T) {
	g := NewGenerator(rand.NewSource(1))
	for i := 0; i < 200; i++ {
		p := g.Random()
		assertWellFormed(t, p)
		assert.True(t, p.Valid())
	}
	assertWellFormed(t, Random())
}

func TestExport_KeepsOrderAndMetadata(t *testing.T) {
	colors := []string{"#AABBCC", "#112233", "#445566", "#778899", "#DDEEFF"}
	at := time.Date(2025, 3, 4, 5, 6, 7, 0, time.UTC)

	data, err := MarshalExport(colors, at)
	require.NoError(t, err)

	var doc map[string]map[string]any
	require.NoError(t, json.Unmarshal(data, &doc))

	got, ok := doc["palette"]["colors"].([]any)
	require.True(t, ok)
	require.Len(t, got, len(colors))
	for i, c := range colors {
		assert.Equal(t, c, got[i])
	}
	assert.Equal(t, "2025-03-04T05:06:07.000Z", doc["palette"]["timestamp"])
	assert.Equal(t, "Color Palette Picker", doc["metadata"]["generator"])
	assert.Equal(t, "1.0.0", doc["metadata"]["version"])
}

func TestExportFilename(t *testing.T) {
	at := time.Date(2025, 3, 4, 5, 6, 7, 0, time.UTC)
	assert.Equal(t, "palette-2025-03-04T05-06-07.json", ExportFilename(at))
}

func TestWriteExport(t *testing.T) {
	dir := t.TempDir()
	at := time.Date(2025, 3, 4, 5, 6, 7, 0, time.UTC)

	path, err := WriteExport(filepath.Join(dir, "out"), Default().Slice(), at)
	require.NoError(t, err)
	assert.Equal(t, "palette-2025-03-04T05-06-07.json", filepath.Base(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var doc ExportDocument
	require.NoError(t, json.Unmarshal(data, &doc))
	assert.Equal(t, Default().Slice(), doc.Palette.Colors)
}
