// Package palette generates 5-color hex palettes: a fixed default set,
// HSL harmony palettes (analogous and complementary), and uniformly random
// fallback palettes. It also builds the JSON export document.
package palette

import (
	"fmt"
	"math"
	"math/rand"
	"sync"
	"time"

	"github.com/lucasb-eyer/go-colorful"
)

// Harmony names the hue layout of a generated palette.
type Harmony string

const (
	Analogous     Harmony = "analogous"
	Complementary Harmony = "complementary"
)

// HSL is a color with hue in degrees and saturation/lightness in percent.
type HSL struct {
	H float64
	S float64
	L float64
}

// Hex renders the color as lowercase #rrggbb.
func (c HSL) Hex() string {
	return HSLToHex(c.H, c.S, c.L)
}

// HSLToHex converts hue (degrees), saturation and lightness (0-100) to #rrggbb.
// Hues outside [0,360) wrap around.
func HSLToHex(h, s, l float64) string {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	return colorful.Hsl(h, clampPercent(s)/100, clampPercent(l)/100).Clamped().Hex()
}

func clampPercent(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

// Generator draws palettes from a random source. It is safe for concurrent use.
type Generator struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

// NewGenerator returns a generator backed by src. A nil src is seeded from the clock.
func NewGenerator(src rand.Source) *Generator {
	if src == nil {
		src = rand.NewSource(time.Now().UnixNano())
	}
	return &Generator{rnd: rand.New(src)}
}

var defaultGenerator = NewGenerator(nil)

// Harmonious returns a random analogous or complementary palette.
func Harmonious() Palette { return defaultGenerator.Harmonious() }

// Random returns five colors drawn uniformly over the full RGB space.
func Random() Palette { return defaultGenerator.Random() }

// Harmonious picks a base hue and, with equal odds, lays out an analogous
// or complementary palette around it.
func (g *Generator) Harmonious() Palette {
	_, colors := g.HarmonyHSL()
	var p Palette
	for i, c := range colors {
		p[i] = c.Hex()
	}
	return p
}

// HarmonyHSL returns the harmony chosen and the HSL values behind a
// harmonious palette, before hex conversion.
func (g *Generator) HarmonyHSL() (Harmony, [Size]HSL) {
	g.mu.Lock()
	defer g.mu.Unlock()

	base := g.rnd.Float64() * 360
	if g.rnd.Float64() > 0.5 {
		return Analogous, g.analogous(base)
	}
	return Complementary, g.complementary(base)
}

// analogous spaces five hues 30 degrees apart.
func (g *Generator) analogous(base float64) [Size]HSL {
	var out [Size]HSL
	for i := range out {
		out[i] = HSL{
			H: math.Mod(base+float64(i)*30, 360),
			S: g.between(60, 80),
			L: g.between(50, 80),
		}
	}
	return out
}

// complementary puts three hues at base+0/15/30 and two at the opposite
// hue +0/15.
func (g *Generator) complementary(base float64) [Size]HSL {
	complement := math.Mod(base+180, 360)
	var out [Size]HSL
	for i := 0; i < 3; i++ {
		out[i] = HSL{
			H: math.Mod(base+float64(i)*15, 360),
			S: g.between(50, 80),
			L: g.between(40, 80),
		}
	}
	for i := 0; i < 2; i++ {
		out[3+i] = HSL{
			H: math.Mod(complement+float64(i)*15, 360),
			S: g.between(50, 80),
			L: g.between(40, 80),
		}
	}
	return out
}

func (g *Generator) between(lo, hi float64) float64 {
	return lo + g.rnd.Float64()*(hi-lo)
}

// Random returns five independent colors, each uniform over 0x000000-0xffffff.
func (g *Generator) Random() Palette {
	g.mu.Lock()
	defer g.mu.Unlock()

	var p Palette
	for i := range p {
		p[i] = fmt.Sprintf("#%06x", g.rnd.Intn(1<<24))
	}
	return p
}
