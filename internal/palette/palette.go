// Package palette provides the reference colour palettes offered for picking
// colours: the 216-colour web-safe set and a 256-colour balanced set.
package palette

import (
	"encoding/json"
	"fmt"
	"iter"
	"strings"

	"github.com/jmylchreest/wcagcheck/internal/colour"
)

// Palette is an ordered collection of colours.
type Palette struct {
	Name   string
	Colors []colour.Color
}

// New creates a named Palette with the given colours.
func New(name string, colors []colour.Color) *Palette {
	return &Palette{
		Name:   name,
		Colors: colors,
	}
}

// Len returns the number of colours in the palette.
func (p *Palette) Len() int {
	return len(p.Colors)
}

// Get returns the colour at the specified index.
// Returns an error if the index is out of bounds.
func (p *Palette) Get(index int) (colour.Color, error) {
	if index < 0 || index >= len(p.Colors) {
		return colour.Color{}, fmt.Errorf("index out of bounds: %d (palette has %d colours)", index, len(p.Colors))
	}
	return p.Colors[index], nil
}

// All returns an iterator over all colours in the palette.
func (p *Palette) All() iter.Seq2[int, colour.Color] {
	return func(yield func(int, colour.Color) bool) {
		for i, c := range p.Colors {
			if !yield(i, c) {
				return
			}
		}
	}
}

// ToHex converts the palette colours to hex strings.
func (p *Palette) ToHex() []string {
	hexColors := make([]string, len(p.Colors))
	for i, c := range p.Colors {
		hexColors[i] = c.Hex()
	}
	return hexColors
}

// Light returns a palette holding only colours with relative luminance
// above 0.5, preserving order.
func (p *Palette) Light() *Palette {
	var light []colour.Color
	for _, c := range p.Colors {
		if colour.Luminance(c) > 0.5 {
			light = append(light, c)
		}
	}
	return New(p.Name+"-light", light)
}

// ColorJSON represents a colour in JSON output format.
type ColorJSON struct {
	Hex       string  `json:"hex"`
	RGB       [3]int  `json:"rgb"`
	Luminance float64 `json:"luminance"`
}

// PaletteJSON represents the palette in JSON format.
type PaletteJSON struct {
	Name   string      `json:"name"`
	Count  int         `json:"count"`
	Colors []ColorJSON `json:"colors"`
}

// ToJSON converts the palette to JSON format.
func (p *Palette) ToJSON() ([]byte, error) {
	colors := make([]ColorJSON, len(p.Colors))
	for i, c := range p.Colors {
		colors[i] = ColorJSON{
			Hex:       c.Hex(),
			RGB:       [3]int{int(c.R()), int(c.G()), int(c.B())},
			Luminance: colour.Luminance(c),
		}
	}

	return json.MarshalIndent(PaletteJSON{
		Name:   p.Name,
		Count:  len(p.Colors),
		Colors: colors,
	}, "", "  ")
}

// String returns a human-readable string representation of the palette.
func (p *Palette) String() string {
	if len(p.Colors) == 0 {
		return "Empty palette"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Palette %s with %d colours:\n", p.Name, len(p.Colors))
	for i, c := range p.Colors {
		fmt.Fprintf(&b, "  %3d: %s (%s)\n", i+1, c.Hex(), c.RGBString())
	}
	return b.String()
}

// webSafeSteps are the six channel intensities of the web-safe palette.
var webSafeSteps = [...]uint8{0x00, 0x33, 0x66, 0x99, 0xCC, 0xFF}

// WebSafe returns the 216-colour web-safe palette, red-major.
func WebSafe() *Palette {
	colors := make([]colour.Color, 0, len(webSafeSteps)*len(webSafeSteps)*len(webSafeSteps))
	for _, r := range webSafeSteps {
		for _, g := range webSafeSteps {
			for _, b := range webSafeSteps {
				colors = append(colors, colour.FromRGB8(r, g, b))
			}
		}
	}
	return New("websafe", colors)
}

// Balanced returns the 256-colour balanced palette.
func Balanced() *Palette {
	colors := make([]colour.Color, len(balancedHex))
	for i, hex := range balancedHex {
		colors[i] = colour.MustParseHex(hex)
	}
	return New("balanced", colors)
}

// ByName returns a built-in palette by name ("websafe" or "balanced").
func ByName(name string) (*Palette, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "websafe", "web-safe":
		return WebSafe(), nil
	case "balanced":
		return Balanced(), nil
	default:
		return nil, fmt.Errorf("unknown palette %q (valid: websafe, balanced)", name)
	}
}
