// Package colour provides the sRGB colour model used by wcagcheck: validated
// construction, hex conversion, WCAG relative luminance and HSL conversion.
package colour

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// Color is an immutable sRGB colour with 8-bit channels.
// The zero value is black. Values are only created through the constructors
// in this package, so every Color in circulation is valid.
type Color struct {
	r, g, b uint8
}

// Common reference colours.
var (
	Black = Color{}
	White = Color{r: 255, g: 255, b: 255}
)

// New creates a colour from integer channels.
// Returns an *OutOfRangeError if any channel is outside [0, 255].
func New(r, g, b int) (Color, error) {
	channels := [3]struct {
		name  string
		value int
	}{{"red", r}, {"green", g}, {"blue", b}}

	for _, ch := range channels {
		if ch.value < 0 || ch.value > 255 {
			return Color{}, &OutOfRangeError{Channel: ch.name, Value: ch.value}
		}
	}
	return Color{r: uint8(r), g: uint8(g), b: uint8(b)}, nil
}

// FromRGB8 creates a colour from 8-bit channels. It cannot fail.
func FromRGB8(r, g, b uint8) Color {
	return Color{r: r, g: g, b: b}
}

// ParseHex parses a colour from exactly six hexadecimal digits, with or
// without a leading '#'. Surrounding whitespace is ignored.
// Returns an *InvalidFormatError on wrong length or non-hex characters.
func ParseHex(text string) (Color, error) {
	s := strings.TrimPrefix(strings.TrimSpace(text), "#")

	if len(s) != 6 {
		return Color{}, &InvalidFormatError{
			Input:  text,
			Reason: fmt.Sprintf("expected 6 hex digits, got %d", len(s)),
		}
	}

	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return Color{}, &InvalidFormatError{Input: text, Reason: "contains non-hex characters"}
	}

	return Color{r: uint8(v >> 16), g: uint8(v >> 8), b: uint8(v)}, nil
}

// MustParseHex is like ParseHex but panics on malformed input.
// Intended for package-level constants and tests.
func MustParseHex(text string) Color {
	c, err := ParseHex(text)
	if err != nil {
		panic(err)
	}
	return c
}

// FromColor converts any image/color.Color, discarding alpha.
func FromColor(c color.Color) Color {
	if cc, ok := c.(Color); ok {
		return cc
	}
	r, g, b, _ := c.RGBA()
	// RGBA returns values in the range [0, 65535], convert to [0, 255].
	return Color{r: uint8(r >> 8), g: uint8(g >> 8), b: uint8(b >> 8)}
}

// R returns the red channel.
func (c Color) R() uint8 { return c.r }

// G returns the green channel.
func (c Color) G() uint8 { return c.g }

// B returns the blue channel.
func (c Color) B() uint8 { return c.b }

// Hex returns the colour as an uppercase hex string (e.g., "#1A2B3C").
func (c Color) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X", c.r, c.g, c.b)
}

// String implements fmt.Stringer.
func (c Color) String() string {
	return c.Hex()
}

// RGBString returns the colour in the format "rgb(r, g, b)".
func (c Color) RGBString() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", c.r, c.g, c.b)
}

// RGBA implements image/color.Color with full opacity.
func (c Color) RGBA() (r, g, b, a uint32) {
	return color.RGBA{R: c.r, G: c.g, B: c.b, A: 255}.RGBA()
}

// MarshalText encodes the colour as its hex form, so it serialises as a plain
// string in JSON, YAML and TOML.
func (c Color) MarshalText() ([]byte, error) {
	return []byte(c.Hex()), nil
}

// UnmarshalText decodes a hex colour.
func (c *Color) UnmarshalText(text []byte) error {
	parsed, err := ParseHex(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
