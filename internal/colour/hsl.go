package colour

import (
	colorful "github.com/lucasb-eyer/go-colorful"
)

// HSL converts the colour to hue (0-360), saturation (0-1) and lightness (0-1).
// Greys report hue 0 and saturation 0.
func (c Color) HSL() (h, s, l float64) {
	return c.colorful().Hsl()
}

// FromHSL converts hue (0-360), saturation (0-1) and lightness (0-1) to the
// nearest 8-bit colour. Out-of-range saturation and lightness are clamped.
func FromHSL(h, s, l float64) Color {
	s = clamp01(s)
	l = clamp01(l)
	r, g, b := colorful.Hsl(h, s, l).Clamped().RGB255()
	return Color{r: r, g: g, b: b}
}

// WithLightness returns the colour with its hue and saturation kept and its
// lightness replaced.
func (c Color) WithLightness(l float64) Color {
	h, s, _ := c.HSL()
	return FromHSL(h, s, l)
}

func (c Color) colorful() colorful.Color {
	return colorful.Color{
		R: float64(c.r) / 255.0,
		G: float64(c.g) / 255.0,
		B: float64(c.b) / 255.0,
	}
}

func clamp01(v float64) float64 {
	return max(0, min(1, v))
}
