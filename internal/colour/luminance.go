package colour

import "math"

// Linear holds the linear-light form of a colour's channels, each in [0, 1].
type Linear struct {
	R, G, B float64
}

// Linear returns the gamma-expanded channels used for luminance.
func (c Color) Linear() Linear {
	return Linear{
		R: linearize(c.r),
		G: linearize(c.g),
		B: linearize(c.b),
	}
}

// Luminance calculates the relative luminance of a colour according to WCAG 2.x.
// Returns a value between 0 (darkest) and 1 (lightest).
// https://www.w3.org/TR/WCAG22/#dfn-relative-luminance.
func Luminance(c Color) float64 {
	lin := c.Linear()
	return 0.2126*lin.R + 0.7152*lin.G + 0.0722*lin.B
}

// Luminance is a method form of the package-level Luminance.
func (c Color) Luminance() float64 {
	return Luminance(c)
}

// linearize applies the sRGB transfer function to an 8-bit channel.
func linearize(v uint8) float64 {
	c := float64(v) / 255.0
	if c <= 0.03928 {
		return c / 12.92
	}
	return math.Pow((c+0.055)/1.055, 2.4)
}
