// Package correct searches for the nearest WCAG-compliant replacement for one
// colour of a foreground/background pair.
//
// The search holds hue and saturation of the adjusted colour fixed and varies
// only its HSL lightness. With hue and saturation fixed, relative luminance is
// monotonic in lightness, so the contrast ratio against the fixed partner is
// monotonic along the search direction and a bounded bisection converges.
package correct

import (
	"github.com/hashicorp/go-hclog"

	"github.com/jmylchreest/wcagcheck/internal/colour"
	"github.com/jmylchreest/wcagcheck/internal/contrast"
)

const (
	// DefaultTolerance is how far above the threshold, in ratio units, a
	// passing candidate may be before the search stops early.
	DefaultTolerance = 0.01
	// DefaultMaxIterations caps the number of bisection steps.
	DefaultMaxIterations = 20
)

// Outcome is the result of a correction.
type Outcome struct {
	// Color is the adjusted colour, or the original when no change was needed.
	Color colour.Color `json:"color"`
	// Ratio is the contrast ratio achieved against the fixed partner.
	Ratio float64 `json:"ratio"`
	// Reached reports whether Ratio meets the requested threshold.
	Reached bool `json:"reached"`
	// Adjusted names which input colour Color replaces.
	Adjusted Role `json:"adjusted"`
	// Changed reports whether Color differs from the input colour.
	Changed bool `json:"changed"`
	// Iterations is the number of bisection steps performed.
	Iterations int `json:"iterations"`
}

// Corrector performs lightness searches. The zero value is usable and
// behaves like New().
type Corrector struct {
	tolerance     float64
	maxIterations int
	logger        hclog.Logger
}

// New creates a Corrector with the default tolerance and iteration cap.
func New() Corrector {
	return Corrector{
		tolerance:     DefaultTolerance,
		maxIterations: DefaultMaxIterations,
	}
}

// WithTolerance returns a copy using the given early-stop tolerance.
// Non-positive values fall back to DefaultTolerance.
func (c Corrector) WithTolerance(tolerance float64) Corrector {
	c.tolerance = tolerance
	return c
}

// WithMaxIterations returns a copy using the given iteration cap.
// Values below 1 fall back to DefaultMaxIterations.
func (c Corrector) WithMaxIterations(n int) Corrector {
	c.maxIterations = n
	return c
}

// WithLogger returns a copy that traces each search step to logger.
func (c Corrector) WithLogger(logger hclog.Logger) Corrector {
	c.logger = logger
	return c
}

// Tolerance returns the effective early-stop tolerance.
func (c Corrector) Tolerance() float64 {
	if c.tolerance <= 0 {
		return DefaultTolerance
	}
	return c.tolerance
}

// MaxIterations returns the effective iteration cap.
func (c Corrector) MaxIterations() int {
	if c.maxIterations < 1 {
		return DefaultMaxIterations
	}
	return c.maxIterations
}

func (c Corrector) log() hclog.Logger {
	if c.logger == nil {
		return hclog.NewNullLogger()
	}
	return c.logger
}

// Correct adjusts the colour named by adjust so the pair meets target,
// changing only its lightness.
//
// A pair that already meets the target is returned unchanged with Reached set.
// If even the lightness extreme in the search direction misses the target,
// that extreme is returned with Reached false.
func (c Corrector) Correct(fg, bg colour.Color, target contrast.Target, adjust Role) Outcome {
	adjustable, fixed := fg, bg
	if adjust == Background {
		adjustable, fixed = bg, fg
	}

	threshold := target.Threshold()
	logger := c.log().With("adjust", adjust.String(), "target", target.String())

	ratio := contrast.Ratio(adjustable, fixed)
	if ratio >= threshold {
		logger.Trace("pair already compliant", "colour", adjustable.Hex(), "ratio", ratio)
		return Outcome{Color: adjustable, Ratio: ratio, Reached: true, Adjusted: adjust}
	}

	h, s, l := adjustable.HSL()

	// Darken against a lighter partner, otherwise lighten.
	extreme := 1.0
	if colour.Luminance(fixed) > colour.Luminance(adjustable) {
		extreme = 0.0
	}

	best := colour.FromHSL(h, s, extreme)
	bestRatio := contrast.Ratio(best, fixed)
	if bestRatio < threshold {
		logger.Debug("target unreachable at lightness extreme",
			"colour", adjustable.Hex(), "partner", fixed.Hex(),
			"extreme", best.Hex(), "ratio", bestRatio)
		return Outcome{
			Color:    best,
			Ratio:    bestRatio,
			Reached:  false,
			Adjusted: adjust,
			Changed:  best != adjustable,
		}
	}

	// failing always misses the threshold, passing always meets it.
	failing, passing := l, extreme
	tolerance := c.Tolerance()
	iterations := 0
	for iterations < c.MaxIterations() {
		iterations++
		mid := (failing + passing) / 2
		candidate := colour.FromHSL(h, s, mid)
		r := contrast.Ratio(candidate, fixed)
		logger.Trace("search step", "iteration", iterations, "lightness", mid, "colour", candidate.Hex(), "ratio", r)

		if r < threshold {
			failing = mid
			continue
		}
		passing = mid
		best, bestRatio = candidate, r
		if r-threshold <= tolerance {
			break
		}
	}

	logger.Debug("corrected colour",
		"from", adjustable.Hex(), "to", best.Hex(), "ratio", bestRatio, "iterations", iterations)

	return Outcome{
		Color:      best,
		Ratio:      bestRatio,
		Reached:    true,
		Adjusted:   adjust,
		Changed:    best != adjustable,
		Iterations: iterations,
	}
}

// Correct runs a default Corrector.
func Correct(fg, bg colour.Color, target contrast.Target, adjust Role) Outcome {
	return New().Correct(fg, bg, target, adjust)
}
