// Package contrast evaluates WCAG 2.2 contrast ratios and Level AA compliance.
package contrast

import (
	"github.com/jmylchreest/wcagcheck/internal/colour"
)

// WCAG 2.2 Level AA thresholds.
// https://www.w3.org/TR/WCAG22/#contrast-minimum.
const (
	// NormalTextThreshold is the minimum ratio for normal-size text.
	NormalTextThreshold = 4.5
	// LargeTextThreshold is the minimum ratio for large or bold text and
	// user interface components.
	LargeTextThreshold = 3.0
)

// Result is the outcome of evaluating a colour pair.
type Result struct {
	Ratio            float64 `json:"ratio"`
	PassesNormalText bool    `json:"passes_normal_text"`
	PassesLargeText  bool    `json:"passes_large_text"`
}

// Passes reports whether the result meets the given target.
func (r Result) Passes(t Target) bool {
	return r.Ratio >= t.Threshold()
}

// Ratio calculates the contrast ratio between two colours.
// Returns a value between 1 and 21, where 21 is maximum contrast (black vs white).
// The order of the arguments does not matter.
// https://www.w3.org/TR/WCAG22/#dfn-contrast-ratio.
func Ratio(a, b colour.Color) float64 {
	l1 := colour.Luminance(a)
	l2 := colour.Luminance(b)

	// Ensure l1 is the lighter colour.
	if l1 < l2 {
		l1, l2 = l2, l1
	}

	return (l1 + 0.05) / (l2 + 0.05)
}

// Evaluate computes the contrast ratio between a and b and both AA verdicts.
func Evaluate(a, b colour.Color) Result {
	ratio := Ratio(a, b)
	return Result{
		Ratio:            ratio,
		PassesNormalText: ratio >= NormalTextThreshold,
		PassesLargeText:  ratio >= LargeTextThreshold,
	}
}
