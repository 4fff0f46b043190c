package scheme

import (
	"github.com/jmylchreest/wcagcheck/internal/colour"
	"github.com/jmylchreest/wcagcheck/internal/contrast"
)

// CheckKind distinguishes the two comparisons made for each state.
type CheckKind string

const (
	// KindText compares button text against the button fill.
	KindText CheckKind = "text"
	// KindComponent compares the button fill against the application background.
	KindComponent CheckKind = "component"
)

// Check is one evaluated colour pair of a scheme.
type Check struct {
	State      State           `json:"state"`
	Kind       CheckKind       `json:"kind"`
	Foreground colour.Color    `json:"foreground"`
	Background colour.Color    `json:"background"`
	Target     contrast.Target `json:"target"`
	Result     contrast.Result `json:"result"`
}

// Passed reports whether the check meets its target.
func (c Check) Passed() bool {
	return c.Result.Passes(c.Target)
}

// Report is the outcome of auditing a scheme.
type Report struct {
	Checks []Check `json:"checks"`
}

// Compliant reports whether every check passed.
func (r Report) Compliant() bool {
	for _, c := range r.Checks {
		if !c.Passed() {
			return false
		}
	}
	return true
}

// Failures returns the checks that did not pass.
func (r Report) Failures() []Check {
	var failed []Check
	for _, c := range r.Checks {
		if !c.Passed() {
			failed = append(failed, c)
		}
	}
	return failed
}

// Audit evaluates each state's text pair against text and its fill against
// the application background against component. States missing from the
// scheme are skipped; call Validate first to reject them.
func Audit(s Scheme, text, component contrast.Target) Report {
	checks := make([]Check, 0, 2*len(States))

	for _, st := range States {
		p, ok := s.States[st]
		if !ok {
			continue
		}
		checks = append(checks, Check{
			State:      st,
			Kind:       KindText,
			Foreground: p.Foreground,
			Background: p.Background,
			Target:     text,
			Result:     contrast.Evaluate(p.Foreground, p.Background),
		})
	}

	for _, st := range States {
		p, ok := s.States[st]
		if !ok {
			continue
		}
		checks = append(checks, Check{
			State:      st,
			Kind:       KindComponent,
			Foreground: s.AppBackground,
			Background: p.Background,
			Target:     component,
			Result:     contrast.Evaluate(s.AppBackground, p.Background),
		})
	}

	return Report{Checks: checks}
}
