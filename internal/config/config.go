// Package config resolves wcagcheck settings from defaults, an optional
// config file and WCAGCHECK_* environment variables.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jmylchreest/wcagcheck/internal/contrast"
	"github.com/jmylchreest/wcagcheck/internal/correct"
)

// Output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Config holds the effective settings for a run.
type Config struct {
	// Target is the threshold applied to text pairs.
	Target contrast.Target
	// ComponentTarget is the threshold applied to button fills against the
	// application background.
	ComponentTarget contrast.Target
	// Tolerance is the corrector's early-stop tolerance in ratio units.
	Tolerance float64
	// MaxIterations caps the corrector's bisection steps.
	MaxIterations int
	// Format is the output format (text, json).
	Format string
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Target:          contrast.Normal,
		ComponentTarget: contrast.Large,
		Tolerance:       correct.DefaultTolerance,
		MaxIterations:   correct.DefaultMaxIterations,
		Format:          FormatText,
	}
}

// Validate checks the settings are usable.
func (c Config) Validate() error {
	var errs []error
	if c.Tolerance <= 0 {
		errs = append(errs, fmt.Errorf("tolerance must be positive, got %v", c.Tolerance))
	}
	if c.MaxIterations < 1 {
		errs = append(errs, fmt.Errorf("max iterations must be at least 1, got %d", c.MaxIterations))
	}
	if _, err := ParseFormat(c.Format); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// Corrector builds a corrector from the settings.
func (c Config) Corrector() correct.Corrector {
	return correct.New().
		WithTolerance(c.Tolerance).
		WithMaxIterations(c.MaxIterations)
}

// ParseFormat normalises an output format name.
func ParseFormat(s string) (string, error) {
	switch f := strings.ToLower(strings.TrimSpace(s)); f {
	case FormatText, FormatJSON:
		return f, nil
	default:
		return "", fmt.Errorf("invalid format %q (valid: text, json)", s)
	}
}

// Overrides holds optionally-set values from one configuration layer.
type Overrides struct {
	Target          *contrast.Target `json:"target" yaml:"target" toml:"target"`
	ComponentTarget *contrast.Target `json:"component_target" yaml:"component_target" toml:"component_target"`
	Tolerance       *float64         `json:"tolerance" yaml:"tolerance" toml:"tolerance"`
	MaxIterations   *int             `json:"max_iterations" yaml:"max_iterations" toml:"max_iterations"`
	Format          *string          `json:"format" yaml:"format" toml:"format"`
}

// Apply returns c with every set field of o applied.
func (c Config) Apply(o Overrides) Config {
	if o.Target != nil {
		c.Target = *o.Target
	}
	if o.ComponentTarget != nil {
		c.ComponentTarget = *o.ComponentTarget
	}
	if o.Tolerance != nil {
		c.Tolerance = *o.Tolerance
	}
	if o.MaxIterations != nil {
		c.MaxIterations = *o.MaxIterations
	}
	if o.Format != nil {
		c.Format = strings.ToLower(strings.TrimSpace(*o.Format))
	}
	return c
}
