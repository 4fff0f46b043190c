package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/jmylchreest/wcagcheck/internal/contrast"
)

// Environment variables read by FromEnv.
const (
	EnvTarget          = "WCAGCHECK_TARGET"
	EnvComponentTarget = "WCAGCHECK_COMPONENT_TARGET"
	EnvTolerance       = "WCAGCHECK_TOLERANCE"
	EnvMaxIterations   = "WCAGCHECK_MAX_ITERATIONS"
	EnvFormat          = "WCAGCHECK_FORMAT"
)

// FromEnv reads overrides from WCAGCHECK_* variables. Empty variables are
// ignored; malformed ones are reported together.
func FromEnv(getenv func(string) string) (Overrides, error) {
	if getenv == nil {
		getenv = func(string) string { return "" }
	}
	var o Overrides
	var errs []error

	setTarget := func(dst **contrast.Target, key string) {
		raw := strings.TrimSpace(getenv(key))
		if raw == "" {
			return
		}
		t, err := contrast.ParseTarget(raw)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", key, err))
			return
		}
		*dst = &t
	}

	setTarget(&o.Target, EnvTarget)
	setTarget(&o.ComponentTarget, EnvComponentTarget)

	if raw := strings.TrimSpace(getenv(EnvTolerance)); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: invalid number %q", EnvTolerance, raw))
		} else {
			o.Tolerance = &v
		}
	}

	if raw := strings.TrimSpace(getenv(EnvMaxIterations)); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: invalid integer %q", EnvMaxIterations, raw))
		} else {
			o.MaxIterations = &v
		}
	}

	if raw := strings.TrimSpace(getenv(EnvFormat)); raw != "" {
		o.Format = &raw
	}

	return o, errors.Join(errs...)
}
