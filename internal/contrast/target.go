package contrast

import (
	"fmt"
	"strings"
)

// Target selects which AA threshold a pair must meet.
type Target int

const (
	// Normal requires NormalTextThreshold.
	Normal Target = iota
	// Large requires LargeTextThreshold (large text, bold text, UI components).
	Large
)

// Threshold returns the minimum contrast ratio for the target.
func (t Target) Threshold() float64 {
	if t == Large {
		return LargeTextThreshold
	}
	return NormalTextThreshold
}

func (t Target) String() string {
	switch t {
	case Normal:
		return "normal"
	case Large:
		return "large"
	default:
		return fmt.Sprintf("Target(%d)", int(t))
	}
}

// ParseTarget parses "normal" or "large" (case-insensitive).
func ParseTarget(s string) (Target, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "normal":
		return Normal, nil
	case "large":
		return Large, nil
	default:
		return Normal, fmt.Errorf("invalid target %q (valid: normal, large)", s)
	}
}

// Set implements pflag.Value.
func (t *Target) Set(s string) error {
	parsed, err := ParseTarget(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// Type implements pflag.Value.
func (t *Target) Type() string {
	return "target"
}

// MarshalText implements encoding.TextMarshaler.
func (t Target) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *Target) UnmarshalText(text []byte) error {
	return t.Set(string(text))
}
