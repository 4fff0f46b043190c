package correct

import (
	"fmt"
	"strings"
)

// Role names which colour of a pair is adjusted.
type Role int

const (
	// Foreground adjusts the foreground, keeping the background fixed.
	Foreground Role = iota
	// Background adjusts the background, keeping the foreground fixed.
	Background
)

func (r Role) String() string {
	switch r {
	case Foreground:
		return "foreground"
	case Background:
		return "background"
	default:
		return fmt.Sprintf("Role(%d)", int(r))
	}
}

// ParseRole parses "foreground"/"fg" or "background"/"bg" (case-insensitive).
func ParseRole(s string) (Role, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "foreground", "fg":
		return Foreground, nil
	case "background", "bg":
		return Background, nil
	default:
		return Foreground, fmt.Errorf("invalid role %q (valid: foreground, background)", s)
	}
}

// Set implements pflag.Value.
func (r *Role) Set(s string) error {
	parsed, err := ParseRole(s)
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}

// Type implements pflag.Value.
func (r *Role) Type() string {
	return "role"
}

// MarshalText implements encoding.TextMarshaler.
func (r Role) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (r *Role) UnmarshalText(text []byte) error {
	return r.Set(string(text))
}
