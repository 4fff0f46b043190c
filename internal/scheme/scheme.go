// Package scheme manages button colour schemes: a foreground/background pair
// for each interactive state, drawn on a shared application background.
//
// Each pair is evaluated and corrected independently through the contrast and
// correct packages; the scheme only decides which pairs to check and in which
// order to fix them.
package scheme

import (
	"fmt"
	"maps"

	"github.com/jmylchreest/wcagcheck/internal/colour"
)

// State names a button state.
type State string

// Button states, in display order.
const (
	StateDefault  State = "default"
	StateHover    State = "hover"
	StateFocused  State = "focused"
	StateActive   State = "active"
	StateDisabled State = "disabled"
)

// States lists every state in display order.
var States = []State{StateDefault, StateHover, StateFocused, StateActive, StateDisabled}

var descriptions = map[State]string{
	StateDefault:  "Button Default",
	StateHover:    "Button Hover",
	StateFocused:  "Button Focused",
	StateActive:   "Button Active",
	StateDisabled: "Button Disabled",
}

// Description returns the human-readable label for the state.
func (s State) Description() string {
	if d, ok := descriptions[s]; ok {
		return d
	}
	return string(s)
}

// Valid reports whether s is one of the known states.
func (s State) Valid() bool {
	_, ok := descriptions[s]
	return ok
}

// Pair is the text colour and fill colour of a button in one state.
type Pair struct {
	Foreground colour.Color
	Background colour.Color
}

// Scheme is a complete set of button colours.
type Scheme struct {
	AppBackground colour.Color
	States        map[State]Pair
}

// Default returns the built-in steel blue scheme.
func Default() Scheme {
	return Scheme{
		AppBackground: colour.MustParseHex("#F0F0F0"),
		States: map[State]Pair{
			StateDefault:  {Foreground: colour.White, Background: colour.MustParseHex("#4682B4")},
			StateHover:    {Foreground: colour.White, Background: colour.MustParseHex("#326496")},
			StateFocused:  {Foreground: colour.White, Background: colour.MustParseHex("#5A96C8")},
			StateActive:   {Foreground: colour.White, Background: colour.MustParseHex("#1E466E")},
			StateDisabled: {Foreground: colour.MustParseHex("#696969"), Background: colour.MustParseHex("#BED2E6")},
		},
	}
}

// Validate checks that every state has a pair and no unknown states are present.
func (s Scheme) Validate() error {
	for _, st := range States {
		if _, ok := s.States[st]; !ok {
			return fmt.Errorf("missing colours for state: %s", st)
		}
	}
	for st := range s.States {
		if !st.Valid() {
			return fmt.Errorf("unknown state: %s", st)
		}
	}
	return nil
}

// Clone returns a copy whose state map can be modified independently.
func (s Scheme) Clone() Scheme {
	return Scheme{
		AppBackground: s.AppBackground,
		States:        maps.Clone(s.States),
	}
}

// With returns a copy with the pair for st replaced.
func (s Scheme) With(st State, p Pair) Scheme {
	c := s.Clone()
	if c.States == nil {
		c.States = make(map[State]Pair, len(States))
	}
	c.States[st] = p
	return c
}
