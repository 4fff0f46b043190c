package colour

import (
	"errors"
	"fmt"
)

// ErrInvalidColour matches both InvalidFormatError and OutOfRangeError
// with errors.Is.
var ErrInvalidColour = errors.New("invalid colour")

// InvalidFormatError reports a malformed hex colour string.
type InvalidFormatError struct {
	Input  string
	Reason string
}

func (e *InvalidFormatError) Error() string {
	return fmt.Sprintf("invalid hex colour %q: %s", e.Input, e.Reason)
}

// Is reports whether target is ErrInvalidColour.
func (e *InvalidFormatError) Is(target error) bool {
	return target == ErrInvalidColour
}

// OutOfRangeError reports a channel value outside [0, 255].
type OutOfRangeError struct {
	Channel string
	Value   int
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("%s channel %d out of range [0, 255]", e.Channel, e.Value)
}

// Is reports whether target is ErrInvalidColour.
func (e *OutOfRangeError) Is(target error) bool {
	return target == ErrInvalidColour
}
