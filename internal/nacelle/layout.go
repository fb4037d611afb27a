package nacelle

import (
	"fmt"
	"math"
)

// Layout is the engine installation
type Layout int

const (
	// WingMounted engines hang under the wing on pylons
	WingMounted Layout = 1
	// RearMounted engines are attached to the rear fuselage
	RearMounted Layout = 2
)

func (l Layout) String() string {
	switch l {
	case WingMounted:
		return "wing-mounted"
	case RearMounted:
		return "rear-mounted"
	}
	return fmt.Sprintf("Layout(%d)", int(l))
}

// ParseLayout rounds a layout code to the nearest integer.
// Codes other than 1 and 2 give a *LayoutError.
func ParseLayout(code float64) (Layout, error) {
	l := Layout(math.Round(code))
	if l != WingMounted && l != RearMounted {
		return 0, &LayoutError{Value: code}
	}
	return l, nil
}

// LayoutError reports an unknown engine layout
type LayoutError struct {
	Value float64
}

func (e *LayoutError) Error() string {
	return fmt.Sprintf("propulsion layout can only be 1 or 2, got %g", e.Value)
}
