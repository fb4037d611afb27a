package geom

import "fmt"

// Coordinates2D is a planform position.
// X is streamwise (positive aft), Y is spanwise (positive towards right tip).
type Coordinates2D struct {
	X float64 `json:"x"` // m
	Y float64 `json:"y"` // m
}

// Point is a profile point in the (x, z) plane of a section.
// X is along the chord and Z is normal to it.
type Point struct {
	X float64 `json:"x"`
	Z float64 `json:"z"`
}

// Validate checks that the lifting surface can be integrated.
// Compute methods never sort sections: a decreasing spanwise order is
// reported here and left untouched.
func (s *LiftingSurface) Validate() error {
	if len(s.Sections) < 2 {
		return &ValidationError{"lifting surface must have at least 2 sections"}
	}
	for i, p := range s.Sections {
		if p == nil {
			return &ValidationError{msg: fmt.Sprintf("section %d is undefined", i+1)}
		}
		if p.ChordLength < 0 {
			return &ValidationError{msg: fmt.Sprintf("section %d must have a non-negative chord length", i+1)}
		}
		if i > 0 && p.PlanformPosition.Y < s.Sections[i-1].PlanformPosition.Y {
			return &ValidationError{msg: fmt.Sprintf("section %d is inboard of section %d", i+1, i)}
		}
	}
	return nil
}

// ValidationError represents an invalid geometry definition
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string {
	return e.msg
}
