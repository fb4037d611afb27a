package geom

import (
	"encoding/json"
	"os"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/interp"
)

// LiftingSurface is a wing or tail planform described by sections ordered
// from root to tip. Sections are never sorted internally.
type LiftingSurface struct {
	Name     string     `json:"name,omitempty"`
	Sections []*Profile `json:"sections"`

	// Derived values, filled by the Compute methods
	PlanformArea    float64       `json:"-"` // m²
	ReferenceLength float64       `json:"-"` // MAC length, m
	MACPosition     Coordinates2D `json:"-"` // MAC leading edge
}

// LoadFromFile loads a lifting surface definition from a JSON file
func LoadFromFile(filepath string) (*LiftingSurface, error) {
	data, err := os.ReadFile(filepath)
	if err != nil {
		return nil, err
	}

	var surface LiftingSurface
	if err := json.Unmarshal(data, &surface); err != nil {
		return nil, err
	}

	if err := surface.Validate(); err != nil {
		return nil, err
	}

	return &surface, nil
}

// ComputePlanformArea sums trapezoid areas between consecutive sections.
// The result is stored in PlanformArea and returned.
func (s *LiftingSurface) ComputePlanformArea() float64 {
	s.PlanformArea = floats.Sum(s.trapezoidAreas())
	return s.PlanformArea
}

// ComputeMeanAerodynamicChord computes the MAC as the area-weighted average
// of the MAC of each trapezoid between consecutive sections.
// Every section but the last needs a positive chord: a zero inner chord
// gives a NaN MAC although Validate accepts it.
// MAC length is stored in ReferenceLength and returned, its leading edge
// position in MACPosition.
func (s *LiftingSurface) ComputeMeanAerodynamicChord() float64 {
	areas := s.trapezoidAreas()
	n := len(areas)
	chords := make([]float64, n)
	xs := make([]float64, n)
	ys := make([]float64, n)
	for i := 0; i < n; i++ {
		mac := trapezoidMAC(s.Sections[i], s.Sections[i+1])
		chords[i] = mac.ChordLength
		xs[i] = mac.PlanformPosition.X
		ys[i] = mac.PlanformPosition.Y
	}

	total := floats.Sum(areas)
	s.ReferenceLength = floats.Dot(chords, areas) / total
	s.MACPosition = Coordinates2D{
		X: floats.Dot(xs, areas) / total,
		Y: floats.Dot(ys, areas) / total,
	}
	return s.ReferenceLength
}

// ChordAt returns the chord length at spanwise position y by linear
// interpolation between sections. Positions outside the surface get the
// chord of the nearest end section.
func (s *LiftingSurface) ChordAt(y float64) (float64, error) {
	return s.interpolate(y, func(p *Profile) float64 { return p.ChordLength })
}

// LeadingEdgeAt returns the leading edge x at spanwise position y by linear
// interpolation between sections.
func (s *LiftingSurface) LeadingEdgeAt(y float64) (float64, error) {
	return s.interpolate(y, func(p *Profile) float64 { return p.PlanformPosition.X })
}

// interpolate builds a piecewise linear law along span. Sections at the
// same spanwise position collapse to the outermost one.
func (s *LiftingSurface) interpolate(y float64, value func(*Profile) float64) (float64, error) {
	if err := s.Validate(); err != nil {
		return 0, err
	}

	var ys, vs []float64
	for _, p := range s.Sections {
		if n := len(ys); n > 0 && p.PlanformPosition.Y == ys[n-1] {
			vs[n-1] = value(p)
			continue
		}
		ys = append(ys, p.PlanformPosition.Y)
		vs = append(vs, value(p))
	}
	if len(ys) == 1 {
		return vs[0], nil
	}

	var pl interp.PiecewiseLinear
	if err := pl.Fit(ys, vs); err != nil {
		return 0, err
	}
	return pl.Predict(y), nil
}

func (s *LiftingSurface) trapezoidAreas() []float64 {
	if len(s.Sections) < 2 {
		return nil
	}
	areas := make([]float64, len(s.Sections)-1)
	for i := range areas {
		areas[i] = trapezoidArea(s.Sections[i], s.Sections[i+1])
	}
	return areas
}

// trapezoidArea is the planform area between two sections (m²)
func trapezoidArea(root, tip *Profile) float64 {
	return (tip.PlanformPosition.Y - root.PlanformPosition.Y) * (root.ChordLength + tip.ChordLength) / 2
}

// trapezoidMAC returns a profile holding length and leading edge position of
// the MAC of the trapezoid between two sections. The root chord must be
// positive, the taper ratio is tip/root.
func trapezoidMAC(root, tip *Profile) *Profile {
	taperRatio := tip.ChordLength / root.ChordLength

	coeff := (1 + 2*taperRatio) / (3 + 3*taperRatio)
	return NewProfile(
		2.0/3.0*root.ChordLength*(1+taperRatio+taperRatio*taperRatio)/(1+taperRatio),
		root.PlanformPosition.X+(tip.PlanformPosition.X-root.PlanformPosition.X)*coeff,
		root.PlanformPosition.Y+(tip.PlanformPosition.Y-root.PlanformPosition.Y)*coeff,
	)
}
