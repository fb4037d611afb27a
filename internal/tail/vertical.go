package tail

import (
	"math"

	"github.com/alexiusacademia/gocs25/internal/cs25"
	"github.com/alexiusacademia/gocs25/internal/variables"
)

// VerticalInput holds the vertical tail planform data
type VerticalInput struct {
	Span        float64 // m
	Sweep0      float64 // deg
	MACLength   float64 // m
	MACZ        float64 // m, height of the MAC above the root
	MAC25XLocal float64 // m, from root leading edge
}

// NewVerticalInput reads the vertical tail planform from a variable set
func NewVerticalInput(set *variables.Set) (VerticalInput, error) {
	r := variables.NewReader(set)
	in := VerticalInput{
		Span:        r.Required(variables.VTSpan, variables.Meter),
		Sweep0:      r.Required(variables.VTSweep0, variables.Degree),
		MACLength:   r.Required(variables.VTMACLength, variables.Meter),
		MACZ:        r.Required(variables.VTMACZ, variables.Meter),
		MAC25XLocal: r.Required(variables.VTMAC25XLocal, variables.Meter),
	}
	if err := r.Err(); err != nil {
		return VerticalInput{}, err
	}
	return in, nil
}

// Vertical holds local leading edge positions of the vertical tail
type Vertical struct {
	MACLEXLocal  float64 // m
	RootLEXLocal float64 // m
	TipLEXLocal  float64 // m
}

// ComputeVertical returns local leading edge positions of the vertical tail
func ComputeVertical(in VerticalInput) Vertical {
	tan0 := math.Tan(cs25.Rad(in.Sweep0))

	var v Vertical
	v.MACLEXLocal = in.MAC25XLocal - 0.25*in.MACLength
	v.RootLEXLocal = v.MACLEXLocal - in.MACZ*tan0
	v.TipLEXLocal = v.RootLEXLocal + in.Span*tan0
	return v
}

// Variables returns the local positions as named outputs
func (v Vertical) Variables() *variables.Set {
	s := variables.NewSet()
	s.Add(variables.VTMACLEXLocal, v.MACLEXLocal, variables.Meter)
	s.Add(variables.VTRootLEXLocal, v.RootLEXLocal, variables.Meter)
	s.Add(variables.VTTipLEXLocal, v.TipLEXLocal, variables.Meter)
	return s
}

// VerticalDistance returns the distance from wing MAC25 to vertical tail
// MAC25 (m), the vertical tail aerodynamic center being placed at a ratio
// of the fuselage length.
func VerticalDistance(fuselageLength, wingMAC25X, positionRatio float64) float64 {
	return positionRatio*fuselageLength - wingMAC25X
}

// NewVerticalDistance reads fuselage length and wing MAC25 from a set and
// returns the vertical tail distance as a variable set. A missing position
// ratio defaults to cs25.VerticalTailPositionRatio.
func NewVerticalDistance(set *variables.Set) (*variables.Set, error) {
	r := variables.NewReader(set)
	length := r.Required(variables.FuselageLength, variables.Meter)
	mac25X := r.Required(variables.WingMAC25X, variables.Meter)
	ratio := r.Optional(variables.VTPositionRatio, variables.Dimensionless, cs25.VerticalTailPositionRatio)
	if err := r.Err(); err != nil {
		return nil, err
	}

	out := variables.NewSet()
	out.Add(variables.VTMAC25XFromWing, VerticalDistance(length, mac25X, ratio), variables.Meter)
	return out, nil
}
