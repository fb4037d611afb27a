package position

import (
	"github.com/alexiusacademia/gocs25/internal/variables"
)

// TailInput holds the data needed to place a tail from the wing.
// Local x values are measured from the tail root (vertical tail) or
// center (horizontal tail) leading edge.
type TailInput struct {
	WingMAC25X     float64 // m, from nose
	MAC25XFromWing float64 // m, tail MAC25 from wing MAC25
	MACLength      float64 // m
	MACLEXLocal    float64 // m
	TipLEXLocal    float64 // m
}

// NewHorizontalTailInput reads horizontal tail position inputs
func NewHorizontalTailInput(set *variables.Set) (TailInput, error) {
	return newTailInput(set, variables.HTMAC25XFromWing, variables.HTMACLength, variables.HTMACLEXLocal, variables.HTTipLEXLocal)
}

// NewVerticalTailInput reads vertical tail position inputs
func NewVerticalTailInput(set *variables.Set) (TailInput, error) {
	return newTailInput(set, variables.VTMAC25XFromWing, variables.VTMACLength, variables.VTMACLEXLocal, variables.VTTipLEXLocal)
}

func newTailInput(set *variables.Set, fromWing, macLength, macLEXLocal, tipLEXLocal string) (TailInput, error) {
	r := variables.NewReader(set)
	in := TailInput{
		WingMAC25X:     r.Required(variables.WingMAC25X, variables.Meter),
		MAC25XFromWing: r.Required(fromWing, variables.Meter),
		MACLength:      r.Required(macLength, variables.Meter),
		MACLEXLocal:    r.Required(macLEXLocal, variables.Meter),
		TipLEXLocal:    r.Required(tipLEXLocal, variables.Meter),
	}
	if err := r.Err(); err != nil {
		return TailInput{}, err
	}
	return in, nil
}

// TailPositions are tail x positions from the aircraft nose (m).
// RootLEX is the horizontal tail center or the vertical tail root.
type TailPositions struct {
	MAC25X  float64
	MACLEX  float64
	RootLEX float64
	TipLEX  float64
}

// Tail places the chords of a horizontal or vertical tail
func Tail(in TailInput) TailPositions {
	mac25X := in.WingMAC25X + in.MAC25XFromWing
	return TailPositions{
		MAC25X:  mac25X,
		MACLEX:  mac25X - 0.25*in.MACLength,
		RootLEX: Absolute(mac25X, in.MACLength, in.MACLEXLocal, 0),
		TipLEX:  Absolute(mac25X, in.MACLength, in.MACLEXLocal, in.TipLEXLocal),
	}
}

// HorizontalTailVariables names horizontal tail positions
func (p TailPositions) HorizontalTailVariables() *variables.Set {
	s := variables.NewSet()
	s.Add(variables.HTMAC25X, p.MAC25X, variables.Meter)
	s.Add(variables.HTMACLEX, p.MACLEX, variables.Meter)
	s.Add(variables.HTCenterLEX, p.RootLEX, variables.Meter)
	s.Add(variables.HTTipLEX, p.TipLEX, variables.Meter)
	return s
}

// VerticalTailVariables names vertical tail positions
func (p TailPositions) VerticalTailVariables() *variables.Set {
	s := variables.NewSet()
	s.Add(variables.VTMAC25X, p.MAC25X, variables.Meter)
	s.Add(variables.VTMACLEX, p.MACLEX, variables.Meter)
	s.Add(variables.VTRootLEX, p.RootLEX, variables.Meter)
	s.Add(variables.VTTipLEX, p.TipLEX, variables.Meter)
	return s
}
