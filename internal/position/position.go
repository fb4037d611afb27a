package position

import (
	"github.com/alexiusacademia/gocs25/internal/variables"
)

// Absolute converts a local x (m, from the root leading edge of a lifting
// surface) to an x from the aircraft nose, given the x of the 25% MAC point,
// the MAC length and the local x of the MAC leading edge.
//
//	x = MAC25 - MAC/4 - (MAC LE local - local x)
func Absolute(mac25X, macLength, macLEXLocal, localX float64) float64 {
	return mac25X - 0.25*macLength - (macLEXLocal - localX)
}

// WingInput holds the wing data needed to place its chords
type WingInput struct {
	MAC25X       float64 // m, from nose
	MACLength    float64 // m
	MACLEXLocal  float64 // m
	KinkLEXLocal float64 // m
	TipLEXLocal  float64 // m
}

// NewWingInput reads wing position inputs from a variable set
func NewWingInput(set *variables.Set) (WingInput, error) {
	r := variables.NewReader(set)
	in := WingInput{
		MAC25X:       r.Required(variables.WingMAC25X, variables.Meter),
		MACLength:    r.Required(variables.WingMACLength, variables.Meter),
		MACLEXLocal:  r.Required(variables.WingMACLEXLocal, variables.Meter),
		KinkLEXLocal: r.Required(variables.WingKinkLEXLocal, variables.Meter),
		TipLEXLocal:  r.Required(variables.WingTipLEXLocal, variables.Meter),
	}
	if err := r.Err(); err != nil {
		return WingInput{}, err
	}
	return in, nil
}

// WingPositions are leading edge x positions from the aircraft nose (m)
type WingPositions struct {
	RootLEX float64
	KinkLEX float64
	TipLEX  float64
	MACLEX  float64
}

// Wing places the wing root, kink, tip and MAC leading edges
func Wing(in WingInput) WingPositions {
	abs := func(local float64) float64 {
		return Absolute(in.MAC25X, in.MACLength, in.MACLEXLocal, local)
	}
	return WingPositions{
		RootLEX: abs(0),
		KinkLEX: abs(in.KinkLEXLocal),
		TipLEX:  abs(in.TipLEXLocal),
		MACLEX:  in.MAC25X - 0.25*in.MACLength,
	}
}

// Variables returns the positions as named outputs
func (p WingPositions) Variables() *variables.Set {
	s := variables.NewSet()
	s.Add(variables.WingRootLEX, p.RootLEX, variables.Meter)
	s.Add(variables.WingKinkLEX, p.KinkLEX, variables.Meter)
	s.Add(variables.WingTipLEX, p.TipLEX, variables.Meter)
	s.Add(variables.WingMACLEX, p.MACLEX, variables.Meter)
	return s
}
