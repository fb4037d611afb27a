package tail

import (
	"math"

	"github.com/alexiusacademia/gocs25/internal/cs25"
	"github.com/alexiusacademia/gocs25/internal/variables"
)

// HorizontalInput holds the horizontal tail planform data
type HorizontalInput struct {
	Span        float64 // m
	TaperRatio  float64
	Sweep25     float64 // deg
	CenterChord float64 // m
	TipChord    float64 // m
	MACLength   float64 // m
	MAC25XLocal float64 // m, from center leading edge
}

// NewHorizontalInput reads the horizontal tail planform from a variable set
func NewHorizontalInput(set *variables.Set) (HorizontalInput, error) {
	r := variables.NewReader(set)
	in := HorizontalInput{
		Span:        r.Required(variables.HTSpan, variables.Meter),
		TaperRatio:  r.Required(variables.HTTaperRatio, variables.Dimensionless),
		Sweep25:     r.Required(variables.HTSweep25, variables.Degree),
		CenterChord: r.Required(variables.HTCenterChord, variables.Meter),
		TipChord:    r.Required(variables.HTTipChord, variables.Meter),
		MACLength:   r.Required(variables.HTMACLength, variables.Meter),
		MAC25XLocal: r.Required(variables.HTMAC25XLocal, variables.Meter),
	}
	if err := r.Err(); err != nil {
		return HorizontalInput{}, err
	}
	return in, nil
}

// Horizontal holds local leading edge positions and sweep angles of the
// horizontal tail. Local x is measured from the center leading edge.
type Horizontal struct {
	MACLEXLocal  float64 // m
	MACY         float64 // m
	RootLEXLocal float64 // m
	TipLEXLocal  float64 // m
	Sweep0       float64 // deg
	Sweep100     float64 // deg
}

// ComputeHorizontal returns local positions and sweeps of the horizontal tail
func ComputeHorizontal(in HorizontalInput) Horizontal {
	tan25 := math.Tan(cs25.Rad(in.Sweep25))
	halfSpan := in.Span / 2

	var h Horizontal
	h.MACLEXLocal = in.MAC25XLocal - 0.25*in.MACLength
	h.MACY = halfSpan / 3 * (1 + 2*in.TaperRatio) / (1 + in.TaperRatio)
	h.RootLEXLocal = h.MACLEXLocal - h.MACY*tan25
	h.TipLEXLocal = h.RootLEXLocal + halfSpan*tan25

	// chord difference moves the 0% and 100% lines about the 25% line
	dc := (in.CenterChord - in.TipChord) / halfSpan
	h.Sweep0 = cs25.Deg(math.Atan(tan25 + 0.25*dc))
	h.Sweep100 = cs25.Deg(math.Atan(tan25 - 0.75*dc))
	return h
}

// Variables returns the local positions and sweeps as named outputs
func (h Horizontal) Variables() *variables.Set {
	s := variables.NewSet()
	s.Add(variables.HTMACLEXLocal, h.MACLEXLocal, variables.Meter)
	s.Add(variables.HTRootLEXLocal, h.RootLEXLocal, variables.Meter)
	s.Add(variables.HTTipLEXLocal, h.TipLEXLocal, variables.Meter)
	s.Add(variables.HTSweep0, h.Sweep0, variables.Degree)
	s.Add(variables.HTSweep100, h.Sweep100, variables.Degree)
	return s
}
