package wing

import (
	"github.com/alexiusacademia/gocs25/internal/variables"
)

// Options select how the planform is defined
type Options struct {
	// AbsoluteKink takes the kink spanwise position as input instead of
	// the kink span ratio.
	AbsoluteKink bool

	// ImposeSweep100Inner takes the inner trailing edge sweep as input.
	// Otherwise it is solved together with the chords.
	ImposeSweep100Inner bool

	Thickness ThicknessMethod
}

// Input holds the planform definition
type Input struct {
	Area              float64 // m²
	AspectRatio       float64
	FuselageMaxWidth  float64 // m
	FuselageMaxHeight float64 // m, 0 if unknown (no lift slope)
	KinkSpanRatio     float64 // relative kink mode
	KinkY             float64 // m, absolute kink mode
	Sweep25           float64 // deg
	Sweep100Inner     float64 // deg, imposed inner sweep mode
	Sweep100Ratio     float64 // inner/outer trailing edge sweep when solved
	VirtualTaperRatio float64
	CruiseMach        float64

	// Imposed thickness ratios
	ThicknessRatio     float64
	RootThicknessRatio float64
	KinkThicknessRatio float64
	TipThicknessRatio  float64

	Options Options
}

// NewInput reads the planform definition from a variable set.
// All missing inputs are reported in a single *variables.MissingInputError.
func NewInput(set *variables.Set, opts Options) (Input, error) {
	r := variables.NewReader(set)
	in := Input{Options: opts}

	in.Area = r.Required(variables.WingArea, variables.SquareMeter)
	in.AspectRatio = r.Required(variables.WingAspectRatio, variables.Dimensionless)
	in.FuselageMaxWidth = r.Required(variables.FuselageMaxWidth, variables.Meter)
	in.FuselageMaxHeight = r.Optional(variables.FuselageMaxHeight, variables.Meter, 0)
	in.Sweep25 = r.Required(variables.WingSweep25, variables.Degree)
	in.VirtualTaperRatio = r.Required(variables.WingVirtualTaperRatio, variables.Dimensionless)
	in.CruiseMach = r.Required(variables.TLARCruiseMach, variables.Dimensionless)

	if opts.AbsoluteKink {
		in.KinkY = r.Required(variables.WingKinkY, variables.Meter)
	} else {
		in.KinkSpanRatio = r.Required(variables.WingKinkSpanRatio, variables.Dimensionless)
	}

	if opts.ImposeSweep100Inner {
		in.Sweep100Inner = r.Required(variables.WingSweep100Inner, variables.Degree)
	} else {
		in.Sweep100Ratio = r.Optional(variables.WingSweep100Ratio, variables.Dimensionless, 0)
	}

	if opts.Thickness == ThicknessImposed {
		in.ThicknessRatio = r.Required(variables.WingThicknessRatio, variables.Dimensionless)
		in.RootThicknessRatio = r.Required(variables.WingRootThicknessRatio, variables.Dimensionless)
		in.KinkThicknessRatio = r.Required(variables.WingKinkThicknessRatio, variables.Dimensionless)
		in.TipThicknessRatio = r.Required(variables.WingTipThicknessRatio, variables.Dimensionless)
	}

	if err := r.Err(); err != nil {
		return Input{}, err
	}
	return in, nil
}
