package wing

import (
	"github.com/alexiusacademia/gocs25/internal/geom"
	"github.com/alexiusacademia/gocs25/internal/variables"
)

// Station is a planform break of the half wing
type Station struct {
	Y              float64 // m
	Chord          float64 // m
	LeadingEdgeX   float64 // m, relative to root leading edge
	ThicknessRatio float64
}

// MAC locates the mean aerodynamic chord
type MAC struct {
	Length       float64 // m
	LeadingEdgeX float64 // m, relative to root leading edge
	Y            float64 // m
}

// Geometry is the solved wing planform
type Geometry struct {
	Area        float64 // m²
	AspectRatio float64
	Span        float64 // m

	Root Station
	Kink Station
	Tip  Station

	VirtualRootChord   float64 // m
	CenterChord        float64 // m, at aircraft centerline
	CenterLeadingEdgeX float64 // m

	TaperRatio        float64
	VirtualTaperRatio float64
	KinkSpanRatio     float64
	Sweep100Ratio     float64

	Sweep0        float64 // deg
	Sweep25       float64 // deg
	Sweep100Inner float64 // deg
	Sweep100Outer float64 // deg

	MAC MAC

	B50            float64 // m
	ThicknessRatio float64
	OuterArea      float64 // m²
	WettedArea     float64 // m²

	// Lift curve slopes (1/rad), zero when fuselage height is unknown
	CruiseCLAlpha   float64
	LowSpeedCLAlpha float64

	// Iterations is the number of fixed-point passes used by the solver
	Iterations int
}

// Degenerate reports a non-positive chord
func (g *Geometry) Degenerate() bool {
	return g.VirtualRootChord <= 0 || g.Root.Chord <= 0 || g.Kink.Chord <= 0 || g.Tip.Chord <= 0
}

// Surface returns the half wing as a lifting surface, from the aircraft
// centerline (with the root chord) to the tip.
func (g *Geometry) Surface() *geom.LiftingSurface {
	section := func(s Station) *geom.Profile {
		p := geom.NewProfile(s.Chord, s.LeadingEdgeX, s.Y)
		p.MaxRelativeThickness = s.ThicknessRatio
		return p
	}

	center := section(g.Root)
	center.PlanformPosition.Y = 0
	return &geom.LiftingSurface{
		Name:     "wing",
		Sections: []*geom.Profile{center, section(g.Root), section(g.Kink), section(g.Tip)},
	}
}

// Variables returns the geometry as named outputs
func (g *Geometry) Variables() *variables.Set {
	s := variables.NewSet()
	m, m2, deg, none := variables.Meter, variables.SquareMeter, variables.Degree, variables.Dimensionless

	s.Add(variables.WingArea, g.Area, m2)
	s.Add(variables.WingAspectRatio, g.AspectRatio, none)
	s.Add(variables.WingSpan, g.Span, m)

	s.Add(variables.WingRootY, g.Root.Y, m)
	s.Add(variables.WingRootChord, g.Root.Chord, m)
	s.Add(variables.WingRootVirtualChord, g.VirtualRootChord, m)
	s.Add(variables.WingRootThicknessRatio, g.Root.ThicknessRatio, none)

	s.Add(variables.WingKinkY, g.Kink.Y, m)
	s.Add(variables.WingKinkSpanRatio, g.KinkSpanRatio, none)
	s.Add(variables.WingKinkChord, g.Kink.Chord, m)
	s.Add(variables.WingKinkLEXLocal, g.Kink.LeadingEdgeX, m)
	s.Add(variables.WingKinkThicknessRatio, g.Kink.ThicknessRatio, none)

	s.Add(variables.WingTipY, g.Tip.Y, m)
	s.Add(variables.WingTipChord, g.Tip.Chord, m)
	s.Add(variables.WingTipLEXLocal, g.Tip.LeadingEdgeX, m)
	s.Add(variables.WingTipThicknessRatio, g.Tip.ThicknessRatio, none)

	s.Add(variables.WingCenterChord, g.CenterChord, m)
	s.Add(variables.WingCenterLEXLocal, g.CenterLeadingEdgeX, m)

	s.Add(variables.WingTaperRatio, g.TaperRatio, none)
	s.Add(variables.WingVirtualTaperRatio, g.VirtualTaperRatio, none)
	s.Add(variables.WingSweep0, g.Sweep0, deg)
	s.Add(variables.WingSweep25, g.Sweep25, deg)
	s.Add(variables.WingSweep100Inner, g.Sweep100Inner, deg)
	s.Add(variables.WingSweep100Outer, g.Sweep100Outer, deg)

	s.Add(variables.WingMACLength, g.MAC.Length, m)
	s.Add(variables.WingMACLEXLocal, g.MAC.LeadingEdgeX, m)
	s.Add(variables.WingMACY, g.MAC.Y, m)

	s.Add(variables.WingB50, g.B50, m)
	s.Add(variables.WingThicknessRatio, g.ThicknessRatio, none)
	s.Add(variables.WingOuterArea, g.OuterArea, m2)
	s.Add(variables.WingWettedArea, g.WettedArea, m2)

	if g.CruiseCLAlpha != 0 {
		s.Add(variables.WingCruiseCLAlpha, g.CruiseCLAlpha, "1/rad")
		s.Add(variables.WingLowSpeedCLAlpha, g.LowSpeedCLAlpha, "1/rad")
	}
	return s
}
