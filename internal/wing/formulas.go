package wing

import (
	"math"

	"github.com/alexiusacademia/gocs25/internal/cs25"
)

// Stations are the spanwise positions of the planform breaks (m).
// The root station is at the fuselage side, the kink station is never
// inboard of it.
type Stations struct {
	Span          float64
	RootY         float64
	KinkY         float64
	TipY          float64
	KinkSpanRatio float64
}

// ComputeStations returns span and root, kink and tip stations
func ComputeStations(in Input) Stations {
	span := math.Sqrt(in.AspectRatio * in.Area)
	st := Stations{
		Span:  span,
		RootY: in.FuselageMaxWidth / 2,
		TipY:  span / 2,
	}

	if in.Options.AbsoluteKink {
		st.KinkY = in.KinkY
		if st.TipY > 0 {
			st.KinkSpanRatio = st.KinkY / st.TipY
		}
	} else {
		st.KinkSpanRatio = in.KinkSpanRatio
		st.KinkY = math.Max(st.RootY, st.TipY*in.KinkSpanRatio)
	}
	return st
}

// Chords holds the planform chords (m)
type Chords struct {
	// VirtualRoot is the root chord of the trapezoid extrapolated from
	// the outer wing.
	VirtualRoot float64
	Root        float64
	Kink        float64
	Tip         float64
}

// ComputeChords solves the virtual root and tip chords from the wing area,
// then the root and kink chords. Sweeps are in degrees.
//
// No clamping is applied: small areas with high aspect ratios may give
// non-positive chords.
func ComputeChords(area, virtualTaperRatio, sweep25, sweep100Inner float64, st Stations) Chords {
	y2, y3, y4 := st.RootY, st.KinkY, st.TipY
	b := st.Span
	vtr := virtualTaperRatio
	tan25 := math.Tan(cs25.Rad(sweep25))
	tan100 := math.Tan(cs25.Rad(sweep100Inner))

	l1 := (area - (y3-y2)*(y3+y2)*(tan25-tan100)) /
		((1+vtr)/2*(b-2*y2) + 2*y2 - 3*(1-vtr)*(y3-y2)*(y3+y2)/(2*(b-2*y2)))
	l4 := vtr * l1

	l2 := l1 + (y3-y2)*(tan25-tan100-1.5*(1-vtr)*l1/(b-2*y2))
	l3 := l4 + (l1-l4)*(y4-y3)/(y4-y2)

	return Chords{VirtualRoot: l1, Root: l2, Kink: l3, Tip: l4}
}

// LeadingEdges returns the local leading edge x of kink and tip, relative
// to the root leading edge.
func LeadingEdges(c Chords, st Stations, sweep25 float64) (kinkX, tipX float64) {
	tan25 := math.Tan(cs25.Rad(sweep25))
	kinkX = c.VirtualRoot/4 + (st.KinkY-st.RootY)*tan25 - c.Kink/4
	tipX = c.VirtualRoot/4 + (st.TipY-st.RootY)*tan25 - c.Tip/4
	return kinkX, tipX
}

// MeanAerodynamicChord returns length, local leading edge x and spanwise
// position of the MAC. The reference area includes the part of the wing
// inside the fuselage, with the root chord.
func MeanAerodynamicChord(area float64, st Stations, c Chords, kinkX, tipX float64) (length, x, y float64) {
	y2, y3, y4 := st.RootY, st.KinkY, st.TipY
	l2, l3, l4 := c.Root, c.Kink, c.Tip

	length = (3*y2*l2*l2 + (y3-y2)*(l2*l2+l3*l3+l2*l3) + (y4-y3)*(l3*l3+l4*l4+l3*l4)) * 2 / (3 * area)
	x = (kinkX*(y3-y2)*(2*l3+l2) + (y4-y3)*(kinkX*(2*l3+l4)+tipX*(2*l4+l3))) / (3 * area)
	y = (3*y2*y2*l2 + (y3-y2)*(l3*(y2+2*y3)+l2*(y3+2*y2)) + (y4-y3)*(l4*(y3+2*y4)+l3*(y4+2*y3))) / (3 * area)
	return length, x, y
}

// Sweeps returns leading edge and trailing edge sweeps in degrees.
// The inner trailing edge sweep is the outer one times ratio, or equal to
// it when the kink is at the root station.
func Sweeps(c Chords, st Stations, tipX, ratio float64) (sweep0, sweep100Inner, sweep100Outer float64) {
	dy := st.TipY - st.RootY
	sweep0 = cs25.Deg(math.Atan(tipX / dy))
	sweep100Outer = cs25.Deg(math.Atan((tipX + c.Tip - c.VirtualRoot) / dy))

	if st.KinkY == st.RootY {
		ratio = 1
	}
	sweep100Inner = sweep100Outer * ratio
	return sweep0, sweep100Inner, sweep100Outer
}

// B50 returns the span measured along the 50% chord line (m)
func B50(c Chords, st Stations, tipX float64) float64 {
	sweep50 := math.Atan((tipX + c.Tip/2 - c.VirtualRoot/2) / (st.TipY - st.RootY))
	return st.Span / math.Cos(sweep50)
}

// CenterChord extrapolates the chord and the leading edge to the aircraft
// centerline from the first planform segment.
func CenterChord(c Chords, st Stations, kinkX, tipX float64) (chord, leadingEdgeX float64) {
	y1, x1, l1 := st.KinkY, kinkX, c.Kink
	if st.KinkY <= st.RootY {
		y1, x1, l1 = st.TipY, tipX, c.Tip
	}
	t := -st.RootY / (y1 - st.RootY)
	chord = c.Root + t*(l1-c.Root)
	leadingEdgeX = t * x1
	return chord, leadingEdgeX
}

// OuterArea is the wing area outside the fuselage (m²)
func OuterArea(area, rootChord, fuselageWidth float64) float64 {
	return area - rootChord*fuselageWidth
}

// WettedArea counts both sides of the outer wing (m²)
func WettedArea(outerArea float64) float64 {
	return 2 * outerArea
}

// LiftSlope returns the wing lift curve slope (1/rad) at a Mach number,
// including fuselage spillover.
func LiftSlope(mach float64, in Input, st Stations, c Chords, tipThickness float64) float64 {
	beta := cs25.CompressibilityFactor(mach)
	df := math.Sqrt(in.FuselageMaxWidth * in.FuselageMaxHeight)
	spillover := cs25.FuselageSpillover(df, st.Span)

	effectiveAR := in.AspectRatio * (1 + cs25.EndPlateFactor*c.Tip*tipThickness/st.Span)
	tan25 := math.Tan(cs25.Rad(in.Sweep25))

	slope := 2 * math.Pi * effectiveAR /
		(2 + math.Sqrt(4+effectiveAR*effectiveAR*beta*beta/cs25.AirfoilEfficiencySq*(1+tan25*tan25/(beta*beta))))
	return slope * OuterArea(in.Area, c.Root, in.FuselageMaxWidth) / in.Area * spillover
}
