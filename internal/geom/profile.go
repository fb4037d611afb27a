package geom

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/interp"

	"github.com/alexiusacademia/gocs25/internal/cs25"
)

// Profile is a 2D wing section at one spanwise station.
//
// The shape is stored relative to the chord: x and z are divided by the
// chord length and the thickness by the maximum thickness. Relative x is 0
// at 25% chord.
type Profile struct {
	ChordLength          float64       `json:"chord"`                            // m
	MaxRelativeThickness float64       `json:"max_relative_thickness,omitempty"` // max thickness / chord
	TwistAngle           float64       `json:"twist,omitempty"`                  // deg, about 25% chord
	PlanformPosition     Coordinates2D `json:"position"`                         // leading edge

	relX         []float64
	relZ         []float64
	relThickness []float64
}

// NewProfile creates a profile with a chord length and a leading edge position
func NewProfile(chordLength, x, y float64) *Profile {
	return &Profile{
		ChordLength:      chordLength,
		PlanformPosition: Coordinates2D{X: x, Y: y},
	}
}

// SetPoints defines the profile shape from points given in order around the
// perimeter (either direction) with no twist, in meters.
//
// Chord length and maximum relative thickness are computed from the points.
// When keepChordLength (resp. keepRelativeThickness) is set and the profile
// already has a non-zero value, the computed value is discarded.
//
// Leading and trailing edges are the points of minimum and maximum x.
// Blunt trailing edges are not handled.
func (p *Profile) SetPoints(x, z []float64, keepChordLength, keepRelativeThickness bool) error {
	if len(x) != len(z) {
		return &ValidationError{msg: fmt.Sprintf("got %d x values for %d z values", len(x), len(z))}
	}
	if len(x) < 2*splineDegree+1 {
		return &ValidationError{msg: fmt.Sprintf("profile needs at least %d points, got %d", 2*splineDegree+1, len(x))}
	}

	xs := append([]float64(nil), x...)
	// 25% chord at x = 0
	floats.AddConst(-0.25*floats.Max(xs)-0.75*floats.Min(xs), xs)

	upper, lower := splitSides(xs, z)

	chordLength, maxThickness, err := p.computeMeanLineAndThickness(upper, lower)
	if err != nil {
		return err
	}

	if !keepChordLength || p.ChordLength == 0 {
		p.ChordLength = chordLength
	}
	if !keepRelativeThickness || p.MaxRelativeThickness == 0 {
		p.MaxRelativeThickness = maxThickness / chordLength
	}

	// Mean line at 25% chord on z = 0
	var pl interp.PiecewiseLinear
	if err := pl.Fit(p.relX, p.relZ); err != nil {
		return err
	}
	floats.AddConst(-pl.Predict(0), p.relZ)

	return nil
}

// MeanLine returns mean line points in meters, rotated by twist angle
func (p *Profile) MeanLine() []Point {
	pts := make([]Point, len(p.relX))
	for i := range p.relX {
		pts[i] = Point{X: p.relX[i] * p.ChordLength, Z: p.relZ[i] * p.ChordLength}
	}
	return rotate(pts, p.TwistAngle)
}

// RelativeThickness returns thickness / chord against x / chord, with x
// from 0 at leading edge to 1 at trailing edge. Twist angle is not applied.
func (p *Profile) RelativeThickness() []Point {
	pts := make([]Point, len(p.relX))
	for i := range p.relX {
		pts[i] = Point{X: p.relX[i] + 0.25, Z: p.relThickness[i] * p.MaxRelativeThickness}
	}
	return pts
}

// UpperSide returns upper side points in meters, rotated by twist angle
func (p *Profile) UpperSide() []Point {
	return p.side(1)
}

// LowerSide returns lower side points in meters, rotated by twist angle
func (p *Profile) LowerSide() []Point {
	return p.side(-1)
}

// CrossSection returns the area enclosed by the upper and lower sides (m²)
// and its centroid, in the twisted section frame.
func (p *Profile) CrossSection() (area float64, centroid Point) {
	upper := p.UpperSide()
	lower := p.LowerSide()
	if len(upper) < 2 {
		return 0, Point{}
	}

	vertices := make([]Point, 0, len(upper)+len(lower))
	vertices = append(vertices, lower...)
	for i := len(upper) - 1; i >= 0; i-- {
		vertices = append(vertices, upper[i])
	}
	return polygonAreaAndCentroid(vertices)
}

// Extent returns the bounding box of the profile sides in meters,
// rotated by twist angle.
func (p *Profile) Extent() (minPt, maxPt Point) {
	return bounds(append(p.UpperSide(), p.LowerSide()...))
}

// HasShape reports whether points have been set
func (p *Profile) HasShape() bool {
	return len(p.relX) > 0
}

func (p *Profile) side(sign float64) []Point {
	pts := make([]Point, len(p.relX))
	for i := range p.relX {
		half := sign * p.relThickness[i] / 2 * p.MaxRelativeThickness
		pts[i] = Point{
			X: p.relX[i] * p.ChordLength,
			Z: (p.relZ[i] + half) * p.ChordLength,
		}
	}
	return rotate(pts, p.TwistAngle)
}

// computeMeanLineAndThickness interpolates both sides on the union of their
// x values and stores relative mean line and thickness. It returns chord
// length and maximum thickness in meters.
func (p *Profile) computeMeanLineAndThickness(upper, lower []Point) (chordLength, maxThickness float64, err error) {
	upperSpline, err := fitSide(upper)
	if err != nil {
		return 0, 0, fmt.Errorf("upper side: %w", err)
	}
	lowerSpline, err := fitSide(lower)
	if err != nil {
		return 0, 0, fmt.Errorf("lower side: %w", err)
	}

	x := make([]float64, 0, len(upper)+len(lower))
	for _, pt := range lower {
		x = append(x, pt.X)
	}
	for _, pt := range upper {
		x = append(x, pt.X)
	}
	sort.Float64s(x)
	x = uniqueSorted(x)

	z := make([]float64, len(x))
	thickness := make([]float64, len(x))
	for i, xi := range x {
		zl := lowerSpline.At(xi)
		zu := upperSpline.At(xi)
		z[i] = (zl + zu) / 2
		thickness[i] = zu - zl
	}

	chordLength = x[len(x)-1] - x[0]
	maxThickness = floats.Max(thickness)

	floats.Scale(1/chordLength, x)
	floats.Scale(1/chordLength, z)
	floats.Scale(1/maxThickness, thickness)
	p.relX, p.relZ, p.relThickness = x, z, thickness

	return chordLength, maxThickness, nil
}

func fitSide(pts []Point) (*quadraticSpline, error) {
	xs := make([]float64, len(pts))
	zs := make([]float64, len(pts))
	for i, pt := range pts {
		xs[i], zs[i] = pt.X, pt.Z
	}
	return fitQuadraticSpline(xs, zs)
}

// splitSides separates the perimeter at leading and trailing edges.
// Each side is sorted by x and freed of duplicate points. The side that
// reaches the highest z is the upper side.
func splitSides(x, z []float64) (upper, lower []Point) {
	iLE := floats.MinIdx(x)
	iTE := floats.MaxIdx(x)
	i1, i2 := min(iLE, iTE), max(iLE, iTE)

	side1 := make([]Point, 0, i2-i1+1)
	for i := i1; i <= i2; i++ {
		side1 = append(side1, Point{X: x[i], Z: z[i]})
	}
	side2 := make([]Point, 0, len(x)-i2+i1+1)
	for i := i2; i < len(x); i++ {
		side2 = append(side2, Point{X: x[i], Z: z[i]})
	}
	for i := 0; i <= i1; i++ {
		side2 = append(side2, Point{X: x[i], Z: z[i]})
	}

	sortByX(side1)
	sortByX(side2)

	if maxZ(side1) > maxZ(side2) {
		upper, lower = side1, side2
	} else {
		upper, lower = side2, side1
	}
	return dropDuplicates(upper), dropDuplicates(lower)
}

func sortByX(pts []Point) {
	sort.SliceStable(pts, func(i, j int) bool { return pts[i].X < pts[j].X })
}

func maxZ(pts []Point) float64 {
	m := math.Inf(-1)
	for _, pt := range pts {
		m = math.Max(m, pt.Z)
	}
	return m
}

func dropDuplicates(pts []Point) []Point {
	seen := make(map[Point]bool, len(pts))
	out := pts[:0]
	for _, pt := range pts {
		if seen[pt] {
			continue
		}
		seen[pt] = true
		out = append(out, pt)
	}
	return out
}

func uniqueSorted(s []float64) []float64 {
	out := s[:0]
	for i, v := range s {
		if i > 0 && v == out[len(out)-1] {
			continue
		}
		out = append(out, v)
	}
	return out
}

// rotate applies the twist angle (degrees) about the origin, which is the
// 25% chord point.
func rotate(pts []Point, twist float64) []Point {
	sin, cos := math.Sincos(cs25.Rad(twist))
	for i, pt := range pts {
		pts[i] = Point{
			X: pt.X*cos + pt.Z*sin,
			Z: -pt.X*sin + pt.Z*cos,
		}
	}
	return pts
}
