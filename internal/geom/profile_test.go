package geom

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"
)

// Cambered profile whose sides are parabolas, so that quadratic
// interpolation is exact: upper z = 0.4x(1-x), lower z = -0.2x(1-x).
// Points go from trailing edge along upper side, then back along lower side.
func parabolicPoints() (x, z []float64) {
	upper := []float64{1.0, 0.9, 0.8, 0.7, 0.6, 0.5, 0.4, 0.3, 0.2, 0.1, 0.0}
	lower := []float64{0.1, 0.2, 0.3, 0.4, 0.5, 0.6, 0.7, 0.8, 0.9}
	for _, xi := range upper {
		x = append(x, xi)
		z = append(z, 0.4*xi*(1-xi))
	}
	for _, xi := range lower {
		x = append(x, xi)
		z = append(z, -0.2*xi*(1-xi))
	}
	return x, z
}

func TestSetPoints(t *testing.T) {
	x, z := parabolicPoints()
	p := NewProfile(0, 0, 0)
	if err := p.SetPoints(x, z, true, true); err != nil {
		t.Fatal(err)
	}

	if !scalar.EqualWithinAbs(p.ChordLength, 1.0, 1e-12) {
		t.Fatalf("chord length = %f, want 1", p.ChordLength)
	}
	if !scalar.EqualWithinAbs(p.MaxRelativeThickness, 0.15, 1e-12) {
		t.Fatalf("max relative thickness = %f, want 0.15", p.MaxRelativeThickness)
	}

	// Mean line is 0.1x(1-x), shifted to be 0 at 25% chord
	zRef := 0.1 * 0.25 * 0.75
	mean := p.MeanLine()
	if len(mean) != 11 {
		t.Fatalf("got %d mean line points, want 11", len(mean))
	}
	for _, pt := range mean {
		xo := pt.X + 0.25
		want := 0.1*xo*(1-xo) - zRef
		if !scalar.EqualWithinAbs(pt.Z, want, 1e-12) {
			t.Errorf("mean line at x=%f: z = %f, want %f", xo, pt.Z, want)
		}
	}

	for _, pt := range p.UpperSide() {
		xo := pt.X + 0.25
		if want := 0.4*xo*(1-xo) - zRef; !scalar.EqualWithinAbs(pt.Z, want, 1e-12) {
			t.Errorf("upper side at x=%f: z = %f, want %f", xo, pt.Z, want)
		}
	}
	for _, pt := range p.LowerSide() {
		xo := pt.X + 0.25
		if want := -0.2*xo*(1-xo) - zRef; !scalar.EqualWithinAbs(pt.Z, want, 1e-12) {
			t.Errorf("lower side at x=%f: z = %f, want %f", xo, pt.Z, want)
		}
	}

	thickness := p.RelativeThickness()
	if !scalar.EqualWithinAbs(thickness[0].X, 0, 1e-12) || !scalar.EqualWithinAbs(thickness[len(thickness)-1].X, 1, 1e-12) {
		t.Fatalf("relative thickness x should span [0, 1], got [%f, %f]", thickness[0].X, thickness[len(thickness)-1].X)
	}
	for _, pt := range thickness {
		if want := 0.6 * pt.X * (1 - pt.X); !scalar.EqualWithinAbs(pt.Z, want, 1e-12) {
			t.Errorf("relative thickness at x=%f: %f, want %f", pt.X, pt.Z, want)
		}
	}
}

func TestSetPointsKeepFlags(t *testing.T) {
	x, z := parabolicPoints()

	kept := NewProfile(2.0, 0, 0)
	kept.MaxRelativeThickness = 0.1
	if err := kept.SetPoints(x, z, true, true); err != nil {
		t.Fatal(err)
	}
	if kept.ChordLength != 2.0 || kept.MaxRelativeThickness != 0.1 {
		t.Fatalf("kept values changed: chord %f, thickness %f", kept.ChordLength, kept.MaxRelativeThickness)
	}
	upper := kept.UpperSide()
	if last := upper[len(upper)-1]; !scalar.EqualWithinAbs(last.X, 1.5, 1e-12) {
		t.Fatalf("trailing edge x = %f, want 1.5 for a 2 m chord", last.X)
	}

	replaced := NewProfile(2.0, 0, 0)
	replaced.MaxRelativeThickness = 0.1
	if err := replaced.SetPoints(x, z, false, false); err != nil {
		t.Fatal(err)
	}
	if !scalar.EqualWithinAbs(replaced.ChordLength, 1.0, 1e-12) || !scalar.EqualWithinAbs(replaced.MaxRelativeThickness, 0.15, 1e-12) {
		t.Fatalf("values not replaced: chord %f, thickness %f", replaced.ChordLength, replaced.MaxRelativeThickness)
	}
}

func TestTwist(t *testing.T) {
	x, z := parabolicPoints()
	p := NewProfile(0, 0, 0)
	if err := p.SetPoints(x, z, true, true); err != nil {
		t.Fatal(err)
	}
	flat := p.MeanLine()

	p.TwistAngle = 90
	twisted := p.MeanLine()
	for i := range flat {
		if !scalar.EqualWithinAbs(twisted[i].X, flat[i].Z, 1e-12) || !scalar.EqualWithinAbs(twisted[i].Z, -flat[i].X, 1e-12) {
			t.Fatalf("point %d: %+v rotated to %+v", i, flat[i], twisted[i])
		}
	}

	// Thickness is not affected by twist
	if got := p.RelativeThickness(); !scalar.EqualWithinAbs(got[5].X, 0.5, 1e-12) {
		t.Fatalf("relative thickness x = %f, want 0.5", got[5].X)
	}
}

func TestCrossSection(t *testing.T) {
	x, z := parabolicPoints()
	p := NewProfile(0, 0, 0)
	if err := p.SetPoints(x, z, true, true); err != nil {
		t.Fatal(err)
	}

	// Trapezoid rule of 0.6x(1-x) with a 0.1 step
	area, _ := p.CrossSection()
	if !scalar.EqualWithinAbs(area, 0.099, 1e-12) {
		t.Fatalf("cross-section area = %f, want 0.099", area)
	}

	p.TwistAngle = 30
	if twisted, _ := p.CrossSection(); !scalar.EqualWithinAbs(twisted, area, 1e-12) {
		t.Fatalf("twist changed area: %f vs %f", twisted, area)
	}

	minPt, maxPt := NewProfile(0, 0, 0).Extent()
	if minPt != (Point{}) || maxPt != (Point{}) {
		t.Fatal("profile without points should have an empty extent")
	}
}

func TestSetPointsErrors(t *testing.T) {
	p := NewProfile(1, 0, 0)
	if err := p.SetPoints([]float64{0, 1}, []float64{0}, true, true); err == nil {
		t.Fatal("expected error for mismatched lengths")
	}
	if err := p.SetPoints([]float64{1, 0.5, 0, 0.5}, []float64{0, 0.1, 0, -0.1}, true, true); err == nil {
		t.Fatal("expected error for too few points")
	}
	if p.HasShape() {
		t.Fatal("profile should have no shape after failed calls")
	}
}

func TestLoadPoints(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profile.dat")
	content := "TEST PROFILE\n1.0 0.0\n0.5 0.05\n\n0.0 0.0\n0.5 -0.03\n1.0 0.0\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	name, x, z, err := LoadPoints(path)
	if err != nil {
		t.Fatal(err)
	}
	if name != "TEST PROFILE" || len(x) != 5 || len(z) != 5 {
		t.Fatalf("got name %q with %d/%d points", name, len(x), len(z))
	}
	if z[3] != -0.03 {
		t.Fatalf("z[3] = %f, want -0.03", z[3])
	}

	bad := filepath.Join(t.TempDir(), "bad.dat")
	if err := os.WriteFile(bad, []byte("1.0 0.0\nfoo bar\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, _, _, err := LoadPoints(bad); err == nil {
		t.Fatal("expected a parse error")
	}
}

func TestQuadraticSpline(t *testing.T) {
	xs := []float64{0, 0.1, 0.2, 0.3, 0.45, 0.5, 0.7, 0.8, 1.0}
	ys := make([]float64, len(xs))
	for i, x := range xs {
		ys[i] = math.Sin(3 * x)
	}

	s, err := fitQuadraticSpline(xs, ys)
	if err != nil {
		t.Fatal(err)
	}
	for i, x := range xs {
		if got := s.At(x); !scalar.EqualWithinAbs(got, ys[i], 1e-12) {
			t.Errorf("spline(%f) = %f, want %f", x, got, ys[i])
		}
	}
	if got := s.At(0.6); !scalar.EqualWithinAbs(got, 0.973353, 1e-6) {
		t.Errorf("spline(0.6) = %f, want 0.973353", got)
	}

	if _, err := fitQuadraticSpline([]float64{0, 1, 1}, []float64{0, 1, 2}); err == nil {
		t.Fatal("expected error for repeated abscissae")
	}
}
