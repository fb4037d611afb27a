package cs25

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"
)

func TestReferenceThicknessRatio(t *testing.T) {
	got := ReferenceThicknessRatio(0.78, 25)
	if !scalar.EqualWithinAbs(got, 0.128, 1e-3) {
		t.Fatalf("reference thickness ratio = %f, want 0.128", got)
	}
}

func TestStationThicknessRatios(t *testing.T) {
	ref := 0.1
	root, kink, tip := StationThicknessRatios(ref, true)
	if !scalar.EqualWithinAbs(root, 0.124, 1e-12) || !scalar.EqualWithinAbs(kink, 0.094, 1e-12) || !scalar.EqualWithinAbs(tip, 0.086, 1e-12) {
		t.Fatalf("with kink: got %f %f %f", root, kink, tip)
	}
	_, kink, _ = StationThicknessRatios(ref, false)
	if kink != root {
		t.Fatalf("without kink the kink ratio should equal the root ratio, got %f vs %f", kink, root)
	}
}

func TestAngles(t *testing.T) {
	if !scalar.EqualWithinAbs(Rad(180), math.Pi, 1e-15) {
		t.Fatal("Rad(180) != π")
	}
	if !scalar.EqualWithinAbs(Deg(Rad(37.5)), 37.5, 1e-12) {
		t.Fatal("Deg(Rad(x)) != x")
	}
}

func TestFuselageSpillover(t *testing.T) {
	if got := FuselageSpillover(0, 30); got != FuselageLiftFactor {
		t.Fatalf("zero diameter should give %f, got %f", FuselageLiftFactor, got)
	}
	if got := CompressibilityFactor(0.6); !scalar.EqualWithinAbs(got, 0.8, 1e-12) {
		t.Fatalf("β(0.6) = %f, want 0.8", got)
	}
}
