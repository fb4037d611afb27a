package tail

import (
	"errors"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"

	"github.com/alexiusacademia/gocs25/internal/variables"
)

func TestComputeHorizontal(t *testing.T) {
	h := ComputeHorizontal(HorizontalInput{
		Span:        12.28,
		TaperRatio:  0.3,
		Sweep25:     28,
		CenterChord: 4.406,
		TipChord:    1.322,
		MACLength:   3.141,
		MAC25XLocal: 2.4,
	})

	for _, c := range []struct {
		name      string
		got, want float64
		tol       float64
	}{
		{"MAC LE x", h.MACLEXLocal, 1.61475, 1e-9},
		{"MAC y", h.MACY, 2.519, 1e-3},
		{"root LE x", h.RootLEXLocal, 0.27539, 1e-5},
		{"tip LE x", h.TipLEXLocal, 3.54008, 1e-5},
		{"sweep 0", h.Sweep0, 33.316, 1e-3},
		{"sweep 100", h.Sweep100, 8.81, 1e-2},
	} {
		if !scalar.EqualWithinAbs(c.got, c.want, c.tol) {
			t.Errorf("%s = %f, want %f", c.name, c.got, c.want)
		}
	}
}

func TestHorizontalUnswept(t *testing.T) {
	h := ComputeHorizontal(HorizontalInput{
		Span: 10, TaperRatio: 1, CenterChord: 2, TipChord: 2, MACLength: 2, MAC25XLocal: 0.5,
	})
	if h.MACLEXLocal != 0 || h.RootLEXLocal != 0 || h.TipLEXLocal != 0 {
		t.Fatalf("rectangular tail leading edge should be straight: %+v", h)
	}
	if h.Sweep0 != 0 || h.Sweep100 != 0 {
		t.Fatalf("rectangular tail should be unswept: %+v", h)
	}
}

func TestComputeVertical(t *testing.T) {
	v := ComputeVertical(VerticalInput{
		Span:        6.62,
		Sweep0:      40.515,
		MACLength:   4.161,
		MACZ:        2.716,
		MAC25XLocal: 3.4,
	})

	if !scalar.EqualWithinAbs(v.MACLEXLocal, 2.35975, 1e-9) {
		t.Errorf("MAC LE x = %f", v.MACLEXLocal)
	}
	if !scalar.EqualWithinAbs(v.RootLEXLocal, 0.03884, 1e-5) {
		t.Errorf("root LE x = %f", v.RootLEXLocal)
	}
	if !scalar.EqualWithinAbs(v.TipLEXLocal, 5.69585, 1e-5) {
		t.Errorf("tip LE x = %f", v.TipLEXLocal)
	}
}

func TestVerticalDistance(t *testing.T) {
	s := variables.NewSet()
	s.Add(variables.FuselageLength, 37.507, variables.Meter)
	s.Add(variables.WingMAC25X, 16.457, variables.Meter)

	out, err := NewVerticalDistance(s)
	if err != nil {
		t.Fatal(err)
	}
	d, err := out.Value(variables.VTMAC25XFromWing)
	if err != nil {
		t.Fatal(err)
	}
	if !scalar.EqualWithinAbs(d, 16.55, 1e-2) {
		t.Fatalf("distance = %f, want 16.55", d)
	}

	s.Add(variables.VTPositionRatio, 0.9, variables.Dimensionless)
	out, _ = NewVerticalDistance(s)
	if d, _ := out.Value(variables.VTMAC25XFromWing); !scalar.EqualWithinAbs(d, 0.9*37.507-16.457, 1e-12) {
		t.Fatalf("distance with ratio 0.9 = %f", d)
	}
}

func TestNewHorizontalInputMissing(t *testing.T) {
	s := variables.NewSet()
	s.Add(variables.HTSpan, 12.28, variables.Meter)
	s.Add(variables.HTSweep25, 28, "rad")

	_, err := NewHorizontalInput(s)
	var missing *variables.MissingInputError
	if !errors.As(err, &missing) || len(missing.Names) != 5 {
		t.Fatalf("expected five missing inputs, got %v", err)
	}
}
