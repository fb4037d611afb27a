package position

import (
	"errors"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"

	"github.com/alexiusacademia/gocs25/internal/variables"
)

func TestAbsolute(t *testing.T) {
	// local x equal to the MAC leading edge gives the MAC leading edge
	if got := Absolute(10, 4, 2, 2); got != 9 {
		t.Fatalf("Absolute = %f, want 9", got)
	}
}

func TestWing(t *testing.T) {
	p := Wing(WingInput{MAC25X: 10, MACLength: 4, MACLEXLocal: 2, KinkLEXLocal: 2, TipLEXLocal: 5.5})

	want := WingPositions{RootLEX: 7, KinkLEX: 9, TipLEX: 12.5, MACLEX: 9}
	if p != want {
		t.Fatalf("got %+v, want %+v", p, want)
	}
}

func TestNewWingInput(t *testing.T) {
	s := variables.NewSet()
	s.Add(variables.WingMAC25X, 16.457, variables.Meter)
	s.Add(variables.WingMACLength, 4.457, variables.Meter)

	_, err := NewWingInput(s)
	var missing *variables.MissingInputError
	if !errors.As(err, &missing) || len(missing.Names) != 3 {
		t.Fatalf("expected three missing inputs, got %v", err)
	}

	s.Add(variables.WingMACLEXLocal, 2.361, variables.Meter)
	s.Add(variables.WingKinkLEXLocal, 2.275, variables.Meter)
	s.Add(variables.WingTipLEXLocal, 7.8, variables.Meter)
	in, err := NewWingInput(s)
	if err != nil {
		t.Fatal(err)
	}

	out := Wing(in).Variables()
	root, err := out.Value(variables.WingRootLEX)
	if err != nil {
		t.Fatal(err)
	}
	if !scalar.EqualWithinAbs(root, 16.457-0.25*4.457-2.361, 1e-12) {
		t.Fatalf("root leading edge x = %f", root)
	}
}

func TestTail(t *testing.T) {
	p := Tail(TailInput{
		WingMAC25X:     16.457,
		MAC25XFromWing: 15.5,
		MACLength:      4.161,
		MACLEXLocal:    1.34,
		TipLEXLocal:    4.84,
	})

	for _, c := range []struct {
		name      string
		got, want float64
	}{
		{"MAC25 x", p.MAC25X, 31.957},
		{"MAC LE x", p.MACLEX, 30.91675},
		{"root LE x", p.RootLEX, 29.57675},
		{"tip LE x", p.TipLEX, 34.41675},
	} {
		if !scalar.EqualWithinAbs(c.got, c.want, 1e-9) {
			t.Errorf("%s = %f, want %f", c.name, c.got, c.want)
		}
	}

	// Center leading edge is the MAC leading edge minus its local x
	if !scalar.EqualWithinAbs(p.MACLEX-p.RootLEX, 1.34, 1e-9) {
		t.Fatalf("MAC LE local = %f", p.MACLEX-p.RootLEX)
	}

	ht := p.HorizontalTailVariables()
	if v, _ := ht.Value(variables.HTCenterLEX); v != p.RootLEX {
		t.Fatalf("horizontal tail center = %f", v)
	}
	vt := p.VerticalTailVariables()
	if v, _ := vt.Value(variables.VTTipLEX); v != p.TipLEX {
		t.Fatalf("vertical tail tip = %f", v)
	}
}

func TestNewTailInputs(t *testing.T) {
	s := variables.NewSet()
	s.Add(variables.WingMAC25X, 16.457, variables.Meter)
	s.Add(variables.HTMAC25XFromWing, 17.675, variables.Meter)
	s.Add(variables.HTMACLength, 3.141, variables.Meter)
	s.Add(variables.HTMACLEXLocal, 1.656, variables.Meter)
	s.Add(variables.HTTipLEXLocal, 3.14, variables.Meter)

	in, err := NewHorizontalTailInput(s)
	if err != nil {
		t.Fatal(err)
	}
	if in.MAC25XFromWing != 17.675 {
		t.Fatalf("distance = %f", in.MAC25XFromWing)
	}

	_, err = NewVerticalTailInput(s)
	var missing *variables.MissingInputError
	if !errors.As(err, &missing) || len(missing.Names) != 4 {
		t.Fatalf("expected four missing vertical tail inputs, got %v", err)
	}
}
