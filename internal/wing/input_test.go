package wing

import (
	"errors"
	"testing"

	"github.com/alexiusacademia/gocs25/internal/variables"
)

func referenceSet() *variables.Set {
	s := variables.NewSet()
	s.Add(variables.WingArea, 124.843, variables.SquareMeter)
	s.Add(variables.WingAspectRatio, 9.48, variables.Dimensionless)
	s.Add(variables.FuselageMaxWidth, 3.92, variables.Meter)
	s.Add(variables.FuselageMaxHeight, 4.06, variables.Meter)
	s.Add(variables.WingKinkSpanRatio, 0.4, variables.Dimensionless)
	s.Add(variables.WingSweep25, 25, variables.Degree)
	s.Add(variables.WingVirtualTaperRatio, 0.38, variables.Dimensionless)
	s.Add(variables.TLARCruiseMach, 0.78, variables.Dimensionless)
	return s
}

func TestNewInput(t *testing.T) {
	in, err := NewInput(referenceSet(), Options{})
	if err != nil {
		t.Fatal(err)
	}
	if in != referenceInput(0.4) {
		t.Fatalf("unexpected input %+v", in)
	}
}

func TestNewInputMissing(t *testing.T) {
	s := variables.NewSet()
	s.Add(variables.WingArea, 124.843, variables.SquareMeter)

	_, err := NewInput(s, Options{AbsoluteKink: true, ImposeSweep100Inner: true})
	var missing *variables.MissingInputError
	if !errors.As(err, &missing) {
		t.Fatalf("expected *MissingInputError, got %v", err)
	}

	// aspect ratio, width, sweep 25, virtual taper ratio, Mach, kink y, inner sweep
	if len(missing.Names) != 7 {
		t.Fatalf("got %d missing names: %v", len(missing.Names), missing.Names)
	}
	for _, name := range missing.Names {
		if name == "data:geometry:fuselage:maximum_height" || name == "data:geometry:wing:kink:span_ratio" {
			t.Fatalf("%s should not be required", name)
		}
	}
}

func TestNewInputImposedThickness(t *testing.T) {
	s := referenceSet()
	_, err := NewInput(s, Options{Thickness: ThicknessImposed})
	var missing *variables.MissingInputError
	if !errors.As(err, &missing) || len(missing.Names) != 4 {
		t.Fatalf("expected four missing thickness ratios, got %v", err)
	}

	s.Add(variables.WingThicknessRatio, 0.12, variables.Dimensionless)
	s.Add(variables.WingRootThicknessRatio, 0.15, variables.Dimensionless)
	s.Add(variables.WingKinkThicknessRatio, 0.11, variables.Dimensionless)
	s.Add(variables.WingTipThicknessRatio, 0.10, variables.Dimensionless)
	in, err := NewInput(s, Options{Thickness: ThicknessImposed})
	if err != nil {
		t.Fatal(err)
	}
	if in.RootThicknessRatio != 0.15 {
		t.Fatalf("root thickness ratio = %f", in.RootThicknessRatio)
	}
}

func TestParseThicknessMethod(t *testing.T) {
	tests := []struct {
		name    string
		want    ThicknessMethod
		wantErr bool
	}{
		{"", ThicknessRegression, false},
		{"regression", ThicknessRegression, false},
		{" Imposed ", ThicknessImposed, false},
		{"xfoil", 0, true},
	}

	for _, tt := range tests {
		got, err := ParseThicknessMethod(tt.name)
		if tt.wantErr {
			var methodErr *MethodError
			if !errors.As(err, &methodErr) {
				t.Errorf("%q: expected *MethodError, got %v", tt.name, err)
			}
			continue
		}
		if err != nil || got != tt.want {
			t.Errorf("%q: got %v, %v", tt.name, got, err)
		}
	}
}

func TestGeometryVariables(t *testing.T) {
	g := solve(t, referenceInput(0.4))
	s := g.Variables()

	for name, want := range map[string]float64{
		variables.WingSpan:          g.Span,
		variables.WingMACLength:     g.MAC.Length,
		variables.WingKinkLEXLocal:  g.Kink.LeadingEdgeX,
		variables.WingCruiseCLAlpha: g.CruiseCLAlpha,
	} {
		got, err := s.Value(name)
		if err != nil {
			t.Fatal(err)
		}
		if got != want {
			t.Errorf("%s = %f, want %f", name, got, want)
		}
	}

	v, _ := s.Get(variables.WingSweep0)
	if v.Units != variables.Degree {
		t.Fatalf("sweep units = %q", v.Units)
	}

	in := referenceInput(0.4)
	in.FuselageMaxHeight = 0
	if solve(t, in).Variables().Has(variables.WingCruiseCLAlpha) {
		t.Fatal("lift slope should be omitted without fuselage height")
	}
}
