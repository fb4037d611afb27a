package variables

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSetValue(t *testing.T) {
	s := NewSet()
	s.Add(WingArea, 124.843, SquareMeter)

	got, err := s.Value("DATA:geometry:wing:area")
	if err != nil {
		t.Fatal(err)
	}
	if got != 124.843 {
		t.Fatalf("value = %f, want 124.843", got)
	}

	_, err = s.Value(WingAspectRatio)
	var missing *MissingInputError
	if !errors.As(err, &missing) {
		t.Fatalf("expected *MissingInputError, got %v", err)
	}
	if missing.Names[0] != "data:geometry:wing:aspect_ratio" {
		t.Fatalf("missing name = %q", missing.Names[0])
	}

	if got := s.ValueOr(WingSweep100Ratio, 0.5); got != 0.5 {
		t.Fatalf("default = %f, want 0.5", got)
	}
}

func TestReader(t *testing.T) {
	s := NewSet()
	s.Add(WingArea, 124.843, SquareMeter)
	s.Add(WingSweep25, 25, Degree)

	r := NewReader(s)
	area := r.Required(WingArea, SquareMeter)
	r.Required(WingAspectRatio, Dimensionless)
	r.Required(FuselageMaxWidth, Meter)
	ratio := r.Optional(WingSweep100Ratio, Dimensionless, 0)

	if area != 124.843 || ratio != 0 {
		t.Fatalf("got area %f, ratio %f", area, ratio)
	}

	var missing *MissingInputError
	if err := r.Err(); !errors.As(err, &missing) || len(missing.Names) != 2 {
		t.Fatalf("expected two missing inputs, got %v", err)
	}

	r = NewReader(s)
	r.Required(WingSweep25, "rad")
	var unitsErr *UnitsError
	if err := r.Err(); !errors.As(err, &unitsErr) {
		t.Fatalf("expected *UnitsError, got %v", err)
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "inputs.yaml")
	content := `data:
  TLAR:
    cruise_mach: 0.78
  geometry:
    wing:
      area: {value: 124.843, units: "m**2"}
      aspect_ratio: 9.48
      sweep_25:
        value: 25.0
        units: deg
    propulsion:
      layout: 1
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	s, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if s.Len() != 5 {
		t.Fatalf("got %d variables, want 5: %+v", s.Len(), s.Variables())
	}

	area, ok := s.Get(WingArea)
	if !ok || area.Value != 124.843 || area.Units != "m**2" {
		t.Fatalf("area = %+v", area)
	}
	if v, _ := s.Value(TLARCruiseMach); v != 0.78 {
		t.Fatalf("cruise mach = %f", v)
	}
	if v, _ := s.Value(PropulsionLayout); v != 1 {
		t.Fatalf("layout = %f", v)
	}
	if sweep, _ := s.Get(WingSweep25); sweep.Units != Degree {
		t.Fatalf("sweep units = %q", sweep.Units)
	}
}

func TestLoadRejectsText(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("data:\n  geometry:\n    wing:\n      area: large\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected an error for a non-numeric value")
	}
}

// A name can be both a variable and the parent of other variables
func TestWriteNestedNames(t *testing.T) {
	s := NewSet()
	s.Add(WingMAC25X, 16.457, Meter)
	s.Add(WingMAC25X+":local", 2.361, Meter)
	s.Add(WingAspectRatio, 9.48, Dimensionless)

	for _, ext := range []string{".yaml", ".json", ".toml"} {
		path := filepath.Join(t.TempDir(), "out"+ext)
		if err := s.Write(path); err != nil {
			t.Fatal(err)
		}
		loaded, err := Load(path)
		if err != nil {
			t.Fatalf("%s: %v", ext, err)
		}
		if loaded.Len() != 3 {
			t.Fatalf("%s: got %d variables, want 3", ext, loaded.Len())
		}
		x, _ := loaded.Get(WingMAC25X)
		local, _ := loaded.Get(WingMAC25X + ":local")
		if x.Value != 16.457 || local.Value != 2.361 || x.Units != Meter {
			t.Fatalf("%s: got %+v and %+v", ext, x, local)
		}
	}
}

func TestNamesKeepCase(t *testing.T) {
	s := NewSet()
	s.Add("data:tlar:cruise_mach", 0.78, Dimensionless)
	s.Add("data:custom:Ratio", 2, Dimensionless)
	s.Add("DATA:CUSTOM:RATIO", 3, Dimensionless)

	if v, _ := s.Get(TLARCruiseMach); v.Name != TLARCruiseMach {
		t.Fatalf("name = %q, want %q", v.Name, TLARCruiseMach)
	}
	if v, _ := s.Get("data:custom:ratio"); v.Name != "data:custom:Ratio" || v.Value != 3 {
		t.Fatalf("got %+v, want the first spelling with the last value", v)
	}

	r := NewReader(s)
	r.Required(WingMACLength, Meter)
	var missing *MissingInputError
	if err := r.Err(); !errors.As(err, &missing) || missing.Names[0] != WingMACLength {
		t.Fatalf("expected %s to be missing, got %v", WingMACLength, err)
	}
}

func TestWriteKeepsCase(t *testing.T) {
	s := NewSet()
	s.Add(TLARCruiseMach, 0.78, Dimensionless)
	s.Add(WingMACLength, 4.457, Meter)
	s.Add(WingMAC25X, 16.457, Meter)

	for _, ext := range []string{".yaml", ".json", ".toml"} {
		path := filepath.Join(t.TempDir(), "out"+ext)
		if err := s.Write(path); err != nil {
			t.Fatal(err)
		}
		data, err := os.ReadFile(path)
		if err != nil {
			t.Fatal(err)
		}
		for _, segment := range []string{"TLAR", "MAC"} {
			if !strings.Contains(string(data), segment) {
				t.Fatalf("%s: %q lost its case:\n%s", ext, segment, data)
			}
		}

		loaded, err := Load(path)
		if err != nil {
			t.Fatalf("%s: %v", ext, err)
		}
		if loaded.Len() != 3 {
			t.Fatalf("%s: got %d variables, want 3", ext, loaded.Len())
		}
		for i, v := range loaded.Variables() {
			if want := s.Variables()[i].Name; v.Name != want {
				t.Fatalf("%s: name %q, want %q", ext, v.Name, want)
			}
		}
	}

	if err := s.Write(filepath.Join(t.TempDir(), "out.ini")); err == nil {
		t.Fatal("expected an error for an unknown format")
	}
}
