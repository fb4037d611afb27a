package wing

import (
	"fmt"
	"strings"

	"github.com/alexiusacademia/gocs25/internal/cs25"
)

// ThicknessMethod selects how thickness ratios are obtained
type ThicknessMethod int

const (
	// ThicknessRegression derives thickness ratios from cruise Mach number
	// and 25% chord sweep.
	ThicknessRegression ThicknessMethod = iota
	// ThicknessImposed takes thickness ratios as inputs
	ThicknessImposed
)

func (m ThicknessMethod) String() string {
	switch m {
	case ThicknessRegression:
		return "regression"
	case ThicknessImposed:
		return "imposed"
	}
	return fmt.Sprintf("ThicknessMethod(%d)", int(m))
}

// ParseThicknessMethod returns the method with the given name
func ParseThicknessMethod(name string) (ThicknessMethod, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "regression":
		return ThicknessRegression, nil
	case "imposed":
		return ThicknessImposed, nil
	}
	return 0, &MethodError{Name: name}
}

// Model returns the thickness model implementing the method
func (m ThicknessMethod) Model() (ThicknessModel, error) {
	switch m {
	case ThicknessRegression:
		return RegressionThickness{}, nil
	case ThicknessImposed:
		return ImposedThickness{}, nil
	}
	return nil, &MethodError{Name: m.String()}
}

// Thickness holds thickness ratios (thickness / chord)
type Thickness struct {
	Reference float64 // aerodynamic thickness ratio of the wing
	Root      float64
	Kink      float64
	Tip       float64
}

// ThicknessModel computes wing thickness ratios
type ThicknessModel interface {
	Thickness(in Input, kinkSpanRatio float64) Thickness
}

// RegressionThickness uses the empirical CS-25 regression.
// Without a kink (span ratio 0) the kink section is the root section.
type RegressionThickness struct{}

// Thickness implements ThicknessModel
func (RegressionThickness) Thickness(in Input, kinkSpanRatio float64) Thickness {
	ref := cs25.ReferenceThicknessRatio(in.CruiseMach, in.Sweep25)
	root, kink, tip := cs25.StationThicknessRatios(ref, kinkSpanRatio != 0)
	return Thickness{Reference: ref, Root: root, Kink: kink, Tip: tip}
}

// ImposedThickness returns the thickness ratios given as inputs
type ImposedThickness struct{}

// Thickness implements ThicknessModel
func (ImposedThickness) Thickness(in Input, _ float64) Thickness {
	return Thickness{
		Reference: in.ThicknessRatio,
		Root:      in.RootThicknessRatio,
		Kink:      in.KinkThicknessRatio,
		Tip:       in.TipThicknessRatio,
	}
}

// MethodError reports an unknown thickness method
type MethodError struct {
	Name string
}

func (e *MethodError) Error() string {
	return fmt.Sprintf("unknown thickness method %q (expected regression or imposed)", e.Name)
}
