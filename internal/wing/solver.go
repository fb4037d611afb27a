package wing

import (
	"errors"
	"fmt"
	"math"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"

	"github.com/alexiusacademia/gocs25/internal/cs25"
)

// ErrNotConverged is matched by *ConvergenceError
var ErrNotConverged = errors.New("planform solver did not converge")

// ConvergenceError reports a fixed-point iteration that stopped on the
// iteration cap.
type ConvergenceError struct {
	Iterations int
	Residual   float64 // deg
}

func (e *ConvergenceError) Error() string {
	return fmt.Sprintf("%v after %d iterations (inner sweep residual %g deg)", ErrNotConverged, e.Iterations, e.Residual)
}

// Is reports whether target is ErrNotConverged
func (e *ConvergenceError) Is(target error) bool {
	return target == ErrNotConverged
}

// Solver computes the wing planform.
//
// The inner trailing edge sweep enters the chord equations and is itself
// derived from the outer trailing edge sweep, so it is solved by fixed-point
// iteration unless imposed.
type Solver struct {
	MaxIterations int
	Tolerance     float64 // deg
	Logger        log.Logger
}

// NewSolver returns a solver with default settings
func NewSolver() *Solver {
	return &Solver{
		MaxIterations: cs25.DefaultMaxIterations,
		Tolerance:     cs25.DefaultTolerance,
		Logger:        log.NewNopLogger(),
	}
}

// Solve computes the planform geometry
func (s *Solver) Solve(in Input) (*Geometry, error) {
	model, err := in.Options.Thickness.Model()
	if err != nil {
		return nil, err
	}
	logger := s.Logger
	if logger == nil {
		logger = log.NewNopLogger()
	}

	if in.Options.ImposeSweep100Inner {
		g := evaluate(in, model, in.Sweep100Inner)
		g.Sweep100Inner = in.Sweep100Inner
		g.Iterations = 1
		s.check(logger, g)
		return g, nil
	}

	maxIter := s.MaxIterations
	if maxIter <= 0 {
		maxIter = cs25.DefaultMaxIterations
	}

	sweep100Inner := 0.0
	var residual float64
	for i := 1; i <= maxIter; i++ {
		g := evaluate(in, model, sweep100Inner)
		residual = math.Abs(g.Sweep100Inner - sweep100Inner)
		level.Debug(logger).Log("msg", "planform iteration", "iteration", i, "sweep_100_inner", g.Sweep100Inner, "residual", residual)

		if residual <= s.Tolerance {
			g.Iterations = i
			s.check(logger, g)
			return g, nil
		}
		sweep100Inner = g.Sweep100Inner
	}

	return nil, &ConvergenceError{Iterations: maxIter, Residual: residual}
}

func (s *Solver) check(logger log.Logger, g *Geometry) {
	if g.Degenerate() {
		level.Warn(logger).Log(
			"msg", "non-positive chord, wing area may be too small for the aspect ratio",
			"virtual_root_chord", g.VirtualRootChord,
			"root_chord", g.Root.Chord,
			"kink_chord", g.Kink.Chord,
			"tip_chord", g.Tip.Chord,
		)
	}
}

// evaluate runs one pass of the planform equations for a given inner
// trailing edge sweep (deg). The returned Sweep100Inner is the updated value.
func evaluate(in Input, thickness ThicknessModel, sweep100Inner float64) *Geometry {
	st := ComputeStations(in)
	c := ComputeChords(in.Area, in.VirtualTaperRatio, in.Sweep25, sweep100Inner, st)
	kinkX, tipX := LeadingEdges(c, st, in.Sweep25)
	macLength, macX, macY := MeanAerodynamicChord(in.Area, st, c, kinkX, tipX)
	sweep0, newSweep100Inner, sweep100Outer := Sweeps(c, st, tipX, in.Sweep100Ratio)
	centerChord, centerX := CenterChord(c, st, kinkX, tipX)
	t := thickness.Thickness(in, st.KinkSpanRatio)
	outer := OuterArea(in.Area, c.Root, in.FuselageMaxWidth)

	g := &Geometry{
		Area:        in.Area,
		AspectRatio: in.AspectRatio,
		Span:        st.Span,

		Root: Station{Y: st.RootY, Chord: c.Root, ThicknessRatio: t.Root},
		Kink: Station{Y: st.KinkY, Chord: c.Kink, LeadingEdgeX: kinkX, ThicknessRatio: t.Kink},
		Tip:  Station{Y: st.TipY, Chord: c.Tip, LeadingEdgeX: tipX, ThicknessRatio: t.Tip},

		VirtualRootChord:   c.VirtualRoot,
		CenterChord:        centerChord,
		CenterLeadingEdgeX: centerX,

		TaperRatio:        c.Tip / c.Root,
		VirtualTaperRatio: in.VirtualTaperRatio,
		KinkSpanRatio:     st.KinkSpanRatio,
		Sweep100Ratio:     in.Sweep100Ratio,

		Sweep0:        sweep0,
		Sweep25:       in.Sweep25,
		Sweep100Inner: newSweep100Inner,
		Sweep100Outer: sweep100Outer,

		MAC: MAC{Length: macLength, LeadingEdgeX: macX, Y: macY},

		B50:            B50(c, st, tipX),
		ThicknessRatio: t.Reference,
		OuterArea:      outer,
		WettedArea:     WettedArea(outer),
	}

	if in.FuselageMaxHeight > 0 {
		g.CruiseCLAlpha = LiftSlope(in.CruiseMach, in, st, c, t.Tip)
		g.LowSpeedCLAlpha = LiftSlope(cs25.LowSpeedMach, in, st, c, t.Tip)
	}
	return g
}
