package cmd

import (
	"fmt"

	"github.com/go-kit/log/level"
	"github.com/spf13/cobra"

	"github.com/alexiusacademia/gocs25/internal/diagram"
	"github.com/alexiusacademia/gocs25/internal/variables"
	"github.com/alexiusacademia/gocs25/internal/wing"
)

var (
	planformInput       string
	planformOutput      string
	planformPlot        string
	planformShowDiagram bool

	planformAbsoluteKink  bool
	planformImposeSweep   bool
	planformThicknessName string
)

var planformFlags = []variableFlag{
	{"area", variables.WingArea, variables.SquareMeter, "Wing reference area"},
	{"aspect-ratio", variables.WingAspectRatio, variables.Dimensionless, "Wing aspect ratio"},
	{"fuselage-width", variables.FuselageMaxWidth, variables.Meter, "Fuselage maximum width"},
	{"fuselage-height", variables.FuselageMaxHeight, variables.Meter, "Fuselage maximum height, for lift slope"},
	{"kink-ratio", variables.WingKinkSpanRatio, variables.Dimensionless, "Kink span ratio"},
	{"kink-y", variables.WingKinkY, variables.Meter, "Kink spanwise position, with --absolute-kink"},
	{"sweep-25", variables.WingSweep25, variables.Degree, "Sweep angle at 25% chord"},
	{"sweep-100-inner", variables.WingSweep100Inner, variables.Degree, "Inner trailing edge sweep, with --impose-sweep-100-inner"},
	{"sweep-100-ratio", variables.WingSweep100Ratio, variables.Dimensionless, "Inner/outer trailing edge sweep ratio"},
	{"virtual-taper-ratio", variables.WingVirtualTaperRatio, variables.Dimensionless, "Virtual taper ratio"},
	{"mach", variables.TLARCruiseMach, variables.Dimensionless, "Cruise Mach number"},
	{"thickness-ratio", variables.WingThicknessRatio, variables.Dimensionless, "Mean thickness ratio, with --thickness imposed"},
	{"root-thickness-ratio", variables.WingRootThicknessRatio, variables.Dimensionless, "Root thickness ratio, with --thickness imposed"},
	{"kink-thickness-ratio", variables.WingKinkThicknessRatio, variables.Dimensionless, "Kink thickness ratio, with --thickness imposed"},
	{"tip-thickness-ratio", variables.WingTipThicknessRatio, variables.Dimensionless, "Tip thickness ratio, with --thickness imposed"},
}

var wingPlanformCmd = &cobra.Command{
	Use:   "planform",
	Short: "Compute the wing planform",
	Long: `Compute the wing planform from its area, aspect ratio, 25% chord
sweep, virtual taper ratio and kink position.

The inner trailing edge sweep is solved together with the chords as a
ratio of the outer trailing edge sweep (0 gives a straight inner trailing
edge) unless it is imposed.

Thickness ratios come from a regression on cruise Mach number and sweep,
or are imposed.

Inputs are read from a variable file and/or flags, flags take precedence.

Examples:
  # Reference single aisle wing
  gocs25 wing planform --area 124.843 --aspect-ratio 9.48 --fuselage-width 3.92 \
    --fuselage-height 4.06 --kink-ratio 0.4 --sweep-25 25 --virtual-taper-ratio 0.38 --mach 0.78

  # From a variable file, writing all variables and a planform plot
  gocs25 wing planform -i data/wing.yaml -o wing_out.yaml --plot planform.png --diagram`,
	RunE: runWingPlanform,
}

func init() {
	wingCmd.AddCommand(wingPlanformCmd)

	wingPlanformCmd.Flags().StringVarP(&planformInput, "input", "i", "", "Input variable file (yaml, json, toml)")
	addVariableFlags(wingPlanformCmd.Flags(), planformFlags)

	// Options
	wingPlanformCmd.Flags().BoolVar(&planformAbsoluteKink, "absolute-kink", false, "Use the kink spanwise position instead of the kink span ratio")
	wingPlanformCmd.Flags().BoolVar(&planformImposeSweep, "impose-sweep-100-inner", false, "Use the inner trailing edge sweep as input")
	wingPlanformCmd.Flags().StringVar(&planformThicknessName, "thickness", "regression", "Thickness ratio method: regression or imposed")

	// Outputs
	wingPlanformCmd.Flags().StringVarP(&planformOutput, "output", "o", "", "Write inputs and outputs to a variable file")
	wingPlanformCmd.Flags().StringVar(&planformPlot, "plot", "", "Export planform diagram to file (png, svg, pdf)")
	wingPlanformCmd.Flags().BoolVar(&planformShowDiagram, "diagram", false, "Show ASCII planform sketch")
}

func runWingPlanform(cmd *cobra.Command, args []string) error {
	thickness, err := wing.ParseThicknessMethod(planformThicknessName)
	if err != nil {
		return err
	}

	set, err := loadInputs(cmd.Flags(), planformInput, planformFlags)
	if err != nil {
		return fmt.Errorf("loading inputs: %w", err)
	}

	opts := wing.Options{
		AbsoluteKink:        planformAbsoluteKink,
		ImposeSweep100Inner: planformImposeSweep,
		Thickness:           thickness,
	}
	in, err := wing.NewInput(set, opts)
	if err != nil {
		return err
	}

	g, err := newWingSolver().Solve(in)
	if err != nil {
		return fmt.Errorf("solving planform: %w", err)
	}

	printWingPlanform(in, g)

	surface := g.Surface()
	surface.ComputePlanformArea()
	surface.ComputeMeanAerodynamicChord()

	if planformShowDiagram {
		sketch, err := diagram.DrawASCIIPlanform(surface)
		if err != nil {
			level.Warn(logger).Log("msg", "cannot draw planform", "err", err)
		} else {
			fmt.Println(sketch)
		}
	}

	if planformPlot != "" {
		data := diagram.PlanformData{
			Surface:            surface,
			CenterChord:        g.CenterChord,
			CenterLeadingEdgeX: g.CenterLeadingEdgeX,
		}
		if err := diagram.ExportPlanform(data, planformPlot); err != nil {
			return fmt.Errorf("exporting diagram: %w", err)
		}
		fmt.Printf("  Diagram exported to: %s\n\n", planformPlot)
	}

	if planformOutput != "" {
		if err := writeOutputs(planformOutput, set, g.Variables()); err != nil {
			return err
		}
	}
	return nil
}

func printWingPlanform(in wing.Input, g *wing.Geometry) {
	printTitle("WING PLANFORM - CS-25 PRELIMINARY GEOMETRY")

	w := newSection("INPUTS")
	fmt.Fprintf(w, "  Area (S):\t%.3f m²\n", in.Area)
	fmt.Fprintf(w, "  Aspect ratio (λ):\t%.3f\n", in.AspectRatio)
	fmt.Fprintf(w, "  Fuselage width:\t%.3f m\n", in.FuselageMaxWidth)
	fmt.Fprintf(w, "  Sweep at 25%% chord (φ25):\t%.2f°\n", in.Sweep25)
	fmt.Fprintf(w, "  Virtual taper ratio:\t%.3f\n", in.VirtualTaperRatio)
	fmt.Fprintf(w, "  Cruise Mach:\t%.3f\n", in.CruiseMach)
	fmt.Fprintf(w, "  Thickness method:\t%s\n", in.Options.Thickness)
	endSection(w)

	w = newSection("SPANWISE STATIONS")
	fmt.Fprintf(w, "  Station\ty (m)\tChord (m)\tLE x local (m)\tt/c\n")
	fmt.Fprintf(w, "  ───────\t─────\t─────────\t──────────────\t───\n")
	fmt.Fprintf(w, "  Center\t%.3f\t%.3f\t%.3f\t\n", 0.0, g.CenterChord, g.CenterLeadingEdgeX)
	for _, st := range []struct {
		name string
		s    wing.Station
	}{{"Root", g.Root}, {"Kink", g.Kink}, {"Tip", g.Tip}} {
		fmt.Fprintf(w, "  %s\t%.3f\t%.3f\t%.3f\t%.4f\n", st.name, st.s.Y, st.s.Chord, st.s.LeadingEdgeX, st.s.ThicknessRatio)
	}
	endSection(w)

	w = newSection("PLANFORM")
	fmt.Fprintf(w, "  Span (b):\t%.3f m\n", g.Span)
	fmt.Fprintf(w, "  Span along 50%% chord (b50):\t%.3f m\n", g.B50)
	fmt.Fprintf(w, "  Virtual root chord:\t%.3f m\n", g.VirtualRootChord)
	fmt.Fprintf(w, "  Kink span ratio:\t%.3f\n", g.KinkSpanRatio)
	fmt.Fprintf(w, "  Taper ratio:\t%.4f\n", g.TaperRatio)
	fmt.Fprintf(w, "  Thickness ratio:\t%.4f\n", g.ThicknessRatio)
	endSection(w)

	w = newSection("SWEEP ANGLES")
	fmt.Fprintf(w, "  Leading edge (φ0):\t%.3f°\n", g.Sweep0)
	fmt.Fprintf(w, "  25%% chord (φ25):\t%.3f°\n", g.Sweep25)
	fmt.Fprintf(w, "  Inner trailing edge (φ100 in):\t%.3f°\n", g.Sweep100Inner)
	fmt.Fprintf(w, "  Outer trailing edge (φ100 out):\t%.3f°\n", g.Sweep100Outer)
	endSection(w)

	w = newSection("AREAS")
	fmt.Fprintf(w, "  Outer area:\t%.3f m²\n", g.OuterArea)
	fmt.Fprintf(w, "  Wetted area:\t%.3f m²\n", g.WettedArea)
	endSection(w)

	if g.CruiseCLAlpha != 0 {
		w = newSection("AERODYNAMICS")
		fmt.Fprintf(w, "  CLα cruise:\t%.4f /rad\n", g.CruiseCLAlpha)
		fmt.Fprintf(w, "  CLα low speed:\t%.4f /rad\n", g.LowSpeedCLAlpha)
		endSection(w)
	}

	fmt.Print(diagram.DrawSummaryBox("MEAN AERODYNAMIC CHORD", []string{
		fmt.Sprintf("Length     = %.3f m", g.MAC.Length),
		fmt.Sprintf("LE x local = %.3f m", g.MAC.LeadingEdgeX),
		fmt.Sprintf("y          = %.3f m", g.MAC.Y),
	}))
	fmt.Println()

	fmt.Println("STATUS:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	if g.Degenerate() {
		fmt.Println("  WARNING: non-positive chord, area too small for the aspect ratio")
	} else {
		fmt.Printf("  Planform solved in %d iteration(s)\n", g.Iterations)
	}
	fmt.Println()
}
