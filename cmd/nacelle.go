package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/gocs25/internal/nacelle"
	"github.com/alexiusacademia/gocs25/internal/variables"
)

var (
	nacelleInput   string
	nacelleOutput  string
	absoluteEngine bool
	interpolateLE  bool
)

var nacelleFlags = []variableFlag{
	{"layout", variables.PropulsionLayout, variables.Dimensionless, "Propulsion layout, 1 for wing-mounted, 2 for rear fuselage"},
	{"thrust", variables.MTOThrust, variables.Newton, "Maximum takeoff thrust of one engine"},
	{"engine-y-ratio", variables.EngineYRatio, variables.Dimensionless, "Engine spanwise position over the half span"},
	{"engine-y", variables.NacelleY, variables.Meter, "Engine spanwise position, with --absolute-engine-y"},
	{"fuselage-length", variables.FuselageLength, variables.Meter, "Fuselage length"},
	{"fuselage-width", variables.FuselageMaxWidth, variables.Meter, "Fuselage maximum width"},
	{"span", variables.WingSpan, variables.Meter, "Wing span"},
	{"root-y", variables.WingRootY, variables.Meter, "Wing root spanwise position"},
	{"root-chord", variables.WingRootChord, variables.Meter, "Wing root chord"},
	{"kink-y", variables.WingKinkY, variables.Meter, "Wing kink spanwise position"},
	{"kink-chord", variables.WingKinkChord, variables.Meter, "Wing kink chord"},
	{"kink-le-x-local", variables.WingKinkLEXLocal, variables.Meter, "Kink leading edge x from the root leading edge"},
	{"tip-y", variables.WingTipY, variables.Meter, "Wing tip spanwise position"},
	{"tip-chord", variables.WingTipChord, variables.Meter, "Wing tip chord"},
	{"tip-le-x-local", variables.WingTipLEXLocal, variables.Meter, "Tip leading edge x from the root leading edge"},
	{"mac25-x", variables.WingMAC25X, variables.Meter, "x of the wing 25% MAC point from the nose"},
	{"mac-length", variables.WingMACLength, variables.Meter, "Wing MAC length"},
	{"mac-le-x-local", variables.WingMACLEXLocal, variables.Meter, "Wing MAC leading edge x from the root leading edge"},
}

var nacelleCmd = &cobra.Command{
	Use:   "nacelle",
	Short: "Size nacelle and pylon, place the engine",
	Long: `Size the nacelle and pylon from the maximum takeoff thrust and compute
the engine spanwise position and center of gravity x from the nose.

Layouts:
  1  Engines under the wing, the nacelle is placed from the wing chord
     at the engine spanwise position
  2  Engines on the rear fuselage

Wing data is only needed for layout 1; the output file of 'wing planform'
followed by 'wing positions' holds all of it.

Examples:
  gocs25 nacelle -i data/nacelle.yaml
  gocs25 nacelle --layout 2 --thrust 117880 --fuselage-length 37.507 --fuselage-width 3.92
  gocs25 nacelle -i wing_out.yaml --absolute-engine-y --engine-y 5.5 --layout 1 --thrust 117880`,
	RunE: runNacelle,
}

func init() {
	rootCmd.AddCommand(nacelleCmd)

	nacelleCmd.Flags().StringVarP(&nacelleInput, "input", "i", "", "Input variable file (yaml, json, toml)")
	nacelleCmd.Flags().StringVarP(&nacelleOutput, "output", "o", "", "Write inputs and outputs to a variable file")
	nacelleCmd.Flags().BoolVar(&absoluteEngine, "absolute-engine-y", false, "Take the engine spanwise position instead of its span ratio")
	nacelleCmd.Flags().BoolVar(&interpolateLE, "interpolate-leading-edge", false, "Interpolate the wing leading edge between both chords around the engine")
	addVariableFlags(nacelleCmd.Flags(), nacelleFlags)
}

func runNacelle(cmd *cobra.Command, args []string) error {
	set, err := loadInputs(cmd.Flags(), nacelleInput, nacelleFlags)
	if err != nil {
		return fmt.Errorf("loading inputs: %w", err)
	}

	in, err := nacelle.NewInput(set, nacelle.Options{
		ImposeAbsoluteEngineY:  absoluteEngine,
		InterpolateLeadingEdge: interpolateLE,
	})
	if err != nil {
		return err
	}
	g, err := nacelle.Compute(in)
	if err != nil {
		return err
	}

	printTitle("NACELLE AND PYLON GEOMETRY")

	w := newSection("ENGINE")
	fmt.Fprintf(w, "  Layout:\t%s\n", g.Layout)
	fmt.Fprintf(w, "  Max takeoff thrust:\t%.0f N\n", in.MaxThrust)
	endSection(w)

	w = newSection("NACELLE")
	fmt.Fprintf(w, "  Diameter:\t%.3f m\n", g.Diameter)
	fmt.Fprintf(w, "  Length:\t%.3f m\n", g.Length)
	fmt.Fprintf(w, "  Wetted area:\t%.3f m²\n", g.WettedArea)
	fmt.Fprintf(w, "  Fan length:\t%.3f m\n", g.FanLength)
	endSection(w)

	w = newSection("PYLON")
	fmt.Fprintf(w, "  Length:\t%.3f m\n", g.PylonLength)
	fmt.Fprintf(w, "  Wetted area:\t%.3f m²\n", g.PylonWettedArea)
	fmt.Fprintf(w, "  Landing gear height:\t%.3f m\n", g.LandingGearHeight)
	endSection(w)

	w = newSection("POSITION")
	fmt.Fprintf(w, "  Spanwise position y:\t%.3f m\n", g.Y)
	if g.Layout == nacelle.WingMounted {
		fmt.Fprintf(w, "  Half span ratio:\t%.3f\n", g.YRatio)
	}
	fmt.Fprintf(w, "  Engine CG x:\t%.3f m\n", g.CGX)
	endSection(w)

	if nacelleOutput != "" {
		return writeOutputs(nacelleOutput, set, g.Variables())
	}
	return nil
}
