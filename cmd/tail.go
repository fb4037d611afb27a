package cmd

import (
	"fmt"

	"github.com/go-kit/log/level"
	"github.com/spf13/cobra"

	"github.com/alexiusacademia/gocs25/internal/position"
	"github.com/alexiusacademia/gocs25/internal/tail"
	"github.com/alexiusacademia/gocs25/internal/variables"
)

var (
	tailInput  string
	tailOutput string
)

var horizontalTailFlags = []variableFlag{
	{"span", variables.HTSpan, variables.Meter, "Horizontal tail span"},
	{"taper-ratio", variables.HTTaperRatio, variables.Dimensionless, "Horizontal tail taper ratio"},
	{"sweep-25", variables.HTSweep25, variables.Degree, "Sweep angle at 25% chord"},
	{"center-chord", variables.HTCenterChord, variables.Meter, "Chord at the aircraft centerline"},
	{"tip-chord", variables.HTTipChord, variables.Meter, "Tip chord"},
	{"mac-length", variables.HTMACLength, variables.Meter, "MAC length"},
	{"mac25-x-local", variables.HTMAC25XLocal, variables.Meter, "x of the 25% MAC point from the center leading edge"},
	{"wing-mac25-x", variables.WingMAC25X, variables.Meter, "x of the wing 25% MAC point from the nose"},
	{"distance", variables.HTMAC25XFromWing, variables.Meter, "Distance from wing 25% MAC to tail 25% MAC"},
}

var verticalTailFlags = []variableFlag{
	{"span", variables.VTSpan, variables.Meter, "Vertical tail span"},
	{"sweep-0", variables.VTSweep0, variables.Degree, "Leading edge sweep angle"},
	{"mac-length", variables.VTMACLength, variables.Meter, "MAC length"},
	{"mac-z", variables.VTMACZ, variables.Meter, "Height of the MAC above the root"},
	{"mac25-x-local", variables.VTMAC25XLocal, variables.Meter, "x of the 25% MAC point from the root leading edge"},
	{"wing-mac25-x", variables.WingMAC25X, variables.Meter, "x of the wing 25% MAC point from the nose"},
	{"fuselage-length", variables.FuselageLength, variables.Meter, "Fuselage length"},
	{"distance", variables.VTMAC25XFromWing, variables.Meter, "Distance from wing 25% MAC to tail 25% MAC, computed if not set"},
}

var tailCmd = &cobra.Command{
	Use:   "tail",
	Short: "Horizontal and vertical tail positions",
	Long: `Compute local leading edge positions of the tails, then place them
with respect to the aircraft nose from the wing MAC position.

Subcommands:
  horizontal  - Horizontal tail positions and sweep angles
  vertical    - Vertical tail distance and positions`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level.Debug(logger).Log("msg", "tail command", "name", cmd.Name())
	},
}

var horizontalTailCmd = &cobra.Command{
	Use:   "horizontal",
	Short: "Compute horizontal tail positions and sweeps",
	Long: `Compute the horizontal tail MAC, root and tip leading edges (local and
from the nose) and its leading and trailing edge sweep angles.

Examples:
  gocs25 tail horizontal -i data/tails.yaml
  gocs25 tail horizontal --span 12.28 --taper-ratio 0.3 --sweep-25 28 --center-chord 4.406 \
    --tip-chord 1.322 --mac-length 3.141 --mac25-x-local 2.4 --wing-mac25-x 16.457 --distance 17.675`,
	RunE: runHorizontalTail,
}

var verticalTailCmd = &cobra.Command{
	Use:   "vertical",
	Short: "Compute vertical tail positions",
	Long: `Compute the vertical tail MAC, root and tip leading edges (local and
from the nose).

Unless given, the distance from the wing 25% MAC point is computed by
placing the vertical tail 25% MAC point at a ratio of the fuselage length,
settings:geometry:vertical_tail:position_ratio_on_fuselage (0.88).

Examples:
  gocs25 tail vertical -i data/tails.yaml
  gocs25 --config data/settings.yaml tail vertical -i data/tails.yaml -o vt_out.yaml`,
	RunE: runVerticalTail,
}

func init() {
	rootCmd.AddCommand(tailCmd)
	tailCmd.AddCommand(horizontalTailCmd)
	tailCmd.AddCommand(verticalTailCmd)

	tailCmd.PersistentFlags().StringVarP(&tailInput, "input", "i", "", "Input variable file (yaml, json, toml)")
	tailCmd.PersistentFlags().StringVarP(&tailOutput, "output", "o", "", "Write inputs and outputs to a variable file")

	addVariableFlags(horizontalTailCmd.Flags(), horizontalTailFlags)
	addVariableFlags(verticalTailCmd.Flags(), verticalTailFlags)
}

func runHorizontalTail(cmd *cobra.Command, args []string) error {
	set, err := loadInputs(cmd.Flags(), tailInput, horizontalTailFlags)
	if err != nil {
		return fmt.Errorf("loading inputs: %w", err)
	}

	in, err := tail.NewHorizontalInput(set)
	if err != nil {
		return err
	}
	local := tail.ComputeHorizontal(in)
	set.Merge(local.Variables())

	posIn, err := position.NewHorizontalTailInput(set)
	if err != nil {
		return err
	}
	global := position.Tail(posIn)

	printTitle("HORIZONTAL TAIL POSITIONS")

	w := newSection("SWEEP ANGLES")
	fmt.Fprintf(w, "  Leading edge (φ0):\t%.3f°\n", local.Sweep0)
	fmt.Fprintf(w, "  25%% chord (φ25):\t%.3f°\n", in.Sweep25)
	fmt.Fprintf(w, "  Trailing edge (φ100):\t%.3f°\n", local.Sweep100)
	endSection(w)

	w = newSection("LEADING EDGE POSITIONS")
	fmt.Fprintf(w, "  Chord\tx local (m)\tx from nose (m)\n")
	fmt.Fprintf(w, "  ─────\t───────────\t───────────────\n")
	fmt.Fprintf(w, "  Center\t%.3f\t%.3f\n", 0.0, global.RootLEX)
	fmt.Fprintf(w, "  Root\t%.3f\t%.3f\n", local.RootLEXLocal, global.RootLEX+local.RootLEXLocal)
	fmt.Fprintf(w, "  MAC (y = %.3f m)\t%.3f\t%.3f\n", local.MACY, local.MACLEXLocal, global.MACLEX)
	fmt.Fprintf(w, "  Tip\t%.3f\t%.3f\n", local.TipLEXLocal, global.TipLEX)
	endSection(w)

	fmt.Printf("  25%% MAC x from nose: %.3f m\n\n", global.MAC25X)

	if tailOutput != "" {
		return writeOutputs(tailOutput, set, global.HorizontalTailVariables())
	}
	return nil
}

func runVerticalTail(cmd *cobra.Command, args []string) error {
	set, err := loadInputs(cmd.Flags(), tailInput, verticalTailFlags)
	if err != nil {
		return fmt.Errorf("loading inputs: %w", err)
	}

	in, err := tail.NewVerticalInput(set)
	if err != nil {
		return err
	}
	local := tail.ComputeVertical(in)
	set.Merge(local.Variables())

	if !set.Has(variables.VTMAC25XFromWing) {
		if !set.Has(variables.VTPositionRatio) {
			set.Add(variables.VTPositionRatio, settings.GetFloat64(variables.VTPositionRatio), variables.Dimensionless)
		}
		distance, err := tail.NewVerticalDistance(set)
		if err != nil {
			return err
		}
		set.Merge(distance)
	}

	posIn, err := position.NewVerticalTailInput(set)
	if err != nil {
		return err
	}
	global := position.Tail(posIn)

	printTitle("VERTICAL TAIL POSITIONS")

	w := newSection("DISTANCE")
	fmt.Fprintf(w, "  Wing 25%% MAC x:\t%.3f m\n", posIn.WingMAC25X)
	fmt.Fprintf(w, "  Tail 25%% MAC from wing 25%% MAC:\t%.3f m\n", posIn.MAC25XFromWing)
	fmt.Fprintf(w, "  Tail 25%% MAC x:\t%.3f m\n", global.MAC25X)
	endSection(w)

	w = newSection("LEADING EDGE POSITIONS")
	fmt.Fprintf(w, "  Chord\tx local (m)\tx from nose (m)\n")
	fmt.Fprintf(w, "  ─────\t───────────\t───────────────\n")
	fmt.Fprintf(w, "  Root\t%.3f\t%.3f\n", 0.0, global.RootLEX)
	fmt.Fprintf(w, "  MAC (z = %.3f m)\t%.3f\t%.3f\n", in.MACZ, local.MACLEXLocal, global.MACLEX)
	fmt.Fprintf(w, "  Tip\t%.3f\t%.3f\n", local.TipLEXLocal, global.TipLEX)
	endSection(w)

	if tailOutput != "" {
		return writeOutputs(tailOutput, set, global.VerticalTailVariables())
	}
	return nil
}
