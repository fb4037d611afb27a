package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/gocs25/internal/position"
	"github.com/alexiusacademia/gocs25/internal/variables"
)

var (
	positionsInput  string
	positionsOutput string
)

var positionsFlags = []variableFlag{
	{"mac25-x", variables.WingMAC25X, variables.Meter, "x of the 25% MAC point from the nose"},
	{"mac-length", variables.WingMACLength, variables.Meter, "MAC length"},
	{"mac-le-x-local", variables.WingMACLEXLocal, variables.Meter, "MAC leading edge x from the root leading edge"},
	{"kink-le-x-local", variables.WingKinkLEXLocal, variables.Meter, "Kink leading edge x from the root leading edge"},
	{"tip-le-x-local", variables.WingTipLEXLocal, variables.Meter, "Tip leading edge x from the root leading edge"},
}

var wingPositionsCmd = &cobra.Command{
	Use:   "positions",
	Short: "Place wing chords with respect to the aircraft nose",
	Long: `Convert local leading edge positions of the wing chords to x
positions from the aircraft nose, given the position of the 25% MAC point.

The output file of 'wing planform' holds all local positions.

Examples:
  gocs25 wing positions --mac25-x 16.457 --mac-length 4.457 --mac-le-x-local 2.361 \
    --kink-le-x-local 2.275 --tip-le-x-local 7.8

  gocs25 wing positions -i data/positions.yaml
  gocs25 wing positions -i wing_out.yaml --mac25-x 16.457`,
	RunE: runWingPositions,
}

func init() {
	wingCmd.AddCommand(wingPositionsCmd)

	wingPositionsCmd.Flags().StringVarP(&positionsInput, "input", "i", "", "Input variable file (yaml, json, toml)")
	wingPositionsCmd.Flags().StringVarP(&positionsOutput, "output", "o", "", "Write inputs and outputs to a variable file")
	addVariableFlags(wingPositionsCmd.Flags(), positionsFlags)
}

func runWingPositions(cmd *cobra.Command, args []string) error {
	set, err := loadInputs(cmd.Flags(), positionsInput, positionsFlags)
	if err != nil {
		return fmt.Errorf("loading inputs: %w", err)
	}

	in, err := position.NewWingInput(set)
	if err != nil {
		return err
	}
	p := position.Wing(in)

	printTitle("WING CHORD POSITIONS")

	w := newSection("MAC")
	fmt.Fprintf(w, "  25%% MAC x:\t%.3f m\n", in.MAC25X)
	fmt.Fprintf(w, "  MAC length:\t%.3f m\n", in.MACLength)
	fmt.Fprintf(w, "  MAC LE x local:\t%.3f m\n", in.MACLEXLocal)
	endSection(w)

	w = newSection("LEADING EDGE POSITIONS")
	fmt.Fprintf(w, "  Chord\tx local (m)\tx from nose (m)\n")
	fmt.Fprintf(w, "  ─────\t───────────\t───────────────\n")
	fmt.Fprintf(w, "  Root\t%.3f\t%.3f\n", 0.0, p.RootLEX)
	fmt.Fprintf(w, "  Kink\t%.3f\t%.3f\n", in.KinkLEXLocal, p.KinkLEX)
	fmt.Fprintf(w, "  Tip\t%.3f\t%.3f\n", in.TipLEXLocal, p.TipLEX)
	fmt.Fprintf(w, "  MAC\t%.3f\t%.3f\n", in.MACLEXLocal, p.MACLEX)
	endSection(w)

	if positionsOutput != "" {
		return writeOutputs(positionsOutput, set, p.Variables())
	}
	return nil
}
