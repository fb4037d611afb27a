package cmd

import (
	"github.com/spf13/cobra"
)

var wingCmd = &cobra.Command{
	Use:   "wing",
	Short: "Wing planform geometry and positions",
	Long: `Compute the planform of a kinked transport aircraft wing and
place its chords with respect to the aircraft nose.

Subcommands:
  planform   - Chords, sweeps, MAC, thickness ratios and lift slope
  positions  - Leading edge x positions from the MAC position

The wing has a root chord at the fuselage side, a kink chord where the
trailing edge breaks and a tip chord. The area includes the part inside
the fuselage, with the root chord.`,
}

func init() {
	rootCmd.AddCommand(wingCmd)
}
