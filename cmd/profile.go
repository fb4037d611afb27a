package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/gocs25/internal/diagram"
	"github.com/alexiusacademia/gocs25/internal/geom"
)

var (
	profileFile      string
	profileChord     float64
	profileThickness float64
	profileTwist     float64
	profilePlot      string
	profileGraph     bool
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Section profile analysis",
}

var profileAnalyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Compute chord, thickness and mean line of a section profile",
	Long: `Read profile points from a Selig format file (optional name line, then
one "x z" pair per line around the perimeter) and compute its chord length,
maximum relative thickness, mean line and cross-section area.

The chord and the maximum relative thickness can be imposed: the shape is
then scaled to match.

Examples:
  gocs25 profile analyze -f data/naca2412.dat --graph
  gocs25 profile analyze -f data/naca2412.dat --chord 4.182 --thickness 0.128 --plot profile.png`,
	RunE: runProfileAnalyze,
}

func init() {
	rootCmd.AddCommand(profileCmd)
	profileCmd.AddCommand(profileAnalyzeCmd)

	profileAnalyzeCmd.Flags().StringVarP(&profileFile, "file", "f", "", "Path to profile point file [required]")
	profileAnalyzeCmd.MarkFlagRequired("file")

	profileAnalyzeCmd.Flags().Float64Var(&profileChord, "chord", 0, "Impose chord length (m)")
	profileAnalyzeCmd.Flags().Float64Var(&profileThickness, "thickness", 0, "Impose maximum relative thickness")
	profileAnalyzeCmd.Flags().Float64Var(&profileTwist, "twist", 0, "Twist angle about 25% chord (deg)")
	profileAnalyzeCmd.Flags().StringVar(&profilePlot, "plot", "", "Export profile diagram to file (png, svg, pdf)")
	profileAnalyzeCmd.Flags().BoolVar(&profileGraph, "graph", false, "Show the thickness distribution graph")
}

func runProfileAnalyze(cmd *cobra.Command, args []string) error {
	name, x, z, err := geom.LoadPoints(profileFile)
	if err != nil {
		return fmt.Errorf("loading profile: %w", err)
	}

	p := geom.NewProfile(profileChord, 0, 0)
	p.MaxRelativeThickness = profileThickness
	p.TwistAngle = profileTwist
	if err := p.SetPoints(x, z, profileChord > 0, profileThickness > 0); err != nil {
		return fmt.Errorf("computing profile: %w", err)
	}

	area, centroid := p.CrossSection()
	minPt, maxPt := p.Extent()

	printTitle("SECTION PROFILE ANALYSIS")
	if name != "" {
		fmt.Printf("  Profile: %s\n", name)
	}
	fmt.Printf("  Points: %d\n\n", len(x))

	w := newSection("GEOMETRY")
	fmt.Fprintf(w, "  Chord length:\t%.4f m\n", p.ChordLength)
	fmt.Fprintf(w, "  Max relative thickness:\t%.4f\n", p.MaxRelativeThickness)
	fmt.Fprintf(w, "  Max thickness:\t%.4f m\n", p.MaxRelativeThickness*p.ChordLength)
	fmt.Fprintf(w, "  Twist angle:\t%.2f°\n", p.TwistAngle)
	fmt.Fprintf(w, "  Extent x:\t%.4f to %.4f m\n", minPt.X, maxPt.X)
	fmt.Fprintf(w, "  Extent z:\t%.4f to %.4f m\n", minPt.Z, maxPt.Z)
	endSection(w)

	w = newSection("CROSS SECTION")
	fmt.Fprintf(w, "  Area:\t%.6f m²\n", area)
	fmt.Fprintf(w, "  Centroid x (from 25%% chord):\t%.4f m\n", centroid.X)
	fmt.Fprintf(w, "  Centroid z:\t%.4f m\n", centroid.Z)
	endSection(w)

	// Mean line and thickness, about ten stations
	mean := p.MeanLine()
	thickness := p.RelativeThickness()
	step := max(1, len(mean)/10)
	w = newSection("MEAN LINE")
	fmt.Fprintf(w, "  x/c\tx (m)\tz (m)\tt/c\n")
	fmt.Fprintf(w, "  ───\t─────\t─────\t───\n")
	for i := 0; i < len(mean); i += step {
		fmt.Fprintf(w, "  %.3f\t%.4f\t%.4f\t%.4f\n", thickness[i].X, mean[i].X, mean[i].Z, thickness[i].Z)
	}
	if last := len(mean) - 1; last%step != 0 {
		fmt.Fprintf(w, "  %.3f\t%.4f\t%.4f\t%.4f\n", thickness[last].X, mean[last].X, mean[last].Z, thickness[last].Z)
	}
	endSection(w)

	if profileGraph {
		graph, err := diagram.DrawASCIIThickness(p)
		if err != nil {
			return fmt.Errorf("drawing thickness graph: %w", err)
		}
		fmt.Println(graph)
		fmt.Println()
	}

	if profilePlot != "" {
		if err := diagram.ExportProfile(p, profilePlot); err != nil {
			return fmt.Errorf("exporting diagram: %w", err)
		}
		fmt.Printf("  Diagram exported to: %s\n\n", profilePlot)
	}
	return nil
}
