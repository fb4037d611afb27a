package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/gocs25/internal/diagram"
	"github.com/alexiusacademia/gocs25/internal/geom"
)

var (
	surfaceFile        string
	surfacePlot        string
	surfaceShowDiagram bool
)

var surfaceCmd = &cobra.Command{
	Use:   "surface",
	Short: "Lifting surface analysis",
}

var surfaceAnalyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Compute planform area and MAC of a lifting surface",
	Long: `Compute the planform area and the mean aerodynamic chord of a lifting
surface defined by sections in a JSON file.

Sections are ordered from root to tip; each one has a chord and the
position of its leading edge:

  {
    "name": "wing",
    "sections": [
      {"chord": 6.056, "position": {"x": 0, "y": 0}},
      {"chord": 6.056, "position": {"x": 0, "y": 1.96}},
      {"chord": 3.540, "position": {"x": 2.516, "y": 6.880}},
      {"chord": 1.682, "position": {"x": 7.793, "y": 17.201}}
    ]
  }

Examples:
  gocs25 surface analyze -f data/wing_sections.json --diagram`,
	RunE: runSurfaceAnalyze,
}

func init() {
	rootCmd.AddCommand(surfaceCmd)
	surfaceCmd.AddCommand(surfaceAnalyzeCmd)

	surfaceAnalyzeCmd.Flags().StringVarP(&surfaceFile, "file", "f", "", "Path to lifting surface JSON file [required]")
	surfaceAnalyzeCmd.MarkFlagRequired("file")

	surfaceAnalyzeCmd.Flags().BoolVar(&surfaceShowDiagram, "diagram", false, "Show ASCII planform sketch")
	surfaceAnalyzeCmd.Flags().StringVar(&surfacePlot, "plot", "", "Export planform diagram to file (png, svg, pdf)")
}

func runSurfaceAnalyze(cmd *cobra.Command, args []string) error {
	s, err := geom.LoadFromFile(surfaceFile)
	if err != nil {
		return fmt.Errorf("loading lifting surface: %w", err)
	}

	area := s.ComputePlanformArea()
	mac := s.ComputeMeanAerodynamicChord()

	printTitle("LIFTING SURFACE ANALYSIS")
	if s.Name != "" {
		fmt.Printf("  Surface: %s\n\n", s.Name)
	}

	w := newSection("SECTIONS")
	fmt.Fprintf(w, "  #\ty (m)\tLE x (m)\tChord (m)\n")
	fmt.Fprintf(w, "  ─\t─────\t────────\t─────────\n")
	for i, sec := range s.Sections {
		fmt.Fprintf(w, "  %d\t%.3f\t%.3f\t%.3f\n", i+1, sec.PlanformPosition.Y, sec.PlanformPosition.X, sec.ChordLength)
	}
	endSection(w)

	fmt.Print(diagram.DrawSummaryBox("PLANFORM", []string{
		fmt.Sprintf("Area        = %.3f m²", area),
		fmt.Sprintf("MAC         = %.3f m", mac),
		fmt.Sprintf("MAC LE x    = %.3f m", s.MACPosition.X),
		fmt.Sprintf("MAC y       = %.3f m", s.MACPosition.Y),
	}))
	fmt.Println()

	if surfaceShowDiagram {
		sketch, err := diagram.DrawASCIIPlanform(s)
		if err != nil {
			return err
		}
		fmt.Println(sketch)
	}

	if surfacePlot != "" {
		if err := diagram.ExportPlanform(diagram.PlanformData{Surface: s}, surfacePlot); err != nil {
			return fmt.Errorf("exporting diagram: %w", err)
		}
		fmt.Printf("  Diagram exported to: %s\n\n", surfacePlot)
	}
	return nil
}
