package diagram

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/alexiusacademia/gocs25/internal/geom"
)

// PlanformData holds data for drawing a half planform
type PlanformData struct {
	Surface *geom.LiftingSurface

	// Chord extrapolated to the aircraft centerline, drawn dashed when set
	CenterChord        float64 // m
	CenterLeadingEdgeX float64 // m
}

// ExportPlanform exports a half planform diagram to an image file.
// Span is along the horizontal axis, x is drawn downwards.
func ExportPlanform(data PlanformData, filename string) error {
	s := data.Surface
	if err := s.Validate(); err != nil {
		return err
	}
	if s.ReferenceLength == 0 {
		s.ComputePlanformArea()
		s.ComputeMeanAerodynamicChord()
	}

	p := plot.New()
	p.Title.Text = "Half Planform"
	if s.Name != "" {
		p.Title.Text = fmt.Sprintf("Half Planform: %s", s.Name)
	}
	p.X.Label.Text = "y (m)"
	p.Y.Label.Text = "-x (m)"

	// Outline: leading edge root to tip, trailing edge back
	n := len(s.Sections)
	outline := make(plotter.XYs, 0, 2*n)
	for _, sec := range s.Sections {
		outline = append(outline, plotter.XY{X: sec.PlanformPosition.Y, Y: -sec.PlanformPosition.X})
	}
	for i := n - 1; i >= 0; i-- {
		sec := s.Sections[i]
		outline = append(outline, plotter.XY{X: sec.PlanformPosition.Y, Y: -(sec.PlanformPosition.X + sec.ChordLength)})
	}
	surface, err := plotter.NewPolygon(outline)
	if err != nil {
		return err
	}
	surface.Color = color.RGBA{R: 100, G: 149, B: 237, A: 150}
	surface.LineStyle.Color = color.RGBA{R: 0, G: 0, B: 139, A: 255}
	surface.LineStyle.Width = vg.Points(2)
	p.Add(surface)

	// Section chords
	for i, sec := range s.Sections {
		chord, err := chordLine(sec.PlanformPosition.Y, sec.PlanformPosition.X, sec.ChordLength)
		if err != nil {
			return err
		}
		chord.LineStyle.Color = plotutil.Color(i)
		chord.LineStyle.Width = vg.Points(1)
		p.Add(chord)
	}

	// MAC
	mac, err := chordLine(s.MACPosition.Y, s.MACPosition.X, s.ReferenceLength)
	if err != nil {
		return err
	}
	mac.LineStyle.Color = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	mac.LineStyle.Width = vg.Points(2.5)
	p.Add(mac)
	p.Legend.Add(fmt.Sprintf("MAC = %.3f m", s.ReferenceLength), mac)

	quarter, err := plotter.NewScatter(plotter.XYs{
		{X: s.MACPosition.Y, Y: -(s.MACPosition.X + 0.25*s.ReferenceLength)},
	})
	if err != nil {
		return err
	}
	quarter.GlyphStyle.Color = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	quarter.GlyphStyle.Radius = vg.Points(4)
	quarter.GlyphStyle.Shape = draw.CircleGlyph{}
	p.Add(quarter)

	// Centerline extrapolation
	if data.CenterChord != 0 {
		root := s.Sections[0]
		for _, pts := range []plotter.XYs{
			{{X: 0, Y: -data.CenterLeadingEdgeX}, {X: root.PlanformPosition.Y, Y: -root.PlanformPosition.X}},
			{
				{X: 0, Y: -(data.CenterLeadingEdgeX + data.CenterChord)},
				{X: root.PlanformPosition.Y, Y: -(root.PlanformPosition.X + root.ChordLength)},
			},
		} {
			ext, err := plotter.NewLine(pts)
			if err != nil {
				return err
			}
			ext.LineStyle.Color = color.Gray{Y: 128}
			ext.LineStyle.Dashes = plotutil.Dashes(2)
			p.Add(ext)
		}
		p.Legend.Add(fmt.Sprintf("center chord = %.3f m", data.CenterChord))
	}

	labels, err := plotter.NewLabels(plotter.XYLabels{
		XYs:    []plotter.XY{{X: s.MACPosition.Y, Y: -s.MACPosition.X}},
		Labels: []string{"MAC"},
	})
	if err != nil {
		return err
	}
	p.Add(labels)

	p.Legend.Top = true
	return save(p, 8*vg.Inch, 6*vg.Inch, filename)
}

// ExportProfile exports a profile diagram (upper side, lower side and mean
// line) to an image file.
func ExportProfile(pr *geom.Profile, filename string) error {
	if !pr.HasShape() {
		return fmt.Errorf("profile has no points")
	}

	p := plot.New()
	p.Title.Text = fmt.Sprintf("Profile: chord %.3f m, t/c %.3f", pr.ChordLength, pr.MaxRelativeThickness)
	p.X.Label.Text = "x (m)"
	p.Y.Label.Text = "z (m)"

	err := plotutil.AddLines(p,
		"upper side", pointsXY(pr.UpperSide()),
		"lower side", pointsXY(pr.LowerSide()),
		"mean line", pointsXY(pr.MeanLine()),
	)
	if err != nil {
		return err
	}

	// Roughly the same scale on both axes
	minPt, maxPt := pr.Extent()
	p.X.Min, p.X.Max = minPt.X, maxPt.X
	half := (maxPt.X - minPt.X) * 3 / 8 / 2
	mid := (minPt.Z + maxPt.Z) / 2
	p.Y.Min, p.Y.Max = mid-half, mid+half

	return save(p, 8*vg.Inch, 3*vg.Inch, filename)
}

func chordLine(y, x, chord float64) (*plotter.Line, error) {
	return plotter.NewLine(plotter.XYs{{X: y, Y: -x}, {X: y, Y: -(x + chord)}})
}

func pointsXY(pts []geom.Point) plotter.XYs {
	xys := make(plotter.XYs, len(pts))
	for i, pt := range pts {
		xys[i] = plotter.XY{X: pt.X, Y: pt.Z}
	}
	return xys
}

// save writes the plot, format from the file extension (png if none)
func save(p *plot.Plot, width, height vg.Length, filename string) error {
	dir := filepath.Dir(filename)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}

	switch filepath.Ext(filename) {
	case ".png", ".svg", ".pdf":
		return p.Save(width, height, filename)
	default:
		return p.Save(width, height, filename+".png")
	}
}
