package diagram

import (
	"errors"

	"github.com/guptarohit/asciigraph"
	"gonum.org/v1/gonum/interp"

	"github.com/alexiusacademia/gocs25/internal/geom"
)

const (
	graphColumns = 60
	graphRows    = 8
)

// DrawASCIIThickness graphs the relative thickness of a profile from leading
// edge (left) to trailing edge (right).
func DrawASCIIThickness(pr *geom.Profile) (string, error) {
	if !pr.HasShape() {
		return "", errors.New("profile has no points")
	}

	pts := pr.RelativeThickness()
	xs := make([]float64, len(pts))
	ts := make([]float64, len(pts))
	for i, pt := range pts {
		xs[i], ts[i] = pt.X, pt.Z
	}

	var pl interp.PiecewiseLinear
	if err := pl.Fit(xs, ts); err != nil {
		return "", err
	}

	// Stations evenly spaced on the chord
	data := make([]float64, graphColumns)
	first, last := xs[0], xs[len(xs)-1]
	for i := range data {
		data[i] = pl.Predict(first + (last-first)*float64(i)/float64(graphColumns-1))
	}

	return asciigraph.Plot(data,
		asciigraph.Height(graphRows),
		asciigraph.Precision(3),
		asciigraph.Caption("t/c from leading edge to trailing edge"),
	), nil
}
