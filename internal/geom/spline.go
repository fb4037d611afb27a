package geom

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/mat"
)

const splineDegree = 2

// quadraticSpline is an interpolating B-spline of degree 2.
//
// Knots are clamped at both ends. Interior knots sit at the midpoints
// between consecutive abscissae, the first and last midpoints being
// omitted so that there are as many coefficients as data points.
type quadraticSpline struct {
	knots  []float64
	coeffs []float64
}

// fitQuadraticSpline builds the spline through (xs, ys).
// xs must be strictly increasing.
func fitQuadraticSpline(xs, ys []float64) (*quadraticSpline, error) {
	n := len(xs)
	if len(ys) != n {
		return nil, &ValidationError{msg: fmt.Sprintf("got %d abscissae for %d ordinates", n, len(ys))}
	}
	if n < splineDegree+1 {
		return nil, &ValidationError{msg: fmt.Sprintf("quadratic interpolation needs at least %d points, got %d", splineDegree+1, n)}
	}
	for i := 1; i < n; i++ {
		if !(xs[i] > xs[i-1]) {
			return nil, &ValidationError{msg: fmt.Sprintf("abscissae must be strictly increasing (index %d)", i)}
		}
	}

	knots := make([]float64, 0, n+splineDegree+1)
	for i := 0; i <= splineDegree; i++ {
		knots = append(knots, xs[0])
	}
	for i := 1; i <= n-3; i++ {
		knots = append(knots, (xs[i]+xs[i+1])/2)
	}
	for i := 0; i <= splineDegree; i++ {
		knots = append(knots, xs[n-1])
	}

	s := &quadraticSpline{knots: knots}

	// Collocation matrix
	a := mat.NewDense(n, n, nil)
	for i, x := range xs {
		span := s.span(x)
		basis := s.basis(span, x)
		for r, v := range basis {
			a.Set(i, span-splineDegree+r, v)
		}
	}

	b := mat.NewVecDense(n, append([]float64(nil), ys...))
	var c mat.VecDense
	if err := c.SolveVec(a, b); err != nil {
		return nil, fmt.Errorf("quadratic interpolation: %w", err)
	}
	s.coeffs = make([]float64, n)
	for i := range s.coeffs {
		s.coeffs[i] = c.AtVec(i)
	}
	return s, nil
}

// At evaluates the spline. Abscissae outside the knot range are evaluated
// on the end polynomial pieces.
func (s *quadraticSpline) At(x float64) float64 {
	span := s.span(x)
	var z float64
	for r, v := range s.basis(span, x) {
		z += s.coeffs[span-splineDegree+r] * v
	}
	return z
}

// span returns l such that knots[l] <= x < knots[l+1], limited to the
// intervals that carry a polynomial piece.
func (s *quadraticSpline) span(x float64) int {
	n := len(s.knots) - splineDegree - 1
	l := sort.Search(len(s.knots), func(i int) bool { return s.knots[i] > x }) - 1
	if l < splineDegree {
		l = splineDegree
	}
	if l > n-1 {
		l = n - 1
	}
	return l
}

// basis returns the degree+1 non-zero basis functions at x (Cox-de Boor).
func (s *quadraticSpline) basis(span int, x float64) []float64 {
	t := s.knots
	values := make([]float64, splineDegree+1)
	left := make([]float64, splineDegree+1)
	right := make([]float64, splineDegree+1)

	values[0] = 1
	for j := 1; j <= splineDegree; j++ {
		left[j] = x - t[span+1-j]
		right[j] = t[span+j] - x
		saved := 0.0
		for r := 0; r < j; r++ {
			tmp := values[r] / (right[r+1] + left[j-r])
			values[r] = saved + right[r+1]*tmp
			saved = left[j-r] * tmp
		}
		values[j] = saved
	}
	return values
}
