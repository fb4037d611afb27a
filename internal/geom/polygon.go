package geom

import "math"

// polygonAreaAndCentroid uses the shoelace formula.
// Vertices may be given in either direction; the area is always positive.
func polygonAreaAndCentroid(vertices []Point) (area float64, centroid Point) {
	n := len(vertices)
	if n < 3 {
		return 0, Point{}
	}

	var signedArea float64
	var sumX, sumZ float64

	for i := 0; i < n; i++ {
		j := (i + 1) % n
		cross := vertices[i].X*vertices[j].Z - vertices[j].X*vertices[i].Z
		signedArea += cross
		sumX += (vertices[i].X + vertices[j].X) * cross
		sumZ += (vertices[i].Z + vertices[j].Z) * cross
	}

	signedArea /= 2
	area = math.Abs(signedArea)

	if area > 0 {
		centroid.X = sumX / (6 * signedArea)
		centroid.Z = sumZ / (6 * signedArea)
	}

	return area, centroid
}

// bounds returns the bounding box of a point set
func bounds(pts []Point) (minPt, maxPt Point) {
	if len(pts) == 0 {
		return Point{}, Point{}
	}
	minPt, maxPt = pts[0], pts[0]
	for _, pt := range pts {
		minPt.X = math.Min(minPt.X, pt.X)
		minPt.Z = math.Min(minPt.Z, pt.Z)
		maxPt.X = math.Max(maxPt.X, pt.X)
		maxPt.Z = math.Max(maxPt.Z, pt.Z)
	}
	return minPt, maxPt
}
