package shape

import (
	"math"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-figures/geom"
)

// split returns the vertex coordinates as parallel float64 slices.
func split[S geom.Scalar](verts []geom.Point[S]) (xs, ys []float64) {
	xs = make([]float64, len(verts))
	ys = make([]float64, len(verts))
	for i, v := range verts {
		xs[i], ys[i] = v.Float()
	}
	return xs, ys
}

// rotate returns s shifted left by one, so rotate(s)[i] == s[(i+1)%n].
func rotate(s []float64) []float64 {
	out := make([]float64, len(s))
	if len(s) == 0 {
		return out
	}
	copy(out, s[1:])
	out[len(s)-1] = s[0]
	return out
}

// shoelace returns the unsigned area of the closed polygon xs, ys.
func shoelace(xs, ys []float64) float64 {
	if len(xs) < 3 {
		return 0
	}
	xn, yn := rotate(xs), rotate(ys)
	cross := make([]float64, len(xs))
	tmp := make([]float64, len(xs))

	// cross[i] = x[i]*y[i+1] - x[i+1]*y[i]
	vecmath.MulBlock(cross, xs, yn)
	vecmath.MulBlock(tmp, xn, ys)
	vecmath.ScaleBlock(tmp, tmp, -1)
	vecmath.AddBlockInPlace(cross, tmp)

	var sum float64
	for _, c := range cross {
		sum += c
	}
	return math.Abs(sum) / 2
}

// perimeter returns the length of the closed outline xs, ys.
func perimeter(xs, ys []float64) float64 {
	if len(xs) < 2 {
		return 0
	}
	dx := make([]float64, len(xs))
	dy := make([]float64, len(ys))
	vecmath.ScaleBlock(dx, xs, -1)
	vecmath.AddBlockInPlace(dx, rotate(xs))
	vecmath.ScaleBlock(dy, ys, -1)
	vecmath.AddBlockInPlace(dy, rotate(ys))

	edges := make([]float64, len(xs))
	vecmath.Magnitude(edges, dx, dy)

	var sum float64
	for _, e := range edges {
		sum += e
	}
	return sum
}
