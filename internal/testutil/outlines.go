package testutil

import (
	"math"
	"math/rand"

	"github.com/cwbudde/algo-figures/geom"
)

// DeterministicOutline generates a star-shaped polygon with n vertices at
// evenly spaced angles and radii in [radius/2, radius], seeded for
// reproducibility.
func DeterministicOutline(seed int64, n int, radius float64) []geom.Point[float64] {
	rng := rand.New(rand.NewSource(seed))
	out := make([]geom.Point[float64], n)
	step := 2 * math.Pi / float64(n)
	for i := range out {
		r := radius * (0.5 + 0.5*rng.Float64())
		a := step * float64(i)
		out[i] = geom.Pt(r*math.Cos(a), r*math.Sin(a))
	}
	return out
}

// Transform rotates pts by angle around the origin, scales them and then
// translates them by (dx, dy).
func Transform(pts []geom.Point[float64], angle, scale, dx, dy float64) []geom.Point[float64] {
	sin, cos := math.Sincos(angle)
	out := make([]geom.Point[float64], len(pts))
	for i, p := range pts {
		x := (p.X*cos - p.Y*sin) * scale
		y := (p.X*sin + p.Y*cos) * scale
		out[i] = geom.Pt(x+dx, y+dy)
	}
	return out
}

// Shift returns pts cyclically rotated so that pts[k] comes first.
func Shift[T any](pts []T, k int) []T {
	n := len(pts)
	out := make([]T, n)
	for i := range out {
		out[i] = pts[(i+k)%n]
	}
	return out
}

// Sequence returns 0, 1, ..., n-1.
func Sequence(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}
