package geom

import (
	"fmt"
	"math"
)

// Scalar is the set of coordinate types a Point may use.
type Scalar interface {
	~int | ~int32 | ~int64 | ~float32 | ~float64
}

// Point is a 2D point with coordinates of type S.
type Point[S Scalar] struct {
	X, Y S
}

// Pt is a convenience function to create a Point.
func Pt[S Scalar](x, y S) Point[S] {
	return Point[S]{X: x, Y: y}
}

// FromFloat converts float64 coordinates to S. Integer scalars truncate
// toward zero.
func FromFloat[S Scalar](x, y float64) Point[S] {
	return Point[S]{X: S(x), Y: S(y)}
}

// Float returns the coordinates as float64.
func (p Point[S]) Float() (x, y float64) {
	return float64(p.X), float64(p.Y)
}

// Equal reports whether p and q have identical coordinates.
func (p Point[S]) Equal(q Point[S]) bool {
	return p.X == q.X && p.Y == q.Y
}

// Distance returns the Euclidean distance between p and q.
func (p Point[S]) Distance(q Point[S]) float64 {
	px, py := p.Float()
	qx, qy := q.Float()
	return math.Hypot(qx-px, qy-py)
}

// String formats the point as (x, y).
func (p Point[S]) String() string {
	return fmt.Sprintf("(%v, %v)", p.X, p.Y)
}
