package shape

import (
	"strings"

	"github.com/cwbudde/algo-figures/geom"
)

// Figure is a closed planar shape with vertices of scalar type S.
type Figure[S geom.Scalar] interface {
	// Kind returns the figure's name, e.g. "square".
	Kind() string
	// Center returns the mean of the vertices.
	Center() geom.Point[S]
	// Area returns the enclosed area.
	Area() float64
	// Vertices returns a copy of the vertex list in drawing order.
	Vertices() []geom.Point[S]
	// Equal reports whether other has the same vertices in the same order.
	Equal(other Figure[S]) bool
	// Clone returns a deep copy.
	Clone() Figure[S]
	String() string
}

// outline is the vertex storage shared by all figures.
type outline[S geom.Scalar] struct {
	verts []geom.Point[S]
}

func (o outline[S]) Vertices() []geom.Point[S] {
	out := make([]geom.Point[S], len(o.verts))
	copy(out, o.verts)
	return out
}

func (o outline[S]) Center() geom.Point[S] {
	if len(o.verts) == 0 {
		return geom.Point[S]{}
	}
	var sx, sy float64
	for _, v := range o.verts {
		x, y := v.Float()
		sx += x
		sy += y
	}
	n := float64(len(o.verts))
	return geom.FromFloat[S](sx/n, sy/n)
}

func (o outline[S]) equal(other Figure[S]) bool {
	if other == nil {
		return false
	}
	theirs := other.Vertices()
	if len(theirs) != len(o.verts) {
		return false
	}
	for i, v := range o.verts {
		if !v.Equal(theirs[i]) {
			return false
		}
	}
	return true
}

func (o outline[S]) clone() outline[S] {
	return outline[S]{verts: o.Vertices()}
}

func (o outline[S]) format(kind string) string {
	var sb strings.Builder
	sb.WriteString(kind)
	for _, v := range o.verts {
		sb.WriteByte(' ')
		sb.WriteString(v.String())
	}
	return sb.String()
}

// Perimeter returns the length of the closed outline of f.
func Perimeter[S geom.Scalar](f Figure[S]) float64 {
	xs, ys := split(f.Vertices())
	return perimeter(xs, ys)
}
