package shape

import (
	"fmt"

	"github.com/cwbudde/algo-figures/geom"
)

// Polygon is a simple closed polygon given by its vertex list.
type Polygon[S geom.Scalar] struct {
	outline[S]
}

// NewPolygon returns a polygon over a copy of verts.
func NewPolygon[S geom.Scalar](verts []geom.Point[S]) (*Polygon[S], error) {
	if len(verts) < 3 {
		return nil, fmt.Errorf("%w: got %d", ErrTooFewVertices, len(verts))
	}
	own := make([]geom.Point[S], len(verts))
	copy(own, verts)
	return &Polygon[S]{outline[S]{verts: own}}, nil
}

func (p *Polygon[S]) Kind() string { return "polygon" }

// Area returns the enclosed area by the shoelace formula. The result is
// only meaningful for non-self-intersecting outlines.
func (p *Polygon[S]) Area() float64 {
	return shoelace(split(p.verts))
}

func (p *Polygon[S]) Equal(other Figure[S]) bool { return p.equal(other) }
func (p *Polygon[S]) Clone() Figure[S]           { return &Polygon[S]{p.outline.clone()} }
func (p *Polygon[S]) String() string             { return p.format(p.Kind()) }

// AsPolygon returns a polygon with the vertices of f.
func AsPolygon[S geom.Scalar](f Figure[S]) (*Polygon[S], error) {
	return NewPolygon(f.Vertices())
}
