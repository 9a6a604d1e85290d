package shape

import (
	"fmt"
	"math"
	"strings"

	"github.com/cwbudde/algo-figures/geom"
)

// regular is a regular n-gon centred at the origin.
type regular[S geom.Scalar] struct {
	outline[S]
	side S
}

// newRegular places n vertices on the circumcircle of an n-gon with the
// given side, starting at angle rotation and turning counter-clockwise.
func newRegular[S geom.Scalar](n int, side S, rotation float64) (regular[S], error) {
	s := float64(side)
	if !(s > 0) || math.IsInf(s, 1) {
		return regular[S]{}, fmt.Errorf("%w: %v", ErrInvalidSide, side)
	}
	r := s / (2 * math.Sin(math.Pi/float64(n)))
	step := 2 * math.Pi / float64(n)
	verts := make([]geom.Point[S], n)
	for i := range verts {
		a := rotation + step*float64(i)
		verts[i] = geom.FromFloat[S](snap(r*math.Cos(a)), snap(r*math.Sin(a)))
	}
	return regular[S]{outline: outline[S]{verts: verts}, side: side}, nil
}

// Side returns the side length the figure was built with.
func (r regular[S]) Side() S {
	return r.side
}

func (r regular[S]) clone() regular[S] {
	return regular[S]{outline: r.outline.clone(), side: r.side}
}

// snap removes floating point noise so that integer scalars do not
// truncate 1.9999999999 to 1.
func snap(v float64) float64 {
	return math.Round(v*1e9) / 1e9
}

// Triangle is an equilateral triangle centred at the origin with its apex
// on the positive y axis.
type Triangle[S geom.Scalar] struct {
	regular[S]
}

// NewTriangle returns an equilateral triangle with the given side.
func NewTriangle[S geom.Scalar](side S) (*Triangle[S], error) {
	r, err := newRegular(3, side, math.Pi/2)
	if err != nil {
		return nil, err
	}
	return &Triangle[S]{r}, nil
}

func (t *Triangle[S]) Kind() string { return "triangle" }

// Area returns √3·a²/4.
func (t *Triangle[S]) Area() float64 {
	a := float64(t.side)
	return math.Sqrt(3) * a * a / 4
}

func (t *Triangle[S]) Equal(other Figure[S]) bool { return t.equal(other) }
func (t *Triangle[S]) Clone() Figure[S]           { return &Triangle[S]{t.regular.clone()} }
func (t *Triangle[S]) String() string             { return t.format(t.Kind()) }

// Square is an axis-aligned square centred at the origin.
type Square[S geom.Scalar] struct {
	regular[S]
}

// NewSquare returns a square with the given side.
func NewSquare[S geom.Scalar](side S) (*Square[S], error) {
	r, err := newRegular(4, side, math.Pi/4)
	if err != nil {
		return nil, err
	}
	return &Square[S]{r}, nil
}

func (s *Square[S]) Kind() string { return "square" }

// Area returns a².
func (s *Square[S]) Area() float64 {
	a := float64(s.side)
	return a * a
}

func (s *Square[S]) Equal(other Figure[S]) bool { return s.equal(other) }
func (s *Square[S]) Clone() Figure[S]           { return &Square[S]{s.regular.clone()} }
func (s *Square[S]) String() string             { return s.format(s.Kind()) }

// Octagon is a regular octagon centred at the origin with two horizontal
// edges.
type Octagon[S geom.Scalar] struct {
	regular[S]
}

// NewOctagon returns a regular octagon with the given side.
func NewOctagon[S geom.Scalar](side S) (*Octagon[S], error) {
	r, err := newRegular(8, side, math.Pi/8)
	if err != nil {
		return nil, err
	}
	return &Octagon[S]{r}, nil
}

func (o *Octagon[S]) Kind() string { return "octagon" }

// Area returns 2(1+√2)·a².
func (o *Octagon[S]) Area() float64 {
	a := float64(o.side)
	return 2 * (1 + math.Sqrt2) * a * a
}

func (o *Octagon[S]) Equal(other Figure[S]) bool { return o.equal(other) }
func (o *Octagon[S]) Clone() Figure[S]           { return &Octagon[S]{o.regular.clone()} }
func (o *Octagon[S]) String() string             { return o.format(o.Kind()) }

// Kinds lists the names accepted by New.
func Kinds() []string {
	return []string{"triangle", "square", "octagon"}
}

// New builds the regular figure named kind with the given side.
func New[S geom.Scalar](kind string, side S) (Figure[S], error) {
	var (
		f   Figure[S]
		err error
	)
	switch strings.ToLower(kind) {
	case "triangle":
		var t *Triangle[S]
		t, err = NewTriangle(side)
		f = t
	case "square":
		var s *Square[S]
		s, err = NewSquare(side)
		f = s
	case "octagon":
		var o *Octagon[S]
		o, err = NewOctagon(side)
		f = o
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
	if err != nil {
		return nil, err
	}
	return f, nil
}
