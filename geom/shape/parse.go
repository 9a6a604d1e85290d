package shape

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/cwbudde/algo-figures/geom"
)

// Parse reads a polygon from its String form: an optional kind word
// followed by vertices written as (x, y).
func Parse[S geom.Scalar](s string) (*Polygon[S], error) {
	var verts []geom.Point[S]
	rest := strings.TrimSpace(s)
	if i := strings.IndexByte(rest, '('); i > 0 {
		rest = rest[i:]
	}
	for rest != "" {
		if rest[0] != '(' {
			return nil, fmt.Errorf("%w: expected '(' at %q", ErrSyntax, rest)
		}
		end := strings.IndexByte(rest, ')')
		if end < 0 {
			return nil, fmt.Errorf("%w: unterminated vertex %q", ErrSyntax, rest)
		}
		p, err := parsePoint[S](rest[1:end])
		if err != nil {
			return nil, err
		}
		verts = append(verts, p)
		rest = strings.TrimSpace(rest[end+1:])
	}
	return NewPolygon(verts)
}

// ReadPolygon reads all of r and parses it with Parse.
func ReadPolygon[S geom.Scalar](r io.Reader) (*Polygon[S], error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("shape: read polygon: %w", err)
	}
	return Parse[S](string(data))
}

func parsePoint[S geom.Scalar](s string) (geom.Point[S], error) {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return geom.Point[S]{}, fmt.Errorf("%w: vertex %q needs two coordinates", ErrSyntax, s)
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(xs), 64)
	if err != nil {
		return geom.Point[S]{}, fmt.Errorf("%w: %w", ErrSyntax, err)
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(ys), 64)
	if err != nil {
		return geom.Point[S]{}, fmt.Errorf("%w: %w", ErrSyntax, err)
	}
	return geom.FromFloat[S](x, y), nil
}
