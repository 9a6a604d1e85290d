package shape

import "errors"

var (
	// ErrInvalidSide is returned for a side length that is not a positive
	// finite number.
	ErrInvalidSide = errors.New("shape: side must be positive and finite")

	// ErrTooFewVertices is returned when a polygon has fewer than three
	// vertices.
	ErrTooFewVertices = errors.New("shape: polygon needs at least 3 vertices")

	// ErrUnknownKind is returned by New for an unregistered figure name.
	ErrUnknownKind = errors.New("shape: unknown figure kind")

	// ErrSyntax is returned by Parse for malformed vertex lists.
	ErrSyntax = errors.New("shape: invalid vertex list")
)
