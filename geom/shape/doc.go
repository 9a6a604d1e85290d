// Package shape provides the Figure interface and the figures built on it:
// regular triangles, squares and octagons centred at the origin, and
// arbitrary polygons.
//
// Figures are the element family stored in a container/array Array. Every
// Figure implements Clone, so an Array[Figure[S]] deep-copies its figures
// when it is cloned.
package shape
