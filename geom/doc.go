// Package geom provides the scalar constraint and the Point value type
// shared by the figure packages.
package geom
