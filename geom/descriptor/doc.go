// Package descriptor computes Fourier shape descriptors of closed outlines.
//
// The outline is resampled at equally spaced arc-length positions and
// treated as a complex signal x + iy. The magnitudes of its low harmonics,
// normalised by the first harmonic, do not change when the figure is
// translated, rotated, scaled, traced in the opposite direction or started
// from another vertex, so two descriptors can be compared with Distance to
// decide whether two figures have the same shape.
package descriptor
