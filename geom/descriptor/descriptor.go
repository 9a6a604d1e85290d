package descriptor

import (
	"errors"
	"fmt"
	"math"
	"math/cmplx"

	algofft "github.com/MeKo-Christian/algo-fft"

	"github.com/cwbudde/algo-figures/geom"
	"github.com/cwbudde/algo-figures/geom/shape"
)

var (
	// ErrTooFewVertices is returned for outlines with fewer than three
	// vertices.
	ErrTooFewVertices = errors.New("descriptor: outline needs at least 3 vertices")

	// ErrDegenerate is returned when the outline has no extent.
	ErrDegenerate = errors.New("descriptor: degenerate outline")

	// ErrLengthMismatch is returned by Distance for descriptors of
	// different length.
	ErrLengthMismatch = errors.New("descriptor: length mismatch")
)

// Compute returns the descriptor of the closed outline through verts. The
// result holds 2*Harmonics values ordered |F1|, |F-1|, |F2|, |F-2|, ...
// divided by the larger of |F1| and |F-1|.
func Compute[S geom.Scalar](verts []geom.Point[S], opts ...Option) ([]float64, error) {
	cfg := ApplyOptions(opts...)
	if 2*cfg.Harmonics >= cfg.Samples {
		return nil, fmt.Errorf("descriptor: %d harmonics need more than %d samples", cfg.Harmonics, cfg.Samples)
	}
	if len(verts) < 3 {
		return nil, fmt.Errorf("%w: got %d", ErrTooFewVertices, len(verts))
	}

	z, total := resample(verts, cfg.Samples)
	if !(total > 0) || math.IsInf(total, 0) {
		return nil, ErrDegenerate
	}

	plan, err := algofft.NewPlan64(cfg.Samples)
	if err != nil {
		return nil, fmt.Errorf("descriptor: failed to create FFT plan: %w", err)
	}
	coeffs := make([]complex128, cfg.Samples)
	if err := plan.Forward(coeffs, z); err != nil {
		return nil, fmt.Errorf("descriptor: forward FFT failed: %w", err)
	}

	n := cfg.Samples
	pos, neg := cmplx.Abs(coeffs[1]), cmplx.Abs(coeffs[n-1])
	// A reversed outline swaps positive and negative harmonics.
	flip := neg > pos
	norm := math.Max(pos, neg)
	if norm <= 1e-12*total {
		return nil, ErrDegenerate
	}

	out := make([]float64, 0, 2*cfg.Harmonics)
	for k := 1; k <= cfg.Harmonics; k++ {
		a, b := cmplx.Abs(coeffs[k]), cmplx.Abs(coeffs[n-k])
		if flip {
			a, b = b, a
		}
		out = append(out, a/norm, b/norm)
	}
	return out, nil
}

// Of returns the descriptor of f's outline.
func Of[S geom.Scalar](f shape.Figure[S], opts ...Option) ([]float64, error) {
	return Compute(f.Vertices(), opts...)
}

// Distance returns the Euclidean distance between two descriptors.
func Distance(a, b []float64) (float64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("%w: %d vs %d", ErrLengthMismatch, len(a), len(b))
	}
	var sum float64
	for i := range a {
		d := a[i] - b[i]
		sum += d * d
	}
	return math.Sqrt(sum), nil
}

// Similar reports whether a and b have descriptors within tol of each
// other.
func Similar[S geom.Scalar](a, b shape.Figure[S], tol float64, opts ...Option) (bool, error) {
	da, err := Of(a, opts...)
	if err != nil {
		return false, err
	}
	db, err := Of(b, opts...)
	if err != nil {
		return false, err
	}
	d, err := Distance(da, db)
	if err != nil {
		return false, err
	}
	return d <= tol, nil
}

// resample walks the closed outline and returns n points at equally
// spaced arc lengths, starting at the first vertex, together with the
// outline length.
func resample[S geom.Scalar](verts []geom.Point[S], n int) ([]complex128, float64) {
	m := len(verts)
	xs := make([]float64, m)
	ys := make([]float64, m)
	for i, v := range verts {
		xs[i], ys[i] = v.Float()
	}

	cum := make([]float64, m+1)
	for i := 0; i < m; i++ {
		j := (i + 1) % m
		cum[i+1] = cum[i] + math.Hypot(xs[j]-xs[i], ys[j]-ys[i])
	}
	total := cum[m]

	out := make([]complex128, n)
	seg := 0
	for k := range out {
		s := total * float64(k) / float64(n)
		for seg < m-1 && cum[seg+1] <= s {
			seg++
		}
		j := (seg + 1) % m
		t := 0.0
		if l := cum[seg+1] - cum[seg]; l > 0 {
			t = (s - cum[seg]) / l
		}
		out[k] = complex(xs[seg]+t*(xs[j]-xs[seg]), ys[seg]+t*(ys[j]-ys[seg]))
	}
	return out, total
}
