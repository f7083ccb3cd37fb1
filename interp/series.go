// Copyright 2012 Sonia Keys
// License MIT: http://www.opensource.org/licenses/MIT

// Package interp extends chapter 3 (Len3 fixed-width local interpolation,
// kept in interp.go for reference and for callers that still want the
// three-point table form) with a general-length Series type: strictly
// monotonic axis validation, linear interpolation, and a not-a-knot cubic
// spline, sharing one x-axis across several parallel y-axes the way §4.5
// and §9 ("Ownership of shared axes") require.
package interp

import (
	"github.com/pkg/errors"

	"github.com/loxspace/lox/units"
)

// Errors returned by Axis/Series construction and query.
var (
	ErrNotStrictlyIncreasing = errors.New("interp: x axis must be strictly increasing")
	ErrLengthMismatch        = errors.New("interp: x and y must have the same length")
	ErrTooFewPointsLinear    = errors.New("interp: linear series needs at least 2 points")
	ErrTooFewPointsCubic     = errors.New("interp: cubic series needs at least 4 points")
)

// Axis is an immutable, strictly increasing x-axis shared by reference
// among however many Series are built over it, so that N parallel value
// channels (as in package trajectory) store the x-axis once rather than N
// times.
//
// Axis is always used through a *Axis handle; the handle is the "shared
// reference-counted handle" of §9, relying on Go's garbage collector in
// place of explicit reference counting.
type Axis struct {
	x []float64
}

// NewAxis validates and builds an Axis, copying x so the caller's slice
// may be mutated afterward without affecting the Axis.
func NewAxis(x []float64) (*Axis, error) {
	if !units.StrictlyIncreasing(x) {
		return nil, ErrNotStrictlyIncreasing
	}
	cp := append([]float64(nil), x...)
	return &Axis{x: cp}, nil
}

// Len returns the number of points on the axis.
func (a *Axis) Len() int { return len(a.x) }

// At returns the i'th axis value.
func (a *Axis) At(i int) float64 { return a.x[i] }

// Values returns the axis values. The returned slice must not be modified.
func (a *Axis) Values() []float64 { return a.x }

// Kind identifies the interpolation method a Series uses.
type Kind int

const (
	// Linear interpolates piecewise-linearly between samples.
	Linear Kind = iota
	// Cubic interpolates with a not-a-knot cubic spline.
	Cubic
)

// Series is a single y-axis of values sampled at the x values of a shared
// Axis, interpolated either linearly or with a not-a-knot cubic spline.
type Series struct {
	axis   *Axis
	y      []float64
	kind   Kind
	coeffs []cubicCoeffs // len(axis.x)-1 entries, only populated for Cubic
}

type cubicCoeffs struct {
	c1, c2, c3, c4 float64
}

// NewLinear builds a linearly interpolated Series sharing axis, requiring
// at least 2 points.
func NewLinear(axis *Axis, y []float64) (*Series, error) {
	if axis.Len() != len(y) {
		return nil, ErrLengthMismatch
	}
	if axis.Len() < 2 {
		return nil, ErrTooFewPointsLinear
	}
	return &Series{axis: axis, y: append([]float64(nil), y...), kind: Linear}, nil
}

// NewCubic builds a not-a-knot cubic spline Series sharing axis, requiring
// at least 4 points.
func NewCubic(axis *Axis, y []float64) (*Series, error) {
	if axis.Len() != len(y) {
		return nil, ErrLengthMismatch
	}
	n := axis.Len()
	if n < 4 {
		return nil, ErrTooFewPointsCubic
	}
	yy := append([]float64(nil), y...)
	coeffs := notAKnotCoefficients(axis.x, yy)
	return &Series{axis: axis, y: yy, kind: Cubic, coeffs: coeffs}, nil
}

// Axis returns the series' shared x-axis.
func (s *Series) Axis() *Axis { return s.axis }

// Values returns the series' y values. The returned slice must not be
// modified.
func (s *Series) Values() []float64 { return s.y }

// Interpolate evaluates the series at x. Per §4.5, querying outside
// [x0, xn-1] silently extrapolates using the nearest interval's
// polynomial/segment rather than erroring.
func (s *Series) Interpolate(x float64) float64 {
	n := s.axis.Len()
	ax := s.axis.x
	switch {
	case x <= ax[0]:
		return s.evalInterval(0, x)
	case x >= ax[n-1]:
		return s.evalInterval(n-2, x)
	default:
		i := units.PartitionPoint(n, func(i int) bool { return ax[i] <= x }) - 1
		if i < 0 {
			i = 0
		}
		return s.evalInterval(i, x)
	}
}

func (s *Series) evalInterval(i int, x float64) float64 {
	switch s.kind {
	case Linear:
		x0, x1 := s.axis.x[i], s.axis.x[i+1]
		y0, y1 := s.y[i], s.y[i+1]
		t := (x - x0) / (x1 - x0)
		return y0 + t*(y1-y0)
	default:
		c := s.coeffs[i]
		dx := x - s.axis.x[i]
		return c.c1 + dx*(c.c2+dx*(c.c3+dx*c.c4))
	}
}

// notAKnotCoefficients solves for the per-interval cubic coefficients
// (c1,c2,c3,c4) of a not-a-knot spline through (x,y), following the
// standard tridiagonal formulation for second derivatives with the
// not-a-knot boundary condition (the third derivative is continuous across
// the first and last interior knots) substituted into the end rows.
func notAKnotCoefficients(x, y []float64) []cubicCoeffs {
	n := len(x)
	h := make([]float64, n-1)
	for i := range h {
		h[i] = x[i+1] - x[i]
	}

	// Tridiagonal system for second derivatives m[0..n-1], rows 1..n-2 are
	// the standard natural-spline continuity equations; rows 0 and n-1 are
	// replaced with the not-a-knot condition.
	a := make([]float64, n) // sub-diagonal
	b := make([]float64, n) // diagonal
	c := make([]float64, n) // super-diagonal
	d := make([]float64, n) // rhs

	for i := 1; i < n-1; i++ {
		a[i] = h[i-1]
		b[i] = 2 * (h[i-1] + h[i])
		c[i] = h[i]
		d[i] = 6 * ((y[i+1]-y[i])/h[i] - (y[i]-y[i-1])/h[i-1])
	}

	// not-a-knot at the left end: m0 relates to m1, m2 so that the third
	// derivative is continuous across x1. The row is a 3-term equation
	// (b0*m0 + c0*m1 + aLeft2*m2 = 0); eliminate its m2 term against row 1
	// (which is already tridiagonal in m0,m1,m2) so the whole system
	// reduces to a genuine tridiagonal one solvable by the Thomas
	// algorithm in O(n) instead of O(n^3) dense elimination.
	b[0] = -h[1]
	c[0] = h[0] + h[1]
	aLeft2 := -h[0]
	d[0] = 0
	{
		factor := aLeft2 / c[1]
		b[0] -= factor * a[1]
		c[0] -= factor * b[1]
		d[0] -= factor * d[1]
	}

	a[n-1] = h[n-2] + h[n-3]
	b[n-1] = -h[n-3]
	aRight2 := -h[n-2]
	d[n-1] = 0
	{
		factor := aRight2 / a[n-2]
		a[n-1] -= factor * b[n-2]
		b[n-1] -= factor * c[n-2]
		d[n-1] -= factor * d[n-2]
	}

	mCoef := thomasSolve(a, b, c, d)

	coeffs := make([]cubicCoeffs, n-1)
	for i := 0; i < n-1; i++ {
		hi := h[i]
		mi, mi1 := mCoef[i], mCoef[i+1]
		c1 := y[i]
		c2 := (y[i+1]-y[i])/hi - hi*(2*mi+mi1)/6
		c3 := mi / 2
		c4 := (mi1 - mi) / (6 * hi)
		coeffs[i] = cubicCoeffs{c1: c1, c2: c2, c3: c3, c4: c4}
	}
	return coeffs
}

// thomasSolve solves the tridiagonal system with sub-diagonal a (a[0]
// unused), diagonal b, super-diagonal c (c[n-1] unused), and right-hand
// side d, via the Thomas algorithm (forward sweep then back-substitution),
// O(n) in the number of unknowns.
func thomasSolve(a, b, c, d []float64) []float64 {
	n := len(d)
	cp := make([]float64, n)
	dp := make([]float64, n)
	cp[0] = c[0] / b[0]
	dp[0] = d[0] / b[0]
	for i := 1; i < n; i++ {
		denom := b[i] - a[i]*cp[i-1]
		if i < n-1 {
			cp[i] = c[i] / denom
		}
		dp[i] = (d[i] - a[i]*dp[i-1]) / denom
	}
	x := make([]float64, n)
	x[n-1] = dp[n-1]
	for i := n - 2; i >= 0; i-- {
		x[i] = dp[i] - cp[i]*x[i+1]
	}
	return x
}
