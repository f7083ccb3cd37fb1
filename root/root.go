// Copyright 2013 Sonia Keys
// License MIT: http://www.opensource.org/licenses/MIT

// Package root extends the teacher's illustrative binary-search root finder
// (iterate.go's BinaryRoot, which is not carried into this module) into four
// general-purpose root finders sharing one fallible callback protocol:
// Newton, Steffensen, Secant and Brent, each usable wherever a caller needs
// to solve an implicit equation (frame obliquity/latitude inversions,
// geodetic height from Cartesian coordinates) without hand-rolling its own
// iteration loop.
package root

import (
	"math"

	"github.com/pkg/errors"
)

// ErrMaxIterations is returned when a finder exhausts its iteration budget
// without meeting its convergence contract.
var ErrMaxIterations = errors.New("root: maximum iterations reached without convergence")

// ErrBracketSign is returned by Brent when a bracket's endpoints do not
// straddle a root (same sign), so it cannot proceed.
var ErrBracketSign = errors.New("root: bracket does not straddle a root")

// CallbackError boxes an error returned by the caller's function, so the
// caller can tell callback failures apart from the finder's own
// non-convergence/bracket errors via errors.As.
type CallbackError struct {
	Err error
}

func (e *CallbackError) Error() string { return "root: callback error: " + e.Err.Error() }
func (e *CallbackError) Unwrap() error { return e.Err }

func wrapCallback(err error) error {
	if err == nil {
		return nil
	}
	return &CallbackError{Err: err}
}

// Func is a scalar function that may fail (e.g. evaluating outside a
// provider's valid domain).
type Func func(x float64) (float64, error)

// DerivFunc is a scalar function returning both its value and its
// derivative at x.
type DerivFunc func(x float64) (f, fPrime float64, err error)

// sqrtEps is the convergence tolerance for Newton's step-size test, the
// square root of float64 machine epsilon, a standard choice balancing
// convergence speed against floating-point noise.
var sqrtEps = math.Sqrt(2.220446049250313e-16)

// Newton finds a root of f near guess using Newton-Raphson iteration,
// stopping when successive iterates differ by at most sqrtEps or after
// maxIterations.
func Newton(f DerivFunc, guess float64, maxIterations int) (float64, error) {
	p := guess
	for i := 0; i < maxIterations; i++ {
		y, yPrime, err := f(p)
		if err != nil {
			return 0, wrapCallback(err)
		}
		if yPrime == 0 {
			return 0, errors.New("root: Newton: derivative is zero")
		}
		next := p - y/yPrime
		if math.Abs(next-p) <= sqrtEps {
			return next, nil
		}
		p = next
	}
	return 0, errors.Wrapf(ErrMaxIterations, "Newton after %d iterations", maxIterations)
}

// Steffensen finds a root of f near guess using only function values
// (no derivative), with Delta-squared (Aitken) acceleration of the fixed
// point iteration x_{n+1} = x_n - f(x_n)^2 / (f(x_n+f(x_n)) - f(x_n)).
func Steffensen(f Func, guess float64, maxIterations int) (float64, error) {
	x := guess
	for i := 0; i < maxIterations; i++ {
		fx, err := f(x)
		if err != nil {
			return 0, wrapCallback(err)
		}
		if fx == 0 {
			return x, nil
		}
		gx, err := f(x + fx)
		if err != nil {
			return 0, wrapCallback(err)
		}
		denom := gx - fx
		if denom == 0 {
			return 0, errors.New("root: Steffensen: stalled, denominator is zero")
		}
		next := x - fx*fx/denom
		if math.Abs(next-x) <= sqrtEps {
			return next, nil
		}
		x = next
	}
	return 0, errors.Wrapf(ErrMaxIterations, "Steffensen after %d iterations", maxIterations)
}

// Secant finds a root of f starting from the two points lower and upper.
// The points are first swapped, if needed, so that the one with the
// smaller |f| is the latest estimate; each step then replaces the older
// point with the new secant iterate, keeping the two most recent
// estimates. The two points need not straddle the root.
func Secant(f Func, lower, upper float64, maxIterations int) (float64, error) {
	x0, x1 := lower, upper
	f0, err := f(x0)
	if err != nil {
		return 0, wrapCallback(err)
	}
	f1, err := f(x1)
	if err != nil {
		return 0, wrapCallback(err)
	}
	if math.Abs(f0) < math.Abs(f1) {
		x0, x1, f0, f1 = x1, x0, f1, f0
	}
	for i := 0; i < maxIterations; i++ {
		if f1 == f0 {
			return 0, errors.New("root: Secant: stalled, f(x0) == f(x1)")
		}
		x2 := x1 - f1*(x1-x0)/(f1-f0)
		f2, err := f(x2)
		if err != nil {
			return 0, wrapCallback(err)
		}
		if math.Abs(x2-x1) <= sqrtEps {
			return x2, nil
		}
		x0, f0 = x1, f1
		x1, f1 = x2, f2
	}
	return 0, errors.Wrapf(ErrMaxIterations, "Secant after %d iterations", maxIterations)
}

// Brent finds a root of f bracketed by [lower, upper] using Brent's method:
// inverse quadratic interpolation or the secant step when it stays inside
// the bracket and shrinks fast enough, falling back to bisection otherwise,
// per the standard tie-break rules of the algorithm (Brent 1973, as
// presented in Press et al., Numerical Recipes).
func Brent(f Func, lower, upper float64, maxIterations int) (float64, error) {
	a, b := lower, upper
	fa, err := f(a)
	if err != nil {
		return 0, wrapCallback(err)
	}
	fb, err := f(b)
	if err != nil {
		return 0, wrapCallback(err)
	}
	if fa == 0 {
		return a, nil
	}
	if fb == 0 {
		return b, nil
	}
	if math.Signbit(fa) == math.Signbit(fb) {
		return 0, ErrBracketSign
	}

	c, fc := a, fa
	d := b - a
	e := d

	for i := 0; i < maxIterations; i++ {
		if math.Abs(fc) < math.Abs(fb) {
			a, b, c = b, c, b
			fa, fb, fc = fb, fc, fb
		}
		tol := 2*sqrtEps*math.Abs(b) + sqrtEps
		m := (c - b) / 2
		if math.Abs(m) <= tol || fb == 0 {
			return b, nil
		}

		if math.Abs(e) < tol || math.Abs(fa) <= math.Abs(fb) {
			d, e = m, m
		} else {
			var p, q float64
			s := fb / fa
			if a == c {
				p = 2 * m * s
				q = 1 - s
			} else {
				qq := fa / fc
				r := fb / fc
				p = s * (2*m*qq*(qq-r) - (b-a)*(r-1))
				q = (qq - 1) * (r - 1) * (s - 1)
			}
			if p > 0 {
				q = -q
			} else {
				p = -p
			}
			if 2*p < math.Min(3*m*q-math.Abs(tol*q), math.Abs(e*q)) {
				e, d = d, p/q
			} else {
				d, e = m, m
			}
		}

		a, fa = b, fb
		if math.Abs(d) > tol {
			b += d
		} else if m > 0 {
			b += tol
		} else {
			b -= tol
		}
		fb, err = f(b)
		if err != nil {
			return 0, wrapCallback(err)
		}
		if math.Signbit(fb) == math.Signbit(fc) {
			c, fc = a, fa
			d = b - a
			e = d
		}
	}
	return 0, errors.Wrapf(ErrMaxIterations, "Brent after %d iterations", maxIterations)
}
