// Copyright 2013 Sonia Keys
// License MIT: http://www.opensource.org/licenses/MIT

package root_test

import (
	"math"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loxspace/lox/root"
)

// sqrtDeriv solves x^2 - a = 0.
func sqrtDeriv(a float64) root.DerivFunc {
	return func(x float64) (float64, float64, error) {
		return x*x - a, 2 * x, nil
	}
}

func sqrtFunc(a float64) root.Func {
	return func(x float64) (float64, error) {
		return x*x - a, nil
	}
}

func TestNewtonFindsSqrt(t *testing.T) {
	x, err := root.Newton(sqrtDeriv(2), 1, 50)
	require.NoError(t, err)
	assert.InDelta(t, math.Sqrt2, x, 1e-10)
}

func TestSteffensenFindsSqrt(t *testing.T) {
	x, err := root.Steffensen(sqrtFunc(2), 1, 50)
	require.NoError(t, err)
	assert.InDelta(t, math.Sqrt2, x, 1e-9)
}

func TestSecantFindsSqrt(t *testing.T) {
	x, err := root.Secant(sqrtFunc(2), 1, 2, 50)
	require.NoError(t, err)
	assert.InDelta(t, math.Sqrt2, x, 1e-9)
}

func TestBrentFindsSqrt(t *testing.T) {
	x, err := root.Brent(sqrtFunc(2), 1, 2, 100)
	require.NoError(t, err)
	assert.InDelta(t, math.Sqrt2, x, 1e-9)
}

func TestBrentRejectsBadBracket(t *testing.T) {
	_, err := root.Brent(sqrtFunc(2), 2, 3, 50)
	assert.ErrorIs(t, err, root.ErrBracketSign)
}

func TestCallbackErrorIsUnwrappable(t *testing.T) {
	sentinel := errors.New("boom")
	f := func(x float64) (float64, error) { return 0, sentinel }
	_, err := root.Steffensen(f, 1, 10)
	require.Error(t, err)
	var cbErr *root.CallbackError
	require.ErrorAs(t, err, &cbErr)
	assert.ErrorIs(t, err, sentinel)
}

func TestNewtonMaxIterations(t *testing.T) {
	// A single iteration is nowhere near enough for Newton to converge to
	// sqrtEps on sqrt(2) starting from guess 1.
	_, err := root.Newton(sqrtDeriv(2), 1, 1)
	assert.ErrorIs(t, err, root.ErrMaxIterations)
}

func TestKeplerEquationViaNewton(t *testing.T) {
	// Solve Kepler's equation M = E - e*sin(E) for E given M, e.
	e, M := 0.2, 1.0
	f := func(E float64) (float64, float64, error) {
		return E - e*math.Sin(E) - M, 1 - e*math.Cos(E), nil
	}
	E, err := root.Newton(f, M, 30)
	require.NoError(t, err)
	assert.InDelta(t, M, E-e*math.Sin(E), 1e-12)
}
