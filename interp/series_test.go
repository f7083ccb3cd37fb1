// Copyright 2013 Sonia Keys
// License MIT: http://www.opensource.org/licenses/MIT

package interp_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loxspace/lox/interp"
)

func TestAxisRejectsNonIncreasing(t *testing.T) {
	_, err := interp.NewAxis([]float64{1, 2, 2, 3})
	assert.ErrorIs(t, err, interp.ErrNotStrictlyIncreasing)
}

func TestLinearReproducesSamples(t *testing.T) {
	axis, err := interp.NewAxis([]float64{0, 1, 2, 3})
	require.NoError(t, err)
	s, err := interp.NewLinear(axis, []float64{0, 10, 20, 30})
	require.NoError(t, err)
	for i, x := range []float64{0, 1, 2, 3} {
		assert.InDelta(t, float64(i)*10, s.Interpolate(x), 1e-12)
	}
	assert.InDelta(t, 5, s.Interpolate(0.5), 1e-12)
}

func TestLinearRequiresTwoPoints(t *testing.T) {
	axis, err := interp.NewAxis([]float64{0})
	require.NoError(t, err)
	_, err = interp.NewLinear(axis, []float64{0})
	assert.ErrorIs(t, err, interp.ErrTooFewPointsLinear)
}

func TestCubicRequiresFourPoints(t *testing.T) {
	axis, err := interp.NewAxis([]float64{0, 1, 2})
	require.NoError(t, err)
	_, err = interp.NewCubic(axis, []float64{0, 1, 4})
	assert.ErrorIs(t, err, interp.ErrTooFewPointsCubic)
}

func TestCubicReproducesSamples(t *testing.T) {
	x := []float64{0, 1, 2, 3, 4, 5}
	y := make([]float64, len(x))
	for i, xi := range x {
		y[i] = math.Sin(xi)
	}
	axis, err := interp.NewAxis(x)
	require.NoError(t, err)
	s, err := interp.NewCubic(axis, y)
	require.NoError(t, err)
	for i, xi := range x {
		assert.InDelta(t, y[i], s.Interpolate(xi), 1e-9, "sample %d", i)
	}
}

func TestCubicExactOnLinearData(t *testing.T) {
	// A spline through exactly linear data should reproduce the line
	// everywhere, not just at the knots.
	x := []float64{0, 1, 2, 3, 5, 8}
	y := make([]float64, len(x))
	for i, xi := range x {
		y[i] = 2*xi + 1
	}
	axis, err := interp.NewAxis(x)
	require.NoError(t, err)
	s, err := interp.NewCubic(axis, y)
	require.NoError(t, err)
	for _, xq := range []float64{0.5, 1.5, 2.5, 4, 6.5} {
		assert.InDelta(t, 2*xq+1, s.Interpolate(xq), 1e-8)
	}
}

func TestExtrapolationIsSilent(t *testing.T) {
	axis, err := interp.NewAxis([]float64{0, 1, 2, 3})
	require.NoError(t, err)
	s, err := interp.NewLinear(axis, []float64{0, 1, 2, 3})
	require.NoError(t, err)
	assert.InDelta(t, -1, s.Interpolate(-1), 1e-12)
	assert.InDelta(t, 5, s.Interpolate(5), 1e-12)
}
