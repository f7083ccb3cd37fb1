// Copyright 2013 Sonia Keys
// License MIT: http://www.opensource.org/licenses/MIT

package iers_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/loxspace/lox/iers"
)

func TestDelaunayArgumentsAreWrapped(t *testing.T) {
	for _, t64 := range []float64{-50, -1, 0, 1, 50} {
		d := iers.DelaunayArguments(t64)
		for _, v := range []float64{d.L, d.LPrime, d.F, d.D, d.Omega} {
			assert.GreaterOrEqual(t, v, -math.Pi)
			assert.LessOrEqual(t, v, math.Pi+1e-12)
		}
	}
}

func TestPlanetaryArgumentsAreWrapped(t *testing.T) {
	p := iers.PlanetaryArguments(12)
	for _, v := range []float64{p.Mercury, p.Venus, p.Earth, p.Mars, p.Jupiter, p.Saturn, p.Uranus, p.Neptune} {
		assert.GreaterOrEqual(t, v, -math.Pi)
		assert.LessOrEqual(t, v, math.Pi+1e-12)
	}
}

func TestNutationAtKnownEpoch(t *testing.T) {
	// 1987-04-10 is about -0.127 Julian centuries from J2000; rather than
	// re-derive the exact T here (that belongs to package calendar/julian
	// conversion), this checks the nutation magnitude stays within 20
	// arcseconds for a date a little over a decade before J2000.
	dPsi, dEps := iers.Nutation(-0.1279, iers.IAU1980)
	assert.Less(t, math.Abs(dPsi.Rad()), 20*math.Pi/(180*3600))
	assert.Less(t, math.Abs(dEps.Rad()), 20*math.Pi/(180*3600))
}

func TestMeanObliquityNearJ2000(t *testing.T) {
	eps0 := iers.MeanObliquity(0)
	// 23.43928 degrees in radians, the textbook J2000 mean obliquity.
	want := 23.43928 * math.Pi / 180
	assert.InDelta(t, want, eps0.Rad(), 1e-4)
}

func TestGeneralPrecessionIsZeroAtEpoch(t *testing.T) {
	assert.InDelta(t, 0, iers.GeneralPrecession(0).Rad(), 1e-15)
}
