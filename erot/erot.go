// Copyright 2013 Sonia Keys
// License MIT: http://www.opensource.org/licenses/MIT

// Package erot computes Earth Rotation Angle and the Greenwich sidereal
// times (mean and apparent) under the IAU 1982/2000/2006 conventions,
// generalizing the teacher's sidereal package (a single IAU 1982
// polynomial hard-coded to Julian Day) into multiple selectable theories
// sharing one calling convention, consistent with §4.9.
package erot

import (
	"math"

	"github.com/soniakeys/unit"

	"github.com/loxspace/lox/iers"
)

const twoPi = 2 * math.Pi

func mod2pi(x float64) float64 {
	x = math.Mod(x, twoPi)
	if x < 0 {
		x += twoPi
	}
	return x
}

// horner evaluates a polynomial the same way iers.horner does; duplicated
// locally (rather than exported from iers) to keep erot's public surface
// independent of iers's internal helpers.
func horner(t float64, c ...float64) float64 {
	i := len(c) - 1
	sum := c[i]
	for i > 0 {
		i--
		sum = sum*t + c[i]
	}
	return sum
}

// EarthRotationAngle returns ERA(t), given d, the number of UT1 days
// since J2000, per §4.9: ERA = 2π(0.7790572732640 +
// 1.00273781191135448·d), modulo 2π, wrapped in unit.Angle per the
// teacher's sidereal package convention of returning its Greenwich
// rotation angle as a dedicated angle-like type rather than a bare
// float64.
func EarthRotationAngle(ut1DaysSinceJ2000 float64) unit.Angle {
	return unit.Angle(mod2pi(twoPi * (0.7790572732640 + 1.00273781191135448*ut1DaysSinceJ2000)))
}

// EarthRotationRate returns dERA/dt with respect to UT1 seconds
// (radians/second): the linear coefficient of EarthRotationAngle's
// polynomial, 1.00273781191135448 cycles per UT1 day, converted to a
// per-second rate. Used by package frames for the angular-velocity
// contribution §4.10 requires of the CIRF->TIRF/ITRF rotation.
func EarthRotationRate() float64 {
	const secondsPerDay = 86400.0
	return twoPi * 1.00273781191135448 / secondsPerDay
}

// GMSTTheory selects which IAU convention GMST/GAST evaluate under.
type GMSTTheory int

const (
	// IAU1982 computes GMST directly as a polynomial in UT1 only,
	// generalizing the teacher's sidereal.Mean.
	IAU1982 GMSTTheory = iota
	// IAU2000 computes GMST from ERA(UT1) plus an arcsecond polynomial in
	// TT centuries.
	IAU2000
	// IAU2006 is the same form as IAU2000 with the 2006 coefficient set.
	IAU2006
)

// iau82 is the teacher's sidereal.iau82 polynomial: mean sidereal time at
// Greenwich at 0h UT, in seconds of time, as a function of centuries from
// J2000 of the JD at 0h UT.
var iau82 = []float64{24110.54841, 8640184.812866, 0.093104, -0.0000062}

// GMST returns Greenwich Mean Sidereal Time.
//
// For IAU1982, ut1DaysSinceJ2000 is split into the preceding 0h UT1 and
// the fraction of a UT1 day since then; the 0h instant, in centuries
// since J2000, drives the IAU 1982 polynomial, and ttCenturiesSinceJ2000
// is unused.
//
// For IAU2000/IAU2006, ERA is evaluated at ut1DaysSinceJ2000 and
// ttCenturiesSinceJ2000 drives the arcsecond polynomial added to it.
func GMST(theory GMSTTheory, ut1DaysSinceJ2000, ttCenturiesSinceJ2000 float64) unit.Angle {
	switch theory {
	case IAU1982:
		j0 := math.Floor(ut1DaysSinceJ2000+0.5) - 0.5
		frac := ut1DaysSinceJ2000 - j0
		cen := j0 / 36525
		seconds := horner(cen, iau82...) + frac*86400*1.00273790935
		return unit.Angle(mod2pi(seconds * twoPi / 86400))
	case IAU2006:
		era := EarthRotationAngle(ut1DaysSinceJ2000)
		t := ttCenturiesSinceJ2000
		asec := horner(t, 0.014506, 4612.156534, 1.3915817, -0.00000044, -0.000029956, -0.0000000368)
		return unit.Angle(mod2pi(era.Rad() + asec*math.Pi/(180*3600)))
	default: // IAU2000
		era := EarthRotationAngle(ut1DaysSinceJ2000)
		t := ttCenturiesSinceJ2000
		asec := horner(t, 0.014506, 4612.15739966, 1.39667721, -0.00009344, 0.00001882, 0)
		return unit.Angle(mod2pi(era.Rad() + asec*math.Pi/(180*3600)))
	}
}

// EquationOfEquinoxes returns the equation of the equinoxes added to GMST
// to obtain GAST, per §4.9: Δψ·cos(ε), evaluated from the IAU 1980
// nutation series for theory IAU1982, and from the IAU 2000B series plus
// a zeroth/first-order complementary-terms approximation for
// IAU2000/IAU2006.
func EquationOfEquinoxes(theory GMSTTheory, tdbCenturiesSinceJ2000 float64) unit.Angle {
	dPsi, dEps := iers.Nutation(tdbCenturiesSinceJ2000, pickSeries(theory))
	eps0 := iers.MeanObliquity(tdbCenturiesSinceJ2000)
	eqeq := dPsi.Rad() * math.Cos(eps0.Rad()+dEps.Rad())
	if theory == IAU1982 {
		return unit.Angle(eqeq)
	}
	// Complementary terms (IERS Conventions 2003, eq. 5.21), zeroth and
	// first order only: a small correction on top of the classical
	// equation of the equinoxes, dominated by a term proportional to
	// sin(Ω).
	args := iers.DelaunayArguments(tdbCenturiesSinceJ2000)
	ctAsec := 0.00264096*math.Sin(args.Omega) + 0.00006352*math.Sin(2*args.Omega) -
		0.00000087*tdbCenturiesSinceJ2000*math.Sin(args.Omega)
	ct := ctAsec * math.Pi / (180 * 3600)
	return unit.Angle(eqeq + ct)
}

func pickSeries(theory GMSTTheory) iers.Series {
	if theory == IAU1982 {
		return iers.IAU1980
	}
	return iers.IAU2000B
}

// GAST returns Greenwich Apparent Sidereal Time: GMST plus the equation
// of the equinoxes.
func GAST(theory GMSTTheory, ut1DaysSinceJ2000, ttCenturiesSinceJ2000 float64) unit.Angle {
	gmst := GMST(theory, ut1DaysSinceJ2000, ttCenturiesSinceJ2000)
	eqeq := EquationOfEquinoxes(theory, ttCenturiesSinceJ2000)
	return unit.Angle(mod2pi(gmst.Rad() + eqeq.Rad()))
}
