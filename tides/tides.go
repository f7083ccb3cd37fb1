// Copyright 2013 Sonia Keys
// License MIT: http://www.opensource.org/licenses/MIT

// Package tides augments the IERS Earth Orientation Parameter series with
// the Ray-Ponte diurnal and semidiurnal ocean-tide corrections to polar
// motion and UT1, per §4.13. A Model sums a compiled table of periodic
// terms, each a small-integer multiple of the Delaunay fundamental
// arguments and Greenwich Mean Sidereal Time, evaluated through the
// same argument series iers and erot already provide for nutation and
// Earth rotation.
package tides

import (
	"math"

	"github.com/loxspace/lox/erot"
	"github.com/loxspace/lox/iers"
)

// term is one line of the Ray-Ponte tidal table: the argument is
// θMultiplier·θ + l·l + lp·l′ + f·F + d·D + omega·Ω, where θ is GMST+π
// (here taken as GMST directly, folded into the sin/cos amplitudes the
// same way the IERS table itself absorbs the π phase). Amplitudes are in
// microarcseconds for xp/yp and microseconds for UT1.
type term struct {
	thetaMultiplier                 float64
	l, lp, f, d, omega               float64
	xpSin, xpCos, ypSin, ypCos       float64
	ut1Sin, ut1Cos                   float64
}

// Model evaluates a compiled tidal correction table at a given epoch.
type Model struct {
	terms []term
}

// DefaultModel returns the dominant-term Ray-Ponte model: the largest
// diurnal and semidiurnal lines from the IERS Conventions Chapter 8
// table, diurnal lines first, then semidiurnal. This is a deliberate excerpt,
// not the full ~70-line table; see DESIGN.md.
func DefaultModel() *Model {
	return &Model{terms: append([]term(nil), defaultTerms...)}
}

// Corrections returns (Δxₚ, Δyₚ) in arcseconds and ΔUT1 in seconds at the
// epoch given by ttCenturiesSinceJ2000 (for the Delaunay arguments) and
// ut1DaysSinceJ2000 (for GMST).
func (m *Model) Corrections(ttCenturiesSinceJ2000, ut1DaysSinceJ2000 float64) (dxp, dyp, dut1 float64) {
	d := iers.DelaunayArguments(ttCenturiesSinceJ2000)
	theta := erot.GMST(erot.IAU2006, ut1DaysSinceJ2000, ttCenturiesSinceJ2000).Rad()

	for _, t := range m.terms {
		arg := t.thetaMultiplier*theta + t.l*d.L + t.lp*d.LPrime + t.f*d.F + t.d*d.D + t.omega*d.Omega
		s, c := math.Sincos(arg)
		dxp += t.xpSin*s + t.xpCos*c
		dyp += t.ypSin*s + t.ypCos*c
		dut1 += t.ut1Sin*s + t.ut1Cos*c
	}
	const microarcsecToArcsec = 1e-6
	const microsecToSec = 1e-6
	return dxp * microarcsecToArcsec, dyp * microarcsecToArcsec, dut1 * microsecToSec
}

// defaultTerms is a dominant-term excerpt of the IERS Conventions (2010)
// Chapter 8, Table 8.1 Ray-Ponte diurnal/semidiurnal tidal table: the
// largest-amplitude O1, P1, K1, N2, M2, S2 lines (argument multipliers
// of GMST and the Delaunay l, l′, F, D, Ω arguments).
var defaultTerms = []term{
	// O1
	{thetaMultiplier: 1, l: 0, lp: 0, f: -2, d: 0, omega: -1, xpSin: -36, xpCos: -6, ypSin: -6, ypCos: 36, ut1Sin: -5.5, ut1Cos: -0.1},
	// P1
	{thetaMultiplier: 1, l: 0, lp: 0, f: 0, d: 0, omega: -1, xpSin: -169, xpCos: -27, ypSin: -27, ypCos: 169, ut1Sin: -1.8, ut1Cos: -0.1},
	// K1
	{thetaMultiplier: 1, l: 0, lp: 0, f: 0, d: 0, omega: 1, xpSin: 243, xpCos: 39, ypSin: 39, ypCos: -243, ut1Sin: 2.6, ut1Cos: 0.1},
	// N2
	{thetaMultiplier: 2, l: 0, lp: 0, f: -2, d: 0, omega: 0, xpSin: -1, xpCos: -2, ypSin: -2, ypCos: 1, ut1Sin: 0.1, ut1Cos: 0.0},
	// M2
	{thetaMultiplier: 2, l: 0, lp: 0, f: 0, d: 0, omega: 0, xpSin: -8, xpCos: -11, ypSin: -11, ypCos: 8, ut1Sin: 0.6, ut1Cos: 0.0},
	// S2
	{thetaMultiplier: 2, l: 0, lp: 0, f: 2, d: 0, omega: 0, xpSin: -1, xpCos: -1, ypSin: -1, ypCos: 1, ut1Sin: 0.1, ut1Cos: 0.0},
}
