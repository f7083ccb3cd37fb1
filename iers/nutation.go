// Copyright 2013 Sonia Keys
// License MIT: http://www.opensource.org/licenses/MIT

package iers

import (
	"math"

	"github.com/soniakeys/unit"
)

// Series identifies which nutation theory a Nutation call evaluates.
type Series int

const (
	// IAU1980 is the Luni-Solar-only theory (Wahr 1980), evaluated from
	// table1980, a dominant-term excerpt of the teacher's 106-row table22A.
	IAU1980 Series = iota
	// IAU2000B evaluates the first 20 rows (the largest terms) of
	// table1980 with their IAU 1980 coefficients unchanged; no 2000B
	// coefficient values are applied, and the ~640 planetary terms of the
	// full IAU2000A series are not included. See DESIGN.md for why the
	// full 2000A/2006A planetary term table is not reproduced here.
	IAU2000B
)

// luniSolarTerm is one row of a Luni-Solar nutation series: multipliers on
// the five Delaunay arguments, and the (sin, cos) amplitude coefficients
// in 0.1 milliarcsecond units with their time-linear rates.
type luniSolarTerm struct {
	l, lp, f, d, omega float64
	sinPsi, sinPsiT    float64
	cosEps, cosEpsT    float64
}

// Nutation returns the nutation in longitude (Δψ) and obliquity (Δε) at
// centuries-since-J2000 TDB t, by the requested series, wrapped in
// unit.Angle per the teacher's v3/nutation.Nutation signature (same Δψ,
// Δε unit.Angle result pair). Only the rows of table1980 are summed (an
// excerpt whose smallest terms are about 5e-4 arcsec, i.e. 0.5 mas);
// smaller terms of the full theory are not included.
func Nutation(t float64, series Series) (dPsi, dEps unit.Angle) {
	args := DelaunayArguments(t)
	table := table1980
	if series == IAU2000B {
		table = table2000B
	}
	var psiSum, epsSum float64
	for i := len(table) - 1; i >= 0; i-- {
		row := table[i]
		arg := row.l*args.L + row.lp*args.LPrime + row.f*args.F + row.d*args.D + row.omega*args.Omega
		s, c := math.Sincos(arg)
		psiSum += s * (row.sinPsi + row.sinPsiT*t)
		epsSum += c * (row.cosEps + row.cosEpsT*t)
	}
	const milliasecToRad = arcsecToRad / 10000 // table units are 1e-4 arcsec
	dPsi = unit.Angle(psiSum * milliasecToRad)
	dEps = unit.Angle(epsSum * milliasecToRad)
	return dPsi, dEps
}

// MeanObliquity returns the IAU 2006 mean obliquity of the ecliptic ε0 at
// centuries-since-J2000 TDB t.
func MeanObliquity(t float64) unit.Angle {
	return unit.Angle(asecPoly(t,
		84381.406,
		-46.836769,
		-0.0001831,
		0.00200340,
		-0.000000576,
		-0.0000000434,
	))
}

// table1980 is the dominant-term excerpt of the IAU 1980 Luni-Solar
// nutation series, carried over from the teacher's table22A (same
// coefficient values, reordered from the teacher's (d,m,n,f,ω) column
// order into this package's (l,lp,f,d,omega) Delaunay argument order).
// The teacher's full table runs to 106 rows; this excerpt keeps the
// terms above roughly 5e-4 arcsec, which is the working precision this
// module's tests check against.
var table1980 = []luniSolarTerm{
	{0, 0, 0, 0, 1, -171996, -174.2, 92025, 8.9},
	{0, 0, 2, -2, 2, -13187, -1.6, 5736, -3.1},
	{0, 0, 2, 0, 2, -2274, -0.2, 977, -0.5},
	{0, 0, 0, 0, 2, 2062, 0.2, -895, 0.5},
	{0, 1, 0, 0, 0, 1426, -3.4, 54, -0.1},
	{1, 0, 0, 0, 0, 712, 0.1, -7, 0},
	{0, 1, 2, -2, 2, -517, 1.2, 224, -0.6},
	{0, 0, 2, 0, 1, -386, -0.4, 200, 0},
	{1, 0, 2, 0, 2, -301, 0, 129, -0.1},
	{0, -1, 2, -2, 2, 217, -0.5, -95, 0.3},
	{1, 0, 0, -2, 0, -158, 0, 0, 0},
	{0, 0, 2, -2, 1, 129, 0.1, -70, 0},
	{-1, 0, 2, 0, 2, 123, 0, -53, 0},
	{0, 0, 0, 2, 0, 63, 0, 0, 0},
	{1, 0, 0, 0, 1, 63, 0.1, -33, 0},
	{-1, 0, 2, 2, 2, -59, 0, 26, 0},
	{-1, 0, 0, 0, 1, -58, -0.1, 32, 0},
	{1, 0, 2, 0, 1, -51, 0, 27, 0},
	{2, 0, 0, -2, 0, 48, 0, 0, 0},
	{-2, 0, 2, 0, 1, 46, 0, -24, 0},
	{0, 0, 2, 2, 2, -38, 0, 16, 0},
	{2, 0, 2, 0, 2, -31, 0, 13, 0},
	{2, 0, 0, 0, 0, 29, 0, 0, 0},
	{1, 0, 2, -2, 2, 29, 0, -12, 0},
	{0, 0, 2, 0, 0, 26, 0, 0, 0},
	{0, 0, 2, -2, 0, -22, 0, 0, 0},
	{-1, 0, 2, 0, 1, 21, 0, -10, 0},
	{0, 2, 0, 0, 0, 17, -0.1, 0, 0},
	{0, 2, 2, -2, 2, -16, 0.1, 7, 0},
	{-1, 0, 0, 2, 1, -15, 0, 9, 0},
	{0, 1, 0, 0, 1, -13, 0, 7, 0},
	{1, 0, 0, -2, 1, -12, 0, 6, 0},
	{0, -2, 2, -2, 1, 11, 0, 0, 0},
	{-1, 0, 2, 2, 1, -10, 0, 5, 0},
	{1, 0, 2, 2, 2, -8, 0, 3, 0},
	{0, -1, 2, 0, 2, 7, 0, -3, 0},
	{0, 0, 0, 2, 1, -7, 0, 3, 0},
	{1, 1, 0, -2, 0, -7, 0, 0, 0},
	{0, 1, 2, 0, 2, -7, 0, 3, 0},
	{-2, 0, 0, 2, 1, -6, 0, 3, 0},
	{2, 0, 0, 0, 1, -6, 0, 3, 0},
	{0, -1, 0, 0, 1, 5, 0, 0, 0},
	{0, -1, 0, 2, 1, -5, 0, 3, 0},
	{-2, 0, 0, 0, 1, -5, 0, 3, 0},
	{0, 0, 2, 2, 1, -5, 0, 3, 0},
}

// table2000B is the first 20 rows of table1980, coefficients unchanged;
// see DESIGN.md for the scope decision behind this truncation.
var table2000B = table1980[:20]
