// Copyright 2013 Sonia Keys
// License MIT: http://www.opensource.org/licenses/MIT

// Package iers computes the fundamental arguments, nutation/precession
// series and Earth-rotation angles the IAU/IERS conventions define,
// generalizing the teacher's per-chapter nutation/precess/sidereal
// packages (each hard-coded to a single epoch-relative polynomial) into a
// shared centuries-since-J2000-TDB argument evaluated once and reused
// across every series in this package.
package iers

import (
	"math"

	"github.com/soniakeys/unit"
)

// arcsecToRad converts arcseconds to radians.
const arcsecToRad = math.Pi / (180 * 3600)

// wrapPi wraps an angle in radians to (-pi, pi], the normalization the
// fundamental arguments use after their arcsecond-based polynomials are
// evaluated (§4.8).
func wrapPi(rad float64) float64 {
	const twoPi = 2 * math.Pi
	rad = math.Mod(rad, twoPi)
	if rad <= -math.Pi {
		rad += twoPi
	} else if rad > math.Pi {
		rad -= twoPi
	}
	return rad
}

// horner evaluates a polynomial in t with coefficients c (c[0] the
// constant term), the same left-to-right Horner evaluation the teacher's
// base.Horner uses.
func horner(t float64, c ...float64) float64 {
	i := len(c) - 1
	sum := c[i]
	for i > 0 {
		i--
		sum = sum*t + c[i]
	}
	return sum
}

// asecPoly evaluates a polynomial whose coefficients are in arcseconds per
// power of t, returning radians wrapped to (-pi, pi].
func asecPoly(t float64, c ...float64) float64 {
	return wrapPi(horner(t, c...) * arcsecToRad)
}

// Delaunay holds the five fundamental Delaunay arguments of lunar and
// solar motion, all in radians.
type Delaunay struct {
	L      float64 // mean anomaly of the Moon
	LPrime float64 // mean anomaly of the Sun
	F      float64 // mean argument of latitude of the Moon
	D      float64 // mean elongation of the Moon from the Sun
	Omega  float64 // mean longitude of the ascending node of the Moon
}

// DelaunayArguments returns the Delaunay fundamental arguments at
// centuries-since-J2000 TDB t, using the IAU 2000A polynomial
// coefficients (arcseconds per power of t).
func DelaunayArguments(t float64) Delaunay {
	return Delaunay{
		L:      asecPoly(t, 485868.249036, 1717915923.2178, 31.8792, 0.051635, -0.00024470),
		LPrime: asecPoly(t, 1287104.79305, 129596581.0481, -0.5532, 0.000136, -0.00001149),
		F:      asecPoly(t, 335779.526232, 1739527262.8478, -12.7512, -0.001037, 0.00000417),
		D:      asecPoly(t, 1072260.70369, 1602961601.2090, -6.3706, 0.006593, -0.00003169),
		Omega:  asecPoly(t, 450160.398036, -6962890.5431, 7.4722, 0.007702, -0.00005939),
	}
}

// PlanetaryLongitudes holds the mean heliocentric ecliptic longitudes of
// the eight planets plus the general precession in longitude, all in
// radians, used by the planetary terms of the IAU 2000A nutation series.
type PlanetaryLongitudes struct {
	Mercury, Venus, Earth, Mars      float64
	Jupiter, Saturn, Uranus, Neptune float64
	GeneralPrecession                float64
}

// PlanetaryArguments returns the planetary mean longitudes at
// centuries-since-J2000 TDB t (IAU 2000A, radians per power of t, already
// in radians so no arcsecond conversion is needed).
func PlanetaryArguments(t float64) PlanetaryLongitudes {
	wrap := func(radPerCentury, rate float64) float64 {
		return wrapPi(radPerCentury + rate*t)
	}
	return PlanetaryLongitudes{
		Mercury:            wrap(4.402608842, 2608.7903141574),
		Venus:              wrap(3.176146697, 1021.3285546211),
		Earth:              wrap(1.753470314, 628.3075849991),
		Mars:               wrap(6.203480913, 334.0612426700),
		Jupiter:            wrap(0.599546497, 52.9690962641),
		Saturn:             wrap(0.874016757, 21.3299104960),
		Uranus:             wrap(5.481293872, 7.4781598567),
		Neptune:           wrap(5.311886287, 3.8133035638),
		GeneralPrecession: 0.024381750*t + 0.00000538691*t*t,
	}
}

// GeneralPrecession returns the IAU 2006 general precession angle p_A in
// longitude at centuries-since-J2000 TDB t, wrapped in unit.Angle per
// the teacher's v3/nutation.MeanObliquity convention for a leaf angle
// result with no further arithmetic role in this package.
func GeneralPrecession(t float64) unit.Angle {
	return unit.Angle(asecPoly(t, 0, 5028.796195, 1.1054348, 0.00007964, -0.000023857, -0.0000000383))
}
