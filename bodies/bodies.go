// Copyright 2013 Sonia Keys
// License MIT: http://www.opensource.org/licenses/MIT

// Package bodies holds the catalogue of celestial body constants —
// gravitational parameter, ellipsoid radii, and rotational elements —
// needed to resolve a body-fixed frame, per §3's body catalogue entry
// and §4.14. The ellipsoid/rotation-rate modeling follows the teacher's
// globe.Ellipsoid (Chapter 11, "The Earth's Globe"), generalized from
// Earth-only to any cataloged body and to the full IAU polynomial pole
// model instead of a single fixed-epoch rotation rate.
package bodies

import (
	"math"

	"github.com/loxspace/lox/units"
)

// Body is one catalogue entry: identity, mass, shape and orientation.
type Body struct {
	ID   int
	Name string

	Mu units.GM

	EquatorialRadius units.Distance
	PolarRadius      units.Distance

	Pole RotationalElements
}

// Flattening returns the body's ellipsoidal flattening, following
// globe.Ellipsoid.Fl's role but computed from the two radii directly
// rather than carried as a separate stored field.
func (b Body) Flattening() float64 {
	a := b.EquatorialRadius.Km()
	if a == 0 {
		return 0
	}
	return 1 - b.PolarRadius.Km()/a
}

// Eccentricity of the body's reference ellipsoid, following
// globe.Ellipsoid.Eccentricity.
func (b Body) Eccentricity() float64 {
	fl := b.Flattening()
	return math.Sqrt((2 - fl) * fl)
}

// angleTerm is one periodic correction angle θ = a + b·d (degrees,
// degrees/day), used by the trigonometric nutation/precession terms a
// PCK's BODY{id}_NUT_PREC_ANGLES supplies for barycenter-relative bodies
// (e.g. the Jovian or Martian system angles).
type angleTerm struct {
	constantDeg float64
	rateDegPerD float64
}

func (a angleTerm) eval(daysSinceJ2000 float64) float64 {
	return (a.constantDeg + a.rateDegPerD*daysSinceJ2000) * math.Pi / 180
}

// RotationalElements is the IAU polynomial-plus-periodic pole model: the
// body pole's right ascension and declination as polynomials in T
// (Julian centuries TDB since J2000), the prime meridian as a polynomial
// in d (days TDB since J2000), and an optional set of trigonometric
// nutation/precession corrections added to each, evaluated against a
// shared set of system angles.
type RotationalElements struct {
	ra0, ra1, ra2   float64 // degrees, degrees/century, degrees/century²
	dec0, dec1, dec2 float64

	pm0, pm1, pm2 float64 // degrees, degrees/day, degrees/day²

	angles []angleTerm
	nutRA  []float64 // degrees, one per angle
	nutDec []float64
	nutPM  []float64
}

// PoleRightAscension returns the body pole's right ascension at Julian
// centuries TDB t since J2000.
func (r RotationalElements) PoleRightAscension(tCenturies, daysSinceJ2000 float64) units.Angle {
	deg := r.ra0 + r.ra1*tCenturies + r.ra2*tCenturies*tCenturies
	deg += r.sumPeriodic(r.nutRA, daysSinceJ2000)
	return units.AngleFromDeg(deg)
}

// PoleDeclination returns the body pole's declination at Julian
// centuries TDB t since J2000.
func (r RotationalElements) PoleDeclination(tCenturies, daysSinceJ2000 float64) units.Angle {
	deg := r.dec0 + r.dec1*tCenturies + r.dec2*tCenturies*tCenturies
	deg += r.sumPeriodic(r.nutDec, daysSinceJ2000)
	return units.AngleFromDeg(deg)
}

// PrimeMeridian returns the body's prime meridian angle at days TDB d
// since J2000.
func (r RotationalElements) PrimeMeridian(daysSinceJ2000 float64) units.Angle {
	deg := r.pm0 + r.pm1*daysSinceJ2000 + r.pm2*daysSinceJ2000*daysSinceJ2000
	deg += r.sumPeriodic(r.nutPM, daysSinceJ2000)
	return units.AngleFromDeg(deg)
}

func (r RotationalElements) sumPeriodic(amplitudesDeg []float64, daysSinceJ2000 float64) float64 {
	var sum float64
	for i, amp := range amplitudesDeg {
		if i >= len(r.angles) {
			break
		}
		sum += amp * math.Sin(r.angles[i].eval(daysSinceJ2000))
	}
	return sum
}

// RotationRate returns the body's mean rotational angular velocity in
// radians/second, following globe.RotationRate1996_5's role but derived
// from the prime-meridian rate term rather than carried as a constant.
func (r RotationalElements) RotationRate() float64 {
	const secondsPerDay = 86400.0
	return r.pm1 * math.Pi / 180 / secondsPerDay
}
