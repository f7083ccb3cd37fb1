// Copyright 2013 Sonia Keys
// License MIT: http://www.opensource.org/licenses/MIT

// Package calendar implements proleptic Julian / Julian / Gregorian
// calendar-date arithmetic and time-of-day composition.
//
// The Julian-day formulas are adapted from package julian in the teacher
// repository (Meeus ch. 7); the calendar-cutover rule (Julian through
// 1582-10-04, Gregorian from 1582-10-15) is the same rule package julian's
// JDToCalendar already applies when converting back from a Julian day.
package calendar

// J2000JD is the Julian day of the J2000.0 epoch, 2000-01-01 12:00 TT.
const J2000JD = 2451545.0

// lastGregorianJulianJD is the Julian day of 1582-10-04, the last day of
// the Julian calendar before the Gregorian cutover.
const lastGregorianJulianJD = 2299160.5

func floorDiv(x, y int) int {
	if (x < 0) == (y < 0) || x%y == 0 {
		return x / y
	}
	return x/y - 1
}

func floorDiv64(x, y int64) int64 {
	if (x < 0) == (y < 0) || x%y == 0 {
		return x / y
	}
	return x/y - 1
}

func horner(x float64, c ...float64) float64 {
	i := len(c) - 1
	y := c[i]
	for i > 0 {
		i--
		y = y*x + c[i]
	}
	return y
}
