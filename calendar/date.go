// Copyright 2013 Sonia Keys
// License MIT: http://www.opensource.org/licenses/MIT

package calendar

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// J2000JDN is the (noon-referenced) Julian Day Number of 2000-01-01, the
// epoch against which Date measures days-since-J2000.
const J2000JDN = 2451545

// gregorianCutoverJDN is the JDN of 1582-10-15, the first day of the
// Gregorian calendar; package julian's JDToCalendar branches on the
// equivalent threshold expressed in JD (2299161).
const gregorianCutoverJDN = 2299161

// ErrInvalidDate is returned when a (year, month, day) triple does not
// round-trip through the calendar: the month is out of [1,12], the day is
// out of range for its month, or day==0 was supplied (there is no day 0).
var ErrInvalidDate = errors.New("calendar: invalid date")

// Date is a calendar date: a calendar tag plus (year, month, day)
// components. The calendar is derived from the components themselves
// (proleptic Julian for year < 1, Julian up to 1582-10-04, Gregorian from
// 1582-10-15), following §4.2.
type Date struct {
	cal          Calendar
	year, month, day int
}

// NewDate constructs and validates a Date, selecting its Calendar from the
// components as described in §4.2. It returns ErrInvalidDate if the
// components do not describe a real day (bad month, day out of range for
// the month, or a day that does not exist in the chosen calendar, e.g.
// 1582-10-10).
func NewDate(year, month, day int) (Date, error) {
	if month < 1 || month > 12 {
		return Date{}, errors.Wrapf(ErrInvalidDate, "month %d out of range", month)
	}
	if day < 1 {
		return Date{}, errors.Wrapf(ErrInvalidDate, "day %d out of range", day)
	}
	cal := calendarForDate(year, month, day)
	if year == 1582 && month == 10 && day >= 5 && day < 15 {
		return Date{}, errors.Wrapf(ErrInvalidDate, "%04d-%02d-%02d falls in the Gregorian cutover gap", year, month, day)
	}
	maxDay := 31
	if month == 4 || month == 6 || month == 9 || month == 11 {
		maxDay = 30
	} else if month == 2 {
		if isLeap(cal, year) {
			maxDay = 29
		} else {
			maxDay = 28
		}
	}
	if day > maxDay {
		return Date{}, errors.Wrapf(ErrInvalidDate, "day %d out of range for %04d-%02d", day, year, month)
	}
	return Date{cal: cal, year: year, month: month, day: day}, nil
}

// Calendar returns the calendar the date is expressed in.
func (d Date) Calendar() Calendar { return d.cal }

// Year, Month, Day return the date's components.
func (d Date) Year() int  { return d.year }
func (d Date) Month() int { return d.month }
func (d Date) Day() int   { return d.day }

// julianDayNumber returns the (integer, noon-referenced) Julian Day Number
// of the date, by the closed-form formula of package julian's
// CalendarJulianToJD / CalendarGregorianToJD, adapted to integer
// arithmetic since Date carries no time-of-day.
func (d Date) julianDayNumber() int64 {
	y, m := int64(d.year), int64(d.month)
	if m <= 2 {
		y--
		m += 12
	}
	var b int64
	if d.cal == Gregorian {
		a := floorDiv64(y, 100)
		b = 2 - a + floorDiv64(a, 4)
	}
	return floorDiv64(36525*(y+4716), 100) + int64(floorDiv(int(306*(m+1)), 10)) + b + int64(d.day) - 1524
}

// DaysSinceJ2000 returns the signed number of days between the date and
// 2000-01-01 (Gregorian), with 2000-01-01 itself mapping to 0 (§8).
func (d Date) DaysSinceJ2000() int64 {
	return d.julianDayNumber() - J2000JDN
}

// DateFromDaysSinceJ2000 is the inverse of DaysSinceJ2000: it recovers the
// (calendar, year, month, day) from an integer day offset from J2000, using
// the same partition into proleptic-Julian/Julian/Gregorian ranges that
// package julian's JDToCalendar applies to a floating point JD.
func DateFromDaysSinceJ2000(days int64) Date {
	z := days + J2000JDN
	a := z
	if z >= gregorianCutoverJDN {
		alpha := floorDiv64(z*100-186721625, 3652425)
		a = z + 1 + alpha - floorDiv64(alpha, 4)
	}
	b := a + 1524
	c := floorDiv64(b*100-12210, 36525)
	dd := floorDiv64(36525*c, 100)
	e := floorDiv64((b-dd)*10000, 306001)
	day := int(b-dd) - floorDiv(int(306001*e), 10000)
	var month int
	switch e {
	case 14, 15:
		month = int(e) - 13
	default:
		month = int(e) - 1
	}
	var year int
	switch month {
	case 1, 2:
		year = int(c) - 4715
	default:
		year = int(c) - 4716
	}
	cal := calendarForDate(year, month, day)
	return Date{cal: cal, year: year, month: month, day: day}
}

// String formats the date as ISO 8601, [-]YYYY-MM-DD.
func (d Date) String() string {
	sign := ""
	y := d.year
	if y < 0 {
		sign = "-"
		y = -y
	}
	return fmt.Sprintf("%s%04d-%02d-%02d", sign, y, d.month, d.day)
}

// ParseISODate parses a "[-]YYYY-MM-DD" string, per §4.2.
func ParseISODate(s string) (Date, error) {
	neg := false
	if strings.HasPrefix(s, "-") {
		neg = true
		s = s[1:]
	}
	parts := strings.Split(s, "-")
	if len(parts) != 3 {
		return Date{}, errors.Wrapf(ErrInvalidDate, "malformed ISO date %q", s)
	}
	y, err := strconv.Atoi(parts[0])
	if err != nil {
		return Date{}, errors.Wrapf(ErrInvalidDate, "malformed year in %q", s)
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil {
		return Date{}, errors.Wrapf(ErrInvalidDate, "malformed month in %q", s)
	}
	day, err := strconv.Atoi(parts[2])
	if err != nil {
		return Date{}, errors.Wrapf(ErrInvalidDate, "malformed day in %q", s)
	}
	if neg {
		y = -y
	}
	return NewDate(y, m, day)
}

// IsLeapYear reports whether the date's year is a leap year in the
// calendar that governs the date.
func (d Date) IsLeapYear() bool { return isLeap(d.cal, d.year) }

// DayOfYear returns the 1-based day-of-year number for the date.
func (d Date) DayOfYear() int { return dayOfYear(d.cal, d.year, d.month, d.day) }
