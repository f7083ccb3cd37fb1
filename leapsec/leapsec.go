// Copyright 2013 Sonia Keys
// License MIT: http://www.opensource.org/licenses/MIT

// Package leapsec supplies TAI-UTC as a piecewise-constant step function of
// time, along with the date-level predicate that lets a UTC time-of-day
// legally read 23:59:60. Unlike the brandondube-tai package this is
// generalized from (kept in _examples for reference), the table here is an
// immutable value rather than a package-level mutable slice behind a mutex:
// §9 requires no global mutable state after boot, so a table is built once
// (DefaultTable's compiled-in history, or FromLSK from a kernel) and is
// never modified afterwards.
package leapsec

import (
	"sort"

	"github.com/pkg/errors"

	"github.com/loxspace/lox/calendar"
)

// ErrNotALeapSecondDate is returned when a caller asks for the leap-second
// status of a date that never acquired one.
var ErrNotALeapSecondDate = errors.New("leapsec: date is not a leap second date")

// entry is one announced step in TAI-UTC, keyed by the TAI instant
// (seconds since J2000) at which the new value takes effect.
type entry struct {
	effectiveTAISeconds int64
	date                calendar.Date
	taiMinusUTC         int64
}

// Provider supplies TAI−UTC (and its UTC-instant inverse) as of a given
// instant, plus the date-level predicate required to legally construct a
// 23:59:60 UTC time of day.
type Provider interface {
	// TAIMinusUTC returns the whole-second offset TAI−UTC in effect at the
	// given TAI instant (seconds since J2000).
	TAIMinusUTC(taiSecondsSinceJ2000 int64) int64
	// UTCMinusTAI returns the whole-second offset UTC−TAI in effect at the
	// given UTC instant (seconds since J2000, ignoring the leap second
	// itself: during 23:59:60 the offset is that of the day before).
	UTCMinusTAI(utcSecondsSinceJ2000 int64) int64
	// IsLeapSecondDate reports whether date ends in an inserted leap
	// second, i.e. whether 23:59:60 is a legal time of day on it.
	IsLeapSecondDate(date calendar.Date) bool
}

// StaticTable is a compiled-in leap-second table, immutable once built.
type StaticTable struct {
	entries []entry // sorted by effectiveTAISeconds ascending
}

// j2000Seconds converts a calendar date at 00:00:00 to seconds since J2000.
func j2000Seconds(d calendar.Date) int64 {
	return d.DaysSinceJ2000() * 86400
}

// date constructs a Gregorian calendar.Date, panicking on error since the
// table below is built from known-valid constants.
func date(year, month, day int) calendar.Date {
	d, err := calendar.NewDate(year, month, day)
	if err != nil {
		panic(err)
	}
	return d
}

// newStaticTable builds a table from (date, taiMinusUTC) pairs, where
// taiMinusUTC is the value that becomes effective at 00:00:00 TAI on date.
// The leap second itself is inserted into the UTC day immediately before
// date; the new TAI−UTC value takes effect starting that midnight.
func newStaticTable(steps []struct {
	date        calendar.Date
	taiMinusUTC int64
}) *StaticTable {
	entries := make([]entry, len(steps))
	for i, s := range steps {
		entries[i] = entry{
			effectiveTAISeconds: j2000Seconds(s.date),
			date:                s.date,
			taiMinusUTC:         s.taiMinusUTC,
		}
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].effectiveTAISeconds < entries[j].effectiveTAISeconds
	})
	return &StaticTable{entries: entries}
}

// DefaultTable returns the compiled-in leap-second history through the
// IERS Bulletin C announcement current as of this module's release,
// starting at the 1972-01-01 introduction of the leap-second system
// (TAI−UTC = 10s exactly at that epoch).
func DefaultTable() *StaticTable {
	return defaultTable
}

var defaultTable = newStaticTable([]struct {
	date        calendar.Date
	taiMinusUTC int64
}{
	{date(1972, 1, 1), 10},
	{date(1972, 7, 1), 11},
	{date(1973, 1, 1), 12},
	{date(1974, 1, 1), 13},
	{date(1975, 1, 1), 14},
	{date(1976, 1, 1), 15},
	{date(1977, 1, 1), 16},
	{date(1978, 1, 1), 17},
	{date(1979, 1, 1), 18},
	{date(1980, 1, 1), 19},
	{date(1981, 7, 1), 20},
	{date(1982, 7, 1), 21},
	{date(1983, 7, 1), 22},
	{date(1985, 7, 1), 23},
	{date(1988, 1, 1), 24},
	{date(1990, 1, 1), 25},
	{date(1991, 1, 1), 26},
	{date(1992, 7, 1), 27},
	{date(1993, 7, 1), 28},
	{date(1994, 7, 1), 29},
	{date(1996, 1, 1), 30},
	{date(1997, 7, 1), 31},
	{date(1999, 1, 1), 32},
	{date(2006, 1, 1), 33},
	{date(2009, 1, 1), 34},
	{date(2012, 7, 1), 35},
	{date(2015, 7, 1), 36},
	{date(2017, 1, 1), 37},
})

// TAIMinusUTC returns the whole-second TAI−UTC offset in effect at the
// given TAI instant, by finding the last entry whose effective instant is
// at or before it.
func (t *StaticTable) TAIMinusUTC(taiSecondsSinceJ2000 int64) int64 {
	i := sort.Search(len(t.entries), func(i int) bool {
		return t.entries[i].effectiveTAISeconds > taiSecondsSinceJ2000
	})
	if i == 0 {
		return 0
	}
	return t.entries[i-1].taiMinusUTC
}

// UTCMinusTAI returns the whole-second UTC−TAI offset in effect at the
// given UTC instant. Since TAI−UTC steps on a UTC midnight, comparing the
// UTC-seconds axis directly against the table's TAI-keyed transition
// points is valid everywhere except inside the leap second itself, which
// callers identify separately via IsLeapSecondDate.
func (t *StaticTable) UTCMinusTAI(utcSecondsSinceJ2000 int64) int64 {
	i := sort.Search(len(t.entries), func(i int) bool {
		return t.entries[i].effectiveTAISeconds > utcSecondsSinceJ2000
	})
	if i == 0 {
		return 0
	}
	return -t.entries[i-1].taiMinusUTC
}

// IsLeapSecondDate reports whether a positive leap second was inserted at
// the end of date, i.e. whether date's last UTC minute legally runs
// HH:59:60.
func (t *StaticTable) IsLeapSecondDate(d calendar.Date) bool {
	for i := 1; i < len(t.entries); i++ {
		if t.entries[i].taiMinusUTC == t.entries[i-1].taiMinusUTC {
			continue
		}
		// The entry takes effect at 00:00:00 TAI on its date; the leap
		// second that produced the step was inserted on the day before.
		prevDay := calendar.DateFromDaysSinceJ2000(t.entries[i].date.DaysSinceJ2000() - 1)
		if prevDay == d {
			return true
		}
	}
	return false
}

var _ Provider = (*StaticTable)(nil)
