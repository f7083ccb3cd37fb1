// Copyright 2013 Sonia Keys
// License MIT: http://www.opensource.org/licenses/MIT

package calendar

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/loxspace/lox/units"
)

// ErrInvalidTimeOfDay is returned when hour/minute/second components are
// out of range.
var ErrInvalidTimeOfDay = errors.New("calendar: invalid time of day")

// TimeOfDay is an hour/minute/second-of-day composed with a Subsecond
// fraction. Second is normally in [0,59]; 60 is permitted only when the
// caller has independently established (e.g. via a leap-second provider's
// date-level predicate) that the calendar date is an announced UTC leap
// second date.
type TimeOfDay struct {
	hour, minute, second int
	sub                  units.Subsecond
}

// NewTimeOfDay validates and constructs a TimeOfDay. allowLeapSecond must
// be true for second==60 to be accepted; callers determine that value by
// consulting a leap-second provider's date-level predicate (§4.4).
func NewTimeOfDay(hour, minute, second int, sub units.Subsecond, allowLeapSecond bool) (TimeOfDay, error) {
	if hour < 0 || hour > 23 {
		return TimeOfDay{}, errors.Wrapf(ErrInvalidTimeOfDay, "hour %d out of range", hour)
	}
	if minute < 0 || minute > 59 {
		return TimeOfDay{}, errors.Wrapf(ErrInvalidTimeOfDay, "minute %d out of range", minute)
	}
	maxSecond := 59
	if allowLeapSecond {
		maxSecond = 60
	}
	if second < 0 || second > maxSecond {
		return TimeOfDay{}, errors.Wrapf(ErrInvalidTimeOfDay, "second %d out of range", second)
	}
	return TimeOfDay{hour: hour, minute: minute, second: second, sub: sub}, nil
}

// Hour, Minute, Second, Subsecond return the components.
func (t TimeOfDay) Hour() int                  { return t.hour }
func (t TimeOfDay) Minute() int                { return t.minute }
func (t TimeOfDay) Second() int                { return t.second }
func (t TimeOfDay) Subsecond() units.Subsecond { return t.sub }

// SecondsSinceMidnight returns the time of day as a fractional number of
// seconds since 00:00:00, correctly counting through a 23:59:60 leap
// second (which contributes 86400 to 86401 seconds of range).
func (t TimeOfDay) SecondsSinceMidnight() float64 {
	return float64(t.hour*3600+t.minute*60+t.second) + t.sub.Float64()
}

// String formats the time of day as HH:MM:SS or HH:MM:SS.ffff if the
// subsecond is non-zero.
func (t TimeOfDay) String() string {
	base := fmt.Sprintf("%02d:%02d:%02d", t.hour, t.minute, t.second)
	if t.sub == 0 {
		return base
	}
	return base + t.sub.String()
}
