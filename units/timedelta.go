// Copyright 2013 Sonia Keys
// License MIT: http://www.opensource.org/licenses/MIT

package units

import "math"

// TimeDelta is a signed duration represented as whole seconds plus a
// canonical (non-negative, sub-one-second) Subsecond remainder.
//
// The split representation mirrors the teacher repository's approach of
// keeping an exact integer part and a separate fractional part (see
// base.Time, which instead keeps everything in a single float64 -- lox
// needs the extra precision a float64 cannot hold over centuries of
// attosecond-resolution timekeeping, so the representation here follows
// github.com/brandondube/tai's TAI{sec, asec} struct instead).
type TimeDelta struct {
	seconds   int64
	subsecond Subsecond
}

// NewTimeDelta builds a TimeDelta from a (possibly negative or
// non-canonical) seconds count and a signed attosecond remainder,
// normalizing so that the stored Subsecond is always in [0, 1s).
func NewTimeDelta(seconds int64, attoseconds int64) TimeDelta {
	carry := attoseconds / AttosecondsPerSecond
	rem := attoseconds % AttosecondsPerSecond
	if rem < 0 {
		rem += AttosecondsPerSecond
		carry--
	}
	return TimeDelta{seconds: seconds + carry, subsecond: Subsecond(rem)}
}

// TimeDeltaFromSeconds builds a TimeDelta from a whole number of seconds.
func TimeDeltaFromSeconds(seconds int64) TimeDelta {
	return TimeDelta{seconds: seconds}
}

// TimeDeltaFromSecondsF64 converts a float64 number of seconds to a
// TimeDelta, rounding to the nearest attosecond.
func TimeDeltaFromSecondsF64(seconds float64) TimeDelta {
	whole := math.Floor(seconds)
	frac := seconds - whole
	as := int64(math.Round(frac * float64(AttosecondsPerSecond)))
	return NewTimeDelta(int64(whole), as)
}

// Seconds returns the whole-seconds component (the floor of the total
// delta in seconds).
func (d TimeDelta) Seconds() int64 { return d.seconds }

// Subsecond returns the canonical (non-negative) fractional-second part.
func (d TimeDelta) Subsecond() Subsecond { return d.subsecond }

// ToF64Seconds returns the delta as a floating point number of seconds.
// Precision beyond ~15-16 significant digits is lost for large deltas; use
// Seconds/Subsecond directly when exactness matters.
func (d TimeDelta) ToF64Seconds() float64 {
	return float64(d.seconds) + d.subsecond.Float64()
}

// cmpKey returns the (seconds, attoseconds) pair used for exact ordering.
func (d TimeDelta) cmpKey() (int64, int64) {
	return d.seconds, int64(d.subsecond)
}

// Negate returns -d.
func (d TimeDelta) Negate() TimeDelta {
	if d.subsecond == 0 {
		return TimeDelta{seconds: -d.seconds}
	}
	return TimeDelta{seconds: -d.seconds - 1, subsecond: SubsecondFromAttoseconds(AttosecondsPerSecond - int64(d.subsecond))}
}

// Add returns d + o.
func (d TimeDelta) Add(o TimeDelta) TimeDelta {
	return NewTimeDelta(d.seconds+o.seconds, int64(d.subsecond)+int64(o.subsecond))
}

// Sub returns d - o.
func (d TimeDelta) Sub(o TimeDelta) TimeDelta {
	return d.Add(o.Negate())
}

// IsZero reports whether d represents a zero-length delta.
func (d TimeDelta) IsZero() bool { return d.seconds == 0 && d.subsecond == 0 }

// Compare returns -1, 0, or 1 as d is less than, equal to, or greater than
// o, giving TimeDelta (and by extension Time<S>, which embeds one) a total
// order.
func (d TimeDelta) Compare(o TimeDelta) int {
	ds, da := d.cmpKey()
	os, oa := o.cmpKey()
	switch {
	case ds != os:
		if ds < os {
			return -1
		}
		return 1
	case da != oa:
		if da < oa {
			return -1
		}
		return 1
	default:
		return 0
	}
}

// Before reports whether d < o.
func (d TimeDelta) Before(o TimeDelta) bool { return d.Compare(o) < 0 }

// After reports whether d > o.
func (d TimeDelta) After(o TimeDelta) bool { return d.Compare(o) > 0 }

// Equal reports whether d == o.
func (d TimeDelta) Equal(o TimeDelta) bool { return d.Compare(o) == 0 }
