// Copyright 2013 Sonia Keys
// License MIT: http://www.opensource.org/licenses/MIT

package units

import (
	"math"
	"strings"

	"github.com/pkg/errors"
)

// AttosecondsPerSecond is the number of attoseconds in one SI second.
//
// Subsecond values are always in the half-open range [0, AttosecondsPerSecond).
const AttosecondsPerSecond int64 = 1_000_000_000_000_000_000

// ErrSubsecondDigits is returned when parsing a subsecond digit string that
// contains a non-digit character or more than 18 significant digits.
var ErrSubsecondDigits = errors.New("units: subsecond digit string must contain only digits, and at most 18 of them")

// Subsecond is a fixed-point fraction of a second, stored internally as an
// attosecond count in [0, 1e18).
//
// The teacher repository has no analogue (Meeus works entirely in
// floating-point Julian days); the attosecond-since-zero model here follows
// the TAI type in github.com/brandondube/tai, which also represents
// sub-second time as an integer attosecond count alongside whole seconds.
type Subsecond int64

// Zero is the zero Subsecond.
var Zero = Subsecond(0)

// SubsecondFromAttoseconds constructs a Subsecond from a signed attosecond
// count, wrapping negative inputs into [0, 1e18) the way TimeDelta carries
// a sign into its whole-seconds component.
func SubsecondFromAttoseconds(as int64) Subsecond {
	as %= AttosecondsPerSecond
	if as < 0 {
		as += AttosecondsPerSecond
	}
	return Subsecond(as)
}

// Attoseconds returns the underlying attosecond count, always in
// [0, 1e18).
func (s Subsecond) Attoseconds() int64 { return int64(s) }

// SubsecondFromFloat64 converts a fraction of a second in [0, 1) to a
// Subsecond, rounding to the nearest attosecond.
func SubsecondFromFloat64(f float64) Subsecond {
	return SubsecondFromAttoseconds(int64(math.Round(f * float64(AttosecondsPerSecond))))
}

// Float64 returns the subsecond as a fraction of a second in [0, 1).
func (s Subsecond) Float64() float64 {
	return float64(s) / float64(AttosecondsPerSecond)
}

// components returns the six base-1000 components, most significant first:
// milli, micro, nano, pico, femto, atto.
func (s Subsecond) components() [6]int {
	var c [6]int
	rem := int64(s)
	for i := 5; i >= 0; i-- {
		c[i] = int(rem % 1000)
		rem /= 1000
	}
	return c
}

// Milli, Micro, Nano, Pico, Femto, Atto return the six decimal-aligned
// components of the subsecond, each in [0, 999].
func (s Subsecond) Milli() int { c := s.components(); return c[0] }
func (s Subsecond) Micro() int { c := s.components(); return c[1] }
func (s Subsecond) Nano() int  { c := s.components(); return c[2] }
func (s Subsecond) Pico() int  { c := s.components(); return c[3] }
func (s Subsecond) Femto() int { c := s.components(); return c[4] }
func (s Subsecond) Atto() int  { c := s.components(); return c[5] }

// SubsecondFromComponents builds a Subsecond from its six base-1000
// components. The components are combined without range checks, so an
// out-of-range component carries into the next larger one rather than
// erroring, and the total wraps into [0, 1e18) the way
// SubsecondFromAttoseconds does.
func SubsecondFromComponents(milli, micro, nano, pico, femto, atto int) Subsecond {
	as := int64(milli)*1_000_000_000_000_000 +
		int64(micro)*1_000_000_000_000 +
		int64(nano)*1_000_000_000 +
		int64(pico)*1_000_000 +
		int64(femto)*1_000 +
		int64(atto)
	return SubsecondFromAttoseconds(as)
}

// SubsecondFromDigits parses a decimal fraction-of-a-second digit string
// (the digits that would follow a decimal point) into a Subsecond.
//
// The string is zero-padded on the right to a multiple of three digits (so
// "5" becomes "500000000000000000" attoseconds, i.e. 0.5s) and rejected if
// it contains a non-digit or more than 18 significant digits.
func SubsecondFromDigits(digits string) (Subsecond, error) {
	if len(digits) > 18 {
		return 0, ErrSubsecondDigits
	}
	for _, r := range digits {
		if r < '0' || r > '9' {
			return 0, ErrSubsecondDigits
		}
	}
	padded := digits
	if rem := len(padded) % 3; rem != 0 {
		padded += strings.Repeat("0", 3-rem)
	}
	padded += strings.Repeat("0", 18-len(padded))
	var as int64
	for _, r := range padded {
		as = as*10 + int64(r-'0')
	}
	return Subsecond(as), nil
}

// String renders the subsecond as its 18-digit attosecond fraction, e.g.
// ".123000000000000000".
func (s Subsecond) String() string {
	digits := make([]byte, 18)
	as := int64(s)
	for i := 17; i >= 0; i-- {
		digits[i] = byte('0' + as%10)
		as /= 10
	}
	return "." + string(digits)
}
