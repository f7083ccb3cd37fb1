// Copyright 2013 Sonia Keys
// License MIT: http://www.opensource.org/licenses/MIT

package units_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/loxspace/lox/units"
)

func TestTimeDeltaNegateRoundTrip(t *testing.T) {
	cases := []units.TimeDelta{
		units.TimeDeltaFromSeconds(0),
		units.TimeDeltaFromSeconds(1),
		units.TimeDeltaFromSeconds(-1),
		units.NewTimeDelta(5, 250_000_000_000_000_000),
		units.NewTimeDelta(-5, 250_000_000_000_000_000),
	}
	for _, d := range cases {
		zero := d.Negate().Add(d)
		assert.True(t, zero.IsZero(), "expected (-d)+d == 0 for %v, got %v", d, zero)
	}
}

func TestTimeDeltaOrdering(t *testing.T) {
	a := units.TimeDeltaFromSeconds(1)
	b := units.NewTimeDelta(1, 1)
	assert.True(t, a.Before(b))
	assert.True(t, b.After(a))
	assert.True(t, a.Equal(units.TimeDeltaFromSeconds(1)))
}

func TestTimeDeltaFromSecondsF64(t *testing.T) {
	d := units.TimeDeltaFromSecondsF64(32.184)
	assert.Equal(t, int64(32), d.Seconds())
	assert.InDelta(t, 0.184, d.Subsecond().Float64(), 1e-9)
}

func TestTimeDeltaCarryNormalizesSubsecond(t *testing.T) {
	d := units.NewTimeDelta(0, units.AttosecondsPerSecond+5)
	assert.Equal(t, int64(1), d.Seconds())
	assert.Equal(t, int64(5), d.Subsecond().Attoseconds())
}
