// Copyright 2013 Sonia Keys
// License MIT: http://www.opensource.org/licenses/MIT

package units_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loxspace/lox/units"
)

func TestSubsecondRoundTrip(t *testing.T) {
	cases := []int64{0, 1, 999, 500_000_000_000_000_000, 999_999_999_999_999_999}
	for _, as := range cases {
		s := units.SubsecondFromAttoseconds(as)
		assert.Equal(t, as, s.Attoseconds())
	}
}

func TestSubsecondNegativeWraps(t *testing.T) {
	s := units.SubsecondFromAttoseconds(-1)
	assert.Equal(t, units.AttosecondsPerSecond-1, s.Attoseconds())
}

func TestSubsecondComponents(t *testing.T) {
	s := units.SubsecondFromComponents(123, 456, 789, 1, 2, 3)
	assert.Equal(t, 123, s.Milli())
	assert.Equal(t, 456, s.Micro())
	assert.Equal(t, 789, s.Nano())
	assert.Equal(t, 1, s.Pico())
	assert.Equal(t, 2, s.Femto())
	assert.Equal(t, 3, s.Atto())
}

func TestSubsecondFromDigits(t *testing.T) {
	s, err := units.SubsecondFromDigits("5")
	require.NoError(t, err)
	assert.Equal(t, int64(500_000_000_000_000_000), s.Attoseconds())

	s, err = units.SubsecondFromDigits("123456789012345678")
	require.NoError(t, err)
	assert.Equal(t, int64(123456789012345678), s.Attoseconds())

	_, err = units.SubsecondFromDigits("12a")
	assert.ErrorIs(t, err, units.ErrSubsecondDigits)

	_, err = units.SubsecondFromDigits("1234567890123456789")
	assert.ErrorIs(t, err, units.ErrSubsecondDigits)
}

func TestSubsecondFloat64RoundTrip(t *testing.T) {
	s := units.SubsecondFromFloat64(0.25)
	assert.InDelta(t, 0.25, s.Float64(), 1e-15)
}
