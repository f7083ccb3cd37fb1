// Copyright 2013 Sonia Keys
// License MIT: http://www.opensource.org/licenses/MIT

package leapsec_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loxspace/lox/calendar"
	"github.com/loxspace/lox/leapsec"
)

func secondsAt(t *testing.T, year, month, day int) int64 {
	t.Helper()
	d, err := calendar.NewDate(year, month, day)
	require.NoError(t, err)
	return d.DaysSinceJ2000() * 86400
}

func TestTAIMinusUTCAtIntroduction(t *testing.T) {
	tbl := leapsec.DefaultTable()
	assert.Equal(t, int64(10), tbl.TAIMinusUTC(secondsAt(t, 1972, 1, 1)))
	assert.Equal(t, int64(0), tbl.TAIMinusUTC(secondsAt(t, 1971, 1, 1)))
}

func TestTAIMinusUTCSteps(t *testing.T) {
	tbl := leapsec.DefaultTable()
	assert.Equal(t, int64(36), tbl.TAIMinusUTC(secondsAt(t, 2015, 7, 1)))
	assert.Equal(t, int64(35), tbl.TAIMinusUTC(secondsAt(t, 2015, 6, 30)))
	assert.Equal(t, int64(37), tbl.TAIMinusUTC(secondsAt(t, 2020, 1, 1)))
}

func TestIsLeapSecondDate(t *testing.T) {
	tbl := leapsec.DefaultTable()
	leapDay, err := calendar.NewDate(2016, 12, 31)
	require.NoError(t, err)
	assert.True(t, tbl.IsLeapSecondDate(leapDay))

	notLeapDay, err := calendar.NewDate(2016, 12, 30)
	require.NoError(t, err)
	assert.False(t, tbl.IsLeapSecondDate(notLeapDay))
}

func TestUTCMinusTAIIsNegativeOfTAIMinusUTC(t *testing.T) {
	tbl := leapsec.DefaultTable()
	tai := secondsAt(t, 2018, 3, 1)
	utcOffset := tbl.UTCMinusTAI(tai)
	taiOffset := tbl.TAIMinusUTC(tai)
	assert.Equal(t, -taiOffset, utcOffset)
}
