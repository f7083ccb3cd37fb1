// Copyright 2013 Sonia Keys
// License MIT: http://www.opensource.org/licenses/MIT

package calendar_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loxspace/lox/calendar"
)

func TestJ2000IsDayZero(t *testing.T) {
	d, err := calendar.NewDate(2000, 1, 1)
	require.NoError(t, err)
	assert.Equal(t, calendar.Gregorian, d.Calendar())
	assert.Equal(t, int64(0), d.DaysSinceJ2000())
}

func TestDateRoundTripDaysSinceJ2000(t *testing.T) {
	for _, days := range []int64{0, 1, -1, 365, -365, 36525, -36525, 700000, -900000} {
		d := calendar.DateFromDaysSinceJ2000(days)
		assert.Equal(t, days, d.DaysSinceJ2000(), "round trip for day offset %d", days)
	}
}

func TestISODateRoundTrip(t *testing.T) {
	cases := []string{"2000-01-01", "1999-12-31", "0001-01-01", "-0001-06-15", "1582-10-04", "1582-10-15"}
	for _, s := range cases {
		d, err := calendar.ParseISODate(s)
		require.NoError(t, err, s)
		assert.Equal(t, s, d.String())
	}
}

func TestGregorianCutoverGapRejected(t *testing.T) {
	_, err := calendar.NewDate(1582, 10, 10)
	assert.Error(t, err)
}

func TestCalendarSelection(t *testing.T) {
	d, err := calendar.NewDate(1582, 10, 4)
	require.NoError(t, err)
	assert.Equal(t, calendar.Julian, d.Calendar())

	d, err = calendar.NewDate(1582, 10, 15)
	require.NoError(t, err)
	assert.Equal(t, calendar.Gregorian, d.Calendar())

	d, err = calendar.NewDate(0, 6, 1)
	require.NoError(t, err)
	assert.Equal(t, calendar.ProlepticJulian, d.Calendar())
}

func TestInvalidDate(t *testing.T) {
	_, err := calendar.NewDate(2021, 2, 29)
	assert.Error(t, err)
	_, err = calendar.NewDate(2021, 13, 1)
	assert.Error(t, err)
}
