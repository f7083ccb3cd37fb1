// Copyright 2013 Sonia Keys
// License MIT: http://www.opensource.org/licenses/MIT

package leapsec_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loxspace/lox/calendar"
	"github.com/loxspace/lox/leapsec"
)

const sampleLSK = `KPL/LSK

\begindata

DELTET/DELTA_T_A = 32.184
DELTET/K = 1.657D-3
DELTET/EB = 1.671D-2
DELTET/M = ( 6.239996D0 1.99096871D-7 )

DELTET/DELTA_AT = ( 10, @1972-JAN-1
                     11, @1972-JUL-1
                     12, @1973-JAN-1 )

\begintext
`

func TestFromLSKBuildsTable(t *testing.T) {
	table, err := leapsec.FromLSK(strings.NewReader(sampleLSK))
	require.NoError(t, err)

	d, err := calendar.NewDate(1972, 7, 1)
	require.NoError(t, err)
	tai := d.DaysSinceJ2000() * 86400
	assert.Equal(t, int64(11), table.TAIMinusUTC(tai))

	before, err := calendar.NewDate(1972, 6, 30)
	require.NoError(t, err)
	assert.Equal(t, int64(10), table.TAIMinusUTC(before.DaysSinceJ2000()*86400))
}

func TestFromLSKMissingKeyFails(t *testing.T) {
	const noTable = `\begindata
DELTET/DELTA_T_A = 32.184
\begintext
`
	_, err := leapsec.FromLSK(strings.NewReader(noTable))
	assert.Error(t, err)
}

func TestFromLSKRejectsMalformedDate(t *testing.T) {
	const bad = `\begindata
DELTET/DELTA_AT = ( 10, @not-a-date )
\begintext
`
	_, err := leapsec.FromLSK(strings.NewReader(bad))
	assert.Error(t, err)
}
