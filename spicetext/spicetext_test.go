// Copyright 2013 Sonia Keys
// License MIT: http://www.opensource.org/licenses/MIT

package spicetext_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loxspace/lox/spicetext"
)

const sampleLSK = `KPL/LSK

This text is ignored.

\begintext

Leapseconds file.

\begindata

DELTET/DELTA_T_A = 32.184
DELTET/K = 1.657D-3
DELTET/EB = 1.671D-2
DELTET/M = ( 6.239996D0 1.99096871D-7 )

\begintext

\begindata

DELTET/DELTA_AT = ( 10, @1972-JAN-1
                     11, @1972-JUL-1
                     12, @1973-JAN-1 )

\begintext
`

func TestParseScalarsAndExponents(t *testing.T) {
	k, err := spicetext.Parse(strings.NewReader(sampleLSK))
	require.NoError(t, err)

	v, ok := k["DELTET/DELTA_T_A"]
	require.True(t, ok)
	n, err := v.AsFloat()
	require.NoError(t, err)
	assert.InDelta(t, 32.184, n, 1e-9)

	v, ok = k["DELTET/K"]
	require.True(t, ok)
	n, err = v.AsFloat()
	require.NoError(t, err)
	assert.InDelta(t, 1.657e-3, n, 1e-12)
}

func TestParseArray(t *testing.T) {
	k, err := spicetext.Parse(strings.NewReader(sampleLSK))
	require.NoError(t, err)

	v, ok := k["DELTET/M"]
	require.True(t, ok)
	require.Equal(t, spicetext.NumberArray, v.Kind)
	require.Len(t, v.Nums, 2)
	assert.InDelta(t, 6.239996, v.Nums[0], 1e-9)
	assert.InDelta(t, 1.99096871e-7, v.Nums[1], 1e-15)
}

func TestParseMixedArrayWithTimestamps(t *testing.T) {
	k, err := spicetext.Parse(strings.NewReader(sampleLSK))
	require.NoError(t, err)

	v, ok := k["DELTET/DELTA_AT"]
	require.True(t, ok)
	require.Equal(t, spicetext.NumberArray, v.Kind)
	require.Len(t, v.Nums, 3)
	assert.Equal(t, 10.0, v.Nums[0])
	assert.Equal(t, 12.0, v.Nums[2])
	require.Len(t, v.TimeRaws, 3)
	assert.Equal(t, "1972-JAN-1", v.TimeRaws[0])
}

func TestParseAppendAssignment(t *testing.T) {
	const src = `\begindata
BODY399_NUT_PREC_RA = ( 1.0 2.0 )
BODY399_NUT_PREC_RA += ( 3.0 4.0 )
\begintext
`
	k, err := spicetext.Parse(strings.NewReader(src))
	require.NoError(t, err)
	v := k["BODY399_NUT_PREC_RA"]
	require.Equal(t, spicetext.NumberArray, v.Kind)
	assert.Equal(t, []float64{1.0, 2.0, 3.0, 4.0}, v.Nums)
}

func TestParseQuotedStringWithEscapedQuote(t *testing.T) {
	const src = `\begindata
BODY_NAME = 'Earth''s Moon'
\begintext
`
	k, err := spicetext.Parse(strings.NewReader(src))
	require.NoError(t, err)
	s, err := k["BODY_NAME"].AsString()
	require.NoError(t, err)
	assert.Equal(t, "Earth's Moon", s)
}

func TestParseStringArray(t *testing.T) {
	const src = `\begindata
FRAME_NAMES = ( 'J2000' 'IAU_EARTH' 'ITRF93' )
\begintext
`
	k, err := spicetext.Parse(strings.NewReader(src))
	require.NoError(t, err)
	v := k["FRAME_NAMES"]
	require.Equal(t, spicetext.StringArray, v.Kind)
	assert.Equal(t, []string{"J2000", "IAU_EARTH", "ITRF93"}, v.Strs)
}

func TestTextOutsideDataBlockIsIgnored(t *testing.T) {
	const src = `This = not parsed

\begintext
NEITHER = this

\begindata
REAL_KEY = 1.0
`
	k, err := spicetext.Parse(strings.NewReader(src))
	require.NoError(t, err)
	assert.Len(t, k, 1)
	_, ok := k["REAL_KEY"]
	assert.True(t, ok)
}

func TestMalformedArrayIsRejected(t *testing.T) {
	const src = `\begindata
BAD = ( 1.0 2.0
`
	_, err := spicetext.Parse(strings.NewReader(src))
	assert.ErrorIs(t, err, spicetext.ErrMalformedKernel)
}
