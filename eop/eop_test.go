// Copyright 2013 Sonia Keys
// License MIT: http://www.opensource.org/licenses/MIT

package eop_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loxspace/lox/eop"
	"github.com/loxspace/lox/leapsec"
	"github.com/loxspace/lox/tides"
)

const sampleCSV = `MJD;Year;Month;Day;x_pole;y_pole;UT1-UTC;dPsi;dEpsilon
58849;2020;1;1;0.170;0.320;-0.1776;-0.052;-0.003
58850;2020;1;2;0.171;0.321;-0.1780;-0.051;-0.003
58851;2020;1;3;0.172;0.322;-0.1784;-0.050;-0.004
58852;2020;1;4;0.173;0.323;-0.1788;-0.049;-0.004
58853;2020;1;5;0.174;0.324;-0.1792;-0.048;-0.005
`

func TestParseFinalsCSV(t *testing.T) {
	rows, err := eop.ParseFinalsCSV(strings.NewReader(sampleCSV), leapsec.DefaultTable())
	require.NoError(t, err)
	require.Len(t, rows, 5)
	assert.Equal(t, 58849.0, rows[0].MJD)
	require.NotNil(t, rows[0].XPole)
	assert.InDelta(t, 0.170, *rows[0].XPole, 1e-12)
	require.NotNil(t, rows[0].UT1MinusTAI)
}

func TestParseFinalsCSVRejectsMissingColumn(t *testing.T) {
	_, err := eop.ParseFinalsCSV(strings.NewReader("x_pole;y_pole\n1;2\n"), leapsec.DefaultTable())
	assert.ErrorIs(t, err, eop.ErrMissingRequiredColumn)
}

func TestBuildAndQueryPolarMotion(t *testing.T) {
	rows, err := eop.ParseFinalsCSV(strings.NewReader(sampleCSV), leapsec.DefaultTable())
	require.NoError(t, err)
	p, err := eop.Build(rows, leapsec.DefaultTable(), nil)
	require.NoError(t, err)

	xp, yp, err := p.PolarMotion(rows[2].SecondsSinceJ2000)
	require.NoError(t, err)
	assert.InDelta(t, 0.172, xp, 1e-6)
	assert.InDelta(t, 0.322, yp, 1e-6)
}

func TestPolarMotionExtrapolationWarning(t *testing.T) {
	rows, err := eop.ParseFinalsCSV(strings.NewReader(sampleCSV), leapsec.DefaultTable())
	require.NoError(t, err)
	p, err := eop.Build(rows, leapsec.DefaultTable(), nil)
	require.NoError(t, err)

	beyond := rows[len(rows)-1].SecondsSinceJ2000 + 10*86400
	xp, _, err := p.PolarMotion(beyond)
	require.Error(t, err)
	var warn *eop.ExtrapolationWarning
	require.ErrorAs(t, err, &warn)
	assert.NotZero(t, xp) // value is still usable despite the warning
}

func TestMissingSeriesError(t *testing.T) {
	rows, err := eop.ParseFinalsCSV(strings.NewReader(sampleCSV), leapsec.DefaultTable())
	require.NoError(t, err)
	p, err := eop.Build(rows, leapsec.DefaultTable(), nil)
	require.NoError(t, err)

	_, _, err = p.NutationPrecessionIAU2000(rows[0].SecondsSinceJ2000)
	assert.ErrorIs(t, err, eop.ErrMissingSeries)
}

func TestMergeRowsPrefersFirstNonNil(t *testing.T) {
	rowsA, err := eop.ParseFinalsCSV(strings.NewReader(sampleCSV), leapsec.DefaultTable())
	require.NoError(t, err)
	rowsB, err := eop.ParseFinalsCSV(strings.NewReader(sampleCSV), leapsec.DefaultTable())
	require.NoError(t, err)
	for i := range rowsB {
		dx := 0.5
		rowsB[i].DX = &dx
	}
	merged := eop.MergeRows(rowsA, rowsB)
	require.NotNil(t, merged[0].DPsi) // came from A
	require.NotNil(t, merged[0].DX)   // came from B, A had none
}

func TestLeapSecondDelegation(t *testing.T) {
	rows, err := eop.ParseFinalsCSV(strings.NewReader(sampleCSV), leapsec.DefaultTable())
	require.NoError(t, err)
	p, err := eop.Build(rows, leapsec.DefaultTable(), nil)
	require.NoError(t, err)

	assert.Equal(t, leapsec.DefaultTable().TAIMinusUTC(int64(rows[0].SecondsSinceJ2000)),
		p.TAIMinusUTC(int64(rows[0].SecondsSinceJ2000)))
}

func TestTidalCorrectionIsAddedWhenModelPresent(t *testing.T) {
	rows, err := eop.ParseFinalsCSV(strings.NewReader(sampleCSV), leapsec.DefaultTable())
	require.NoError(t, err)

	plain, err := eop.Build(rows, leapsec.DefaultTable(), nil)
	require.NoError(t, err)
	tidal, err := eop.Build(rows, leapsec.DefaultTable(), tides.DefaultModel())
	require.NoError(t, err)

	t0 := rows[2].SecondsSinceJ2000
	xpPlain, ypPlain, err := plain.PolarMotion(t0)
	require.NoError(t, err)
	xpTidal, ypTidal, err := tidal.PolarMotion(t0)
	require.NoError(t, err)

	assert.False(t, xpPlain == xpTidal && ypPlain == ypTidal)

	ut1Plain, err := plain.DeltaUT1TAI(t0)
	require.NoError(t, err)
	ut1Tidal, err := tidal.DeltaUT1TAI(t0)
	require.NoError(t, err)
	assert.NotEqual(t, ut1Plain, ut1Tidal)
}
