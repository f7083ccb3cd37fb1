// Copyright 2013 Sonia Keys
// License MIT: http://www.opensource.org/licenses/MIT

package timescale_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loxspace/lox/timescale"
	"github.com/loxspace/lox/units"
)

func TestTAITTRoundTrip(t *testing.T) {
	tai := timescale.New[timescale.TAI](units.TimeDeltaFromSecondsF64(12345.5))
	tt := timescale.TAIToTT(tai)
	assert.InDelta(t, 32.184, tt.Delta().ToF64Seconds()-tai.Delta().ToF64Seconds(), 1e-12)
	back := timescale.TTToTAI(tt)
	assert.InDelta(t, tai.Delta().ToF64Seconds(), back.Delta().ToF64Seconds(), 1e-12)
}

func TestTCGTTRoundTrip(t *testing.T) {
	tt := timescale.New[timescale.TT](units.TimeDeltaFromSecondsF64(3.0e8))
	tcg := timescale.TTToTCG(tt)
	back := timescale.TCGToTT(tcg)
	assert.InDelta(t, tt.Delta().ToF64Seconds(), back.Delta().ToF64Seconds(), 1e-6)
}

func TestTCBTDBRoundTrip(t *testing.T) {
	tcb := timescale.New[timescale.TCB](units.TimeDeltaFromSecondsF64(-1.5e8))
	tdb := timescale.TCBToTDB(tcb)
	back := timescale.TDBToTCB(tdb)
	assert.InDelta(t, tcb.Delta().ToF64Seconds(), back.Delta().ToF64Seconds(), 1e-6)
}

func TestTTTDBRoundTripConverges(t *testing.T) {
	tt := timescale.New[timescale.TT](units.TimeDeltaFromSecondsF64(7.3e7))
	tdb := timescale.TTToTDB(tt)
	back := timescale.TDBToTT(tdb)
	assert.InDelta(t, tt.Delta().ToF64Seconds(), back.Delta().ToF64Seconds(), 1e-9)
}

func TestTTTDBPeriodicBoundedByK(t *testing.T) {
	tt := timescale.New[timescale.TT](units.TimeDeltaFromSecondsF64(0))
	tdb := timescale.TTToTDB(tt)
	diff := tdb.Delta().ToF64Seconds() - tt.Delta().ToF64Seconds()
	assert.LessOrEqual(t, diff, 1.657e-3+1e-12)
	assert.GreaterOrEqual(t, diff, -1.657e-3-1e-12)
}

type fakeProvider struct {
	ut1MinusTAI units.TimeDelta
}

func (p fakeProvider) UT1MinusTAI(timescale.Time[timescale.TAI]) (units.TimeDelta, error) {
	return p.ut1MinusTAI, nil
}

func (p fakeProvider) TAIMinusUT1(timescale.Time[timescale.UT1]) (units.TimeDelta, error) {
	return p.ut1MinusTAI.Negate(), nil
}

func TestTAIUT1RoundTripViaProvider(t *testing.T) {
	provider := fakeProvider{ut1MinusTAI: units.TimeDeltaFromSecondsF64(-0.2)}
	tai := timescale.New[timescale.TAI](units.TimeDeltaFromSecondsF64(1000))
	ut1, err := timescale.TAIToUT1(tai, provider)
	require.NoError(t, err)
	assert.InDelta(t, 999.8, ut1.Delta().ToF64Seconds(), 1e-12)

	back, err := timescale.UT1ToTAI(ut1, provider)
	require.NoError(t, err)
	assert.InDelta(t, 1000, back.Delta().ToF64Seconds(), 1e-12)
}

func TestTAIUT1WithoutProviderErrors(t *testing.T) {
	tai := timescale.New[timescale.TAI](units.TimeDeltaFromSecondsF64(0))
	_, err := timescale.TAIToUT1(tai, nil)
	assert.ErrorIs(t, err, timescale.ErrNoOffsetProvider)
}

func TestDynamicConvertThroughHub(t *testing.T) {
	tai := timescale.New[timescale.TAI](units.TimeDeltaFromSecondsF64(5000))
	dyn := timescale.DynamicOf(tai)
	converted, err := dyn.Convert(timescale.ScaleTCG, nil)
	require.NoError(t, err)
	assert.Equal(t, timescale.ScaleTCG, converted.Scale)

	roundTrip, err := converted.Convert(timescale.ScaleTAI, nil)
	require.NoError(t, err)
	assert.InDelta(t, 5000, roundTrip.Delta.ToF64Seconds(), 1e-6)
}

func TestDynamicConvertSameScaleIsNoOp(t *testing.T) {
	dyn := timescale.Dynamic{Scale: timescale.ScaleTT, Delta: units.TimeDeltaFromSecondsF64(42)}
	out, err := dyn.Convert(timescale.ScaleTT, nil)
	require.NoError(t, err)
	assert.Equal(t, dyn, out)
}

func ExampleTAIToTT() {
	tai := timescale.New[timescale.TAI](units.TimeDeltaFromSecondsF64(0))
	tt := timescale.TAIToTT(tai)
	fmt.Printf("%.3f\n", tt.Delta().ToF64Seconds())
	// Output:
	// 32.184
}

func ExampleTTToTDB() {
	tt := timescale.New[timescale.TT](units.TimeDeltaFromSecondsF64(0))
	tdb := timescale.TTToTDB(tt)
	fmt.Printf("%.6f\n", tdb.Delta().ToF64Seconds())
	// Output:
	// -0.000073
}
