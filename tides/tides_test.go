// Copyright 2013 Sonia Keys
// License MIT: http://www.opensource.org/licenses/MIT

package tides_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/loxspace/lox/tides"
)

func TestCorrectionsAreBounded(t *testing.T) {
	m := tides.DefaultModel()
	dxp, dyp, dut1 := m.Corrections(0.2, 73.0)

	// Ray-Ponte diurnal/semidiurnal corrections are sub-milliarcsecond in
	// polar motion and sub-millisecond in UT1; a wildly wrong unit
	// conversion would blow well past these bounds.
	assert.Less(t, absFloat(dxp), 0.001)
	assert.Less(t, absFloat(dyp), 0.001)
	assert.Less(t, absFloat(dut1), 0.0001)
}

func TestCorrectionsVaryWithEpoch(t *testing.T) {
	m := tides.DefaultModel()
	dxp1, dyp1, dut11 := m.Corrections(0.2, 73.0)
	dxp2, dyp2, dut12 := m.Corrections(0.2, 73.5)

	assert.False(t, dxp1 == dxp2 && dyp1 == dyp2 && dut11 == dut12)
}

func TestEmptyModelProducesNoCorrection(t *testing.T) {
	m := &tides.Model{}
	dxp, dyp, dut1 := m.Corrections(0.2, 73.0)
	assert.Zero(t, dxp)
	assert.Zero(t, dyp)
	assert.Zero(t, dut1)
}

func absFloat(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
