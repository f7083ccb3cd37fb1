// Copyright 2013 Sonia Keys
// License MIT: http://www.opensource.org/licenses/MIT

package trajectory_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loxspace/lox/state"
	"github.com/loxspace/lox/trajectory"
	"github.com/loxspace/lox/units"
)

func sampleStates() ([]float64, []state.Cartesian) {
	times := []float64{0, 60, 120, 180, 240}
	states := make([]state.Cartesian, len(times))
	for i, t := range times {
		states[i] = state.Cartesian{
			X: units.DistanceFromMeters(7000e3 + t*100),
			Y: units.DistanceFromMeters(t * 50),
			Z: units.DistanceFromMeters(0),
			VX: units.VelocityFromMetersPerSecond(100),
			VY: units.VelocityFromMetersPerSecond(50),
			VZ: units.VelocityFromMetersPerSecond(0),
		}
	}
	return times, states
}

func TestCartesianReproducesSamples(t *testing.T) {
	times, states := sampleStates()
	traj, err := trajectory.NewFromCartesian(times, states)
	require.NoError(t, err)

	got, err := traj.At(120)
	require.NoError(t, err)
	assert.InDelta(t, states[2].X.Meters(), got.X.Meters(), 1e-6)
	assert.InDelta(t, states[2].VY.MetersPerSecond(), got.VY.MetersPerSecond(), 1e-6)
}

func TestCartesianInterpolatesBetweenSamples(t *testing.T) {
	times, states := sampleStates()
	traj, err := trajectory.NewFromCartesian(times, states)
	require.NoError(t, err)

	got, err := traj.At(90)
	require.NoError(t, err)
	assert.InDelta(t, 7000e3+90*100, got.X.Meters(), 1.0)
}

func TestAtRejectsOutOfRangeEpoch(t *testing.T) {
	times, states := sampleStates()
	traj, err := trajectory.NewFromCartesian(times, states)
	require.NoError(t, err)

	_, err = traj.At(-1)
	var outOfRange *trajectory.EpochOutOfRange
	require.ErrorAs(t, err, &outOfRange)
	assert.Equal(t, 0.0, outOfRange.Start)
	assert.Equal(t, 240.0, outOfRange.End)
	assert.Equal(t, -1.0, outOfRange.Requested)

	_, err = traj.At(240)
	require.ErrorAs(t, err, &outOfRange)

	_, err = traj.Channel("mass-unattached", 300)
	assert.ErrorIs(t, err, trajectory.ErrUnknownChannel)
}

func TestAttachedChannelIsQueryable(t *testing.T) {
	times, states := sampleStates()
	traj, err := trajectory.NewFromCartesian(times, states)
	require.NoError(t, err)

	mass := []float64{1000, 995, 990, 985, 980}
	require.NoError(t, traj.AttachChannel("mass", mass))

	v, err := traj.Channel("mass", 120)
	require.NoError(t, err)
	assert.InDelta(t, 990, v, 1e-6)
}

func TestUnknownChannelFails(t *testing.T) {
	times, states := sampleStates()
	traj, err := trajectory.NewFromCartesian(times, states)
	require.NoError(t, err)

	_, err = traj.Channel("nonexistent", 0)
	assert.ErrorIs(t, err, trajectory.ErrUnknownChannel)
}

func TestMismatchedLengthsRejected(t *testing.T) {
	times, states := sampleStates()
	_, err := trajectory.NewFromCartesian(times[:3], states)
	assert.Error(t, err)
}
