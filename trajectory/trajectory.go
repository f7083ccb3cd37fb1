// Copyright 2013 Sonia Keys
// License MIT: http://www.opensource.org/licenses/MIT

// Package trajectory stores a multi-channel state history as a set of
// interp.Series sharing one interp.Axis, per §4.12 and §9's "splines
// share their time-index vector by reference-counted handle because the
// same index is replicated across six or more channels."
package trajectory

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/loxspace/lox/interp"
	"github.com/loxspace/lox/state"
	"github.com/loxspace/lox/units"
)

// ErrUnknownChannel is returned when a named scalar channel was never
// attached.
var ErrUnknownChannel = errors.New("trajectory: unknown channel")

// EpochOutOfRange reports a query time outside a Trajectory's valid
// half-open domain [Start, End), per §4.12. Start and End are the
// trajectory's first and last sample times since epoch; Requested is
// the time that was rejected.
type EpochOutOfRange struct {
	Start, End, Requested float64
}

func (e *EpochOutOfRange) Error() string {
	return fmt.Sprintf("trajectory: time %g outside valid range [%g, %g)", e.Requested, e.Start, e.End)
}

// cartesianChannels is the canonical order of the six Cartesian state
// channels a Trajectory always carries.
var cartesianChannels = [6]string{"x", "y", "z", "vx", "vy", "vz"}

// Trajectory is a time-origin epoch plus N value splines over one
// shared interp.Axis: the six Cartesian position/velocity channels, and
// any number of additional named scalar channels (e.g. mass, a tracked
// attitude angle).
type Trajectory struct {
	axis     *interp.Axis
	channels map[string]*interp.Series
}

// NewFromCartesian builds a Trajectory from a time series of Cartesian
// states, building a not-a-knot cubic spline (or linear, under 4
// samples) for each of the six Cartesian channels over one shared axis.
func NewFromCartesian(timesSinceEpoch []float64, states []state.Cartesian) (*Trajectory, error) {
	if len(timesSinceEpoch) != len(states) {
		return nil, errors.New("trajectory: times and states must have the same length")
	}
	axis, err := interp.NewAxis(timesSinceEpoch)
	if err != nil {
		return nil, errors.Wrap(err, "trajectory: time axis")
	}

	n := len(states)
	columns := map[string][]float64{
		"x": make([]float64, n), "y": make([]float64, n), "z": make([]float64, n),
		"vx": make([]float64, n), "vy": make([]float64, n), "vz": make([]float64, n),
	}
	for i, s := range states {
		columns["x"][i] = s.X.Meters()
		columns["y"][i] = s.Y.Meters()
		columns["z"][i] = s.Z.Meters()
		columns["vx"][i] = s.VX.MetersPerSecond()
		columns["vy"][i] = s.VY.MetersPerSecond()
		columns["vz"][i] = s.VZ.MetersPerSecond()
	}

	t := &Trajectory{axis: axis, channels: make(map[string]*interp.Series, 6)}
	for _, name := range cartesianChannels {
		series, err := buildSeries(axis, columns[name])
		if err != nil {
			return nil, errors.Wrapf(err, "trajectory: channel %q", name)
		}
		t.channels[name] = series
	}
	return t, nil
}

func buildSeries(axis *interp.Axis, y []float64) (*interp.Series, error) {
	if axis.Len() >= 4 {
		return interp.NewCubic(axis, y)
	}
	return interp.NewLinear(axis, y)
}

// Axis returns the trajectory's shared time index.
func (t *Trajectory) Axis() *interp.Axis { return t.axis }

// AttachChannel adds a named scalar channel sharing the trajectory's
// axis, for quantities beyond the six Cartesian ones (mass, an attitude
// angle, a tracked scalar parameter).
func (t *Trajectory) AttachChannel(name string, y []float64) error {
	series, err := buildSeries(t.axis, y)
	if err != nil {
		return errors.Wrapf(err, "trajectory: attaching channel %q", name)
	}
	t.channels[name] = series
	return nil
}

// checkRange rejects tSinceEpoch outside the trajectory's half-open
// domain [Start, End), per §4.12, rather than letting the underlying
// interp.Series silently extrapolate (the behavior interp.Series.
// Interpolate itself documents and keeps, per §4.5, for callers that
// want it directly).
func (t *Trajectory) checkRange(tSinceEpoch float64) error {
	start := t.axis.At(0)
	end := t.axis.At(t.axis.Len() - 1)
	if tSinceEpoch < start || tSinceEpoch >= end {
		return &EpochOutOfRange{Start: start, End: end, Requested: tSinceEpoch}
	}
	return nil
}

// At returns the interpolated Cartesian state at time tSinceEpoch, or an
// *EpochOutOfRange error if tSinceEpoch falls outside the trajectory's
// valid domain.
func (t *Trajectory) At(tSinceEpoch float64) (state.Cartesian, error) {
	if err := t.checkRange(tSinceEpoch); err != nil {
		return state.Cartesian{}, err
	}
	return state.Cartesian{
		X: units.DistanceFromMeters(t.channels["x"].Interpolate(tSinceEpoch)),
		Y: units.DistanceFromMeters(t.channels["y"].Interpolate(tSinceEpoch)),
		Z: units.DistanceFromMeters(t.channels["z"].Interpolate(tSinceEpoch)),

		VX: units.VelocityFromMetersPerSecond(t.channels["vx"].Interpolate(tSinceEpoch)),
		VY: units.VelocityFromMetersPerSecond(t.channels["vy"].Interpolate(tSinceEpoch)),
		VZ: units.VelocityFromMetersPerSecond(t.channels["vz"].Interpolate(tSinceEpoch)),
	}, nil
}

// Channel returns the interpolated value of a named scalar channel at
// tSinceEpoch. It returns ErrUnknownChannel if the channel was never
// attached, or an *EpochOutOfRange error if tSinceEpoch falls outside
// the trajectory's valid domain.
func (t *Trajectory) Channel(name string, tSinceEpoch float64) (float64, error) {
	series, ok := t.channels[name]
	if !ok {
		return 0, errors.Wrapf(ErrUnknownChannel, "channel %q", name)
	}
	if err := t.checkRange(tSinceEpoch); err != nil {
		return 0, err
	}
	return series.Interpolate(tSinceEpoch), nil
}
