// Copyright 2013 Sonia Keys
// License MIT: http://www.opensource.org/licenses/MIT

package eop

import (
	"github.com/pkg/errors"

	"github.com/loxspace/lox/interp"
	"github.com/loxspace/lox/leapsec"
	"github.com/loxspace/lox/tides"
	"github.com/loxspace/lox/timescale"
	"github.com/loxspace/lox/units"
)

// ErrMissingSeries is returned when a correction series was never built
// because the source rows lacked that column.
var ErrMissingSeries = errors.New("eop: series not present in source data")

// ExtrapolationWarning is returned alongside an in-range-looking value
// when a query falls outside the table's covered time span. The caller
// already has the (extrapolated) value in hand; this error exists purely
// so the caller can detect and act on the fact that it was extrapolated,
// per §7's "out-of-range interpolation is a warning modeled as a
// returned value-bearing error" policy.
type ExtrapolationWarning struct {
	RequestedSeconds float64
	RangeLo, RangeHi float64
}

func (w *ExtrapolationWarning) Error() string {
	return "eop: value extrapolated outside table range"
}

// Provider interpolates polar motion, UT1−TAI and nutation/precession
// corrections from a built EOP time index, and delegates the leap-second
// protocol to leap when no LSK-sourced provider overrides it, per §4.7.
type Provider struct {
	axis *interp.Axis

	xPole, yPole *interp.Series
	ut1MinusTAI  *interp.Series

	dPsi, dEpsilon *interp.Series // IAU 1980
	dX, dY         *interp.Series // IAU 2000

	tidal *tides.Model

	leapsec.Provider
}

// Build constructs a Provider from parsed rows (optionally merged via
// MergeRows), building a cubic spline (linear when there are fewer than
// four rows) for polar motion and UT1−TAI and for whichever of the two
// nutation/precession correction pairs have data across every row. tidal may be nil; when given, PolarMotion and
// DeltaUT1TAI add its Ray-Ponte diurnal/semidiurnal correction to the
// spline-interpolated base value, per §4.13.
func Build(rows []Row, leap leapsec.Provider, tidal *tides.Model) (*Provider, error) {
	if len(rows) == 0 {
		return nil, errors.New("eop: no rows to build from")
	}
	times := make([]float64, len(rows))
	xp := make([]float64, len(rows))
	yp := make([]float64, len(rows))
	ut1tai := make([]float64, len(rows))
	dPsi := make([]float64, len(rows))
	dEps := make([]float64, len(rows))
	dX := make([]float64, len(rows))
	dY := make([]float64, len(rows))

	haveXYPole, haveUT1TAI, have1980, have2000 := true, true, true, true
	for i, r := range rows {
		times[i] = r.SecondsSinceJ2000
		xp[i], haveXYPole = orZero(r.XPole, haveXYPole)
		yp[i], haveXYPole = orZero(r.YPole, haveXYPole)
		ut1tai[i], haveUT1TAI = orZero(r.UT1MinusTAI, haveUT1TAI)
		dPsi[i], have1980 = orZero(r.DPsi, have1980)
		dEps[i], have1980 = orZero(r.DEpsilon, have1980)
		dX[i], have2000 = orZero(r.DX, have2000)
		dY[i], have2000 = orZero(r.DY, have2000)
	}

	axis, err := interp.NewAxis(times)
	if err != nil {
		return nil, errors.Wrap(err, "eop: time index")
	}

	p := &Provider{axis: axis, Provider: leap, tidal: tidal}

	if haveXYPole {
		if p.xPole, err = buildSeries(axis, xp); err != nil {
			return nil, errors.Wrap(err, "eop: x_pole")
		}
		if p.yPole, err = buildSeries(axis, yp); err != nil {
			return nil, errors.Wrap(err, "eop: y_pole")
		}
	}
	if haveUT1TAI {
		if p.ut1MinusTAI, err = buildSeries(axis, ut1tai); err != nil {
			return nil, errors.Wrap(err, "eop: UT1-TAI")
		}
	}
	if have1980 {
		if p.dPsi, err = buildSeries(axis, dPsi); err != nil {
			return nil, errors.Wrap(err, "eop: dPsi")
		}
		if p.dEpsilon, err = buildSeries(axis, dEps); err != nil {
			return nil, errors.Wrap(err, "eop: dEpsilon")
		}
	}
	if have2000 {
		if p.dX, err = buildSeries(axis, dX); err != nil {
			return nil, errors.Wrap(err, "eop: dX")
		}
		if p.dY, err = buildSeries(axis, dY); err != nil {
			return nil, errors.Wrap(err, "eop: dY")
		}
	}
	return p, nil
}

// orZero returns (value or 0, stillHave) given a possibly-nil pointer and
// whether the series was still fully present up to this row.
func orZero(v *float64, stillHave bool) (float64, bool) {
	if v == nil {
		return 0, false
	}
	if !stillHave {
		return 0, false
	}
	return *v, true
}

func buildSeries(axis *interp.Axis, y []float64) (*interp.Series, error) {
	if axis.Len() >= 4 {
		return interp.NewCubic(axis, y)
	}
	return interp.NewLinear(axis, y)
}

func (p *Provider) extrapolationCheck(t float64) error {
	lo, hi := p.axis.At(0), p.axis.At(p.axis.Len()-1)
	if t < lo || t > hi {
		return &ExtrapolationWarning{RequestedSeconds: t, RangeLo: lo, RangeHi: hi}
	}
	return nil
}

// ttCenturiesAndUT1Days converts a seconds-since-J2000 query instant into
// the (TT centuries, UT1 days) pair tides.Model.Corrections needs. The
// difference between time scales is at most tens of seconds, negligible
// against the diurnal/semidiurnal periods the tidal model corrects for,
// so t is used directly in both scales rather than routed through a
// timescale conversion.
func ttCenturiesAndUT1Days(t float64) (ttCenturies, ut1Days float64) {
	const secondsPerDay = 86400.0
	const daysPerCentury = 36525.0
	return t / (secondsPerDay * daysPerCentury), t / secondsPerDay
}

// PolarMotion returns (xₚ, yₚ) at t (seconds since J2000), with an
// ExtrapolationWarning if t falls outside the table's span (the value is
// still returned). When the Provider was built with a tidal model, its
// Ray-Ponte correction is added to the spline-interpolated base value.
func (p *Provider) PolarMotion(t float64) (xp, yp float64, err error) {
	if p.xPole == nil || p.yPole == nil {
		return 0, 0, errors.Wrap(ErrMissingSeries, "polar motion")
	}
	xp, yp = p.xPole.Interpolate(t), p.yPole.Interpolate(t)
	if p.tidal != nil {
		ttCenturies, ut1Days := ttCenturiesAndUT1Days(t)
		dxp, dyp, _ := p.tidal.Corrections(ttCenturies, ut1Days)
		xp += dxp
		yp += dyp
	}
	return xp, yp, p.extrapolationCheck(t)
}

// NutationPrecessionIAU1980 returns (δψ, δε) corrections at t, or
// ErrMissingSeries if the source rows never carried these columns.
func (p *Provider) NutationPrecessionIAU1980(t float64) (dPsi, dEpsilon float64, err error) {
	if p.dPsi == nil || p.dEpsilon == nil {
		return 0, 0, errors.Wrap(ErrMissingSeries, "nutation/precession IAU 1980")
	}
	return p.dPsi.Interpolate(t), p.dEpsilon.Interpolate(t), p.extrapolationCheck(t)
}

// NutationPrecessionIAU2000 returns (dX, dY) corrections at t, or
// ErrMissingSeries if the source rows never carried these columns.
func (p *Provider) NutationPrecessionIAU2000(t float64) (dX, dY float64, err error) {
	if p.dX == nil || p.dY == nil {
		return 0, 0, errors.Wrap(ErrMissingSeries, "nutation/precession IAU 2000")
	}
	return p.dX.Interpolate(t), p.dY.Interpolate(t), p.extrapolationCheck(t)
}

// DeltaUT1TAI returns UT1−TAI at TAI instant tTAI (seconds since J2000),
// including the tidal correction when the Provider has a tidal model.
func (p *Provider) DeltaUT1TAI(tTAI float64) (float64, error) {
	if p.ut1MinusTAI == nil {
		return 0, errors.Wrap(ErrMissingSeries, "UT1-TAI")
	}
	v := p.ut1MinusTAI.Interpolate(tTAI)
	if p.tidal != nil {
		ttCenturies, ut1Days := ttCenturiesAndUT1Days(tTAI)
		_, _, dut1 := p.tidal.Corrections(ttCenturies, ut1Days)
		v += dut1
	}
	return v, p.extrapolationCheck(tTAI)
}

// DeltaTAIUT1 returns TAI−UT1 at UT1 instant tUT1 (seconds since J2000),
// using tUT1 as a first guess into the TAI-indexed table and refining
// with two iterations, per §4.3.
func (p *Provider) DeltaTAIUT1(tUT1 float64) (float64, error) {
	if p.ut1MinusTAI == nil {
		return 0, errors.Wrap(ErrMissingSeries, "UT1-TAI")
	}
	guess := tUT1
	var ut1MinusTAI float64
	for i := 0; i < 2; i++ {
		ut1MinusTAI = p.ut1MinusTAI.Interpolate(guess)
		if p.tidal != nil {
			ttCenturies, ut1Days := ttCenturiesAndUT1Days(guess)
			_, _, dut1 := p.tidal.Corrections(ttCenturies, ut1Days)
			ut1MinusTAI += dut1
		}
		guess = tUT1 - ut1MinusTAI
	}
	return -ut1MinusTAI, p.extrapolationCheck(guess)
}

var _ timescale.OffsetProvider = (*offsetAdapter)(nil)

// offsetAdapter adapts Provider's plain-float seconds-since-J2000
// interface to timescale.OffsetProvider's Time[S]-typed one.
type offsetAdapter struct {
	p *Provider
}

// AsOffsetProvider wraps p for use as a timescale.OffsetProvider.
func (p *Provider) AsOffsetProvider() timescale.OffsetProvider {
	return offsetAdapter{p: p}
}

func (a offsetAdapter) UT1MinusTAI(t timescale.Time[timescale.TAI]) (units.TimeDelta, error) {
	d, err := a.p.DeltaUT1TAI(t.Delta().ToF64Seconds())
	return units.TimeDeltaFromSecondsF64(d), err
}

func (a offsetAdapter) TAIMinusUT1(t timescale.Time[timescale.UT1]) (units.TimeDelta, error) {
	d, err := a.p.DeltaTAIUT1(t.Delta().ToF64Seconds())
	return units.TimeDeltaFromSecondsF64(d), err
}
