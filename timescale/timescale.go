// Copyright 2013 Sonia Keys
// License MIT: http://www.opensource.org/licenses/MIT

// Package timescale implements the scale-tagged instant type and the
// canonical pairwise offset formulas between TAI, TT, TCG, TCB, TDB and
// UT1, generalizing the teacher's flat base.Time (a single untagged scale,
// implicitly Dynamical/TT, per base/time.go's doc comment) into a family of
// types distinguished at compile time, plus a runtime-tagged variant for
// callers that only know the scale at runtime.
package timescale

import (
	"math"

	"github.com/pkg/errors"

	"github.com/loxspace/lox/calendar"
	"github.com/loxspace/lox/units"
)

// ScaleID names one of the six static time scales, and is also the
// discriminant of DynamicTime.
type ScaleID int

const (
	ScaleTAI ScaleID = iota
	ScaleTT
	ScaleTCG
	ScaleTCB
	ScaleTDB
	ScaleUT1
)

func (s ScaleID) String() string {
	switch s {
	case ScaleTAI:
		return "TAI"
	case ScaleTT:
		return "TT"
	case ScaleTCG:
		return "TCG"
	case ScaleTCB:
		return "TCB"
	case ScaleTDB:
		return "TDB"
	case ScaleUT1:
		return "UT1"
	default:
		return "unknown scale"
	}
}

// scaleTag is implemented by the zero-size marker types below, letting
// Time[S] recover its own runtime ScaleID without storing one.
type scaleTag interface {
	scaleID() ScaleID
}

// TAI, TT, TCG, TCB, TDB and UT1 are zero-size marker types used as the
// type parameter of Time, one per static scale.
type (
	TAI struct{}
	TT  struct{}
	TCG struct{}
	TCB struct{}
	TDB struct{}
	UT1 struct{}
)

func (TAI) scaleID() ScaleID { return ScaleTAI }
func (TT) scaleID() ScaleID  { return ScaleTT }
func (TCG) scaleID() ScaleID { return ScaleTCG }
func (TCB) scaleID() ScaleID { return ScaleTCB }
func (TDB) scaleID() ScaleID { return ScaleTDB }
func (UT1) scaleID() ScaleID { return ScaleUT1 }

// Time is an instant on static scale S, stored as a TimeDelta since the
// J2000 TAI epoch. Ordering is by the underlying delta, per §3.
type Time[S scaleTag] struct {
	delta units.TimeDelta
}

// New builds a Time[S] from a TimeDelta since J2000.
func New[S scaleTag](delta units.TimeDelta) Time[S] {
	return Time[S]{delta: delta}
}

// Delta returns the instant's TimeDelta since J2000 on its own scale.
func (t Time[S]) Delta() units.TimeDelta { return t.delta }

// Scale returns the instant's runtime ScaleID.
func (t Time[S]) Scale() ScaleID {
	var s S
	return s.scaleID()
}

// Compare orders two instants on the same scale by their underlying delta.
func (t Time[S]) Compare(o Time[S]) int { return t.delta.Compare(o.delta) }

// Before reports whether t < o.
func (t Time[S]) Before(o Time[S]) bool { return t.delta.Before(o.delta) }

// After reports whether t > o.
func (t Time[S]) After(o Time[S]) bool { return t.delta.After(o.delta) }

// Add returns t shifted by d, remaining on the same scale.
func (t Time[S]) Add(d units.TimeDelta) Time[S] { return Time[S]{delta: t.delta.Add(d)} }

// Sub returns the TimeDelta between two instants on the same scale.
func (t Time[S]) Sub(o Time[S]) units.TimeDelta { return t.delta.Sub(o.delta) }

// ttMinusTAI is the constant offset between TAI and TT (§4.3).
var ttMinusTAI = units.TimeDeltaFromSecondsF64(32.184)

// TAIToTT converts a TAI instant to TT via the constant 32.184s offset.
func TAIToTT(t Time[TAI]) Time[TT] { return Time[TT]{delta: t.delta.Add(ttMinusTAI)} }

// TTToTAI converts a TT instant to TAI via the constant 32.184s offset.
func TTToTAI(t Time[TT]) Time[TAI] { return Time[TAI]{delta: t.delta.Sub(ttMinusTAI)} }

// epoch1977 is 1977-01-01 TAI expressed as a TimeDelta since J2000, the
// epoch the TT<->TCG and TDB<->TCB scale-rate formulas are referenced to.
var epoch1977 = func() units.TimeDelta {
	d, err := calendar.NewDate(1977, 1, 1)
	if err != nil {
		panic(err)
	}
	return units.TimeDeltaFromSeconds(d.DaysSinceJ2000() * 86400)
}()

// epoch1977TT is epoch1977 expressed on the TT scale (the epoch plus the
// constant TAI-TT offset), the reference point used by the TCG formula.
var epoch1977TT = epoch1977.Add(ttMinusTAI)

// lg is the TT/TCG rate constant of §4.3.
const lg = 6.969290134e-10

// TCGToTT converts TCG to TT: TT = TCG − Lg·(t − epoch1977TT).
func TCGToTT(t Time[TCG]) Time[TT] {
	dt := t.delta.Sub(epoch1977TT).ToF64Seconds()
	tt := t.delta.ToF64Seconds() - lg*dt
	return Time[TT]{delta: units.TimeDeltaFromSecondsF64(tt)}
}

// TTToTCG converts TT to TCG, inverting TCGToTT's linear relation
// exactly: TCG − epoch1977TT = (TT − epoch1977TT)/(1 − Lg), written as
// TT + Lg/(1−Lg)·(TT − epoch1977TT).
func TTToTCG(t Time[TT]) Time[TCG] {
	dt := t.delta.Sub(epoch1977TT).ToF64Seconds()
	tcg := t.delta.ToF64Seconds() + lg/(1-lg)*dt
	return Time[TCG]{delta: units.TimeDeltaFromSecondsF64(tcg)}
}

// lb is the TDB/TCB rate constant of §4.3; tdbTcbConstantOffset is the
// constant term in the TDB<->TCB relation.
const lb = 1.550519768e-8

var tdbTcbConstantOffset = units.TimeDeltaFromSecondsF64(-6.55e-5)

// TCBToTDB converts TCB to TDB: TDB = TCB − Lb·(t − epoch1977) − 6.55e-5s.
func TCBToTDB(t Time[TCB]) Time[TDB] {
	dt := t.delta.Sub(epoch1977).ToF64Seconds()
	tdb := t.delta.ToF64Seconds() - lb*dt
	return Time[TDB]{delta: units.TimeDeltaFromSecondsF64(tdb).Add(tdbTcbConstantOffset)}
}

// TDBToTCB inverts TCBToTDB.
func TDBToTCB(t Time[TDB]) Time[TCB] {
	unshifted := t.delta.Sub(tdbTcbConstantOffset)
	dt := unshifted.Sub(epoch1977).ToF64Seconds()
	tcb := unshifted.ToF64Seconds() + lb/(1-lb)*dt
	return Time[TCB]{delta: units.TimeDeltaFromSecondsF64(tcb)}
}

// periodicK, periodicE and periodicRate are the coefficients of the
// TT<->TDB periodic relativistic term of §4.3:
// TDB − TT ≈ K·sin(g + e·sin g), g = 6.239996 + periodicRate·t.
const (
	periodicK    = 1.657e-3
	periodicE    = 0.01671
	periodicG0   = 6.239996
	periodicRate = 1.99096871e-7
)

func periodicTerm(ttSecondsSinceJ2000 float64) float64 {
	g := periodicG0 + periodicRate*ttSecondsSinceJ2000
	return periodicK * math.Sin(g+periodicE*math.Sin(g))
}

// TTToTDB converts TT to TDB using the periodic relativistic correction.
func TTToTDB(t Time[TT]) Time[TDB] {
	delay := periodicTerm(t.delta.ToF64Seconds())
	return Time[TDB]{delta: t.delta.Add(units.TimeDeltaFromSecondsF64(delay))}
}

// TDBToTT inverts TTToTDB by three fixed-point iterations, per §4.3: since
// the periodic term's argument is itself a function of TT (not TDB), a
// direct algebraic inverse does not exist, so the fixed point
// tt_{n+1} = tdb − K·sin(g(tt_n) + e·sin g(tt_n)) converges to full
// float64 precision in a handful of steps because the term is bounded by K
// ≈ 1.7ms.
func TDBToTT(t Time[TDB]) Time[TT] {
	ttSeconds := t.delta.ToF64Seconds()
	for i := 0; i < 3; i++ {
		ttSeconds = t.delta.ToF64Seconds() - periodicTerm(ttSeconds)
	}
	return Time[TT]{delta: units.TimeDeltaFromSecondsF64(ttSeconds)}
}

// OffsetProvider supplies the TAI<->UT1 offset that cannot be derived from
// a fixed formula, sourced from an interpolated EOP table (§4.7). Any pair
// involving UT1 is routed through this interface rather than a pure
// function, since it may fail when no EOP coverage exists for the instant.
type OffsetProvider interface {
	// UT1MinusTAI returns UT1 − TAI at the given TAI instant.
	UT1MinusTAI(t Time[TAI]) (units.TimeDelta, error)
	// TAIMinusUT1 returns TAI − UT1 at the given UT1 instant, using the
	// UT1 instant as the first guess into the TAI-indexed table and
	// refining with two iterations, per §4.3.
	TAIMinusUT1(t Time[UT1]) (units.TimeDelta, error)
}

// ErrNoOffsetProvider is returned by TAIToUT1, UT1ToTAI and
// Dynamic.Convert when a UT1 pair is requested without a provider.
var ErrNoOffsetProvider = errors.New("timescale: UT1 offset requires an OffsetProvider")

// TAIToUT1 converts TAI to UT1 via provider.
func TAIToUT1(t Time[TAI], provider OffsetProvider) (Time[UT1], error) {
	if provider == nil {
		return Time[UT1]{}, ErrNoOffsetProvider
	}
	d, err := provider.UT1MinusTAI(t)
	if err != nil {
		return Time[UT1]{}, errors.Wrap(err, "timescale: TAI to UT1")
	}
	return Time[UT1]{delta: t.delta.Add(d)}, nil
}

// UT1ToTAI converts UT1 to TAI via provider.
func UT1ToTAI(t Time[UT1], provider OffsetProvider) (Time[TAI], error) {
	if provider == nil {
		return Time[TAI]{}, ErrNoOffsetProvider
	}
	d, err := provider.TAIMinusUT1(t)
	if err != nil {
		return Time[TAI]{}, errors.Wrap(err, "timescale: UT1 to TAI")
	}
	return Time[TAI]{delta: t.delta.Add(d)}, nil
}

// Dynamic is a runtime-tagged instant, used where the scale of a value is
// only known at runtime (e.g. a value read from a file header). It
// dispatches conversions on both the origin and target scale, composing
// through TT as the hub for the inertial scales and TAI as the hub for
// UT1, per §4.3.
type Dynamic struct {
	Scale ScaleID
	Delta units.TimeDelta
}

// DynamicOf adapts a static Time[S] into a Dynamic.
func DynamicOf[S scaleTag](t Time[S]) Dynamic {
	return Dynamic{Scale: t.Scale(), Delta: t.delta}
}

// toTAI converts a Dynamic to a TAI instant, using UT1 conversion via
// provider only when required.
func (d Dynamic) toTAI(provider OffsetProvider) (Time[TAI], error) {
	switch d.Scale {
	case ScaleTAI:
		return Time[TAI]{delta: d.Delta}, nil
	case ScaleTT:
		return TTToTAI(Time[TT]{delta: d.Delta}), nil
	case ScaleTCG:
		return TTToTAI(TCGToTT(Time[TCG]{delta: d.Delta})), nil
	case ScaleTCB:
		return TTToTAI(TDBToTT(TCBToTDB(Time[TCB]{delta: d.Delta}))), nil
	case ScaleTDB:
		return TTToTAI(TDBToTT(Time[TDB]{delta: d.Delta})), nil
	case ScaleUT1:
		return UT1ToTAI(Time[UT1]{delta: d.Delta}, provider)
	default:
		return Time[TAI]{}, errors.Errorf("timescale: unknown scale %v", d.Scale)
	}
}

// fromTAI converts a TAI instant into target, hub-routed from TAI.
func fromTAI(tai Time[TAI], target ScaleID, provider OffsetProvider) (Dynamic, error) {
	switch target {
	case ScaleTAI:
		return Dynamic{Scale: ScaleTAI, Delta: tai.delta}, nil
	case ScaleTT:
		return DynamicOf(TAIToTT(tai)), nil
	case ScaleTCG:
		return DynamicOf(TTToTCG(TAIToTT(tai))), nil
	case ScaleTCB:
		return DynamicOf(TDBToTCB(TTToTDB(TAIToTT(tai)))), nil
	case ScaleTDB:
		return DynamicOf(TTToTDB(TAIToTT(tai))), nil
	case ScaleUT1:
		t, err := TAIToUT1(tai, provider)
		if err != nil {
			return Dynamic{}, err
		}
		return DynamicOf(t), nil
	default:
		return Dynamic{}, errors.Errorf("timescale: unknown scale %v", target)
	}
}

// Convert converts d to target, composing through TT/TAI as needed.
// provider may be nil if neither d's scale nor target is UT1.
func (d Dynamic) Convert(target ScaleID, provider OffsetProvider) (Dynamic, error) {
	if d.Scale == target {
		return d, nil
	}
	tai, err := d.toTAI(provider)
	if err != nil {
		return Dynamic{}, err
	}
	return fromTAI(tai, target, provider)
}
