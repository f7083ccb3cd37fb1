// Copyright 2013 Sonia Keys
// License MIT: http://www.opensource.org/licenses/MIT

package frames

import (
	"github.com/pkg/errors"

	"github.com/loxspace/lox/bodies"
	"github.com/loxspace/lox/eop"
	"github.com/loxspace/lox/erot"
	"github.com/loxspace/lox/iers"
)

// Kind enumerates the fixed global frames this package knows the
// canonical rotation path between. IAUBody is parameterized by a body
// ID from the bodies catalogue rather than being a single fixed frame.
type Kind int

const (
	ICRF Kind = iota
	CIRF
	TIRF
	ITRF
	IAUBody
)

// Frame identifies a reference frame: one of the fixed celestial/
// terrestrial frames, or the body-fixed frame of the body named by
// BodyID when Kind is IAUBody.
type Frame struct {
	Kind   Kind
	BodyID int
}

// ErrNoPath is returned when origin and target have no rotation defined
// between them by this package's canonical frame graph.
var ErrNoPath = errors.New("frames: no canonical rotation path between frames")

// Epoch carries the time arguments the frame rotations need, all
// measured from J2000: TT centuries (precession/nutation), TDB
// centuries (equation of the equinoxes), and UT1 days (Earth rotation
// angle and GMST).
type Epoch struct {
	TTCenturiesSinceJ2000  float64
	TDBCenturiesSinceJ2000 float64
	UT1DaysSinceJ2000      float64
}

// precessionNutation returns the ICRF->CIRF rotation at e: general
// precession about the pole (IAU 2006 p_A) composed with the nutation
// in longitude/obliquity from iers.Nutation, following the same
// "apply mean obliquity, then nutate" composition coord.EclToEq uses
// for a single coordinate pair, generalized to a full matrix.
func precessionNutation(e Epoch, series iers.Series) Matrix3 {
	pA := iers.GeneralPrecession(e.TTCenturiesSinceJ2000).Rad()
	dPsi, dEps := iers.Nutation(e.TTCenturiesSinceJ2000, series)
	meanEps := iers.MeanObliquity(e.TTCenturiesSinceJ2000).Rad()

	precess := RotationZ(pA)
	nutate := RotationX(-meanEps).Mul(RotationZ(-dPsi.Rad())).Mul(RotationX(meanEps + dEps.Rad()))
	return nutate.Mul(precess)
}

// earthRotation returns the CIRF->TIRF rotation at e: a rotation about
// the Z axis by the Earth Rotation Angle, per §4.9/§4.10.
func earthRotation(e Epoch) Matrix3 {
	era := erot.EarthRotationAngle(e.UT1DaysSinceJ2000)
	return RotationZ(era.Rad())
}

// earthRotationWithRate returns the CIRF->TIRF rotation at e alongside
// its time derivative Ṙ (rad/s), per §4.10.
func earthRotationWithRate(e Epoch) (Matrix3, Matrix3) {
	era := erot.EarthRotationAngle(e.UT1DaysSinceJ2000)
	rate := erot.EarthRotationRate()
	return RotationZ(era.Rad()), RotationZDot(era.Rad(), rate)
}

// polarMotionRotation returns the TIRF->ITRF rotation given polar
// motion components xp, yp (radians).
func polarMotionRotation(xp, yp float64) Matrix3 {
	return RotationY(-xp).Mul(RotationX(-yp))
}

// bodyFixedRotation returns the ICRF->IAUBody rotation from a body's
// pole right ascension/declination/prime-meridian angles, using the
// standard 3-1-3 construction: rotate the pole's right ascension about
// Z, its co-declination about X, then the prime meridian about Z.
func bodyFixedRotation(pole bodies.RotationalElements, ttCenturies, daysSinceJ2000 float64) Matrix3 {
	ra := pole.PoleRightAscension(ttCenturies, daysSinceJ2000).Rad()
	dec := pole.PoleDeclination(ttCenturies, daysSinceJ2000).Rad()
	w := pole.PrimeMeridian(daysSinceJ2000).Rad()

	const halfPi = 1.5707963267948966
	return RotationZ(w).Mul(RotationX(halfPi - dec)).Mul(RotationZ(ra + halfPi))
}

// bodyFixedRotationWithRate returns the ICRF->IAUBody rotation alongside
// its time derivative, dominated by the prime-meridian spin rate (the
// pole's own precession is orders of magnitude slower and is neglected
// here; see DESIGN.md).
func bodyFixedRotationWithRate(pole bodies.RotationalElements, ttCenturies, daysSinceJ2000 float64) (Matrix3, Matrix3) {
	ra := pole.PoleRightAscension(ttCenturies, daysSinceJ2000).Rad()
	dec := pole.PoleDeclination(ttCenturies, daysSinceJ2000).Rad()
	w := pole.PrimeMeridian(daysSinceJ2000).Rad()
	wRate := pole.RotationRate()

	const halfPi = 1.5707963267948966
	decRot := RotationX(halfPi - dec)
	raRot := RotationZ(ra + halfPi)

	r := RotationZ(w).Mul(decRot).Mul(raRot)
	rDot := RotationZDot(w, wRate).Mul(decRot).Mul(raRot)
	return r, rDot
}

// Rotation returns the rotation matrix R such that a vector expressed
// in origin's frame, premultiplied by R, is expressed in target's
// frame, composing along this package's canonical path:
// ICRF <-> CIRF <-> TIRF <-> ITRF, and ICRF <-> IAUBody directly.
// eopProvider supplies polar motion; it and cat may be nil if the
// requested path never needs them (e.g. a pure ICRF<->CIRF query).
func Rotation(origin, target Frame, e Epoch, eopProvider *eop.Provider, cat bodies.Catalogue) (Matrix3, error) {
	if origin == target {
		return Identity3, nil
	}

	originPath, err := pathFromICRF(origin, e, eopProvider, cat)
	if err != nil {
		return Matrix3{}, err
	}
	targetPath, err := pathFromICRF(target, e, eopProvider, cat)
	if err != nil {
		return Matrix3{}, err
	}
	// originPath maps ICRF -> origin; targetPath maps ICRF -> target.
	// origin -> target is targetPath * originPath^T.
	return targetPath.Mul(originPath.Transpose()), nil
}

// RotationWithRate returns the same rotation Rotation does plus its
// time derivative Ṙ (rad/s), per §4.10's "position rotates by R;
// velocity by R·v + Ṙ·r": Ṙ is dominated by each path's fastest-varying
// angle (Earth Rotation Angle for TIRF/ITRF, the body's prime-meridian
// spin for IAUBody) since precession, nutation and polar motion vary
// orders of magnitude more slowly over a state's propagation timescale;
// see DESIGN.md. state.Rotate applies the result to a state.Cartesian.
func RotationWithRate(origin, target Frame, e Epoch, eopProvider *eop.Provider, cat bodies.Catalogue) (r, rDot Matrix3, err error) {
	if origin == target {
		return Identity3, Matrix3{}, nil
	}

	originR, originDot, err := pathFromICRFWithRate(origin, e, eopProvider, cat)
	if err != nil {
		return Matrix3{}, Matrix3{}, err
	}
	targetR, targetDot, err := pathFromICRFWithRate(target, e, eopProvider, cat)
	if err != nil {
		return Matrix3{}, Matrix3{}, err
	}
	r = targetR.Mul(originR.Transpose())
	rDot = targetDot.Mul(originR.Transpose()).Add(targetR.Mul(originDot.Transpose()))
	return r, rDot, nil
}

// pathFromICRFWithRate returns the rotation from ICRF to f and its time
// derivative, mirroring pathFromICRF.
func pathFromICRFWithRate(f Frame, e Epoch, eopProvider *eop.Provider, cat bodies.Catalogue) (Matrix3, Matrix3, error) {
	switch f.Kind {
	case ICRF:
		return Identity3, Matrix3{}, nil
	case CIRF:
		return precessionNutation(e, iers.IAU2000B), Matrix3{}, nil
	case TIRF:
		pn := precessionNutation(e, iers.IAU2000B)
		era, eraDot := earthRotationWithRate(e)
		return era.Mul(pn), eraDot.Mul(pn), nil
	case ITRF:
		if eopProvider == nil {
			return Matrix3{}, Matrix3{}, errors.Wrap(ErrNoPath, "ITRF requires an eop.Provider for polar motion")
		}
		xp, yp, err := eopProvider.PolarMotion(e.UT1DaysSinceJ2000 * 86400)
		if err != nil {
			var warn *eop.ExtrapolationWarning
			if !errors.As(err, &warn) {
				return Matrix3{}, Matrix3{}, errors.Wrap(err, "frames: polar motion")
			}
		}
		const asecToRad = 4.84813681109536e-6
		pm := polarMotionRotation(xp*asecToRad, yp*asecToRad)
		pn := precessionNutation(e, iers.IAU2000B)
		era, eraDot := earthRotationWithRate(e)
		return pm.Mul(era).Mul(pn), pm.Mul(eraDot).Mul(pn), nil
	case IAUBody:
		if cat == nil {
			return Matrix3{}, Matrix3{}, errors.Wrap(ErrNoPath, "IAU body frame requires a bodies.Catalogue")
		}
		b, err := cat.Get(f.BodyID)
		if err != nil {
			return Matrix3{}, Matrix3{}, errors.Wrap(err, "frames")
		}
		r, rDot := bodyFixedRotationWithRate(b.Pole, e.TTCenturiesSinceJ2000, e.UT1DaysSinceJ2000)
		return r, rDot, nil
	default:
		return Matrix3{}, Matrix3{}, errors.Wrap(ErrNoPath, "unknown frame kind")
	}
}

// pathFromICRF returns the rotation from ICRF to f.
func pathFromICRF(f Frame, e Epoch, eopProvider *eop.Provider, cat bodies.Catalogue) (Matrix3, error) {
	switch f.Kind {
	case ICRF:
		return Identity3, nil
	case CIRF:
		return precessionNutation(e, iers.IAU2000B), nil
	case TIRF:
		return earthRotation(e).Mul(precessionNutation(e, iers.IAU2000B)), nil
	case ITRF:
		if eopProvider == nil {
			return Matrix3{}, errors.Wrap(ErrNoPath, "ITRF requires an eop.Provider for polar motion")
		}
		xp, yp, err := eopProvider.PolarMotion(e.UT1DaysSinceJ2000 * 86400)
		if err != nil {
			var warn *eop.ExtrapolationWarning
			if !errors.As(err, &warn) {
				return Matrix3{}, errors.Wrap(err, "frames: polar motion")
			}
		}
		const asecToRad = 4.84813681109536e-6
		pm := polarMotionRotation(xp*asecToRad, yp*asecToRad)
		return pm.Mul(earthRotation(e)).Mul(precessionNutation(e, iers.IAU2000B)), nil
	case IAUBody:
		if cat == nil {
			return Matrix3{}, errors.Wrap(ErrNoPath, "IAU body frame requires a bodies.Catalogue")
		}
		b, err := cat.Get(f.BodyID)
		if err != nil {
			return Matrix3{}, errors.Wrap(err, "frames")
		}
		return bodyFixedRotation(b.Pole, e.TTCenturiesSinceJ2000, e.UT1DaysSinceJ2000), nil
	default:
		return Matrix3{}, errors.Wrap(ErrNoPath, "unknown frame kind")
	}
}
