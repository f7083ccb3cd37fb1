// Copyright 2013 Sonia Keys
// License MIT: http://www.opensource.org/licenses/MIT

// Package frames implements the reference-frame rotation graph: ICRF,
// CIRF, TIRF, ITRF and IAU body-fixed frames, per §4.10. The individual
// elemental rotations follow the teacher's coord package (single-axis
// sine/cosine rotation applied to a coordinate pair), generalized here
// to full 3x3 direction-cosine matrices acting on Cartesian vectors
// instead of individual angle pairs, the way precess.Precessor composes
// ζ/z/θ angles into a coordinate transform.
package frames

import "math"

// Matrix3 is a 3x3 direction cosine matrix, row-major.
type Matrix3 [3][3]float64

// Identity3 is the identity rotation.
var Identity3 = Matrix3{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}

// Mul returns m*n.
func (m Matrix3) Mul(n Matrix3) Matrix3 {
	var out Matrix3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			var s float64
			for k := 0; k < 3; k++ {
				s += m[i][k] * n[k][j]
			}
			out[i][j] = s
		}
	}
	return out
}

// Transpose returns m's transpose, which for an orthonormal rotation
// matrix is also its inverse.
func (m Matrix3) Transpose() Matrix3 {
	var out Matrix3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			out[j][i] = m[i][j]
		}
	}
	return out
}

// Add returns the elementwise sum m+n, used to combine the per-term
// contributions of a composed rotation's time derivative under the
// product rule.
func (m Matrix3) Add(n Matrix3) Matrix3 {
	var out Matrix3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			out[i][j] = m[i][j] + n[i][j]
		}
	}
	return out
}

// Apply rotates vector v by m.
func (m Matrix3) Apply(v [3]float64) [3]float64 {
	return [3]float64{
		m[0][0]*v[0] + m[0][1]*v[1] + m[0][2]*v[2],
		m[1][0]*v[0] + m[1][1]*v[1] + m[1][2]*v[2],
		m[2][0]*v[0] + m[2][1]*v[1] + m[2][2]*v[2],
	}
}

// RotationX returns the elemental rotation about the X axis by angle
// (radians), passive sense (it rotates the coordinate frame, not the
// vector), following the same sin/cos-pair convention
// as coord.EqToEcl's obliquity rotation.
func RotationX(angle float64) Matrix3 {
	s, c := math.Sincos(angle)
	return Matrix3{
		{1, 0, 0},
		{0, c, s},
		{0, -s, c},
	}
}

// RotationY returns the elemental rotation about the Y axis by angle
// (radians).
func RotationY(angle float64) Matrix3 {
	s, c := math.Sincos(angle)
	return Matrix3{
		{c, 0, -s},
		{0, 1, 0},
		{s, 0, c},
	}
}

// RotationZ returns the elemental rotation about the Z axis by angle
// (radians).
func RotationZ(angle float64) Matrix3 {
	s, c := math.Sincos(angle)
	return Matrix3{
		{c, s, 0},
		{-s, c, 0},
		{0, 0, 1},
	}
}

// RotationXDot returns the time derivative of RotationX(angle) given
// angle's own time derivative rate (radians/second), per §4.10's
// requirement that each elemental rotation carry its angular-velocity
// contribution for state rotation: d/dt[R] = rate * dR/dangle.
func RotationXDot(angle, rate float64) Matrix3 {
	s, c := math.Sincos(angle)
	return Matrix3{
		{0, 0, 0},
		{0, -s * rate, c * rate},
		{0, -c * rate, -s * rate},
	}
}

// RotationYDot returns the time derivative of RotationY(angle) given
// angle's own time derivative rate (radians/second).
func RotationYDot(angle, rate float64) Matrix3 {
	s, c := math.Sincos(angle)
	return Matrix3{
		{-s * rate, 0, -c * rate},
		{0, 0, 0},
		{c * rate, 0, -s * rate},
	}
}

// RotationZDot returns the time derivative of RotationZ(angle) given
// angle's own time derivative rate (radians/second).
func RotationZDot(angle, rate float64) Matrix3 {
	s, c := math.Sincos(angle)
	return Matrix3{
		{-s * rate, c * rate, 0},
		{-c * rate, -s * rate, 0},
		{0, 0, 0},
	}
}
