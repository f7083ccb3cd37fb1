// Copyright 2013 Sonia Keys
// License MIT: http://www.opensource.org/licenses/MIT

// Package units defines the core scalar quantities used throughout lox:
// Angle, Distance, Velocity, Frequency, TimeDelta and its Subsecond
// fractional-second component.
//
// The newtype-per-unit style follows package base in the teacher repository
// (base.Angle, base.RA, base.Time, base.HourAngle): each quantity is a
// distinct Go type so that values cannot be mixed across units by accident,
// and each type exposes explicit FromXxx constructors and Xxx accessors
// rather than an implicit conversion.
package units
