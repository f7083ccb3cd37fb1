// Copyright 2013 Sonia Keys
// License MIT: http://www.opensource.org/licenses/MIT

package erot_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/loxspace/lox/erot"
)

func TestEarthRotationAngleKnownEpoch(t *testing.T) {
	// JD = 2400000.5 + 54388.0, days since J2000 (JD 2451545.0) is
	// 2454388.5 - 2451545.0 = 2843.5.
	d := 2843.5
	era := erot.EarthRotationAngle(d)
	assert.InDelta(t, 0.4022837240028158, era.Rad(), 1e-9)
}

func TestEarthRotationAngleIsInRange(t *testing.T) {
	for _, d := range []float64{-10000, -1, 0, 1, 3652.5, 100000} {
		era := erot.EarthRotationAngle(d)
		assert.GreaterOrEqual(t, era.Rad(), 0.0)
		assert.Less(t, era.Rad(), 6.283185307179586+1e-12)
	}
}

func TestGMSTVariantsAreClose(t *testing.T) {
	ut1Days := 3652.5
	ttCenturies := ut1Days / 36525
	m1982 := erot.GMST(erot.IAU1982, ut1Days, ttCenturies)
	m2000 := erot.GMST(erot.IAU2000, ut1Days, ttCenturies)
	m2006 := erot.GMST(erot.IAU2006, ut1Days, ttCenturies)
	// All three theories should agree to within a fraction of an
	// arcsecond near J2000+10yr, since they share the same underlying
	// physical quantity.
	assert.InDelta(t, m1982.Rad(), m2000.Rad(), 1e-4)
	assert.InDelta(t, m2000.Rad(), m2006.Rad(), 1e-6)
}

func TestGASTIncludesEquationOfEquinoxes(t *testing.T) {
	ut1Days := 9131.0
	ttCenturies := ut1Days / 36525
	gmst := erot.GMST(erot.IAU2006, ut1Days, ttCenturies)
	gast := erot.GAST(erot.IAU2006, ut1Days, ttCenturies)
	assert.NotEqual(t, gmst.Rad(), gast.Rad())
	assert.InDelta(t, gmst.Rad(), gast.Rad(), 1e-3) // equation of equinoxes stays within tens of arcseconds
}
