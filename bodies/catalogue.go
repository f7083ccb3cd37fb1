// Copyright 2013 Sonia Keys
// License MIT: http://www.opensource.org/licenses/MIT

package bodies

import (
	"fmt"
	"io"
	"regexp"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"github.com/loxspace/lox/spicetext"
	"github.com/loxspace/lox/units"
)

// ErrUnknownBody is returned when a catalogue lookup finds no entry for
// the requested ID.
var ErrUnknownBody = errors.New("bodies: unknown body ID")

// Catalogue is a set of Body entries keyed by SPICE-compatible ID.
type Catalogue map[int]Body

// Get returns the Body for id, or ErrUnknownBody.
func (c Catalogue) Get(id int) (Body, error) {
	b, ok := c[id]
	if !ok {
		return Body{}, errors.Wrapf(ErrUnknownBody, "id %d", id)
	}
	return b, nil
}

// SPICE body IDs for the bodies this catalogue ships compiled-in
// defaults for.
const (
	Sun     = 10
	Mercury = 199
	Venus   = 299
	Earth   = 399
	Moon    = 301
	Mars    = 499
	Jupiter = 599
	Saturn  = 699
	Uranus  = 799
	Neptune = 899
)

// DefaultCatalogue returns the compiled-in catalogue: the Sun, the Moon
// and the eight planets, with IAU mean gravitational, ellipsoid and pole
// constants, per §3's "populated from compiled tables (Earth, Sun, Moon,
// the eight planets)."
func DefaultCatalogue() Catalogue {
	c := make(Catalogue, len(defaultBodies))
	for _, b := range defaultBodies {
		c[b.ID] = b
	}
	return c
}

var defaultBodies = []Body{
	{
		ID: Sun, Name: "Sun",
		Mu:               units.GMFromKm3PerS2(132712440018.9),
		EquatorialRadius: units.DistanceFromKm(696000), PolarRadius: units.DistanceFromKm(696000),
		Pole: RotationalElements{ra0: 286.13, dec0: 63.87, pm0: 84.176, pm1: 14.1844000},
	},
	{
		ID: Mercury, Name: "Mercury",
		Mu:               units.GMFromKm3PerS2(22031.86),
		EquatorialRadius: units.DistanceFromKm(2440.53), PolarRadius: units.DistanceFromKm(2438.26),
		Pole: RotationalElements{ra0: 281.0097, ra1: -0.0328, dec0: 61.4143, dec1: -0.0049, pm0: 329.5469, pm1: 6.1385025},
	},
	{
		ID: Venus, Name: "Venus",
		Mu:               units.GMFromKm3PerS2(324858.592),
		EquatorialRadius: units.DistanceFromKm(6051.8), PolarRadius: units.DistanceFromKm(6051.8),
		Pole: RotationalElements{ra0: 272.76, dec0: 67.16, pm0: 160.20, pm1: -1.4813688},
	},
	{
		ID: Earth, Name: "Earth",
		Mu:               units.GMFromKm3PerS2(398600.435436),
		EquatorialRadius: units.DistanceFromKm(6378.1366), PolarRadius: units.DistanceFromKm(6356.7519),
		Pole: RotationalElements{ra0: 0, ra1: -0.641, dec0: 90, dec1: -0.557, pm0: 190.147, pm1: 360.9856235},
	},
	{
		ID: Moon, Name: "Moon",
		Mu:               units.GMFromKm3PerS2(4902.800066),
		EquatorialRadius: units.DistanceFromKm(1737.4), PolarRadius: units.DistanceFromKm(1737.4),
		Pole: RotationalElements{ra0: 269.9949, ra1: 0.0031, dec0: 66.5392, dec1: 0.0130, pm0: 38.3213, pm1: 13.17635815, pm2: -1.4e-12},
	},
	{
		ID: Mars, Name: "Mars",
		Mu:               units.GMFromKm3PerS2(42828.375214),
		EquatorialRadius: units.DistanceFromKm(3396.19), PolarRadius: units.DistanceFromKm(3376.2),
		Pole: RotationalElements{ra0: 317.269202, ra1: -0.10927547, dec0: 54.432516, dec1: -0.05827105, pm0: 176.049863, pm1: 350.891982443297},
	},
	{
		ID: Jupiter, Name: "Jupiter",
		Mu:               units.GMFromKm3PerS2(126712764.8),
		EquatorialRadius: units.DistanceFromKm(71492), PolarRadius: units.DistanceFromKm(66854),
		Pole: RotationalElements{ra0: 268.056595, ra1: -0.006499, dec0: 64.495303, dec1: 0.002413, pm0: 284.95, pm1: 870.5360000},
	},
	{
		ID: Saturn, Name: "Saturn",
		Mu:               units.GMFromKm3PerS2(37940585.2),
		EquatorialRadius: units.DistanceFromKm(60268), PolarRadius: units.DistanceFromKm(54364),
		Pole: RotationalElements{ra0: 40.589, ra1: -0.036, dec0: 83.537, dec1: -0.004, pm0: 38.90, pm1: 810.7939024},
	},
	{
		ID: Uranus, Name: "Uranus",
		Mu:               units.GMFromKm3PerS2(5794548.6),
		EquatorialRadius: units.DistanceFromKm(25559), PolarRadius: units.DistanceFromKm(24973),
		Pole: RotationalElements{ra0: 257.311, dec0: -15.175, pm0: 203.81, pm1: -501.1600928},
	},
	{
		ID: Neptune, Name: "Neptune",
		Mu:               units.GMFromKm3PerS2(6836527.100580396),
		EquatorialRadius: units.DistanceFromKm(24764), PolarRadius: units.DistanceFromKm(24341),
		Pole: RotationalElements{ra0: 299.36, dec0: 43.46, pm0: 253.18, pm1: 536.3128492},
	},
}

// pckKeyPattern recognizes BODY{id}_POLE_RA style keys, extracting the
// numeric body ID and the suffix after it.
var pckKeyPattern = regexp.MustCompile(`^BODY(-?\d+)_(.+)$`)

// LoadPCK parses a SPICE text PCK kernel and returns the Catalogue of
// bodies it describes: for each BODY{id} prefix present, the pole right
// ascension/declination/prime-meridian polynomials and any
// NUT_PREC_{RA,DEC,PM}/NUT_PREC_ANGLES periodic terms, per §4.14.
// Gravitational parameter and radii are not part of the PCK orientation
// block; callers merge the returned Catalogue's Pole field into an
// existing Body (e.g. from DefaultCatalogue) as needed.
func LoadPCK(r io.Reader) (Catalogue, error) {
	k, err := spicetext.Parse(r)
	if err != nil {
		return nil, errors.Wrap(err, "bodies: parsing PCK")
	}

	ids := map[int]bool{}
	for key := range k {
		if m := pckKeyPattern.FindStringSubmatch(key); m != nil {
			var id int
			fmt.Sscanf(m[1], "%d", &id)
			ids[id] = true
		}
	}

	cat := make(Catalogue, len(ids))
	for id := range ids {
		elems, err := poleFromPCK(k, id)
		if err != nil {
			return nil, errors.Wrapf(err, "bodies: BODY%d", id)
		}
		cat[id] = Body{ID: id, Name: pckName(id), Pole: elems}
	}
	log.Debug().Int("bodies", len(cat)).Msg("bodies: loaded PCK catalogue")
	return cat, nil
}

// pckName returns a placeholder name for a body discovered purely from
// its numeric ID; PCK orientation blocks carry no name field of their
// own, so callers that need a human name merge this Catalogue's Pole
// data into an existing named Body (e.g. from DefaultCatalogue).
func pckName(id int) string {
	return fmt.Sprintf("BODY%d", id)
}

func poleFromPCK(k spicetext.Kernel, id int) (RotationalElements, error) {
	ra, err := poly3(k, fmt.Sprintf("BODY%d_POLE_RA", id))
	if err != nil {
		return RotationalElements{}, err
	}
	dec, err := poly3(k, fmt.Sprintf("BODY%d_POLE_DEC", id))
	if err != nil {
		return RotationalElements{}, err
	}
	pm, err := poly3(k, fmt.Sprintf("BODY%d_PM", id))
	if err != nil {
		return RotationalElements{}, err
	}

	var angles []angleTerm
	if v, ok := k[fmt.Sprintf("BODY%d_NUT_PREC_ANGLES", id)]; ok {
		nums, err := v.AsFloats()
		if err != nil {
			return RotationalElements{}, err
		}
		for i := 0; i+1 < len(nums); i += 2 {
			angles = append(angles, angleTerm{constantDeg: nums[i], rateDegPerD: nums[i+1]})
		}
	}

	elems := RotationalElements{
		ra0: ra[0], ra1: ra[1], ra2: ra[2],
		dec0: dec[0], dec1: dec[1], dec2: dec[2],
		pm0: pm[0], pm1: pm[1], pm2: pm[2],
		angles: angles,
	}
	elems.nutRA = optionalFloats(k, fmt.Sprintf("BODY%d_NUT_PREC_RA", id))
	elems.nutDec = optionalFloats(k, fmt.Sprintf("BODY%d_NUT_PREC_DEC", id))
	elems.nutPM = optionalFloats(k, fmt.Sprintf("BODY%d_NUT_PREC_PM", id))
	return elems, nil
}

func poly3(k spicetext.Kernel, key string) ([3]float64, error) {
	v, ok := k[key]
	if !ok {
		return [3]float64{}, errors.Wrapf(ErrUnknownBody, "missing %q", key)
	}
	nums, err := v.AsFloats()
	if err != nil {
		return [3]float64{}, err
	}
	var out [3]float64
	copy(out[:], nums)
	return out, nil
}

func optionalFloats(k spicetext.Kernel, key string) []float64 {
	v, ok := k[key]
	if !ok {
		return nil
	}
	nums, err := v.AsFloats()
	if err != nil {
		return nil
	}
	return nums
}
