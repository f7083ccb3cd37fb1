// Copyright 2013 Sonia Keys
// License MIT: http://www.opensource.org/licenses/MIT

// Command loxtool is a smoke-test CLI exercising the library's time,
// Earth-orientation and orbital-state packages end to end, wiring the
// module's ambient CLI/config/logging stack per §4.14: stdlib flag for
// argument parsing (no example repository in the retrieval pack reaches
// for a CLI framework), zerolog for structured output, yaml.v2 for an
// optional config file, and a UUID per run to correlate its log lines.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/loxspace/lox/eop"
	"github.com/loxspace/lox/leapsec"
	"github.com/loxspace/lox/state"
	"github.com/loxspace/lox/tides"
	"github.com/loxspace/lox/timescale"
	"github.com/loxspace/lox/units"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	var configPath string
	top := flag.NewFlagSet("loxtool", flag.ContinueOnError)
	top.StringVar(&configPath, "config", "", "path to a YAML config file")
	if err := top.Parse(args); err != nil {
		return 2
	}

	cfg, err := loadConfig(configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		With().Timestamp().Str("run_id", uuid.NewString()).Logger()
	log.Logger = logger

	rest := top.Args()
	if len(rest) == 0 {
		fmt.Fprintln(os.Stderr, "usage: loxtool [-config=file] <kepler|cartesian|time|eop> ...")
		return 2
	}

	switch rest[0] {
	case "kepler":
		return runKepler(rest[1:], cfg)
	case "cartesian":
		return runCartesian(rest[1:], cfg)
	case "time":
		return runTime(rest[1:])
	case "eop":
		return runEOP(rest[1:])
	default:
		fmt.Fprintf(os.Stderr, "loxtool: unknown command %q\n", rest[0])
		return 2
	}
}

// runKepler converts a Cartesian state (position in km, velocity in
// km/s) into classical orbital elements.
func runKepler(args []string, cfg config) int {
	fs := flag.NewFlagSet("kepler", flag.ContinueOnError)
	var x, y, z, vx, vy, vz float64
	fs.Float64Var(&x, "x", 0, "position X, km")
	fs.Float64Var(&y, "y", 0, "position Y, km")
	fs.Float64Var(&z, "z", 0, "position Z, km")
	fs.Float64Var(&vx, "vx", 0, "velocity X, km/s")
	fs.Float64Var(&vy, "vy", 0, "velocity Y, km/s")
	fs.Float64Var(&vz, "vz", 0, "velocity Z, km/s")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	mu := units.GMFromKm3PerS2(cfg.CentralBodyGMKm3PerS2)
	c := state.Cartesian{
		X: units.DistanceFromKm(x), Y: units.DistanceFromKm(y), Z: units.DistanceFromKm(z),
		VX: units.VelocityFromMetersPerSecond(vx * 1e3),
		VY: units.VelocityFromMetersPerSecond(vy * 1e3),
		VZ: units.VelocityFromMetersPerSecond(vz * 1e3),
	}
	k, err := state.ToKeplerian(c, mu)
	if err != nil {
		log.Error().Err(err).Msg("loxtool: kepler conversion failed")
		return 1
	}
	log.Info().
		Stringer("type", k.Type()).
		Float64("a_km", k.SemimajorAxis.Km()).
		Float64("e", k.Eccentricity).
		Float64("i_deg", k.Inclination.Deg()).
		Float64("raan_deg", k.RAAN.Deg()).
		Float64("argp_deg", k.ArgPeriapsis.Deg()).
		Float64("nu_deg", k.TrueAnomaly.Deg()).
		Msg("loxtool: kepler")
	return 0
}

// runCartesian converts classical orbital elements (angles in degrees)
// back into a Cartesian state.
func runCartesian(args []string, cfg config) int {
	fs := flag.NewFlagSet("cartesian", flag.ContinueOnError)
	var a, e, i, raan, argp, nu float64
	fs.Float64Var(&a, "a", 7000, "semimajor axis, km")
	fs.Float64Var(&e, "e", 0, "eccentricity")
	fs.Float64Var(&i, "i", 0, "inclination, deg")
	fs.Float64Var(&raan, "raan", 0, "right ascension of ascending node, deg")
	fs.Float64Var(&argp, "argp", 0, "argument of periapsis, deg")
	fs.Float64Var(&nu, "nu", 0, "true anomaly, deg")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	mu := units.GMFromKm3PerS2(cfg.CentralBodyGMKm3PerS2)
	k := state.Keplerian{
		SemimajorAxis: units.DistanceFromKm(a),
		Eccentricity:  e,
		Inclination:   units.AngleFromDeg(i),
		RAAN:          units.AngleFromDeg(raan),
		ArgPeriapsis:  units.AngleFromDeg(argp),
		TrueAnomaly:   units.AngleFromDeg(nu),
	}
	c, err := state.ToCartesian(k, mu)
	if err != nil {
		log.Error().Err(err).Msg("loxtool: cartesian conversion failed")
		return 1
	}
	log.Info().
		Float64("x_km", c.X.Km()).Float64("y_km", c.Y.Km()).Float64("z_km", c.Z.Km()).
		Float64("vx_kms", c.VX.MetersPerSecond()/1e3).
		Float64("vy_kms", c.VY.MetersPerSecond()/1e3).
		Float64("vz_kms", c.VZ.MetersPerSecond()/1e3).
		Msg("loxtool: cartesian")
	return 0
}

var scaleNames = map[string]timescale.ScaleID{
	"tai": timescale.ScaleTAI,
	"tt":  timescale.ScaleTT,
	"tcg": timescale.ScaleTCG,
	"tcb": timescale.ScaleTCB,
	"tdb": timescale.ScaleTDB,
	"ut1": timescale.ScaleUT1,
}

// runTime converts an instant between the static time scales that don't
// require EOP data. UT1 is accepted as a scale name, but no OffsetProvider
// is supplied here, so a conversion to or from UT1 fails.
func runTime(args []string) int {
	fs := flag.NewFlagSet("time", flag.ContinueOnError)
	var from, to string
	var seconds float64
	fs.StringVar(&from, "from", "tai", "source scale: tai,tt,tcg,tcb,tdb")
	fs.StringVar(&to, "to", "tt", "target scale: tai,tt,tcg,tcb,tdb")
	fs.Float64Var(&seconds, "seconds", 0, "seconds since J2000 on the source scale")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	fromID, ok := scaleNames[strings.ToLower(from)]
	if !ok {
		fmt.Fprintf(os.Stderr, "loxtool: unknown scale %q\n", from)
		return 2
	}
	toID, ok := scaleNames[strings.ToLower(to)]
	if !ok {
		fmt.Fprintf(os.Stderr, "loxtool: unknown scale %q\n", to)
		return 2
	}

	dyn := timescale.Dynamic{Scale: fromID, Delta: units.TimeDeltaFromSecondsF64(seconds)}
	converted, err := dyn.Convert(toID, nil)
	if err != nil {
		log.Error().Err(err).Msg("loxtool: time conversion failed")
		return 1
	}
	log.Info().
		Str("from", from).Str("to", to).
		Float64("seconds", converted.Delta.ToF64Seconds()).
		Msg("loxtool: time")
	return 0
}

// runEOP loads an IERS finals CSV file and reports the interpolated
// polar motion and UT1-TAI offset at a query instant.
func runEOP(args []string) int {
	fs := flag.NewFlagSet("eop", flag.ContinueOnError)
	var path string
	var seconds float64
	fs.StringVar(&path, "finals", "", "path to an IERS finals CSV file")
	fs.Float64Var(&seconds, "seconds", 0, "TAI seconds since J2000 to query")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if path == "" {
		fmt.Fprintln(os.Stderr, "loxtool: -finals is required")
		return 2
	}

	f, err := os.Open(path)
	if err != nil {
		log.Error().Err(err).Msg("loxtool: opening finals file")
		return 1
	}
	defer f.Close()

	leap := leapsec.DefaultTable()
	rows, err := eop.ParseFinalsCSV(f, leap)
	if err != nil {
		log.Error().Err(err).Msg("loxtool: parsing finals file")
		return 1
	}
	provider, err := eop.Build(rows, leap, tides.DefaultModel())
	if err != nil {
		log.Error().Err(err).Msg("loxtool: building EOP provider")
		return 1
	}

	xp, yp, err := provider.PolarMotion(seconds)
	if err != nil {
		log.Warn().Err(err).Msg("loxtool: polar motion extrapolated")
	}
	dut1, err := provider.DeltaUT1TAI(seconds)
	if err != nil {
		log.Warn().Err(err).Msg("loxtool: UT1-TAI extrapolated")
	}
	log.Info().
		Int("rows", len(rows)).
		Float64("xp_arcsec", xp).Float64("yp_arcsec", yp).
		Float64("ut1_minus_tai_sec", dut1).
		Msg("loxtool: eop")
	return 0
}
