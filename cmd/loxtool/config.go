// Copyright 2013 Sonia Keys
// License MIT: http://www.opensource.org/licenses/MIT

package main

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
)

// config holds the settings loxtool reads from a YAML file, per §4.14's
// ambient configuration stack. Every field has a usable zero value so a
// missing -config flag still runs against sane defaults.
type config struct {
	// CentralBodyGMKm3PerS2 is the gravitational parameter used for state
	// conversions, in km^3/s^2. Defaults to Earth's.
	CentralBodyGMKm3PerS2 float64 `yaml:"central_body_gm_km3_per_s2"`
	// LogLevel is one of zerolog's level names: "debug", "info", "warn",
	// "error". Defaults to "info".
	LogLevel string `yaml:"log_level"`
}

const defaultEarthGMKm3PerS2 = 398600.4418

func defaultConfig() config {
	return config{CentralBodyGMKm3PerS2: defaultEarthGMKm3PerS2, LogLevel: "info"}
}

// loadConfig reads and merges a YAML config file over the defaults. A
// missing path is not an error; the caller passes "" to skip loading.
func loadConfig(path string) (config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return config{}, errors.Wrap(err, "loxtool: reading config")
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return config{}, errors.Wrap(err, "loxtool: parsing config")
	}
	return cfg, nil
}
