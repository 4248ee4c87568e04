package config

import (
	"errors"
	"flag"

	"github.com/github/go-config"
)

// Default reference location (Celje, Slovenia) and search radius.
const (
	DefaultLatitude  = 46.2194828
	DefaultLongitude = 15.2719759
	DefaultRadiusKm  = 10.0
	DefaultCatalog   = "peaks.json"
)

// Config holds application configuration.
type Config struct {
	CatalogPath string `config:"peaks.json,env=PEAKNEAR_CATALOG"`

	Latitude  float64
	Longitude float64
	RadiusKm  float64
}

// Load parses configuration from flags and the environment and places it
// in a newly allocated Config struct.
func Load() (*Config, error) {
	lat := flag.Float64("lat", DefaultLatitude, "reference latitude in decimal degrees")
	lng := flag.Float64("lng", DefaultLongitude, "reference longitude in decimal degrees")
	radius := flag.Float64("radius", DefaultRadiusKm, "search radius in kilometers")

	flag.Parse()

	cfg := &Config{
		Latitude:  *lat,
		Longitude: *lng,
		RadiusKm:  *radius,
	}

	if err := config.Load(cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate rejects configurations the pipeline must fail fast on.
func (c *Config) Validate() error {
	if c.RadiusKm <= 0 {
		return errors.New("search radius must be greater than zero")
	}
	if c.Latitude < -90 || c.Latitude > 90 {
		return errors.New("reference latitude must be within [-90, 90]")
	}
	if c.Longitude < -180 || c.Longitude > 180 {
		return errors.New("reference longitude must be within [-180, 180]")
	}
	if c.CatalogPath == "" {
		return errors.New("please provide a peak catalog path")
	}

	return nil
}
