package config_test

import (
	"peaknear-tools/pntools/config"
	"testing"

	"github.com/stretchr/testify/require"
)

func valid() *config.Config {
	return &config.Config{
		CatalogPath: config.DefaultCatalog,
		Latitude:    config.DefaultLatitude,
		Longitude:   config.DefaultLongitude,
		RadiusKm:    config.DefaultRadiusKm,
	}
}

func TestValidate(t *testing.T) {
	require := require.New(t)

	tests := map[string]struct {
		mutate  func(*config.Config)
		wantErr bool
	}{
		"defaults":        {mutate: func(c *config.Config) {}, wantErr: false},
		"zero_radius":     {mutate: func(c *config.Config) { c.RadiusKm = 0 }, wantErr: true},
		"negative_radius": {mutate: func(c *config.Config) { c.RadiusKm = -2.5 }, wantErr: true},
		"bad_latitude":    {mutate: func(c *config.Config) { c.Latitude = 91 }, wantErr: true},
		"bad_longitude":   {mutate: func(c *config.Config) { c.Longitude = -180.5 }, wantErr: true},
		"no_catalog":      {mutate: func(c *config.Config) { c.CatalogPath = "" }, wantErr: true},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			cfg := valid()
			tc.mutate(cfg)

			err := cfg.Validate()
			if tc.wantErr {
				require.Error(err)
			} else {
				require.NoError(err)
			}
		})
	}
}
