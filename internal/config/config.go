// Package config defines service configuration structures and loading hooks.
//
// Conventions:
// - Provide New(ctx) initializer to build a Config with defaults.
// - Loading layers a YAML file, an optional .env file and OLYMPUS_ env vars on top.
// - Validation failures wrap ErrInvalidConfig.
package config

import (
	"context"
	"fmt"
	"strings"
)

// Dedupe unit names accepted by DedupeUnit.
const (
	UnitRegion = "region"
	UnitNOC    = "noc"
)

// Config contains process configuration.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// LogFormat selects the log handler: text or json.
	LogFormat string `koanf:"log_format"`

	// Addr configures the HTTP listen address, e.g. ":8080".
	Addr string `koanf:"addr"`

	// AthleteEventsFile is the path of the per-athlete event CSV.
	AthleteEventsFile string `koanf:"athlete_events_file"`

	// NOCRegionsFile is the path of the NOC to region CSV.
	NOCRegionsFile string `koanf:"noc_regions_file"`

	// HDIFile is the optional wide-format HDI table. Empty disables the economic page.
	HDIFile string `koanf:"hdi_file"`

	// DedupeUnit chooses the unit a team medal is counted once for: region or noc.
	DedupeUnit string `koanf:"dedupe_unit"`

	// MaxTableLimit caps GET /api/v1/medals?limit.
	MaxTableLimit int `koanf:"max_table_limit"`

	// CORSAllowedOrigins is a comma-separated list of allowed origins.
	CORSAllowedOrigins string `koanf:"cors_allowed_origins"`
}

// New creates a Config with defaults.
func New(_ context.Context) *Config {
	return &Config{
		LogLevel:           "info",
		LogFormat:          "text",
		Addr:               ":9080",
		AthleteEventsFile:  "data/athlete_events.csv",
		NOCRegionsFile:     "data/noc_regions.csv",
		HDIFile:            "data/hdi.csv",
		DedupeUnit:         UnitRegion,
		MaxTableLimit:      250,
		CORSAllowedOrigins: "*",
	}
}

// Origins splits CORSAllowedOrigins into trimmed, non-empty entries.
func (c *Config) Origins() []string {
	var out []string
	for _, o := range strings.Split(c.CORSAllowedOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	return out
}

// Validate checks the loaded values.
func (c *Config) Validate() error {
	if c.Addr == "" {
		return fmt.Errorf("%w: addr must not be empty", ErrInvalidConfig)
	}
	if c.AthleteEventsFile == "" || c.NOCRegionsFile == "" {
		return fmt.Errorf("%w: athlete_events_file and noc_regions_file are required", ErrInvalidConfig)
	}
	switch strings.ToLower(c.DedupeUnit) {
	case UnitRegion, UnitNOC:
		c.DedupeUnit = strings.ToLower(c.DedupeUnit)
	default:
		return fmt.Errorf("%w: dedupe_unit %q must be %q or %q", ErrInvalidConfig, c.DedupeUnit, UnitRegion, UnitNOC)
	}
	if c.MaxTableLimit <= 0 {
		return fmt.Errorf("%w: max_table_limit must be positive", ErrInvalidConfig)
	}
	switch strings.ToLower(c.LogFormat) {
	case "", "text", "json":
	default:
		return fmt.Errorf("%w: log_format %q must be text or json", ErrInvalidConfig, c.LogFormat)
	}
	return nil
}
