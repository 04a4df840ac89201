// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package config handles application-wide settings and environment parsing.

It leverages 'caarlos0/env' to map OS environment variables into a strongly-typed
Go struct, providing early validation and default values.

Usage:

	cfg, err := config.Load()
	if err != nil {
	    log.Fatal(err)
	}

Architecture:

  - Immutability: Once loaded, configuration is read-only.
  - DI-Friendly: Passed to core components (DB, Redis, listing) via constructors.
  - Zero Hidden State: No global variables are used to store config.
*/
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// # Configuration Schema

// Config holds all runtime configuration for the Elog API server.
type Config struct {

	// Server settings
	ServerPort  string `env:"SERVER_PORT"  envDefault:"8080"`
	Environment string `env:"ENVIRONMENT"  envDefault:"development"`
	Debug       bool   `env:"DEBUG"        envDefault:"false"`

	// Relational Database (PostgreSQL or SQLite)
	DatabaseDriver string `env:"DATABASE_DRIVER" envDefault:"postgres"`
	DatabaseURL    string `env:"DATABASE_URL,required,notEmpty"`

	// Key-Value Cache (Redis). Empty disables the term cache.
	RedisURL     string        `env:"REDIS_URL"`
	TermCacheTTL time.Duration `env:"TERM_CACHE_TTL" envDefault:"10m"`

	// Logbook listing behaviour
	Listing Listing `envPrefix:"ELOG_"`

	// Cross-Origin Resource Sharing
	ExtraOrigins []string `env:"EXTRA_ORIGINS" envSeparator:","`
}

// Listing holds the defaults applied to every entry filter.
type Listing struct {
	// QueryStrategy selects the executor: "sql" excludes strictly, "entity" leniently.
	QueryStrategy string `env:"QUERY_STRATEGY" envDefault:"sql"`

	// DateColumn is the entry date used for filtering and sorting: "created" or "changed".
	DateColumn string `env:"DATE_COLUMN" envDefault:"created"`

	DefaultDays    int    `env:"DEFAULT_DAYS"     envDefault:"30"`
	EntriesPerPage int    `env:"ENTRIES_PER_PAGE" envDefault:"100"`
	GroupBy        string `env:"GROUP_BY"         envDefault:"SHIFT"`

	// Timezone is an IANA zone name used for "midnight" and shift boundaries.
	Timezone string `env:"TIMEZONE" envDefault:"Local"`
}

// # Configuration Loading

// Load parses environment variables into a [Config] struct.
func Load() (*Config, error) {

	// Initialize an empty config struct
	cfg := &Config{}

	// Use the 'env' package to map environment variables to struct fields.
	// This will fail if any field marked with 'required' is missing.
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config: failed to parse environment variables: %w", err)
	}

	if _, err := cfg.Location(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// IsDevelopment reports whether the server is running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction reports whether the server is running in production mode.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// AllowedOrigins lists the extra CORS origins accepted outside development.
func (c *Config) AllowedOrigins() []string {
	return c.ExtraOrigins
}

// Location resolves the configured listing timezone.
func (c *Config) Location() (*time.Location, error) {
	location, err := time.LoadLocation(c.Listing.Timezone)
	if err != nil {
		return nil, fmt.Errorf("config: invalid ELOG_TIMEZONE %q: %w", c.Listing.Timezone, err)
	}
	return location, nil
}
