// Package config reads the runtime settings from a .env file and the
// environment.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/alexiusacademia/gosteel/internal/compression"
	"github.com/alexiusacademia/gosteel/internal/profile"
	"github.com/joho/godotenv"
	"golang.org/x/time/rate"
)

// Environment variables
const (
	EnvRoot   = "STEELCHECK_ROOT"
	EnvDB     = "STEELCHECK_DB"
	EnvStrict = "STEELCHECK_STRICT_LOOKUP"
	EnvIter   = "STEELCHECK_Q_MAXITER"
	EnvTol    = "STEELCHECK_Q_TOL"
	EnvAddr   = "STEELCHECK_ADDR"
	EnvRate   = "STEELCHECK_RATE"
	EnvBurst  = "STEELCHECK_BURST"
)

// Config holds every setting of the CLI and the HTTP server
type Config struct {
	DatabaseDir  string
	System       profile.System
	StrictLookup bool
	Solver       compression.SolverConfig
	Addr         string
	Rate         rate.Limit // requests per second per client
	Burst        int
}

// Default returns the settings used when nothing is configured
func Default() Config {
	return Config{
		DatabaseDir: "database",
		System:      profile.CIRSOC,
		Solver:      compression.DefaultSolverConfig(),
		Addr:        ":8080",
		Rate:        5,
		Burst:       10,
	}
}

// Load reads the .env files given (or ./.env) when present, then the
// environment. A missing .env file is not an error.
func Load(files ...string) (Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if _, err := os.Stat(f); err != nil {
			continue
		}
		if err := godotenv.Load(f); err != nil {
			return Config{}, fmt.Errorf("load %s: %w", f, err)
		}
	}
	return FromEnv(os.LookupEnv)
}

// FromEnv builds the configuration from a lookup function
func FromEnv(lookup func(string) (string, bool)) (Config, error) {
	c := Default()
	get := func(key string) (string, bool) {
		v, ok := lookup(key)
		v = strings.TrimSpace(v)
		return v, ok && v != ""
	}

	if v, ok := get(EnvRoot); ok {
		c.DatabaseDir = filepath.Join(v, "database")
	}
	if v, ok := get(EnvDB); ok {
		sys, err := profile.ParseSystem(v)
		if err != nil {
			return Config{}, fmt.Errorf("%s: %w", EnvDB, err)
		}
		c.System = sys
	}
	if v, ok := get(EnvStrict); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return Config{}, fmt.Errorf("%s: %w", EnvStrict, err)
		}
		c.StrictLookup = b
	}
	if v, ok := get(EnvIter); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return Config{}, fmt.Errorf("%s: %w", EnvIter, err)
		}
		c.Solver.MaxIter = n
	}
	if v, ok := get(EnvTol); ok {
		x, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return Config{}, fmt.Errorf("%s: %w", EnvTol, err)
		}
		c.Solver.Tol = x
	}
	if err := c.Solver.Validate(); err != nil {
		return Config{}, err
	}
	if v, ok := get(EnvAddr); ok {
		c.Addr = v
	}
	if v, ok := get(EnvRate); ok {
		x, err := strconv.ParseFloat(v, 64)
		if err != nil || x <= 0 {
			return Config{}, fmt.Errorf("%s: want a positive number, got %q", EnvRate, v)
		}
		c.Rate = rate.Limit(x)
	}
	if v, ok := get(EnvBurst); ok {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return Config{}, fmt.Errorf("%s: want a positive integer, got %q", EnvBurst, v)
		}
		c.Burst = n
	}
	return c, nil
}

// Table loads the configured profile table
func (c Config) Table() (*profile.Table, error) {
	t, err := profile.Load(c.DatabaseDir, c.System)
	if err != nil {
		return nil, err
	}
	t.Strict = c.StrictLookup
	return t, nil
}
