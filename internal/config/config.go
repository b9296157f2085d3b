// Package config loads observer, clock and catalog settings from a TOML
// file, with defaults suitable for running with no file at all.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/midbel/toml"
	"github.com/soniakeys/unit"

	"github.com/litescript/ls-antikythera/internal/catalog"
)

// Config is the full application configuration.
type Config struct {
	Observer ObserverConfig `toml:"observer"`
	Time     TimeConfig     `toml:"time"`
	Catalog  CatalogConfig  `toml:"catalog"`
	Log      LogConfig      `toml:"log"`
}

// ObserverConfig fixes the site on the globe, in degrees. East and north
// are positive.
type ObserverConfig struct {
	LatitudeDeg  float64 `toml:"latitude"`
	LongitudeDeg float64 `toml:"longitude"`
}

// TimeConfig controls the simulated clock.
type TimeConfig struct {
	Start string  `toml:"start"` // RFC 3339; empty means now
	Rate  float64 `toml:"rate"`  // simulated seconds per wall second
}

// CatalogConfig optionally points at external star and planet tables.
// Empty paths select the embedded catalogs.
type CatalogConfig struct {
	Stars   string `toml:"stars"`
	Planets string `toml:"planets"`
}

// LogConfig controls diagnostic output.
type LogConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

// Default returns the built-in configuration: Greenwich, real time,
// embedded catalogs.
func Default() Config {
	return Config{
		Observer: ObserverConfig{LatitudeDeg: 51.4769, LongitudeDeg: 0},
		Time:     TimeConfig{Rate: 1},
		Log:      LogConfig{Level: "info"},
	}
}

// Load reads a TOML file over the defaults and validates the result.
func Load(file string) (Config, error) {
	c := Default()
	if err := toml.DecodeFile(file, &c); err != nil {
		return c, fmt.Errorf("config %s: %w", file, err)
	}
	if err := c.Validate(); err != nil {
		return c, fmt.Errorf("config %s: %w", file, err)
	}
	return c, nil
}

// Validate checks ranges that would silently produce a nonsense sky.
func (c Config) Validate() error {
	if c.Observer.LatitudeDeg < -90 || c.Observer.LatitudeDeg > 90 {
		return fmt.Errorf("latitude %v out of [-90, 90]", c.Observer.LatitudeDeg)
	}
	if c.Observer.LongitudeDeg < -180 || c.Observer.LongitudeDeg > 360 {
		return fmt.Errorf("longitude %v out of range", c.Observer.LongitudeDeg)
	}
	if c.Time.Rate == 0 {
		return fmt.Errorf("time rate must be non-zero")
	}
	if c.Time.Start != "" {
		if _, err := time.Parse(time.RFC3339, c.Time.Start); err != nil {
			return fmt.Errorf("time start: %w", err)
		}
	}
	return nil
}

// LatRad returns the observer latitude in radians.
func (c Config) LatRad() float64 {
	return unit.AngleFromDeg(c.Observer.LatitudeDeg).Rad()
}

// LonRad returns the observer longitude in radians.
func (c Config) LonRad() float64 {
	return unit.AngleFromDeg(c.Observer.LongitudeDeg).Rad()
}

// StartTime resolves the configured start instant. An empty start means the
// current wall clock.
func (c Config) StartTime() time.Time {
	if c.Time.Start == "" {
		return time.Now()
	}
	t, err := time.Parse(time.RFC3339, c.Time.Start)
	if err != nil {
		// Validate catches this for loaded configs.
		return time.Now()
	}
	return t
}

// LoadStars returns the configured star catalog, or the embedded one when no
// path is set.
func (c Config) LoadStars() ([]catalog.Star, error) {
	if c.Catalog.Stars == "" {
		return catalog.DefaultStars(), nil
	}
	f, err := os.Open(c.Catalog.Stars)
	if err != nil {
		return nil, fmt.Errorf("star catalog: %w", err)
	}
	defer f.Close()
	stars, err := catalog.ParseStars(f)
	if err != nil {
		return nil, fmt.Errorf("star catalog %s: %w", c.Catalog.Stars, err)
	}
	return stars, nil
}

// LoadPlanets returns the configured planet table, or the embedded one when
// no path is set.
func (c Config) LoadPlanets() ([]catalog.Planet, error) {
	if c.Catalog.Planets == "" {
		return catalog.DefaultPlanets(), nil
	}
	f, err := os.Open(c.Catalog.Planets)
	if err != nil {
		return nil, fmt.Errorf("planet table: %w", err)
	}
	defer f.Close()
	planets, err := catalog.ParsePlanets(f)
	if err != nil {
		return nil, fmt.Errorf("planet table %s: %w", c.Catalog.Planets, err)
	}
	return planets, nil
}
