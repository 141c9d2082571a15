// Package config reads and writes the nickel CLI configuration file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	DefaultFormat      = "text"
	DefaultHorizonDays = 30
	maxHorizonDays     = 3660
)

// Formats lists the accepted output formats.
var Formats = []string{"text", "json", "yaml", "ics"}

// Config holds user preferences. Command-line flags override every field.
type Config struct {
	Timezone    string `yaml:"timezone,omitempty"`
	Format      string `yaml:"format,omitempty"`
	HorizonDays int    `yaml:"horizon_days,omitempty"`
	Color       *bool  `yaml:"color,omitempty"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		Format:      DefaultFormat,
		HorizonDays: DefaultHorizonDays,
	}
}

// Dir returns the nickel directory under configHome.
func Dir(configHome string) string {
	return filepath.Join(configHome, "nickel")
}

// Path returns the path of config.yaml under configHome.
func Path(configHome string) string {
	return filepath.Join(Dir(configHome), "config.yaml")
}

// DefaultPath returns the config file location, honouring $XDG_CONFIG_HOME.
func DefaultPath() (string, error) {
	home, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("locating config directory: %w", err)
	}
	return Path(home), nil
}

// Read loads the config at path. A missing file yields the defaults; unset
// fields are filled from the defaults.
func Read(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	if cfg.Format == "" {
		cfg.Format = DefaultFormat
	}
	if cfg.HorizonDays == 0 {
		cfg.HorizonDays = DefaultHorizonDays
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Write saves cfg to path, creating the directory if needed.
func Write(path string, cfg *Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate checks field values.
func (c *Config) Validate() error {
	if !slices.Contains(Formats, c.Format) {
		return fmt.Errorf("unknown format %q (valid: %v)", c.Format, Formats)
	}
	if c.HorizonDays < 1 || c.HorizonDays > maxHorizonDays {
		return fmt.Errorf("horizon_days must be between 1 and %d, got %d", maxHorizonDays, c.HorizonDays)
	}
	if _, err := c.Location(); err != nil {
		return err
	}
	return nil
}

// Location resolves Timezone; empty means the local zone.
func (c *Config) Location() (*time.Location, error) {
	if c.Timezone == "" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("unknown timezone %q: %w", c.Timezone, err)
	}
	return loc, nil
}

// Keys lists the settable keys in file order.
var Keys = []string{"timezone", "format", "horizon_days", "color"}

// Get returns the string value of key.
func (c *Config) Get(key string) (string, error) {
	switch key {
	case "timezone":
		return c.Timezone, nil
	case "format":
		return c.Format, nil
	case "horizon_days":
		return strconv.Itoa(c.HorizonDays), nil
	case "color":
		if c.Color == nil {
			return "auto", nil
		}
		return strconv.FormatBool(*c.Color), nil
	}
	return "", fmt.Errorf("unknown key %q (valid: %v)", key, Keys)
}

// Set parses value into key and validates the result.
func (c *Config) Set(key, value string) error {
	next := *c
	switch key {
	case "timezone":
		next.Timezone = value
	case "format":
		next.Format = value
	case "horizon_days":
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("horizon_days: %w", err)
		}
		next.HorizonDays = n
	case "color":
		if value == "auto" {
			next.Color = nil
			break
		}
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("color: %w", err)
		}
		next.Color = &b
	default:
		return fmt.Errorf("unknown key %q (valid: %v)", key, Keys)
	}
	if err := next.Validate(); err != nil {
		return err
	}
	*c = next
	return nil
}
