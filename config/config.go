// Package config loads sysfetch display settings from an optional YAML file
// and the environment. Command-line flags are applied on top by main.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"gopkg.in/yaml.v3"

	"sysfetch/sysinfo"
)

// Environment variables read by Load.
const (
	EnvConfig  = "SYSFETCH_CONFIG"
	EnvDebug   = "SYSFETCH_DEBUG"
	EnvNoColor = "SYSFETCH_NO_COLOR"

	// EnvNoColorStandard is the cross-tool convention from no-color.org.
	EnvNoColorStandard = "NO_COLOR"
)

// DefaultGap is the number of spaces between the logo and the info column.
const DefaultGap = 4

// Config holds display settings.
type Config struct {
	// Gap is the number of spaces between logo and info
	Gap int `yaml:"gap"`

	// Compact selects the small alternative logo
	Compact bool `yaml:"compact"`

	// Debug enables diagnostic logging to stderr
	Debug bool `yaml:"debug"`

	// NoColor strips ANSI color codes from all output
	NoColor bool `yaml:"no_color"`

	// MaxWidth truncates info values to this many columns; 0 disables it
	MaxWidth int `yaml:"max_width"`

	// Fields selects and orders the info lines; empty means all
	Fields []string `yaml:"fields"`
}

// Default returns the settings used when no file is present.
func Default() Config {
	return Config{Gap: DefaultGap}
}

// DefaultPath returns the per-user config file location,
// e.g. ~/.config/sysfetch/config.yaml.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "sysfetch", "config.yaml"), nil
}

// Load reads settings from path, or from $SYSFETCH_CONFIG or DefaultPath
// when path is empty, then applies environment overrides. A missing file
// is only an error when the path was given explicitly.
func Load(path string) (Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = os.Getenv(EnvConfig)
		explicit = path != ""
	}
	if !explicit {
		if p, err := DefaultPath(); err == nil {
			path = p
		}
	}

	if path != "" {
		if err := cfg.readFile(path); err != nil {
			if explicit || !errors.Is(err, os.ErrNotExist) {
				return Config{}, err
			}
		}
	}

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) readFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return nil
}

func (c *Config) applyEnv() {
	if isSet(EnvDebug) {
		c.Debug = true
	}
	if isSet(EnvNoColor) || isSet(EnvNoColorStandard) {
		c.NoColor = true
	}
}

func isSet(name string) bool {
	v := os.Getenv(name)
	return v != "" && v != "0" && v != "false"
}

// Validate rejects negative sizes and unknown field keys.
func (c Config) Validate() error {
	if c.Gap < 0 {
		return fmt.Errorf("gap must not be negative, got %d", c.Gap)
	}
	if c.MaxWidth < 0 {
		return fmt.Errorf("max_width must not be negative, got %d", c.MaxWidth)
	}
	for _, key := range c.Fields {
		if !slices.Contains(sysinfo.FieldKeys, key) {
			return fmt.Errorf("unknown field %q (want one of %v)", key, sysinfo.FieldKeys)
		}
	}
	return nil
}
