// SPDX-License-Identifier: MIT

// Package config loads the TOML configuration of the linalg command.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// EnvVar names the environment variable that points at a config file.
const EnvVar = "LINALG_CONFIG"

// Output formats accepted in [output] format.
const (
	FormatText = "text"
	FormatYAML = "yaml"
	FormatJSON = "json"
)

// ErrInvalid indicates a config value outside its allowed set.
var ErrInvalid = errors.New("config: invalid value")

// Config is the root of config.toml.
type Config struct {
	Output  OutputConfig  `toml:"output"`
	Log     LogConfig     `toml:"log"`
	Numeric NumericConfig `toml:"numeric"`
}

// OutputConfig controls how results are rendered.
type OutputConfig struct {
	// Format is one of text, yaml, json.
	Format string `toml:"format"`
	// Precision is the number of significant digits in text output;
	// -1 selects the shortest representation that round-trips.
	Precision int `toml:"precision"`
}

// LogConfig controls the diagnostic logger on stderr.
type LogConfig struct {
	Level string `toml:"level"`
}

// NumericConfig holds defaults for numeric commands.
type NumericConfig struct {
	// TrackSwaps makes `echelon` report the swap count without --swaps.
	TrackSwaps bool `toml:"track_swaps"`
}

// Default returns the configuration used when no file is found.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load reads a TOML file, applies defaults and validates the result.
func Load(path string) (*Config, error) {
	path = os.ExpandEnv(path)

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file not found: %s", path)
	}

	var cfg Config
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("unknown config key %q: %w", undecoded[0].String(), ErrInvalid)
	}

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// LoadFromEnv loads the file named by LINALG_CONFIG, else the first default
// path that exists. Without any file it returns Default().
func LoadFromEnv() (*Config, error) {
	path := os.Getenv(EnvVar)
	if path == "" {
		for _, p := range defaultPaths() {
			if _, err := os.Stat(p); err == nil {
				path = p
				break
			}
		}
	}

	if path == "" {
		return Default(), nil
	}

	return Load(path)
}

func defaultPaths() []string {
	paths := []string{
		"./linalg.toml",
		"./configs/linalg.toml",
	}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "linalg", "config.toml"))
	}
	return paths
}

func (c *Config) applyDefaults() {
	if c.Output.Format == "" {
		c.Output.Format = FormatText
	}
	// 0 significant digits is meaningless for %g; treat it as unset
	if c.Output.Precision == 0 {
		c.Output.Precision = -1
	}

	if c.Log.Level == "" {
		c.Log.Level = "warn"
	}
}

// Validate checks every enumerated field. It runs again after flag
// overrides, so it also maps precision 0 to -1.
func (c *Config) Validate() error {
	if c.Output.Precision == 0 {
		c.Output.Precision = -1
	}
	c.Output.Format = strings.ToLower(c.Output.Format)
	switch c.Output.Format {
	case FormatText, FormatYAML, FormatJSON:
	default:
		return fmt.Errorf("output.format %q: %w", c.Output.Format, ErrInvalid)
	}
	if c.Output.Precision < -1 {
		return fmt.Errorf("output.precision %d: %w", c.Output.Precision, ErrInvalid)
	}
	if _, err := c.Log.SlogLevel(); err != nil {
		return err
	}

	return nil
}

// SlogLevel parses Level ("debug", "info", "warn", "error").
func (l LogConfig) SlogLevel() (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(l.Level)); err != nil {
		return 0, fmt.Errorf("log.level %q: %w", l.Level, ErrInvalid)
	}
	return lvl, nil
}
