package app

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// ErrInvalidTheme is returned by Validate for an unknown theme mode.
var ErrInvalidTheme = errors.New("invalid theme")

// Config holds application-wide configuration.
type Config struct {
	// Debug enables debug logging and source locations in log entries.
	Debug bool `yaml:"debug"`

	// Theme is "system", "light" or "dark". Empty leaves the choice to the
	// theme saved from the selector.
	Theme string `yaml:"theme"`

	// Expanded is the initial state of the register panel.
	Expanded bool `yaml:"expanded"`

	// LogDir overrides the platform log directory.
	LogDir string `yaml:"log_dir"`
}

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() *Config {
	return &Config{}
}

// LoadConfigFile reads a YAML config file on top of the defaults.
func LoadConfigFile(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// ConfigFromEnv builds the configuration from the environment.
// REGVIEW_CONFIG names a YAML file loaded first; REGVIEW_DEBUG,
// REGVIEW_THEME and REGVIEW_EXPANDED override what it sets.
func ConfigFromEnv() (*Config, error) {
	cfg := DefaultConfig()

	if path := os.Getenv("REGVIEW_CONFIG"); path != "" {
		fileCfg, err := LoadConfigFile(path)
		if err != nil {
			return nil, err
		}
		cfg = fileCfg
	}

	if debugStr := os.Getenv("REGVIEW_DEBUG"); debugStr != "" {
		if debug, err := strconv.ParseBool(debugStr); err == nil {
			cfg.Debug = debug
		}
	}

	if expandedStr := os.Getenv("REGVIEW_EXPANDED"); expandedStr != "" {
		if expanded, err := strconv.ParseBool(expandedStr); err == nil {
			cfg.Expanded = expanded
		}
	}

	if theme := os.Getenv("REGVIEW_THEME"); theme != "" {
		cfg.Theme = theme
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks field values.
func (c *Config) Validate() error {
	switch c.Theme {
	case "", "system", "light", "dark":
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrInvalidTheme, c.Theme)
	}
}
