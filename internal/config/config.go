// Package config loads the host configuration: a TOML or YAML file, then
// COLORPICKY_* environment overrides.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env"
	"gopkg.in/yaml.v3"

	"colorpicky/app"
)

// Load reads path (if it exists), applies environment overrides and validates
// the result. An empty path or a missing file yields the defaults.
func Load(path string) (app.Config, error) {
	cfg, err := loadConfigFromFile(path)
	if err != nil {
		return app.Config{}, err
	}

	if err := ApplyEnvOverrides(&cfg); err != nil {
		return app.Config{}, err
	}

	if err := cfg.Validate(); err != nil {
		return app.Config{}, fmt.Errorf("validation failed: %w", err)
	}
	return cfg, nil
}

// ApplyEnvOverrides sets every field whose COLORPICKY_* variable is set.
func ApplyEnvOverrides(cfg *app.Config) error {
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("env: %w", err)
	}
	if err := env.Parse(&cfg.Gesture); err != nil {
		return fmt.Errorf("env: %w", err)
	}
	return nil
}

func loadConfigFromFile(path string) (app.Config, error) {
	cfg := app.DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config: %w", err)
	}

	switch filepath.Ext(path) {
	case ".toml":
		if _, err := toml.Decode(string(data), &cfg); err != nil {
			return cfg, fmt.Errorf("decode TOML: %w", err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("decode YAML: %w", err)
		}
	default:
		if err := autoDetectAndParse(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config: %w", err)
		}
	}
	return cfg, nil
}

// autoDetectAndParse tries TOML, then YAML. A failed attempt leaves cfg at the
// defaults for the next one.
func autoDetectAndParse(data []byte, cfg *app.Config) error {
	try := app.DefaultConfig()
	if _, err := toml.Decode(string(data), &try); err == nil {
		*cfg = try
		return nil
	}

	try = app.DefaultConfig()
	if err := yaml.Unmarshal(data, &try); err == nil {
		*cfg = try
		return nil
	}

	return errors.New("unable to parse config file (tried TOML, YAML)")
}
