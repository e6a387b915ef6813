// Package config provides pwconf's own settings.
//
// This file contains settings loading:
// - XDG config path detection
// - TOML file parsing
// - Environment variable overrides
// - Validation
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	pwerrors "github.com/chazuruo/pwconf/internal/errors"
)

// DetectConfigPath returns ~/.config/pwconf/config.toml if it exists,
// or an empty string (caller should use defaults).
func DetectConfigPath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}

	configPath := filepath.Join(homeDir, ".config", "pwconf", "config.toml")
	if _, err := os.Stat(configPath); err == nil {
		return configPath
	}

	return ""
}

// Load loads settings from the specified path.
// After loading, applies environment variable overrides and validates.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &pwerrors.ConfigError{Path: path, Err: pwerrors.ErrNotFound}
		}
		return nil, &pwerrors.ConfigError{Path: path, Err: fmt.Errorf("%w: %w", pwerrors.ErrIO, err)}
	}

	cfg := DefaultConfig()

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, &pwerrors.ConfigError{Path: path, Err: fmt.Errorf("%w: %w", pwerrors.ErrInvalid, err)}
	}

	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, &pwerrors.ConfigError{Path: path, Err: err}
	}

	return cfg, nil
}

// LoadWithDefaults loads settings from the XDG path when present.
// If no file is found, returns defaults with environment overrides applied.
func LoadWithDefaults() (*Config, error) {
	configPath := DetectConfigPath()
	if configPath == "" {
		cfg := DefaultConfig()
		applyEnvOverrides(cfg)
		if err := cfg.Validate(); err != nil {
			return nil, &pwerrors.ConfigError{Err: err}
		}
		return cfg, nil
	}

	return Load(configPath)
}

// applyEnvOverrides applies environment variable overrides to the config.
// Environment variables follow the pattern: PWCONF_<SECTION>_<FIELD>
//
// Examples:
// - PWCONF_LOG_LEVEL overrides [log].level
// - PWCONF_OUTPUT_COLOR overrides [output].color
func applyEnvOverrides(c *Config) {
	applyString := func(key string, target *string) {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			*target = strings.ToLower(val)
		}
	}

	applyBool := func(key string, target *bool) {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			switch strings.ToLower(val) {
			case "true", "1", "yes", "on":
				*target = true
			case "false", "0", "no", "off":
				*target = false
			}
		}
	}

	applyString("PWCONF_LOG_LEVEL", &c.Log.Level)
	applyString("PWCONF_LOG_FORMAT", &c.Log.Format)
	applyBool("PWCONF_OUTPUT_COLOR", &c.Output.Color)
}
