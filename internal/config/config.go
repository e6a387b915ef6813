// Package config provides pwconf's own settings.
//
// Settings are stored in TOML format and only affect how pwconf logs and
// prints. They never change the emitted Playwright config or where it is
// written.
package config

import (
	"fmt"

	pwerrors "github.com/chazuruo/pwconf/internal/errors"
)

// Config is the top-level settings struct for pwconf.
type Config struct {
	Log    LogConfig    `toml:"log"`
	Output OutputConfig `toml:"output"`
}

// LogConfig contains diagnostic logging settings.
type LogConfig struct {
	// Level is the minimum level written to stderr.
	// Valid values: "debug", "info", "warn", "error".
	Level string `toml:"level"`

	// Format selects the stderr encoding.
	// Valid values: "console", "json".
	Format string `toml:"format"`
}

// OutputConfig contains stdout report settings.
type OutputConfig struct {
	// Color enables styling of the report line on terminals.
	Color bool `toml:"color"`
}

// DefaultConfig returns a Config with all default values set.
func DefaultConfig() *Config {
	return &Config{
		Log: LogConfig{
			Level:  "warn",
			Format: "console",
		},
		Output: OutputConfig{
			Color: true,
		},
	}
}

// Validate checks the configuration for valid values.
// Returned errors wrap errors.ErrInvalid.
func (c *Config) Validate() error {
	validLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLevels[c.Log.Level] {
		return fmt.Errorf("%w: log.level must be one of: debug, info, warn, error; got %q", pwerrors.ErrInvalid, c.Log.Level)
	}

	validFormats := map[string]bool{
		"console": true,
		"json":    true,
	}
	if !validFormats[c.Log.Format] {
		return fmt.Errorf("%w: log.format must be one of: console, json; got %q", pwerrors.ErrInvalid, c.Log.Format)
	}

	return nil
}
