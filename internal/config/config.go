// Package config loads CLI configuration from the XDG config dir, a .env file and the
// environment. Only non-secret settings are kept in the file; database DSNs come from
// flags or the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	taskerrors "webhooktask/cli/internal/errors"
	"webhooktask/cli/internal/logger"
	"webhooktask/cli/internal/xdg"
)

// Environment variables read by Load.
const (
	EnvEnabled   = "WEBHOOKTASK_ENABLED"
	EnvLogLevel  = "WEBHOOKTASK_LOG_LEVEL"
	EnvLogFormat = "WEBHOOKTASK_LOG_FORMAT"
)

// Config holds non-sensitive CLI settings.
type Config struct {
	// Enabled gates the whole workflow; when false the run is a no-op.
	Enabled bool      `yaml:"enabled"`
	Log     LogConfig `yaml:"log"`
}

// LogConfig holds logger settings.
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Enabled: true,
		Log: LogConfig{
			Level:  "info",
			Format: logger.FormatConsole,
		},
	}
}

// Load reads configuration with layered precedence:
//  1. defaults
//  2. YAML file (path, or the XDG config file when path is empty)
//  3. .env in the working directory (never overrides the real environment)
//  4. environment variables
//
// A missing XDG file yields defaults; a missing explicit path is an error.
// Load does not validate: callers layer flags on top and then call Validate.
func Load(path string) (Config, error) {
	c := Default()

	explicit := path != ""
	if !explicit {
		p, err := xdg.ConfigFile()
		if err == nil {
			path = p
		}
	}
	if path != "" {
		if err := loadFile(path, &c); err != nil {
			if explicit || !errors.Is(err, os.ErrNotExist) {
				return c, taskerrors.Wrap(taskerrors.ConfigInvalid, "read config "+path, err)
			}
		}
	}

	_ = godotenv.Load()

	if err := applyEnv(&c); err != nil {
		return c, taskerrors.Wrap(taskerrors.ConfigInvalid, "read environment", err)
	}
	return c, nil
}

// loadFile overlays the YAML file at path onto c.
func loadFile(path string, c *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, c)
}

func applyEnv(c *Config) error {
	if v := strings.TrimSpace(os.Getenv(EnvEnabled)); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvEnabled, err)
		}
		c.Enabled = b
	}
	if v := strings.TrimSpace(os.Getenv(EnvLogLevel)); v != "" {
		c.Log.Level = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvLogFormat)); v != "" {
		c.Log.Format = v
	}
	return nil
}

// Validate checks the log settings.
func (c Config) Validate() error {
	if _, err := logger.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("invalid log level %q", c.Log.Level)
	}
	switch strings.ToLower(strings.TrimSpace(c.Log.Format)) {
	case "", logger.FormatConsole, logger.FormatJSON:
	default:
		return fmt.Errorf("invalid log format %q (want %s or %s)", c.Log.Format, logger.FormatConsole, logger.FormatJSON)
	}
	return nil
}
