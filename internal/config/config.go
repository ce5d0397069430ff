// Package config provides configuration management for the appdirs CLI
// using Viper.
//
// The config file supplies defaults for the identity flags, so frequent
// invocations for the same application can omit them:
//
//	author: Acme
//	roaming: true
//	format: json
//
// Flags always take precedence over file values, and environment
// variables with the APPDIRS_ prefix override the file.
package config

import (
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/spf13/viper"

	"github.com/thoreinstein/appdirs/internal/errors"
)

// AppName is the application name used for config file placement.
const AppName = "appdirs"

// Config is the top-level configuration structure.
type Config struct {
	// Author is the default author/organization for resolved paths.
	Author string `mapstructure:"author" yaml:"author"`

	// Roaming selects the Windows roaming app-data root by default.
	Roaming bool `mapstructure:"roaming" yaml:"roaming"`

	// Opinion controls the conventional Cache/Logs/log suffixes.
	Opinion bool `mapstructure:"opinion" yaml:"opinion"`

	// Platform forces a platform: "windows", "darwin", or "unix".
	// Empty means the host platform.
	Platform string `mapstructure:"platform" yaml:"platform"`

	// Format is the default output format for the list command:
	// "table", "json", "yaml", or "toml".
	Format string `mapstructure:"format" yaml:"format"`
}

// Init registers config file locations and defaults with Viper. Call once
// at startup before Load.
func Init() {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	// Search order: current directory, then the user config dir.
	viper.AddConfigPath(".")
	viper.AddConfigPath(filepath.Join(xdg.ConfigHome, AppName))

	viper.SetEnvPrefix("APPDIRS")
	viper.AutomaticEnv()

	viper.SetDefault("opinion", true)
	viper.SetDefault("format", "table")
}

// Load reads the configuration. A non-empty path names an explicit file,
// which must exist; with an empty path the default locations are searched
// and a missing file just yields the defaults.
func Load(path string) (*Config, error) {
	if path != "" {
		viper.SetConfigFile(path)
	}

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			if path != "" {
				return nil, errors.Wrapf(err, "config file not found at %s", path)
			}
		} else {
			return nil, errors.Wrap(err, "reading config file")
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "unmarshaling config")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks enumerated fields.
func (c *Config) Validate() error {
	switch c.Platform {
	case "", "windows", "darwin", "unix":
	default:
		return errors.Wrapf(errors.ErrInvalidConfig, "platform %q (valid: windows, darwin, unix)", c.Platform)
	}

	switch c.Format {
	case "", "table", "json", "yaml", "toml":
	default:
		return errors.Wrapf(errors.ErrInvalidConfig, "format %q (valid: table, json, yaml, toml)", c.Format)
	}

	return nil
}
