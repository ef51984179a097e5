// Package config loads smartide configuration from files and the
// environment, with sane defaults for running without any config at all.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	// Global settings
	Level   string `mapstructure:"level"`
	Quiet   bool   `mapstructure:"quiet"`
	Verbose bool   `mapstructure:"verbose"`

	// Request validation settings
	Validation ValidationConfig `mapstructure:"validation"`
}

// ValidationConfig holds the limits applied to incoming requests.
type ValidationConfig struct {
	MaxPathLength int      `mapstructure:"max_path_length"`
	AllowedRoots  []string `mapstructure:"allowed_roots"`
}

// Default returns a Config with default values.
func Default() *Config {
	return &Config{
		Level:   "info",
		Quiet:   false,
		Verbose: false,
		Validation: ValidationConfig{
			MaxPathLength: 500,
			AllowedRoots: []string{
				"/android_asset/",
				"/android_res/",
				"/data/data/",
				"/storage/",
			},
		},
	}
}

// Load loads configuration from files and environment.
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName("smartide")
	v.SetConfigType("yaml")

	// Config paths in order of precedence, lowest first
	v.AddConfigPath("/etc/smartide/")
	if configDir, err := os.UserConfigDir(); err == nil {
		v.AddConfigPath(filepath.Join(configDir, "smartide"))
	}
	if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(home)
		v.SetConfigName(".smartide")
	}
	v.AddConfigPath(".")

	// Environment variables
	v.SetEnvPrefix("SMARTIDE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	v.BindEnv("level", "SMARTIDE_LEVEL")
	v.BindEnv("quiet", "SMARTIDE_QUIET")
	v.BindEnv("verbose", "SMARTIDE_VERBOSE")
	v.BindEnv("validation.max_path_length", "SMARTIDE_MAX_PATH_LENGTH")

	// Defaults
	cfg := Default()
	v.SetDefault("level", cfg.Level)
	v.SetDefault("quiet", cfg.Quiet)
	v.SetDefault("verbose", cfg.Verbose)
	v.SetDefault("validation.max_path_length", cfg.Validation.MaxPathLength)
	v.SetDefault("validation.allowed_roots", cfg.Validation.AllowedRoots)

	// A missing config file is fine; defaults apply
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	if err := v.Unmarshal(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadFromFile loads configuration from a specific file.
func LoadFromFile(path string) (*Config, error) {
	v := viper.New()

	v.SetConfigFile(path)

	if err := v.ReadInConfig(); err != nil {
		return nil, err
	}

	cfg := Default()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}
