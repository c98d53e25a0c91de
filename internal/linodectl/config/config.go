// Package config provides configuration management for the linodectl CLI
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

// Config holds the CLI configuration
type Config struct {
	// APIKey authenticates every API request
	APIKey string `mapstructure:"api-key"`
	// Server is the API endpoint URL; empty means the public endpoint
	Server string `mapstructure:"server"`
	// Timeout bounds each API request
	Timeout time.Duration `mapstructure:"timeout"`
	// Debug enables request-level logging
	Debug bool `mapstructure:"debug"`
}

// defaultConfigPath returns the default config file path
func defaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".linodectl/config.yaml"
	}
	return filepath.Join(home, ".linodectl/config.yaml")
}

// Load reads the configuration from path, falling back to the
// LINODECTL_CONFIG environment variable and then the default location.
// A missing config file is not an error; environment overrides
// (LINODE_API_KEY, LINODE_API_URL) still apply.
func Load(path string) (*Config, error) {
	if path == "" {
		path = os.Getenv("LINODECTL_CONFIG")
	}
	if path == "" {
		path = defaultConfigPath()
	}

	v := viper.New()
	v.SetDefault("api-key", "")
	v.SetDefault("server", "")
	v.SetDefault("timeout", 30*time.Second)
	v.SetDefault("debug", false)

	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	if err := v.ReadInConfig(); err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("error reading config: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error parsing config: %w", err)
	}

	// Environment variables take precedence over the file
	if key := os.Getenv("LINODE_API_KEY"); key != "" {
		config.APIKey = key
	}
	if server := os.Getenv("LINODE_API_URL"); server != "" {
		config.Server = server
	}

	return &config, nil
}

// Save writes the configuration to path, creating the directory if needed
func Save(config *Config, path string) error {
	if path == "" {
		path = defaultConfigPath()
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("error creating config directory: %w", err)
	}

	v := viper.New()
	v.Set("api-key", config.APIKey)
	v.Set("server", config.Server)
	v.Set("timeout", config.Timeout.String())
	v.Set("debug", config.Debug)
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	if err := v.WriteConfig(); err != nil {
		return fmt.Errorf("error writing config: %w", err)
	}

	return nil
}
