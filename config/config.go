// Package config loads the vecdist YAML configuration.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/viant/vecdist/internal/logging"
	"gopkg.in/yaml.v3"
)

// EnvDSN overrides Database.DSN when set.
const EnvDSN = "VECDIST_DSN"

// Config represents the complete vecdist configuration
type Config struct {
	Database DatabaseConfig `yaml:"database" json:"database"`
	Logging  logging.Config `yaml:"logging" json:"logging"`
}

// DatabaseConfig selects the SQLite database the functions are evaluated in.
type DatabaseConfig struct {
	// DSN is a file path or ":memory:".
	DSN string `yaml:"dsn" json:"dsn"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Database: DatabaseConfig{DSN: ":memory:"},
		Logging:  logging.Config{Level: "info", Format: logging.FormatConsole},
	}
}

// Load reads a YAML file on top of Default. An empty path returns the
// defaults. The environment override is applied last.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("config: parse %s: %w", path, err)
		}
	}
	if dsn := strings.TrimSpace(os.Getenv(EnvDSN)); dsn != "" {
		cfg.Database.DSN = dsn
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks required fields.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Database.DSN) == "" {
		return fmt.Errorf("config: database.dsn is required")
	}
	switch strings.ToLower(c.Logging.Format) {
	case "", logging.FormatConsole, logging.FormatJSON:
	default:
		return fmt.Errorf("config: unsupported logging.format %q", c.Logging.Format)
	}
	return nil
}
