// Package config provides configuration management.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"

	"saas-economics/core/projection"
	"saas-economics/core/scenario"
	"saas-economics/core/types"
	"saas-economics/internal/errors"
	"saas-economics/internal/logging"
)

// EnvPrefix prefixes every environment override
const EnvPrefix = "SAAS_ECON_"

// Config is the main application configuration
type Config struct {
	// Version is the configuration version
	Version string `json:"version"`

	// Tiers is the provider pricing table
	Tiers types.TierSet `json:"tiers"`

	// Scenarios selects the what-if sets
	Scenarios scenario.Config `json:"scenarios"`

	// Projection contains projection settings
	Projection ProjectionConfig `json:"projection"`

	// Output contains output configuration
	Output OutputConfig `json:"output"`

	// Server contains HTTP server configuration
	Server ServerConfig `json:"server"`

	// Logging contains logging configuration
	Logging logging.Config `json:"logging"`
}

// ProjectionConfig contains projection settings
type ProjectionConfig struct {
	// Months is the simulation horizon
	Months int `json:"months"`
}

// OutputConfig contains output-related settings
type OutputConfig struct {
	// DefaultFormat is the default output format
	DefaultFormat string `json:"default_format"`

	// ShowMonths prints the month-by-month projection table
	ShowMonths bool `json:"show_months"`

	// Color enables ANSI colors in terminal output
	Color bool `json:"color"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Host string `json:"host"`
	Port int    `json:"port"`

	// AllowOrigins feeds the CORS middleware
	AllowOrigins []string `json:"allow_origins"`
}

// Address returns host:port
func (s ServerConfig) Address() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// Default returns a default configuration
func Default() *Config {
	return &Config{
		Version:   "1.0",
		Tiers:     types.DefaultTiers(),
		Scenarios: scenario.DefaultConfig(),
		Projection: ProjectionConfig{
			Months: projection.DefaultMonths,
		},
		Output: OutputConfig{
			DefaultFormat: "cli",
			ShowMonths:    true,
			Color:         true,
		},
		Server: ServerConfig{
			Host:         "0.0.0.0",
			Port:         8080,
			AllowOrigins: []string{"*"},
		},
		Logging: logging.DefaultConfig(),
	}
}

// DefaultPath returns ~/.saas-economics/config.json
func DefaultPath() string {
	homeDir, _ := os.UserHomeDir()
	return filepath.Join(homeDir, ".saas-economics", "config.json")
}

// Load loads configuration from a file. A missing file yields defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, errors.Config("read config", err).WithContext("path", path)
	}

	config := Default()
	if err := json.Unmarshal(data, config); err != nil {
		return nil, errors.Config("decode config", err).WithContext("path", path)
	}

	return config, nil
}

// Save saves configuration to a file
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return errors.Config("create config directory", err)
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return errors.Internal("encode config", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.Config("write config", err).WithContext("path", path)
	}
	return nil
}

// LoadEnv reads .env files (if present) and applies SAAS_ECON_*
// overrides. Unset variables leave the config untouched.
func (c *Config) LoadEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if _, err := os.Stat(f); err != nil {
			continue
		}
		if err := godotenv.Load(f); err != nil {
			return errors.Config("load env file", err).WithContext("path", f)
		}
	}

	if v, ok := lookup("LOG_LEVEL"); ok {
		c.Logging.Level = v
	}
	if v, ok := lookup("LOG_FORMAT"); ok {
		c.Logging.Format = v
	}
	if v, ok := lookup("OUTPUT_FORMAT"); ok {
		c.Output.DefaultFormat = v
	}
	if v, ok := lookup("HOST"); ok {
		c.Server.Host = v
	}
	if v, ok := lookup("PORT"); ok {
		port, err := strconv.Atoi(v)
		if err != nil {
			return errors.Wrapf(errors.TypeConfig, err, "invalid %sPORT", EnvPrefix)
		}
		c.Server.Port = port
	}
	if v, ok := lookup("PROJECTION_MONTHS"); ok {
		months, err := strconv.Atoi(v)
		if err != nil {
			return errors.Wrapf(errors.TypeConfig, err, "invalid %sPROJECTION_MONTHS", EnvPrefix)
		}
		c.Projection.Months = months
		c.Scenarios.Months = months
	}

	return nil
}

func lookup(name string) (string, bool) {
	v, ok := os.LookupEnv(EnvPrefix + name)
	if !ok || v == "" {
		return "", false
	}
	return v, true
}

// Validate checks ranges that would make the engines meaningless
func (c *Config) Validate() error {
	lines := []struct {
		name string
		tier types.CostTierConfig
	}{
		{"storage", c.Tiers.Storage.Storage},
		{"egress", c.Tiers.Storage.Egress},
		{"hosting bandwidth", c.Tiers.Hosting.Bandwidth},
	}
	for _, line := range lines {
		if line.tier.IncludedQuota < 0 || line.tier.OverageRatePerUnit < 0 || line.tier.BaseFee < 0 {
			return errors.Newf(errors.TypeConfig, "%s tier has a negative value", line.name)
		}
	}
	if c.Tiers.Storage.BaseFee < 0 || c.Tiers.Hosting.BaseFee < 0 || c.Tiers.Hosting.PerSeatFee < 0 {
		return errors.New(errors.TypeConfig, "provider fees must be non-negative")
	}

	if c.Projection.Months <= 0 {
		return errors.Newf(errors.TypeConfig, "projection months must be positive, got %d", c.Projection.Months)
	}
	if c.Scenarios.Months <= 0 {
		return errors.Newf(errors.TypeConfig, "scenario months must be positive, got %d", c.Scenarios.Months)
	}
	if len(c.Scenarios.GrowthMultipliers) == 0 {
		return errors.New(errors.TypeConfig, "at least one growth multiplier is required")
	}
	if len(c.Scenarios.PricePoints) == 0 {
		return errors.New(errors.TypeConfig, "at least one price point is required")
	}
	for _, p := range c.Scenarios.PricePoints {
		if p < 0 {
			return errors.Newf(errors.TypeConfig, "price point %g is negative", p)
		}
	}

	switch c.Output.DefaultFormat {
	case "cli", "json", "markdown":
	default:
		return errors.Newf(errors.TypeConfig, "unknown output format %q", c.Output.DefaultFormat)
	}

	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return errors.Newf(errors.TypeConfig, "server port %d out of range", c.Server.Port)
	}

	return nil
}

// Global configuration instance
var globalConfig = Default()

// Get returns the global configuration
func Get() *Config {
	return globalConfig
}

// Set sets the global configuration
func Set(config *Config) {
	globalConfig = config
}
