package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds all configuration for the demo host.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Defaults DefaultsConfig `yaml:"defaults"`
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Port int `yaml:"port"`
}

// DefaultsConfig seeds the shared pricing settings at startup.
type DefaultsConfig struct {
	Currency        string `yaml:"currency"`
	TaxPercent      int    `yaml:"tax_percent"`
	DiscountPercent int    `yaml:"discount_percent"`
}

// Load reads and parses the configuration file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// Validate ensures configuration is valid.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be between 1 and 65535")
	}

	switch c.Defaults.Currency {
	case "INR", "USD":
	default:
		return fmt.Errorf("defaults.currency must be INR or USD")
	}

	if c.Defaults.TaxPercent < 0 || c.Defaults.TaxPercent > 100 {
		return fmt.Errorf("defaults.tax_percent must be between 0 and 100")
	}

	if c.Defaults.DiscountPercent < 0 || c.Defaults.DiscountPercent > 100 {
		return fmt.Errorf("defaults.discount_percent must be between 0 and 100")
	}

	return nil
}
