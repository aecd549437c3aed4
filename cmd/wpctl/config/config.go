package config

import (
	"os"
	"path/filepath"

	"github.com/goccy/go-yaml"
)

const (
	defaultDBURL   = "file:webpilot.db"
	envVarAppHost  = "WEBPILOT_APP_HOST"
	envVarDBURL    = "WEBPILOT_DB_URL"
	configFileName = ".webpilot/config.yml"
)

// Config holds the wpctl configuration
type Config struct {
	AppHost string `yaml:"app_host"`
	DBURL   string `yaml:"db"`
}

// Load loads configuration from file and environment
func Load() (*Config, error) {
	cfg := &Config{}

	// Try to load from config file
	if err := loadFromFile(cfg); err != nil {
		// Ignore file not found errors, use defaults
	}

	return cfg, nil
}

// GetAppHost returns the app host with priority: env var > config file > unset
func (c *Config) GetAppHost() string {
	if host := os.Getenv(envVarAppHost); host != "" {
		return host
	}
	return c.AppHost
}

// GetDBURL returns the history archive URL with priority: env var > config file > default
func (c *Config) GetDBURL() string {
	if url := os.Getenv(envVarDBURL); url != "" {
		return url
	}
	if c.DBURL != "" {
		return c.DBURL
	}
	return defaultDBURL
}

// loadFromFile loads configuration from ~/.webpilot/config.yml
func loadFromFile(cfg *Config) error {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return err
	}

	configPath := filepath.Join(homeDir, configFileName)
	data, err := os.ReadFile(configPath)
	if err != nil {
		return err
	}

	return yaml.Unmarshal(data, cfg)
}
