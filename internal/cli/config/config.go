package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

const (
	// DefaultServer is used until radarctl configure stores another one
	DefaultServer = "http://localhost:8080"
	// DefaultOutput renders tables
	DefaultOutput = "table"

	// envConfigPath overrides the config file location
	envConfigPath = "RADARCTL_CONFIG"
)

// Config stores CLI configuration
type Config struct {
	Server string `json:"server"` // API Server address
	Output string `json:"output"` // table, json or yaml
}

// GetConfigPath returns the configuration file path (~/.radarctl/config.json)
func GetConfigPath() (string, error) {
	if path := os.Getenv(envConfigPath); path != "" {
		return path, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".radarctl", "config.json"), nil
}

// Load loads configuration from file; a missing file yields the defaults
func Load() (*Config, error) {
	configFile, err := GetConfigPath()
	if err != nil {
		return nil, err
	}

	cfg := &Config{}
	data, err := os.ReadFile(configFile)
	switch {
	case os.IsNotExist(err):
	case err != nil:
		return nil, fmt.Errorf("failed to read config file: %w", err)
	default:
		if err := json.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	}

	if cfg.Server == "" {
		cfg.Server = DefaultServer
	}
	if cfg.Output == "" {
		cfg.Output = DefaultOutput
	}
	return cfg, nil
}

// Save saves configuration to file
func (c *Config) Save() error {
	configFile, err := GetConfigPath()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(configFile), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(configFile, data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}
