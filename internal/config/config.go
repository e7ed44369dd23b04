package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/thenoetrevino/taskflow/internal/config/colors"
	"gopkg.in/yaml.v3"
)

const (
	// DefaultAPIURL is the backend used when nothing else is configured
	DefaultAPIURL = "http://localhost:8000"

	// DefaultRequestTimeout bounds each backend request
	DefaultRequestTimeout = 10 * time.Second
)

// Environment variables that override the config file
const (
	EnvAPIURL         = "TASKFLOW_API_URL"
	EnvRequestTimeout = "TASKFLOW_REQUEST_TIMEOUT"
	EnvThemeFile      = "TASKFLOW_THEME_FILE"
)

// Config represents the application configuration
type Config struct {
	APIURL         string             `yaml:"api_url"`
	RequestTimeout time.Duration      `yaml:"request_timeout"`
	KeyMappings    KeyMappings        `yaml:"key_mappings"`
	ColorScheme    colors.ColorScheme `yaml:"theme"`
}

// Default returns a config with every value defaulted
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// loadThemeFile loads and merges theme from TASKFLOW_THEME_FILE environment variable
func loadThemeFile(config *Config) {
	themeFile := os.Getenv(EnvThemeFile)
	if themeFile == "" {
		return
	}

	themeData, err := os.ReadFile(themeFile)
	if err != nil {
		slog.Warn("failed to read theme file", "path", themeFile, "error", err)
		return
	}

	var themeConfig struct {
		Theme colors.ColorScheme `yaml:"theme"`
	}

	if err := yaml.Unmarshal(themeData, &themeConfig); err != nil {
		slog.Warn("failed to parse theme file", "path", themeFile, "error", err)
		return
	}
	config.ColorScheme.MergeFrom(themeConfig.Theme)
}

// applyEnv overrides file values with environment variables. A .env file in
// the working directory is loaded first; variables already set win over it.
func applyEnv(config *Config) error {
	_ = godotenv.Load()

	if url := strings.TrimSpace(os.Getenv(EnvAPIURL)); url != "" {
		config.APIURL = url
	}

	if raw := strings.TrimSpace(os.Getenv(EnvRequestTimeout)); raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil {
			return fmt.Errorf("invalid %s %q: %w", EnvRequestTimeout, raw, err)
		}
		config.RequestTimeout = d
	}
	return nil
}

// Load loads config from the user's config directory
// Returns default config if file doesn't exist
func Load() (*Config, error) {
	config := &Config{}

	configPath, err := getConfigPath()
	if err == nil {
		data, readErr := os.ReadFile(configPath)
		switch {
		case readErr == nil:
			if err := yaml.Unmarshal(data, config); err != nil {
				return nil, fmt.Errorf("failed to parse %s: %w", configPath, err)
			}
		case !os.IsNotExist(readErr):
			return nil, readErr
		}
	}

	if err := applyEnv(config); err != nil {
		return nil, err
	}

	// Load theme from TASKFLOW_THEME_FILE if set
	loadThemeFile(config)

	// Fill in any missing values with defaults
	config.applyDefaults()

	return config, nil
}

// Save saves the config to the user's config directory
func (c *Config) Save() error {
	configPath, err := getConfigPath()
	if err != nil {
		return err
	}

	// Create config directory if it doesn't exist
	configDir := filepath.Dir(configPath)
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0o644)
}

// getConfigPath returns the path to the config file
func getConfigPath() (string, error) {
	// Try XDG_CONFIG_HOME first
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, "taskflow", "config.yaml"), nil
	}

	// Fall back to ~/.config
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(homeDir, ".config", "taskflow", "config.yaml"), nil
}

// applyDefaults fills in missing configuration with defaults
func (c *Config) applyDefaults() {
	if c.APIURL == "" {
		c.APIURL = DefaultAPIURL
	}
	c.APIURL = strings.TrimRight(c.APIURL, "/")
	if c.RequestTimeout <= 0 {
		c.RequestTimeout = DefaultRequestTimeout
	}
	c.KeyMappings.applyDefaults()
	c.ColorScheme.ApplyDefaults()
}
