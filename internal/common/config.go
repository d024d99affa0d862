// Package common provides shared utilities for CareerCompass
package common

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"
)

// Config holds all configuration for the CareerCompass agent.
// It is constructed once at process start and passed explicitly;
// pipeline code never reads ambient global state.
type Config struct {
	Environment string        `toml:"environment"`
	OfflineMode bool          `toml:"offline_mode"`
	Server      ServerConfig  `toml:"server"`
	Clients     ClientsConfig `toml:"clients"`
	Logging     LoggingConfig `toml:"logging"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Host string `toml:"host"`
	Port int    `toml:"port"`
}

// ClientsConfig holds API client configurations
type ClientsConfig struct {
	ProfileStore ProfileStoreConfig `toml:"profile_store"`
	Gemini       GeminiConfig       `toml:"gemini"`
}

// ProfileStoreConfig holds financial profile store client configuration
type ProfileStoreConfig struct {
	BaseURL   string `toml:"base_url"`
	RateLimit int    `toml:"rate_limit"`
	Timeout   string `toml:"timeout"`
}

// GetTimeout parses and returns the timeout duration
func (c *ProfileStoreConfig) GetTimeout() time.Duration {
	d, err := time.ParseDuration(c.Timeout)
	if err != nil {
		return 5 * time.Second
	}
	return d
}

// GeminiConfig holds Gemini API configuration
type GeminiConfig struct {
	APIKey          string `toml:"api_key"`
	Model           string `toml:"model"`
	Timeout         string `toml:"timeout"`
	MaxResponseSize int64  `toml:"max_response_size"`
}

// GetTimeout parses and returns the timeout duration. Generative calls
// are slower than data fetches, so the default is deliberately generous.
func (c *GeminiConfig) GetTimeout() time.Duration {
	d, err := time.ParseDuration(c.Timeout)
	if err != nil {
		return 15 * time.Second
	}
	return d
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
}

// NewDefaultConfig returns a Config with sensible defaults
func NewDefaultConfig() *Config {
	return &Config{
		Environment: "development",
		Server: ServerConfig{
			Host: "0.0.0.0",
			Port: 8080,
		},
		Clients: ClientsConfig{
			ProfileStore: ProfileStoreConfig{
				BaseURL:   "http://mock-data-api:8080",
				RateLimit: 10,
				Timeout:   "5s",
			},
			Gemini: GeminiConfig{
				Model:           "gemini-1.5-flash",
				Timeout:         "15s",
				MaxResponseSize: 256 * 1024,
			},
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// LoadConfig loads configuration from files with environment overrides
func LoadConfig(paths ...string) (*Config, error) {
	config := NewDefaultConfig()

	// Load and merge each config file in order (later files override earlier)
	for _, path := range paths {
		if path == "" {
			continue
		}

		if _, err := os.Stat(path); os.IsNotExist(err) {
			continue // Skip missing files
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}

		if err := toml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	applyEnvOverrides(config)

	return config, nil
}

// applyEnvOverrides applies environment variable overrides to config
func applyEnvOverrides(config *Config) {
	if env := os.Getenv("COMPASS_ENV"); env != "" {
		config.Environment = env
	}

	if host := os.Getenv("COMPASS_HOST"); host != "" {
		config.Server.Host = host
	}

	if port := os.Getenv("COMPASS_PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			config.Server.Port = p
		}
	}

	if level := os.Getenv("COMPASS_LOG_LEVEL"); level != "" {
		config.Logging.Level = level
	}

	if url := os.Getenv("COMPASS_PROFILE_API_URL"); url != "" {
		config.Clients.ProfileStore.BaseURL = url
	}

	if model := os.Getenv("GEMINI_MODEL"); model != "" {
		config.Clients.Gemini.Model = model
	}

	if v := os.Getenv("OFFLINE_MODE"); v != "" {
		config.OfflineMode = parseBoolFlag(v)
	}
}

// parseBoolFlag accepts the usual truthy spellings ("1", "true", "yes", "on").
func parseBoolFlag(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "true", "yes", "on":
		return true
	}
	return false
}

// ResolveAPIKey resolves an API key from environment variables with a
// config-file fallback. Environment wins so deployments can rotate keys
// without touching the config file.
func ResolveAPIKey(name string, fallback string) (string, error) {
	keyToEnvMapping := map[string][]string{
		"gemini_api_key": {"GEMINI_API_KEY", "COMPASS_GEMINI_API_KEY", "GOOGLE_API_KEY"},
	}

	if envVarNames, ok := keyToEnvMapping[name]; ok {
		for _, envVarName := range envVarNames {
			if envValue := os.Getenv(envVarName); envValue != "" {
				return envValue, nil
			}
		}
	}

	if fallback != "" {
		return fallback, nil
	}

	return "", fmt.Errorf("API key '%s' not found in environment or config", name)
}

// IsProduction returns true if running in production mode
func (c *Config) IsProduction() bool {
	env := strings.ToLower(strings.TrimSpace(c.Environment))
	return env == "production" || env == "prod"
}
