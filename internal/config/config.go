package config

import (
	"os"
	"strconv"

	"programas/internal/errors"
)

// Config represents the complete application configuration
type Config struct {
	Server ServerConfig
	Data   DataConfig
	Locale LocaleConfig
}

// ServerConfig holds web server settings
type ServerConfig struct {
	Port    string
	GinMode string
}

// DataConfig holds the dataset source settings
type DataConfig struct {
	// Source is a local file path or an http(s) URL to the spreadsheet.
	Source string
	// FetchTimeoutSeconds bounds the single startup fetch when the source
	// is a URL. 0 means no timeout.
	FetchTimeoutSeconds int
}

// LocaleConfig holds presentation locale settings
type LocaleConfig struct {
	Currency string
}

// Load reads configuration from environment variables and validates it
func Load() (*Config, error) {
	config := &Config{
		Server: ServerConfig{
			Port:    getEnvOrDefault("PORT", "8080"),
			GinMode: getEnvOrDefault("GIN_MODE", "debug"),
		},
		Data: DataConfig{
			Source:              getEnvOrDefault("DATA_SOURCE", "data/programas.xlsx"),
			FetchTimeoutSeconds: getEnvIntOrDefault("FETCH_TIMEOUT_SECONDS", 30),
		},
		Locale: LocaleConfig{
			Currency: getEnvOrDefault("CURRENCY_LOCALE", "es-CO"),
		},
	}

	if err := validateConfig(config); err != nil {
		return nil, errors.Wrap(err, "configuration validation failed")
	}

	return config, nil
}

func validateConfig(config *Config) error {
	if config.Data.Source == "" {
		return errors.ConfigInvalid("DATA_SOURCE is required")
	}
	if config.Server.Port == "" {
		return errors.ConfigInvalid("PORT must not be empty")
	}
	return nil
}

// Helper functions for environment variable parsing
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
