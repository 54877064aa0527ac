package config

import (
	"os"
	"strconv"
	"strings"

	"cedralab/internal/errors"
)

// Config represents the complete application configuration
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Analysis AnalysisConfig
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Port string
}

// DatabaseConfig holds database connection settings. URL may be empty, in
// which case reports are not persisted.
type DatabaseConfig struct {
	URL string
}

// AnalysisConfig holds default analysis parameters
type AnalysisConfig struct {
	Length     int
	Bins       int
	Resolution int
	Lags       []int
	QCBound    int // quasicrystal generation bound
}

// Load reads configuration from environment variables and validates it
func Load() (*Config, error) {
	config := &Config{
		Server: ServerConfig{
			Port: getEnvOrDefault("PORT", "8080"),
		},
		Database: DatabaseConfig{
			URL: os.Getenv("DATABASE_URL"),
		},
		Analysis: AnalysisConfig{
			Length:     getEnvIntOrDefault("SEQUENCE_LENGTH", 1000),
			Bins:       getEnvIntOrDefault("UNIFORMITY_BINS", 20),
			Resolution: getEnvIntOrDefault("DISCREPANCY_RESOLUTION", 0), // 0: match length
			Lags:       getEnvIntsOrDefault("CORRELATION_LAGS", []int{1, 2, 3}),
			QCBound:    getEnvIntOrDefault("QUASICRYSTAL_BOUND", 100),
		},
	}

	if err := validate(config); err != nil {
		return nil, errors.Wrap(err, "configuration validation failed")
	}

	return config, nil
}

func validate(c *Config) error {
	if c.Server.Port == "" {
		return errors.ConfigInvalid("PORT must not be empty")
	}
	if c.Analysis.Length <= 0 {
		return errors.ConfigInvalid("SEQUENCE_LENGTH must be positive")
	}
	if c.Analysis.Bins <= 0 {
		return errors.ConfigInvalid("UNIFORMITY_BINS must be positive")
	}
	if c.Analysis.Resolution < 0 {
		return errors.ConfigInvalid("DISCREPANCY_RESOLUTION must not be negative")
	}
	if c.Analysis.QCBound <= 0 {
		return errors.ConfigInvalid("QUASICRYSTAL_BOUND must be positive")
	}
	for _, lag := range c.Analysis.Lags {
		if lag < 0 || lag >= c.Analysis.Length {
			return errors.ConfigInvalid("CORRELATION_LAGS must lie in [0, SEQUENCE_LENGTH)")
		}
	}
	return nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

// getEnvIntsOrDefault parses a comma-separated integer list.
func getEnvIntsOrDefault(key string, defaultValue []int) []int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	parts := strings.Split(value, ",")
	out := make([]int, 0, len(parts))
	for _, p := range parts {
		parsed, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return defaultValue
		}
		out = append(out, parsed)
	}
	return out
}
