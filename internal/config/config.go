// Package config reads service configuration from environment variables
// with sensible defaults.
package config

import (
	"os"
	"strconv"
	"strings"
)

// Config holds all configuration for the traffic prediction service.
type Config struct {
	// HTTP
	Port               string
	CORSAllowedOrigins []string

	// Dataset export
	ExportSamples int
	DatabasePath  string

	// Graph generation. Zero means seed from the clock; any other value
	// makes the generated network reproducible across restarts.
	GraphSeed int64
}

// Load reads configuration from environment variables.
func Load() *Config {
	return &Config{
		Port:               getEnv("PORT", "8000"),
		CORSAllowedOrigins: splitList(getEnv("CORS_ALLOWED_ORIGINS", "*")),
		ExportSamples:      getEnvInt("EXPORT_SAMPLES", 1000),
		DatabasePath:       getEnv("SQLITE_DATABASE", "data/traffic_dataset.db"),
		GraphSeed:          getEnvInt64("GRAPH_SEED", 0),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvInt64(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.ParseInt(value, 10, 64); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func splitList(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
