// Package config centralises configuration parsing for the extracurricular service.
package config

import (
	"os"
	"strings"
	"time"
)

// Config captures runtime configuration values for the service.
type Config struct {
	HTTPAddress       string
	StaticDir         string
	SeedFile          string        // Optional JSON catalog; empty uses the built-in one.
	KafkaBrokers      []string
	RosterEventsTopic string        // Empty disables event publishing.
	ShutdownTimeout   time.Duration // Grace period for in-flight requests on shutdown.
}

// Load reads environment variables into Config, applying sensible defaults for local dev.
func Load() Config {
	cfg := Config{
		HTTPAddress:       getEnv("HTTP_ADDRESS", ":8000"),
		StaticDir:         getEnv("STATIC_DIR", "static"),
		SeedFile:          getEnv("SEED_FILE", ""),
		RosterEventsTopic: getEnv("ROSTER_EVENTS_TOPIC", ""),
		ShutdownTimeout:   getDurationEnv("SHUTDOWN_TIMEOUT", 15*time.Second),
	}

	brokers := getEnv("KAFKA_BROKERS", "kafka:9092")
	cfg.KafkaBrokers = splitAndTrim(brokers)
	return cfg
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

func splitAndTrim(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func getDurationEnv(key string, fallback time.Duration) time.Duration {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		if parsed, err := time.ParseDuration(value); err == nil {
			return parsed
		}
	}
	return fallback
}
