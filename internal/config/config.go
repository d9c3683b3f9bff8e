package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerPort      string
	LogLevel        string
	LogFormat       string
	SeedFile        string // optional YAML seed applied at startup
	ShutdownTimeout time.Duration
}

func Load() (*Config, error) {
	// Load .env file if it exists (useful for local dev)
	_ = godotenv.Load()

	serverPort := os.Getenv("SERVER_PORT")
	if serverPort == "" {
		serverPort = "8080"
	}

	logLevel := os.Getenv("LOG_LEVEL")
	if logLevel == "" {
		logLevel = "info"
	}
	switch logLevel {
	case "debug", "info", "warn", "error":
	default:
		return nil, fmt.Errorf("LOG_LEVEL must be debug, info, warn or error, got %q", logLevel)
	}

	logFormat := os.Getenv("LOG_FORMAT")
	if logFormat == "" {
		logFormat = "json"
	}
	if logFormat != "json" && logFormat != "console" {
		return nil, fmt.Errorf("LOG_FORMAT must be json or console, got %q", logFormat)
	}

	shutdownTimeout := 5 * time.Second
	if raw := os.Getenv("SHUTDOWN_TIMEOUT"); raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid SHUTDOWN_TIMEOUT: %w", err)
		}
		if d <= 0 {
			return nil, fmt.Errorf("SHUTDOWN_TIMEOUT must be positive, got %s", d)
		}
		shutdownTimeout = d
	}

	return &Config{
		ServerPort:      serverPort,
		LogLevel:        logLevel,
		LogFormat:       logFormat,
		SeedFile:        os.Getenv("SEED_FILE"),
		ShutdownTimeout: shutdownTimeout,
	}, nil
}
