// Package config loads client configuration from the environment.
package config

import (
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration values.
type Config struct {
	// Service endpoints
	AdminURL string
	AgentURL string

	// Bearer token for authenticated agent operations (optional)
	Token string

	// Per-request timeout
	Timeout time.Duration

	// Logging
	LogFile  string
	LogLevel slog.Level
}

// Load reads configuration from environment variables.
// A .env file in the working directory is applied first, if present;
// real environment variables win over .env entries.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		AdminURL: getEnv("DOCUCHAT_ADMIN_URL", "http://127.0.0.1:8001"),
		AgentURL: getEnv("DOCUCHAT_AGENT_URL", "http://localhost:8000"),
		Token:    os.Getenv("APP_API_TOKEN"),
		Timeout:  parseTimeout(getEnv("DOCUCHAT_CLIENT_TIMEOUT", "60s")),
		LogFile:  getEnv("DOCUCHAT_LOG_FILE", "/tmp/docuchat.log"),
		LogLevel: parseLogLevel(getEnv("DOCUCHAT_LOG_LEVEL", "INFO")),
	}
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func parseTimeout(s string) time.Duration {
	d, err := time.ParseDuration(s)
	if err != nil || d <= 0 {
		return 60 * time.Second
	}
	return d
}

func parseLogLevel(s string) slog.Level {
	switch strings.ToUpper(s) {
	case "DEBUG":
		return slog.LevelDebug
	case "INFO":
		return slog.LevelInfo
	case "WARN", "WARNING":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
