package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// DefaultModel is the model served when none is configured.
const DefaultModel = "mlx-community/c4ai-command-r-v01-4bit"

// Config holds all configuration for the application.
type Config struct {
	Port             int
	Model            string
	InferenceBaseURL string
	Debug            bool
	LogLevel         slog.Level
	LogFormat        string
}

// Load reads configuration from environment variables and returns a Config
// struct with defaults applied for anything unset. If a .env file exists in
// the current directory or project root, it is loaded automatically;
// environment variables already set take precedence over .env values.
// CLI flags are layered on top by the caller.
func Load() (*Config, error) {
	// Try to load .env file (ignore error if it doesn't exist)
	// Check current directory first, then walk up to find project root (where go.mod is)
	_ = godotenv.Load() // Try current directory

	wd, err := os.Getwd()
	if err == nil {
		dir := wd
		for i := 0; i < 5; i++ { // Limit search depth
			envPath := filepath.Join(dir, ".env")
			if _, err := os.Stat(envPath); err == nil {
				_ = godotenv.Load(envPath)
				break
			}
			parent := filepath.Dir(dir)
			if parent == dir {
				break // Reached filesystem root
			}
			dir = parent
		}
	}

	cfg := &Config{
		Model:            getEnv("MODEL", DefaultModel),
		InferenceBaseURL: getEnv("INFERENCE_BASE_URL", "http://localhost:8080"),
		LogFormat:        getEnv("LOG_FORMAT", "text"),
	}

	portStr := getEnv("API_PORT", "5000")
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf("API_PORT must be a valid integer: %w", err)
	}
	if port <= 0 || port > 65535 {
		return nil, fmt.Errorf("API_PORT must be between 1 and 65535")
	}
	cfg.Port = port

	level, err := parseLogLevel(getEnv("LOG_LEVEL", "info"))
	if err != nil {
		return nil, err
	}
	cfg.LogLevel = level

	if cfg.LogFormat != "text" && cfg.LogFormat != "json" {
		return nil, fmt.Errorf("LOG_FORMAT must be 'text' or 'json'")
	}

	return cfg, nil
}

// parseLogLevel parses a log level name into a slog.Level.
func parseLogLevel(name string) (slog.Level, error) {
	switch strings.ToLower(name) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("LOG_LEVEL must be one of debug, info, warn, error")
	}
}

// getEnv gets an environment variable or returns a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
