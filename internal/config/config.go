// Package config loads and validates startup configuration. Everything is
// resolved once in main; no other package reads the environment.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all runtime settings.
type Config struct {
	Port          string
	DatabasePath  string
	SessionSecret string
	CookieSecure  bool
	BcryptCost    int
}

// Load reads configuration from a local .env file (if present) and the
// process environment. Missing required values are fatal errors.
func Load() (*Config, error) {
	// A .env file is a development convenience, not a requirement.
	_ = godotenv.Load()

	cfg := &Config{
		Port:         envOrDefault("PORT", "8080"),
		DatabasePath: os.Getenv("DATABASE_PATH"),
		// Default to secure cookies; disable only for local development.
		CookieSecure: os.Getenv("COOKIE_SECURE") != "false",
		BcryptCost:   12,
	}

	if cfg.DatabasePath == "" {
		return nil, fmt.Errorf("DATABASE_PATH environment variable is required")
	}

	cfg.SessionSecret = os.Getenv("SESSION_SECRET")
	if cfg.SessionSecret == "" {
		return nil, fmt.Errorf("SESSION_SECRET environment variable is required")
	}
	if len(cfg.SessionSecret) < 32 {
		return nil, fmt.Errorf("SESSION_SECRET must be at least 32 characters for HMAC-SHA256 security")
	}

	if v := os.Getenv("BCRYPT_COST"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid BCRYPT_COST: %w", err)
		}
		if parsed < 4 || parsed > 14 {
			return nil, fmt.Errorf("BCRYPT_COST must be between 4 and 14, got %d", parsed)
		}
		cfg.BcryptCost = parsed
	}

	return cfg, nil
}

func envOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
