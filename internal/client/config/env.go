package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

// parseEnv overlays cfg with ORCHID_* environment variables. A .env file in
// the working directory is loaded first (without overriding variables already
// set in the process environment).
func parseEnv(cfg *Config) {
	_ = godotenv.Load()

	if v := os.Getenv("ORCHID_API_BASE_URL"); v != "" {
		cfg.APIBaseURL = v
	}
	if v := os.Getenv("ORCHID_HTTP_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.HTTPTimeout = d
		}
	}
	if v := os.Getenv("ORCHID_DATABASE_PATH"); v != "" {
		cfg.DatabasePath = v
	}
	if v := os.Getenv("ORCHID_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
}
