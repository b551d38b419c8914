// Package config assembles the client's runtime settings from layered
// sources: built-in defaults, a JSON file, environment variables, then
// command-line flags. Later sources win.
package config

import "time"

type Config struct {
	// APIBaseURL is the root of the backend REST API, including the /api
	// prefix.
	APIBaseURL string
	// HTTPTimeout bounds a single request attempt. Zero means no timeout.
	HTTPTimeout time.Duration
	// DatabasePath is the sqlite file holding session and cart state.
	DatabasePath string
	// LogLevel is one of debug, info, warn, error.
	LogLevel string
}

func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://127.0.0.1:8080/api"
	c.HTTPTimeout = 30 * time.Second
	c.DatabasePath = "orchid.db"
	c.LogLevel = "info"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present), the environment, and command-line flags. Later sources
// take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
