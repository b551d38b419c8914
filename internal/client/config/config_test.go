package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, "http://127.0.0.1:8080/api", c.APIBaseURL)
	assert.Equal(t, 30*time.Second, c.HTTPTimeout)
	assert.Equal(t, "orchid.db", c.DatabasePath)
	assert.Equal(t, "info", c.LogLevel)
}

func TestLoadConfig_UsesDefaultsBeforeParsing(t *testing.T) {
	cfg := LoadConfig()

	require.NotNil(t, cfg, "LoadConfig must not return nil")
	assert.Equal(t, "http://127.0.0.1:8080/api", cfg.APIBaseURL)
	assert.Equal(t, "orchid.db", cfg.DatabasePath)
}

func TestParseJson_OverlaysOnlyProvidedFields(t *testing.T) {
	file := filepath.Join(t.TempDir(), "config.json")
	data, err := json.Marshal(map[string]any{
		"api_base_url": "https://orchids.example.com/api",
		"http_timeout": "5s",
	})
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(file, data, 0o600))

	origArgs := os.Args
	os.Args = []string{origArgs[0], "-c", file}
	t.Cleanup(func() { os.Args = origArgs })

	var cfg Config
	cfg.LoadDefaults()
	parseJson(&cfg)

	assert.Equal(t, "https://orchids.example.com/api", cfg.APIBaseURL)
	assert.Equal(t, 5*time.Second, cfg.HTTPTimeout)
	assert.Equal(t, "orchid.db", cfg.DatabasePath)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestParseEnv_OverlaysFromEnvironment(t *testing.T) {
	t.Setenv("ORCHID_API_BASE_URL", "https://env.example.com/api")
	t.Setenv("ORCHID_HTTP_TIMEOUT", "12s")
	t.Setenv("ORCHID_LOG_LEVEL", "debug")

	var cfg Config
	cfg.LoadDefaults()
	parseEnv(&cfg)

	assert.Equal(t, "https://env.example.com/api", cfg.APIBaseURL)
	assert.Equal(t, 12*time.Second, cfg.HTTPTimeout)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "orchid.db", cfg.DatabasePath)
}

func TestParseEnv_IgnoresMalformedTimeout(t *testing.T) {
	t.Setenv("ORCHID_HTTP_TIMEOUT", "not-a-duration")

	var cfg Config
	cfg.LoadDefaults()
	parseEnv(&cfg)

	assert.Equal(t, 30*time.Second, cfg.HTTPTimeout)
}
