package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/MinhAlfred/orchidstore/internal/flagx"
	"github.com/MinhAlfred/orchidstore/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. It relies on
// timex.Duration so the file can specify the timeout either as a string like
// "30s" or as integer nanoseconds.
type JsonConfig struct {
	APIBaseURL   string         `json:"api_base_url"`
	HTTPTimeout  timex.Duration `json:"http_timeout"`
	DatabasePath string         `json:"database_path"`
	LogLevel     string         `json:"log_level"`
}

// parseJson overlays cfg with values from the JSON file named by -c/-config.
// No flag means no file is loaded. Read or unmarshal errors panic; the
// process cannot start meaningfully with a broken config file.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.ConfigFileFlag()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.APIBaseURL != "" {
		cfg.APIBaseURL = jc.APIBaseURL
	}
	if jc.HTTPTimeout.Duration != 0 {
		cfg.HTTPTimeout = time.Duration(jc.HTTPTimeout.Duration)
	}
	if jc.DatabasePath != "" {
		cfg.DatabasePath = jc.DatabasePath
	}
	if jc.LogLevel != "" {
		cfg.LogLevel = jc.LogLevel
	}
}
