package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/randomusers/internal/flagx"
	"github.com/dmitrijs2005/randomusers/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Durations
// use timex.Duration, so they may be strings like "330ms" or integer
// nanoseconds.
type JsonConfig struct {
	APIBaseURL     string         `json:"api_base_url"`
	PageSize       int            `json:"page_size"`
	DatabaseDSN    string         `json:"database_dsn"`
	RequestTimeout timex.Duration `json:"request_timeout"`
	RefreshDelay   timex.Duration `json:"refresh_delay"`
	LogLevel       string         `json:"log_level"`
}

// parseJson overlays cfg with the JSON file named by -c or -config. Only
// keys present with a non-zero value override. It panics on read or
// unmarshal errors.
func parseJson(cfg *Config) {
	path := flagx.ConfigFilePath(os.Args[1:])
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.APIBaseURL != "" {
		cfg.APIBaseURL = jc.APIBaseURL
	}
	if jc.PageSize != 0 {
		cfg.PageSize = jc.PageSize
	}
	if jc.DatabaseDSN != "" {
		cfg.DatabaseDSN = jc.DatabaseDSN
	}
	if jc.RequestTimeout.Duration != 0 {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
	if jc.RefreshDelay.Duration != 0 {
		cfg.RefreshDelay = jc.RefreshDelay.Duration
	}
	if jc.LogLevel != "" {
		cfg.LogLevel = jc.LogLevel
	}
}
