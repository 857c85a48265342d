package config

import (
	"errors"
	"fmt"
	"time"
)

// Config holds runtime settings for the randomusers client.
//
// Fields:
//   - APIBaseURL: endpoint of the random-user feed.
//   - PageSize: users requested per page.
//   - DatabaseDSN: SQLite file (or ":memory:") used as the local cache.
//   - RequestTimeout: per-request HTTP timeout.
//   - RefreshDelay: pause between a refresh and its first fetch.
//   - LogLevel: debug, info, warn or error.
type Config struct {
	APIBaseURL     string
	PageSize       int
	DatabaseDSN    string
	RequestTimeout time.Duration
	RefreshDelay   time.Duration
	LogLevel       string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "https://randomuser.me/api/1.3/"
	c.PageSize = 10
	c.DatabaseDSN = "data/randomusers.db"
	c.RequestTimeout = 10 * time.Second
	c.RefreshDelay = 330 * time.Millisecond
	c.LogLevel = "info"
}

// Validate reports settings the client cannot start with.
func (c *Config) Validate() error {
	var errs []error
	if c.APIBaseURL == "" {
		errs = append(errs, errors.New("api base url is empty"))
	}
	if c.PageSize <= 0 {
		errs = append(errs, fmt.Errorf("page size must be positive, got %d", c.PageSize))
	}
	if c.DatabaseDSN == "" {
		errs = append(errs, errors.New("database dsn is empty"))
	}
	if c.RequestTimeout <= 0 {
		errs = append(errs, fmt.Errorf("request timeout must be positive, got %s", c.RequestTimeout))
	}
	if c.RefreshDelay < 0 {
		errs = append(errs, fmt.Errorf("refresh delay must not be negative, got %s", c.RefreshDelay))
	}
	return errors.Join(errs...)
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
