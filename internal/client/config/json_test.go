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

func writeTempJSON(t *testing.T, dir, name string, data map[string]any) string {
	t.Helper()
	if dir == "" {
		dir = t.TempDir()
	}
	if name == "" {
		name = "cfg.json"
	}
	path := filepath.Join(dir, name)
	b, err := json.Marshal(data)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, b, 0o600))
	return path
}

func Test_parseJson_SourcesAndPrecedence(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	dir := t.TempDir()
	pathFlag := writeTempJSON(t, dir, "flag.json", map[string]any{
		"api_base_url":    "http://example.test/api/",
		"page_size":       15,
		"database_dsn":    "/tmp/users.db",
		"request_timeout": "5s",
		"refresh_delay":   float64(100 * time.Millisecond),
		"log_level":       "warn",
	})

	t.Run("loads from flags", func(t *testing.T) {
		os.Args = []string{"testbin", "-config", pathFlag}

		cfg := &Config{}
		parseJson(cfg)

		assert.Equal(t, "http://example.test/api/", cfg.APIBaseURL)
		assert.Equal(t, 15, cfg.PageSize)
		assert.Equal(t, "/tmp/users.db", cfg.DatabaseDSN)
		assert.Equal(t, 5*time.Second, cfg.RequestTimeout)
		assert.Equal(t, 100*time.Millisecond, cfg.RefreshDelay)
		assert.Equal(t, "warn", cfg.LogLevel)
	})

	t.Run("missing keys keep defaults", func(t *testing.T) {
		partial := writeTempJSON(t, dir, "partial.json", map[string]any{"page_size": 3})
		os.Args = []string{"testbin", "-c", partial}

		var cfg Config
		cfg.LoadDefaults()
		parseJson(&cfg)

		assert.Equal(t, 3, cfg.PageSize)
		assert.Equal(t, "https://randomuser.me/api/1.3/", cfg.APIBaseURL)
		assert.Equal(t, 330*time.Millisecond, cfg.RefreshDelay)
	})

	t.Run("no CONFIG and no flags → no changes", func(t *testing.T) {
		os.Args = []string{"testbin"}

		cfg := &Config{APIBaseURL: "http://defaults/", PageSize: 42}
		parseJson(cfg)

		assert.Equal(t, "http://defaults/", cfg.APIBaseURL)
		assert.Equal(t, 42, cfg.PageSize)
	})

	t.Run("invalid JSON → panics", func(t *testing.T) {
		bad := filepath.Join(dir, "bad.json")
		require.NoError(t, os.WriteFile(bad, []byte(`{ this is not valid json`), 0o600))

		os.Args = []string{"testbin", "-config", bad}

		cfg := &Config{}
		require.Panics(t, func() { parseJson(cfg) })
	})

	t.Run("missing file → panics", func(t *testing.T) {
		os.Args = []string{"testbin", "-c", filepath.Join(dir, "nope.json")}
		require.Panics(t, func() { parseJson(&Config{}) })
	})
}
