// Package config loads runtime configuration for the randomusers client.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-u string     base URL of the random-user API
//	-p int        page size
//	-d string     SQLite database path
//	-t int        request timeout (seconds)
//	-r duration   refresh delay, e.g. 330ms
//	-l string     log level
//
// # JSON schema
//
// Durations use timex.Duration, so values can be strings like "10s" or
// integer nanoseconds:
//
//	{
//	  "api_base_url": "https://randomuser.me/api/1.3/",
//	  "page_size": 10,
//	  "database_dsn": "data/randomusers.db",
//	  "request_timeout": "10s",
//	  "refresh_delay": "330ms",
//	  "log_level": "info"
//	}
//
// Environment variables are not read.
package config
