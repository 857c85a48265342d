package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/randomusers/internal/flagx"
)

// parseFlags populates Config fields from command-line flags:
//
//	-u string     base URL of the random-user API
//	-p int        page size
//	-d string     SQLite database path
//	-t int        request timeout in seconds
//	-r duration   delay before the first fetch after a refresh
//	-l string     log level
//
// os.Args is filtered with flagx.FilterArgs first, so flags meant for
// other components are ignored. Parse errors panic.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-u", "-p", "-d", "-t", "-r", "-l"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.APIBaseURL, "u", cfg.APIBaseURL, "base URL of the random-user API")
	fs.IntVar(&cfg.PageSize, "p", cfg.PageSize, "users per page")
	fs.StringVar(&cfg.DatabaseDSN, "d", cfg.DatabaseDSN, "path to the local SQLite cache")
	timeout := fs.Int("t", int(cfg.RequestTimeout.Seconds()), "request timeout (in seconds)")
	fs.DurationVar(&cfg.RefreshDelay, "r", cfg.RefreshDelay, "delay before refetching after a refresh")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level (debug, info, warn, error)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.RequestTimeout = time.Duration(*timeout) * time.Second
}
