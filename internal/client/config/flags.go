package config

import (
	"flag"
	"io"

	"github.com/dmitrijs2005/hrmportal/internal/flagx"
)

var ownFlags = []string{
	"-a", "-t", "-d", "-l", "-v", "-r", "-m",
	"--a", "--t", "--d", "--l", "--v", "--r", "--m",
}

// parseFlags populates Config fields from command-line flags:
//
//	-a string     backend base URL
//	-t duration   per-request timeout
//	-d string     session database file
//	-l string     log file
//	-v string     log level (debug, info, warn, error)
//	-r float      max backend calls per second, 0 to disable
//	-m string     serve Prometheus metrics on this address
//
// Unknown flags in args are ignored; they belong to other loaders.
func parseFlags(cfg *Config, args []string) error {
	args = flagx.FilterArgs(args, ownFlags)

	fs := flag.NewFlagSet("hrm", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.BaseURL, "a", cfg.BaseURL, "backend base URL")
	fs.DurationVar(&cfg.RequestTimeout, "t", cfg.RequestTimeout, "request timeout")
	fs.StringVar(&cfg.SessionDB, "d", cfg.SessionDB, "session database file")
	fs.StringVar(&cfg.LogFile, "l", cfg.LogFile, "log file")
	fs.StringVar(&cfg.LogLevel, "v", cfg.LogLevel, "log level")
	fs.Float64Var(&cfg.RateLimit, "r", cfg.RateLimit, "max requests per second")
	fs.StringVar(&cfg.MetricsAddr, "m", cfg.MetricsAddr, "metrics listen address")

	return fs.Parse(args)
}
