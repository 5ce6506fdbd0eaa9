package config

import (
	"time"
)

// DefaultEnvFile is read, when present, before the JSON file and flags.
const DefaultEnvFile = ".env"

// Config holds runtime settings for the HRM portal CLI.
type Config struct {
	// BaseURL is the scheme://host:port of the HRM REST backend.
	BaseURL        string
	RequestTimeout time.Duration
	// SessionDB is the SQLite file holding the signed-in session.
	SessionDB string
	LogFile   string
	LogLevel  string
	// RateLimit caps backend calls per second; zero disables it.
	RateLimit float64
	// MetricsAddr, when set, serves Prometheus metrics on host:port.
	MetricsAddr string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.BaseURL = "http://127.0.0.1:9000"
	c.RequestTimeout = 30 * time.Second
	c.SessionDB = "hrm_session.db"
	c.LogFile = "hrm_client.log"
	c.LogLevel = "info"
	c.RateLimit = 0
	c.MetricsAddr = ""
}

// LoadConfig builds a Config from defaults, the environment (including
// DefaultEnvFile), the JSON file named by -c/-config and finally the flags in
// args. Later sources take precedence over earlier ones. args excludes the
// program name.
func LoadConfig(args []string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()

	if err := parseEnv(cfg, DefaultEnvFile); err != nil {
		return nil, err
	}
	if err := parseJson(cfg, args); err != nil {
		return nil, err
	}
	if err := parseFlags(cfg, args); err != nil {
		return nil, err
	}
	return cfg, nil
}
