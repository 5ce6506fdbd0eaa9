package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Environment variables understood by parseEnv.
const (
	EnvBaseURL        = "HRM_BASE_URL"
	EnvRequestTimeout = "HRM_REQUEST_TIMEOUT"
	EnvSessionDB      = "HRM_SESSION_DB"
	EnvLogFile        = "HRM_LOG_FILE"
	EnvLogLevel       = "HRM_LOG_LEVEL"
	EnvRateLimit      = "HRM_RATE_LIMIT"
	EnvMetricsAddr    = "HRM_METRICS_ADDR"
)

// parseEnv overlays cfg with HRM_* variables. Values from envFile are used
// only where the process environment leaves the variable empty; a missing
// envFile is not an error.
func parseEnv(cfg *Config, envFile string) error {
	values := map[string]string{}

	if envFile != "" {
		fileValues, err := godotenv.Read(envFile)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("read %s: %w", envFile, err)
		}
		for k, v := range fileValues {
			values[k] = v
		}
	}

	for _, k := range []string{EnvBaseURL, EnvRequestTimeout, EnvSessionDB, EnvLogFile, EnvLogLevel, EnvRateLimit, EnvMetricsAddr} {
		if v, ok := os.LookupEnv(k); ok && v != "" {
			values[k] = v
		}
	}

	if v := values[EnvBaseURL]; v != "" {
		cfg.BaseURL = v
	}
	if v := values[EnvRequestTimeout]; v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvRequestTimeout, err)
		}
		cfg.RequestTimeout = d
	}
	if v := values[EnvSessionDB]; v != "" {
		cfg.SessionDB = v
	}
	if v := values[EnvLogFile]; v != "" {
		cfg.LogFile = v
	}
	if v := values[EnvLogLevel]; v != "" {
		cfg.LogLevel = v
	}
	if v := values[EnvRateLimit]; v != "" {
		r, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvRateLimit, err)
		}
		cfg.RateLimit = r
	}
	if v := values[EnvMetricsAddr]; v != "" {
		cfg.MetricsAddr = v
	}

	return nil
}
