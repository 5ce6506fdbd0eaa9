// Package config loads runtime configuration for the HRM portal CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. HRM_* environment variables, with a .env file filling the gaps.
//  3. Optional JSON file selected via flags: -c or -config.
//  4. Command-line flags, which override earlier values.
//
// # JSON schema
//
//	{
//	  "base_url": "http://127.0.0.1:9000",
//	  "request_timeout": "30s",
//	  "session_db": "hrm_session.db",
//	  "log_file": "hrm_client.log",
//	  "log_level": "info",
//	  "rate_limit": 5,
//	  "metrics_addr": "127.0.0.1:9102"
//	}
package config
