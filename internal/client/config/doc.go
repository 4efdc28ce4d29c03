// Package config loads runtime configuration for the ragctl CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Environment variables, with an optional .env file (see parseEnv).
//  4. Command-line flags (see parseFlags), which override earlier values.
//
// # JSON schema
//
// The JSON loader uses timex.Duration for intervals, so values can be either
// strings like "15s" or integer nanoseconds:
//
//	{
//	  "base_url": "http://localhost:8000",
//	  "request_timeout": "15s",
//	  "chat_timeout": "120s",
//	  "online_check_interval": "10s",
//	  "database_path": "ragctl.db",
//	  "demo_login": false
//	}
//
// Primary API
//
//   - type Config                     — all runtime settings
//   - func LoadConfig() *Config      — builds Config by applying defaults, JSON, env, then flags
//   - func (*Config) LoadDefaults()  — sets sensible defaults
package config
