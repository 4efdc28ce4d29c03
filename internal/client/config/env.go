package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Environment variable names. A .env file in the working directory is loaded
// first; real environment values win over .env entries (godotenv.Load does
// not override existing variables).
const (
	EnvBaseURL             = "RAGCTL_BASE_URL"
	EnvRequestTimeout      = "RAGCTL_REQUEST_TIMEOUT"
	EnvChatTimeout         = "RAGCTL_CHAT_TIMEOUT"
	EnvOnlineCheckInterval = "RAGCTL_ONLINE_CHECK_INTERVAL"
	EnvDatabasePath        = "RAGCTL_DATABASE_PATH"
	EnvDemoLogin           = "RAGCTL_DEMO_LOGIN"
	EnvDemoUsername        = "RAGCTL_DEMO_USERNAME"
	EnvDemoPassword        = "RAGCTL_DEMO_PASSWORD"
)

// parseEnv overlays Config with values from the environment. Unset or
// malformed variables leave the earlier value in place.
func parseEnv(cfg *Config) {
	_ = godotenv.Load()

	if v := os.Getenv(EnvBaseURL); v != "" {
		cfg.BaseURL = v
	}
	if v := os.Getenv(EnvRequestTimeout); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.RequestTimeout = d
		}
	}
	if v := os.Getenv(EnvChatTimeout); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.ChatTimeout = d
		}
	}
	if v := os.Getenv(EnvOnlineCheckInterval); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.OnlineCheckInterval = d
		}
	}
	if v := os.Getenv(EnvDatabasePath); v != "" {
		cfg.DatabasePath = v
	}
	if v := os.Getenv(EnvDemoLogin); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.DemoLogin = b
		}
	}
	if v := os.Getenv(EnvDemoUsername); v != "" {
		cfg.DemoUsername = v
	}
	if v := os.Getenv(EnvDemoPassword); v != "" {
		cfg.DemoPassword = v
	}
}
