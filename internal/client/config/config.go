package config

import "time"

// Config holds runtime settings for the ragctl CLI.
type Config struct {
	// BaseURL is the backend root; contract paths are resolved under
	// BaseURL + /api/v1.
	BaseURL string

	// RequestTimeout applies to metadata/listing calls; ChatTimeout applies
	// to chat turns, uploads and server-side ingestion, which run the agent
	// loop and take materially longer.
	RequestTimeout time.Duration
	ChatTimeout    time.Duration

	// OnlineCheckInterval is how often the REPL probes backend health.
	OnlineCheckInterval time.Duration

	// DatabasePath is the local sqlite file holding the persisted token and
	// the chat transcript.
	DatabasePath string

	// DemoLogin enables unattended auto-login with the fixed credential pair
	// below when no token is persisted. A demo/test convenience, never a
	// security feature: disabled by default and not to be enabled where real
	// credential entry is expected.
	DemoLogin    bool
	DemoUsername string
	DemoPassword string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.BaseURL = "http://localhost:8000"
	c.RequestTimeout = 15 * time.Second
	c.ChatTimeout = 120 * time.Second
	c.OnlineCheckInterval = 10 * time.Second
	c.DatabasePath = "ragctl.db"
	c.DemoLogin = false
	c.DemoUsername = "demo"
	c.DemoPassword = "demo12345"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present), environment variables, and command-line flags. Later
// sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
