// Package config handles client configuration: defaults, an optional JSON
// overlay, and command-line flags, in that order of precedence.
package config

import "time"

// Config holds runtime settings for the kickitup CLI.
//
// Fields:
//   - BaseURL: root URL of the marketplace REST backend.
//   - DatabasePath: SQLite file holding the persisted session token.
//   - RequestTimeout: per-request HTTP timeout.
//   - NotificationTTL: how long a queued notification stays visible.
type Config struct {
	BaseURL         string
	DatabasePath    string
	RequestTimeout  time.Duration
	NotificationTTL time.Duration
	Verbose         bool
}

// LoadDefaults populates c with development defaults.
func (c *Config) LoadDefaults() {
	c.BaseURL = "http://localhost:8080"
	c.DatabasePath = "kickitup.db"
	c.RequestTimeout = 10 * time.Second
	c.NotificationTTL = 3 * time.Second
	c.Verbose = false
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if a config file was given) and command-line flags. Later sources
// take precedence.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJSON(cfg)
	parseFlags(cfg)
	return cfg
}
