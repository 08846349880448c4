package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseFlags_Overrides(t *testing.T) {
	withArgs(t, "-a", "https://api.kicks.test", "-d", "/tmp/kicks.db", "-t", "25", "-v")

	var cfg Config
	cfg.LoadDefaults()
	parseFlags(&cfg)

	assert.Equal(t, "https://api.kicks.test", cfg.BaseURL)
	assert.Equal(t, "/tmp/kicks.db", cfg.DatabasePath)
	assert.Equal(t, 25*time.Second, cfg.RequestTimeout)
	assert.True(t, cfg.Verbose)
}

func TestParseFlags_IgnoresForeignFlags(t *testing.T) {
	withArgs(t, "-c", "conf.json", "-a", "https://api.kicks.test")

	var cfg Config
	cfg.LoadDefaults()
	parseFlags(&cfg)

	assert.Equal(t, "https://api.kicks.test", cfg.BaseURL)
	assert.Equal(t, "kickitup.db", cfg.DatabasePath)
}
