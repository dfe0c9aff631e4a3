package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestDefaultConfig checks the documented defaults and that they validate.
func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())

	assert.Equal(t, time.Second, time.Duration(cfg.Monitor.Interval))
	assert.Equal(t, 500*time.Millisecond, time.Duration(cfg.Monitor.SampleTimeout))
	assert.Equal(t, 60, cfg.Monitor.HistorySize)
	assert.Equal(t, 60, cfg.Monitor.GraphWidth)
	assert.Equal(t, 6, cfg.Monitor.GraphHeight)
	assert.Equal(t, 5, cfg.Monitor.TrendWindow)
	assert.Equal(t, 0.10, cfg.Monitor.TrendTolerance)
	assert.Equal(t, "info", cfg.Logging.Level)
}

// TestValidateRejectsBadValues walks the validation rules.
func TestValidateRejectsBadValues(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero interval", func(c *Config) { c.Monitor.Interval = 0 }},
		{"zero timeout", func(c *Config) { c.Monitor.SampleTimeout = 0 }},
		{"timeout exceeds interval", func(c *Config) { c.Monitor.SampleTimeout = Duration(2 * time.Second) }},
		{"zero history", func(c *Config) { c.Monitor.HistorySize = 0 }},
		{"zero graph width", func(c *Config) { c.Monitor.GraphWidth = 0 }},
		{"zero graph height", func(c *Config) { c.Monitor.GraphHeight = 0 }},
		{"trend window too small", func(c *Config) { c.Monitor.TrendWindow = 1 }},
		{"negative tolerance", func(c *Config) { c.Monitor.TrendTolerance = -0.1 }},
		{"tolerance of one", func(c *Config) { c.Monitor.TrendTolerance = 1.0 }},
		{"bad log level", func(c *Config) { c.Logging.Level = "verbose" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

// TestLoadFromEnv checks environment overrides, including duration parsing.
func TestLoadFromEnv(t *testing.T) {
	t.Setenv("NETWATCH_INTERVAL", "2s")
	t.Setenv("NETWATCH_SAMPLE_TIMEOUT", "250ms")
	t.Setenv("NETWATCH_HISTORY_SIZE", "120")
	t.Setenv("NETWATCH_TREND_TOLERANCE", "0.25")
	t.Setenv("NETWATCH_LOG_LEVEL", "debug")

	cfg := DefaultConfig()
	LoadFromEnv(cfg)

	assert.Equal(t, 2*time.Second, time.Duration(cfg.Monitor.Interval))
	assert.Equal(t, 250*time.Millisecond, time.Duration(cfg.Monitor.SampleTimeout))
	assert.Equal(t, 120, cfg.Monitor.HistorySize)
	assert.Equal(t, 0.25, cfg.Monitor.TrendTolerance)
	assert.Equal(t, "debug", cfg.Logging.Level)
	require.NoError(t, cfg.Validate())
}

// TestLoadFromEnvIgnoresGarbage checks that unparsable values leave the
// defaults alone.
func TestLoadFromEnvIgnoresGarbage(t *testing.T) {
	t.Setenv("NETWATCH_INTERVAL", "soon")
	t.Setenv("NETWATCH_HISTORY_SIZE", "many")

	cfg := DefaultConfig()
	LoadFromEnv(cfg)
	assert.Equal(t, time.Second, time.Duration(cfg.Monitor.Interval))
	assert.Equal(t, 60, cfg.Monitor.HistorySize)
}

// TestLoadFromYAMLFile checks yaml parsing, including duration strings.
func TestLoadFromYAMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "netwatch.yaml")
	data := []byte(`
monitor:
  interval: 5s
  sampleTimeout: 1s
  historySize: 30
  graphWidth: 40
  graphHeight: 8
  trendWindow: 7
  trendTolerance: 0.2
logging:
  level: warn
`)
	require.NoError(t, os.WriteFile(path, data, 0644))

	cfg := DefaultConfig()
	require.NoError(t, LoadFromFile(path, cfg))
	assert.Equal(t, 5*time.Second, time.Duration(cfg.Monitor.Interval))
	assert.Equal(t, time.Second, time.Duration(cfg.Monitor.SampleTimeout))
	assert.Equal(t, 30, cfg.Monitor.HistorySize)
	assert.Equal(t, 40, cfg.Monitor.GraphWidth)
	assert.Equal(t, 8, cfg.Monitor.GraphHeight)
	assert.Equal(t, 7, cfg.Monitor.TrendWindow)
	assert.Equal(t, 0.2, cfg.Monitor.TrendTolerance)
	assert.Equal(t, "warn", cfg.Logging.Level)
	// Untouched sections keep their defaults.
	assert.Equal(t, 10, cfg.Logging.MaxSize)
}

// TestLoadFromFileErrors checks the failure modes.
func TestLoadFromFileErrors(t *testing.T) {
	cfg := DefaultConfig()
	assert.Error(t, LoadFromFile(filepath.Join(t.TempDir(), "missing.yaml"), cfg))

	badExt := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(badExt, []byte("x = 1"), 0644))
	assert.Error(t, LoadFromFile(badExt, cfg))

	badDuration := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(badDuration, []byte("monitor:\n  interval: fast\n"), 0644))
	assert.Error(t, LoadFromFile(badDuration, cfg))
}

// TestSaveLoadRoundTrip checks that a saved config loads back identically in
// both supported formats.
func TestSaveLoadRoundTrip(t *testing.T) {
	for _, ext := range []string{"yaml", "json"} {
		t.Run(ext, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "netwatch."+ext)
			cfg := DefaultConfig()
			cfg.Monitor.Interval = Duration(3 * time.Second)
			cfg.Monitor.GraphWidth = 42
			require.NoError(t, cfg.SaveToFile(path))

			loaded := DefaultConfig()
			require.NoError(t, LoadFromFile(path, loaded))
			assert.Equal(t, cfg, loaded)
		})
	}
}
