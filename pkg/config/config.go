// Package config provides configuration handling for the network monitor.
package config

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/irctrakz/netwatch/pkg/logging"
)

// Duration wraps time.Duration so config files can carry values like "500ms"
// or "2s" instead of raw nanosecond counts.
type Duration time.Duration

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	v, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", s, err)
	}
	*d = Duration(v)
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (d Duration) MarshalYAML() (interface{}, error) {
	return time.Duration(d).String(), nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (d *Duration) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	v, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", s, err)
	}
	*d = Duration(v)
	return nil
}

// MarshalJSON implements json.Marshaler.
func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}

// Config represents the complete monitor configuration.
type Config struct {
	// Monitor contains the sampling and display configuration.
	Monitor MonitorConfig `json:"monitor" yaml:"monitor"`

	// Logging contains the logging configuration.
	Logging LoggingConfig `json:"logging" yaml:"logging"`
}

// MonitorConfig contains configuration for the tick loop and the graphs.
type MonitorConfig struct {
	// Interval is the tick cadence between samples.
	Interval Duration `json:"interval" yaml:"interval"`

	// SampleTimeout bounds a single counter-source call so a stuck source
	// cannot stall a tick.
	SampleTimeout Duration `json:"sample_timeout" yaml:"sampleTimeout"`

	// HistorySize is the per-interface rolling window capacity in samples.
	HistorySize int `json:"history_size" yaml:"historySize"`

	// GraphWidth is the graph width in columns, one sample per column.
	GraphWidth int `json:"graph_width" yaml:"graphWidth"`

	// GraphHeight is the graph height in rows.
	GraphHeight int `json:"graph_height" yaml:"graphHeight"`

	// TrendWindow is the number of recent samples the trend classifier
	// inspects.
	TrendWindow int `json:"trend_window" yaml:"trendWindow"`

	// TrendTolerance is the relative band within which traffic counts as
	// stable (0.10 = ±10%).
	TrendTolerance float64 `json:"trend_tolerance" yaml:"trendTolerance"`
}

// LoggingConfig contains configuration for logging.
type LoggingConfig struct {
	// Level is the logging level (debug, info, warn, error).
	Level string `json:"level" yaml:"level"`

	// File is the log file path. Empty means standard error; the dashboard
	// silences logs while a full-screen presenter owns the terminal.
	File string `json:"file" yaml:"file"`

	// MaxSize is the maximum size of the log file in megabytes.
	MaxSize int `json:"maxSize" yaml:"maxSize"`

	// MaxBackups is the maximum number of old log files to retain.
	MaxBackups int `json:"maxBackups" yaml:"maxBackups"`

	// MaxAge is the maximum number of days to retain old log files.
	MaxAge int `json:"maxAge" yaml:"maxAge"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Monitor: MonitorConfig{
			Interval:       Duration(time.Second),
			SampleTimeout:  Duration(500 * time.Millisecond),
			HistorySize:    60,
			GraphWidth:     60,
			GraphHeight:    6,
			TrendWindow:    5,
			TrendTolerance: 0.10,
		},
		Logging: LoggingConfig{
			Level:      "info",
			File:       "",
			MaxSize:    10,
			MaxBackups: 3,
			MaxAge:     7,
		},
	}
}

// LoadFromFile loads configuration from a file.
func LoadFromFile(path string, config *Config) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open config file: %w", err)
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	// Determine file format based on extension
	switch {
	case strings.HasSuffix(path, ".json"):
		if err := json.Unmarshal(data, config); err != nil {
			return fmt.Errorf("failed to parse JSON config: %w", err)
		}
	case strings.HasSuffix(path, ".yaml"), strings.HasSuffix(path, ".yml"):
		if err := yaml.Unmarshal(data, config); err != nil {
			return fmt.Errorf("failed to parse YAML config: %w", err)
		}
	default:
		return fmt.Errorf("unsupported config file format: %s", path)
	}

	return nil
}

// LoadFromEnv loads configuration from environment variables.
func LoadFromEnv(config *Config) {
	// Monitor config
	if val := os.Getenv("NETWATCH_INTERVAL"); val != "" {
		if d, err := time.ParseDuration(val); err == nil {
			config.Monitor.Interval = Duration(d)
		}
	}
	if val := os.Getenv("NETWATCH_SAMPLE_TIMEOUT"); val != "" {
		if d, err := time.ParseDuration(val); err == nil {
			config.Monitor.SampleTimeout = Duration(d)
		}
	}
	if val := os.Getenv("NETWATCH_HISTORY_SIZE"); val != "" {
		if n, err := strconv.Atoi(val); err == nil {
			config.Monitor.HistorySize = n
		}
	}
	if val := os.Getenv("NETWATCH_GRAPH_WIDTH"); val != "" {
		if n, err := strconv.Atoi(val); err == nil {
			config.Monitor.GraphWidth = n
		}
	}
	if val := os.Getenv("NETWATCH_GRAPH_HEIGHT"); val != "" {
		if n, err := strconv.Atoi(val); err == nil {
			config.Monitor.GraphHeight = n
		}
	}
	if val := os.Getenv("NETWATCH_TREND_WINDOW"); val != "" {
		if n, err := strconv.Atoi(val); err == nil {
			config.Monitor.TrendWindow = n
		}
	}
	if val := os.Getenv("NETWATCH_TREND_TOLERANCE"); val != "" {
		if f, err := strconv.ParseFloat(val, 64); err == nil {
			config.Monitor.TrendTolerance = f
		}
	}

	// Logging config
	if val := os.Getenv("NETWATCH_LOG_LEVEL"); val != "" {
		config.Logging.Level = val
	}
	if val := os.Getenv("NETWATCH_LOG_FILE"); val != "" {
		config.Logging.File = val
	}
	if val := os.Getenv("NETWATCH_LOG_MAX_SIZE"); val != "" {
		if n, err := strconv.Atoi(val); err == nil {
			config.Logging.MaxSize = n
		}
	}
	if val := os.Getenv("NETWATCH_LOG_MAX_BACKUPS"); val != "" {
		if n, err := strconv.Atoi(val); err == nil {
			config.Logging.MaxBackups = n
		}
	}
	if val := os.Getenv("NETWATCH_LOG_MAX_AGE"); val != "" {
		if n, err := strconv.Atoi(val); err == nil {
			config.Logging.MaxAge = n
		}
	}
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.Monitor.Interval <= 0 {
		return fmt.Errorf("invalid interval: %s", time.Duration(c.Monitor.Interval))
	}
	if c.Monitor.SampleTimeout <= 0 {
		return fmt.Errorf("invalid sample timeout: %s", time.Duration(c.Monitor.SampleTimeout))
	}
	if c.Monitor.SampleTimeout > c.Monitor.Interval {
		return fmt.Errorf("sample timeout %s exceeds interval %s",
			time.Duration(c.Monitor.SampleTimeout), time.Duration(c.Monitor.Interval))
	}
	if c.Monitor.HistorySize < 1 {
		return fmt.Errorf("invalid history size: %d", c.Monitor.HistorySize)
	}
	if c.Monitor.GraphWidth < 1 || c.Monitor.GraphHeight < 1 {
		return fmt.Errorf("invalid graph dimensions: %dx%d", c.Monitor.GraphWidth, c.Monitor.GraphHeight)
	}
	if c.Monitor.TrendWindow < 2 {
		return fmt.Errorf("trend window must be at least 2, got %d", c.Monitor.TrendWindow)
	}
	if c.Monitor.TrendTolerance <= 0 || c.Monitor.TrendTolerance >= 1 {
		return fmt.Errorf("trend tolerance must be in (0, 1), got %g", c.Monitor.TrendTolerance)
	}

	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
		// Valid levels
	default:
		return fmt.Errorf("invalid logging level: %s", c.Logging.Level)
	}

	return nil
}

// ApplyLogging applies the logging configuration.
func (c *Config) ApplyLogging() error {
	var level logging.Level
	switch c.Logging.Level {
	case "debug":
		level = logging.DebugLevel
	case "info":
		level = logging.InfoLevel
	case "warn":
		level = logging.WarnLevel
	case "error":
		level = logging.ErrorLevel
	default:
		level = logging.InfoLevel
	}
	logging.SetLevel(level)

	if c.Logging.File != "" {
		dir := "."
		filename := c.Logging.File
		if lastSlash := strings.LastIndex(c.Logging.File, "/"); lastSlash != -1 {
			dir = c.Logging.File[:lastSlash]
			filename = c.Logging.File[lastSlash+1:]
		}

		err := logging.EnableFileLogging(
			dir,
			filename,
			c.Logging.MaxSize,
			c.Logging.MaxBackups,
			c.Logging.MaxAge,
		)
		if err != nil {
			return fmt.Errorf("failed to enable file logging: %w", err)
		}
	}

	return nil
}

// SaveToFile saves the configuration to a file.
func (c *Config) SaveToFile(path string) error {
	var data []byte
	var err error

	switch {
	case strings.HasSuffix(path, ".json"):
		data, err = json.MarshalIndent(c, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal config to JSON: %w", err)
		}
	case strings.HasSuffix(path, ".yaml"), strings.HasSuffix(path, ".yml"):
		data, err = yaml.Marshal(c)
		if err != nil {
			return fmt.Errorf("failed to marshal config to YAML: %w", err)
		}
	default:
		return fmt.Errorf("unsupported config file format: %s", path)
	}

	if lastSlash := strings.LastIndex(path, "/"); lastSlash != -1 {
		if err := os.MkdirAll(path[:lastSlash], 0755); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
