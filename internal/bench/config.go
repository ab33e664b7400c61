package bench

import (
	"errors"
	"fmt"
)

// LogConfig controls the bench command's logger.
type LogConfig struct {
	// Format is "text" or "json".
	Format string

	// Level is one of none, debug, info, warn, error.
	Level string
}

// Config is the configuration of a benchmark run.
type Config struct {
	// Data is a Weather Underground CSV export. When empty, Rows synthetic
	// points are generated from Seed instead.
	Data string
	Rows int
	Seed int64

	// Scale multiplies the iteration count of every case.
	Scale float64

	// Filter keeps only the cases whose name contains one of its entries.
	Filter []string

	// MetricsOut, when set, receives the run's metrics in the Prometheus text format.
	MetricsOut string

	Log LogConfig
}

// DefaultConfig returns the configuration used when no flag, environment
// variable or config file overrides it.
func DefaultConfig() *Config {
	return &Config{
		Rows:  24000,
		Seed:  1948,
		Scale: 1,
		Log: LogConfig{
			Format: "text",
			Level:  "info",
		},
	}
}

// Verify returns an error describing the first invalid setting.
func (c *Config) Verify() error {
	if c.Data == "" && c.Rows <= 0 {
		return errors.New("rows must be positive when no data file is given")
	}
	if c.Scale <= 0 {
		return fmt.Errorf("scale must be positive, got %v", c.Scale)
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("config 'log.format' must be one of ['text', 'json'], got %q", c.Log.Format)
	}
	switch c.Log.Level {
	case "none", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("config 'log.level' must be one of ['none', 'debug', 'info', 'warn', 'error'], got %q", c.Log.Level)
	}
	return nil
}
