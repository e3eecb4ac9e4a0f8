package ticker

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

const (
	defaultSymbol     = "XYZ"
	defaultLowLimit   = 80
	defaultHighLimit  = 120
	defaultTicks      = 10
	defaultIntervalMS = 500
)

// Config holds initialization parameters for the demo ticker run.
type Config struct {
	Symbol     string  `json:"symbol,omitempty"`
	LowLimit   float64 `json:"low_limit,omitempty"`
	HighLimit  float64 `json:"high_limit,omitempty"`
	Ticks      int     `json:"ticks,omitempty"`
	IntervalMS int     `json:"interval_ms,omitempty"`
}

// DefaultConfig returns a Config with the demo defaults: warners at 80 and
// 120, ten ticks, two ticks per second.
func DefaultConfig() Config {
	return Config{
		Symbol:     defaultSymbol,
		LowLimit:   defaultLowLimit,
		HighLimit:  defaultHighLimit,
		Ticks:      defaultTicks,
		IntervalMS: defaultIntervalMS,
	}
}

// Merge applies non-zero values from source into c.
func (c *Config) Merge(source *Config) {
	if source.Symbol != "" {
		c.Symbol = source.Symbol
	}
	if source.LowLimit > 0 {
		c.LowLimit = source.LowLimit
	}
	if source.HighLimit > 0 {
		c.HighLimit = source.HighLimit
	}
	if source.Ticks > 0 {
		c.Ticks = source.Ticks
	}
	if source.IntervalMS > 0 {
		c.IntervalMS = source.IntervalMS
	}
}

// Interval returns the tick interval as a duration.
func (c *Config) Interval() time.Duration {
	return time.Duration(c.IntervalMS) * time.Millisecond
}

// LoadConfig reads a JSON config file, merges it with defaults, and returns
// the resulting Config.
func LoadConfig(filename string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var loaded Config
	if err := json.Unmarshal(data, &loaded); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	cfg.Merge(&loaded)
	return &cfg, nil
}
