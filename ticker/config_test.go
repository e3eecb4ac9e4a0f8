package ticker_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/toddsundsted/eventful/ticker"
)

func TestDefaultConfig(t *testing.T) {
	cfg := ticker.DefaultConfig()

	if cfg.LowLimit != 80 {
		t.Errorf("got LowLimit %v, want 80", cfg.LowLimit)
	}
	if cfg.HighLimit != 120 {
		t.Errorf("got HighLimit %v, want 120", cfg.HighLimit)
	}
	if cfg.Ticks != 10 {
		t.Errorf("got Ticks %d, want 10", cfg.Ticks)
	}
	if cfg.Interval() != 500*time.Millisecond {
		t.Errorf("got Interval %v, want 500ms", cfg.Interval())
	}
}

func TestConfig_Merge(t *testing.T) {
	cfg := ticker.DefaultConfig()

	source := &ticker.Config{
		Symbol:    "ABC",
		HighLimit: 150,
		Ticks:     3,
	}

	cfg.Merge(source)

	if cfg.Symbol != "ABC" {
		t.Errorf("got Symbol %q, want %q", cfg.Symbol, "ABC")
	}
	if cfg.HighLimit != 150 {
		t.Errorf("got HighLimit %v, want 150", cfg.HighLimit)
	}
	if cfg.Ticks != 3 {
		t.Errorf("got Ticks %d, want 3", cfg.Ticks)
	}
}

func TestConfig_Merge_ZeroValuesPreserveDefaults(t *testing.T) {
	cfg := ticker.DefaultConfig()
	original := cfg

	cfg.Merge(&ticker.Config{}) // All zero values

	if cfg != original {
		t.Errorf("got %+v, want defaults preserved %+v", cfg, original)
	}
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "config.json")

	content := `{
		"symbol": "LOADED",
		"low_limit": 70,
		"interval_ms": 250
	}`

	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	cfg, err := ticker.LoadConfig(configPath)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if cfg.Symbol != "LOADED" {
		t.Errorf("got Symbol %q, want %q", cfg.Symbol, "LOADED")
	}
	if cfg.LowLimit != 70 {
		t.Errorf("got LowLimit %v, want 70", cfg.LowLimit)
	}
	if cfg.IntervalMS != 250 {
		t.Errorf("got IntervalMS %d, want 250", cfg.IntervalMS)
	}
	if cfg.HighLimit != 120 {
		t.Errorf("got HighLimit %v, want default 120 preserved", cfg.HighLimit)
	}
}

func TestLoadConfig_MissingFile(t *testing.T) {
	if _, err := ticker.LoadConfig(filepath.Join(t.TempDir(), "absent.json")); err == nil {
		t.Error("LoadConfig of a missing file succeeded, want error")
	}
}
