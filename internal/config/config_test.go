package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/tiltmaze/internal/tilt"
)

func TestEmbeddedMatchesHardcoded(t *testing.T) {
	cfg, err := parse(DefaultYAML())
	if err != nil {
		t.Fatalf("embedded yaml does not parse: %v", err)
	}
	if cfg != DefaultConfig() {
		t.Errorf("embedded config = %+v\nwant %+v", cfg, DefaultConfig())
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults invalid: %v", err)
	}
}

func TestLoadCustomPathOverlaysDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := "loop:\n  tick_rate: 30\ntilt:\n  source: keyboard\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Loop.TickRate != 30 || cfg.Tilt.Source != tilt.ModeKeyboard {
		t.Errorf("overrides not applied: %+v", cfg)
	}
	if cfg.World.Width != 1000 || cfg.Tilt.Alpha != 0.1 {
		t.Errorf("defaults lost: %+v", cfg)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("expected error for missing custom config")
	}

	bad := filepath.Join(dir, "bad.yaml")
	os.WriteFile(bad, []byte("loop: [oops"), 0o644)
	if _, err := Load(bad); err == nil {
		t.Error("expected parse error")
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	os.WriteFile(invalid, []byte("tilt:\n  alpha: 3\n"), 0o644)
	if _, err := Load(invalid); err == nil || !strings.Contains(err.Error(), "tilt.alpha") {
		t.Errorf("Load(invalid) error = %v, want alpha validation error", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		field  string
	}{
		{"world", func(c *Config) { c.World.Width = 0 }, "world size"},
		{"tick rate", func(c *Config) { c.Loop.TickRate = -1 }, "tick_rate"},
		{"max dt", func(c *Config) { c.Loop.MaxDT = 0 }, "max_dt"},
		{"alpha", func(c *Config) { c.Tilt.Alpha = 0 }, "alpha"},
		{"max tilt", func(c *Config) { c.Tilt.MaxTilt = 0 }, "max_tilt"},
		{"source", func(c *Config) { c.Tilt.Source = "joystick" }, "tilt.source"},
		{"aspect", func(c *Config) { c.Render.CellAspect = 0 }, "cell_aspect"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if err == nil || !strings.Contains(err.Error(), tt.field) {
				t.Errorf("Validate() = %v, want mention of %q", err, tt.field)
			}
		})
	}
}
