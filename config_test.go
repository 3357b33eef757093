package msdfatlas

import (
	"errors"
	"math"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.CellSize != 32 {
		t.Errorf("CellSize = %d, want 32", cfg.CellSize)
	}
	if cfg.Range != 4.0 {
		t.Errorf("Range = %v, want 4.0", cfg.Range)
	}
	if cfg.AngleThreshold != math.Pi/3 {
		t.Errorf("AngleThreshold = %v, want pi/3", cfg.AngleThreshold)
	}
	if cfg.Channels != 3 {
		t.Errorf("Channels = %d, want 3", cfg.Channels)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config Validate() = %v, want nil", err)
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
		field  string
	}{
		{"cell too small", func(c *Config) { c.CellSize = 4 }, "CellSize"},
		{"cell too large", func(c *Config) { c.CellSize = 2048 }, "CellSize"},
		{"zero range", func(c *Config) { c.Range = 0 }, "Range"},
		{"negative range", func(c *Config) { c.Range = -1 }, "Range"},
		{"range fills cell", func(c *Config) { c.Range = 16 }, "Range"},
		{"zero angle", func(c *Config) { c.AngleThreshold = 0 }, "AngleThreshold"},
		{"angle beyond pi", func(c *Config) { c.AngleThreshold = 4 }, "AngleThreshold"},
		{"bad channels", func(c *Config) { c.Channels = 2 }, "Channels"},
		{"negative padding", func(c *Config) { c.Padding = -1 }, "Padding"},
		{"negative workers", func(c *Config) { c.Workers = -1 }, "Workers"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.modify(&cfg)

			err := cfg.Validate()
			var cfgErr *ConfigError
			if !errors.As(err, &cfgErr) {
				t.Fatalf("Validate() = %v, want ConfigError", err)
			}
			if cfgErr.Field != tt.field {
				t.Errorf("ConfigError.Field = %q, want %q", cfgErr.Field, tt.field)
			}
		})
	}
}

func TestConfigCharsetDefault(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Charset != nil {
		t.Error("default Charset should be nil")
	}

	// nil falls back to ASCII.
	count := 0
	visitCharset(cfg.charset(), func(rune) { count++ })
	if count != 95 {
		t.Errorf("default charset visits %d runes, want 95", count)
	}

	cfg.Charset = CharsetRunes('A')
	count = 0
	visitCharset(cfg.charset(), func(rune) { count++ })
	if count != 1 {
		t.Errorf("explicit charset visits %d runes, want 1", count)
	}
}
