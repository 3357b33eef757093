package msdfatlas

import (
	"math"
	"unicode"
)

// Config holds atlas generation parameters.
type Config struct {
	// CellSize is the pixel cell each glyph is framed into
	// (width = height). Typical values: 32, 48, 64.
	// Default: 32
	CellSize int

	// Range is the distance-field range in pixels. Larger values allow
	// heavier effects (outlines, glows) at render time at the cost of
	// corner fidelity at small cell sizes.
	// Default: 4.0
	Range float64

	// AngleThreshold is the minimum tangent turn (in radians) for a
	// vertex to count as a sharp corner during edge coloring.
	// Default: pi/3 (60 degrees)
	AngleThreshold float64

	// Channels per pixel: 3 (MSDF) or 4 (MSDF plus a true
	// signed-distance alpha channel).
	// Default: 3
	Channels int

	// Padding is the gap between glyph cells in the atlas, in pixels,
	// preventing sampler bleed between neighbors.
	// Default: 2
	Padding int

	// Workers is the number of goroutines generating glyphs.
	// 0 means one per available CPU.
	Workers int

	// Charset selects the runes whose glyphs populate the atlas.
	// Glyph 0 (.notdef) is always included. nil means CharsetASCII.
	Charset *unicode.RangeTable
}

// DefaultConfig returns the default generation configuration.
// These values work well for most text rendering scenarios.
func DefaultConfig() Config {
	return Config{
		CellSize:       32,
		Range:          4.0,
		AngleThreshold: math.Pi / 3,
		Channels:       3,
		Padding:        2,
	}
}

// Validate checks the configuration and returns an error if invalid.
func (c *Config) Validate() error {
	if c.CellSize < 8 {
		return &ConfigError{Field: "CellSize", Reason: "must be at least 8"}
	}
	if c.CellSize > 1024 {
		return &ConfigError{Field: "CellSize", Reason: "must be at most 1024"}
	}
	if c.Range <= 0 {
		return &ConfigError{Field: "Range", Reason: "must be positive"}
	}
	if 2*c.Range >= float64(c.CellSize) {
		return &ConfigError{Field: "Range", Reason: "must leave room in the cell"}
	}
	if c.AngleThreshold <= 0 || c.AngleThreshold > math.Pi {
		return &ConfigError{Field: "AngleThreshold", Reason: "must be in (0, pi]"}
	}
	if c.Channels != 3 && c.Channels != 4 {
		return &ConfigError{Field: "Channels", Reason: "must be 3 or 4"}
	}
	if c.Padding < 0 {
		return &ConfigError{Field: "Padding", Reason: "must be non-negative"}
	}
	if c.Workers < 0 {
		return &ConfigError{Field: "Workers", Reason: "must be non-negative"}
	}
	return nil
}

// charset returns the configured charset or the ASCII default.
func (c *Config) charset() *unicode.RangeTable {
	if c.Charset != nil {
		return c.Charset
	}
	return CharsetASCII()
}

// ConfigError represents a configuration validation error.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return "msdfatlas: invalid config." + e.Field + ": " + e.Reason
}
