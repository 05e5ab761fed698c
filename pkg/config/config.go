// Package config handles conversion settings: built-in defaults,
// optionally overlaid by a YAML preset file, overlaid by command-line
// flags.
package config

// Config holds all conversion settings.
type Config struct {
	Model   ModelConfig   `yaml:"model"`
	Border  BorderConfig  `yaml:"border"`
	Output  OutputConfig  `yaml:"output"`
	Logging LoggingConfig `yaml:"logging"`
}

// ModelConfig holds the physical parameters of the lithophane.
type ModelConfig struct {
	MaxThickness float64 `yaml:"max_thickness"` // mm, darker areas
	MinThickness float64 `yaml:"min_thickness"` // mm, lighter areas
	Width        float64 `yaml:"width"`         // mm, target physical width
	Invert       bool    `yaml:"invert"`        // true: dark areas become thin
	Smoothing    bool    `yaml:"smoothing"`     // 3x3 Gaussian denoise
}

// BorderConfig holds the optional decorative frame settings.
type BorderConfig struct {
	Enabled bool    `yaml:"enabled"`
	Width   float64 `yaml:"width"`  // mm, annulus width
	Height  float64 `yaml:"height"` // mm, extrusion height
	Style   string  `yaml:"style"`  // "prism" or "rounded"
}

// OutputConfig holds serialization settings.
type OutputConfig struct {
	Path   string `yaml:"path"`
	Verify bool   `yaml:"verify"` // re-read the STL and check integrity
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Model: ModelConfig{
			MaxThickness: 3.0,
			MinThickness: 0.6,
			Width:        100,
			Invert:       false,
			Smoothing:    true,
		},
		Border: BorderConfig{
			Enabled: false,
			Width:   5,
			Height:  5,
			Style:   "prism",
		},
		Output: OutputConfig{
			Path: "lithophane.stl",
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}
