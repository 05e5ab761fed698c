package config

import "flag"

var (
	flagConfig       = flag.String("config", "", "Path to a YAML preset file")
	flagOutput       = flag.String("o", "", "Output STL file path")
	flagMaxThickness = flag.Float64("max-thickness", 0, "Maximum thickness in mm (darker areas)")
	flagMinThickness = flag.Float64("min-thickness", -1, "Minimum thickness in mm (lighter areas)")
	flagWidth        = flag.Float64("width", 0, "Model width in mm")
	flagInvert       = flag.Bool("invert", false, "Map dark areas to thin material")
	flagNoSmoothing  = flag.Bool("no-smoothing", false, "Disable Gaussian smoothing")
	flagBorder       = flag.Bool("border", false, "Add a decorative border frame")
	flagBorderWidth  = flag.Float64("border-width", 0, "Border frame width in mm")
	flagBorderHeight = flag.Float64("border-height", 0, "Border frame height in mm")
	flagBorderStyle  = flag.String("border-style", "", "Border style: prism or rounded")
	flagVerify       = flag.Bool("verify", false, "Re-read the written STL and check integrity")
	flagDebug        = flag.Bool("debug", false, "Enable debug logging")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit preset path if provided via -config.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagOutput != "" {
		cfg.Output.Path = *flagOutput
	}
	if *flagMaxThickness > 0 {
		cfg.Model.MaxThickness = *flagMaxThickness
	}
	if *flagMinThickness >= 0 {
		cfg.Model.MinThickness = *flagMinThickness
	}
	if *flagWidth > 0 {
		cfg.Model.Width = *flagWidth
	}
	if *flagInvert {
		cfg.Model.Invert = true
	}
	if *flagNoSmoothing {
		cfg.Model.Smoothing = false
	}
	if *flagBorder {
		cfg.Border.Enabled = true
	}
	if *flagBorderWidth > 0 {
		cfg.Border.Width = *flagBorderWidth
	}
	if *flagBorderHeight > 0 {
		cfg.Border.Height = *flagBorderHeight
	}
	if *flagBorderStyle != "" {
		cfg.Border.Style = *flagBorderStyle
	}
	if *flagVerify {
		cfg.Output.Verify = true
	}
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
}
