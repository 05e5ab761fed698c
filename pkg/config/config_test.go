package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Model.MaxThickness != 3.0 {
		t.Errorf("expected max thickness 3.0, got %g", cfg.Model.MaxThickness)
	}
	if cfg.Model.MinThickness != 0.6 {
		t.Errorf("expected min thickness 0.6, got %g", cfg.Model.MinThickness)
	}
	if cfg.Model.Width != 100 {
		t.Errorf("expected width 100, got %g", cfg.Model.Width)
	}
	if cfg.Model.Invert {
		t.Error("expected invert to be false by default")
	}
	if !cfg.Model.Smoothing {
		t.Error("expected smoothing to be true by default")
	}

	if cfg.Border.Enabled {
		t.Error("expected border to be disabled by default")
	}
	if cfg.Border.Style != "prism" {
		t.Errorf("expected border style 'prism', got %s", cfg.Border.Style)
	}

	if cfg.Output.Path != "lithophane.stl" {
		t.Errorf("expected output lithophane.stl, got %s", cfg.Output.Path)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got %s", cfg.Logging.Level)
	}
}

func TestLoadFromFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "preset.yaml")

	yamlContent := `
model:
  max_thickness: 4.5
  width: 150
  invert: true
border:
  enabled: true
  width: 8
  style: rounded
logging:
  level: debug
`
	if err := os.WriteFile(configPath, []byte(yamlContent), 0o644); err != nil {
		t.Fatalf("writing preset: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("loadFromFile failed: %v", err)
	}

	// Overridden values.
	if cfg.Model.MaxThickness != 4.5 {
		t.Errorf("max thickness: got %g, want 4.5", cfg.Model.MaxThickness)
	}
	if cfg.Model.Width != 150 {
		t.Errorf("width: got %g, want 150", cfg.Model.Width)
	}
	if !cfg.Model.Invert {
		t.Error("invert should be true")
	}
	if !cfg.Border.Enabled || cfg.Border.Width != 8 || cfg.Border.Style != "rounded" {
		t.Errorf("border: got %+v", cfg.Border)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("log level: got %s, want debug", cfg.Logging.Level)
	}

	// Values absent from the file keep their defaults.
	if cfg.Model.MinThickness != 0.6 {
		t.Errorf("min thickness: got %g, want default 0.6", cfg.Model.MinThickness)
	}
	if cfg.Border.Height != 5 {
		t.Errorf("border height: got %g, want default 5", cfg.Border.Height)
	}
}

func TestLoadFromFileMissing(t *testing.T) {
	cfg := Default()
	if err := loadFromFile(cfg, filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}
