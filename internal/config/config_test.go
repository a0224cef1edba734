package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load(nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Dataset.Path != "resources/rgn.xml" {
		t.Errorf("expected default dataset path, got %q", cfg.Dataset.Path)
	}
	if cfg.Query.RadiusKm != 60 {
		t.Errorf("expected radius 60, got %v", cfg.Query.RadiusKm)
	}
	if cfg.Log.Level != "info" || cfg.Log.Format != "text" || cfg.Log.File != "rgnmap.log" {
		t.Errorf("unexpected log config %+v", cfg.Log)
	}
	if !cfg.TUI.Mouse || cfg.TUI.Zoom != 1 {
		t.Errorf("unexpected tui config %+v", cfg.TUI)
	}
	if cfg.Report {
		t.Error("expected report mode off")
	}
}

func TestLoadSources(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	t.Run("config file", func(t *testing.T) {
		if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("log:\n  level: debug\nquery:\n  radius_km: 30\n"), 0o644); err != nil {
			t.Fatal(err)
		}
		defer os.Remove(filepath.Join(dir, "config.yaml"))
		cfg, err := Load(nil)
		if err != nil {
			t.Fatal(err)
		}
		if cfg.Log.Level != "debug" || cfg.Query.RadiusKm != 30 {
			t.Errorf("expected file values, got %+v %+v", cfg.Log, cfg.Query)
		}
	})

	t.Run("environment", func(t *testing.T) {
		t.Setenv("RGNMAP_QUERY_RADIUS_KM", "25")
		t.Setenv("RGNMAP_LOG_FORMAT", "json")
		cfg, err := Load(nil)
		if err != nil {
			t.Fatal(err)
		}
		if cfg.Query.RadiusKm != 25 || cfg.Log.Format != "json" {
			t.Errorf("expected env values, got %+v %+v", cfg.Query, cfg.Log)
		}
	})

	t.Run("flags win over environment", func(t *testing.T) {
		t.Setenv("RGNMAP_QUERY_RADIUS_KM", "25")
		fs := Flags()
		if err := fs.Parse([]string{"--radius=12", "--report", "data/vgs.csv"}); err != nil {
			t.Fatal(err)
		}
		cfg, err := Load(fs)
		if err != nil {
			t.Fatal(err)
		}
		if cfg.Query.RadiusKm != 12 || !cfg.Report || cfg.Dataset.Path != "data/vgs.csv" {
			t.Errorf("expected flag values, got %+v", cfg)
		}
	})

	t.Run("explicit config file", func(t *testing.T) {
		p := filepath.Join(dir, "custom.yaml")
		if err := os.WriteFile(p, []byte("dataset:\n  path: other.geojson\n"), 0o644); err != nil {
			t.Fatal(err)
		}
		fs := Flags()
		if err := fs.Parse([]string{"--config", p}); err != nil {
			t.Fatal(err)
		}
		cfg, err := Load(fs)
		if err != nil {
			t.Fatal(err)
		}
		if cfg.Dataset.Path != "other.geojson" {
			t.Errorf("expected other.geojson, got %q", cfg.Dataset.Path)
		}
	})

	t.Run("missing explicit config file", func(t *testing.T) {
		fs := Flags()
		if err := fs.Parse([]string{"--config", filepath.Join(dir, "nope.yaml")}); err != nil {
			t.Fatal(err)
		}
		if _, err := Load(fs); err == nil {
			t.Error("expected an error for a missing config file")
		}
	})
}

func TestValidate(t *testing.T) {
	cfg := Config{
		Dataset: DatasetConfig{Path: ""},
		Log:     LogConfig{Level: "loud", Format: "xml"},
		Query:   QueryConfig{RadiusKm: -1},
		TUI:     TUIConfig{Zoom: 0},
	}
	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected validation error")
	}
	for _, want := range []string{"dataset.path", "log.level", "log.format", "query.radius_km", "tui.zoom"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("expected %q in %v", want, err)
		}
	}

	ok := Config{
		Dataset: DatasetConfig{Path: "rgn.xml"},
		Log:     LogConfig{Level: "WARN", Format: "json"},
		Query:   QueryConfig{RadiusKm: 60},
		TUI:     TUIConfig{Zoom: 1},
	}
	if err := ok.Validate(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}
