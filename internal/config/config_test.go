package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := []byte(`
grid:
  width: 40
  height: 20
speed:
  start_level: 7
food:
  foods_per: 1
  cells_per: 50
theme: ocean
`)
	if err := os.WriteFile(path, content, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Grid.Width != 40 || cfg.Grid.Height != 20 {
		t.Errorf("grid = %dx%d, want 40x20", cfg.Grid.Width, cfg.Grid.Height)
	}
	if cfg.Speed.StartLevel != 7 {
		t.Errorf("start level = %d, want 7", cfg.Speed.StartLevel)
	}
	if cfg.Food.CellsPer != 50 {
		t.Errorf("cells per = %d, want 50", cfg.Food.CellsPer)
	}
	if cfg.Theme != "ocean" {
		t.Errorf("theme = %q, want ocean", cfg.Theme)
	}
}

func TestLoadCustomPathMissingFails(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("expected error for missing custom config path")
	}
}

func TestLoadCustomPathMalformedFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("grid: [not a map"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected error for malformed config")
	}
}

func TestNormalizeClampsRanges(t *testing.T) {
	cfg := Config{}
	cfg.Speed.StartLevel = 0
	cfg.Food.FoodsPer = 0
	cfg.Food.CellsPer = -5
	cfg.Grid.Width = -1
	cfg.Normalize()

	if cfg.Speed.StartLevel != 1 {
		t.Errorf("start level = %d, want 1", cfg.Speed.StartLevel)
	}
	if cfg.Food.FoodsPer != 1 || cfg.Food.CellsPer != 1 {
		t.Errorf("density = %d/%d, want 1/1", cfg.Food.FoodsPer, cfg.Food.CellsPer)
	}
	if cfg.Grid.Width != 0 {
		t.Errorf("grid width = %d, want 0", cfg.Grid.Width)
	}

	cfg.Speed.StartLevel = 99
	cfg.Normalize()
	if cfg.Speed.StartLevel != 10 {
		t.Errorf("start level = %d, want 10", cfg.Speed.StartLevel)
	}
}

func TestDefaultMatchesEmbedded(t *testing.T) {
	def := Default()
	if def.Speed.StartLevel != 1 {
		t.Errorf("default start level = %d, want 1", def.Speed.StartLevel)
	}
	if def.Food.FoodsPer != 1 || def.Food.CellsPer != 200 {
		t.Errorf("default density = %d/%d, want 1/200", def.Food.FoodsPer, def.Food.CellsPer)
	}
	if def.Theme != "ember" {
		t.Errorf("default theme = %q, want ember", def.Theme)
	}
}
