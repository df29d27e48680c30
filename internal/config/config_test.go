package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Default().Validate() = %v", err)
	}
	if cfg.Map.Width != 80 || cfg.Map.Height != 45 {
		t.Errorf("default map = %dx%d, want 80x45", cfg.Map.Width, cfg.Map.Height)
	}
}

func TestEmbeddedDefaultsMatchDefault(t *testing.T) {
	cfg, err := parse(defaultYAML)
	if err != nil {
		t.Fatalf("parse(defaults.yaml) error: %v", err)
	}
	if cfg != Default() {
		t.Errorf("defaults.yaml = %+v, want %+v", cfg, Default())
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	content := "seed: 42\nrooms:\n  max_rooms: 5\nfov:\n  radius: 6\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Seed != 42 || cfg.Rooms.MaxRooms != 5 || cfg.FOV.Radius != 6 {
		t.Errorf("Load() = %+v, want seed 42, max_rooms 5, radius 6", cfg)
	}
	// Unspecified keys keep their defaults
	if cfg.Map.Width != 80 || cfg.Rooms.MinSize != 6 || !cfg.FOV.LightWalls {
		t.Errorf("Load() lost defaults: %+v", cfg)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("Load() of a missing file should fail")
	}

	broken := filepath.Join(dir, "broken.yaml")
	if err := os.WriteFile(broken, []byte("map: [not, a, map"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(broken); err == nil {
		t.Error("Load() of malformed YAML should fail")
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("rooms:\n  min_size: 9\n  max_size: 4\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(invalid); !errors.Is(err, ErrInvalid) {
		t.Errorf("Load() of invalid config = %v, want ErrInvalid", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"tiny map", func(c *Config) { c.Map.Width = 2 }},
		{"tiny rooms", func(c *Config) { c.Rooms.MinSize = 2 }},
		{"max below min", func(c *Config) { c.Rooms.MaxSize = 5 }},
		{"negative rooms", func(c *Config) { c.Rooms.MaxRooms = -1 }},
		{"negative monsters", func(c *Config) { c.Rooms.MaxMonsters = -1 }},
		{"negative radius", func(c *Config) { c.FOV.Radius = -2 }},
		{"unknown algorithm", func(c *Config) { c.FOV.Algorithm = "shadowcast" }},
	}

	for _, tt := range tests {
		cfg := Default()
		tt.mutate(&cfg)
		if err := cfg.Validate(); !errors.Is(err, ErrInvalid) {
			t.Errorf("%s: Validate() = %v, want ErrInvalid", tt.name, err)
		}
	}
}
