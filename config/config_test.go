package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "game.toml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if cfg.Game.IncomingSlots != 8 {
		t.Errorf("Expected 8 incoming slots, got %d", cfg.Game.IncomingSlots)
	}
	if cfg.Game.MaxLaunchesPerFrame != 4 {
		t.Errorf("Expected 4 launches per frame, got %d", cfg.Game.MaxLaunchesPerFrame)
	}
	if len(cfg.WaveTable()) != 19 || len(cfg.FlyerTable()) != 8 {
		t.Errorf("Expected 19 waves and 8 flyer rows, got %d and %d", len(cfg.WaveTable()), len(cfg.FlyerTable()))
	}
}

func TestLoadOverridesTables(t *testing.T) {
	path := writeConfig(t, `
[game]
incoming_slots = 6
seed = 42

[[waves]]
missiles = 3
speed = 50.0
smartbombs = 1

[[flyers]]
min_height = 100
max_height = 50
cooldown = 2.0
shoot_cooldown = 1.0

[logging]
level = "debug"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if cfg.Game.IncomingSlots != 6 || cfg.Game.Seed != 42 {
		t.Errorf("Expected overrides, got slots=%d seed=%d", cfg.Game.IncomingSlots, cfg.Game.Seed)
	}
	if cfg.Game.MaxLaunchesPerFrame != 4 {
		t.Errorf("Expected untouched default 4, got %d", cfg.Game.MaxLaunchesPerFrame)
	}
	if len(cfg.Waves) != 1 || cfg.Waves[0].Missiles != 3 {
		t.Errorf("Expected single replaced wave, got %+v", cfg.Waves)
	}
	if len(cfg.Flyers) != 1 || cfg.Flyers[0].Cooldown != 2 {
		t.Errorf("Expected single replaced flyer row, got %+v", cfg.Flyers)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Expected debug level, got %s", cfg.Logging.Level)
	}
}

func TestLoadRejectsEmptyTables(t *testing.T) {
	path := writeConfig(t, "waves = []\n")
	if _, err := Load(path); !errors.Is(err, ErrEmptyWaveTable) {
		t.Errorf("Expected ErrEmptyWaveTable, got %v", err)
	}

	path = writeConfig(t, "flyers = []\n")
	if _, err := Load(path); !errors.Is(err, ErrEmptyFlyerTable) {
		t.Errorf("Expected ErrEmptyFlyerTable, got %v", err)
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	path := writeConfig(t, "[game]\nincoming_slots = 0\n")
	if _, err := Load(path); !errors.Is(err, ErrInvalidValue) {
		t.Errorf("Expected ErrInvalidValue, got %v", err)
	}

	path = writeConfig(t, "[game]\nfork_height_min = 120.0\nfork_height_max = 100.0\n")
	if _, err := Load(path); !errors.Is(err, ErrInvalidValue) {
		t.Errorf("Expected ErrInvalidValue for inverted fork range, got %v", err)
	}
}

func TestLoadMissingAndMalformed(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.toml")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Expected wrapped os.ErrNotExist, got %v", err)
	}

	path := writeConfig(t, "[game\n")
	if _, err := Load(path); err == nil {
		t.Error("Expected parse error")
	}
}
