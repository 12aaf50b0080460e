package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Graphics.Width != 1280 {
		t.Errorf("expected width 1280, got %d", cfg.Graphics.Width)
	}
	if cfg.Graphics.Height != 720 {
		t.Errorf("expected height 720, got %d", cfg.Graphics.Height)
	}
	if cfg.Game.Variant != "thrust" {
		t.Errorf("expected default variant thrust, got %s", cfg.Game.Variant)
	}
	if cfg.Game.ScorePerSecond != 10.0 {
		t.Errorf("expected score_per_second 10, got %v", cfg.Game.ScorePerSecond)
	}
	if cfg.Game.MultiplierBands != 3 || cfg.Game.MaxMultiplier != 3 {
		t.Errorf("expected 3 bands / max 3, got %d / %d", cfg.Game.MultiplierBands, cfg.Game.MaxMultiplier)
	}
	if cfg.Game.ReplayLockout != 1.0 {
		t.Errorf("expected replay_lockout 1.0, got %v", cfg.Game.ReplayLockout)
	}
	if cfg.Spawner.BaseInterval <= cfg.Spawner.MinInterval {
		t.Errorf("expected base interval above min, got base=%v min=%v", cfg.Spawner.BaseInterval, cfg.Spawner.MinInterval)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level info, got %s", cfg.Logging.Level)
	}
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := `
game:
  variant: tilt
  gravity_magnitude: 99.5
  score_per_second: 4
spawner:
  base_interval: 1.5
  min_interval: 0.5
logging:
  level: debug
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Game.Variant != "tilt" {
		t.Errorf("expected variant tilt, got %s", cfg.Game.Variant)
	}
	if cfg.Game.GravityMagnitude != 99.5 {
		t.Errorf("expected gravity 99.5, got %v", cfg.Game.GravityMagnitude)
	}
	if cfg.Game.ScorePerSecond != 4 {
		t.Errorf("expected score_per_second 4, got %v", cfg.Game.ScorePerSecond)
	}
	// Values absent from the file keep their defaults.
	if cfg.Game.MultiplierBands != 3 {
		t.Errorf("expected default bands 3, got %d", cfg.Game.MultiplierBands)
	}
	if cfg.Spawner.BaseInterval != 1.5 || cfg.Spawner.MinInterval != 0.5 {
		t.Errorf("unexpected spawner intervals: %+v", cfg.Spawner)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("expected log level debug, got %s", cfg.Logging.Level)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	cases := []struct {
		name    string
		content string
	}{
		{"bad_variant", "game:\n  variant: gamepad\n"},
		{"zero_bands", "game:\n  variant: tilt\n  multiplier_bands: 0\n"},
		{"bad_decay", "spawner:\n  interval_decay: 1.5\n"},
		{"base_below_min", "spawner:\n  base_interval: 0.1\n  min_interval: 0.5\n"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.yaml")
			if err := os.WriteFile(path, []byte(c.content), 0644); err != nil {
				t.Fatal(err)
			}
			if _, err := Load(path); err == nil {
				t.Fatal("expected validation error, got nil")
			}
		})
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg := Default()
	cfg.Game.Variant = "tilt"
	cfg.Game.BannerHideWait = 5
	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("SaveTo: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.Game.Variant != "tilt" {
		t.Errorf("expected variant tilt after round trip, got %s", loaded.Game.Variant)
	}
	if loaded.Game.BannerHideWait != 5 {
		t.Errorf("expected banner_hide_wait 5 after round trip, got %v", loaded.Game.BannerHideWait)
	}
}
