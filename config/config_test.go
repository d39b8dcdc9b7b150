package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

// TestDefaultValid verifies compiled defaults pass validation
func TestDefaultValid(t *testing.T) {
	if err := Validate(Default()); err != nil {
		t.Errorf("Expected defaults valid, got %v", err)
	}
}

// TestParseEmpty verifies an empty document yields defaults
func TestParseEmpty(t *testing.T) {
	cfg, err := Parse(nil)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if cfg.Session.Score.ChainWindow != Default().Session.Score.ChainWindow {
		t.Errorf("Expected default chain window, got %v", cfg.Session.Score.ChainWindow)
	}
}

// TestParseOverrides verifies present fields override and absent fields keep defaults
func TestParseOverrides(t *testing.T) {
	doc := `
score:
  chain_window: 2s
  multiplier_cap: 20
  bonus_at: [4, 9]
enemy:
  max_enemies: 120
  separation_weight: 0.3
session:
  seed: 42
  clear_stagger: 500ms
engine:
  tick_interval: 8ms
audio:
  volume: 0.5
  muted: true
`
	cfg, err := Parse([]byte(doc))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	def := Default()
	if cfg.Session.Score.ChainWindow != 2*time.Second {
		t.Errorf("Expected chain window 2s, got %v", cfg.Session.Score.ChainWindow)
	}
	if cfg.Session.Score.MultiplierCap != 20 {
		t.Errorf("Expected cap 20, got %d", cfg.Session.Score.MultiplierCap)
	}
	if len(cfg.Session.Score.BonusAt) != 2 || cfg.Session.Score.BonusAt[1] != 9 {
		t.Errorf("Expected bonus_at [4 9], got %v", cfg.Session.Score.BonusAt)
	}
	if cfg.Session.Score.DecayWindow != def.Session.Score.DecayWindow {
		t.Errorf("Expected default decay window kept, got %v", cfg.Session.Score.DecayWindow)
	}
	if cfg.Session.Enemy.MaxEnemies != 120 || cfg.Session.Enemy.SeparationWeight != 0.3 {
		t.Errorf("Expected enemy overrides, got %+v", cfg.Session.Enemy)
	}
	if cfg.Session.Enemy.CellSize != def.Session.Enemy.CellSize {
		t.Errorf("Expected default cell size kept, got %v", cfg.Session.Enemy.CellSize)
	}
	if cfg.Session.Seed != 42 || cfg.Session.ClearStagger != 500*time.Millisecond {
		t.Errorf("Expected session overrides, got seed %d stagger %v", cfg.Session.Seed, cfg.Session.ClearStagger)
	}
	if cfg.Engine.TickInterval != 8*time.Millisecond {
		t.Errorf("Expected tick 8ms, got %v", cfg.Engine.TickInterval)
	}
	if !cfg.Audio.Muted || cfg.Audio.MasterVolume != 0.5 {
		t.Errorf("Expected audio overrides, got %+v", cfg.Audio)
	}
}

// TestParseInvalid verifies bad values and unknown keys report ErrInvalid
func TestParseInvalid(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"zero window", "score:\n  decay_window: 0s\n"},
		{"cap below one", "score:\n  multiplier_cap: 0\n"},
		{"bonus above cap", "score:\n  multiplier_cap: 5\n  bonus_at: [8]\n"},
		{"bad duration", "score:\n  combo_window: soon\n"},
		{"unknown key", "enemy:\n  speed_hack: 9\n"},
		{"weight out of range", "enemy:\n  separation_weight: 1.5\n"},
		{"volume out of range", "audio:\n  volume: 2\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.doc))
			if !errors.Is(err, ErrInvalid) {
				t.Errorf("Expected ErrInvalid, got %v", err)
			}
		})
	}
}

// TestLoad verifies file loading and missing file errors
func TestLoad(t *testing.T) {
	cfg, err := Load("")
	if err != nil || cfg.Engine.TickInterval != Default().Engine.TickInterval {
		t.Errorf("Expected defaults for empty path, got %v %v", cfg.Engine, err)
	}

	dir := t.TempDir()
	path := filepath.Join(dir, "tuning.yaml")
	if err := os.WriteFile(path, []byte("session:\n  choice_count: 2\n"), 0o644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}
	cfg, err = Load(path)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if cfg.Session.ChoiceCount != 2 {
		t.Errorf("Expected choice count 2, got %d", cfg.Session.ChoiceCount)
	}

	if _, err := Load(filepath.Join(dir, "missing.yaml")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Expected ErrNotExist, got %v", err)
	}
}
