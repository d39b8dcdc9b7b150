// Package config loads the optional YAML tuning file over compiled defaults
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/void-ascent/audio"
	"github.com/lixenwraith/void-ascent/engine"
	"github.com/lixenwraith/void-ascent/session"
)

// ErrInvalid marks a tuning file that parsed but holds unusable values
var ErrInvalid = errors.New("invalid config")

// Config is the resolved tuning for one process
type Config struct {
	Session session.Config
	Engine  engine.Config
	Audio   audio.Config
}

// Default returns compiled defaults
func Default() Config {
	return Config{
		Session: session.DefaultConfig(),
		Engine:  engine.DefaultConfig(),
		Audio:   audio.DefaultConfig(),
	}
}

// Load reads path over defaults; an empty path yields defaults
func Load(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML over defaults; unknown keys are rejected
func Parse(data []byte) (Config, error) {
	cfg := Default()

	var f file
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("%w: %v", ErrInvalid, err)
	}

	f.apply(&cfg)
	if err := Validate(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks ranges the simulation relies on
func Validate(cfg Config) error {
	sc := cfg.Session.Score
	ec := cfg.Session.Enemy

	checks := []struct {
		ok   bool
		what string
	}{
		{sc.ChainWindow > 0, "score.chain_window must be positive"},
		{sc.DecayWindow > 0, "score.decay_window must be positive"},
		{sc.ComboWindow > 0, "score.combo_window must be positive"},
		{sc.ClusterWindow > 0, "score.cluster_window must be positive"},
		{sc.MultiplierCap >= 1, "score.multiplier_cap must be at least 1"},
		{sc.ClusterMin >= 2, "score.cluster_min must be at least 2"},
		{sc.ComboTierStep >= 1, "score.combo_tier_step must be at least 1"},
		{ec.CellSize > 0, "enemy.cell_size must be positive"},
		{ec.SeparationRadius >= 0, "enemy.separation_radius must not be negative"},
		{ec.SeparationWeight >= 0 && ec.SeparationWeight <= 1, "enemy.separation_weight must be within [0,1]"},
		{ec.Agility > 0, "enemy.agility must be positive"},
		{ec.ArenaRadius > 0, "enemy.arena_radius must be positive"},
		{ec.MaxEnemies >= 1, "enemy.max_enemies must be at least 1"},
		{ec.FizzerStreakCap >= 1, "enemy.fizzer_streak_cap must be at least 1"},
		{cfg.Session.DeathAnimation > 0, "session.death_animation must be positive"},
		{cfg.Session.TransitionClearing > 0, "session.transition_clearing must be positive"},
		{cfg.Session.TransitionDisplay > 0, "session.transition_display must be positive"},
		{cfg.Session.ClearStagger >= 0, "session.clear_stagger must not be negative"},
		{cfg.Session.MaxFrameDelta > 0, "session.max_frame_delta must be positive"},
		{cfg.Session.ChoiceCount >= 1, "session.choice_count must be at least 1"},
		{cfg.Engine.TickInterval > 0, "engine.tick_interval must be positive"},
		{cfg.Engine.MaxDelta > 0, "engine.max_delta must be positive"},
		{cfg.Audio.SampleRate > 0, "audio.sample_rate must be positive"},
		{cfg.Audio.MasterVolume >= 0 && cfg.Audio.MasterVolume <= 1, "audio.volume must be within [0,1]"},
	}
	for _, c := range checks {
		if !c.ok {
			return fmt.Errorf("%w: %s", ErrInvalid, c.what)
		}
	}
	for _, m := range sc.BonusAt {
		if m < 2 || m > sc.MultiplierCap {
			return fmt.Errorf("%w: score.bonus_at value %d outside [2,%d]", ErrInvalid, m, sc.MultiplierCap)
		}
	}
	return nil
}

// Duration decodes Go duration strings such as "1.5s" or "800ms"
type Duration time.Duration

// UnmarshalYAML implements yaml.Unmarshaler
func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	v, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("line %d: %w", node.Line, err)
	}
	*d = Duration(v)
	return nil
}
