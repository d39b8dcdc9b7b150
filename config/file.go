package config

import "time"

// file mirrors the YAML layout; nil fields keep defaults
type file struct {
	Score   *scoreSection   `yaml:"score"`
	Enemy   *enemySection   `yaml:"enemy"`
	Session *sessionSection `yaml:"session"`
	Engine  *engineSection  `yaml:"engine"`
	Audio   *audioSection   `yaml:"audio"`
}

type scoreSection struct {
	ChainWindow   *Duration `yaml:"chain_window"`
	DecayWindow   *Duration `yaml:"decay_window"`
	ComboWindow   *Duration `yaml:"combo_window"`
	ClusterWindow *Duration `yaml:"cluster_window"`
	MultiplierCap *int      `yaml:"multiplier_cap"`
	LostThreshold *int      `yaml:"lost_threshold"`
	ClusterMin    *int      `yaml:"cluster_min"`
	ComboTierStep *int      `yaml:"combo_tier_step"`
	BonusAt       []int     `yaml:"bonus_at"`
}

type enemySection struct {
	CellSize         *float64 `yaml:"cell_size"`
	SeparationRadius *float64 `yaml:"separation_radius"`
	SeparationWeight *float64 `yaml:"separation_weight"`
	Agility          *float64 `yaml:"agility"`
	ArenaRadius      *float64 `yaml:"arena_radius"`
	MaxEnemies       *int     `yaml:"max_enemies"`
	FizzerStreakCap  *int     `yaml:"fizzer_streak_cap"`
	FireRange        *float64 `yaml:"fire_range"`
}

type sessionSection struct {
	Seed               *uint64   `yaml:"seed"`
	DeathAnimation     *Duration `yaml:"death_animation"`
	TransitionClearing *Duration `yaml:"transition_clearing"`
	TransitionDisplay  *Duration `yaml:"transition_display"`
	ClearStagger       *Duration `yaml:"clear_stagger"`
	MaxFrameDelta      *Duration `yaml:"max_frame_delta"`
	ChoiceCount        *int      `yaml:"choice_count"`
}

type engineSection struct {
	TickInterval *Duration `yaml:"tick_interval"`
	MaxDelta     *Duration `yaml:"max_delta"`
}

type audioSection struct {
	SampleRate *int     `yaml:"sample_rate"`
	Volume     *float64 `yaml:"volume"`
	Muted      *bool    `yaml:"muted"`
	MaxVoices  *int     `yaml:"max_voices"`
}

func setDur(dst *time.Duration, src *Duration) {
	if src != nil {
		*dst = time.Duration(*src)
	}
}

func set[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}

func (f *file) apply(cfg *Config) {
	if s := f.Score; s != nil {
		sc := &cfg.Session.Score
		setDur(&sc.ChainWindow, s.ChainWindow)
		setDur(&sc.DecayWindow, s.DecayWindow)
		setDur(&sc.ComboWindow, s.ComboWindow)
		setDur(&sc.ClusterWindow, s.ClusterWindow)
		set(&sc.MultiplierCap, s.MultiplierCap)
		set(&sc.LostThreshold, s.LostThreshold)
		set(&sc.ClusterMin, s.ClusterMin)
		set(&sc.ComboTierStep, s.ComboTierStep)
		if s.BonusAt != nil {
			sc.BonusAt = s.BonusAt
		}
	}

	if e := f.Enemy; e != nil {
		ec := &cfg.Session.Enemy
		set(&ec.CellSize, e.CellSize)
		set(&ec.SeparationRadius, e.SeparationRadius)
		set(&ec.SeparationWeight, e.SeparationWeight)
		set(&ec.Agility, e.Agility)
		set(&ec.ArenaRadius, e.ArenaRadius)
		set(&ec.MaxEnemies, e.MaxEnemies)
		set(&ec.FizzerStreakCap, e.FizzerStreakCap)
		set(&ec.FireRange, e.FireRange)
	}

	if s := f.Session; s != nil {
		set(&cfg.Session.Seed, s.Seed)
		setDur(&cfg.Session.DeathAnimation, s.DeathAnimation)
		setDur(&cfg.Session.TransitionClearing, s.TransitionClearing)
		setDur(&cfg.Session.TransitionDisplay, s.TransitionDisplay)
		setDur(&cfg.Session.ClearStagger, s.ClearStagger)
		setDur(&cfg.Session.MaxFrameDelta, s.MaxFrameDelta)
		set(&cfg.Session.ChoiceCount, s.ChoiceCount)
	}

	if e := f.Engine; e != nil {
		setDur(&cfg.Engine.TickInterval, e.TickInterval)
		setDur(&cfg.Engine.MaxDelta, e.MaxDelta)
	}

	if a := f.Audio; a != nil {
		set(&cfg.Audio.SampleRate, a.SampleRate)
		set(&cfg.Audio.MasterVolume, a.Volume)
		set(&cfg.Audio.Muted, a.Muted)
		set(&cfg.Audio.MaxVoices, a.MaxVoices)
	}
}
