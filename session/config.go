package session

import (
	"time"

	"github.com/lixenwraith/void-ascent/enemy"
	"github.com/lixenwraith/void-ascent/parameter"
	"github.com/lixenwraith/void-ascent/score"
)

// Config holds session timings and the embedded component configs
type Config struct {
	// Seed drives every random choice in a run; zero picks one from the clock
	Seed uint64

	// RunID tags log lines of this session
	RunID string

	Enemy enemy.Config
	Score score.Config

	DeathAnimation     time.Duration
	TransitionClearing time.Duration
	TransitionDisplay  time.Duration
	ClearStagger       time.Duration
	MaxFrameDelta      time.Duration

	ChoiceCount int
}

// DefaultConfig returns the stock session tuning
func DefaultConfig() Config {
	return Config{
		Enemy:              enemy.DefaultConfig(),
		Score:              score.DefaultConfig(),
		DeathAnimation:     parameter.DeathAnimationDuration,
		TransitionClearing: parameter.TransitionClearingDuration,
		TransitionDisplay:  parameter.TransitionDisplayDuration,
		ClearStagger:       parameter.ClearStaggerMax,
		MaxFrameDelta:      parameter.MaxFrameDelta,
		ChoiceCount:        parameter.RogueChoiceCount,
	}
}
