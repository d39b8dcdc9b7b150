package enemy

import (
	"time"

	"github.com/lixenwraith/void-ascent/service"
	"github.com/lixenwraith/void-ascent/vmath"
)

// Enemy is a single live or dying enemy
//
// Alive and KillTracked are separate: KillTracked flips exactly once when health
// first reaches zero and gates all bookkeeping, Alive stays true through a death
// animation and gates removal
type Enemy struct {
	ID     uint64
	Kind   Kind
	Pos    vmath.Vec2
	Vel    vmath.Vec2
	Radius float64

	Health    int
	MaxHealth int

	Alive       bool
	KillTracked bool

	// ChainKilled marks a death caused by another enemy's death radius
	ChainKilled bool

	// Executed marks a death forced by the session (level clearing), never scored
	Executed bool

	Visual service.Handle

	dying     time.Duration
	fireTimer time.Duration
	phase     float64
	despawned bool
}

// Hittable reports whether the enemy can still take damage or collide
func (e *Enemy) Hittable() bool {
	return e.Alive && !e.KillTracked
}

// Dying reports whether the enemy is playing its death animation
func (e *Enemy) Dying() bool {
	return e.Alive && e.KillTracked
}

// DeathProgress returns 0..1 through the death animation
func (e *Enemy) DeathProgress() float64 {
	if !e.KillTracked {
		return 0
	}
	total := ProfileOf(e.Kind).DeathDuration
	if total <= 0 || !e.Alive {
		return 1
	}
	return 1 - float64(e.dying)/float64(total)
}

// removable reports whether the enemy should leave the population
func (e *Enemy) removable() bool {
	return e.despawned || (e.KillTracked && !e.Alive)
}
