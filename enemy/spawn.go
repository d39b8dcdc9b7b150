package enemy

import (
	"math"
	"time"

	"github.com/lixenwraith/void-ascent/parameter"
	"github.com/lixenwraith/void-ascent/vmath"
)

// SpawnDisabled marks a kind that never spawns on a timer
const SpawnDisabled = time.Duration(math.MaxInt64)

// Schedule supplies per-kind spawn timing for the active level
type Schedule interface {
	// SpawnInterval returns the period for k; SpawnDisabled or <= 0 disables it
	SpawnInterval(k Kind) time.Duration

	// SpawnLimit caps timer spawns of k for the level; 0 is unlimited
	SpawnLimit(k Kind) int
}

// SpawnPolicy picks a spawn position
type SpawnPolicy interface {
	SpawnPoint(rng *vmath.FastRand, target vmath.Vec2) vmath.Vec2
}

// EdgeSpawn places enemies just outside a circular arena boundary at a random angle
type EdgeSpawn struct {
	Center   vmath.Vec2
	Boundary float64
}

func (s EdgeSpawn) SpawnPoint(rng *vmath.FastRand, _ vmath.Vec2) vmath.Vec2 {
	return s.Center.Add(rng.UnitVector().Scale(s.Boundary + parameter.SpawnEdgeMargin))
}

// AboveSpawn places enemies ahead of the target along the scroll axis
type AboveSpawn struct {
	Ahead     float64
	HalfWidth float64
}

func (s AboveSpawn) SpawnPoint(rng *vmath.FastRand, target vmath.Vec2) vmath.Vec2 {
	return vmath.V(rng.Range(-s.HalfWidth, s.HalfWidth), target.Y+s.Ahead)
}

// spawnTimers advances per-kind timers and calls spawn for each elapsed period
// A timer resets to zero on every spawn, so the fractional overshoot is dropped
func (c *Coordinator) spawnTimers(dt time.Duration) {
	if c.paused || c.schedule == nil {
		return
	}
	for k := Kind(0); k < KindCount; k++ {
		interval := c.schedule.SpawnInterval(k)
		if interval <= 0 || interval == SpawnDisabled {
			continue
		}
		if limit := c.schedule.SpawnLimit(k); limit > 0 && c.timerSpawned[k] >= limit {
			continue
		}
		c.timers[k] += dt
		if c.timers[k] >= interval {
			c.timers[k] = 0
			if _, err := c.Spawn(k, c.policy.SpawnPoint(c.rng, c.target)); err == nil {
				c.timerSpawned[k]++
			}
		}
	}
}
