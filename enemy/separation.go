package enemy

import "github.com/lixenwraith/void-ascent/vmath"

// ResolveEnemyCollisions redirects overlapping enemies apart
//
// Soft separation: each enemy sums a push away from every overlapping neighbour,
// weighted by overlap/(ra+rb), and blends it into its heading at the configured
// weight. Speed is preserved so the population flows rather than jitters.
// Stationary enemies are left alone. Rebuilds the grid first
func (c *Coordinator) ResolveEnemyCollisions() {
	c.grid.Rebuild(c.enemies)

	w := c.cfg.SeparationWeight
	for _, e := range c.enemies {
		if !e.Hittable() {
			continue
		}
		speed := e.Vel.Len()
		if speed < vmath.Epsilon {
			continue
		}

		var push vmath.Vec2
		reach := e.Radius + c.grid.maxRadius
		if reach < c.cfg.SeparationRadius {
			reach = c.cfg.SeparationRadius
		}
		c.grid.Query(e.Pos, reach, func(o *Enemy) bool {
			if o == e {
				return true
			}
			minDist := e.Radius + o.Radius
			d := e.Pos.Sub(o.Pos)
			dist := d.Len()
			if dist >= minDist {
				return true
			}
			var dir vmath.Vec2
			if dist < vmath.Epsilon {
				// Coincident centres have no defined direction
				dir = c.rng.UnitVector()
			} else {
				dir = d.Scale(1 / dist)
			}
			push = push.Add(dir.Scale((minDist - dist) / minDist))
			return true
		})

		if push.IsZero() {
			continue
		}
		blended := push.Normalize().Scale(w).Add(e.Vel.Scale((1 - w) / speed))
		if blended.IsZero() {
			continue
		}
		e.Vel = blended.WithLen(speed)
	}
}
