package enemy

import (
	"math"

	"github.com/lixenwraith/void-ascent/event"
	"github.com/lixenwraith/void-ascent/parameter"
	"github.com/lixenwraith/void-ascent/vmath"
)

// processDeaths tracks every enemy whose health reached zero
// Each newly tracked death applies chain damage, which may kill neighbours;
// those are picked up by the next pass until no new deaths appear
func (c *Coordinator) processDeaths() {
	for {
		found := false
		for _, e := range c.enemies {
			if !e.Hittable() || e.Health > 0 {
				continue
			}
			found = true
			c.trackKill(e)
		}
		if !found {
			return
		}
	}
}

func (c *Coordinator) trackKill(e *Enemy) {
	e.KillTracked = true
	p := ProfileOf(e.Kind)
	if p.DeathDuration > 0 {
		e.dying = p.DeathDuration
	} else {
		e.Alive = false
	}
	e.Vel = vmath.Vec2{}
	c.statKilled.Add(1)

	c.applyChainDamage(e)

	if c.listener != nil {
		c.listener.EnemyKilled(e)
	}
}

// applyChainDamage damages hittable neighbours inside the death radius
// Damage falls off linearly to half at the edge: floor(base*(1-0.5*d/R))
func (c *Coordinator) applyChainDamage(src *Enemy) {
	p := ProfileOf(src.Kind)
	r := p.DeathRadius * c.chainMult
	if r <= 0 || p.DeathDamage <= 0 {
		return
	}
	for _, o := range c.enemies {
		if o == src || !o.Hittable() {
			continue
		}
		d := o.Pos.Dist(src.Pos)
		if d > r {
			continue
		}
		dmg := int(math.Floor(float64(p.DeathDamage) * (1 - parameter.ChainFalloff*d/r)))
		if dmg <= 0 {
			continue
		}
		before := o.Health
		o.Health -= dmg
		if before > 0 && o.Health <= 0 {
			o.ChainKilled = true
		}
		c.statChainHits.Add(1)
		if c.queue != nil {
			c.queue.Emit(event.EventChainHit, &event.ChainHitPayload{SourceID: src.ID, TargetID: o.ID, Damage: dmg}, c.frame)
		}
	}
}
