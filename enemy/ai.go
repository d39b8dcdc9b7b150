package enemy

import (
	"math"
	"time"

	"github.com/lixenwraith/void-ascent/parameter"
	"github.com/lixenwraith/void-ascent/vmath"
)

// steer turns the velocity toward the kind's desired heading at constant speed
func (c *Coordinator) steer(e *Enemy, sec float64, elapsed time.Duration) {
	p := ProfileOf(e.Kind)
	to := c.target.Sub(e.Pos)
	dist := to.Len()
	if dist < vmath.Epsilon {
		return
	}
	toward := to.Scale(1 / dist)

	var desired vmath.Vec2
	switch p.Movement {
	case MoveChase:
		desired = toward
	case MoveWobble:
		desired = toward.Rotate(0.8 * math.Sin(elapsed.Seconds()*4+e.phase))
	case MoveStrafe:
		switch {
		case dist > p.Range+1:
			desired = toward
		case dist < p.Range-1:
			desired = toward.Scale(-1)
		default:
			desired = toward.Perp()
		}
	case MoveOrbit:
		// Tangent plus a radial correction toward the orbit ring
		radial := vmath.Clamp((dist-p.Range)/p.Range, -1, 1)
		desired = toward.Perp().Add(toward.Scale(radial)).Normalize()
	case MoveFlee:
		if dist < p.Range {
			desired = toward.Scale(-1).Rotate(0.5 * math.Sin(elapsed.Seconds()*3+e.phase))
		} else {
			desired = toward.Perp()
		}
	}

	t := c.cfg.Agility * sec
	if t > 1 || e.Vel.IsZero() {
		t = 1
	}
	heading := vmath.Lerp(e.Vel.Normalize(), desired, t)
	if heading.IsZero() {
		heading = desired
	}
	e.Vel = heading.WithLen(p.Speed)
}

// fire advances the weapon timer of armed kinds and emits shots in range
func (c *Coordinator) fire(e *Enemy, dt time.Duration) {
	p := ProfileOf(e.Kind)
	if p.Fire == FireNone || p.FireInterval <= 0 || c.shooter == nil {
		return
	}
	e.fireTimer += dt
	if e.fireTimer < p.FireInterval {
		return
	}
	to := c.target.Sub(e.Pos)
	if to.Len() > c.cfg.FireRange {
		// Hold the charge until the target comes in range
		e.fireTimer = p.FireInterval
		return
	}
	e.fireTimer = 0

	aim := to.Normalize()
	switch p.Fire {
	case FireAimed:
		c.shooter.EnemyShot(e.Pos, aim)
	case FireSpread:
		for i := -1; i <= 1; i++ {
			c.shooter.EnemyShot(e.Pos, aim.Rotate(float64(i)*parameter.ShotSpread*1.5))
		}
	case FireRadial:
		const ring = 12
		base := c.rng.Angle()
		for i := 0; i < ring; i++ {
			c.shooter.EnemyShot(e.Pos, vmath.FromAngle(base+float64(i)*2*math.Pi/ring))
		}
	}
}
