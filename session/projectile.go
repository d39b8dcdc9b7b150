package session

import (
	"log"
	"time"

	"github.com/lixenwraith/void-ascent/event"
	"github.com/lixenwraith/void-ascent/parameter"
	"github.com/lixenwraith/void-ascent/service"
	"github.com/lixenwraith/void-ascent/vmath"
)

// Projectile is a player or enemy shot
type Projectile struct {
	Pos     vmath.Vec2
	Vel     vmath.Vec2
	Radius  float64
	Damage  int
	Hostile bool
	Visual  service.Handle

	life time.Duration
	dead bool
}

// Weapon is the player's auto-aiming gun
type Weapon struct {
	Damage   int
	Spread   int     // Extra shots per volley
	RateMult float64 // Fire rate multiplier

	cooldown time.Duration
}

func newWeapon() Weapon {
	return Weapon{Damage: parameter.ShotDamage, RateMult: 1}
}

// updateWeapon fires a volley toward the nearest enemy, or along the facing with none in range
func (s *Session) updateWeapon(dt time.Duration, in service.Intent) {
	w := &s.weapon
	w.cooldown = max(w.cooldown-dt, 0)
	if !in.Fire || w.cooldown > 0 {
		return
	}

	aim := s.player.Facing
	if target := s.enemies.Nearest(s.player.Pos, parameter.WeaponRange); target != nil {
		if d := target.Pos.Sub(s.player.Pos); !d.IsZero() {
			aim = d.Normalize()
		}
	}

	n := 1 + w.Spread
	first := -float64(n-1) / 2
	for i := 0; i < n; i++ {
		dir := aim.Rotate((first + float64(i)) * parameter.ShotSpread)
		s.addProjectile(s.player.Pos, dir.Scale(parameter.ShotSpeed), parameter.ShotRadius, w.Damage, false, parameter.ShotLifetime)
	}
	w.cooldown = time.Duration(float64(parameter.FireCooldown) / w.RateMult)
	s.emit(event.EventPlayerFired, nil)
}

// EnemyShot receives hostile projectiles from the coordinator
func (s *Session) EnemyShot(from, dir vmath.Vec2) {
	s.addProjectile(from, dir.WithLen(parameter.EnemyShotSpeed), parameter.EnemyShotRadius, parameter.EnemyShotDamage, true, parameter.EnemyShotLifetime)
}

func (s *Session) addProjectile(pos, vel vmath.Vec2, radius float64, dmg int, hostile bool, life time.Duration) {
	kind := service.VisualShot
	if hostile {
		kind = service.VisualEnemyShot
	}
	h, err := s.scene.PlaceVisual(service.Visual{Kind: kind, Pos: pos, Radius: radius})
	if err != nil {
		log.Printf("[session] shot placement failed: %v", err)
		return
	}
	s.projectiles = append(s.projectiles, &Projectile{
		Pos: pos, Vel: vel, Radius: radius, Damage: dmg, Hostile: hostile, Visual: h, life: life,
	})
}

func (s *Session) updateProjectiles(dt time.Duration) {
	sec := dt.Seconds()
	for _, p := range s.projectiles {
		p.life -= dt
		if p.life <= 0 {
			p.dead = true
			continue
		}
		p.Pos = p.Pos.Add(p.Vel.Scale(sec))
		s.scene.MoveVisual(p.Visual, p.Pos)
	}
}

// sweepProjectiles drops spent shots and their visuals
func (s *Session) sweepProjectiles() {
	n := 0
	for _, p := range s.projectiles {
		if p.dead {
			s.scene.RemoveVisual(p.Visual)
			continue
		}
		s.projectiles[n] = p
		n++
	}
	clear(s.projectiles[n:])
	s.projectiles = s.projectiles[:n]
}

func (s *Session) clearProjectiles() {
	for _, p := range s.projectiles {
		p.dead = true
	}
	s.sweepProjectiles()
}
