package session

import (
	"github.com/lixenwraith/void-ascent/enemy"
	"github.com/lixenwraith/void-ascent/parameter"
)

// resolveCollisions runs every Playing-state overlap test
// Enemy deaths are only marked here; chain damage and removal follow in Reap
func (s *Session) resolveCollisions() {
	s.resolveShots()
	s.resolveHostileShots()
	s.resolveContact()
	s.resolvePickups()
	s.resolveWormhole()
}

// resolveShots hits at most one enemy per player shot through the coordinator grid
func (s *Session) resolveShots() {
	for _, p := range s.projectiles {
		if p.dead || p.Hostile {
			continue
		}
		s.enemies.ForEachNear(p.Pos, p.Radius, func(e *enemy.Enemy) bool {
			reach := e.Radius + p.Radius
			if e.Pos.Sub(p.Pos).LenSq() > reach*reach {
				return true
			}
			s.enemies.Hit(e, p.Damage)
			p.dead = true
			return false
		})
	}
}

func (s *Session) resolveHostileShots() {
	pl := s.player
	for _, p := range s.projectiles {
		if p.dead || !p.Hostile {
			continue
		}
		reach := pl.Radius + p.Radius
		if p.Pos.Sub(pl.Pos).LenSq() <= reach*reach {
			p.dead = true
			s.damagePlayer(p.Damage)
		}
	}
}

// resolveContact applies the strongest touching enemy's contact damage, once per frame
func (s *Session) resolveContact() {
	pl := s.player
	worst := 0
	s.enemies.ForEachNear(pl.Pos, pl.Radius, func(e *enemy.Enemy) bool {
		reach := e.Radius + pl.Radius
		if e.Pos.Sub(pl.Pos).LenSq() <= reach*reach {
			worst = max(worst, enemy.ProfileOf(e.Kind).ContactDamage)
		}
		return true
	})
	if worst > 0 {
		s.damagePlayer(worst)
	}
}

func (s *Session) resolvePickups() {
	pl := s.player
	reach := pl.Radius + parameter.PickupRadius
	for _, pk := range s.pickups {
		if pk.collected {
			continue
		}
		if pk.Pos.Sub(pl.Pos).LenSq() <= reach*reach {
			s.collectPickup(pk)
		}
	}
}

func (s *Session) resolveWormhole() {
	w := s.wormhole
	if w == nil {
		return
	}
	reach := w.Radius + s.player.Radius
	if w.Pos.Sub(s.player.Pos).LenSq() <= reach*reach {
		s.enterRogueChoice()
	}
}
