package session

import (
	"fmt"
	"log"
	"time"

	"github.com/lixenwraith/void-ascent/enemy"
	"github.com/lixenwraith/void-ascent/event"
	"github.com/lixenwraith/void-ascent/parameter"
	"github.com/lixenwraith/void-ascent/service"
	"github.com/lixenwraith/void-ascent/vmath"
)

// PickupKind is the pickup type
type PickupKind int

const (
	PickupXP PickupKind = iota
	PickupHealth
)

// Pickup is a collectible dropped by a scored kill
type Pickup struct {
	Kind   PickupKind
	Pos    vmath.Vec2
	Value  int
	Visual service.Handle

	life      time.Duration
	collected bool
}

// dropLoot places an XP shard and occasionally a health pack at a kill
func (s *Session) dropLoot(e *enemy.Enemy) {
	s.addPickup(PickupXP, e.Pos, enemy.ProfileOf(e.Kind).XP)
	if s.rng.Chance(parameter.HealthDropChance) {
		s.addPickup(PickupHealth, e.Pos.Add(s.rng.UnitVector().Scale(0.6)), parameter.HealthPackValue)
	}
}

func (s *Session) addPickup(kind PickupKind, pos vmath.Vec2, value int) {
	if value <= 0 {
		return
	}
	h, err := s.scene.PlaceVisual(service.Visual{Kind: service.VisualPickup, Tag: int(kind), Pos: pos, Radius: parameter.PickupRadius})
	if err != nil {
		log.Printf("[session] pickup placement failed: %v", err)
		return
	}
	s.pickups = append(s.pickups, &Pickup{Kind: kind, Pos: pos, Value: value, Visual: h, life: parameter.PickupLifetime})
}

// updatePickups expires old pickups and pulls nearby ones toward the player
func (s *Session) updatePickups(dt time.Duration) {
	sec := dt.Seconds()
	for _, pk := range s.pickups {
		pk.life -= dt
		if pk.life <= 0 {
			pk.collected = true
			continue
		}
		to := s.player.Pos.Sub(pk.Pos)
		if d := to.Len(); d < parameter.PickupMagnetRadius && d > vmath.Epsilon {
			pk.Pos = pk.Pos.Add(to.ClampLen(parameter.PickupMagnetSpeed * sec))
			s.scene.MoveVisual(pk.Visual, pk.Pos)
		}
	}
}

func (s *Session) collectPickup(pk *Pickup) {
	pk.collected = true
	switch pk.Kind {
	case PickupXP:
		if ups := s.player.gainXP(pk.Value); ups > 0 {
			s.emit(event.EventPlayerLevelUp, &event.LevelPayload{Level: s.player.Level})
			s.notify(fmt.Sprintf("Ship level %d", s.player.Level), event.PriorityNormal)
		}
	case PickupHealth:
		s.player.heal(pk.Value)
	}
	s.emit(event.EventPickupCollected, &event.PickupPayload{Kind: int(pk.Kind), Value: pk.Value})
}

func (s *Session) sweepPickups() {
	n := 0
	for _, pk := range s.pickups {
		if pk.collected {
			s.scene.RemoveVisual(pk.Visual)
			continue
		}
		s.pickups[n] = pk
		n++
	}
	clear(s.pickups[n:])
	s.pickups = s.pickups[:n]
}

func (s *Session) clearPickups() {
	for _, pk := range s.pickups {
		pk.collected = true
	}
	s.sweepPickups()
}
