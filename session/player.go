package session

import (
	"time"

	"github.com/lixenwraith/void-ascent/parameter"
	"github.com/lixenwraith/void-ascent/service"
	"github.com/lixenwraith/void-ascent/vmath"
)

// Player is the ship state
type Player struct {
	Pos    vmath.Vec2
	Vel    vmath.Vec2
	Facing vmath.Vec2
	Radius float64

	Health    int
	MaxHealth int
	Shield    int // Charges; each absorbs one hit

	XP    int
	Level int

	// Mutation scales
	SpeedScale        float64
	DashCooldownScale float64

	Visual service.Handle

	invuln       time.Duration
	dashLeft     time.Duration
	dashCooldown time.Duration
	dashHeld     bool
}

func newPlayer() *Player {
	return &Player{
		Facing:            vmath.V(0, 1),
		Radius:            parameter.PlayerRadius,
		Health:            parameter.PlayerMaxHealth,
		MaxHealth:         parameter.PlayerMaxHealth,
		Level:             1,
		SpeedScale:        1,
		DashCooldownScale: 1,
	}
}

func (p *Player) Alive() bool {
	return p.Health > 0
}

func (p *Player) Invulnerable() bool {
	return p.invuln > 0
}

func (p *Player) Dashing() bool {
	return p.dashLeft > 0
}

// update applies movement intent, dash and timers
func (p *Player) update(dt time.Duration, in service.Intent) {
	p.invuln = max(p.invuln-dt, 0)
	p.dashLeft = max(p.dashLeft-dt, 0)
	p.dashCooldown = max(p.dashCooldown-dt, 0)

	move := in.Move.ClampLen(1)
	if !move.IsZero() {
		p.Facing = move.Normalize()
	}

	// Dash triggers on the press edge
	if in.Dash && !p.dashHeld && p.dashCooldown == 0 {
		p.dashLeft = parameter.DashDuration
		p.dashCooldown = time.Duration(float64(parameter.DashCooldown) * p.DashCooldownScale)
	}
	p.dashHeld = in.Dash

	speed := parameter.PlayerSpeed * p.SpeedScale
	if p.dashLeft > 0 {
		speed *= parameter.DashSpeedMultiplier
		if move.IsZero() {
			move = p.Facing
		}
	}
	p.Vel = move.Scale(speed)
	p.Pos = p.Pos.Add(p.Vel.Scale(dt.Seconds()))
}

// takeDamage applies a hit; ok is false while invulnerable, which is not a damage event
func (p *Player) takeDamage(dmg int) (absorbed, ok bool) {
	if dmg <= 0 || p.invuln > 0 || !p.Alive() {
		return false, false
	}
	p.invuln = parameter.PlayerInvulnDuration
	if p.Shield > 0 {
		p.Shield--
		return true, true
	}
	p.Health = max(p.Health-dmg, 0)
	return false, true
}

func (p *Player) heal(n int) {
	p.Health = min(p.Health+n, p.MaxHealth)
}

// gainXP adds experience and returns the number of levels gained
func (p *Player) gainXP(n int) int {
	p.XP += n
	ups := 0
	for p.XP >= p.Level*parameter.XPPerLevel {
		p.XP -= p.Level * parameter.XPPerLevel
		p.Level++
		p.heal(parameter.LevelUpHeal)
		ups++
	}
	return ups
}

// confineArena keeps the player inside a circular arena
func (p *Player) confineArena(radius float64) {
	if d := p.Pos.Len(); d > radius {
		p.Pos = p.Pos.WithLen(radius)
	}
}

// confineCorridor keeps the player inside the scrolling corridor above floor
func (p *Player) confineCorridor(halfWidth, floor float64) {
	p.Pos.X = vmath.Clamp(p.Pos.X, -halfWidth, halfWidth)
	if p.Pos.Y < floor {
		p.Pos.Y = floor
	}
}
