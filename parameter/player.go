package parameter

import "time"

// Player
const (
	PlayerRadius    = 0.6
	PlayerSpeed     = 9.0
	PlayerMaxHealth = 100

	// PlayerInvulnDuration follows any damage event
	PlayerInvulnDuration = 750 * time.Millisecond

	DashSpeedMultiplier = 3.0
	DashDuration        = 180 * time.Millisecond
	DashCooldown        = 1200 * time.Millisecond

	// XPPerLevel scales the threshold: level n needs n*XPPerLevel
	XPPerLevel = 10

	// LevelUpHeal is restored on each player level-up
	LevelUpHeal = 20
)

// Weapons
const (
	FireCooldown = 180 * time.Millisecond
	ShotSpeed    = 24.0
	ShotLifetime = 1200 * time.Millisecond
	ShotRadius   = 0.25
	ShotDamage   = 1
	ShotSpread   = 0.18 // radians between spread shots
	WeaponRange  = 20.0

	EnemyShotSpeed    = 10.0
	EnemyShotLifetime = 3 * time.Second
	EnemyShotRadius   = 0.3
	EnemyShotDamage   = 8
)

// Pickups
const (
	PickupRadius       = 0.5
	PickupMagnetRadius = 3.0
	PickupMagnetSpeed  = 12.0
	PickupLifetime     = 10 * time.Second
	HealthDropChance   = 0.1
	HealthPackValue    = 20
)
