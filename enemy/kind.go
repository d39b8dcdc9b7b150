package enemy

import "time"

// Kind identifies an enemy archetype
type Kind uint8

const (
	DataMite Kind = iota
	ScanDrone
	ChaosWorm
	VoidSphere
	CrystalShardSwarm
	Fizzer
	UFO
	Boss
	KindCount
)

var kindNames = [KindCount]string{
	DataMite:          "DataMite",
	ScanDrone:         "ScanDrone",
	ChaosWorm:         "ChaosWorm",
	VoidSphere:        "VoidSphere",
	CrystalShardSwarm: "CrystalShardSwarm",
	Fizzer:            "Fizzer",
	UFO:               "UFO",
	Boss:              "Boss",
}

func (k Kind) String() string {
	if k < KindCount {
		return kindNames[k]
	}
	return "Unknown"
}

// Movement selects the steering behaviour of a kind
type Movement uint8

const (
	MoveChase  Movement = iota // Straight at the target
	MoveStrafe                 // Hold range and circle
	MoveWobble                 // Chase along a sinusoidal heading
	MoveFlee                   // Keep away from the target
	MoveOrbit                  // Circle the target at a fixed radius
)

// FirePattern selects how an armed kind shoots
type FirePattern uint8

const (
	FireNone   FirePattern = iota
	FireAimed              // Single aimed shot
	FireSpread             // Three aimed shots
	FireRadial             // Full ring
)

// Profile is the static capability record of a kind
type Profile struct {
	Radius        float64
	Speed         float64
	Health        int
	ContactDamage int
	XP            int
	Score         int

	// DeathRadius and DeathDamage drive chain damage; zero radius means none
	DeathRadius float64
	DeathDamage int

	// DeathDuration keeps a kill-tracked enemy alive for its death animation
	DeathDuration time.Duration

	Movement     Movement
	Fire         FirePattern
	FireInterval time.Duration

	// Range is the preferred distance for strafing/orbiting kinds
	Range float64
}

// profiles is the kind capability table
var profiles = [KindCount]Profile{
	DataMite: {
		Radius: 0.5, Speed: 4.5, Health: 1, ContactDamage: 10,
		XP: 1, Score: 10,
		DeathRadius: 2.0, DeathDamage: 1,
		Movement: MoveChase,
	},
	ScanDrone: {
		Radius: 0.7, Speed: 3.5, Health: 3, ContactDamage: 12,
		XP: 3, Score: 30,
		Movement: MoveStrafe, Fire: FireAimed, FireInterval: 2500 * time.Millisecond,
		Range: 8,
	},
	ChaosWorm: {
		Radius: 0.8, Speed: 5.0, Health: 4, ContactDamage: 15,
		XP: 4, Score: 40,
		DeathRadius: 3.0, DeathDamage: 3,
		Movement: MoveWobble,
	},
	VoidSphere: {
		Radius: 1.4, Speed: 1.8, Health: 10, ContactDamage: 25,
		XP: 8, Score: 80,
		DeathRadius: 5.0, DeathDamage: 6,
		Movement: MoveChase,
	},
	CrystalShardSwarm: {
		Radius: 0.6, Speed: 3.8, Health: 2, ContactDamage: 8,
		XP: 2, Score: 25,
		DeathRadius: 3.5, DeathDamage: 4,
		DeathDuration: 400 * time.Millisecond,
		Movement:      MoveChase,
	},
	Fizzer: {
		Radius: 0.5, Speed: 6.5, Health: 2, ContactDamage: 0,
		XP: 5, Score: 150,
		Movement: MoveFlee, Range: 14,
	},
	UFO: {
		Radius: 1.2, Speed: 4.0, Health: 12, ContactDamage: 20,
		XP: 12, Score: 200,
		DeathRadius: 4.0, DeathDamage: 5,
		DeathDuration: 600 * time.Millisecond,
		Movement:      MoveOrbit, Fire: FireSpread, FireInterval: 2 * time.Second,
		Range: 10,
	},
	Boss: {
		Radius: 3.0, Speed: 1.5, Health: 120, ContactDamage: 40,
		XP: 60, Score: 2000,
		DeathRadius: 10.0, DeathDamage: 20,
		DeathDuration: 1500 * time.Millisecond,
		Movement:      MoveChase, Fire: FireRadial, FireInterval: 3 * time.Second,
	},
}

// ProfileOf returns the capability record for k
func ProfileOf(k Kind) Profile {
	if k >= KindCount {
		return profiles[DataMite]
	}
	return profiles[k]
}

// MaxRadius is the largest body radius of any kind
func MaxRadius() float64 {
	m := 0.0
	for _, p := range profiles {
		if p.Radius > m {
			m = p.Radius
		}
	}
	return m
}
