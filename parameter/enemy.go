package parameter

// Spatial coordination
const (
	// GridCellSize is the uniform spatial grid cell edge in arena units
	GridCellSize = 4.0

	// SeparationRadius is the minimum neighbour query radius for soft separation
	SeparationRadius = 2.5

	// SeparationWeight is the share of the separation push blended into velocity
	// The remainder keeps the enemy's own heading
	SeparationWeight = 0.15

	// SteeringAgility is how fast enemies turn toward their desired heading, per second
	SteeringAgility = 6.0

	// ChainFalloff is the damage fraction lost at the edge of a death radius
	ChainFalloff = 0.5
)

// Spawning
const (
	// ArenaRadius is the circular arena boundary for ordinary levels
	ArenaRadius = 30.0

	// SpawnEdgeMargin places edge spawns just outside the boundary
	SpawnEdgeMargin = 2.0

	// ScrollSpawnAhead is the vertical spawn offset above the player in scrolling mode
	ScrollSpawnAhead = 24.0

	// MaxEnemies caps the live population; spawns beyond are rejected
	MaxEnemies = 300

	// FizzerStreakCap limits bonus enemies per uninterrupted streak
	FizzerStreakCap = 3

	// EnemyFireRange is the distance within which armed enemies shoot
	EnemyFireRange = 18.0
)
