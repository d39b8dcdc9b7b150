package event

// Priority orders UI notifications; higher replaces lower on the banner line
type Priority int

const (
	PriorityLow Priority = iota
	PriorityNormal
	PriorityHigh
	PriorityCritical
)

// EnemyPayload describes a spawned enemy
type EnemyPayload struct {
	ID   uint64
	Kind int
	X, Y float64
}

// EnemyKilledPayload describes a tracked kill
type EnemyKilledPayload struct {
	ID     uint64
	Kind   int
	X, Y   float64
	XP     int
	Chain  bool // Killed by death-radius damage from another enemy
	Scored bool // Kill occurred during Playing and was scored
}

// ChainHitPayload describes death-radius damage from Source onto Target
type ChainHitPayload struct {
	SourceID uint64
	TargetID uint64
	Damage   int
}

// PlayerHitPayload describes damage against the player
type PlayerHitPayload struct {
	Damage   int
	Absorbed bool // Shield consumed the hit
	Health   int
}

// LevelPayload carries a level/layer number and its display name
type LevelPayload struct {
	Level int
	Name  string
}

// PickupPayload describes a collected pickup
type PickupPayload struct {
	Kind  int
	Value int
}

// CountPayload carries a single integer (tier, multiplier, cluster size, score)
type CountPayload struct {
	Value int
}

// ChoicePayload carries mutation names offered or applied
type ChoicePayload struct {
	Names []string
}

// PausePayload carries the new pause state
type PausePayload struct {
	Paused bool
}

// NotifyPayload is a transient UI message
type NotifyPayload struct {
	Text     string
	Priority Priority
}
