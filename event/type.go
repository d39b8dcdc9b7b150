package event

// EventType represents the type of simulation event
type EventType int

const (
	// EventEnemySpawned signals a new live enemy
	// Trigger: enemy.Coordinator spawner | Payload: *EnemyPayload
	EventEnemySpawned EventType = iota

	// EventEnemyKilled signals a tracked kill, emitted exactly once per enemy
	// Trigger: session kill listener | Payload: *EnemyKilledPayload
	EventEnemyKilled

	// EventChainHit signals death-radius damage applied to a neighbour
	// Payload: *ChainHitPayload
	EventChainHit

	// EventPlayerHit signals any damage event against the player, shield-absorbed included
	// Payload: *PlayerHitPayload
	EventPlayerHit

	// EventPlayerDied signals entry into the death animation | Payload: nil
	EventPlayerDied

	// EventPlayerLevelUp signals an XP threshold crossing | Payload: *LevelPayload
	EventPlayerLevelUp

	// EventPlayerFired signals a weapon discharge | Payload: nil
	EventPlayerFired

	// EventPickupCollected signals a collected pickup | Payload: *PickupPayload
	EventPickupCollected

	// EventLevelStart signals a level or rogue layer becoming active | Payload: *LevelPayload
	EventLevelStart

	// EventLevelComplete signals objectives met for the active level | Payload: *LevelPayload
	EventLevelComplete

	// EventComboTier signals the combo counter crossing a tier boundary | Payload: *CountPayload
	EventComboTier

	// EventMultiplierUp signals a multiplier increment | Payload: *CountPayload
	EventMultiplierUp

	// EventMultiplierLost signals multiplier decay from a value worth announcing | Payload: *CountPayload
	EventMultiplierLost

	// EventKillCluster signals two or more kills inside the cluster window | Payload: *CountPayload
	EventKillCluster

	// EventWormholeOpen signals the rogue layer exit becoming available | Payload: nil
	EventWormholeOpen

	// EventRogueChoice signals the mutation choice screen | Payload: *ChoicePayload
	EventRogueChoice

	// EventMutationApplied signals a chosen mutation | Payload: *ChoicePayload
	EventMutationApplied

	// EventPauseChanged signals pause toggle | Payload: *PausePayload
	EventPauseChanged

	// EventGameOver signals the terminal state | Payload: *CountPayload (final score)
	EventGameOver

	// EventNotify posts a transient UI message | Payload: *NotifyPayload
	EventNotify

	// EventTypeCount is the number of event types, keep last
	EventTypeCount
)

var eventTypeNames = [...]string{
	EventEnemySpawned:    "EnemySpawned",
	EventEnemyKilled:     "EnemyKilled",
	EventChainHit:        "ChainHit",
	EventPlayerHit:       "PlayerHit",
	EventPlayerDied:      "PlayerDied",
	EventPlayerLevelUp:   "PlayerLevelUp",
	EventPlayerFired:     "PlayerFired",
	EventPickupCollected: "PickupCollected",
	EventLevelStart:      "LevelStart",
	EventLevelComplete:   "LevelComplete",
	EventComboTier:       "ComboTier",
	EventMultiplierUp:    "MultiplierUp",
	EventMultiplierLost:  "MultiplierLost",
	EventKillCluster:     "KillCluster",
	EventWormholeOpen:    "WormholeOpen",
	EventRogueChoice:     "RogueChoice",
	EventMutationApplied: "MutationApplied",
	EventPauseChanged:    "PauseChanged",
	EventGameOver:        "GameOver",
	EventNotify:          "Notify",
}

func (t EventType) String() string {
	if t >= 0 && int(t) < len(eventTypeNames) {
		return eventTypeNames[t]
	}
	return "Unknown"
}

// GameEvent is a single queued event with its frame stamp
type GameEvent struct {
	Type    EventType
	Payload any
	Frame   int64
}
