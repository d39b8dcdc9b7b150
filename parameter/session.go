package parameter

import "time"

// Frame loop
const (
	// MaxFrameDelta clamps wall-clock delta so a stalled frame cannot explode the simulation
	MaxFrameDelta = 100 * time.Millisecond

	// DefaultTickInterval is the frame loop period (~60 fps)
	DefaultTickInterval = 16 * time.Millisecond
)

// Session phase timings
const (
	// DeathAnimationDuration is the cosmetic player death sequence before game over
	DeathAnimationDuration = 2 * time.Second

	// TransitionClearingDuration is the staggered enemy wipe phase of a level transition
	TransitionClearingDuration = 3 * time.Second

	// TransitionDisplayDuration is the level-complete banner phase
	TransitionDisplayDuration = 3 * time.Second

	// ClearStaggerMax bounds the random per-enemy delay of the lethal clearing hit
	ClearStaggerMax = time.Second
)

// Rogue mode
const (
	// RogueChoiceCount is the number of mutations offered per choice screen
	RogueChoiceCount = 3

	// ScrollSpeed is the rogue scroll floor advance in units per second of director time
	ScrollSpeed = 1.5

	// ScrollSlack is how far below the scroll floor the player may sit
	ScrollSlack = 12.0

	// ScrollHalfWidth bounds the rogue corridor horizontally
	ScrollHalfWidth = 16.0

	// WormholeAhead is the distance above the player where the exit opens
	WormholeAhead = 10.0

	// WormholeRadius is the exit trigger radius
	WormholeRadius = 1.5
)
