package parameter

import "time"

// Multiplier
const (
	// ChainWindow is the max gap between kills that still raises the multiplier
	ChainWindow = 1500 * time.Millisecond

	// MultiplierDecayWindow resets the multiplier after this much inactivity
	MultiplierDecayWindow = 2 * time.Second

	// MultiplierCap is the highest reachable multiplier
	MultiplierCap = 15

	// MultiplierLostThreshold is the minimum multiplier worth a "lost" notification
	MultiplierLostThreshold = 3
)

// BonusMultipliers are the multiplier values that request a bonus Fizzer spawn
var BonusMultipliers = []int{5, 8, 11}

// Combo and clusters
const (
	// ComboWindow is the default combo decay timer, mutations extend it
	ComboWindow = 3 * time.Second

	// ComboTierStep announces a combo tier every N kills
	ComboTierStep = 5

	// ClusterWindow is the rolling window for the kill-cluster sound cue
	ClusterWindow = 800 * time.Millisecond

	// ClusterMin is the kill count inside ClusterWindow that triggers the cue
	ClusterMin = 2
)
