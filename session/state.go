package session

// State is the top-level session state
type State int

const (
	StateStartScreen State = iota
	StatePlaying
	StateDeathAnimation
	StateLevelTransition
	StateRogueChoice
	StatePaused
	StateGameOver
)

func (s State) String() string {
	switch s {
	case StateStartScreen:
		return "StartScreen"
	case StatePlaying:
		return "Playing"
	case StateDeathAnimation:
		return "DeathAnimation"
	case StateLevelTransition:
		return "LevelTransition"
	case StateRogueChoice:
		return "RogueChoice"
	case StatePaused:
		return "Paused"
	case StateGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// TransitionPhase is the sub-phase of StateLevelTransition
type TransitionPhase int

const (
	PhaseNone TransitionPhase = iota
	PhaseClearing
	PhaseDisplaying
	PhaseComplete
)

func (p TransitionPhase) String() string {
	switch p {
	case PhaseNone:
		return "None"
	case PhaseClearing:
		return "Clearing"
	case PhaseDisplaying:
		return "Displaying"
	case PhaseComplete:
		return "Complete"
	default:
		return "Unknown"
	}
}

// Mode selects the run type
type Mode int

const (
	ModeNormal Mode = iota
	ModeTest
	ModeRogue
)

func (m Mode) String() string {
	switch m {
	case ModeNormal:
		return "Normal"
	case ModeTest:
		return "Test"
	case ModeRogue:
		return "Rogue"
	default:
		return "Unknown"
	}
}

// SpecialChoices reports whether level completion goes through a wormhole and mutation choice
func (m Mode) SpecialChoices() bool {
	return m == ModeRogue
}

var validTransitions = map[State][]State{
	StateStartScreen:     {StatePlaying},
	StatePlaying:         {StateDeathAnimation, StateLevelTransition, StateRogueChoice, StatePaused, StateGameOver},
	StatePaused:          {StatePlaying, StateGameOver},
	StateDeathAnimation:  {StateGameOver},
	StateLevelTransition: {StatePlaying, StateGameOver},
	StateRogueChoice:     {StatePlaying, StateGameOver},
	StateGameOver:        {StatePlaying},
}

// CanTransition checks if a state change is allowed
// Teardown to StartScreen bypasses the table
func CanTransition(from, to State) bool {
	for _, s := range validTransitions[from] {
		if s == to {
			return true
		}
	}
	return false
}
