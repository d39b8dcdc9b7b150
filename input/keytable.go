package input

import "github.com/gdamore/tcell/v2"

// KeyBehavior classifies how a key is processed
type KeyBehavior uint8

const (
	BehaviorNone    KeyBehavior = iota
	BehaviorMove                // Held direction, refreshed by key repeat
	BehaviorFire                // Toggles auto-fire
	BehaviorDash                // One-shot dash pulse
	BehaviorPause               // One-shot pause pulse
	BehaviorCommand             // Out-of-band command for the shell loop
)

// Direction is a unit step on one axis
type Direction uint8

const (
	DirNone Direction = iota
	DirUp
	DirDown
	DirLeft
	DirRight
)

// CommandType is an action handled outside the simulation frame
type CommandType uint8

const (
	CommandNone CommandType = iota
	CommandQuit
	CommandStartNormal
	CommandStartTest
	CommandStartRogue
	CommandChoose
	CommandToggleMute
	CommandResize
)

// Command is a queued shell action; Arg carries the choice index for CommandChoose
type Command struct {
	Type CommandType
	Arg  int
}

// KeyEntry describes a key's behavior
type KeyEntry struct {
	Behavior KeyBehavior
	Dir      Direction
	Command  Command
}

// KeyTable maps keys to behaviors
type KeyTable struct {
	SpecialKeys map[tcell.Key]KeyEntry
	Runes       map[rune]KeyEntry
}

// DefaultKeyTable returns the default bindings: arrows, wasd and hjkl move
func DefaultKeyTable() *KeyTable {
	move := func(d Direction) KeyEntry { return KeyEntry{Behavior: BehaviorMove, Dir: d} }
	cmd := func(t CommandType, arg int) KeyEntry {
		return KeyEntry{Behavior: BehaviorCommand, Command: Command{Type: t, Arg: arg}}
	}

	return &KeyTable{
		SpecialKeys: map[tcell.Key]KeyEntry{
			tcell.KeyUp:     move(DirUp),
			tcell.KeyDown:   move(DirDown),
			tcell.KeyLeft:   move(DirLeft),
			tcell.KeyRight:  move(DirRight),
			tcell.KeyEscape: {Behavior: BehaviorPause},
			tcell.KeyTab:    {Behavior: BehaviorDash},
			tcell.KeyCtrlC:  cmd(CommandQuit, 0),
			tcell.KeyCtrlQ:  cmd(CommandQuit, 0),
		},
		Runes: map[rune]KeyEntry{
			'w': move(DirUp),
			'a': move(DirLeft),
			's': move(DirDown),
			'd': move(DirRight),
			'k': move(DirUp),
			'h': move(DirLeft),
			'j': move(DirDown),
			'l': move(DirRight),
			' ': {Behavior: BehaviorFire},
			'x': {Behavior: BehaviorDash},
			'p': {Behavior: BehaviorPause},
			'q': cmd(CommandQuit, 0),
			'n': cmd(CommandStartNormal, 0),
			't': cmd(CommandStartTest, 0),
			'r': cmd(CommandStartRogue, 0),
			'm': cmd(CommandToggleMute, 0),
			'1': cmd(CommandChoose, 0),
			'2': cmd(CommandChoose, 1),
			'3': cmd(CommandChoose, 2),
		},
	}
}

// Lookup resolves a key event
func (kt *KeyTable) Lookup(ev *tcell.EventKey) (KeyEntry, bool) {
	if ev.Key() == tcell.KeyRune {
		r := ev.Rune()
		if r >= 'A' && r <= 'Z' {
			r += 'a' - 'A'
		}
		e, ok := kt.Runes[r]
		return e, ok
	}
	e, ok := kt.SpecialKeys[ev.Key()]
	return e, ok
}
