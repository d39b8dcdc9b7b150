package input

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/void-ascent/service"
	"github.com/lixenwraith/void-ascent/status"
	"github.com/lixenwraith/void-ascent/vmath"
)

// DefaultHoldWindow keeps a direction held between terminal key repeats
const DefaultHoldWindow = 150 * time.Millisecond

// commandBuffer bounds queued shell commands; overflow is dropped
const commandBuffer = 16

// Controller turns terminal key events into per-frame intents and shell commands
// Terminals report no key release, so a direction stays held for the hold window after its last press
type Controller struct {
	mu    sync.Mutex
	table *KeyTable
	hold  time.Duration
	now   func() time.Time

	held         [DirRight + 1]time.Time
	fire         bool
	dashPending  bool
	pausePending bool

	commands chan Command

	statKeys    *atomic.Int64
	statDropped *atomic.Int64
}

// NewController creates a controller; now defaults to time.Now
func NewController(hold time.Duration, now func() time.Time, reg *status.Registry) *Controller {
	if hold <= 0 {
		hold = DefaultHoldWindow
	}
	if now == nil {
		now = time.Now
	}
	return &Controller{
		table:       DefaultKeyTable(),
		hold:        hold,
		now:         now,
		commands:    make(chan Command, commandBuffer),
		statKeys:    reg.Ints.Get("input.keys"),
		statDropped: reg.Ints.Get("input.dropped"),
	}
}

// Commands returns the shell command stream
func (c *Controller) Commands() <-chan Command {
	return c.commands
}

// HandleEvent processes one terminal event
func (c *Controller) HandleEvent(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		c.statKeys.Add(1)
		entry, ok := c.table.Lookup(ev)
		if !ok {
			return
		}
		c.apply(entry)
	case *tcell.EventResize:
		c.send(Command{Type: CommandResize})
	}
}

func (c *Controller) apply(entry KeyEntry) {
	if entry.Behavior == BehaviorCommand {
		c.send(entry.Command)
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	switch entry.Behavior {
	case BehaviorMove:
		c.held[entry.Dir] = c.now()
		// Opposite direction releases immediately
		c.held[opposite(entry.Dir)] = time.Time{}
	case BehaviorFire:
		c.fire = !c.fire
	case BehaviorDash:
		c.dashPending = true
	case BehaviorPause:
		c.pausePending = true
	}
}

func (c *Controller) send(cmd Command) {
	select {
	case c.commands <- cmd:
	default:
		c.statDropped.Add(1)
	}
}

// Poll implements service.InputSource
// Dash and Pause are pulses: true on the first poll after the key, false after
func (c *Controller) Poll() service.Intent {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	var move vmath.Vec2
	for d := DirUp; d <= DirRight; d++ {
		t := c.held[d]
		if t.IsZero() || now.Sub(t) > c.hold {
			continue
		}
		move = move.Add(dirVector(d))
	}

	in := service.Intent{
		Move:  move.Normalize(),
		Fire:  c.fire,
		Dash:  c.dashPending,
		Pause: c.pausePending,
	}
	c.dashPending = false
	c.pausePending = false
	return in
}

// Firing reports the auto-fire toggle
func (c *Controller) Firing() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.fire
}

// Reset drops held keys and pending pulses, keeping the fire toggle
func (c *Controller) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.held = [DirRight + 1]time.Time{}
	c.dashPending = false
	c.pausePending = false
}

// Run feeds screen events until the screen is finalized or stop closes
func (c *Controller) Run(screen tcell.Screen, stop <-chan struct{}) {
	for {
		ev := screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case <-stop:
			return
		default:
		}
		c.HandleEvent(ev)
	}
}

func dirVector(d Direction) vmath.Vec2 {
	switch d {
	case DirUp:
		return vmath.V(0, 1)
	case DirDown:
		return vmath.V(0, -1)
	case DirLeft:
		return vmath.V(-1, 0)
	case DirRight:
		return vmath.V(1, 0)
	}
	return vmath.Vec2{}
}

func opposite(d Direction) Direction {
	switch d {
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	case DirRight:
		return DirLeft
	}
	return DirNone
}
