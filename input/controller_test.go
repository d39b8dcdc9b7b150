package input

import (
	"math"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/void-ascent/status"
	"github.com/lixenwraith/void-ascent/vmath"
)

type fakeClock struct{ t time.Time }

func (f *fakeClock) now() time.Time { return f.t }

func newTestController() (*Controller, *fakeClock) {
	clk := &fakeClock{t: time.Unix(1000, 0)}
	return NewController(150*time.Millisecond, clk.now, status.NewRegistry()), clk
}

func runeKey(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

// TestMoveHoldWindow verifies a direction stays held only within the hold window
func TestMoveHoldWindow(t *testing.T) {
	c, clk := newTestController()
	c.HandleEvent(tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone))

	if got := c.Poll().Move; got != vmath.V(1, 0) {
		t.Errorf("Expected move right, got %v", got)
	}

	clk.t = clk.t.Add(100 * time.Millisecond)
	if got := c.Poll().Move; got != vmath.V(1, 0) {
		t.Errorf("Expected move still held at 100ms, got %v", got)
	}

	clk.t = clk.t.Add(100 * time.Millisecond)
	if got := c.Poll().Move; !got.IsZero() {
		t.Errorf("Expected release after hold window, got %v", got)
	}
}

// TestMoveDiagonalNormalized verifies combined directions are unit length
func TestMoveDiagonalNormalized(t *testing.T) {
	c, _ := newTestController()
	c.HandleEvent(runeKey('w'))
	c.HandleEvent(runeKey('d'))

	got := c.Poll().Move
	if math.Abs(got.Len()-1) > 1e-9 || got.X <= 0 || got.Y <= 0 {
		t.Errorf("Expected unit up-right vector, got %v", got)
	}
}

// TestOppositeReleases verifies pressing the opposite direction cancels the first
func TestOppositeReleases(t *testing.T) {
	c, _ := newTestController()
	c.HandleEvent(runeKey('a'))
	c.HandleEvent(runeKey('D'))

	if got := c.Poll().Move; got != vmath.V(1, 0) {
		t.Errorf("Expected move right only, got %v", got)
	}
}

// TestPulses verifies dash and pause are reported for exactly one poll
func TestPulses(t *testing.T) {
	c, _ := newTestController()
	c.HandleEvent(runeKey('x'))
	c.HandleEvent(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone))

	in := c.Poll()
	if !in.Dash || !in.Pause {
		t.Errorf("Expected dash and pause on first poll, got %+v", in)
	}
	in = c.Poll()
	if in.Dash || in.Pause {
		t.Errorf("Expected pulses cleared on second poll, got %+v", in)
	}
}

// TestFireToggle verifies space toggles auto-fire and Reset keeps it
func TestFireToggle(t *testing.T) {
	c, _ := newTestController()
	c.HandleEvent(runeKey(' '))
	if !c.Poll().Fire {
		t.Errorf("Expected fire on after toggle")
	}
	c.Reset()
	if !c.Firing() {
		t.Errorf("Expected fire toggle kept across Reset")
	}
	c.HandleEvent(runeKey(' '))
	if c.Poll().Fire {
		t.Errorf("Expected fire off after second toggle")
	}
}

// TestCommands verifies command keys reach the command stream
func TestCommands(t *testing.T) {
	c, _ := newTestController()
	tests := []struct {
		ev   *tcell.EventKey
		want Command
	}{
		{runeKey('r'), Command{Type: CommandStartRogue}},
		{runeKey('2'), Command{Type: CommandChoose, Arg: 1}},
		{runeKey('m'), Command{Type: CommandToggleMute}},
		{tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl), Command{Type: CommandQuit}},
	}
	for _, tt := range tests {
		c.HandleEvent(tt.ev)
		select {
		case got := <-c.Commands():
			if got != tt.want {
				t.Errorf("Expected %+v, got %+v", tt.want, got)
			}
		default:
			t.Errorf("Expected command %+v, got none", tt.want)
		}
	}
}

// TestCommandOverflowDropped verifies a full command buffer drops instead of blocking
func TestCommandOverflowDropped(t *testing.T) {
	reg := status.NewRegistry()
	c := NewController(0, nil, reg)
	for i := 0; i < commandBuffer+5; i++ {
		c.HandleEvent(runeKey('m'))
	}
	if got := reg.Ints.Get("input.dropped").Load(); got != 5 {
		t.Errorf("Expected 5 dropped commands, got %d", got)
	}
	if got := len(c.Commands()); got != commandBuffer {
		t.Errorf("Expected %d queued commands, got %d", commandBuffer, got)
	}
}

// TestUnboundKeyIgnored verifies unknown keys produce nothing
func TestUnboundKeyIgnored(t *testing.T) {
	c, _ := newTestController()
	c.HandleEvent(runeKey('z'))
	if in := c.Poll(); in.Move != (vmath.Vec2{}) || in.Fire || in.Dash || in.Pause {
		t.Errorf("Expected empty intent, got %+v", in)
	}
	if len(c.Commands()) != 0 {
		t.Errorf("Expected no commands")
	}
}
