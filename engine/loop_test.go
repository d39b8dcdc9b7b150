package engine

import (
	"testing"
	"time"

	"github.com/lixenwraith/void-ascent/status"
)

// TestTickMeasuresDelta verifies dt comes from the clock and is clamped
func TestTickMeasuresDelta(t *testing.T) {
	clock := NewMockTimeProvider(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	var got []time.Duration
	l := NewLoop(DefaultConfig(), clock, nil, func(dt time.Duration) { got = append(got, dt) })

	tests := []struct {
		advance time.Duration
		want    time.Duration
	}{
		{16 * time.Millisecond, 16 * time.Millisecond},
		{100 * time.Millisecond, 100 * time.Millisecond},
		{5 * time.Second, 100 * time.Millisecond},
		{0, 0},
	}
	for _, tt := range tests {
		clock.Advance(tt.advance)
		if dt := l.Tick(); dt != tt.want {
			t.Errorf("Advance %v: expected dt %v, got %v", tt.advance, tt.want, dt)
		}
	}
	if len(got) != len(tests) {
		t.Errorf("Expected %d frames, got %d", len(tests), len(got))
	}
}

// TestTickClockBackwards verifies a clock step backwards yields zero delta
func TestTickClockBackwards(t *testing.T) {
	clock := NewMockTimeProvider(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	l := NewLoop(DefaultConfig(), clock, nil, nil)
	clock.Advance(-time.Second)
	if dt := l.Tick(); dt != 0 {
		t.Errorf("Expected 0, got %v", dt)
	}
}

// TestFramePanicRecovered verifies a panicking frame is counted and the loop continues
func TestFramePanicRecovered(t *testing.T) {
	reg := status.NewRegistry()
	clock := NewMockTimeProvider(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	calls := 0
	l := NewLoop(DefaultConfig(), clock, reg, func(time.Duration) {
		calls++
		if calls == 1 {
			panic("boom")
		}
	})

	l.Tick()
	l.Tick()
	if calls != 2 {
		t.Errorf("Expected 2 frame calls, got %d", calls)
	}
	if n := reg.Ints.Get("engine.recovered").Load(); n != 1 {
		t.Errorf("Expected 1 recovered frame, got %d", n)
	}
	if n := reg.Ints.Get("engine.frames").Load(); n != 2 {
		t.Errorf("Expected 2 frames counted, got %d", n)
	}
}

// TestStartStop verifies the loop ticks in the background and ignores double start
func TestStartStop(t *testing.T) {
	reg := status.NewRegistry()
	cfg := Config{TickInterval: 2 * time.Millisecond, MaxDelta: 100 * time.Millisecond}
	l := NewLoop(cfg, NewTimeProvider(), reg, nil)

	l.Start()
	l.Start()
	if !l.Running() {
		t.Fatal("Expected running loop")
	}
	time.Sleep(50 * time.Millisecond)
	l.Stop()
	l.Stop()

	if l.Running() {
		t.Error("Expected stopped loop")
	}
	frames := reg.Ints.Get("engine.frames").Load()
	if frames == 0 {
		t.Fatal("Expected frames while running")
	}
	time.Sleep(10 * time.Millisecond)
	if reg.Ints.Get("engine.frames").Load() != frames {
		t.Error("Expected no frames after Stop")
	}
}
