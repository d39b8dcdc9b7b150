package engine

import (
	"log"
	"runtime/debug"
	"sync"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/void-ascent/core"
	"github.com/lixenwraith/void-ascent/parameter"
	"github.com/lixenwraith/void-ascent/status"
)

// Config holds frame loop timing
type Config struct {
	TickInterval time.Duration
	MaxDelta     time.Duration
}

// DefaultConfig returns ~60 fps ticking with a 100ms delta clamp
func DefaultConfig() Config {
	return Config{
		TickInterval: parameter.DefaultTickInterval,
		MaxDelta:     parameter.MaxFrameDelta,
	}
}

// FrameFunc runs one frame with the clamped delta
type FrameFunc func(dt time.Duration)

// Loop drives FrameFunc on a fixed tick
// Deltas are measured from the clock, not assumed from the tick, and clamped so a
// stalled process resumes without a simulation jump. A panicking frame is logged and
// counted; the next tick runs normally
type Loop struct {
	cfg   Config
	clock Clock
	frame FrameFunc

	mu   sync.Mutex
	last time.Time

	stopChan chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
	running  atomic.Bool

	statFrames    *atomic.Int64
	statRecovered *atomic.Int64
	statDelta     *status.AtomicFloat
}

// NewLoop creates a stopped loop
func NewLoop(cfg Config, clock Clock, reg *status.Registry, frame FrameFunc) *Loop {
	if clock == nil {
		clock = NewTimeProvider()
	}
	if reg == nil {
		reg = status.NewRegistry()
	}
	if cfg.TickInterval <= 0 {
		cfg.TickInterval = parameter.DefaultTickInterval
	}
	return &Loop{
		cfg:           cfg,
		clock:         clock,
		frame:         frame,
		last:          clock.Now(),
		stopChan:      make(chan struct{}),
		statFrames:    reg.Ints.Get("engine.frames"),
		statRecovered: reg.Ints.Get("engine.recovered"),
		statDelta:     reg.Floats.Get("engine.dt"),
	}
}

// Start begins ticking on a new goroutine; a second call is ignored
func (l *Loop) Start() {
	if !l.running.CompareAndSwap(false, true) {
		log.Printf("[engine] loop already running, Start ignored")
		return
	}
	l.mu.Lock()
	l.last = l.clock.Now()
	l.mu.Unlock()

	l.wg.Add(1)
	core.Go(l.run)
}

// Stop halts the loop and waits for the current frame to finish
func (l *Loop) Stop() {
	l.stopOnce.Do(func() {
		if l.running.CompareAndSwap(true, false) {
			close(l.stopChan)
			l.wg.Wait()
		}
	})
}

// Running reports whether the loop goroutine is active
func (l *Loop) Running() bool {
	return l.running.Load()
}

// Tick runs a single frame immediately and returns the delta it used
func (l *Loop) Tick() time.Duration {
	now := l.clock.Now()
	l.mu.Lock()
	dt := now.Sub(l.last)
	l.last = now
	l.mu.Unlock()

	if dt < 0 {
		dt = 0
	}
	if l.cfg.MaxDelta > 0 && dt > l.cfg.MaxDelta {
		dt = l.cfg.MaxDelta
	}
	l.runFrame(dt)
	return dt
}

func (l *Loop) runFrame(dt time.Duration) {
	defer func() {
		if r := recover(); r != nil {
			l.statRecovered.Add(1)
			log.Printf("[engine] frame panic recovered: %v\n%s", r, debug.Stack())
		}
	}()
	l.statFrames.Add(1)
	l.statDelta.Set(dt.Seconds())
	if l.frame != nil {
		l.frame(dt)
	}
}

// run ticks on deadlines with drift correction; falling far behind resynchronises
func (l *Loop) run() {
	defer l.wg.Done()

	timer := time.NewTimer(l.cfg.TickInterval)
	defer timer.Stop()
	deadline := l.clock.Now().Add(l.cfg.TickInterval)

	for {
		select {
		case <-l.stopChan:
			return
		case <-timer.C:
		}

		l.Tick()

		now := l.clock.Now()
		deadline = deadline.Add(l.cfg.TickInterval)
		if now.Sub(deadline) > 2*l.cfg.TickInterval {
			deadline = now.Add(l.cfg.TickInterval)
		}
		sleep := deadline.Sub(now)
		if sleep < 0 {
			sleep = 0
		}
		timer.Reset(sleep)
	}
}
