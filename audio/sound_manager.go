package audio

import (
	"fmt"
	"log"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/void-ascent/event"
	"github.com/lixenwraith/void-ascent/status"
)

// Config holds audio output settings
type Config struct {
	SampleRate   int
	MasterVolume float64
	Muted        bool
	MaxVoices    int // Cues beyond this many concurrent voices are dropped
}

// DefaultConfig returns the standard audio settings
func DefaultConfig() Config {
	return Config{
		SampleRate:   48000,
		MasterVolume: 0.8,
		MaxVoices:    16,
	}
}

// SoundManager turns simulation events into sound cues mixed onto the speaker
type SoundManager struct {
	mu          sync.Mutex
	cfg         Config
	rate        beep.SampleRate
	mixer       *beep.Mixer
	initialized bool
	muted       atomic.Bool

	requested [CueCount]atomic.Int64

	statPlayed  *atomic.Int64
	statDropped *atomic.Int64
	statMuted   *atomic.Bool
}

// NewSoundManager creates an uninitialized manager; cues are counted but silent until Initialize
func NewSoundManager(cfg Config, reg *status.Registry) *SoundManager {
	if cfg.SampleRate <= 0 {
		cfg.SampleRate = DefaultConfig().SampleRate
	}
	if cfg.MaxVoices <= 0 {
		cfg.MaxVoices = DefaultConfig().MaxVoices
	}
	sm := &SoundManager{
		cfg:         cfg,
		rate:        beep.SampleRate(cfg.SampleRate),
		mixer:       &beep.Mixer{},
		statPlayed:  reg.Ints.Get("audio.played"),
		statDropped: reg.Ints.Get("audio.dropped"),
		statMuted:   reg.Bools.Get("audio.muted"),
	}
	sm.muted.Store(cfg.Muted)
	sm.statMuted.Store(cfg.Muted)
	return sm
}

// Initialize opens the speaker; calling it twice is a no-op
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	if err := speaker.Init(sm.rate, sm.rate.N(time.Millisecond*100)); err != nil {
		return fmt.Errorf("speaker init at %d Hz: %w", sm.cfg.SampleRate, err)
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	log.Printf("[audio] speaker initialized at %d Hz", sm.cfg.SampleRate)
	return nil
}

// Cleanup stops all sounds
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()

	// beep has no speaker Close, clearing the mixer leaves it idle
	sm.initialized = false
}

// Initialized reports whether the speaker is open
func (sm *SoundManager) Initialized() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.initialized
}

// SetMuted silences or restores output
func (sm *SoundManager) SetMuted(muted bool) {
	sm.muted.Store(muted)
	sm.statMuted.Store(muted)
}

// ToggleMute flips mute and returns the new state
func (sm *SoundManager) ToggleMute() bool {
	muted := !sm.muted.Load()
	sm.SetMuted(muted)
	return muted
}

// Muted reports the mute state
func (sm *SoundManager) Muted() bool {
	return sm.muted.Load()
}

// Play queues a cue on the mixer
func (sm *SoundManager) Play(c Cue) {
	if c < 0 || c >= CueCount {
		return
	}
	sm.requested[c].Add(1)

	if sm.muted.Load() {
		return
	}

	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	s := Synth(c, sm.rate, sm.cfg.MasterVolume)
	if s == nil {
		return
	}

	speaker.Lock()
	if sm.mixer.Len() >= sm.cfg.MaxVoices {
		speaker.Unlock()
		sm.statDropped.Add(1)
		return
	}
	sm.mixer.Add(s)
	speaker.Unlock()
	sm.statPlayed.Add(1)
}

// Requested returns how many times a cue was asked for, played or not
func (sm *SoundManager) Requested(c Cue) int64 {
	if c < 0 || c >= CueCount {
		return 0
	}
	return sm.requested[c].Load()
}

// HandleEvent implements event.Handler
func (sm *SoundManager) HandleEvent(ev event.GameEvent) {
	if c, ok := CueFor(ev); ok {
		sm.Play(c)
	}
}

// EventTypes implements event.Handler
func (sm *SoundManager) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventEnemySpawned,
		event.EventEnemyKilled,
		event.EventPlayerHit,
		event.EventPlayerDied,
		event.EventPlayerLevelUp,
		event.EventPlayerFired,
		event.EventPickupCollected,
		event.EventLevelComplete,
		event.EventComboTier,
		event.EventMultiplierUp,
		event.EventMultiplierLost,
		event.EventKillCluster,
		event.EventWormholeOpen,
		event.EventGameOver,
	}
}

// CueFor maps an event to its cue
func CueFor(ev event.GameEvent) (Cue, bool) {
	switch ev.Type {
	case event.EventEnemySpawned:
		return CueSpawn, true
	case event.EventEnemyKilled:
		if p, ok := ev.Payload.(*event.EnemyKilledPayload); ok && p.Chain {
			return CueChainKill, true
		}
		return CueKill, true
	case event.EventPlayerHit:
		if p, ok := ev.Payload.(*event.PlayerHitPayload); ok && p.Absorbed {
			return CueShieldHit, true
		}
		return CuePlayerHit, true
	case event.EventPlayerDied:
		return CueDeath, true
	case event.EventPlayerLevelUp:
		return CueLevelUp, true
	case event.EventPlayerFired:
		return CueShot, true
	case event.EventPickupCollected:
		return CuePickup, true
	case event.EventLevelComplete:
		return CueLevelComplete, true
	case event.EventComboTier:
		return CueComboTier, true
	case event.EventMultiplierUp:
		return CueMultiplierUp, true
	case event.EventMultiplierLost:
		return CueMultiplierLost, true
	case event.EventKillCluster:
		return CueCluster, true
	case event.EventWormholeOpen:
		return CueWormhole, true
	case event.EventGameOver:
		return CueGameOver, true
	}
	return 0, false
}
