package score

import (
	"fmt"
	"slices"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/void-ascent/enemy"
	"github.com/lixenwraith/void-ascent/event"
	"github.com/lixenwraith/void-ascent/parameter"
	"github.com/lixenwraith/void-ascent/status"
)

// Config holds scoring windows and thresholds
type Config struct {
	ChainWindow   time.Duration
	DecayWindow   time.Duration
	ComboWindow   time.Duration
	ClusterWindow time.Duration

	MultiplierCap int
	LostThreshold int
	ClusterMin    int
	ComboTierStep int

	// BonusAt lists multiplier values that request a bonus Fizzer
	BonusAt []int
}

// DefaultConfig returns the stock scoring rules
func DefaultConfig() Config {
	return Config{
		ChainWindow:   parameter.ChainWindow,
		DecayWindow:   parameter.MultiplierDecayWindow,
		ComboWindow:   parameter.ComboWindow,
		ClusterWindow: parameter.ClusterWindow,
		MultiplierCap: parameter.MultiplierCap,
		LostThreshold: parameter.MultiplierLostThreshold,
		ClusterMin:    parameter.ClusterMin,
		ComboTierStep: parameter.ComboTierStep,
		BonusAt:       slices.Clone(parameter.BonusMultipliers),
	}
}

// BonusSpawner fulfils bonus enemy requests; enemy.Coordinator implements it
type BonusSpawner interface {
	SpawnFizzer() bool
	ResetFizzerStreak()
}

// Engine awards points, tracks the kill-chain multiplier, the combo counter and kill clusters
// All times are session game time, so pauses never decay a streak
type Engine struct {
	cfg     Config
	base    Config
	spawner BonusSpawner
	queue   *event.Queue

	points     int64
	multiplier int
	combo      int
	bestCombo  int

	lastKill  time.Duration
	hasKill   bool
	comboLast time.Duration
	recent    []time.Duration

	bonusRequests int
	frame         int64

	statPoints     *atomic.Int64
	statMultiplier *atomic.Int64
	statCombo      *atomic.Int64
}

// NewEngine creates a scoring engine; spawner and queue may be nil
func NewEngine(cfg Config, spawner BonusSpawner, queue *event.Queue, reg *status.Registry) *Engine {
	if reg == nil {
		reg = status.NewRegistry()
	}
	e := &Engine{
		cfg:            cfg,
		base:           cfg,
		spawner:        spawner,
		queue:          queue,
		recent:         make([]time.Duration, 0, 8),
		statPoints:     reg.Ints.Get("score.points"),
		statMultiplier: reg.Ints.Get("score.multiplier"),
		statCombo:      reg.Ints.Get("score.combo"),
	}
	e.Reset()
	return e
}

// Reset clears all scoring state for a new run; the combo window returns to config
func (e *Engine) Reset() {
	e.cfg.ComboWindow = e.base.ComboWindow
	e.points = 0
	e.multiplier = 1
	e.combo = 0
	e.bestCombo = 0
	e.hasKill = false
	e.recent = e.recent[:0]
	e.bonusRequests = 0
	e.publish()
}

// SetComboWindow adjusts the combo decay timer; non-positive values are ignored
func (e *Engine) SetComboWindow(d time.Duration) {
	if d > 0 {
		e.cfg.ComboWindow = d
	}
}

func (e *Engine) ComboWindow() time.Duration {
	return e.cfg.ComboWindow
}

// SetFrame stamps subsequent events with the session frame
func (e *Engine) SetFrame(frame int64) {
	e.frame = frame
}

// OnKill awards a kill of kind k at time now and returns the points granted
func (e *Engine) OnKill(k enemy.Kind, now time.Duration) int64 {
	e.decay(now)

	if e.hasKill && now-e.lastKill <= e.cfg.ChainWindow && e.multiplier < e.cfg.MultiplierCap {
		e.multiplier++
		e.emit(event.EventMultiplierUp, &event.CountPayload{Value: e.multiplier})
		if slices.Contains(e.cfg.BonusAt, e.multiplier) {
			e.requestBonus()
		}
	}

	award := int64(enemy.ProfileOf(k).Score) * int64(e.multiplier)
	e.points += award
	e.lastKill = now
	e.hasKill = true

	e.combo++
	e.comboLast = now
	if e.combo > e.bestCombo {
		e.bestCombo = e.combo
	}
	if e.cfg.ComboTierStep > 0 && e.combo%e.cfg.ComboTierStep == 0 {
		e.emit(event.EventComboTier, &event.CountPayload{Value: e.combo / e.cfg.ComboTierStep})
	}

	e.trackCluster(now)
	e.publish()
	return award
}

// Update applies time-based decay of multiplier and combo
func (e *Engine) Update(now time.Duration) {
	e.decay(now)
	e.publish()
}

// OnPlayerDamaged erases every streak-based reward and re-arms the Fizzer cap
func (e *Engine) OnPlayerDamaged() {
	e.multiplier = 1
	e.combo = 0
	e.hasKill = false
	e.recent = e.recent[:0]
	if e.spawner != nil {
		e.spawner.ResetFizzerStreak()
	}
	e.publish()
}

func (e *Engine) decay(now time.Duration) {
	if e.hasKill && e.multiplier > 1 && now-e.lastKill > e.cfg.DecayWindow {
		lost := e.multiplier
		e.multiplier = 1
		if lost >= e.cfg.LostThreshold {
			e.emit(event.EventMultiplierLost, &event.CountPayload{Value: lost})
			e.emit(event.EventNotify, &event.NotifyPayload{Text: fmt.Sprintf("x%d multiplier lost", lost), Priority: event.PriorityLow})
		}
	}
	if e.combo > 0 && now-e.comboLast > e.cfg.ComboWindow {
		e.combo = 0
	}
}

func (e *Engine) trackCluster(now time.Duration) {
	cut := 0
	for cut < len(e.recent) && now-e.recent[cut] > e.cfg.ClusterWindow {
		cut++
	}
	if cut > 0 {
		e.recent = append(e.recent[:0], e.recent[cut:]...)
	}
	e.recent = append(e.recent, now)
	if len(e.recent) >= e.cfg.ClusterMin {
		e.emit(event.EventKillCluster, &event.CountPayload{Value: len(e.recent)})
	}
}

func (e *Engine) requestBonus() {
	e.bonusRequests++
	if e.spawner == nil {
		return
	}
	if e.spawner.SpawnFizzer() {
		e.emit(event.EventNotify, &event.NotifyPayload{Text: fmt.Sprintf("x%d streak: Fizzer inbound", e.multiplier), Priority: event.PriorityNormal})
	}
}

func (e *Engine) emit(t event.EventType, payload any) {
	if e.queue != nil {
		e.queue.Emit(t, payload, e.frame)
	}
}

func (e *Engine) publish() {
	e.statPoints.Store(e.points)
	e.statMultiplier.Store(int64(e.multiplier))
	e.statCombo.Store(int64(e.combo))
}

func (e *Engine) Points() int64 {
	return e.points
}

func (e *Engine) Multiplier() int {
	return e.multiplier
}

func (e *Engine) Combo() int {
	return e.combo
}

func (e *Engine) BestCombo() int {
	return e.bestCombo
}

// BonusRequests counts Fizzer requests made, granted or not
func (e *Engine) BonusRequests() int {
	return e.bonusRequests
}
