package level

import (
	"log"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/void-ascent/enemy"
	"github.com/lixenwraith/void-ascent/parameter"
	"github.com/lixenwraith/void-ascent/status"
)

// Director tracks the active level, kill progress and objective completion
//
// Completion latches: once objectives are met, further kills cannot un-complete
// the level. The elapsed clock keeps running after completion so rogue scrolling
// stays continuous through the wormhole phase
type Director struct {
	cfg      *Config
	progress Counts
	complete bool
	elapsed  time.Duration

	level int // Campaign level, 0 outside the campaign
	layer int // Rogue layer, 0 outside rogue

	scrollSpeed float64

	statLevel *atomic.Int64
	statName  *status.AtomicString
}

// NewDirector creates an idle director; Config returns nil until Start
func NewDirector(reg *status.Registry) *Director {
	if reg == nil {
		reg = status.NewRegistry()
	}
	return &Director{
		scrollSpeed: parameter.ScrollSpeed,
		statLevel:   reg.Ints.Get("level.number"),
		statName:    reg.Strings.Get("level.name"),
	}
}

// Start activates a level by index
// RogueIndex and TestIndex are resolved before numbered indices are clamped
func (d *Director) Start(index int) {
	var cfg Config
	switch index {
	case RogueIndex:
		d.level, d.layer = 0, 1
		cfg = GetRogueLevelConfig(1)
	case TestIndex:
		d.level, d.layer = 0, 0
		cfg = TestConfig()
	default:
		cfg = GetLevelConfig(index)
		d.level, d.layer = cfg.Number, 0
	}
	d.activate(cfg)
}

// AdvanceLevel moves to the next numbered level, staying on MaxLevel at the end
func (d *Director) AdvanceLevel() {
	next := d.level + 1
	if next > MaxLevel {
		next = MaxLevel
	}
	cfg := GetLevelConfig(next)
	d.level, d.layer = cfg.Number, 0
	d.activate(cfg)
}

// AdvanceRogueLayer synthesises and activates the next rogue layer
func (d *Director) AdvanceRogueLayer() {
	d.layer++
	if d.layer < 1 {
		d.layer = 1
	}
	d.level = 0
	d.activate(GetRogueLevelConfig(d.layer))
}

func (d *Director) activate(cfg Config) {
	d.cfg = &cfg
	d.progress = Counts{}
	d.complete = false
	d.elapsed = 0
	d.statLevel.Store(int64(cfg.Number))
	d.statName.Store(cfg.Name)
	log.Printf("[level] start %q number=%d rogue=%v test=%v difficulty=%.2f", cfg.Name, cfg.Number, cfg.Rogue, cfg.Test, cfg.Difficulty)
}

// Update advances the level clock
func (d *Director) Update(dt time.Duration) {
	if d.cfg == nil || dt <= 0 {
		return
	}
	d.elapsed += dt
}

// RegisterKill records progress for kind k; a no-op once the level has latched complete
func (d *Director) RegisterKill(k enemy.Kind) {
	if d.cfg == nil || d.complete || k >= enemy.KindCount {
		return
	}
	d.progress[k]++
}

// CheckObjectivesComplete reports whether every non-zero objective is met
// The result latches true for the rest of the level
func (d *Director) CheckObjectivesComplete() bool {
	if d.cfg == nil {
		return false
	}
	if d.complete {
		return true
	}
	for k, target := range d.cfg.Objectives {
		if target > 0 && d.progress[k] < target {
			return false
		}
	}
	d.complete = true
	return true
}

// Config returns the active level, nil before Start
func (d *Director) Config() *Config {
	return d.cfg
}

// Progress returns kill counts for the active level
func (d *Director) Progress() Counts {
	return d.progress
}

// Remaining returns the kills still needed of kind k
func (d *Director) Remaining(k enemy.Kind) int {
	if d.cfg == nil || k >= enemy.KindCount {
		return 0
	}
	if r := d.cfg.Objectives[k] - d.progress[k]; r > 0 {
		return r
	}
	return 0
}

func (d *Director) Level() int {
	return d.level
}

func (d *Director) Layer() int {
	return d.layer
}

func (d *Director) Elapsed() time.Duration {
	return d.elapsed
}

// ScrollOffset is the rogue scroll floor, linear in level time
func (d *Director) ScrollOffset() float64 {
	if d.cfg == nil || !d.cfg.Rogue {
		return 0
	}
	return d.elapsed.Seconds() * d.scrollSpeed
}

// Final reports whether the active level is the last campaign level
func (d *Director) Final() bool {
	return d.cfg != nil && !d.cfg.Rogue && !d.cfg.Test && d.level >= MaxLevel
}
