package enemy

import (
	"errors"
	"fmt"
	"log"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/void-ascent/event"
	"github.com/lixenwraith/void-ascent/parameter"
	"github.com/lixenwraith/void-ascent/service"
	"github.com/lixenwraith/void-ascent/status"
	"github.com/lixenwraith/void-ascent/vmath"
)

// ErrSpawnRejected is returned when the population cap or the scene refuses a spawn
var ErrSpawnRejected = errors.New("spawn rejected")

// Config holds the coordinator tuning
type Config struct {
	CellSize         float64
	SeparationRadius float64
	SeparationWeight float64
	Agility          float64
	ArenaRadius      float64
	MaxEnemies       int
	FizzerStreakCap  int
	FireRange        float64
}

// DefaultConfig returns the stock tuning
func DefaultConfig() Config {
	return Config{
		CellSize:         parameter.GridCellSize,
		SeparationRadius: parameter.SeparationRadius,
		SeparationWeight: parameter.SeparationWeight,
		Agility:          parameter.SteeringAgility,
		ArenaRadius:      parameter.ArenaRadius,
		MaxEnemies:       parameter.MaxEnemies,
		FizzerStreakCap:  parameter.FizzerStreakCap,
		FireRange:        parameter.EnemyFireRange,
	}
}

// KillListener receives every tracked kill exactly once
type KillListener interface {
	EnemyKilled(e *Enemy)
}

// Shooter receives enemy projectiles
type Shooter interface {
	EnemyShot(from, dir vmath.Vec2)
}

// Coordinator owns the enemy population: spawning, steering, separation,
// chain damage and removal
type Coordinator struct {
	cfg   Config
	scene service.Scene
	queue *event.Queue
	rng   *vmath.FastRand

	enemies []*Enemy
	byID    map[uint64]*Enemy
	nextID  uint64
	grid    *Grid

	schedule     Schedule
	policy       SpawnPolicy
	timers       [KindCount]time.Duration
	timerSpawned [KindCount]int
	spawned      [KindCount]int
	paused       bool

	target    vmath.Vec2
	listener  KillListener
	shooter   Shooter
	chainMult float64

	fizzerStreak int
	frame        int64

	statAlive     *atomic.Int64
	statSpawned   *atomic.Int64
	statKilled    *atomic.Int64
	statChainHits *atomic.Int64
}

// NewCoordinator creates a coordinator spawning along the default arena edge
func NewCoordinator(cfg Config, scene service.Scene, queue *event.Queue, reg *status.Registry, rng *vmath.FastRand) *Coordinator {
	if rng == nil {
		rng = vmath.NewFastRand(uint64(time.Now().UnixNano()))
	}
	if reg == nil {
		reg = status.NewRegistry()
	}
	return &Coordinator{
		cfg:       cfg,
		scene:     scene,
		queue:     queue,
		rng:       rng,
		enemies:   make([]*Enemy, 0, 64),
		byID:      make(map[uint64]*Enemy, 64),
		grid:      NewGrid(cfg.CellSize),
		policy:    EdgeSpawn{Boundary: cfg.ArenaRadius},
		chainMult: 1,

		statAlive:     reg.Ints.Get("enemy.alive"),
		statSpawned:   reg.Ints.Get("enemy.spawned"),
		statKilled:    reg.Ints.Get("enemy.killed"),
		statChainHits: reg.Ints.Get("enemy.chain_hits"),
	}
}

// SetSchedule installs the active level's spawn timing
func (c *Coordinator) SetSchedule(s Schedule) {
	c.schedule = s
}

// SetSpawnPolicy installs the spawn geometry
func (c *Coordinator) SetSpawnPolicy(p SpawnPolicy) {
	if p != nil {
		c.policy = p
	}
}

// SetTarget sets the point enemies steer and aim at
func (c *Coordinator) SetTarget(p vmath.Vec2) {
	c.target = p
}

func (c *Coordinator) SetKillListener(l KillListener) {
	c.listener = l
}

func (c *Coordinator) SetShooter(s Shooter) {
	c.shooter = s
}

// SetChainRadiusScale scales every death radius
func (c *Coordinator) SetChainRadiusScale(f float64) {
	if f > 0 {
		c.chainMult = f
	}
}

func (c *Coordinator) ChainRadiusScale() float64 {
	return c.chainMult
}

// PauseSpawning stops timer spawns without touching timer state
func (c *Coordinator) PauseSpawning() {
	c.paused = true
}

func (c *Coordinator) ResumeSpawning() {
	c.paused = false
}

func (c *Coordinator) SpawningPaused() bool {
	return c.paused
}

// ResetSpawnTimers zeroes per-kind timers and per-level limits for a new level
func (c *Coordinator) ResetSpawnTimers() {
	c.timers = [KindCount]time.Duration{}
	c.timerSpawned = [KindCount]int{}
}

// Spawn creates an enemy of kind k at pos
// Returns ErrSpawnRejected when the population is full or the scene refuses the visual
func (c *Coordinator) Spawn(k Kind, pos vmath.Vec2) (*Enemy, error) {
	if k >= KindCount {
		return nil, fmt.Errorf("%w: unknown kind %d", ErrSpawnRejected, k)
	}
	if c.cfg.MaxEnemies > 0 && len(c.enemies) >= c.cfg.MaxEnemies {
		return nil, fmt.Errorf("%w: population cap %d", ErrSpawnRejected, c.cfg.MaxEnemies)
	}

	p := ProfileOf(k)
	var h service.Handle
	if c.scene != nil {
		var err error
		h, err = c.scene.PlaceVisual(service.Visual{Kind: service.VisualEnemy, Tag: int(k), Pos: pos, Radius: p.Radius})
		if err != nil {
			log.Printf("[enemy] visual placement failed for %s: %v", k, err)
			return nil, fmt.Errorf("%w: %v", ErrSpawnRejected, err)
		}
	}

	c.nextID++
	e := &Enemy{
		ID:        c.nextID,
		Kind:      k,
		Pos:       pos,
		Radius:    p.Radius,
		Health:    p.Health,
		MaxHealth: p.Health,
		Alive:     true,
		Visual:    h,
		phase:     c.rng.Angle(),
	}
	// Initial heading toward the target so the first separation pass has a speed to keep
	e.Vel = c.target.Sub(pos).WithLen(p.Speed)

	c.enemies = append(c.enemies, e)
	c.byID[e.ID] = e
	c.spawned[k]++
	c.statSpawned.Add(1)

	if c.queue != nil {
		c.queue.Emit(event.EventEnemySpawned, &event.EnemyPayload{ID: e.ID, Kind: int(k), X: pos.X, Y: pos.Y}, c.frame)
	}
	return e, nil
}

// SpawnFizzer requests a bonus Fizzer; refused once the current streak reached its cap
func (c *Coordinator) SpawnFizzer() bool {
	if c.cfg.FizzerStreakCap > 0 && c.fizzerStreak >= c.cfg.FizzerStreakCap {
		return false
	}
	if _, err := c.Spawn(Fizzer, c.policy.SpawnPoint(c.rng, c.target)); err != nil {
		return false
	}
	c.fizzerStreak++
	return true
}

// ResetFizzerStreak re-arms the Fizzer cap after the player takes damage
func (c *Coordinator) ResetFizzerStreak() {
	c.fizzerStreak = 0
}

func (c *Coordinator) FizzerStreak() int {
	return c.fizzerStreak
}

// Update runs a complete frame: Step then Reap
func (c *Coordinator) Update(dt, elapsed time.Duration) {
	c.Step(dt, elapsed)
	c.Reap()
}

// Step runs spawn timers, steering and movement, enemy fire, then separation
// The grid is current for neighbour queries once Step returns
func (c *Coordinator) Step(dt, elapsed time.Duration) {
	c.frame++
	c.spawnTimers(dt)

	sec := dt.Seconds()
	for _, e := range c.enemies {
		if e.Dying() {
			e.dying -= dt
			if e.dying <= 0 {
				e.Alive = false
			}
			continue
		}
		if !e.Hittable() {
			continue
		}
		c.steer(e, sec, elapsed)
		e.Pos = e.Pos.Add(e.Vel.Scale(sec))
		c.fire(e, dt)
	}

	c.ResolveEnemyCollisions()

	if c.scene != nil {
		for _, e := range c.enemies {
			if e.Alive {
				c.scene.MoveVisual(e.Visual, e.Pos)
			}
		}
	}
}

// Hit applies damage to a hittable enemy; death handling waits for Reap
func (c *Coordinator) Hit(e *Enemy, dmg int) {
	if e == nil || !e.Hittable() || dmg <= 0 {
		return
	}
	e.Health -= dmg
}

// Execute forces a lethal hit on enemy id, flagged so it is never scored
// Unknown or already-dead ids are ignored
func (c *Coordinator) Execute(id uint64) {
	e, ok := c.byID[id]
	if !ok || !e.Hittable() {
		return
	}
	e.Executed = true
	e.Health = 0
}

// Reap processes new deaths with chain damage, then removes finished enemies
func (c *Coordinator) Reap() {
	c.processDeaths()
	c.removeFinished()
}

// ClearAll despawns every enemy without kill bookkeeping
func (c *Coordinator) ClearAll() {
	for _, e := range c.enemies {
		if c.scene != nil && e.Visual != 0 {
			c.scene.RemoveVisual(e.Visual)
		}
	}
	clear(c.enemies)
	c.enemies = c.enemies[:0]
	clear(c.byID)
	c.grid.Rebuild(nil)
	c.statAlive.Store(0)
}

// Reset clears the population and all spawn state for a new run
func (c *Coordinator) Reset() {
	c.ClearAll()
	c.ResetSpawnTimers()
	c.spawned = [KindCount]int{}
	c.fizzerStreak = 0
	c.paused = false
	c.chainMult = 1
	c.schedule = nil
}

// Enemies returns the live population; callers must not retain or mutate the slice
func (c *Coordinator) Enemies() []*Enemy {
	return c.enemies
}

// ByID returns the enemy with id if it is still in the population
func (c *Coordinator) ByID(id uint64) (*Enemy, bool) {
	e, ok := c.byID[id]
	return e, ok
}

// Count returns the number of hittable enemies of kind k
func (c *Coordinator) Count(k Kind) int {
	n := 0
	for _, e := range c.enemies {
		if e.Kind == k && e.Hittable() {
			n++
		}
	}
	return n
}

// Spawned returns the cumulative spawns of kind k since the last Reset
func (c *Coordinator) Spawned(k Kind) int {
	return c.spawned[k]
}

// ForEachNear visits hittable enemies near p using the grid built by the last Step
// Returning false from fn stops the walk
func (c *Coordinator) ForEachNear(p vmath.Vec2, radius float64, fn func(e *Enemy) bool) {
	c.grid.Query(p, radius, func(e *Enemy) bool {
		if !e.Hittable() {
			return true
		}
		return fn(e)
	})
}

// Nearest returns the closest hittable enemy within maxRange of p, or nil
func (c *Coordinator) Nearest(p vmath.Vec2, maxRange float64) *Enemy {
	var best *Enemy
	bestSq := maxRange * maxRange
	for _, e := range c.enemies {
		if !e.Hittable() {
			continue
		}
		if d := e.Pos.Sub(p).LenSq(); d <= bestSq {
			best, bestSq = e, d
		}
	}
	return best
}

func (c *Coordinator) removeFinished() {
	n := 0
	for _, e := range c.enemies {
		if e.removable() {
			if c.scene != nil && e.Visual != 0 {
				c.scene.RemoveVisual(e.Visual)
			}
			delete(c.byID, e.ID)
			continue
		}
		c.enemies[n] = e
		n++
	}
	clear(c.enemies[n:])
	c.enemies = c.enemies[:n]
	c.statAlive.Store(int64(n))
}

// DespawnBelow removes hittable enemies that fell behind the scroll floor, without kill bookkeeping
func (c *Coordinator) DespawnBelow(y float64) int {
	n := 0
	for _, e := range c.enemies {
		if e.Hittable() && e.Pos.Y < y {
			e.despawned = true
			n++
		}
	}
	return n
}
