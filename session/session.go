// Package session is the top-level state machine driving one run of the game
package session

import (
	"errors"
	"fmt"
	"log"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/void-ascent/enemy"
	"github.com/lixenwraith/void-ascent/event"
	"github.com/lixenwraith/void-ascent/level"
	"github.com/lixenwraith/void-ascent/parameter"
	"github.com/lixenwraith/void-ascent/score"
	"github.com/lixenwraith/void-ascent/service"
	"github.com/lixenwraith/void-ascent/status"
	"github.com/lixenwraith/void-ascent/vmath"
)

var (
	ErrNoScene           = errors.New("session requires a scene")
	ErrInvalidTransition = errors.New("invalid state transition")
	ErrNoChoicePending   = errors.New("no mutation choice pending")
	ErrChoiceOutOfRange  = errors.New("choice out of range")
)

// Wormhole is the rogue layer exit
type Wormhole struct {
	Pos    vmath.Vec2
	Radius float64
	Visual service.Handle
}

// Session owns one run: state, player, projectiles and the three simulation components
// Not safe for concurrent use; the frame loop goroutine owns it
type Session struct {
	cfg   Config
	scene service.Scene
	input service.InputSource

	queue  *event.Queue
	router *event.Router
	rng    *vmath.FastRand

	director *level.Director
	enemies  *enemy.Coordinator
	score    *score.Engine

	player      *Player
	weapon      Weapon
	projectiles []*Projectile
	pickups     []*Pickup
	wormhole    *Wormhole
	delays      DelayQueue

	deck    *mutationDeck
	offered []Mutation
	applied []string

	state     State
	phase     TransitionPhase
	phaseLeft time.Duration
	deathLeft time.Duration
	mode      Mode

	elapsed   time.Duration // Game time while Playing
	ambient   time.Duration // Cosmetic time, runs in every state
	frame     int64
	pauseHeld bool

	statState  *status.AtomicString
	statFrames *atomic.Int64
}

// New wires a session; a nil scene is a fatal startup error
func New(cfg Config, scene service.Scene, in service.InputSource, reg *status.Registry) (*Session, error) {
	if scene == nil {
		return nil, ErrNoScene
	}
	if reg == nil {
		reg = status.NewRegistry()
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	queue := event.NewQueue()
	rng := vmath.NewFastRand(seed)
	s := &Session{
		cfg:        cfg,
		scene:      scene,
		input:      in,
		queue:      queue,
		router:     event.NewRouter(queue),
		rng:        rng,
		director:   level.NewDirector(reg),
		player:     newPlayer(),
		weapon:     newWeapon(),
		deck:       newMutationDeck(),
		state:      StateStartScreen,
		statState:  reg.Strings.Get("session.state"),
		statFrames: reg.Ints.Get("session.frames"),
	}
	s.enemies = enemy.NewCoordinator(cfg.Enemy, scene, queue, reg, vmath.NewFastRand(rng.Next()))
	s.enemies.SetKillListener(s)
	s.enemies.SetShooter(s)
	s.score = score.NewEngine(cfg.Score, s.enemies, queue, reg)
	s.statState.Store(s.state.String())
	return s, nil
}

// Router exposes the event router for audio and UI collaborators
func (s *Session) Router() *event.Router {
	return s.router
}

// Start begins a run in mode after a full synchronous teardown
// Only valid from StartScreen or GameOver
func (s *Session) Start(mode Mode) error {
	if s.state != StateStartScreen && s.state != StateGameOver {
		log.Printf("[session] %s start ignored in state %s", s.cfg.RunID, s.state)
		return fmt.Errorf("%w: start from %s", ErrInvalidTransition, s.state)
	}
	s.teardown()

	s.mode = mode
	switch mode {
	case ModeRogue:
		s.director.Start(level.RogueIndex)
		s.enemies.SetSpawnPolicy(enemy.AboveSpawn{Ahead: parameter.ScrollSpawnAhead, HalfWidth: parameter.ScrollHalfWidth})
	case ModeTest:
		s.director.Start(level.TestIndex)
		s.enemies.SetSpawnPolicy(enemy.EdgeSpawn{Boundary: s.cfg.Enemy.ArenaRadius})
	default:
		s.director.Start(1)
		s.enemies.SetSpawnPolicy(enemy.EdgeSpawn{Boundary: s.cfg.Enemy.ArenaRadius})
	}
	s.enemies.SetSchedule(s.director.Config())

	h, err := s.scene.PlaceVisual(service.Visual{Kind: service.VisualPlayer, Pos: s.player.Pos, Radius: s.player.Radius})
	if err != nil {
		return fmt.Errorf("place player visual: %w", err)
	}
	s.player.Visual = h

	s.setState(StatePlaying)
	s.emitLevelStart()
	log.Printf("[session] %s run started mode=%s", s.cfg.RunID, mode)
	return nil
}

// Teardown ends the run and returns to the start screen
func (s *Session) Teardown() {
	s.teardown()
	s.state = StateStartScreen
	s.statState.Store(s.state.String())
}

// teardown clears entities, cancels timers and resets counters
func (s *Session) teardown() {
	s.delays.CancelAll()
	s.enemies.Reset()
	s.clearProjectiles()
	s.clearPickups()
	s.removeWormhole()
	if s.player != nil && s.player.Visual != 0 {
		s.scene.RemoveVisual(s.player.Visual)
	}
	s.player = newPlayer()
	s.weapon = newWeapon()
	s.score.Reset()
	s.deck = newMutationDeck()
	s.offered = nil
	s.applied = nil
	s.phase = PhaseNone
	s.phaseLeft = 0
	s.deathLeft = 0
	s.elapsed = 0
	s.router.Discard()
}

// Update advances one frame; dt is clamped to the configured maximum
func (s *Session) Update(dt time.Duration) {
	if dt < 0 {
		dt = 0
	}
	if s.cfg.MaxFrameDelta > 0 && dt > s.cfg.MaxFrameDelta {
		dt = s.cfg.MaxFrameDelta
	}
	s.frame++
	s.ambient += dt
	s.statFrames.Store(s.frame)
	s.score.SetFrame(s.frame)

	var in service.Intent
	if s.input != nil {
		in = s.input.Poll()
	}
	if in.Pause && !s.pauseHeld {
		s.TogglePause()
	}
	s.pauseHeld = in.Pause

	switch s.state {
	case StatePlaying:
		s.updatePlaying(dt, in)
	case StateDeathAnimation:
		s.updateDeath(dt)
	case StateLevelTransition:
		s.updateTransition(dt, in)
	}

	s.router.DispatchAll()
}

func (s *Session) updatePlaying(dt time.Duration, in service.Intent) {
	cfg := s.director.Config()
	if cfg == nil {
		log.Printf("[session] %s no level config, frame %d skipped", s.cfg.RunID, s.frame)
		return
	}

	s.director.Update(dt)
	s.elapsed += dt
	s.delays.Advance(dt)
	if s.checkObjectives() {
		return
	}

	s.player.update(dt, in)
	if cfg.Rogue {
		floor := s.director.ScrollOffset()
		s.player.confineCorridor(parameter.ScrollHalfWidth, floor-parameter.ScrollSlack)
		s.enemies.DespawnBelow(floor - 2*parameter.ScrollSlack)
	} else {
		s.player.confineArena(s.cfg.Enemy.ArenaRadius)
	}
	s.scene.MoveVisual(s.player.Visual, s.player.Pos)

	s.enemies.SetTarget(s.player.Pos)
	s.enemies.Step(dt, s.elapsed)
	s.updatePickups(dt)
	s.updateWeapon(dt, in)
	s.updateProjectiles(dt)

	s.resolveCollisions()
	s.enemies.Reap()
	s.sweepProjectiles()
	s.sweepPickups()

	s.score.Update(s.elapsed)

	if !s.player.Alive() {
		s.enterDeath()
		return
	}
	if s.state == StatePlaying {
		s.checkObjectives()
	}
}

// checkObjectives reacts to completion and reports whether the frame should stop
func (s *Session) checkObjectives() bool {
	if !s.director.CheckObjectivesComplete() {
		return false
	}
	if s.mode.SpecialChoices() {
		s.openWormhole()
		return false
	}
	s.enterTransition()
	return s.state != StatePlaying
}

// TogglePause flips between Playing and Paused; ignored in every other state
func (s *Session) TogglePause() {
	switch s.state {
	case StatePlaying:
		s.setState(StatePaused)
	case StatePaused:
		s.setState(StatePlaying)
	default:
		log.Printf("[session] %s pause ignored in state %s", s.cfg.RunID, s.state)
		return
	}
	s.emit(event.EventPauseChanged, &event.PausePayload{Paused: s.state == StatePaused})
}

// EnemyKilled receives every tracked kill from the coordinator
// Only kills made by the player while Playing count toward objectives and score
func (s *Session) EnemyKilled(e *enemy.Enemy) {
	scored := s.state == StatePlaying && !e.Executed
	if scored {
		s.director.RegisterKill(e.Kind)
		s.score.OnKill(e.Kind, s.elapsed)
		s.dropLoot(e)
	}
	s.emit(event.EventEnemyKilled, &event.EnemyKilledPayload{
		ID:     e.ID,
		Kind:   int(e.Kind),
		X:      e.Pos.X,
		Y:      e.Pos.Y,
		XP:     enemy.ProfileOf(e.Kind).XP,
		Chain:  e.ChainKilled,
		Scored: scored,
	})
}

func (s *Session) damagePlayer(dmg int) {
	absorbed, ok := s.player.takeDamage(dmg)
	if !ok {
		return
	}
	// Any damage event resets streaks, shield-absorbed hits included
	s.score.OnPlayerDamaged()
	s.emit(event.EventPlayerHit, &event.PlayerHitPayload{Damage: dmg, Absorbed: absorbed, Health: s.player.Health})
}

func (s *Session) setState(to State) {
	if s.state == to {
		return
	}
	if !CanTransition(s.state, to) {
		log.Printf("[session] %s rejected transition %s -> %s", s.cfg.RunID, s.state, to)
		return
	}
	s.state = to
	s.statState.Store(to.String())
}

func (s *Session) emit(t event.EventType, payload any) {
	s.queue.Emit(t, payload, s.frame)
}

func (s *Session) notify(text string, p event.Priority) {
	s.emit(event.EventNotify, &event.NotifyPayload{Text: text, Priority: p})
}

func (s *Session) emitLevelStart() {
	cfg := s.director.Config()
	s.emit(event.EventLevelStart, &event.LevelPayload{Level: cfg.Number, Name: cfg.Name})
	s.notify(levelTitle(cfg), event.PriorityHigh)
}

func levelTitle(cfg *level.Config) string {
	switch {
	case cfg.Test:
		return cfg.Name
	case cfg.Rogue:
		return fmt.Sprintf("Layer %d: %s", cfg.Number, cfg.Name)
	default:
		return fmt.Sprintf("Level %d: %s", cfg.Number, cfg.Name)
	}
}

func (s *Session) State() State                     { return s.state }
func (s *Session) TransitionPhase() TransitionPhase { return s.phase }
func (s *Session) Mode() Mode                       { return s.mode }
func (s *Session) Player() *Player                  { return s.player }
func (s *Session) Coordinator() *enemy.Coordinator  { return s.enemies }
func (s *Session) Director() *level.Director        { return s.director }
func (s *Session) Score() *score.Engine             { return s.score }
func (s *Session) Projectiles() []*Projectile       { return s.projectiles }
func (s *Session) Pickups() []*Pickup               { return s.pickups }
func (s *Session) Wormhole() *Wormhole              { return s.wormhole }
func (s *Session) Elapsed() time.Duration           { return s.elapsed }
func (s *Session) Ambient() time.Duration           { return s.ambient }
func (s *Session) Frame() int64                     { return s.frame }
func (s *Session) PendingDelays() int               { return s.delays.Len() }

// Applied returns the names of mutations chosen this run
func (s *Session) Applied() []string {
	return s.applied
}

// DeathProgress returns 0..1 through the death animation
func (s *Session) DeathProgress() float64 {
	if s.state != StateDeathAnimation || s.cfg.DeathAnimation <= 0 {
		return 0
	}
	return 1 - float64(s.deathLeft)/float64(s.cfg.DeathAnimation)
}

// TransitionProgress returns 0..1 through the current transition phase
func (s *Session) TransitionProgress() float64 {
	if s.state != StateLevelTransition {
		return 0
	}
	total := s.cfg.TransitionClearing
	if s.phase == PhaseDisplaying {
		total = s.cfg.TransitionDisplay
	}
	if total <= 0 {
		return 1
	}
	return 1 - float64(max(s.phaseLeft, 0))/float64(total)
}
