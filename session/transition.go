package session

import (
	"fmt"
	"log"
	"time"

	"github.com/lixenwraith/void-ascent/event"
	"github.com/lixenwraith/void-ascent/level"
	"github.com/lixenwraith/void-ascent/parameter"
	"github.com/lixenwraith/void-ascent/service"
	"github.com/lixenwraith/void-ascent/vmath"
)

// staggerClear schedules a lethal hit on every hittable enemy within the stagger window
// Routed through the delay queue so pause and teardown hold or cancel it
func (s *Session) staggerClear() {
	for _, e := range s.enemies.Enemies() {
		if !e.Hittable() {
			continue
		}
		id := e.ID
		delay := time.Duration(s.rng.Float64() * float64(s.cfg.ClearStagger))
		s.delays.Schedule(delay, func() { s.enemies.Execute(id) })
	}
}

// enterTransition starts the ordinary level transition; repeated calls are ignored
func (s *Session) enterTransition() {
	if s.state == StateLevelTransition {
		return
	}
	if s.state != StatePlaying {
		log.Printf("[session] %s level transition ignored in state %s", s.cfg.RunID, s.state)
		return
	}
	s.setState(StateLevelTransition)
	s.phase = PhaseClearing
	s.phaseLeft = s.cfg.TransitionClearing
	s.enemies.PauseSpawning()
	s.staggerClear()

	cfg := s.director.Config()
	s.emit(event.EventLevelComplete, &event.LevelPayload{Level: cfg.Number, Name: cfg.Name})
}

func (s *Session) updateTransition(dt time.Duration, in service.Intent) {
	switch s.phase {
	case PhaseClearing:
		s.delays.Advance(dt)
		s.player.update(dt, in)
		s.player.confineArena(s.cfg.Enemy.ArenaRadius)
		s.scene.MoveVisual(s.player.Visual, s.player.Pos)

		s.enemies.SetTarget(s.player.Pos)
		s.enemies.Step(dt, s.elapsed)
		s.updateProjectiles(dt)
		s.resolveShots()
		s.enemies.Reap()
		s.sweepProjectiles()

		s.phaseLeft -= dt
		if s.phaseLeft <= 0 {
			s.phase = PhaseDisplaying
			s.phaseLeft = s.cfg.TransitionDisplay
			s.notify(fmt.Sprintf("%s complete", levelTitle(s.director.Config())), event.PriorityHigh)
		}
	case PhaseDisplaying:
		s.phaseLeft -= dt
		if s.phaseLeft <= 0 {
			s.phase = PhaseComplete
			s.completeTransition()
		}
	case PhaseComplete:
		s.completeTransition()
	}
}

// completeTransition cleans up synchronously and advances to the next level
func (s *Session) completeTransition() {
	s.delays.CancelAll()
	s.enemies.ClearAll()
	s.clearProjectiles()
	s.clearPickups()
	s.phase = PhaseNone
	s.phaseLeft = 0

	switch {
	case s.mode == ModeTest:
		s.director.Start(level.TestIndex)
	case s.mode == ModeRogue:
		s.director.AdvanceRogueLayer()
	case s.director.Final():
		s.enterGameOver("all levels cleared")
		return
	default:
		s.director.AdvanceLevel()
	}
	s.beginLevel()
}

// beginLevel installs the director's active config and resumes play
func (s *Session) beginLevel() {
	s.enemies.SetSchedule(s.director.Config())
	s.enemies.ResetSpawnTimers()
	s.enemies.ResumeSpawning()
	s.setState(StatePlaying)
	s.emitLevelStart()
}

func (s *Session) enterDeath() {
	if s.state == StateDeathAnimation {
		return
	}
	s.setState(StateDeathAnimation)
	s.deathLeft = s.cfg.DeathAnimation
	s.delays.CancelAll()
	s.emit(event.EventPlayerDied, nil)
	s.notify("Ship destroyed", event.PriorityCritical)
}

// updateDeath runs only the cosmetic dying sequence; the world stays frozen
func (s *Session) updateDeath(dt time.Duration) {
	s.deathLeft -= dt
	if s.deathLeft <= 0 {
		s.deathLeft = 0
		s.enterGameOver("player destroyed")
	}
}

func (s *Session) enterGameOver(reason string) {
	s.delays.CancelAll()
	s.enemies.PauseSpawning()
	s.setState(StateGameOver)
	s.emit(event.EventGameOver, &event.CountPayload{Value: int(s.score.Points())})
	log.Printf("[session] %s game over: %s, score %d", s.cfg.RunID, reason, s.score.Points())
}

// openWormhole ends a rogue layer: stagger-kill, freeze spawns, expose the exit
// Repeated calls while the wormhole is open are ignored
func (s *Session) openWormhole() {
	if s.wormhole != nil {
		return
	}
	pos := s.player.Pos.Add(vmath.V(0, parameter.WormholeAhead))
	h, err := s.scene.PlaceVisual(service.Visual{Kind: service.VisualWormhole, Pos: pos, Radius: parameter.WormholeRadius})
	if err != nil {
		// Without a visual the exit still works; the player just cannot see it
		log.Printf("[session] %s wormhole placement failed: %v", s.cfg.RunID, err)
	}
	s.wormhole = &Wormhole{Pos: pos, Radius: parameter.WormholeRadius, Visual: h}
	s.enemies.PauseSpawning()
	s.staggerClear()

	cfg := s.director.Config()
	s.emit(event.EventLevelComplete, &event.LevelPayload{Level: cfg.Number, Name: cfg.Name})
	s.emit(event.EventWormholeOpen, nil)
	s.notify("Wormhole open", event.PriorityHigh)
}

func (s *Session) removeWormhole() {
	if s.wormhole == nil {
		return
	}
	if s.wormhole.Visual != 0 {
		s.scene.RemoveVisual(s.wormhole.Visual)
	}
	s.wormhole = nil
}

// enterRogueChoice clears the layer and offers mutations; a second entry is ignored
func (s *Session) enterRogueChoice() {
	if s.state == StateRogueChoice {
		log.Printf("[session] %s rogue choice already active", s.cfg.RunID)
		return
	}
	s.delays.CancelAll()
	s.enemies.ClearAll()
	s.clearProjectiles()
	s.clearPickups()
	s.removeWormhole()

	s.offered = s.deck.draw(s.rng, s.cfg.ChoiceCount)
	if len(s.offered) == 0 {
		s.advanceRogue()
		return
	}

	s.setState(StateRogueChoice)
	names := make([]string, len(s.offered))
	for i, m := range s.offered {
		names[i] = m.Name
	}
	s.emit(event.EventRogueChoice, &event.ChoicePayload{Names: names})
}

// Choices returns the mutations on offer, nil outside RogueChoice
func (s *Session) Choices() []Mutation {
	if s.state != StateRogueChoice {
		return nil
	}
	return s.offered
}

// Choose applies offered mutation i and advances to the next rogue layer
func (s *Session) Choose(i int) error {
	if s.state != StateRogueChoice {
		return ErrNoChoicePending
	}
	if i < 0 || i >= len(s.offered) {
		return fmt.Errorf("%w: %d of %d", ErrChoiceOutOfRange, i, len(s.offered))
	}
	m := s.offered[i]
	m.apply(s)
	s.applied = append(s.applied, m.Name)
	s.offered = nil

	s.emit(event.EventMutationApplied, &event.ChoicePayload{Names: []string{m.Name}})
	s.notify(m.Name+": "+m.Description, event.PriorityNormal)
	s.advanceRogue()
	return nil
}

// advanceRogue starts the next layer from a fresh corridor
func (s *Session) advanceRogue() {
	s.director.AdvanceRogueLayer()
	s.player.Pos = vmath.Vec2{}
	s.scene.MoveVisual(s.player.Visual, s.player.Pos)
	s.beginLevel()
}
