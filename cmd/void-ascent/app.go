package main

import (
	"log"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/void-ascent/audio"
	"github.com/lixenwraith/void-ascent/enemy"
	"github.com/lixenwraith/void-ascent/event"
	"github.com/lixenwraith/void-ascent/input"
	"github.com/lixenwraith/void-ascent/parameter"
	"github.com/lixenwraith/void-ascent/render"
	"github.com/lixenwraith/void-ascent/session"
)

// app owns the collaborators around one session; frame runs on the loop goroutine only
type app struct {
	runID    string
	sess     *session.Session
	ctrl     *input.Controller
	sound    *audio.SoundManager
	hud      *render.HUD
	renderer *render.Renderer
	screen   tcell.Screen

	quit     chan struct{}
	quitOnce sync.Once
}

// frame is the engine.FrameFunc: commands, simulation, draw
func (a *app) frame(dt time.Duration) {
	a.drainCommands()
	a.sess.Update(dt)
	if a.renderer != nil {
		a.renderer.Draw(snapshot(a.sess, a.sound != nil && a.sound.Muted()))
		a.screen.Show()
	}
}

func (a *app) drainCommands() {
	for {
		select {
		case cmd := <-a.ctrl.Commands():
			a.handleCommand(cmd)
		default:
			return
		}
	}
}

func (a *app) handleCommand(cmd input.Command) {
	switch cmd.Type {
	case input.CommandQuit:
		a.quitOnce.Do(func() { close(a.quit) })
	case input.CommandStartNormal:
		a.start(session.ModeNormal)
	case input.CommandStartTest:
		a.start(session.ModeTest)
	case input.CommandStartRogue:
		a.start(session.ModeRogue)
	case input.CommandChoose:
		if err := a.sess.Choose(cmd.Arg); err != nil {
			log.Printf("[main] %s choose %d: %v", a.runID, cmd.Arg, err)
		}
	case input.CommandToggleMute:
		if a.sound == nil {
			return
		}
		if a.sound.ToggleMute() {
			a.hud.Post("audio muted", event.PriorityNormal)
		} else {
			a.hud.Post("audio on", event.PriorityNormal)
		}
	case input.CommandResize:
		if a.screen != nil {
			a.screen.Sync()
		}
	}
}

func (a *app) start(mode session.Mode) {
	if err := a.sess.Start(mode); err != nil {
		log.Printf("[main] %s start %s: %v", a.runID, mode, err)
		return
	}
	a.ctrl.Reset()
	a.hud.Clear()
}

// snapshot copies the HUD-facing session state
func snapshot(s *session.Session, muted bool) render.Frame {
	p := s.Player()
	sc := s.Score()
	f := render.Frame{
		Overlay:     overlayFor(s.State()),
		Mode:        s.Mode().String(),
		Score:       sc.Points(),
		Multiplier:  sc.Multiplier(),
		Combo:       sc.Combo(),
		Health:      p.Health,
		MaxHealth:   p.MaxHealth,
		Shield:      p.Shield,
		XP:          p.XP,
		XPNext:      p.Level * parameter.XPPerLevel,
		PlayerLevel: p.Level,
		Muted:       muted,
	}

	d := s.Director()
	if cfg := d.Config(); cfg != nil {
		f.Level = cfg.Number
		f.LevelName = cfg.Name
		progress := d.Progress()
		for k := enemy.Kind(0); k < enemy.KindCount; k++ {
			if need := cfg.Objectives[k]; need > 0 {
				f.Objectives = append(f.Objectives, render.Objective{Name: k.String(), Done: progress[k], Need: need})
			}
		}
	}

	switch s.State() {
	case session.StateDeathAnimation:
		f.Progress = s.DeathProgress()
	case session.StateLevelTransition:
		f.Progress = s.TransitionProgress()
	case session.StateRogueChoice:
		for _, m := range s.Choices() {
			f.Choices = append(f.Choices, m.Name+" - "+m.Description)
		}
	}
	return f
}

func overlayFor(st session.State) render.Overlay {
	switch st {
	case session.StateStartScreen:
		return render.OverlayStart
	case session.StatePaused:
		return render.OverlayPaused
	case session.StateDeathAnimation:
		return render.OverlayDeath
	case session.StateLevelTransition:
		return render.OverlayTransition
	case session.StateRogueChoice:
		return render.OverlayChoice
	case session.StateGameOver:
		return render.OverlayGameOver
	}
	return render.OverlayNone
}
