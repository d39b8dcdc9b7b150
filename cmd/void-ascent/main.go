package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/google/uuid"

	"github.com/lixenwraith/void-ascent/audio"
	"github.com/lixenwraith/void-ascent/config"
	"github.com/lixenwraith/void-ascent/core"
	"github.com/lixenwraith/void-ascent/engine"
	"github.com/lixenwraith/void-ascent/input"
	"github.com/lixenwraith/void-ascent/render"
	"github.com/lixenwraith/void-ascent/session"
	"github.com/lixenwraith/void-ascent/status"
)

var (
	configFlag = flag.String("config", "", "Path to YAML tuning file")
	debugFlag  = flag.Bool("debug", false, "Write logs to logs/void-ascent.log")
	modeFlag   = flag.String("mode", "", "Start immediately: normal, test, rogue")
	muteFlag   = flag.Bool("mute", false, "Start with audio muted")
	seedFlag   = flag.Uint64("seed", 0, "Simulation seed, 0 picks one from the clock")
)

func main() {
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	flag.Parse()

	logFile := setupLogging(*debugFlag)
	if logFile != nil {
		defer logFile.Close()
	}

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "void-ascent: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load(*configFlag)
	if err != nil {
		return err
	}
	if *seedFlag != 0 {
		cfg.Session.Seed = *seedFlag
	}
	if *muteFlag {
		cfg.Audio.Muted = true
	}

	startMode, autoStart, err := parseMode(*modeFlag)
	if err != nil {
		return err
	}

	runID := uuid.NewString()
	cfg.Session.RunID = runID
	log.Printf("[main] %s starting, seed %d", runID, cfg.Session.Seed)

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	core.SetResetHook(screen.Fini)
	defer screen.Fini()
	screen.HideCursor()

	reg := status.NewRegistry()

	// Audio is optional; the game runs silent without a device
	sound := audio.NewSoundManager(cfg.Audio, reg)
	if err := sound.Initialize(); err != nil {
		log.Printf("[audio] %s initialization failed, continuing without audio: %v", runID, err)
	} else {
		defer sound.Cleanup()
	}

	scene := render.NewScene()
	hud := render.NewHUD(render.DefaultBannerTTL, nil)
	ctrl := input.NewController(input.DefaultHoldWindow, nil, reg)

	sess, err := session.New(cfg.Session, scene, ctrl, reg)
	if err != nil {
		return fmt.Errorf("session: %w", err)
	}
	sess.Router().Register(sound)
	sess.Router().Register(hud)

	a := &app{
		runID:    runID,
		sess:     sess,
		ctrl:     ctrl,
		sound:    sound,
		hud:      hud,
		renderer: render.NewRenderer(screen, scene, hud),
		screen:   screen,
		quit:     make(chan struct{}),
	}
	if autoStart {
		a.start(startMode)
	}

	loop := engine.NewLoop(cfg.Engine, engine.NewTimeProvider(), reg, a.frame)
	loop.Start()

	inputStop := make(chan struct{})
	core.Go(func() { ctrl.Run(screen, inputStop) })

	<-a.quit
	close(inputStop)
	loop.Stop()
	sess.Teardown()

	log.Printf("[main] %s exiting after %s, score %d", runID, sess.Elapsed().Round(time.Second), sess.Score().Points())
	for k, v := range reg.Snapshot() {
		log.Printf("[status] %s %s=%s", runID, k, v)
	}
	return nil
}

// parseMode maps the -mode flag; empty means show the start screen
func parseMode(s string) (session.Mode, bool, error) {
	switch s {
	case "":
		return session.ModeNormal, false, nil
	case "normal":
		return session.ModeNormal, true, nil
	case "test":
		return session.ModeTest, true, nil
	case "rogue":
		return session.ModeRogue, true, nil
	}
	return 0, false, fmt.Errorf("unknown mode %q", s)
}
