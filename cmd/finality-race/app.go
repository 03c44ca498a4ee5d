package main

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/lixenwraith/finality-race/audio"
	"github.com/lixenwraith/finality-race/chain"
	"github.com/lixenwraith/finality-race/core"
	"github.com/lixenwraith/finality-race/engine"
	"github.com/lixenwraith/finality-race/input"
	"github.com/lixenwraith/finality-race/render"
	"github.com/lixenwraith/finality-race/render/renderers"
	"github.com/lixenwraith/finality-race/status"
)

const eventQueueSize = 64

// app ties the terminal, the animator and the render pipeline together
type app struct {
	log          *zap.Logger
	screen       tcell.Screen
	animator     *engine.Animator
	orchestrator *render.Orchestrator
	keys         *input.KeyTable
	player       *audio.Player // nil when audio is off
	hud          render.HUD
}

func newApp(cfg *Config, screen tcell.Screen, roster *chain.Roster, reg *status.Registry, log *zap.Logger) *app {
	a := &app{
		log:    log,
		screen: screen,
		keys:   input.DefaultKeyTable(),
	}

	var listeners []engine.Listener
	if cfg.Audio {
		player := audio.NewPlayer(log)
		if err := player.Initialize(); err != nil {
			log.Warn("audio unavailable, continuing without sound", zap.Error(err))
		} else {
			a.player = player
			a.hud.Audio = true
			listeners = append(listeners, player)
		}
	}

	a.animator = engine.NewAnimator(engine.AnimatorConfig{
		Roster:        roster,
		FrameInterval: cfg.FrameInterval(),
		Registry:      reg,
		Logger:        log,
		Listeners:     listeners,
	})

	a.orchestrator = render.NewOrchestrator(screen)
	renderers.RegisterAll(a.orchestrator)
	return a
}

// handle applies one terminal event; returns false on quit
func (a *app) handle(ev tcell.Event) bool {
	intent := a.keys.Translate(ev)
	if intent.Type != input.IntentNone && intent.Type != input.IntentResize {
		a.log.Debug("key", zap.String("action", input.ActionName(intent.Type)))
	}
	switch intent.Type {
	case input.IntentNone:
	case input.IntentQuit:
		a.log.Info("quit requested")
		return false
	case input.IntentToggleMute:
		if a.player != nil {
			a.hud.Muted = a.player.ToggleMute()
		}
	case input.IntentResize:
		a.orchestrator.Resize()
	case input.IntentRedraw:
		a.screen.Sync()
	default:
		if cmd, ok := input.Command(intent.Type); ok {
			a.animator.Submit(cmd)
		}
	}
	return true
}

func (a *app) draw() {
	a.orchestrator.RenderFrame(render.Context{Snapshot: a.animator.Snapshot(), HUD: a.hud})
}

func (a *app) close() {
	a.animator.Stop()
	if a.player != nil {
		a.player.Cleanup()
	}
}

// run owns the terminal until the user quits
func run(cfg *Config, log *zap.Logger) error {
	roster, err := chain.LoadSeed()
	if err != nil {
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("creating screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("initializing screen: %w", err)
	}
	defer screen.Fini()
	core.SetCrashScreen(screen)
	screen.SetStyle(render.StyleDefault)
	screen.HideCursor()

	reg := status.NewRegistry()
	var metricsAddr string
	if cfg.MetricsAddr != "" {
		m, err := startMetrics(cfg.MetricsAddr, reg, log)
		if err != nil {
			return err
		}
		defer m.Close()
		metricsAddr = m.addr
	}

	a := newApp(cfg, screen, roster, reg, log)
	a.hud.MetricsAddr = metricsAddr
	a.animator.Start()
	defer a.close()

	if cfg.AutoRepeat {
		a.animator.Submit(engine.CmdToggleAutoRepeat)
	}

	log.Info("started",
		zap.Int("chains", roster.Len()),
		zap.Int("fps", cfg.FPS),
		zap.Bool("audio", a.hud.Audio),
		zap.Bool("auto_repeat", cfg.AutoRepeat))

	events := make(chan tcell.Event, eventQueueSize)
	done := make(chan struct{})
	defer close(done)
	core.Go(func() {
		for {
			ev := screen.PollEvent()
			// nil after Fini
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	})

	ticker := time.NewTicker(cfg.FrameInterval())
	defer ticker.Stop()

	a.draw()
	for {
		select {
		case ev := <-events:
			if !a.handle(ev) {
				return nil
			}
			a.draw()
		case <-a.animator.Updated():
			a.draw()
		case <-ticker.C:
			a.draw()
		}
	}
}
