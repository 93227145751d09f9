package main

import (
	"fmt"
	"math/rand"
	"os"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/lixenwraith/last-touch/audio"
	"github.com/lixenwraith/last-touch/config"
	"github.com/lixenwraith/last-touch/core"
	"github.com/lixenwraith/last-touch/engine"
	"github.com/lixenwraith/last-touch/events"
	"github.com/lixenwraith/last-touch/game"
	"github.com/lixenwraith/last-touch/input"
	"github.com/lixenwraith/last-touch/logging"
	"github.com/lixenwraith/last-touch/render"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "last-touch: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	log, err := logging.New(cfg.LogFile)
	if err != nil {
		return err
	}
	defer log.Sync()

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	screen.EnableMouse()
	defer screen.Fini()

	// Restore the terminal before the panic reaches the user.
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "\nLAST-TOUCH CRASHED: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))
	clock := core.NewMonotonicClock()

	// Audio is best-effort: a host without a backend plays silently.
	sound := audio.NewService()
	sound.Init(cfg.Muted)
	defer sound.Stop()
	if sound.IsDisabled() {
		log.Warn("audio backend unavailable, running silent")
	}

	queue := events.NewQueue()
	router := events.NewRouter(queue)

	adapter := input.NewAdapter(screen, queue)

	registry := game.NewRegistry(game.NewAllocator(rng), clock)
	sched := game.NewScheduler(cfg.EliminationInterval)
	controller := game.NewController(registry, sched, rng, queue, clock, adapter)

	router.Register(controller)
	router.Register(audio.NewHandler(sound))
	router.Register(logging.NewHandler(log))

	loop := engine.NewLoop(screen, queue, router, controller,
		render.New(screen), sound, cfg.FrameInterval())

	log.Info("starting",
		zap.Duration("elimination_interval", cfg.EliminationInterval),
		zap.Int("fps", cfg.FrameRate),
		zap.Int64("seed", seed),
	)

	adapter.Start()
	defer adapter.Stop()

	loop.Run()

	log.Info("stopped")
	return nil
}
