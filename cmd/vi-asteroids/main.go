package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/lixenwraith/vi-asteroids/audio"
	"github.com/lixenwraith/vi-asteroids/config"
	"github.com/lixenwraith/vi-asteroids/core"
	"github.com/lixenwraith/vi-asteroids/engine"
	"github.com/lixenwraith/vi-asteroids/input"
	"github.com/lixenwraith/vi-asteroids/render"
	"github.com/lixenwraith/vi-asteroids/status"
)

var (
	configFlag = flag.String("config", "", "YAML session config")
	debugFlag  = flag.Bool("debug", false, "Write a JSON debug log under logs/")
	seedFlag   = flag.Uint64("seed", 0, "RNG seed, overrides the config; 0 keeps the config or time seed")
	muteFlag   = flag.Bool("mute", false, "Start with sound muted")
)

func main() {
	flag.Parse()

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "vi-asteroids: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load(*configFlag)
	if err != nil {
		return err
	}
	if *seedFlag != 0 {
		cfg.Seed = *seedFlag
	}

	logger, logFile, err := setupLogging(*debugFlag, logDir)
	if err != nil {
		return err
	}
	if logFile != nil {
		defer logFile.Close()
	}
	defer logger.Sync()

	seed := cfg.ResolveSeed(time.Now())
	logger = logger.With(zap.String("session", uuid.NewString()))
	logger.Info("session start",
		zap.Uint64("seed", seed),
		zap.Duration("tick", cfg.TickInterval),
		zap.Int("asteroids", len(cfg.Asteroids)))

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	// Normal exit terminal cleanup
	defer screen.Fini()
	core.SetCrashCleanup(screen.Fini)
	screen.HideCursor()
	screen.EnableFocus()

	sound := audio.NewSoundManager(audioConfig(cfg), logger)
	if err := sound.Initialize(); err != nil {
		logger.Warn("audio unavailable, continuing without sound", zap.Error(err))
	}
	defer sound.Cleanup()
	sound.SetMuted(*muteFlag)

	world := buildWorld(cfg, seed)
	metrics := status.NewRegistry()
	inputs := make(chan input.Event, 64)

	scheduler := engine.NewClockScheduler(world, inputs, engine.SchedulerConfig{
		TickInterval: cfg.TickInterval,
		HoldWindow:   cfg.HoldWindow,
		FireHold:     cfg.FireHold,
		Renderer:     render.NewOrchestrator(render.NewTerminalSurface(screen, cfg.Bounds())),
		Status:       metrics,
		Logger:       logger,
	})
	scheduler.RegisterEventHandler(sound)
	scheduler.RegisterEventHandler(newEventLogger(logger))

	sigCtx, stopSignals := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stopSignals()
	ctx, quit := context.WithCancel(sigCtx)
	defer quit()

	poller := &inputPoller{
		screen: screen,
		table:  input.DefaultKeyTable(),
		out:    inputs,
		quit:   quit,
		mute:   sound.ToggleMute,
		logger: logger,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(core.Safe(func() error { return scheduler.Run(gctx) }))
	g.Go(core.Safe(func() error { return poller.Run(gctx) }))
	err = g.Wait()

	logger.Info("session end", zap.Any("metrics", metrics.Snapshot()))
	return err
}
