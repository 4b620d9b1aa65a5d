package engine

import (
	"context"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/lixenwraith/vi-asteroids/constants"
	"github.com/lixenwraith/vi-asteroids/event"
	"github.com/lixenwraith/vi-asteroids/input"
	"github.com/lixenwraith/vi-asteroids/status"
)

// Renderer receives the frame lifecycle calls of each tick
// Clear runs before the world advances, Render and Show after
type Renderer interface {
	Clear()
	Render(w *World)
	Show()
}

type nopRenderer struct{}

func (nopRenderer) Clear()        {}
func (nopRenderer) Render(*World) {}
func (nopRenderer) Show()         {}

// SchedulerConfig carries the optional collaborators of a ClockScheduler
// Zero values select defaults
type SchedulerConfig struct {
	TickInterval time.Duration
	HoldWindow   time.Duration
	FireHold     time.Duration // 0 uses HoldWindow
	TimeProvider TimeProvider
	Renderer     Renderer
	Status       *status.Registry
	Logger       *zap.Logger
}

// ClockScheduler runs the world on a fixed tick
// Owns the input buffer; input events are applied on the scheduler goroutine
// between ticks so a tick observes exactly one snapshot
type ClockScheduler struct {
	world        *World
	buffer       *input.Buffer
	inputs       <-chan input.Event
	eventRouter  *event.Router
	renderer     Renderer
	timeProvider TimeProvider
	logger       *zap.Logger

	// Tick configuration
	tickInterval     time.Duration
	nextTickDeadline time.Time

	tickCount  atomic.Uint64
	shipLogged bool

	// Cached metric pointers
	statusReg    *status.Registry
	statTicks    *atomic.Int64
	statEntities *atomic.Int64
	statSpawned  *atomic.Int64
	statRemoved  *atomic.Int64
	statEvents   *atomic.Int64
	statOverruns *atomic.Int64
	statShipDead *atomic.Bool
}

// NewClockScheduler creates a scheduler advancing world once per tick
// inputs may be nil for a scheduler driven only through ApplyInput
func NewClockScheduler(world *World, inputs <-chan input.Event, cfg SchedulerConfig) *ClockScheduler {
	if cfg.TickInterval <= 0 {
		cfg.TickInterval = constants.GameUpdateInterval
	}
	if cfg.HoldWindow < 0 {
		cfg.HoldWindow = 0
	}
	if cfg.TimeProvider == nil {
		cfg.TimeProvider = NewMonotonicTimeProvider()
	}
	if cfg.Renderer == nil {
		cfg.Renderer = nopRenderer{}
	}
	if cfg.Status == nil {
		cfg.Status = status.NewRegistry()
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}

	buffer := input.NewBuffer(cfg.HoldWindow)
	if cfg.FireHold > 0 {
		buffer.SetHoldWindow(input.KeyFire, cfg.FireHold)
	}

	return &ClockScheduler{
		world:        world,
		buffer:       buffer,
		inputs:       inputs,
		eventRouter:  event.NewRouter(world.Queue()),
		renderer:     cfg.Renderer,
		timeProvider: cfg.TimeProvider,
		logger:       cfg.Logger,
		tickInterval: cfg.TickInterval,
		statusReg:    cfg.Status,
		statTicks:    cfg.Status.Ints.Get(status.KeyTicks),
		statEntities: cfg.Status.Ints.Get(status.KeyEntities),
		statSpawned:  cfg.Status.Ints.Get(status.KeySpawned),
		statRemoved:  cfg.Status.Ints.Get(status.KeyRemoved),
		statEvents:   cfg.Status.Ints.Get(status.KeyEvents),
		statOverruns: cfg.Status.Ints.Get(status.KeyTickOverruns),
		statShipDead: cfg.Status.Bools.Get(status.KeyShipDead),
	}
}

// RegisterEventHandler adds an event handler to the router, must be called before Run
func (cs *ClockScheduler) RegisterEventHandler(handler event.Handler) {
	cs.eventRouter.Register(handler)
}

// TickInterval returns the configured tick period
func (cs *ClockScheduler) TickInterval() time.Duration {
	return cs.tickInterval
}

// TickCount returns the number of ticks processed, safe from any goroutine
func (cs *ClockScheduler) TickCount() uint64 {
	return cs.tickCount.Load()
}

// ApplyInput records a key transition; scheduler goroutine only
func (cs *ClockScheduler) ApplyInput(ev input.Event) {
	cs.buffer.Apply(ev)
}

// Run drives ticks until ctx is cancelled
// Deadlines advance by a fixed interval to avoid drift; when the loop falls
// more than two intervals behind, the schedule restarts from now
func (cs *ClockScheduler) Run(ctx context.Context) error {
	cs.nextTickDeadline = cs.timeProvider.Now().Add(cs.tickInterval)
	cs.logger.Info("scheduler started", zap.Duration("interval", cs.tickInterval))
	defer cs.logger.Info("scheduler stopped", zap.Uint64("ticks", cs.tickCount.Load()))

	timer := time.NewTimer(cs.tickInterval)
	defer timer.Stop()

	inputs := cs.inputs
	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-inputs:
			if !ok {
				// Host closed the input stream, keep ticking on the held state
				inputs = nil
				continue
			}
			cs.buffer.Apply(ev)
			continue

		case <-timer.C:
		}

		now := cs.timeProvider.Now()
		if now.Before(cs.nextTickDeadline) {
			timer.Reset(cs.nextTickDeadline.Sub(now))
			continue
		}

		cs.Step(now)

		cs.nextTickDeadline = cs.nextTickDeadline.Add(cs.tickInterval)
		maxBehind := cs.tickInterval * 2
		if now.Sub(cs.nextTickDeadline) > maxBehind {
			cs.statOverruns.Add(1)
			cs.logger.Debug("tick overrun, resetting schedule",
				zap.Duration("behind", now.Sub(cs.nextTickDeadline)))
			cs.nextTickDeadline = now.Add(cs.tickInterval)
		}

		sleepDuration := cs.nextTickDeadline.Sub(cs.timeProvider.Now())
		if sleepDuration < 0 {
			sleepDuration = 0
		}
		timer.Reset(sleepDuration)
	}
}

// Step executes one tick at the given time
// Snapshot, clear, advance, dispatch events, render, show
func (cs *ClockScheduler) Step(now time.Time) {
	snapshot := cs.buffer.Snapshot(now)

	cs.renderer.Clear()
	stats := cs.world.Advance(snapshot)
	dispatched := cs.eventRouter.DispatchAll()
	cs.renderer.Render(cs.world)
	cs.renderer.Show()

	ticks := cs.tickCount.Add(1)
	cs.statTicks.Store(int64(ticks))
	cs.statEntities.Store(int64(cs.world.Len()))
	cs.statSpawned.Add(int64(stats.Spawned))
	cs.statRemoved.Add(int64(stats.Removed))
	cs.statEvents.Add(int64(dispatched))

	if cs.world.ShipDead() {
		cs.statShipDead.Store(true)
		if !cs.shipLogged {
			cs.shipLogged = true
			cs.logger.Info("ship destroyed", zap.Uint64("tick", ticks))
		}
	}
}
