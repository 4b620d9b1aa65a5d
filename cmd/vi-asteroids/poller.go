package main

import (
	"context"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/lixenwraith/vi-asteroids/core"
	"github.com/lixenwraith/vi-asteroids/input"
)

// inputPoller forwards terminal key events to the scheduler and handles host intents
// It never touches the world
type inputPoller struct {
	screen tcell.Screen
	table  *input.KeyTable
	out    chan<- input.Event
	quit   context.CancelFunc
	mute   func() bool
	logger *zap.Logger
}

// Run pumps screen events until ctx is cancelled or the screen is finalised
// A finalised screen ends the session since no further input can arrive
func (p *inputPoller) Run(ctx context.Context) error {
	events := make(chan tcell.Event, 64)
	stop := make(chan struct{})
	core.Go(func() { p.screen.ChannelEvents(events, stop) })
	defer close(stop)

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-events:
			if !ok {
				p.logger.Info("screen event stream closed")
				p.quit()
				return nil
			}
			p.handle(ctx, ev)
		}
	}
}

func (p *inputPoller) handle(ctx context.Context, ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		entry := p.table.Lookup(ev)
		switch entry.Intent {
		case input.IntentQuit:
			p.logger.Info("quit requested")
			p.quit()
		case input.IntentToggleMute:
			if p.mute != nil {
				p.logger.Info("mute toggled", zap.Bool("muted", p.mute()))
			}
		case input.IntentControl:
			select {
			case p.out <- input.Event{Key: entry.Key, Pressed: true, At: ev.When()}:
			case <-ctx.Done():
			}
		}

	case *tcell.EventFocus:
		// Key-up is lost with focus; drop held keys rather than wait out the hold window
		if !ev.Focused {
			select {
			case p.out <- input.Event{Reset: true}:
			case <-ctx.Done():
			}
		}

	case *tcell.EventResize:
		p.screen.Sync()
	}
}
