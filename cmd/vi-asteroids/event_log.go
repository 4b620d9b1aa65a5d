package main

import (
	"go.uber.org/zap"

	"github.com/lixenwraith/vi-asteroids/event"
)

// eventLogger writes game events to the debug log
type eventLogger struct {
	logger *zap.Logger
}

func newEventLogger(logger *zap.Logger) *eventLogger {
	return &eventLogger{logger: logger.Named("events")}
}

func (l *eventLogger) HandleEvent(ev event.GameEvent) {
	fields := []zap.Field{zap.Uint64("tick", ev.Tick)}

	switch p := ev.Payload.(type) {
	case *event.LaserFiredPayload:
		fields = append(fields, zap.Float64("x", p.Pos.X), zap.Float64("y", p.Pos.Y))
	case *event.ExplosionPayload:
		fields = append(fields, zap.Int("debris", p.Count), zap.Int("lifetime", p.Lifetime))
	case *event.ShipDestroyedPayload:
		fields = append(fields, zap.Float64("x", p.Pos.X), zap.Float64("y", p.Pos.Y))
		l.logger.Info(ev.Type.String(), fields...)
		return
	}
	l.logger.Debug(ev.Type.String(), fields...)
}

func (l *eventLogger) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventLaserFired,
		event.EventExplosion,
		event.EventShipDestroyed,
	}
}
