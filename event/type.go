package event

import "github.com/lixenwraith/vi-asteroids/vmath"

// EventType represents the type of game event
type EventType int

const (
	// EventLaserFired is emitted on the fire edge when a projectile spawns
	// Payload: *LaserFiredPayload
	EventLaserFired EventType = iota

	// EventExplosion is emitted once per debris burst
	// Payload: *ExplosionPayload
	EventExplosion

	// EventShipDestroyed is emitted on the tick the ship is marked dead
	// Payload: *ShipDestroyedPayload
	EventShipDestroyed

	eventTypeCount
)

var eventNames = [eventTypeCount]string{
	EventLaserFired:    "laser_fired",
	EventExplosion:     "explosion",
	EventShipDestroyed: "ship_destroyed",
}

func (t EventType) String() string {
	if t < 0 || t >= eventTypeCount {
		return "unknown"
	}
	return eventNames[t]
}

// GameEvent is a typed payload stamped with the tick that produced it
type GameEvent struct {
	Type    EventType
	Payload any
	Tick    uint64
}

type LaserFiredPayload struct {
	Pos vmath.Vec2
	Vel vmath.Vec2
}

type ExplosionPayload struct {
	Contact  vmath.Vec2
	Count    int
	Lifetime int
}

type ShipDestroyedPayload struct {
	Pos vmath.Vec2
}
