// Package entity defines the simulation's entity kinds and the capability
// contract the world drives each tick.
//
// Collision rules: only mortal entities (ship, projectile) test for contact,
// and only against entities that report IsDangerousToPlayer (asteroids).
// Asteroids are passive and permanent, so the outcome of a contact is decided
// entirely by the mortal party at the moment it updates.
package entity

import (
	"github.com/lixenwraith/vi-asteroids/core"
	"github.com/lixenwraith/vi-asteroids/event"
	"github.com/lixenwraith/vi-asteroids/input"
	"github.com/lixenwraith/vi-asteroids/vmath"
)

// Kind identifies the concrete entity type, used for render dispatch
type Kind uint8

const (
	KindShip Kind = iota
	KindProjectile
	KindAsteroid
	KindDebris
)

func (k Kind) String() string {
	switch k {
	case KindShip:
		return "ship"
	case KindProjectile:
		return "projectile"
	case KindAsteroid:
		return "asteroid"
	case KindDebris:
		return "debris"
	default:
		return "unknown"
	}
}

// Entity is the capability set every kind implements
type Entity interface {
	Kind() Kind

	// Body exposes position, velocity and radius
	Body() *core.Kinetic

	// Update consults input and the registry, mutates self and may spawn entities
	Update(in input.Snapshot, reg Registry)

	// IsDead reports whether the entity should leave the registry
	IsDead() bool

	// IsDangerousToPlayer marks entities that destroy ships and projectiles on contact
	IsDangerousToPlayer() bool
}

// Facer is implemented by entities with a facing angle distinct from their velocity
type Facer interface {
	Heading() float64
}

// Registry is the world surface an entity sees during its update
type Registry interface {
	// Entities returns the live collection, including entities spawned earlier this tick
	Entities() []Entity

	// Spawn appends an entity; it is updated later in the same tick
	Spawn(e Entity)

	Bounds() core.Bounds
	Rand() *vmath.FastRand

	// Emit queues a side-effect event for dispatch after the tick
	Emit(t event.EventType, payload any)
}
