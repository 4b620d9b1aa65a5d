package entity

import (
	"github.com/lixenwraith/vi-asteroids/constants"
	"github.com/lixenwraith/vi-asteroids/core"
	"github.com/lixenwraith/vi-asteroids/event"
	"github.com/lixenwraith/vi-asteroids/physics"
)

// dangerousContacts returns every dangerous entity overlapping body
// The registry slice is read once; entities spawned by the caller afterwards are not considered
func dangerousContacts(body *core.Kinetic, reg Registry) []Entity {
	var hits []Entity
	for _, other := range reg.Entities() {
		if !other.IsDangerousToPlayer() || other.Body() == body {
			continue
		}
		if physics.CirclesOverlap(body, other.Body()) {
			hits = append(hits, other)
		}
	}
	return hits
}

// burstSize returns debris count and lifetime for a collider
func burstSize(laser bool) (count, lifetime int) {
	if laser {
		return constants.LaserBurstCount, constants.LaserBurstLifetime
	}
	return constants.ShipBurstCount, constants.ShipBurstLifetime
}

// explodeAgainst spawns a debris burst from the asteroid surface facing the collider
func explodeAgainst(collider *core.Kinetic, asteroid Entity, laser bool, reg Registry) {
	target := asteroid.Body()
	count, lifetime := burstSize(laser)

	contact := physics.ContactPoint(target, collider)
	for _, p := range physics.BurstPoints(target, contact, count) {
		reg.Spawn(NewDebris(p, target, lifetime, reg.Rand()))
	}

	reg.Emit(event.EventExplosion, &event.ExplosionPayload{
		Contact:  contact,
		Count:    count,
		Lifetime: lifetime,
	})
}
