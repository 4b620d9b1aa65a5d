package entity

import (
	"github.com/lixenwraith/vi-asteroids/constants"
	"github.com/lixenwraith/vi-asteroids/core"
	"github.com/lixenwraith/vi-asteroids/input"
	"github.com/lixenwraith/vi-asteroids/physics"
	"github.com/lixenwraith/vi-asteroids/vmath"
)

// Projectile is a laser bolt with a fixed time-to-live
type Projectile struct {
	core.Kinetic

	// Lifetime counts updates since launch
	Lifetime int

	dead bool
}

// NewProjectile launches from source's position along its velocity at source speed + launch speed
// A source at rest launches along its facing when it has one, otherwise up
func NewProjectile(source Entity) *Projectile {
	b := source.Body()

	fallback := vmath.Up
	if f, ok := source.(Facer); ok {
		fallback = vmath.Heading(f.Heading())
	}
	dir := b.Vel.Normalize(fallback)

	return &Projectile{
		Kinetic: core.Kinetic{
			Pos:    b.Pos,
			Vel:    dir.Scale(b.Speed() + constants.ProjectileLaunchSpeed),
			Radius: constants.ProjectileRadius,
		},
	}
}

func (p *Projectile) Kind() Kind                { return KindProjectile }
func (p *Projectile) Body() *core.Kinetic       { return &p.Kinetic }
func (p *Projectile) IsDangerousToPlayer() bool { return false }

// IsDead is true once flagged by a hit or when Lifetime exceeds the TTL
func (p *Projectile) IsDead() bool {
	return p.dead || p.Lifetime > constants.ProjectileTTL
}

// Update moves, ages, wraps, then tests for contact
func (p *Projectile) Update(_ input.Snapshot, reg Registry) {
	physics.Integrate(&p.Kinetic)
	p.Lifetime++
	physics.WrapBounds(&p.Kinetic, reg.Bounds())

	for _, asteroid := range dangerousContacts(&p.Kinetic, reg) {
		p.dead = true
		explodeAgainst(&p.Kinetic, asteroid, true, reg)
	}
}
