package entity

import (
	"github.com/lixenwraith/vi-asteroids/constants"
	"github.com/lixenwraith/vi-asteroids/core"
	"github.com/lixenwraith/vi-asteroids/input"
	"github.com/lixenwraith/vi-asteroids/physics"
	"github.com/lixenwraith/vi-asteroids/vmath"
)

// Debris is a short-lived explosion particle
type Debris struct {
	core.Kinetic

	Lifetime    int
	LifetimeMax int
}

// NewDebris flies radially out of the asteroid at a random speed, carrying the asteroid's velocity
func NewDebris(pos vmath.Vec2, asteroid *core.Kinetic, lifetimeMax int, rng *vmath.FastRand) *Debris {
	radial := pos.Sub(asteroid.Pos).Normalize(vmath.Up)
	speed := vmath.RandomRange(rng, constants.DebrisSpeedMin, constants.DebrisSpeedMax)

	return &Debris{
		Kinetic: core.Kinetic{
			Pos:    pos,
			Vel:    radial.Scale(speed).Add(asteroid.Vel),
			Radius: constants.DebrisRadius,
		},
		LifetimeMax: lifetimeMax,
	}
}

func (d *Debris) Kind() Kind                { return KindDebris }
func (d *Debris) Body() *core.Kinetic       { return &d.Kinetic }
func (d *Debris) IsDangerousToPlayer() bool { return false }
func (d *Debris) IsDead() bool              { return d.Lifetime > d.LifetimeMax }

func (d *Debris) Update(_ input.Snapshot, reg Registry) {
	physics.Integrate(&d.Kinetic)
	d.Lifetime++
	physics.WrapBounds(&d.Kinetic, reg.Bounds())
}
