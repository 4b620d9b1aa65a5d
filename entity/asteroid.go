package entity

import (
	"github.com/lixenwraith/vi-asteroids/constants"
	"github.com/lixenwraith/vi-asteroids/core"
	"github.com/lixenwraith/vi-asteroids/input"
	"github.com/lixenwraith/vi-asteroids/physics"
	"github.com/lixenwraith/vi-asteroids/vmath"
)

// Asteroid is a permanent, passive obstacle
type Asteroid struct {
	core.Kinetic
}

// NewAsteroid creates an asteroid with independent random integer velocity components
func NewAsteroid(pos vmath.Vec2, radius float64, rng *vmath.FastRand) *Asteroid {
	v := constants.AsteroidMaxVelocity
	vel := vmath.Vec2{
		X: float64(vmath.RandomInt(rng, -v, v)),
		Y: float64(vmath.RandomInt(rng, -v, v)),
	}
	return NewAsteroidWithVelocity(pos, radius, vel)
}

// NewAsteroidWithVelocity creates an asteroid with a fixed velocity
func NewAsteroidWithVelocity(pos vmath.Vec2, radius float64, vel vmath.Vec2) *Asteroid {
	return &Asteroid{
		Kinetic: core.Kinetic{Pos: pos, Vel: vel, Radius: radius},
	}
}

func (a *Asteroid) Kind() Kind                { return KindAsteroid }
func (a *Asteroid) Body() *core.Kinetic       { return &a.Kinetic }
func (a *Asteroid) IsDangerousToPlayer() bool { return true }

// IsDead is always false; impacts only spawn debris
func (a *Asteroid) IsDead() bool { return false }

func (a *Asteroid) Update(_ input.Snapshot, reg Registry) {
	physics.Integrate(&a.Kinetic)
	physics.WrapBounds(&a.Kinetic, reg.Bounds())
}
