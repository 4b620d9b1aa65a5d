package core

import "github.com/lixenwraith/vi-asteroids/vmath"

// Kinetic is the physical state shared by every entity kind
type Kinetic struct {
	// Pos is the centre in world-plane units
	Pos vmath.Vec2
	// Vel is displacement per tick
	Vel vmath.Vec2
	// Radius is the collision extent, fixed after construction
	Radius float64
}

// Speed returns the velocity magnitude
func (k *Kinetic) Speed() float64 {
	return k.Vel.Magnitude()
}
