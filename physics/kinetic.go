package physics

import (
	"github.com/lixenwraith/vi-asteroids/core"
	"github.com/lixenwraith/vi-asteroids/vmath"
)

// Integrate advances position by one tick of velocity
func Integrate(k *core.Kinetic) {
	k.Pos = k.Pos.Add(k.Vel)
}

// WrapBoundsX teleports across the horizontal edges, returns true if a wrap occurred
// The valid band is [-radius, width+radius]
func WrapBoundsX(k *core.Kinetic, width float64) bool {
	r := k.Radius
	if k.Pos.X > width+r {
		k.Pos.X = -r
		return true
	}
	if k.Pos.X < -r {
		k.Pos.X = width + r
		return true
	}
	return false
}

// WrapBoundsY teleports across the vertical edges, returns true if a wrap occurred
func WrapBoundsY(k *core.Kinetic, height float64) bool {
	r := k.Radius
	if k.Pos.Y > height+r {
		k.Pos.Y = -r
		return true
	}
	if k.Pos.Y < -r {
		k.Pos.Y = height + r
		return true
	}
	return false
}

// WrapBounds applies toroidal wrap on both axes independently
func WrapBounds(k *core.Kinetic, b core.Bounds) bool {
	wx := WrapBoundsX(k, b.Width)
	wy := WrapBoundsY(k, b.Height)
	return wx || wy
}

// ScaleVelocity multiplies velocity by factor, direction unchanged
func ScaleVelocity(k *core.Kinetic, factor float64) {
	k.Vel = k.Vel.Scale(factor)
}

// Steer re-aims velocity along the facing angle, preserving speed
func Steer(k *core.Kinetic, angle float64) {
	k.Vel = vmath.Heading(angle).Scale(k.Speed())
}
