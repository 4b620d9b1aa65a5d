package physics

import (
	"math"

	"github.com/lixenwraith/vi-asteroids/core"
	"github.com/lixenwraith/vi-asteroids/vmath"
)

// BurstArc is the angular sector debris is spawned across
const BurstArc = math.Pi / 2

// CirclesOverlap reports whether two bodies touch: dist < ra + rb
func CirclesOverlap(a, b *core.Kinetic) bool {
	return a.Pos.Distance(b.Pos) < a.Radius+b.Radius
}

// ContactPoint returns the point on target's surface facing impactor
// Coincident centres fall back to the top of the target
func ContactPoint(target, impactor *core.Kinetic) vmath.Vec2 {
	dir := impactor.Pos.Sub(target.Pos).Normalize(vmath.Up)
	return target.Pos.Add(dir.Scale(target.Radius))
}

// BurstPoints returns n points on target's surface spread evenly over BurstArc,
// centred on the angular position of contact
// The first point sits at contactAngle - BurstArc/2; steps are BurstArc/n
func BurstPoints(target *core.Kinetic, contact vmath.Vec2, n int) []vmath.Vec2 {
	if n <= 0 {
		return nil
	}
	start := contact.Sub(target.Pos).Angle() - BurstArc/2
	step := BurstArc / float64(n)

	points := make([]vmath.Vec2, n)
	for i := range points {
		points[i] = vmath.FromPolar(target.Pos, target.Radius, start+float64(i)*step)
	}
	return points
}
