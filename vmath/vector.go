package vmath

import "math"

// Vec2 is a 2D vector in world-plane units
type Vec2 struct {
	X, Y float64
}

// Up is the facing direction for angle 0; y grows downward on screen
var Up = Vec2{X: 0, Y: -1}

func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

func (v Vec2) Scale(f float64) Vec2 {
	return Vec2{X: v.X * f, Y: v.Y * f}
}

// Magnitude returns the Euclidean length
func (v Vec2) Magnitude() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

// Distance returns the Euclidean distance between two points
func (v Vec2) Distance(o Vec2) float64 {
	return v.Sub(o).Magnitude()
}

// Normalize returns the unit vector, or fallback when the magnitude is below Epsilon
// fallback is returned unchanged and should itself be a unit vector
func (v Vec2) Normalize(fallback Vec2) Vec2 {
	mag := v.Magnitude()
	if mag < Epsilon || !IsFinite(mag) {
		return fallback
	}
	return Vec2{X: v.X / mag, Y: v.Y / mag}
}

// Angle returns atan2(y, x)
func (v Vec2) Angle() float64 {
	return math.Atan2(v.Y, v.X)
}

// Heading returns the unit vector for a facing angle where 0 points up
// and positive angles turn clockwise on screen
func Heading(angle float64) Vec2 {
	return Vec2{X: math.Sin(angle), Y: -math.Cos(angle)}
}

// FromPolar returns center + r*(cos theta, sin theta)
func FromPolar(center Vec2, r, theta float64) Vec2 {
	return Vec2{X: center.X + r*math.Cos(theta), Y: center.Y + r*math.Sin(theta)}
}
