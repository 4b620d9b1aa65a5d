package entity

import (
	"github.com/lixenwraith/vi-asteroids/constants"
	"github.com/lixenwraith/vi-asteroids/core"
	"github.com/lixenwraith/vi-asteroids/event"
	"github.com/lixenwraith/vi-asteroids/input"
	"github.com/lixenwraith/vi-asteroids/physics"
	"github.com/lixenwraith/vi-asteroids/vmath"
)

// Ship is the player-controlled entity
type Ship struct {
	core.Kinetic

	// Angle is the facing in radians, 0 = up, clockwise positive
	Angle float64

	// LaserReady latches the fire button; cleared on fire, set on release
	LaserReady bool

	dead bool
}

// NewShip creates the ship heading right at the initial speed
func NewShip(pos vmath.Vec2) *Ship {
	return &Ship{
		Kinetic: core.Kinetic{
			Pos:    pos,
			Vel:    vmath.Heading(constants.ShipInitialAngle).Scale(constants.ShipInitialSpeed),
			Radius: constants.ShipRadius,
		},
		Angle:      constants.ShipInitialAngle,
		LaserReady: true,
	}
}

func (s *Ship) Kind() Kind                { return KindShip }
func (s *Ship) Body() *core.Kinetic       { return &s.Kinetic }
func (s *Ship) IsDead() bool              { return s.dead }
func (s *Ship) IsDangerousToPlayer() bool { return false }
func (s *Ship) Heading() float64          { return s.Angle }

// Update runs collision, controls, fire, integration and wrap in that order
func (s *Ship) Update(in input.Snapshot, reg Registry) {
	s.checkCollisions(reg)
	s.applyControls(in)
	s.handleFire(in, reg)
	physics.Integrate(&s.Kinetic)
	physics.WrapBounds(&s.Kinetic, reg.Bounds())
}

func (s *Ship) checkCollisions(reg Registry) {
	hits := dangerousContacts(&s.Kinetic, reg)
	if len(hits) == 0 {
		return
	}
	if !s.dead {
		reg.Emit(event.EventShipDestroyed, &event.ShipDestroyedPayload{Pos: s.Pos})
	}
	s.dead = true
	for _, asteroid := range hits {
		explodeAgainst(&s.Kinetic, asteroid, false, reg)
	}
}

func (s *Ship) applyControls(in input.Snapshot) {
	if in.Left {
		s.TurnLeft()
	}
	if in.Right {
		s.TurnRight()
	}
	if in.Up {
		s.SpeedUp()
	}
	if in.Down {
		s.SlowDown()
	}
}

func (s *Ship) TurnLeft() {
	s.Angle -= constants.ShipTurnStep
	physics.Steer(&s.Kinetic, s.Angle)
}

func (s *Ship) TurnRight() {
	s.Angle += constants.ShipTurnStep
	physics.Steer(&s.Kinetic, s.Angle)
}

// BoostFactor returns the thrust multiplier for a speed
// Below ShipJoltThreshold the ship gets a cold-start jolt; at or above it, gentle thrust
func BoostFactor(speed float64) float64 {
	if speed < constants.ShipJoltThreshold {
		return constants.ShipJoltFactor
	}
	return constants.ShipThrustFactor
}

// SpeedUp applies thrust; a ship at rest restarts along its heading
func (s *Ship) SpeedUp() {
	speed := s.Speed()
	if speed < vmath.Epsilon {
		s.Vel = vmath.Heading(s.Angle).Scale(constants.ShipInitialSpeed)
		return
	}
	physics.ScaleVelocity(&s.Kinetic, BoostFactor(speed))
}

func (s *Ship) SlowDown() {
	physics.ScaleVelocity(&s.Kinetic, constants.ShipDragFactor)
}

// handleFire spawns a projectile on the fire edge only
func (s *Ship) handleFire(in input.Snapshot, reg Registry) {
	if in.Fire && s.LaserReady {
		s.LaserReady = false
		p := NewProjectile(s)
		reg.Spawn(p)
		reg.Emit(event.EventLaserFired, &event.LaserFiredPayload{Pos: p.Pos, Vel: p.Vel})
	} else if !in.Fire {
		s.LaserReady = true
	}
}
