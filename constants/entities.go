package constants

import "math"

// Ship
const (
	ShipRadius = 20.0

	// ShipTurnStep is the rotation per tick while left or right is held
	ShipTurnStep = math.Pi / 20

	// ShipInitialSpeed is the session start speed, heading ShipInitialAngle
	ShipInitialSpeed = 1.0
	ShipInitialAngle = math.Pi / 2

	// ShipJoltThreshold separates the cold-start jolt from gentle thrust
	// Speeds strictly below it take ShipJoltFactor
	ShipJoltThreshold = 3.0
	ShipJoltFactor    = 2.0
	ShipThrustFactor  = 1.08
	ShipDragFactor    = 0.9
)

// Projectile
const (
	ProjectileRadius = 5.0

	// ProjectileLaunchSpeed is added to the source speed at launch
	ProjectileLaunchSpeed = 40.0

	// ProjectileTTL is the last tick count a projectile survives
	ProjectileTTL = 40
)

// Asteroid
const (
	// AsteroidMaxVelocity bounds each integer velocity component to [-v, v]
	AsteroidMaxVelocity = 10
)

// Debris
const (
	DebrisRadius = 3.0

	// DebrisSpeedMin and DebrisSpeedMax bound the radial speed, max exclusive
	DebrisSpeedMin = 1.0
	DebrisSpeedMax = 11.0
)

// Explosion bursts
const (
	// ShipBurstCount and ShipBurstLifetime apply when the ship itself hits an asteroid
	ShipBurstCount    = 50
	ShipBurstLifetime = 100

	// LaserBurstCount and LaserBurstLifetime apply to projectile impacts
	LaserBurstCount    = 5
	LaserBurstLifetime = 20
)
