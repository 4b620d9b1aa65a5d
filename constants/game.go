package constants

import "time"

// Game Loop Timing Constants
const (
	// GameUpdateInterval is the default simulation tick
	GameUpdateInterval = 30 * time.Millisecond

	// MinUpdateInterval and MaxUpdateInterval bound the configurable tick
	MinUpdateInterval = 30 * time.Millisecond
	MaxUpdateInterval = 50 * time.Millisecond

	// InputHoldWindow is how long a key counts as held after its last press or autorepeat
	InputHoldWindow = 150 * time.Millisecond

	// FireHoldWindow outlasts common terminal autorepeat delays (250-660ms)
	// so holding fire reads as one press
	FireHoldWindow = 700 * time.Millisecond
)

// Viewport defaults in world-plane units
const (
	DefaultWidth  = 640
	DefaultHeight = 480
)
