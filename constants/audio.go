package constants

import "time"

// Audio system
const (
	AudioSampleRate   = 48000
	AudioBufferLength = 100 * time.Millisecond
	AudioMasterVolume = 0.5
)

// Laser blip
const (
	LaserSoundFreq     = 1320.0
	LaserSoundDuration = 60 * time.Millisecond
	LaserSoundAttack   = 2 * time.Millisecond
	LaserSoundRelease  = 40 * time.Millisecond
)

// Explosion noise, small for laser hits and large for ship bursts
const (
	ExplosionSmallDuration = 250 * time.Millisecond
	ExplosionLargeDuration = 700 * time.Millisecond
	ExplosionAttack        = 5 * time.Millisecond
	ExplosionRumbleFreq    = 60.0
)

// Ship destroyed descending saw
const (
	ShipLostNote1Freq     = 90.0
	ShipLostNote2Freq     = 55.0
	ShipLostNote1Duration = 400 * time.Millisecond
	ShipLostNote2Duration = 600 * time.Millisecond
	ShipLostAttack        = 10 * time.Millisecond
	ShipLostRelease       = 300 * time.Millisecond
)
