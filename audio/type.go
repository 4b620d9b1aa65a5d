package audio

import "github.com/lixenwraith/vi-asteroids/constants"

// SoundType identifies a synthesized effect
type SoundType int

const (
	SoundLaser SoundType = iota
	SoundExplosionSmall
	SoundExplosionLarge
	SoundShipLost
	soundTypeCount
)

func (s SoundType) String() string {
	switch s {
	case SoundLaser:
		return "laser"
	case SoundExplosionSmall:
		return "explosion_small"
	case SoundExplosionLarge:
		return "explosion_large"
	case SoundShipLost:
		return "ship_lost"
	default:
		return "unknown"
	}
}

// AudioConfig holds mixing parameters
type AudioConfig struct {
	Enabled       bool
	MasterVolume  float64
	SampleRate    int
	EffectVolumes [soundTypeCount]float64
}

// DefaultAudioConfig returns the built-in mix
func DefaultAudioConfig() *AudioConfig {
	return &AudioConfig{
		Enabled:      true,
		MasterVolume: constants.AudioMasterVolume,
		SampleRate:   constants.AudioSampleRate,
		EffectVolumes: [soundTypeCount]float64{
			SoundLaser:          0.4,
			SoundExplosionSmall: 0.6,
			SoundExplosionLarge: 0.9,
			SoundShipLost:       0.7,
		},
	}
}
