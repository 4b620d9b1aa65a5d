package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/lixenwraith/vi-asteroids/constants"
	"github.com/lixenwraith/vi-asteroids/vmath"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates raw audio waves
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
	rng      *vmath.FastRand
}

// NewOscillator creates a new oscillator for wave generation
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
		rng:      vmath.NewFastRand(uint64(time.Now().UnixNano())),
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = o.rng.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase = o.phase - math.Floor(o.phase) // Keep in [0, 1)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies attack/release shaping to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	sustainSamples int
	totalSamples   int
}

// NewEnvelope creates a linear attack/sustain/release envelope
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	sus := total - att - rel
	if sus < 0 {
		sus = 0
	}

	return &envelope{
		streamer:       s,
		attackSamples:  att,
		releaseSamples: rel,
		sustainSamples: sus,
		totalSamples:   total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attackSamples && e.attackSamples > 0 {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		releaseStart := e.attackSamples + e.sustainSamples
		if e.position >= releaseStart && e.releaseSamples > 0 {
			vol = float64(e.totalSamples-e.position) / float64(e.releaseSamples)
			if vol < 0 {
				vol = 0
			}
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// math.Log2(0) is -Inf, so 0 volume maps to silent; gain never exceeds unity
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	vol = vmath.Clamp(vol, 0, 1)
	if vol == 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// CreateLaserSound generates a short square blip
func CreateLaserSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	osc := NewOscillator(constants.LaserSoundFreq, constants.LaserSoundDuration, WaveSquare, rate)
	shaped := NewEnvelope(osc, constants.LaserSoundDuration, constants.LaserSoundAttack, constants.LaserSoundRelease, rate)

	return newVolume(shaped, cfg.EffectVolumes[SoundLaser]*cfg.MasterVolume)
}

// createExplosion mixes a noise burst with a low rumble decaying over duration
func createExplosion(cfg *AudioConfig, duration time.Duration, vol float64) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	release := duration - constants.ExplosionAttack

	noise := NewOscillator(0, duration, WaveNoise, rate)
	noiseShaped := NewEnvelope(noise, duration, constants.ExplosionAttack, release, rate)

	rumble := NewOscillator(constants.ExplosionRumbleFreq, duration, WaveSine, rate)
	rumbleShaped := NewEnvelope(rumble, duration, constants.ExplosionAttack, release, rate)

	mixed := beep.Mix(
		newVolume(noiseShaped, 0.6),
		newVolume(rumbleShaped, 0.4),
	)
	return newVolume(mixed, vol*cfg.MasterVolume)
}

// CreateExplosionSmallSound is the burst of a laser hit
func CreateExplosionSmallSound(cfg *AudioConfig) beep.Streamer {
	return createExplosion(cfg, constants.ExplosionSmallDuration, cfg.EffectVolumes[SoundExplosionSmall])
}

// CreateExplosionLargeSound is the burst of a ship collision
func CreateExplosionLargeSound(cfg *AudioConfig) beep.Streamer {
	return createExplosion(cfg, constants.ExplosionLargeDuration, cfg.EffectVolumes[SoundExplosionLarge])
}

// CreateShipLostSound generates a descending two-note saw
func CreateShipLostSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	n1 := NewOscillator(constants.ShipLostNote1Freq, constants.ShipLostNote1Duration, WaveSaw, rate)
	n1Shaped := NewEnvelope(n1, constants.ShipLostNote1Duration, constants.ShipLostAttack, 0, rate)

	n2 := NewOscillator(constants.ShipLostNote2Freq, constants.ShipLostNote2Duration, WaveSaw, rate)
	n2Shaped := NewEnvelope(n2, constants.ShipLostNote2Duration, 0, constants.ShipLostRelease, rate)

	sequence := beep.Seq(n1Shaped, n2Shaped)
	return newVolume(sequence, cfg.EffectVolumes[SoundShipLost]*cfg.MasterVolume)
}

// GetSoundEffect returns the streamer for the given type
func GetSoundEffect(soundType SoundType, cfg *AudioConfig) beep.Streamer {
	switch soundType {
	case SoundLaser:
		return CreateLaserSound(cfg)
	case SoundExplosionSmall:
		return CreateExplosionSmallSound(cfg)
	case SoundExplosionLarge:
		return CreateExplosionLargeSound(cfg)
	case SoundShipLost:
		return CreateShipLostSound(cfg)
	default:
		return nil
	}
}
