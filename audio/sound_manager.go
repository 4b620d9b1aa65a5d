package audio

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"go.uber.org/zap"

	"github.com/lixenwraith/vi-asteroids/constants"
	"github.com/lixenwraith/vi-asteroids/event"
)

var _ event.Handler = (*SoundManager)(nil)

// SoundManager plays synthesized effects in response to game events
// Every method is safe to call whether or not the speaker came up
type SoundManager struct {
	mu          sync.Mutex
	cfg         *AudioConfig
	mixer       *beep.Mixer
	initialized bool
	muted       atomic.Bool
	logger      *zap.Logger

	// sink replaces the speaker path when set
	sink func(beep.Streamer)
}

// NewSoundManager creates a sound manager; cfg nil selects the defaults
func NewSoundManager(cfg *AudioConfig, logger *zap.Logger) *SoundManager {
	if cfg == nil {
		cfg = DefaultAudioConfig()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SoundManager{
		cfg:    cfg,
		mixer:  &beep.Mixer{},
		logger: logger,
	}
}

// Initialize sets up the speaker; a disabled config is a no-op
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized || !sm.cfg.Enabled {
		return nil
	}

	rate := beep.SampleRate(sm.cfg.SampleRate)
	if err := speaker.Init(rate, rate.N(constants.AudioBufferLength)); err != nil {
		return fmt.Errorf("speaker init: %w", err)
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	sm.logger.Info("audio initialized", zap.Int("sample_rate", sm.cfg.SampleRate))
	return nil
}

// Cleanup stops playback and releases the speaker
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	sm.initialized = false
}

// ToggleMute flips the mute state and returns the new value
func (sm *SoundManager) ToggleMute() bool {
	for {
		old := sm.muted.Load()
		if sm.muted.CompareAndSwap(old, !old) {
			return !old
		}
	}
}

func (sm *SoundManager) SetMuted(muted bool) { sm.muted.Store(muted) }
func (sm *SoundManager) Muted() bool         { return sm.muted.Load() }

// Play queues an effect into the mixer
func (sm *SoundManager) Play(soundType SoundType) {
	if sm.muted.Load() {
		return
	}

	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	streamer := GetSoundEffect(soundType, sm.cfg)
	if streamer == nil {
		return
	}

	if sm.sink != nil {
		sm.sink(streamer)
		return
	}
	speaker.Lock()
	sm.mixer.Add(streamer)
	speaker.Unlock()
}

// HandleEvent maps game events to effects
func (sm *SoundManager) HandleEvent(ev event.GameEvent) {
	switch ev.Type {
	case event.EventLaserFired:
		sm.Play(SoundLaser)
	case event.EventExplosion:
		if p, ok := ev.Payload.(*event.ExplosionPayload); ok && p.Count >= constants.ShipBurstCount {
			sm.Play(SoundExplosionLarge)
		} else {
			sm.Play(SoundExplosionSmall)
		}
	case event.EventShipDestroyed:
		sm.Play(SoundShipLost)
	}
}

func (sm *SoundManager) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventLaserFired,
		event.EventExplosion,
		event.EventShipDestroyed,
	}
}
