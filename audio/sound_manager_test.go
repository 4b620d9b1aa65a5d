package audio

import (
	"testing"

	"github.com/gopxl/beep"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/vi-asteroids/event"
)

// newCapturingManager bypasses the speaker and records queued streamers
func newCapturingManager() (*SoundManager, *[]beep.Streamer) {
	sm := NewSoundManager(nil, nil)
	var played []beep.Streamer
	sm.sink = func(s beep.Streamer) { played = append(played, s) }
	sm.initialized = true
	return sm, &played
}

func TestSoundManagerGracefulDegradation(t *testing.T) {
	sm := NewSoundManager(nil, nil)
	assert.NotPanics(t, func() {
		sm.Play(SoundLaser)
		sm.HandleEvent(event.GameEvent{Type: event.EventShipDestroyed})
		sm.Cleanup()
	})
}

func TestSoundManagerDisabledInitializeIsNoop(t *testing.T) {
	cfg := DefaultAudioConfig()
	cfg.Enabled = false
	sm := NewSoundManager(cfg, nil)

	require.NoError(t, sm.Initialize())
	assert.False(t, sm.initialized)
}

func TestSoundManagerHandlesGameEvents(t *testing.T) {
	sm, played := newCapturingManager()

	sm.HandleEvent(event.GameEvent{Type: event.EventLaserFired})
	sm.HandleEvent(event.GameEvent{Type: event.EventExplosion, Payload: &event.ExplosionPayload{Count: 5}})
	sm.HandleEvent(event.GameEvent{Type: event.EventExplosion, Payload: &event.ExplosionPayload{Count: 50}})
	sm.HandleEvent(event.GameEvent{Type: event.EventShipDestroyed})

	assert.Len(t, *played, 4)
}

func TestSoundManagerMute(t *testing.T) {
	sm, played := newCapturingManager()

	assert.True(t, sm.ToggleMute())
	assert.True(t, sm.Muted())
	sm.Play(SoundLaser)
	assert.Empty(t, *played)

	assert.False(t, sm.ToggleMute())
	sm.Play(SoundLaser)
	assert.Len(t, *played, 1)

	sm.SetMuted(true)
	sm.HandleEvent(event.GameEvent{Type: event.EventLaserFired})
	assert.Len(t, *played, 1)
}

func TestSoundManagerEventTypes(t *testing.T) {
	sm := NewSoundManager(nil, nil)
	r := event.NewRouter(event.NewEventQueue())
	r.Register(sm)

	assert.Equal(t, 1, r.HandlerCount(event.EventLaserFired))
	assert.Equal(t, 1, r.HandlerCount(event.EventExplosion))
	assert.Equal(t, 1, r.HandlerCount(event.EventShipDestroyed))
}

func TestSoundTypeString(t *testing.T) {
	assert.Equal(t, "laser", SoundLaser.String())
	assert.Equal(t, "ship_lost", SoundShipLost.String())
	assert.Equal(t, "unknown", SoundType(42).String())
}
