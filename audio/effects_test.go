package audio

import (
	"testing"
	"time"

	"github.com/gopxl/beep"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func drain(t *testing.T, s beep.Streamer) (total int, peak float64) {
	t.Helper()
	buf := make([][2]float64, 512)
	for i := 0; i < 10000; i++ {
		n, ok := s.Stream(buf)
		for j := 0; j < n; j++ {
			if v := buf[j][0]; v > peak {
				peak = v
			} else if -v > peak {
				peak = -v
			}
		}
		total += n
		if !ok {
			return total, peak
		}
	}
	t.Fatal("streamer never finished")
	return 0, 0
}

func TestOscillatorWaveRanges(t *testing.T) {
	rate := beep.SampleRate(44100)
	for _, wave := range []WaveType{WaveSine, WaveSquare, WaveSaw, WaveNoise} {
		osc := NewOscillator(440, 50*time.Millisecond, wave, rate)
		samples := make([][2]float64, 100)
		n, ok := osc.Stream(samples)

		require.True(t, ok)
		require.Equal(t, 100, n)
		for i := 0; i < n; i++ {
			assert.GreaterOrEqual(t, samples[i][0], -1.0)
			assert.LessOrEqual(t, samples[i][0], 1.0)
			assert.Equal(t, samples[i][0], samples[i][1], "mono on both channels")
		}
		assert.NoError(t, osc.Err())
	}
}

func TestOscillatorSquareIsBinary(t *testing.T) {
	osc := NewOscillator(220, 50*time.Millisecond, WaveSquare, beep.SampleRate(44100))
	samples := make([][2]float64, 200)
	n, _ := osc.Stream(samples)
	for i := 0; i < n; i++ {
		v := samples[i][0]
		assert.True(t, v == 1.0 || v == -1.0, "sample %d = %f", i, v)
	}
}

func TestOscillatorStopsAtDuration(t *testing.T) {
	rate := beep.SampleRate(1000)
	osc := NewOscillator(100, 100*time.Millisecond, WaveSine, rate)

	total, _ := drain(t, osc)
	assert.Equal(t, 100, total)

	n, ok := osc.Stream(make([][2]float64, 10))
	assert.Zero(t, n)
	assert.False(t, ok)
}

func TestEnvelopeShapesAttack(t *testing.T) {
	rate := beep.SampleRate(1000)
	osc := NewOscillator(0, 100*time.Millisecond, WaveSquare, rate)
	env := NewEnvelope(osc, 100*time.Millisecond, 10*time.Millisecond, 10*time.Millisecond, rate)

	samples := make([][2]float64, 100)
	n, ok := env.Stream(samples)
	require.True(t, ok)
	require.Equal(t, 100, n)

	assert.Equal(t, 0.0, samples[0][0], "attack starts silent")
	assert.InDelta(t, 0.5, samples[5][0], 1e-9)
	assert.Equal(t, 1.0, samples[50][0], "sustain at full level")
	assert.Less(t, samples[99][0], 0.2, "release fades out")
}

func TestNewVolumeZeroIsSilent(t *testing.T) {
	rate := beep.SampleRate(1000)
	s := newVolume(NewOscillator(0, 10*time.Millisecond, WaveSquare, rate), 0)
	samples := make([][2]float64, 10)
	n, _ := s.Stream(samples)
	for i := 0; i < n; i++ {
		assert.Zero(t, samples[i][0])
	}
}

func TestNewVolumeCapsGain(t *testing.T) {
	rate := beep.SampleRate(1000)
	_, peak := drain(t, newVolume(NewOscillator(100, 50*time.Millisecond, WaveSquare, rate), 4))
	assert.InDelta(t, 1.0, peak, 1e-9, "volume above one plays at unity")
}

func TestSoundEffectsFinish(t *testing.T) {
	cfg := DefaultAudioConfig()
	cfg.SampleRate = 8000
	rate := beep.SampleRate(cfg.SampleRate)

	cases := map[SoundType]time.Duration{
		SoundLaser:          60 * time.Millisecond,
		SoundExplosionSmall: 250 * time.Millisecond,
		SoundExplosionLarge: 700 * time.Millisecond,
		SoundShipLost:       time.Second,
	}
	for st, dur := range cases {
		s := GetSoundEffect(st, cfg)
		require.NotNil(t, s, st.String())

		total, peak := drain(t, s)
		// Mixed streams may round up to the mixing chunk
		assert.GreaterOrEqual(t, total, rate.N(dur), st.String())
		assert.LessOrEqual(t, total, rate.N(dur)+512, st.String())
		assert.Greater(t, peak, 0.0, st.String())
		assert.LessOrEqual(t, peak, 1.0, st.String())
	}

	assert.Nil(t, GetSoundEffect(SoundType(99), cfg))
}
