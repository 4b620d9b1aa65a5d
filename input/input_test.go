package input

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
)

func TestKeyFromCode(t *testing.T) {
	cases := map[int]Key{
		32: KeyFire,
		37: KeyLeft,
		38: KeyUp,
		39: KeyRight,
		40: KeyDown,
		65: KeyNone,
	}
	for code, want := range cases {
		assert.Equal(t, want, KeyFromCode(code), "code %d", code)
	}
}

func TestBufferExplicitRelease(t *testing.T) {
	b := NewBuffer(0)
	now := time.Unix(0, 0)

	b.Apply(Event{Key: KeyFire, Pressed: true, At: now})
	b.Apply(Event{Key: KeyLeft, Pressed: true, At: now})

	snap := b.Snapshot(now.Add(time.Hour))
	assert.True(t, snap.Fire, "zero hold window never expires")
	assert.True(t, snap.Left)
	assert.False(t, snap.Right)

	b.Apply(Event{Key: KeyFire, Pressed: false, At: now})
	snap = b.Snapshot(now)
	assert.False(t, snap.Fire)
	assert.True(t, snap.Held(KeyLeft))
}

func TestBufferHoldWindowExpiry(t *testing.T) {
	b := NewBuffer(100 * time.Millisecond)
	start := time.Unix(100, 0)

	b.Press(KeyUp, start)
	assert.True(t, b.Snapshot(start.Add(100*time.Millisecond)).Up)

	// Autorepeat refreshes the window
	b.Press(KeyUp, start.Add(90*time.Millisecond))
	assert.True(t, b.Snapshot(start.Add(180*time.Millisecond)).Up)

	assert.False(t, b.Snapshot(start.Add(191*time.Millisecond)).Up)
}

func TestBufferPerKeyHoldWindow(t *testing.T) {
	b := NewBuffer(100 * time.Millisecond)
	b.SetHoldWindow(KeyFire, 700*time.Millisecond)
	assert.Equal(t, 700*time.Millisecond, b.HoldWindow(KeyFire))
	assert.Equal(t, 100*time.Millisecond, b.HoldWindow(KeyLeft))

	start := time.Unix(100, 0)
	b.Press(KeyFire, start)
	b.Press(KeyLeft, start)

	// Autorepeat delay: no events for 500ms
	snap := b.Snapshot(start.Add(500 * time.Millisecond))
	assert.True(t, snap.Fire)
	assert.False(t, snap.Left)

	assert.False(t, b.Snapshot(start.Add(701*time.Millisecond)).Fire)

	b.SetHoldWindow(KeyNone, time.Second)
	b.SetHoldWindow(KeyUp, -time.Second)
	assert.Equal(t, 100*time.Millisecond, b.HoldWindow(KeyUp), "negative window ignored")
}

func TestBufferResetEvent(t *testing.T) {
	b := NewBuffer(0)
	now := time.Unix(0, 0)
	b.Apply(Event{Key: KeyLeft, Pressed: true, At: now})
	b.Apply(Event{Key: KeyFire, Pressed: true, At: now})

	b.Apply(Event{Reset: true})
	assert.Equal(t, Snapshot{}, b.Snapshot(now))
}

func TestSnapshotIsValue(t *testing.T) {
	b := NewBuffer(0)
	now := time.Unix(0, 0)
	b.Press(KeyDown, now)
	snap := b.Snapshot(now)

	b.Release(KeyDown)
	assert.True(t, snap.Down, "a taken snapshot must not change")
	assert.False(t, b.Snapshot(now).Down)
}

func TestBufferIgnoresUnboundKeys(t *testing.T) {
	b := NewBuffer(0)
	b.Press(KeyNone, time.Unix(0, 0))
	b.Press(Key(200), time.Unix(0, 0))
	assert.Equal(t, Snapshot{}, b.Snapshot(time.Unix(0, 0)))
}

func TestKeyTableLookup(t *testing.T) {
	kt := DefaultKeyTable()

	e := kt.Lookup(tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone))
	assert.Equal(t, KeyEntry{IntentControl, KeyFire}, e)

	e = kt.Lookup(tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone))
	assert.Equal(t, KeyEntry{IntentControl, KeyLeft}, e)

	e = kt.Lookup(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone))
	assert.Equal(t, IntentQuit, e.Intent)

	e = kt.Lookup(tcell.NewEventKey(tcell.KeyRune, 'z', tcell.ModNone))
	assert.Equal(t, IntentNone, e.Intent)
}

func TestKeyString(t *testing.T) {
	assert.Equal(t, "fire", KeyFire.String())
	assert.Equal(t, "unknown", Key(99).String())
}
