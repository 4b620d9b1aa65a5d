package input

import "time"

// Event is a key transition delivered by the host
// Reset releases every key, used when the terminal loses focus
type Event struct {
	Key     Key
	Pressed bool
	Reset   bool
	At      time.Time
}

// Buffer accumulates key transitions between ticks
// Owned by the scheduler goroutine; not safe for concurrent use
type Buffer struct {
	held     [keyCount]bool
	lastSeen [keyCount]time.Time
	windows  [keyCount]time.Duration
}

// NewBuffer creates a buffer; holdWindow 0 keeps keys held until an explicit release
// Terminals report presses and autorepeat but no key-up, so a positive window
// lets a key expire once repeats stop
func NewBuffer(holdWindow time.Duration) *Buffer {
	b := &Buffer{}
	for k := range b.windows {
		b.windows[k] = holdWindow
	}
	return b
}

// SetHoldWindow overrides the hold window of a single key
// Fire uses a window longer than the terminal autorepeat delay so a held key stays one press
func (b *Buffer) SetHoldWindow(k Key, d time.Duration) {
	if k == KeyNone || k >= keyCount || d < 0 {
		return
	}
	b.windows[k] = d
}

// HoldWindow returns the hold window of k
func (b *Buffer) HoldWindow(k Key) time.Duration {
	if k == KeyNone || k >= keyCount {
		return 0
	}
	return b.windows[k]
}

// Apply records a key transition
func (b *Buffer) Apply(ev Event) {
	if ev.Reset {
		b.Reset()
		return
	}
	if ev.Pressed {
		b.Press(ev.Key, ev.At)
	} else {
		b.Release(ev.Key)
	}
}

// Press marks key held; repeated presses refresh the hold window
func (b *Buffer) Press(k Key, at time.Time) {
	if k == KeyNone || k >= keyCount {
		return
	}
	b.held[k] = true
	b.lastSeen[k] = at
}

// Release marks key not held
func (b *Buffer) Release(k Key) {
	if k == KeyNone || k >= keyCount {
		return
	}
	b.held[k] = false
}

// Reset releases every key
func (b *Buffer) Reset() {
	b.held = [keyCount]bool{}
}

// Snapshot returns the held state at now, expiring keys whose hold window has lapsed
func (b *Buffer) Snapshot(now time.Time) Snapshot {
	for k := KeyLeft; k < keyCount; k++ {
		if w := b.windows[k]; w > 0 && b.held[k] && now.Sub(b.lastSeen[k]) > w {
			b.held[k] = false
		}
	}
	return Snapshot{
		Left:  b.held[KeyLeft],
		Right: b.held[KeyRight],
		Up:    b.held[KeyUp],
		Down:  b.held[KeyDown],
		Fire:  b.held[KeyFire],
	}
}
