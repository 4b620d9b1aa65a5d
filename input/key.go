package input

// Key is one of the polled game controls
type Key uint8

const (
	KeyNone Key = iota
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeyFire
	keyCount
)

var keyNames = [keyCount]string{
	KeyNone:  "none",
	KeyLeft:  "left",
	KeyRight: "right",
	KeyUp:    "up",
	KeyDown:  "down",
	KeyFire:  "fire",
}

func (k Key) String() string {
	if k >= keyCount {
		return "unknown"
	}
	return keyNames[k]
}

// Platform key codes as reported by browser-style key events
const (
	CodeSpace = 32
	CodeLeft  = 37
	CodeUp    = 38
	CodeRight = 39
	CodeDown  = 40
)

// KeyFromCode maps a platform key code to a control, KeyNone if unbound
func KeyFromCode(code int) Key {
	switch code {
	case CodeSpace:
		return KeyFire
	case CodeLeft:
		return KeyLeft
	case CodeUp:
		return KeyUp
	case CodeRight:
		return KeyRight
	case CodeDown:
		return KeyDown
	default:
		return KeyNone
	}
}

// Snapshot is the immutable held-state of every control at one instant
type Snapshot struct {
	Left, Right, Up, Down, Fire bool
}

// Held reports the state of a single control
func (s Snapshot) Held(k Key) bool {
	switch k {
	case KeyLeft:
		return s.Left
	case KeyRight:
		return s.Right
	case KeyUp:
		return s.Up
	case KeyDown:
		return s.Down
	case KeyFire:
		return s.Fire
	default:
		return false
	}
}
