package input

import "github.com/gdamore/tcell/v2"

// Intent discriminates host-level actions from game controls
type Intent uint8

const (
	IntentNone Intent = iota
	IntentControl
	IntentQuit
	IntentToggleMute
)

// KeyEntry describes what a terminal key does
type KeyEntry struct {
	Intent Intent
	Key    Key
}

// KeyTable maps terminal keys to controls and host intents
type KeyTable struct {
	// Special keys (Ctrl+*, arrows, Escape)
	SpecialKeys map[tcell.Key]KeyEntry

	// Rune bindings
	Runes map[rune]KeyEntry
}

// DefaultKeyTable returns the default key bindings
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SpecialKeys: map[tcell.Key]KeyEntry{
			tcell.KeyCtrlC:  {IntentQuit, KeyNone},
			tcell.KeyCtrlQ:  {IntentQuit, KeyNone},
			tcell.KeyEscape: {IntentQuit, KeyNone},
			tcell.KeyCtrlS:  {IntentToggleMute, KeyNone},
			tcell.KeyLeft:   {IntentControl, KeyLeft},
			tcell.KeyRight:  {IntentControl, KeyRight},
			tcell.KeyUp:     {IntentControl, KeyUp},
			tcell.KeyDown:   {IntentControl, KeyDown},
		},
		Runes: map[rune]KeyEntry{
			' ': {IntentControl, KeyFire},
			'h': {IntentControl, KeyLeft},
			'l': {IntentControl, KeyRight},
			'k': {IntentControl, KeyUp},
			'j': {IntentControl, KeyDown},
			'q': {IntentQuit, KeyNone},
		},
	}
}

// Lookup resolves a tcell key event
func (t *KeyTable) Lookup(ev *tcell.EventKey) KeyEntry {
	if ev.Key() == tcell.KeyRune {
		if e, ok := t.Runes[ev.Rune()]; ok {
			return e
		}
		return KeyEntry{}
	}
	if e, ok := t.SpecialKeys[ev.Key()]; ok {
		return e
	}
	return KeyEntry{}
}
