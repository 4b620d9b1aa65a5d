package constants

// Glyphs used by the terminal surface
const (
	GlyphLine   = '*'
	GlyphFill   = '█'
	GlyphArc    = '·'
	GlyphVertex = '^'
)

// StatusBarHeight is the number of terminal rows reserved below the playfield
const StatusBarHeight = 1
