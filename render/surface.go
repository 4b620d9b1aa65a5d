// Package render draws the world onto a Surface once per tick.
//
// Coordinates passed to a Surface are world coordinates; the terminal
// implementation scales them into cells. Polygon angles use the heading
// convention: 0 points up, increasing clockwise.
package render

// Surface is the drawing collaborator of the game loop
type Surface interface {
	// Clear blanks the surface before a frame
	Clear()

	// DrawPolygon outlines a regular polygon; the first vertex marks the heading
	DrawPolygon(sides int, x, y, radius, angle float64)

	// DrawCircle draws a filled circle
	DrawCircle(x, y, radius float64)

	// DrawArc outlines a full circle
	DrawArc(x, y, radius float64)

	// DrawText writes text at a cell position, outside world scaling
	DrawText(col, row int, text string)

	// Show presents the frame
	Show()

	// Size returns the surface size in cells
	Size() (cols, rows int)
}

// Inker is implemented by surfaces that color primitives by entity kind
type Inker interface {
	SetInk(ink Ink)
}

// Ink selects the foreground used by subsequent primitives
type Ink uint8

const (
	InkShip Ink = iota
	InkProjectile
	InkAsteroid
	InkDebris
	InkStatus
	InkAlert
)
