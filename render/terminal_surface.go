package render

import (
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-asteroids/constants"
	"github.com/lixenwraith/vi-asteroids/core"
)

// HeadingMarkerOffset pushes a polygon's first vertex outward to show the heading
const HeadingMarkerOffset = 10.0

var _ Surface = (*TerminalSurface)(nil)

// TerminalSurface rasterises primitives onto a tcell screen
// The playfield is every row above the status bar; the world is stretched to fill it
type TerminalSurface struct {
	screen tcell.Screen
	world  core.Bounds
	style  tcell.Style
}

// NewTerminalSurface wraps an initialised screen
func NewTerminalSurface(screen tcell.Screen, world core.Bounds) *TerminalSurface {
	return &TerminalSurface{
		screen: screen,
		world:  world,
		style:  inkStyle(InkShip),
	}
}

func (t *TerminalSurface) SetInk(ink Ink) {
	t.style = inkStyle(ink)
}

func (t *TerminalSurface) Size() (cols, rows int) {
	return t.screen.Size()
}

func (t *TerminalSurface) Clear() {
	t.screen.Fill(' ', tcell.StyleDefault.Background(RgbBackground))
}

func (t *TerminalSurface) Show() {
	t.screen.Show()
}

// playfield returns the drawable cell area and world-to-cell scale factors
func (t *TerminalSurface) playfield() (cols, rows int, sx, sy float64) {
	cols, rows = t.screen.Size()
	rows -= constants.StatusBarHeight
	if cols <= 0 || rows <= 0 || t.world.Width <= 0 || t.world.Height <= 0 {
		return 0, 0, 0, 0
	}
	return cols, rows, float64(cols) / t.world.Width, float64(rows) / t.world.Height
}

// toCell maps a world point to its cell
func toCell(x, y, sx, sy float64) (int, int) {
	return int(math.Floor(x * sx)), int(math.Floor(y * sy))
}

func (t *TerminalSurface) plot(col, row, cols, rows int, glyph rune) {
	if col < 0 || row < 0 || col >= cols || row >= rows {
		return
	}
	t.screen.SetContent(col, row, glyph, nil, t.style)
}

// DrawPolygon outlines a regular polygon with Bresenham edges
func (t *TerminalSurface) DrawPolygon(sides int, x, y, radius, angle float64) {
	cols, rows, sx, sy := t.playfield()
	if sides < 3 || cols == 0 {
		return
	}

	type cell struct{ c, r int }
	verts := make([]cell, sides)
	step := 2 * math.Pi / float64(sides)
	for i := range verts {
		r := radius
		if i == 0 {
			r += HeadingMarkerOffset
		}
		theta := angle + float64(i)*step
		c, rw := toCell(x+r*math.Sin(theta), y-r*math.Cos(theta), sx, sy)
		verts[i] = cell{c, rw}
	}

	for i := range verts {
		a, b := verts[i], verts[(i+1)%sides]
		t.line(a.c, a.r, b.c, b.r, cols, rows)
	}
	t.plot(verts[0].c, verts[0].r, cols, rows, constants.GlyphVertex)
}

// line plots a Bresenham line between two cells inclusive
func (t *TerminalSurface) line(x0, y0, x1, y1, cols, rows int) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	stepX, stepY := 1, 1
	if x0 > x1 {
		stepX = -1
	}
	if y0 > y1 {
		stepY = -1
	}
	errAcc := dx + dy

	for {
		t.plot(x0, y0, cols, rows, constants.GlyphLine)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * errAcc
		if e2 >= dy {
			errAcc += dy
			x0 += stepX
		}
		if e2 <= dx {
			errAcc += dx
			y0 += stepY
		}
	}
}

// DrawCircle fills every cell whose centre lies inside the circle
// A circle smaller than a cell still occupies the cell holding its centre
func (t *TerminalSurface) DrawCircle(x, y, radius float64) {
	cols, rows, sx, sy := t.playfield()
	if cols == 0 {
		return
	}

	minC, minR := toCell(x-radius, y-radius, sx, sy)
	maxC, maxR := toCell(x+radius, y+radius, sx, sy)
	filled := false
	for r := minR; r <= maxR; r++ {
		for c := minC; c <= maxC; c++ {
			wx := (float64(c) + 0.5) / sx
			wy := (float64(r) + 0.5) / sy
			if math.Hypot(wx-x, wy-y) <= radius {
				t.plot(c, r, cols, rows, constants.GlyphFill)
				filled = true
			}
		}
	}
	if !filled {
		c, r := toCell(x, y, sx, sy)
		t.plot(c, r, cols, rows, constants.GlyphFill)
	}
}

// DrawArc outlines a circle by sampling its circumference densely enough to leave no cell gaps
func (t *TerminalSurface) DrawArc(x, y, radius float64) {
	cols, rows, sx, sy := t.playfield()
	if cols == 0 {
		return
	}

	circumference := 2 * math.Pi * radius * math.Max(sx, sy)
	samples := int(math.Ceil(circumference * 2))
	if samples < 8 {
		samples = 8
	}
	step := 2 * math.Pi / float64(samples)
	for i := 0; i < samples; i++ {
		theta := float64(i) * step
		c, r := toCell(x+radius*math.Sin(theta), y-radius*math.Cos(theta), sx, sy)
		t.plot(c, r, cols, rows, constants.GlyphArc)
	}
}

// DrawText writes text on the full screen, status rows included, clipped at the right edge
func (t *TerminalSurface) DrawText(col, row int, text string) {
	cols, rows := t.screen.Size()
	if row < 0 || row >= rows {
		return
	}
	for _, ch := range text {
		if col >= cols {
			return
		}
		if col >= 0 {
			t.screen.SetContent(col, row, ch, nil, t.style)
		}
		col++
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
