package render

import (
	"fmt"

	"github.com/lixenwraith/vi-asteroids/engine"
)

var _ engine.Renderer = (*Orchestrator)(nil)

// Orchestrator adapts a Surface to the scheduler's frame lifecycle
type Orchestrator struct {
	surface Surface
	hint    string
}

// NewOrchestrator creates a renderer drawing onto surface
func NewOrchestrator(surface Surface) *Orchestrator {
	return &Orchestrator{
		surface: surface,
		hint:    "arrows/hjkl move  space fire  ^S mute  q quit",
	}
}

func (o *Orchestrator) Clear() {
	o.surface.Clear()
}

// Render draws every live entity in collection order, then the status line
func (o *Orchestrator) Render(w *engine.World) {
	for _, e := range w.Entities() {
		DrawEntity(o.surface, e)
	}
	o.drawStatusBar(w)
}

func (o *Orchestrator) Show() {
	o.surface.Show()
}

// StatusLine formats the status bar text for the current world state
func StatusLine(w *engine.World, hint string) string {
	ship := "none"
	if s := w.Ship(); s != nil {
		if s.IsDead() {
			ship = "destroyed"
		} else {
			ship = fmt.Sprintf("%.1f", s.Speed())
		}
	}
	return fmt.Sprintf(" tick %d | entities %d | ship %s | %s", w.Tick(), w.Len(), ship, hint)
}

func (o *Orchestrator) drawStatusBar(w *engine.World) {
	_, rows := o.surface.Size()
	if rows <= 0 {
		return
	}

	if inker, ok := o.surface.(Inker); ok {
		if w.ShipDead() {
			inker.SetInk(InkAlert)
		} else {
			inker.SetInk(InkStatus)
		}
	}
	o.surface.DrawText(0, rows-1, StatusLine(w, o.hint))
}
