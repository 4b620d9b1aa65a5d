package engine

import (
	"github.com/lixenwraith/vi-asteroids/core"
	"github.com/lixenwraith/vi-asteroids/entity"
	"github.com/lixenwraith/vi-asteroids/event"
	"github.com/lixenwraith/vi-asteroids/input"
	"github.com/lixenwraith/vi-asteroids/vmath"
)

var _ entity.Registry = (*World)(nil)

// World owns the ordered live entity collection and the distinguished ship
// Mutated only by Advance on the scheduler goroutine
type World struct {
	entities []entity.Entity
	ship     *entity.Ship

	bounds core.Bounds
	rng    *vmath.FastRand
	queue  *event.EventQueue

	tick    uint64
	spawned int

	// deadIdx holds indices found dead during the current pass, ascending
	deadIdx []int
}

// AdvanceStats summarises one tick
type AdvanceStats struct {
	Updated int
	Removed int
	Spawned int
}

// NewWorld creates an empty world; queue receives events emitted by entities
func NewWorld(bounds core.Bounds, rng *vmath.FastRand, queue *event.EventQueue) *World {
	if rng == nil {
		rng = vmath.NewFastRand(1)
	}
	if queue == nil {
		queue = event.NewEventQueue()
	}
	return &World{
		bounds: bounds,
		rng:    rng,
		queue:  queue,
	}
}

// AddShip registers the ship as the distinguished player entity and appends it
func (w *World) AddShip(s *entity.Ship) {
	w.ship = s
	w.Spawn(s)
}

// Ship returns the player ship; the reference survives its removal from the collection
func (w *World) Ship() *entity.Ship {
	return w.ship
}

// ShipDead reports whether the session's ship has been destroyed
func (w *World) ShipDead() bool {
	return w.ship != nil && w.ship.IsDead()
}

// Entities returns the live collection
// During Advance the slice may grow as entities spawn; callers must not retain it
func (w *World) Entities() []entity.Entity {
	return w.entities
}

// Spawn appends an entity; during Advance it is updated later in the same tick
func (w *World) Spawn(e entity.Entity) {
	w.entities = append(w.entities, e)
	w.spawned++
}

func (w *World) Bounds() core.Bounds      { return w.bounds }
func (w *World) Rand() *vmath.FastRand    { return w.rng }
func (w *World) Queue() *event.EventQueue { return w.queue }
func (w *World) Len() int                 { return len(w.entities) }

// Tick returns the number of completed Advance calls
func (w *World) Tick() uint64 {
	return w.tick
}

// Emit queues an event stamped with the current tick
func (w *World) Emit(t event.EventType, payload any) {
	w.queue.Push(event.GameEvent{Type: t, Payload: payload, Tick: w.tick})
}

// Advance runs one simulation tick
//
// Pass 1 walks the collection by index, re-reading its length so entities
// spawned this tick are reached and updated in the same tick. An entity that
// is dead when reached is marked and skipped. Pass 2 compacts the collection
// stably, dropping only marked entities; one that died during its own update
// stays for this tick's render and is dropped on the next tick.
func (w *World) Advance(in input.Snapshot) AdvanceStats {
	w.deadIdx = w.deadIdx[:0]
	w.spawned = 0
	updated := 0

	for i := 0; i < len(w.entities); i++ {
		e := w.entities[i]
		if e.IsDead() {
			w.deadIdx = append(w.deadIdx, i)
			continue
		}
		e.Update(in, w)
		updated++
	}

	removed := w.compact()
	w.tick++

	return AdvanceStats{
		Updated: updated,
		Removed: removed,
		Spawned: w.spawned,
	}
}

// compact removes marked entities in a single stable pass
func (w *World) compact() int {
	if len(w.deadIdx) == 0 {
		return 0
	}

	old := w.entities
	kept := old[:0]
	d := 0
	for i, e := range old {
		if d < len(w.deadIdx) && w.deadIdx[d] == i {
			d++
			continue
		}
		kept = append(kept, e)
	}
	// Release references held in the tail
	for i := len(kept); i < len(old); i++ {
		old[i] = nil
	}
	w.entities = kept
	return len(w.deadIdx)
}
