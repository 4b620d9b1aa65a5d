package engine

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/vi-asteroids/core"
	"github.com/lixenwraith/vi-asteroids/entity"
	"github.com/lixenwraith/vi-asteroids/event"
	"github.com/lixenwraith/vi-asteroids/input"
	"github.com/lixenwraith/vi-asteroids/vmath"
)

// tracker is a scriptable entity for exercising the registry lifecycle
type tracker struct {
	core.Kinetic
	name         string
	dead         bool
	dieOnUpdate  bool
	spawnOnFirst *tracker
	updates      int
	lastInput    input.Snapshot
}

func (p *tracker) Kind() entity.Kind         { return entity.KindDebris }
func (p *tracker) Body() *core.Kinetic       { return &p.Kinetic }
func (p *tracker) IsDead() bool              { return p.dead }
func (p *tracker) IsDangerousToPlayer() bool { return false }

func (p *tracker) Update(in input.Snapshot, reg entity.Registry) {
	p.updates++
	p.lastInput = in
	if p.spawnOnFirst != nil && p.updates == 1 {
		reg.Spawn(p.spawnOnFirst)
	}
	if p.dieOnUpdate {
		p.dead = true
	}
}

func newTestWorld() *World {
	return NewWorld(core.Bounds{Width: 640, Height: 480}, vmath.NewFastRand(42), event.NewEventQueue())
}

func names(w *World) []string {
	var out []string
	for _, e := range w.Entities() {
		out = append(out, e.(*tracker).name)
	}
	return out
}

func countKind(w *World, k entity.Kind) int {
	n := 0
	for _, e := range w.Entities() {
		if e.Kind() == k {
			n++
		}
	}
	return n
}

func firstOfKind(w *World, k entity.Kind) entity.Entity {
	for _, e := range w.Entities() {
		if e.Kind() == k {
			return e
		}
	}
	return nil
}

func TestAdvanceRemovesConsecutiveDeadWithoutSkipping(t *testing.T) {
	w := newTestWorld()
	a := &tracker{name: "a"}
	b := &tracker{name: "b", dead: true}
	c := &tracker{name: "c", dead: true}
	d := &tracker{name: "d"}
	for _, p := range []*tracker{a, b, c, d} {
		w.Spawn(p)
	}

	stats := w.Advance(input.Snapshot{})

	assert.Equal(t, []string{"a", "d"}, names(w))
	assert.Equal(t, 2, stats.Updated)
	assert.Equal(t, 2, stats.Removed)
	assert.Equal(t, 1, a.updates)
	assert.Equal(t, 0, b.updates)
	assert.Equal(t, 0, c.updates)
	assert.Equal(t, 1, d.updates)
	assert.Equal(t, uint64(1), w.Tick())
}

func TestAdvanceUpdatesEntitiesSpawnedThisTick(t *testing.T) {
	w := newTestWorld()
	child := &tracker{name: "child"}
	w.Spawn(&tracker{name: "parent", spawnOnFirst: child})

	stats := w.Advance(input.Snapshot{})

	assert.Equal(t, []string{"parent", "child"}, names(w))
	assert.Equal(t, 1, child.updates)
	assert.Equal(t, 1, stats.Spawned)
}

func TestEntityDyingDuringUpdateRemovedNextTick(t *testing.T) {
	w := newTestWorld()
	doomed := &tracker{name: "doomed", dieOnUpdate: true}
	w.Spawn(&tracker{name: "before"})
	w.Spawn(doomed)
	w.Spawn(&tracker{name: "after"})

	w.Advance(input.Snapshot{})
	assert.Equal(t, []string{"before", "doomed", "after"}, names(w), "stays for this tick's render")
	assert.True(t, doomed.IsDead())

	w.Advance(input.Snapshot{})
	assert.Equal(t, []string{"before", "after"}, names(w))
	assert.Equal(t, 1, doomed.updates)
}

func TestAdvancePassesSameSnapshotToAll(t *testing.T) {
	w := newTestWorld()
	a := &tracker{name: "a"}
	b := &tracker{name: "b"}
	w.Spawn(a)
	w.Spawn(b)

	in := input.Snapshot{Left: true, Fire: true}
	w.Advance(in)

	assert.Equal(t, in, a.lastInput)
	assert.Equal(t, in, b.lastInput)
}

func TestShipReferenceSurvivesRemoval(t *testing.T) {
	w := newTestWorld()
	ship := entity.NewShip(vmath.Vec2{X: 100, Y: 100})
	w.AddShip(ship)
	w.Spawn(entity.NewAsteroidWithVelocity(vmath.Vec2{X: 110, Y: 100}, 30, vmath.Vec2{}))

	w.Advance(input.Snapshot{})
	require.True(t, ship.IsDead())
	assert.True(t, w.ShipDead())

	w.Advance(input.Snapshot{})
	assert.Zero(t, countKind(w, entity.KindShip))
	assert.Same(t, ship, w.Ship())
}

// Ship at (300,100) aimed at a stationary asteroid at (30,40) radius 50
func TestEndToEndLaserHitsAsteroid(t *testing.T) {
	w := newTestWorld()

	ship := entity.NewShip(vmath.Vec2{X: 300, Y: 100})
	target := vmath.Vec2{X: 30, Y: 40}
	aim := target.Sub(ship.Pos)
	ship.Angle = math.Atan2(aim.X, -aim.Y)
	ship.Vel = vmath.Heading(ship.Angle)
	w.AddShip(ship)

	asteroid := entity.NewAsteroidWithVelocity(target, 50, vmath.Vec2{})
	w.Spawn(asteroid)

	w.Advance(input.Snapshot{Fire: true})

	require.Equal(t, 1, countKind(w, entity.KindProjectile))
	laser := firstOfKind(w, entity.KindProjectile).(*entity.Projectile)
	assert.InDelta(t, ship.Speed()+40, laser.Speed(), 1e-9)

	hitAt := 0
	for i := 2; i <= 10; i++ {
		w.Advance(input.Snapshot{})
		if laser.IsDead() {
			hitAt = i
			break
		}
	}
	require.Equal(t, 6, hitAt, "laser reaches the asteroid on the sixth tick")
	assert.Equal(t, 5, countKind(w, entity.KindDebris))
	assert.Equal(t, 1, countKind(w, entity.KindProjectile), "dead laser still rendered this tick")

	w.Advance(input.Snapshot{})
	assert.Zero(t, countKind(w, entity.KindProjectile))
	assert.Equal(t, 5, countKind(w, entity.KindDebris))
	assert.Equal(t, 1, countKind(w, entity.KindAsteroid))
	assert.False(t, ship.IsDead())

	var explosions int
	for _, ev := range w.Queue().Consume() {
		if ev.Type == event.EventExplosion {
			explosions++
			payload := ev.Payload.(*event.ExplosionPayload)
			assert.Equal(t, 5, payload.Count)
			assert.Equal(t, uint64(5), ev.Tick)
		}
	}
	assert.Equal(t, 1, explosions)
}

func TestProjectileRemovedAfterTTL(t *testing.T) {
	w := newTestWorld()
	w.AddShip(entity.NewShip(vmath.Vec2{X: 300, Y: 100}))

	w.Advance(input.Snapshot{Fire: true})
	laser := firstOfKind(w, entity.KindProjectile).(*entity.Projectile)
	require.NotNil(t, laser)
	assert.Equal(t, 1, laser.Lifetime)

	for w.Tick() < 41 {
		w.Advance(input.Snapshot{})
	}
	assert.True(t, laser.IsDead())
	assert.Equal(t, 1, countKind(w, entity.KindProjectile))

	w.Advance(input.Snapshot{})
	assert.Zero(t, countKind(w, entity.KindProjectile))
}

func TestShipAsteroidCollisionOrderIndependent(t *testing.T) {
	build := func(shipFirst bool) (*World, *entity.Ship) {
		w := newTestWorld()
		ship := entity.NewShip(vmath.Vec2{X: 200, Y: 200})
		asteroid := entity.NewAsteroidWithVelocity(vmath.Vec2{X: 230, Y: 200}, 40, vmath.Vec2{})
		if shipFirst {
			w.AddShip(ship)
			w.Spawn(asteroid)
		} else {
			w.Spawn(asteroid)
			w.AddShip(ship)
		}
		return w, ship
	}

	for _, shipFirst := range []bool{true, false} {
		w, ship := build(shipFirst)
		w.Advance(input.Snapshot{})

		assert.True(t, ship.IsDead(), "shipFirst=%v", shipFirst)
		assert.Equal(t, 50, countKind(w, entity.KindDebris), "shipFirst=%v", shipFirst)
		assert.Equal(t, 1, countKind(w, entity.KindAsteroid), "shipFirst=%v", shipFirst)
	}
}

func TestEmitStampsTick(t *testing.T) {
	w := newTestWorld()
	w.Advance(input.Snapshot{})
	w.Advance(input.Snapshot{})
	w.Emit(event.EventLaserFired, nil)

	evs := w.Queue().Consume()
	require.Len(t, evs, 1)
	assert.Equal(t, uint64(2), evs[0].Tick)
}

func BenchmarkAdvance(b *testing.B) {
	w := newTestWorld()
	w.AddShip(entity.NewShip(vmath.Vec2{X: 300, Y: 100}))
	rng := vmath.NewFastRand(3)
	for i := 0; i < 20; i++ {
		w.Spawn(entity.NewAsteroid(vmath.Vec2{X: float64(i * 30), Y: 240}, 20, rng))
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		w.Advance(input.Snapshot{})
	}
}
