package status

import "sync/atomic"

// Well-known metric keys
const (
	KeyTicks        = "engine.ticks"
	KeyEntities     = "world.entities"
	KeySpawned      = "world.spawned"
	KeyRemoved      = "world.removed"
	KeyEvents       = "engine.events"
	KeyShipDead     = "ship.dead"
	KeyTickOverruns = "engine.overruns"
)

// Registry is the central metrics facade
// The scheduler writes; the status line and debug log read
type Registry struct {
	Bools *MetricMap[atomic.Bool]
	Ints  *MetricMap[atomic.Int64]
}

func NewRegistry() *Registry {
	return &Registry{
		Bools: NewMetricMap[atomic.Bool](),
		Ints:  NewMetricMap[atomic.Int64](),
	}
}

// Snapshot copies every metric into a plain map for logging
func (r *Registry) Snapshot() map[string]any {
	out := make(map[string]any, r.Bools.Count()+r.Ints.Count())
	r.Bools.Range(func(k string, v *atomic.Bool) { out[k] = v.Load() })
	r.Ints.Range(func(k string, v *atomic.Int64) { out[k] = v.Load() })
	return out
}
