package system

import (
	"time"

	"github.com/gardenward/sim/internal/component"
	"github.com/gardenward/sim/internal/core/ecs"
	"github.com/gardenward/sim/internal/core/event"
	coresys "github.com/gardenward/sim/internal/core/system"
)

// DeathCallback runs synchronously when an entity's health pool empties,
// before the tick-end sweep, so the dying entity's components are still
// readable. Dependent bookkeeping (cell occupancy) hangs off this; anything
// fire-and-forget listens for the Death event instead.
type DeathCallback func(id ecs.EntityID)

// HealthSystem detects emptied health pools, runs death callbacks, emits
// Death, and queues the entity for the cleanup sweep. Phase 5 (Health).
type HealthSystem struct {
	world     *ecs.World
	stores    *component.Stores
	bus       *event.Bus
	callbacks []DeathCallback
}

func NewHealthSystem(world *ecs.World, stores *component.Stores, bus *event.Bus) *HealthSystem {
	return &HealthSystem{world: world, stores: stores, bus: bus}
}

func (s *HealthSystem) OnDeath(fn DeathCallback) {
	s.callbacks = append(s.callbacks, fn)
}

func (s *HealthSystem) Phase() coresys.Phase { return coresys.PhaseHealth }

func (s *HealthSystem) Update(_ time.Duration) {
	for _, id := range s.world.Query(component.KindHealth) {
		if s.world.PendingDestroy(id) {
			continue
		}
		h, _ := s.stores.Health.Get(id)
		if !h.Dead() {
			continue
		}
		score := 0
		if a, ok := s.stores.Attacker.Get(id); ok {
			score = a.Score
		}
		for _, fn := range s.callbacks {
			fn(id)
		}
		event.Emit(s.bus, event.Death{Entity: id, Score: score})
		s.world.MarkForDestruction(id)
	}
}
