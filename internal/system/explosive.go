package system

import (
	"time"

	"github.com/gardenward/sim/internal/component"
	"github.com/gardenward/sim/internal/core/ecs"
	"github.com/gardenward/sim/internal/core/event"
	coresys "github.com/gardenward/sim/internal/core/system"
)

// ExplosiveSystem drives the blast family. An instant explosive (no arm
// time, no trigger range) detonates on its first behavior tick. A delayed
// mine counts its arm timer down, then waits for an attacker to step inside
// its trigger range. Detonation damages every living attacker inside the
// blast disc, boundary inclusive, and empties the explosive's own health
// pool so the regular death path frees its cell. Phase 3 (Behavior).
type ExplosiveSystem struct {
	world  *ecs.World
	stores *component.Stores
	bus    *event.Bus
}

func NewExplosiveSystem(world *ecs.World, stores *component.Stores, bus *event.Bus) *ExplosiveSystem {
	return &ExplosiveSystem{world: world, stores: stores, bus: bus}
}

func (s *ExplosiveSystem) Phase() coresys.Phase { return coresys.PhaseBehavior }

func (s *ExplosiveSystem) Update(dt time.Duration) {
	sec := dt.Seconds()
	for _, id := range s.world.Query(component.KindDefender, component.KindTransform) {
		def, _ := s.stores.Defender.Get(id)
		if def.Family != component.FamilyExplosive || s.world.PendingDestroy(id) {
			continue
		}
		if h, ok := s.stores.Health.Get(id); ok && h.Dead() {
			continue
		}
		if !def.Armed {
			def.ArmLeft -= sec
			if def.ArmLeft > 0 {
				continue
			}
			def.Armed = true
		}
		tr, _ := s.stores.Transform.Get(id)
		if def.TriggerRange > 0 && !s.tripped(id, def, tr) {
			continue
		}
		s.detonate(id, def, tr)
	}
}

func (s *ExplosiveSystem) tripped(id ecs.EntityID, def *component.Defender, tr *component.Transform) bool {
	cell, ok := s.stores.GridCell.Get(id)
	if !ok {
		return false
	}
	_, dx, found := nearestAttackerInRow(s.world, s.stores, cell.Row, tr.X)
	if !found {
		return false
	}
	if dx < 0 {
		dx = -dx
	}
	return dx <= def.TriggerRange
}

func (s *ExplosiveSystem) detonate(id ecs.EntityID, def *component.Defender, tr *component.Transform) {
	r2 := def.BlastRadius * def.BlastRadius
	for _, aid := range s.world.Query(component.KindAttacker, component.KindTransform, component.KindHealth) {
		if !targetable(s.world, s.stores, aid) {
			continue
		}
		at, _ := s.stores.Transform.Get(aid)
		dx, dy := at.X-tr.X, at.Y-tr.Y
		if dx*dx+dy*dy > r2 {
			continue
		}
		ah, _ := s.stores.Health.Get(aid)
		ah.Apply(def.Damage)
		event.Emit(s.bus, event.Damage{X: at.X, Y: at.Y, Amount: def.Damage, Kind: "blast", Target: aid})
	}

	kind := "bomb"
	if def.TriggerRange > 0 {
		kind = "mine"
	}
	event.Emit(s.bus, event.Explosion{X: tr.X, Y: tr.Y, Radius: def.BlastRadius, Damage: def.Damage, Kind: kind})

	// Spent: route through the normal death path so the cell opens up.
	if h, ok := s.stores.Health.Get(id); ok {
		h.Current = 0
	}
}
