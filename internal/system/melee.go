package system

import (
	"time"

	"github.com/gardenward/sim/internal/component"
	"github.com/gardenward/sim/internal/core/ecs"
	"github.com/gardenward/sim/internal/core/event"
	coresys "github.com/gardenward/sim/internal/core/system"
)

// MeleeSystem drives two kinds of close-range defender. A lunge-and-chew
// unit (EatTime > 0) consumes one attacker in front of it, then is locked
// out through its eat and chew states before it can strike again. A contact
// hazard (EatTime == 0) pulses damage on its cooldown into every grounded
// attacker overlapping its strip. Neither touches flying attackers.
// Phase 3 (Behavior).
type MeleeSystem struct {
	world  *ecs.World
	stores *component.Stores
	bus    *event.Bus
}

// Tolerance for an attacker slightly behind the eater's center.
const lungeGrace = 10.0

func NewMeleeSystem(world *ecs.World, stores *component.Stores, bus *event.Bus) *MeleeSystem {
	return &MeleeSystem{world: world, stores: stores, bus: bus}
}

func (s *MeleeSystem) Phase() coresys.Phase { return coresys.PhaseBehavior }

func (s *MeleeSystem) Update(dt time.Duration) {
	sec := dt.Seconds()
	for _, id := range s.world.Query(component.KindDefender, component.KindTransform, component.KindGridCell) {
		def, _ := s.stores.Defender.Get(id)
		if def.Family != component.FamilyMelee || s.world.PendingDestroy(id) {
			continue
		}
		tr, _ := s.stores.Transform.Get(id)
		cell, _ := s.stores.GridCell.Get(id)
		if def.EatTime > 0 {
			s.updateChewer(def, tr, cell, sec)
		} else {
			s.updateHazard(def, tr, cell, sec)
		}
	}
}

func (s *MeleeSystem) updateChewer(def *component.Defender, tr *component.Transform, cell *component.GridCell, sec float64) {
	switch def.State {
	case component.MeleeIdle:
		tid, dx, ok := nearestAttackerInRow(s.world, s.stores, cell.Row, tr.X)
		if !ok || dx < -lungeGrace || dx > def.Range {
			return
		}
		if a, _ := s.stores.Attacker.Get(tid); a != nil && a.Flying {
			return
		}
		th, _ := s.stores.Health.Get(tid)
		tt, _ := s.stores.Transform.Get(tid)
		th.Apply(def.Damage)
		event.Emit(s.bus, event.Damage{X: tt.X, Y: tt.Y, Amount: def.Damage, Kind: "bite", Target: tid})
		def.State = component.MeleeEating
		def.StateLeft = def.EatTime
	case component.MeleeEating:
		def.StateLeft -= sec
		if def.StateLeft <= 0 {
			def.State = component.MeleeChewing
			def.StateLeft = def.ChewTime
		}
	case component.MeleeChewing:
		def.StateLeft -= sec
		if def.StateLeft <= 0 {
			def.State = component.MeleeIdle
			def.StateLeft = 0
		}
	}
}

func (s *MeleeSystem) updateHazard(def *component.Defender, tr *component.Transform, cell *component.GridCell, sec float64) {
	def.CooldownLeft -= sec
	if !def.Ready() {
		return
	}
	hit := false
	for _, aid := range s.world.Query(component.KindAttacker, component.KindTransform, component.KindGridCell) {
		acell, _ := s.stores.GridCell.Get(aid)
		if acell.Row != cell.Row || !targetable(s.world, s.stores, aid) {
			continue
		}
		a, _ := s.stores.Attacker.Get(aid)
		if a.Flying {
			continue
		}
		at, _ := s.stores.Transform.Get(aid)
		dx := at.X - tr.X
		if dx < 0 {
			dx = -dx
		}
		if dx > def.Range {
			continue
		}
		ah, _ := s.stores.Health.Get(aid)
		ah.Apply(def.Damage)
		event.Emit(s.bus, event.Damage{X: at.X, Y: at.Y, Amount: def.Damage, Kind: "spike", Target: aid})
		hit = true
	}
	if hit {
		def.ResetCooldown()
	}
}
