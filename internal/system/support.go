package system

import (
	"time"

	"github.com/gardenward/sim/internal/component"
	"github.com/gardenward/sim/internal/core/ecs"
	coresys "github.com/gardenward/sim/internal/core/system"
)

// SupportSystem drives the armor-removal aura. On its cooldown it scans a
// disc around the defender for attackers still wearing removable armor and
// strips the nearest one; the cooldown resets only when something was
// actually stripped. Phase 3 (Behavior).
type SupportSystem struct {
	world  *ecs.World
	stores *component.Stores
}

func NewSupportSystem(world *ecs.World, stores *component.Stores) *SupportSystem {
	return &SupportSystem{world: world, stores: stores}
}

func (s *SupportSystem) Phase() coresys.Phase { return coresys.PhaseBehavior }

func (s *SupportSystem) Update(dt time.Duration) {
	sec := dt.Seconds()
	for _, id := range s.world.Query(component.KindDefender, component.KindTransform) {
		def, _ := s.stores.Defender.Get(id)
		if def.Family != component.FamilySupport || s.world.PendingDestroy(id) {
			continue
		}
		def.CooldownLeft -= sec
		if !def.Ready() {
			continue
		}
		tr, _ := s.stores.Transform.Get(id)
		r2 := def.Range * def.Range

		var (
			best     ecs.EntityID
			bestDist float64
			found    bool
		)
		for _, aid := range s.world.Query(component.KindAttacker, component.KindTransform, component.KindHealth) {
			if !targetable(s.world, s.stores, aid) {
				continue
			}
			ah, _ := s.stores.Health.Get(aid)
			if !ah.Magnetic || ah.Armor <= 0 {
				continue
			}
			at, _ := s.stores.Transform.Get(aid)
			dx, dy := at.X-tr.X, at.Y-tr.Y
			d2 := dx*dx + dy*dy
			if d2 > r2 {
				continue
			}
			if !found || d2 < bestDist {
				best, bestDist, found = aid, d2, true
			}
		}
		if !found {
			continue
		}
		ah, _ := s.stores.Health.Get(best)
		ah.StripArmor()
		def.ResetCooldown()
	}
}
