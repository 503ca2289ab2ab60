package system

import (
	"time"

	"github.com/gardenward/sim/internal/component"
	"github.com/gardenward/sim/internal/core/ecs"
	coresys "github.com/gardenward/sim/internal/core/system"
	"github.com/gardenward/sim/internal/game"
)

// LobberSystem drives the arcing-splash family. Unlike the shooter's
// existence-only scan, a lobber needs an actual target ahead of it before it
// commits a mortar shell. Phase 3 (Behavior).
type LobberSystem struct {
	world   *ecs.World
	stores  *component.Stores
	factory game.Factory
}

func NewLobberSystem(world *ecs.World, stores *component.Stores, factory game.Factory) *LobberSystem {
	return &LobberSystem{world: world, stores: stores, factory: factory}
}

func (s *LobberSystem) Phase() coresys.Phase { return coresys.PhaseBehavior }

func (s *LobberSystem) Update(dt time.Duration) {
	sec := dt.Seconds()
	for _, id := range s.world.Query(component.KindDefender, component.KindTransform, component.KindGridCell) {
		def, _ := s.stores.Defender.Get(id)
		if def.Family != component.FamilyLobber || s.world.PendingDestroy(id) {
			continue
		}
		def.CooldownLeft -= sec
		if !def.Ready() {
			continue
		}
		tr, _ := s.stores.Transform.Get(id)
		cell, _ := s.stores.GridCell.Get(id)
		_, dx, ok := nearestAttackerInRow(s.world, s.stores, cell.Row, tr.X)
		if !ok || dx <= 0 {
			continue
		}
		s.factory.CreateProjectile(string(def.Projectile), tr.X+muzzleOffset, tr.Y, cell.Row)
		def.ResetCooldown()
	}
}
