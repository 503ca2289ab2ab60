package system

import (
	"time"

	"github.com/gardenward/sim/internal/component"
	"github.com/gardenward/sim/internal/config"
	"github.com/gardenward/sim/internal/core/ecs"
	coresys "github.com/gardenward/sim/internal/core/system"
	"github.com/gardenward/sim/internal/game"
)

// Horizontal offset from a firing defender's center to the projectile
// spawn point, and the spacing between burst shots.
const (
	muzzleOffset = 30.0
	burstSpacing = 20.0
)

// ShooterSystem drives the cooldown-gated row-shot family. The scan is
// existence-only: any targetable attacker in the lane triggers the full
// burst; aiming is the projectile's problem. The triple-row variant also
// covers the adjacent lanes, one shot into each lane with a target.
// Phase 3 (Behavior).
type ShooterSystem struct {
	world   *ecs.World
	stores  *component.Stores
	factory game.Factory
	cfg     config.FieldConfig
}

func NewShooterSystem(world *ecs.World, stores *component.Stores, factory game.Factory, cfg config.FieldConfig) *ShooterSystem {
	return &ShooterSystem{world: world, stores: stores, factory: factory, cfg: cfg}
}

func (s *ShooterSystem) Phase() coresys.Phase { return coresys.PhaseBehavior }

func (s *ShooterSystem) Update(dt time.Duration) {
	sec := dt.Seconds()
	for _, id := range s.world.Query(component.KindDefender, component.KindTransform, component.KindGridCell) {
		def, _ := s.stores.Defender.Get(id)
		if def.Family != component.FamilyShooter || s.world.PendingDestroy(id) {
			continue
		}
		def.CooldownLeft -= sec
		if !def.Ready() {
			continue
		}
		tr, _ := s.stores.Transform.Get(id)
		cell, _ := s.stores.GridCell.Get(id)

		rows := []int{cell.Row}
		if def.Archetype == component.DefTripleShooter {
			rows = rows[:0]
			for r := cell.Row - 1; r <= cell.Row+1; r++ {
				if r >= 0 && r < s.cfg.Rows {
					rows = append(rows, r)
				}
			}
		}

		fired := false
		for _, r := range rows {
			if !attackerInRow(s.world, s.stores, r) {
				continue
			}
			y := rowCenterY(s.cfg, r)
			for i := 0; i < def.ShotCount; i++ {
				s.factory.CreateProjectile(string(def.Projectile), tr.X+muzzleOffset+float64(i)*burstSpacing, y, r)
			}
			fired = true
		}
		if fired {
			def.ResetCooldown()
		}
	}
}
