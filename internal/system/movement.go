package system

import (
	"time"

	"github.com/gardenward/sim/internal/component"
	"github.com/gardenward/sim/internal/core/ecs"
	coresys "github.com/gardenward/sim/internal/core/system"
)

// MovementSystem integrates position from velocity. It never mutates the
// multiplier; slow-status expiry belongs to the behavior system owning the
// timer. Phase 1 (Movement).
type MovementSystem struct {
	stores *component.Stores
}

func NewMovementSystem(stores *component.Stores) *MovementSystem {
	return &MovementSystem{stores: stores}
}

func (s *MovementSystem) Phase() coresys.Phase { return coresys.PhaseMovement }

func (s *MovementSystem) Update(dt time.Duration) {
	sec := dt.Seconds()
	ecs.Each2(s.stores.Transform, s.stores.Velocity, func(_ ecs.EntityID, tr *component.Transform, v *component.Velocity) {
		step := v.BaseSpeed * v.Multiplier * sec
		tr.X += v.DirX * step
		tr.Y += v.DirY * step
	})
}
