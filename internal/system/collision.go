package system

import (
	"time"

	"github.com/gardenward/sim/internal/component"
	"github.com/gardenward/sim/internal/core/ecs"
	coresys "github.com/gardenward/sim/internal/core/system"
)

// CollisionCallback receives an overlapping pair, ordered so that a's mask
// admits b's layer.
type CollisionCallback func(a, b ecs.EntityID)

// CollisionSystem detects AABB overlaps among active hit boxes and reports
// each interacting pair to the registered callbacks, once per pair per tick.
// The scan is the naive n² pass over (Transform, HitBox) entities; entity
// counts on a nine-column field never justify a broadphase.
// Phase 2 (Collision).
type CollisionSystem struct {
	world     *ecs.World
	stores    *component.Stores
	callbacks []CollisionCallback
}

func NewCollisionSystem(world *ecs.World, stores *component.Stores) *CollisionSystem {
	return &CollisionSystem{world: world, stores: stores}
}

// OnPair registers a pair callback. Callbacks must not destroy entities
// directly; record and resolve in a later phase.
func (s *CollisionSystem) OnPair(fn CollisionCallback) {
	s.callbacks = append(s.callbacks, fn)
}

func (s *CollisionSystem) Phase() coresys.Phase { return coresys.PhaseCollision }

func (s *CollisionSystem) Update(_ time.Duration) {
	ids := s.world.Query(component.KindTransform, component.KindHitBox)
	for i := 0; i < len(ids); i++ {
		a := ids[i]
		ha, _ := s.stores.HitBox.Get(a)
		if !ha.Active {
			continue
		}
		ta, _ := s.stores.Transform.Get(a)
		for j := i + 1; j < len(ids); j++ {
			b := ids[j]
			hb, _ := s.stores.HitBox.Get(b)
			if !hb.Active {
				continue
			}
			// a may hit b only if b's layer is set in a's mask.
			aHitsB := ha.Mask&hb.Layer != 0
			bHitsA := hb.Mask&ha.Layer != 0
			if !aHitsB && !bHitsA {
				continue
			}
			tb, _ := s.stores.Transform.Get(b)
			if !ha.Overlaps(ta.X, ta.Y, hb, tb.X, tb.Y) {
				continue
			}
			x, y := a, b
			if !aHitsB {
				x, y = b, a
			}
			for _, fn := range s.callbacks {
				fn(x, y)
			}
		}
	}
}
