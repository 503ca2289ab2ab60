package component

import "github.com/gardenward/sim/internal/core/ecs"

// Component kinds for conjunctive queries. Registered once at world
// construction; the set is closed.
const (
	KindTransform ecs.Kind = iota
	KindVelocity
	KindHitBox
	KindHealth
	KindGridCell
	KindDefender
	KindAttacker
	KindProjectile
	KindSunProducer
)

// Stores bundles one typed store per component kind. Constructed once at
// start-up and passed explicitly to every system — no ambient globals.
type Stores struct {
	Transform   *ecs.Store[Transform]
	Velocity    *ecs.Store[Velocity]
	HitBox      *ecs.Store[HitBox]
	Health      *ecs.Store[Health]
	GridCell    *ecs.Store[GridCell]
	Defender    *ecs.Store[Defender]
	Attacker    *ecs.Store[Attacker]
	Projectile  *ecs.Store[Projectile]
	SunProducer *ecs.Store[SunProducer]
}

func NewStores(w *ecs.World) *Stores {
	return &Stores{
		Transform:   ecs.NewStore[Transform](w, KindTransform),
		Velocity:    ecs.NewStore[Velocity](w, KindVelocity),
		HitBox:      ecs.NewStore[HitBox](w, KindHitBox),
		Health:      ecs.NewStore[Health](w, KindHealth),
		GridCell:    ecs.NewStore[GridCell](w, KindGridCell),
		Defender:    ecs.NewStore[Defender](w, KindDefender),
		Attacker:    ecs.NewStore[Attacker](w, KindAttacker),
		Projectile:  ecs.NewStore[Projectile](w, KindProjectile),
		SunProducer: ecs.NewStore[SunProducer](w, KindSunProducer),
	}
}

// RemoveAll clears the entity from every store. Used by tests and the lawn
// when unwinding a failed multi-component creation.
func (s *Stores) RemoveAll(id ecs.EntityID) {
	s.Transform.Remove(id)
	s.Velocity.Remove(id)
	s.HitBox.Remove(id)
	s.Health.Remove(id)
	s.GridCell.Remove(id)
	s.Defender.Remove(id)
	s.Attacker.Remove(id)
	s.Projectile.Remove(id)
	s.SunProducer.Remove(id)
}
