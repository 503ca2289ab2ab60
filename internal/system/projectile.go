package system

import (
	"time"

	"github.com/gardenward/sim/internal/component"
	"github.com/gardenward/sim/internal/core/ecs"
	"github.com/gardenward/sim/internal/core/event"
	coresys "github.com/gardenward/sim/internal/core/system"
)

type hitPair struct {
	proj, target ecs.EntityID
}

// ProjectileSystem resolves the hits the collision phase recorded earlier
// this tick, then expires projectiles by lifetime and field bounds. A hit
// against a target that died earlier in the same tick is dropped, and the
// shot flies on. Splash damage radiates from the struck target; a slow
// payload applies to everything the splash reaches. Phase 3 (Behavior).
type ProjectileSystem struct {
	world  *ecs.World
	stores *component.Stores
	bus    *event.Bus
	boundX float64

	hits []hitPair
}

func NewProjectileSystem(world *ecs.World, stores *component.Stores, bus *event.Bus, boundX float64) *ProjectileSystem {
	return &ProjectileSystem{
		world:  world,
		stores: stores,
		bus:    bus,
		boundX: boundX,
		hits:   make([]hitPair, 0, 32),
	}
}

// HandleCollision records a projectile-attacker overlap for resolution in
// the behavior phase. Register with the collision system's OnPair.
func (s *ProjectileSystem) HandleCollision(a, b ecs.EntityID) {
	if s.stores.Projectile.Has(a) && s.stores.Attacker.Has(b) {
		s.hits = append(s.hits, hitPair{proj: a, target: b})
	}
}

func (s *ProjectileSystem) Phase() coresys.Phase { return coresys.PhaseBehavior }

func (s *ProjectileSystem) Update(dt time.Duration) {
	for _, hp := range s.hits {
		s.resolve(hp)
	}
	s.hits = s.hits[:0]

	sec := dt.Seconds()
	for _, id := range s.world.Query(component.KindProjectile, component.KindTransform) {
		p, _ := s.stores.Projectile.Get(id)
		tr, _ := s.stores.Transform.Get(id)
		p.LifeLeft -= sec
		if p.LifeLeft <= 0 || tr.X > s.boundX || tr.X < 0 {
			s.world.MarkForDestruction(id)
		}
	}
}

func (s *ProjectileSystem) resolve(hp hitPair) {
	p, ok := s.stores.Projectile.Get(hp.proj)
	if !ok || s.world.PendingDestroy(hp.proj) {
		return
	}
	// Lane discipline: adjacent rows can graze box-wise but never hit.
	pc, pok := s.stores.GridCell.Get(hp.proj)
	tc, tok := s.stores.GridCell.Get(hp.target)
	if pok && tok && pc.Row != tc.Row {
		return
	}
	if !targetable(s.world, s.stores, hp.target) {
		return
	}
	tt, _ := s.stores.Transform.Get(hp.target)

	s.damage(hp.target, tt, p)

	if p.Splash {
		r2 := p.SplashRadius * p.SplashRadius
		for _, aid := range s.world.Query(component.KindAttacker, component.KindTransform, component.KindHealth) {
			if aid == hp.target || !targetable(s.world, s.stores, aid) {
				continue
			}
			at, _ := s.stores.Transform.Get(aid)
			dx, dy := at.X-tt.X, at.Y-tt.Y
			if dx*dx+dy*dy > r2 {
				continue
			}
			s.damage(aid, at, p)
		}
		event.Emit(s.bus, event.Explosion{X: tt.X, Y: tt.Y, Radius: p.SplashRadius, Damage: p.Damage, Kind: "mortar"})
	}

	if p.Pierce > 0 {
		p.Pierce--
	} else {
		s.world.MarkForDestruction(hp.proj)
	}
}

func (s *ProjectileSystem) damage(id ecs.EntityID, tr *component.Transform, p *component.Projectile) {
	h, _ := s.stores.Health.Get(id)
	h.Apply(p.Damage)
	event.Emit(s.bus, event.Damage{X: tr.X, Y: tr.Y, Amount: p.Damage, Kind: "projectile", Target: id})
	if p.AppliesSlow {
		a, aok := s.stores.Attacker.Get(id)
		v, vok := s.stores.Velocity.Get(id)
		if aok && vok {
			a.Slow(v, p.SlowFactor, p.SlowDuration)
		}
	}
}
