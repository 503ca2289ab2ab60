package system

import (
	"math/rand"
	"time"

	"github.com/gardenward/sim/internal/component"
	"github.com/gardenward/sim/internal/config"
	"github.com/gardenward/sim/internal/core/ecs"
	"github.com/gardenward/sim/internal/core/event"
	coresys "github.com/gardenward/sim/internal/core/system"
	"github.com/gardenward/sim/internal/game"
)

// Sky-drop cadence and value. The periodic free drop exists independently
// of any producer on the field.
const (
	skyDropInterval = 10.0
	skyDropAmount   = 25
)

// SunSystem runs currency production: producer defenders drop a pickup on
// their interval, sky drops fall from above the field to a random landing
// point, and uncollected pickups expire once at rest. Production is
// independent of any attack state machine. Phase 4 (Spawn).
type SunSystem struct {
	world   *ecs.World
	stores  *component.Stores
	bus     *event.Bus
	factory game.Factory
	cfg     config.FieldConfig
	rng     *rand.Rand

	skyLeft float64
}

func NewSunSystem(world *ecs.World, stores *component.Stores, bus *event.Bus,
	factory game.Factory, cfg config.FieldConfig, rng *rand.Rand) *SunSystem {
	return &SunSystem{
		world:   world,
		stores:  stores,
		bus:     bus,
		factory: factory,
		cfg:     cfg,
		rng:     rng,
		skyLeft: skyDropInterval,
	}
}

func (s *SunSystem) Phase() coresys.Phase { return coresys.PhaseSpawn }

func (s *SunSystem) Update(dt time.Duration) {
	sec := dt.Seconds()
	for _, id := range s.world.Query(component.KindSunProducer, component.KindTransform) {
		if s.world.PendingDestroy(id) {
			continue
		}
		sp, _ := s.stores.SunProducer.Get(id)
		if sp.Collectable {
			if sp.Auto && sp.RestY > 0 {
				tr, _ := s.stores.Transform.Get(id)
				if tr.Y < sp.RestY {
					continue // still falling; lifetime starts at rest
				}
				if v, ok := s.stores.Velocity.Get(id); ok && v.DirY != 0 {
					tr.Y = sp.RestY
					v.DirY = 0
				}
			}
			sp.LifeLeft -= sec
			if sp.LifeLeft <= 0 {
				s.world.MarkForDestruction(id)
			}
			continue
		}
		sp.Left -= sec
		if sp.Left > 0 {
			continue
		}
		sp.Left += sp.Interval
		tr, _ := s.stores.Transform.Get(id)
		s.factory.CreateSunPickup(tr.X, tr.Y, sp.Amount, false)
		event.Emit(s.bus, event.SunDropped{X: tr.X, Y: tr.Y, Amount: sp.Amount, Auto: false})
	}

	if s.rng == nil {
		return
	}
	s.skyLeft -= sec
	if s.skyLeft > 0 {
		return
	}
	s.skyLeft += skyDropInterval
	x := s.cfg.OriginX + s.rng.Float64()*float64(s.cfg.Cols)*s.cfg.CellWidth
	restY := s.cfg.OriginY + s.rng.Float64()*float64(s.cfg.Rows)*s.cfg.CellHeight
	id := s.factory.CreateSunPickup(x, 0, skyDropAmount, true)
	if sp, ok := s.stores.SunProducer.Get(id); ok {
		sp.RestY = restY
	}
	event.Emit(s.bus, event.SunDropped{X: x, Y: restY, Amount: skyDropAmount, Auto: true})
}
