package system

import (
	"time"

	"github.com/gardenward/sim/internal/component"
	"github.com/gardenward/sim/internal/config"
	"github.com/gardenward/sim/internal/core/ecs"
	"github.com/gardenward/sim/internal/core/event"
	coresys "github.com/gardenward/sim/internal/core/system"
	"github.com/gardenward/sim/internal/game"
)

// Overlay trigger geometry, in field units.
const (
	tunnelEndX    = 200.0 // tunneling attacker surfaces once past this
	surfaceAtX    = 100.0 // and pops up here
	escortCallX   = 800.0 // escort summoner calls its guard past this
	vaultDistance = 120.0 // vault lands this far beyond the obstacle
	chewGrace     = 8.0   // melee keeps biting an obstacle slightly behind
)

// AttackerSystem drives the attacker state machine: walk toward the
// defended edge, halt and chew when an obstacle is in reach, breach at the
// edge. Archetype overlays (vault, escort summon, tunnel, steal) layer on
// top, each gated by a one-shot flag or an accumulating timer. This system
// owns the slow-status countdown and is the only writer of the velocity
// multiplier besides the status applicator. Phase 3 (Behavior).
type AttackerSystem struct {
	world   *ecs.World
	stores  *component.Stores
	bus     *event.Bus
	factory game.Factory
	lawn    *game.Lawn
	state   *game.State
	cfg     config.FieldConfig
}

func NewAttackerSystem(world *ecs.World, stores *component.Stores, bus *event.Bus,
	factory game.Factory, lawn *game.Lawn, state *game.State, cfg config.FieldConfig) *AttackerSystem {
	return &AttackerSystem{
		world:   world,
		stores:  stores,
		bus:     bus,
		factory: factory,
		lawn:    lawn,
		state:   state,
		cfg:     cfg,
	}
}

func (s *AttackerSystem) Phase() coresys.Phase { return coresys.PhaseBehavior }

func (s *AttackerSystem) Update(dt time.Duration) {
	sec := dt.Seconds()
	for _, id := range s.world.Query(component.KindAttacker, component.KindTransform, component.KindVelocity, component.KindGridCell) {
		if s.world.PendingDestroy(id) {
			continue
		}
		a, _ := s.stores.Attacker.Get(id)
		tr, _ := s.stores.Transform.Get(id)
		vel, _ := s.stores.Velocity.Get(id)
		cell, _ := s.stores.GridCell.Get(id)
		if h, ok := s.stores.Health.Get(id); ok && h.Dead() {
			continue
		}

		a.CooldownLeft -= sec
		if a.SlowLeft > 0 {
			a.SlowLeft -= sec
			if a.SlowLeft <= 0 {
				a.SlowLeft = 0
				vel.Multiplier = 1
			}
		}

		if a.Digs && !a.Surfaced {
			if tr.X > tunnelEndX {
				continue // still underground, untouchable
			}
			tr.X = surfaceAtX
			a.Surfaced = true
			if hb, ok := s.stores.HitBox.Get(id); ok {
				hb.Active = true
			}
		}

		if a.SummonsEscorts && !a.Summoned && tr.X <= escortCallX {
			a.Summoned = true
			for _, r := range [2]int{cell.Row - 1, cell.Row + 1} {
				if r >= 0 && r < s.cfg.Rows {
					s.factory.CreateAttacker(string(component.AtkEscort), tr.X, rowCenterY(s.cfg, r), r, 1, 1)
				}
			}
		}

		if a.Steals && a.Stolen.IsZero() {
			a.StealTimer += sec
			if a.StealTimer >= a.StealAfter {
				if tid, _, ok := nearestDefenderInRow(s.world, s.stores, cell.Row, tr.X); ok {
					// Lifts the defender off the field and leaves with it.
					// No death event: nothing was killed.
					a.Stolen = tid
					s.lawn.Release(tid)
					s.world.MarkForDestruction(tid)
					s.world.MarkForDestruction(id)
					continue
				}
			}
		}

		if tr.X <= 0 {
			vel.DirX = 0
			if !s.state.Breached() {
				s.state.MarkBreached()
				event.Emit(s.bus, event.AttackerBreached{Entity: id, Row: cell.Row})
			}
			continue
		}

		tid, dx, ok := nearestDefenderInRow(s.world, s.stores, cell.Row, tr.X)
		if ok && !a.Flying && dx >= -chewGrace && dx <= a.Range {
			if a.HasPole && !a.Vaulted {
				// One-shot vault: teleport past the obstacle, never again.
				dtr, _ := s.stores.Transform.Get(tid)
				tr.X = dtr.X - vaultDistance
				a.Vaulted = true
				a.HasPole = false
				// Dropped the pole, walks on at a plod.
				vel.BaseSpeed *= 0.75
				continue
			}
			a.Chewing = true
			vel.DirX = 0
			if a.CooldownLeft <= 0 {
				th, _ := s.stores.Health.Get(tid)
				dtr, _ := s.stores.Transform.Get(tid)
				th.Apply(a.Damage)
				event.Emit(s.bus, event.Damage{X: dtr.X, Y: dtr.Y, Amount: a.Damage, Kind: "chew", Target: tid})
				a.CooldownLeft = a.Cooldown
			}
			continue
		}

		a.Chewing = false
		vel.DirX = -1
	}
}
