package system

import (
	"testing"
	"time"

	"github.com/gardenward/sim/internal/component"
	"github.com/gardenward/sim/internal/config"
	"github.com/gardenward/sim/internal/core/ecs"
	"github.com/gardenward/sim/internal/core/event"
	coresys "github.com/gardenward/sim/internal/core/system"
	"github.com/gardenward/sim/internal/data"
	"github.com/gardenward/sim/internal/game"
)

const tick = 50 * time.Millisecond

// The dummy attacker stands still and bites for zero: a stationary target
// for behavior tests.
const rigDefenderYAML = `
defenders:
  - archetype: shooter
    family: shooter
    cost: 100
    health: 300
    width: 60
    height: 80
    cooldown: 1.4
    projectile: bolt
  - archetype: frost_shooter
    family: shooter
    cost: 175
    health: 300
    cooldown: 1.4
    projectile: frost_bolt
  - archetype: sunflower
    family: none
    cost: 50
    health: 300
    sun_amount: 25
    sun_interval: 0.2
  - archetype: bomb
    family: explosive
    cost: 150
    health: 300
    damage: 1800
    blast_radius: 100.0
  - archetype: mine
    family: explosive
    cost: 25
    health: 300
    damage: 1800
    blast_radius: 60.0
    trigger_range: 40.0
    arm_time: 15.0
  - archetype: devourer
    family: melee
    cost: 150
    health: 300
    damage: 9999
    range: 60.0
    eat_time: 0.5
    chew_time: 42.0
  - archetype: spike_strip
    family: melee
    cost: 100
    health: 300
    damage: 20
    range: 40.0
    cooldown: 0.5
  - archetype: magnet
    family: support
    cost: 100
    health: 300
    cooldown: 10.0
    range: 200.0
  - archetype: barricade
    family: none
    cost: 50
    health: 4000
`

const rigAttackerYAML = `
attackers:
  - archetype: walker
    health: 200
    speed: 20
    damage: 20
    cooldown: 0.5
    range: 30
    score: 10
  - archetype: dummy
    health: 200
    speed: 0
    damage: 0
    cooldown: 0.5
    range: 30
    score: 10
  - archetype: bucket
    health: 200
    speed: 0
    damage: 0
    armor: 1100
    magnetic: true
    score: 20
  - archetype: vaulter
    health: 340
    speed: 20
    damage: 0
    range: 30
    has_pole: true
    score: 20
  - archetype: drummer
    health: 340
    speed: 0
    damage: 0
    summons_escorts: true
    score: 30
  - archetype: escort
    health: 200
    speed: 18
    damage: 20
    score: 10
  - archetype: digger
    health: 270
    speed: 25
    damage: 0
    digs: true
    score: 25
  - archetype: snatcher
    health: 270
    speed: 0
    damage: 0
    steals: true
    steal_after: 0.2
    score: 25
`

const rigProjectileYAML = `
projectiles:
  - archetype: bolt
    damage: 20
    speed: 300
    width: 15
    height: 15
  - archetype: frost_bolt
    damage: 20
    speed: 300
    width: 15
    height: 15
    applies_slow: true
    slow_factor: 0.5
    slow_duration: 3.0
  - archetype: mortar
    damage: 80
    speed: 200
    width: 20
    height: 20
    splash: true
    splash_radius: 60.0
`

type rig struct {
	world   *ecs.World
	stores  *component.Stores
	bus     *event.Bus
	state   *game.State
	factory *game.EntityFactory
	lawn    *game.Lawn
	runner  *coresys.Runner
	cfg     config.FieldConfig
}

func rigField() config.FieldConfig {
	return config.FieldConfig{
		Rows: 5, Cols: 9,
		CellWidth: 80, CellHeight: 100,
		OriginX: 100, OriginY: 50,
		SpawnX: 850, BoundX: 900,
	}
}

// newRig assembles the full simulation stack minus the wave system, with a
// generous sun balance so planting never fails on cost.
func newRig(t *testing.T) *rig {
	t.Helper()
	defenders, err := data.ParseDefenderTable([]byte(rigDefenderYAML))
	if err != nil {
		t.Fatal(err)
	}
	attackers, err := data.ParseAttackerTable([]byte(rigAttackerYAML))
	if err != nil {
		t.Fatal(err)
	}
	projectiles, err := data.ParseProjectileTable([]byte(rigProjectileYAML))
	if err != nil {
		t.Fatal(err)
	}

	cfg := rigField()
	w := ecs.NewWorld()
	stores := component.NewStores(w)
	bus := event.NewBus()
	state := game.NewState(10000, 99990)
	factory := game.NewEntityFactory(w, stores, defenders, attackers, projectiles)
	lawn := game.NewLawn(cfg, stores, factory, defenders, state, bus)

	healthSys := NewHealthSystem(w, stores, bus)
	healthSys.OnDeath(lawn.OnDeath)
	event.Subscribe(bus, func(d event.Death) { state.AddScore(d.Score) })

	collisionSys := NewCollisionSystem(w, stores)
	projectileSys := NewProjectileSystem(w, stores, bus, cfg.BoundX)
	collisionSys.OnPair(projectileSys.HandleCollision)

	runner := coresys.NewRunner()
	runner.Register(NewDispatchSystem(bus))
	runner.Register(NewMovementSystem(stores))
	runner.Register(collisionSys)
	runner.Register(NewAttackerSystem(w, stores, bus, factory, lawn, state, cfg))
	runner.Register(NewShooterSystem(w, stores, factory, cfg))
	runner.Register(NewExplosiveSystem(w, stores, bus))
	runner.Register(NewMeleeSystem(w, stores, bus))
	runner.Register(NewLobberSystem(w, stores, factory))
	runner.Register(NewSupportSystem(w, stores))
	runner.Register(projectileSys)
	runner.Register(NewSunSystem(w, stores, bus, factory, cfg, nil))
	runner.Register(healthSys)
	runner.Register(NewCleanupSystem(w))

	return &rig{
		world:   w,
		stores:  stores,
		bus:     bus,
		state:   state,
		factory: factory,
		lawn:    lawn,
		runner:  runner,
		cfg:     cfg,
	}
}

func (r *rig) tick(n int) {
	for i := 0; i < n; i++ {
		r.runner.Tick(tick)
	}
}

func (r *rig) plant(t *testing.T, archetype string, row, col int) ecs.EntityID {
	t.Helper()
	id, err := r.lawn.Plant(archetype, row, col)
	if err != nil {
		t.Fatalf("plant %s: %v", archetype, err)
	}
	return id
}

// spawnAt creates a stationary attacker at an absolute position in a row.
func (r *rig) spawnAt(archetype string, row int, x float64) ecs.EntityID {
	return r.factory.CreateAttacker(archetype, x, rowCenterY(r.cfg, row), row, 1, 1)
}
