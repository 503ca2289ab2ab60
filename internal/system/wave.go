package system

import (
	"math/rand"
	"time"

	"go.uber.org/zap"

	"github.com/gardenward/sim/internal/component"
	"github.com/gardenward/sim/internal/config"
	"github.com/gardenward/sim/internal/core/ecs"
	"github.com/gardenward/sim/internal/core/event"
	coresys "github.com/gardenward/sim/internal/core/system"
	"github.com/gardenward/sim/internal/data"
	"github.com/gardenward/sim/internal/game"
	"github.com/gardenward/sim/internal/scripting"
)

// WaveSystem runs one level's wave timeline. When a wave's delay elapses
// its spawn list becomes the active queue, which then drains one attacker
// per interval into a random row at the spawn edge. Spawn-time difficulty
// multipliers come from the scripting hook; with no script they are 1.0.
// Phase 4 (Spawn).
type WaveSystem struct {
	world   *ecs.World
	stores  *component.Stores
	factory game.Factory
	bus     *event.Bus
	engine  *scripting.Engine
	cfg     config.FieldConfig
	script  *data.LevelScript
	level   int
	rng     *rand.Rand
	log     *zap.Logger

	spawnEvery float64
	elapsed    float64
	spawnTimer float64
	waveIndex  int
	queue      []data.SpawnGroup
}

func NewWaveSystem(world *ecs.World, stores *component.Stores, factory game.Factory,
	bus *event.Bus, engine *scripting.Engine, cfg config.FieldConfig,
	script *data.LevelScript, level int, spawnEvery time.Duration,
	rng *rand.Rand, log *zap.Logger) *WaveSystem {
	return &WaveSystem{
		world:      world,
		stores:     stores,
		factory:    factory,
		bus:        bus,
		engine:     engine,
		cfg:        cfg,
		script:     script,
		level:      level,
		rng:        rng,
		log:        log,
		spawnEvery: spawnEvery.Seconds(),
	}
}

func (s *WaveSystem) Phase() coresys.Phase { return coresys.PhaseSpawn }

func (s *WaveSystem) Update(dt time.Duration) {
	if s.script == nil {
		return
	}
	sec := dt.Seconds()
	s.elapsed += sec

	for s.waveIndex < len(s.script.Waves) && s.elapsed >= s.script.Waves[s.waveIndex].Delay {
		w := &s.script.Waves[s.waveIndex]
		s.queue = append(s.queue[:0], w.Spawns...)
		event.Emit(s.bus, event.WaveStarted{Level: s.level, Index: s.waveIndex})
		s.engine.OnWaveStart(s.level, s.waveIndex)
		s.log.Info("wave started",
			zap.Int("level", s.level),
			zap.Int("wave", s.waveIndex),
			zap.Int("groups", len(w.Spawns)))
		s.waveIndex++
	}

	s.spawnTimer += sec
	if s.spawnTimer < s.spawnEvery || len(s.queue) == 0 {
		return
	}
	s.spawnTimer = 0

	g := &s.queue[0]
	archetype := g.Archetype
	g.Count--
	if g.Count <= 0 {
		s.queue = s.queue[1:]
	}

	row := s.rng.Intn(s.cfg.Rows)
	scale := s.engine.ScaleSpawn(scripting.SpawnContext{
		Level:     s.level,
		WaveIndex: s.waveIndex - 1,
		Archetype: archetype,
		Elapsed:   s.elapsed,
		Defenders: s.stores.Defender.Len(),
		Attackers: s.stores.Attacker.Len(),
	})
	s.factory.CreateAttacker(archetype, s.cfg.SpawnX, rowCenterY(s.cfg, row), row, scale.SpeedMult, scale.HealthMult)
}

// Complete reports level victory: every wave announced, the spawn queue
// drained, and no attacker left on the field.
func (s *WaveSystem) Complete() bool {
	if s.script == nil {
		return true
	}
	return s.waveIndex >= len(s.script.Waves) &&
		len(s.queue) == 0 &&
		s.stores.Attacker.Len() == 0
}

// Elapsed returns seconds since the level started.
func (s *WaveSystem) Elapsed() float64 { return s.elapsed }
