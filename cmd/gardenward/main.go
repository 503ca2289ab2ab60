package main

import (
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/pkg/profile"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/gardenward/sim/internal/component"
	"github.com/gardenward/sim/internal/config"
	"github.com/gardenward/sim/internal/core/ecs"
	"github.com/gardenward/sim/internal/core/event"
	coresys "github.com/gardenward/sim/internal/core/system"
	"github.com/gardenward/sim/internal/data"
	"github.com/gardenward/sim/internal/game"
	"github.com/gardenward/sim/internal/scripting"
	"github.com/gardenward/sim/internal/system"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}
}

// ── Startup display helpers ────────────────────────────────────────

func printBanner(level int) {
	fmt.Println()
	fmt.Println("\033[36;1m  ┌───────────────────────────────────────────┐\033[0m")
	fmt.Println("\033[36;1m  │\033[0m          Gardenward  v0.1.0               \033[36;1m│\033[0m")
	fmt.Println("\033[36;1m  │\033[0m      lane-defense simulation core         \033[36;1m│\033[0m")
	fmt.Println("\033[36;1m  └───────────────────────────────────────────┘\033[0m")
	fmt.Println()
	fmt.Printf("  \033[1mLevel:\033[0m %d\n\n", level)
}

func printSection(title string) {
	lineLen := 46 - len(title) - 1
	if lineLen < 3 {
		lineLen = 3
	}
	fmt.Printf("  \033[33m── %s %s\033[0m\n", title, strings.Repeat("─", lineLen))
}

func printStat(label string, count int) {
	numStr := fmt.Sprintf("%d", count)
	dotsLen := 42 - len(label) - len(numStr)
	if dotsLen < 3 {
		dotsLen = 3
	}
	fmt.Printf("  %s \033[90m%s\033[0m \033[32m%s\033[0m\n", label, strings.Repeat("·", dotsLen), numStr)
}

func printOK(msg string) {
	fmt.Printf("  \033[32m✓\033[0m %s\n", msg)
}

func printReady(msg string) {
	fmt.Printf("  \033[32m▶\033[0m %s\n", msg)
}

// ── Main simulation logic ──────────────────────────────────────────

func run() error {
	// 1. Load config
	cfgPath := "config/sim.toml"
	if p := os.Getenv("GARDENWARD_CONFIG"); p != "" {
		cfgPath = p
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	// 2. Init logger
	log, err := newLogger(cfg.Logging)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer log.Sync()

	printBanner(cfg.Sim.Level)

	// 3. Optional profiling
	if cfg.Profile.Enabled {
		switch cfg.Profile.Mode {
		case "mem":
			defer profile.Start(profile.MemProfile, profile.ProfilePath(cfg.Profile.Path)).Stop()
		default:
			defer profile.Start(profile.CPUProfile, profile.ProfilePath(cfg.Profile.Path)).Stop()
		}
	}

	// 4. Load archetype tables
	printSection("Data")

	defenderTable, err := data.LoadDefenderTable(filepath.Join(cfg.Data.Dir, "defender_list.yaml"))
	if err != nil {
		return fmt.Errorf("load defender table: %w", err)
	}
	printStat("Defender templates", defenderTable.Count())

	attackerTable, err := data.LoadAttackerTable(filepath.Join(cfg.Data.Dir, "attacker_list.yaml"))
	if err != nil {
		return fmt.Errorf("load attacker table: %w", err)
	}
	printStat("Attacker templates", attackerTable.Count())

	projectileTable, err := data.LoadProjectileTable(filepath.Join(cfg.Data.Dir, "projectile_list.yaml"))
	if err != nil {
		return fmt.Errorf("load projectile table: %w", err)
	}
	printStat("Projectile templates", projectileTable.Count())

	levelTable, err := data.LoadLevelTable(filepath.Join(cfg.Data.Dir, "level_list.yaml"))
	if err != nil {
		return fmt.Errorf("load level table: %w", err)
	}
	printStat("Level scripts", levelTable.Count())

	script := levelTable.Get(cfg.Sim.Level)
	if script == nil {
		return fmt.Errorf("level %d not in level table", cfg.Sim.Level)
	}

	// 5. Lua difficulty hooks
	luaEngine, err := scripting.NewEngine(cfg.Scripts.Dir, log)
	if err != nil {
		return fmt.Errorf("lua engine: %w", err)
	}
	defer luaEngine.Close()
	printOK("Lua scripts loaded")
	fmt.Println()

	// 6. World, stores, and game services
	world := ecs.NewWorld()
	stores := component.NewStores(world)
	bus := event.NewBus()
	state := game.NewState(cfg.Sim.InitialSun, cfg.Sim.MaxSun)
	factory := game.NewEntityFactory(world, stores, defenderTable, attackerTable, projectileTable)
	lawn := game.NewLawn(cfg.Field, stores, factory, defenderTable, state, bus)
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	// 7. Systems, in phase order
	healthSys := system.NewHealthSystem(world, stores, bus)
	healthSys.OnDeath(lawn.OnDeath)

	collisionSys := system.NewCollisionSystem(world, stores)
	projectileSys := system.NewProjectileSystem(world, stores, bus, cfg.Field.BoundX)
	collisionSys.OnPair(projectileSys.HandleCollision)

	waveSys := system.NewWaveSystem(world, stores, factory, bus, luaEngine,
		cfg.Field, script, cfg.Sim.Level, cfg.Sim.SpawnInterval, rng, log)

	runner := coresys.NewRunner()
	runner.Register(system.NewDispatchSystem(bus))
	runner.Register(system.NewMovementSystem(stores))
	runner.Register(collisionSys)
	runner.Register(system.NewAttackerSystem(world, stores, bus, factory, lawn, state, cfg.Field))
	runner.Register(system.NewShooterSystem(world, stores, factory, cfg.Field))
	runner.Register(system.NewExplosiveSystem(world, stores, bus))
	runner.Register(system.NewMeleeSystem(world, stores, bus))
	runner.Register(system.NewLobberSystem(world, stores, factory))
	runner.Register(system.NewSupportSystem(world, stores))
	runner.Register(projectileSys)
	runner.Register(waveSys)
	runner.Register(system.NewSunSystem(world, stores, bus, factory, cfg.Field, rng))
	runner.Register(healthSys)
	runner.Register(system.NewCleanupSystem(world))

	// 8. Event consumers
	event.Subscribe(bus, func(d event.Death) {
		state.AddScore(d.Score)
	})
	event.Subscribe(bus, func(b event.AttackerBreached) {
		log.Warn("defended edge breached", zap.Int("row", b.Row))
	})

	// 9. Opening layout: a producer and a shooter per row, while sun lasts.
	// The headless driver has no player; this stands in for one.
	planted := seedLoadout(lawn, state)
	printSection("Field")
	printStat("Opening defenders", planted)
	printStat("Starting sun", state.Sun())
	fmt.Println()

	// 10. Game loop
	shutdownCh := make(chan os.Signal, 1)
	signal.Notify(shutdownCh, syscall.SIGINT, syscall.SIGTERM)

	ticker := time.NewTicker(cfg.Sim.TickRate)
	defer ticker.Stop()

	printSection("Simulation ready")
	printReady(fmt.Sprintf("game loop started (tick: %s)", cfg.Sim.TickRate))
	fmt.Println()

	statusCounter := 0
	statusInterval := int(10 * time.Second / cfg.Sim.TickRate)

	for {
		select {
		case <-ticker.C:
			runner.Tick(cfg.Sim.TickRate)

			collectAllSun(world, stores, state)

			if state.Breached() {
				log.Warn("level lost",
					zap.Int("level", cfg.Sim.Level),
					zap.Int("score", state.Score()),
					zap.Float64("elapsed", waveSys.Elapsed()))
				return nil
			}
			if waveSys.Complete() {
				log.Info("level complete",
					zap.Int("level", cfg.Sim.Level),
					zap.Int("score", state.Score()),
					zap.Float64("elapsed", waveSys.Elapsed()))
				return nil
			}

			statusCounter++
			if statusCounter >= statusInterval {
				statusCounter = 0
				log.Info("status",
					zap.Int("sun", state.Sun()),
					zap.Int("score", state.Score()),
					zap.Int("attackers", stores.Attacker.Len()),
					zap.Int("defenders", stores.Defender.Len()))
			}
		case sig := <-shutdownCh:
			log.Info("shutdown signal received", zap.String("signal", sig.String()))
			return nil
		}
	}
}

// seedLoadout plants the standing-in-for-a-player opening: column 0 gets a
// producer, column 1 a shooter, row by row until sun runs out.
func seedLoadout(lawn *game.Lawn, state *game.State) int {
	planted := 0
	for row := 0; row < lawn.Rows(); row++ {
		if _, err := lawn.Plant(string(component.DefSunflower), row, 0); err == nil {
			planted++
		}
		if _, err := lawn.Plant(string(component.DefShooter), row, 1); err == nil {
			planted++
		}
	}
	return planted
}

// collectAllSun sweeps every collectable pickup into the balance. The
// headless driver auto-collects; an interactive front end would do this per
// click instead.
func collectAllSun(w *ecs.World, stores *component.Stores, state *game.State) {
	for _, id := range w.Query(component.KindSunProducer) {
		if w.PendingDestroy(id) {
			continue
		}
		if sp, ok := stores.SunProducer.Get(id); ok && sp.Collectable {
			game.CollectSun(w, stores, state, id)
		}
	}
}

func newLogger(cfg config.LoggingConfig) (*zap.Logger, error) {
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		level = zapcore.InfoLevel
	}

	var zapCfg zap.Config
	if cfg.Format == "json" {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
		zapCfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		zapCfg.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05")
		zapCfg.EncoderConfig.ConsoleSeparator = "  "
		zapCfg.DisableCaller = true
		zapCfg.DisableStacktrace = true
	}
	zapCfg.Level = zap.NewAtomicLevelAt(level)

	return zapCfg.Build()
}
