package scripting

import (
	"fmt"
	"os"
	"path/filepath"

	lua "github.com/yuin/gopher-lua"
	"go.uber.org/zap"
)

// Engine wraps a single gopher-lua VM for data-driven difficulty tuning.
// Single-goroutine access only (game loop).
type Engine struct {
	vm  *lua.LState
	log *zap.Logger
}

// NewEngine creates a Lua engine and loads all scripts from the given
// directory. A missing directory is not an error; every hook has a Go-side
// fallback.
func NewEngine(scriptsDir string, log *zap.Logger) (*Engine, error) {
	vm := lua.NewState(lua.Options{
		SkipOpenLibs: false,
	})
	vm.SetGlobal("API_VERSION", lua.LNumber(1))

	e := &Engine{vm: vm, log: log}
	if err := e.loadDir(scriptsDir); err != nil {
		vm.Close()
		return nil, fmt.Errorf("load scripts: %w", err)
	}
	return e, nil
}

func (e *Engine) Close() {
	e.vm.Close()
}

// loadDir loads all .lua files in a directory.
func (e *Engine) loadDir(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil // skip missing dirs
		}
		return err
	}
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".lua" {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		if err := e.vm.DoFile(path); err != nil {
			return fmt.Errorf("load %s: %w", path, err)
		}
		e.log.Debug("loaded lua script", zap.String("file", path))
	}
	return nil
}

// SpawnContext is pre-packed data for the scale_spawn hook: which attacker
// is about to spawn, where in the timeline, and how the level is going.
type SpawnContext struct {
	Level     int
	WaveIndex int
	Archetype string
	Elapsed   float64 // seconds since level start
	Defenders int     // living defender count
	Attackers int     // living attacker count
}

// SpawnScale is returned by the Lua scale_spawn function. Both multipliers
// default to 1.0 when the global is missing or errors.
type SpawnScale struct {
	SpeedMult  float64
	HealthMult float64
}

var defaultScale = SpawnScale{SpeedMult: 1.0, HealthMult: 1.0}

// ScaleSpawn calls the Lua scale_spawn function. A nil engine returns the
// defaults, so headless tests need no VM.
func (e *Engine) ScaleSpawn(ctx SpawnContext) SpawnScale {
	if e == nil {
		return defaultScale
	}
	fn := e.vm.GetGlobal("scale_spawn")
	if fn == lua.LNil {
		return defaultScale
	}

	t := e.vm.NewTable()
	t.RawSetString("level", lua.LNumber(ctx.Level))
	t.RawSetString("wave_index", lua.LNumber(ctx.WaveIndex))
	t.RawSetString("archetype", lua.LString(ctx.Archetype))
	t.RawSetString("elapsed", lua.LNumber(ctx.Elapsed))
	t.RawSetString("defenders", lua.LNumber(ctx.Defenders))
	t.RawSetString("attackers", lua.LNumber(ctx.Attackers))

	if err := e.vm.CallByParam(lua.P{
		Fn:      fn,
		NRet:    1,
		Protect: true,
	}, t); err != nil {
		e.log.Error("lua scale_spawn error", zap.Error(err))
		return defaultScale
	}

	result := e.vm.Get(-1)
	e.vm.Pop(1)

	rt, ok := result.(*lua.LTable)
	if !ok {
		e.log.Error("lua scale_spawn returned non-table")
		return defaultScale
	}

	out := defaultScale
	if v := lNum(rt, "speed_mult"); v > 0 {
		out.SpeedMult = v
	}
	if v := lNum(rt, "health_mult"); v > 0 {
		out.HealthMult = v
	}
	return out
}

// OnWaveStart notifies the optional on_wave_start hook. Fire-and-forget;
// errors are logged and swallowed.
func (e *Engine) OnWaveStart(level, waveIndex int) {
	if e == nil {
		return
	}
	fn := e.vm.GetGlobal("on_wave_start")
	if fn == lua.LNil {
		return
	}
	if err := e.vm.CallByParam(lua.P{
		Fn:      fn,
		NRet:    0,
		Protect: true,
	}, lua.LNumber(level), lua.LNumber(waveIndex)); err != nil {
		e.log.Error("lua on_wave_start error", zap.Error(err))
	}
}

func lNum(t *lua.LTable, key string) float64 {
	return float64(lua.LVAsNumber(t.RawGetString(key)))
}
