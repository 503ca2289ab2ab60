package config

import (
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
)

type Config struct {
	Sim     SimConfig     `toml:"sim"`
	Field   FieldConfig   `toml:"field"`
	Data    DataConfig    `toml:"data"`
	Scripts ScriptsConfig `toml:"scripts"`
	Logging LoggingConfig `toml:"logging"`
	Profile ProfileConfig `toml:"profile"`
}

type SimConfig struct {
	TickRate      time.Duration `toml:"tick_rate"`
	Level         int           `toml:"level"`
	InitialSun    int           `toml:"initial_sun"`
	MaxSun        int           `toml:"max_sun"`
	SpawnInterval time.Duration `toml:"spawn_interval"` // wave queue drain interval
}

// FieldConfig is the lawn geometry. X grows toward the attacker spawn edge;
// attackers breach at x <= 0.
type FieldConfig struct {
	Rows       int     `toml:"rows"`
	Cols       int     `toml:"cols"`
	CellWidth  float64 `toml:"cell_width"`
	CellHeight float64 `toml:"cell_height"`
	OriginX    float64 `toml:"origin_x"`
	OriginY    float64 `toml:"origin_y"`
	SpawnX     float64 `toml:"spawn_x"`
	BoundX     float64 `toml:"bound_x"` // projectiles expire past this
}

type DataConfig struct {
	Dir string `toml:"dir"`
}

type ScriptsConfig struct {
	Dir string `toml:"dir"`
}

type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"` // "json" or "console"
}

type ProfileConfig struct {
	Enabled bool   `toml:"enabled"`
	Mode    string `toml:"mode"` // "cpu" or "mem"
	Path    string `toml:"path"`
}

func Load(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	cfg := defaults()
	if err := toml.Unmarshal(raw, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

func defaults() *Config {
	return &Config{
		Sim: SimConfig{
			TickRate:      50 * time.Millisecond,
			Level:         1,
			InitialSun:    50,
			MaxSun:        9990,
			SpawnInterval: 2 * time.Second,
		},
		Field: FieldConfig{
			Rows:       5,
			Cols:       9,
			CellWidth:  80,
			CellHeight: 100,
			OriginX:    100,
			OriginY:    50,
			SpawnX:     850,
			BoundX:     900,
		},
		Data: DataConfig{
			Dir: "data/yaml",
		},
		Scripts: ScriptsConfig{
			Dir: "scripts",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
		Profile: ProfileConfig{
			Enabled: false,
			Mode:    "cpu",
			Path:    ".",
		},
	}
}
