package data

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// SpawnGroup is one (archetype, count) tuple inside a wave.
type SpawnGroup struct {
	Archetype string `yaml:"archetype"`
	Count     int    `yaml:"count"`
}

// Wave is a time-gated batch of attackers. Delay is measured from level
// start. Authoring data is assumed strictly increasing in delay; this is
// not enforced at runtime.
type Wave struct {
	Delay  float64      `yaml:"delay"`
	Spawns []SpawnGroup `yaml:"spawns"`
}

// LevelScript is the ordered wave timeline of one level.
type LevelScript struct {
	Level int    `yaml:"level"`
	Waves []Wave `yaml:"waves"`
}

type levelListFile struct {
	Levels []LevelScript `yaml:"levels"`
}

// LevelTable holds all wave timelines indexed by level number.
type LevelTable struct {
	levels map[int]*LevelScript
}

// LoadLevelTable loads level wave timelines from a YAML file.
func LoadLevelTable(path string) (*LevelTable, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read level_list: %w", err)
	}
	return ParseLevelTable(raw)
}

// ParseLevelTable parses level timelines from YAML bytes.
func ParseLevelTable(raw []byte) (*LevelTable, error) {
	var f levelListFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("parse level_list: %w", err)
	}
	t := &LevelTable{levels: make(map[int]*LevelScript, len(f.Levels))}
	for i := range f.Levels {
		l := &f.Levels[i]
		for _, w := range l.Waves {
			for _, g := range w.Spawns {
				if g.Count <= 0 {
					return nil, fmt.Errorf("level %d: spawn count %d for %q", l.Level, g.Count, g.Archetype)
				}
			}
		}
		t.levels[l.Level] = l
	}
	return t, nil
}

// Get returns a level script by number, or nil if not found.
func (t *LevelTable) Get(level int) *LevelScript {
	return t.levels[level]
}

// Count returns the number of loaded levels.
func (t *LevelTable) Count() int {
	return len(t.levels)
}
