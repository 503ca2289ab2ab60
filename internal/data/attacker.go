package data

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// AttackerTemplate holds static data for an attacker archetype.
type AttackerTemplate struct {
	Archetype string  `yaml:"archetype"`
	Health    int     `yaml:"health"`
	Speed     float64 `yaml:"speed"` // field units per second, walking left
	Damage    int     `yaml:"damage"`
	Cooldown  float64 `yaml:"cooldown"` // seconds between bites
	Range     float64 `yaml:"range"`    // melee reach in field units
	Width     float64 `yaml:"width"`
	Height    float64 `yaml:"height"`
	Score     int     `yaml:"score"`

	Armor    int  `yaml:"armor,omitempty"`
	Magnetic bool `yaml:"magnetic,omitempty"` // armor removable by support aura

	HasPole        bool    `yaml:"has_pole,omitempty"`
	SummonsEscorts bool    `yaml:"summons_escorts,omitempty"`
	Digs           bool    `yaml:"digs,omitempty"`
	Steals         bool    `yaml:"steals,omitempty"`
	StealAfter     float64 `yaml:"steal_after,omitempty"`
	Flying         bool    `yaml:"flying,omitempty"`
}

// DefaultAttacker is the fallback record for archetypes absent from the
// table; creation falls back to it rather than failing.
var DefaultAttacker = AttackerTemplate{
	Archetype: "unknown",
	Health:    100,
	Speed:     30,
	Damage:    20,
	Cooldown:  1.0,
	Range:     40,
	Width:     50,
	Height:    80,
	Score:     10,
}

type attackerListFile struct {
	Attackers []AttackerTemplate `yaml:"attackers"`
}

// AttackerTable holds all attacker templates indexed by archetype id.
type AttackerTable struct {
	templates map[string]*AttackerTemplate
}

// LoadAttackerTable loads attacker templates from a YAML file.
func LoadAttackerTable(path string) (*AttackerTable, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read attacker_list: %w", err)
	}
	return ParseAttackerTable(raw)
}

// ParseAttackerTable parses attacker templates from YAML bytes.
func ParseAttackerTable(raw []byte) (*AttackerTable, error) {
	var f attackerListFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("parse attacker_list: %w", err)
	}
	t := &AttackerTable{templates: make(map[string]*AttackerTemplate, len(f.Attackers))}
	for i := range f.Attackers {
		a := &f.Attackers[i]
		if a.Health <= 0 {
			a.Health = DefaultAttacker.Health
		}
		if a.Cooldown <= 0 {
			a.Cooldown = DefaultAttacker.Cooldown
		}
		if a.Range <= 0 {
			a.Range = DefaultAttacker.Range
		}
		if a.Width <= 0 {
			a.Width = DefaultAttacker.Width
		}
		if a.Height <= 0 {
			a.Height = DefaultAttacker.Height
		}
		t.templates[a.Archetype] = a
	}
	return t, nil
}

// Get returns an attacker template by archetype id, or nil if not found.
func (t *AttackerTable) Get(archetype string) *AttackerTemplate {
	return t.templates[archetype]
}

// GetOrDefault returns the template, falling back to DefaultAttacker.
func (t *AttackerTable) GetOrDefault(archetype string) *AttackerTemplate {
	if tmpl := t.templates[archetype]; tmpl != nil {
		return tmpl
	}
	return &DefaultAttacker
}

// Count returns the number of loaded templates.
func (t *AttackerTable) Count() int {
	return len(t.templates)
}
