package data

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/gardenward/sim/internal/component"
)

// DefenderTemplate holds static data for a defender archetype loaded from
// YAML. Zero fields are filled with defaults at parse time, so systems can
// read templates without re-checking.
type DefenderTemplate struct {
	Archetype string  `yaml:"archetype"`
	Family    string  `yaml:"family"` // none, shooter, explosive, melee, lobber, support
	Cost      int     `yaml:"cost"`
	Health    int     `yaml:"health"`
	Width     float64 `yaml:"width"`
	Height    float64 `yaml:"height"`
	Cooldown  float64 `yaml:"cooldown"`
	Damage    int     `yaml:"damage"`
	Range     float64 `yaml:"range"`

	Projectile string `yaml:"projectile,omitempty"`
	ShotCount  int    `yaml:"shot_count,omitempty"`

	BlastRadius  float64 `yaml:"blast_radius,omitempty"`
	TriggerRange float64 `yaml:"trigger_range,omitempty"`
	ArmTime      float64 `yaml:"arm_time,omitempty"`

	EatTime  float64 `yaml:"eat_time,omitempty"`
	ChewTime float64 `yaml:"chew_time,omitempty"`

	SunAmount   int     `yaml:"sun_amount,omitempty"`
	SunInterval float64 `yaml:"sun_interval,omitempty"`
}

// DefaultDefender is the fallback record for archetypes absent from the
// table: a plain 100-health wall with no behavior. Entity creation never
// fails on a missing archetype.
var DefaultDefender = DefenderTemplate{
	Archetype: "unknown",
	Family:    "none",
	Cost:      100,
	Health:    100,
	Width:     60,
	Height:    80,
}

type defenderListFile struct {
	Defenders []DefenderTemplate `yaml:"defenders"`
}

// DefenderTable holds all defender templates indexed by archetype id.
type DefenderTable struct {
	templates map[string]*DefenderTemplate
}

// LoadDefenderTable loads defender templates from a YAML file.
func LoadDefenderTable(path string) (*DefenderTable, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read defender_list: %w", err)
	}
	return ParseDefenderTable(raw)
}

// ParseDefenderTable parses defender templates from YAML bytes, validating
// families and filling defaults.
func ParseDefenderTable(raw []byte) (*DefenderTable, error) {
	var f defenderListFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("parse defender_list: %w", err)
	}
	t := &DefenderTable{templates: make(map[string]*DefenderTemplate, len(f.Defenders))}
	for i := range f.Defenders {
		d := &f.Defenders[i]
		if _, err := ParseDefenderFamily(d.Family); err != nil {
			return nil, fmt.Errorf("defender %q: %w", d.Archetype, err)
		}
		if d.Health <= 0 {
			d.Health = DefaultDefender.Health
		}
		if d.Width <= 0 {
			d.Width = DefaultDefender.Width
		}
		if d.Height <= 0 {
			d.Height = DefaultDefender.Height
		}
		t.templates[d.Archetype] = d
	}
	return t, nil
}

// Get returns a defender template by archetype id, or nil if not found.
func (t *DefenderTable) Get(archetype string) *DefenderTemplate {
	return t.templates[archetype]
}

// GetOrDefault returns the template, falling back to DefaultDefender.
func (t *DefenderTable) GetOrDefault(archetype string) *DefenderTemplate {
	if tmpl := t.templates[archetype]; tmpl != nil {
		return tmpl
	}
	return &DefaultDefender
}

// Count returns the number of loaded templates.
func (t *DefenderTable) Count() int {
	return len(t.templates)
}

// ParseDefenderFamily maps a yaml family string to its discriminator.
func ParseDefenderFamily(s string) (component.DefenderFamily, error) {
	switch s {
	case "", "none":
		return component.FamilyNone, nil
	case "shooter":
		return component.FamilyShooter, nil
	case "explosive":
		return component.FamilyExplosive, nil
	case "melee":
		return component.FamilyMelee, nil
	case "lobber":
		return component.FamilyLobber, nil
	case "support":
		return component.FamilySupport, nil
	default:
		return component.FamilyNone, fmt.Errorf("unknown defender family %q", s)
	}
}
