package data

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ProjectileTemplate holds static data for a projectile archetype.
type ProjectileTemplate struct {
	Archetype string  `yaml:"archetype"`
	Damage    int     `yaml:"damage"`
	Speed     float64 `yaml:"speed"`
	Width     float64 `yaml:"width"`
	Height    float64 `yaml:"height"`

	Splash       bool    `yaml:"splash,omitempty"`
	SplashRadius float64 `yaml:"splash_radius,omitempty"`
	AppliesSlow  bool    `yaml:"applies_slow,omitempty"`
	SlowFactor   float64 `yaml:"slow_factor,omitempty"`
	SlowDuration float64 `yaml:"slow_duration,omitempty"`
	Pierce       int     `yaml:"pierce,omitempty"`
	Lifetime     float64 `yaml:"lifetime,omitempty"`
}

// DefaultProjectile is the fallback record for unknown archetypes.
var DefaultProjectile = ProjectileTemplate{
	Archetype: "unknown",
	Damage:    20,
	Speed:     300,
	Width:     15,
	Height:    15,
	Lifetime:  5,
}

type projectileListFile struct {
	Projectiles []ProjectileTemplate `yaml:"projectiles"`
}

// ProjectileTable holds all projectile templates indexed by archetype id.
type ProjectileTable struct {
	templates map[string]*ProjectileTemplate
}

// LoadProjectileTable loads projectile templates from a YAML file.
func LoadProjectileTable(path string) (*ProjectileTable, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read projectile_list: %w", err)
	}
	return ParseProjectileTable(raw)
}

// ParseProjectileTable parses projectile templates from YAML bytes.
func ParseProjectileTable(raw []byte) (*ProjectileTable, error) {
	var f projectileListFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("parse projectile_list: %w", err)
	}
	t := &ProjectileTable{templates: make(map[string]*ProjectileTemplate, len(f.Projectiles))}
	for i := range f.Projectiles {
		p := &f.Projectiles[i]
		if p.Speed < 0 {
			return nil, fmt.Errorf("projectile %q: negative speed", p.Archetype)
		}
		if p.Width <= 0 {
			p.Width = DefaultProjectile.Width
		}
		if p.Height <= 0 {
			p.Height = DefaultProjectile.Height
		}
		if p.Lifetime <= 0 {
			p.Lifetime = DefaultProjectile.Lifetime
		}
		if p.SlowFactor <= 0 {
			p.SlowFactor = 0.5
		}
		if p.SlowDuration <= 0 {
			p.SlowDuration = 3.0
		}
		t.templates[p.Archetype] = p
	}
	return t, nil
}

// Get returns a projectile template by archetype id, or nil if not found.
func (t *ProjectileTable) Get(archetype string) *ProjectileTemplate {
	return t.templates[archetype]
}

// GetOrDefault returns the template, falling back to DefaultProjectile.
func (t *ProjectileTable) GetOrDefault(archetype string) *ProjectileTemplate {
	if tmpl := t.templates[archetype]; tmpl != nil {
		return tmpl
	}
	return &DefaultProjectile
}

// Count returns the number of loaded templates.
func (t *ProjectileTable) Count() int {
	return len(t.templates)
}
