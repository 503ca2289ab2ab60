package data

import (
	"testing"

	"github.com/gardenward/sim/internal/component"
)

const defenderYAML = `
defenders:
  - archetype: shooter
    family: shooter
    cost: 100
    health: 300
    cooldown: 1.4
    projectile: bolt
  - archetype: sparse
    family: none
`

func TestParseDefenderTable(t *testing.T) {
	tbl, err := ParseDefenderTable([]byte(defenderYAML))
	if err != nil {
		t.Fatalf("Expected parse to succeed, got %v", err)
	}
	if tbl.Count() != 2 {
		t.Fatalf("Expected 2 templates, got %d", tbl.Count())
	}
	sh := tbl.Get("shooter")
	if sh == nil {
		t.Fatal("Expected shooter template")
	}
	if sh.Cooldown != 1.4 || sh.Projectile != "bolt" {
		t.Errorf("Expected cooldown 1.4 projectile bolt, got %v %q", sh.Cooldown, sh.Projectile)
	}

	// Zero fields filled with defaults.
	sparse := tbl.Get("sparse")
	if sparse.Health != DefaultDefender.Health {
		t.Errorf("Expected default health %d, got %d", DefaultDefender.Health, sparse.Health)
	}
	if sparse.Width != DefaultDefender.Width || sparse.Height != DefaultDefender.Height {
		t.Errorf("Expected default box, got %vx%v", sparse.Width, sparse.Height)
	}
}

func TestParseDefenderTableBadFamily(t *testing.T) {
	_, err := ParseDefenderTable([]byte("defenders:\n  - archetype: x\n    family: wizard\n"))
	if err == nil {
		t.Fatal("Expected error for unknown family")
	}
}

func TestDefenderGetOrDefault(t *testing.T) {
	tbl, err := ParseDefenderTable([]byte(defenderYAML))
	if err != nil {
		t.Fatal(err)
	}
	got := tbl.GetOrDefault("never_heard_of_it")
	if got.Archetype != "unknown" {
		t.Errorf("Expected fallback template, got %q", got.Archetype)
	}
}

func TestParseDefenderFamily(t *testing.T) {
	tests := []struct {
		in      string
		want    component.DefenderFamily
		wantErr bool
	}{
		{"", component.FamilyNone, false},
		{"none", component.FamilyNone, false},
		{"shooter", component.FamilyShooter, false},
		{"explosive", component.FamilyExplosive, false},
		{"melee", component.FamilyMelee, false},
		{"lobber", component.FamilyLobber, false},
		{"support", component.FamilySupport, false},
		{"wizard", component.FamilyNone, true},
	}
	for _, tt := range tests {
		got, err := ParseDefenderFamily(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseDefenderFamily(%q): unexpected error state %v", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("ParseDefenderFamily(%q): expected %v, got %v", tt.in, tt.want, got)
		}
	}
}

func TestParseAttackerTableDefaults(t *testing.T) {
	raw := `
attackers:
  - archetype: walker
    health: 200
    speed: 20
  - archetype: bucket_walker
    health: 200
    speed: 20
    armor: 1100
    magnetic: true
`
	tbl, err := ParseAttackerTable([]byte(raw))
	if err != nil {
		t.Fatalf("Expected parse to succeed, got %v", err)
	}
	w := tbl.Get("walker")
	if w.Cooldown != DefaultAttacker.Cooldown {
		t.Errorf("Expected default cooldown %v, got %v", DefaultAttacker.Cooldown, w.Cooldown)
	}
	if w.Range != DefaultAttacker.Range {
		t.Errorf("Expected default range %v, got %v", DefaultAttacker.Range, w.Range)
	}
	b := tbl.Get("bucket_walker")
	if b.Armor != 1100 || !b.Magnetic {
		t.Errorf("Expected armored magnetic template, got armor=%d magnetic=%v", b.Armor, b.Magnetic)
	}
	if got := tbl.GetOrDefault("nope"); got.Archetype != "unknown" {
		t.Errorf("Expected fallback template, got %q", got.Archetype)
	}
}

func TestParseProjectileTableDefaults(t *testing.T) {
	raw := `
projectiles:
  - archetype: frost_bolt
    damage: 20
    speed: 300
    applies_slow: true
`
	tbl, err := ParseProjectileTable([]byte(raw))
	if err != nil {
		t.Fatalf("Expected parse to succeed, got %v", err)
	}
	p := tbl.Get("frost_bolt")
	if p.SlowFactor != 0.5 || p.SlowDuration != 3.0 {
		t.Errorf("Expected slow defaults 0.5/3.0, got %v/%v", p.SlowFactor, p.SlowDuration)
	}
	if p.Lifetime != DefaultProjectile.Lifetime {
		t.Errorf("Expected default lifetime %v, got %v", DefaultProjectile.Lifetime, p.Lifetime)
	}
}

func TestParseProjectileTableNegativeSpeed(t *testing.T) {
	_, err := ParseProjectileTable([]byte("projectiles:\n  - archetype: x\n    speed: -1\n"))
	if err == nil {
		t.Fatal("Expected error for negative speed")
	}
}

func TestParseLevelTable(t *testing.T) {
	raw := `
levels:
  - level: 1
    waves:
      - delay: 10.0
        spawns:
          - { archetype: walker, count: 3 }
      - delay: 30.0
        spawns:
          - { archetype: walker, count: 2 }
          - { archetype: cone_walker, count: 1 }
`
	tbl, err := ParseLevelTable([]byte(raw))
	if err != nil {
		t.Fatalf("Expected parse to succeed, got %v", err)
	}
	if tbl.Count() != 1 {
		t.Fatalf("Expected 1 level, got %d", tbl.Count())
	}
	l := tbl.Get(1)
	if l == nil || len(l.Waves) != 2 {
		t.Fatalf("Expected 2 waves, got %+v", l)
	}
	if l.Waves[1].Spawns[1].Archetype != "cone_walker" {
		t.Errorf("Expected cone_walker, got %q", l.Waves[1].Spawns[1].Archetype)
	}
	if tbl.Get(99) != nil {
		t.Error("Expected nil for unknown level")
	}
}

func TestParseLevelTableRejectsZeroCount(t *testing.T) {
	raw := `
levels:
  - level: 1
    waves:
      - delay: 10.0
        spawns:
          - { archetype: walker, count: 0 }
`
	if _, err := ParseLevelTable([]byte(raw)); err == nil {
		t.Fatal("Expected error for zero spawn count")
	}
}
