package component

import "github.com/gardenward/sim/internal/core/ecs"

// AttackerArchetype names an attacker configuration record.
type AttackerArchetype string

const (
	AtkWalker       AttackerArchetype = "walker"
	AtkConeWalker   AttackerArchetype = "cone_walker"
	AtkBucketWalker AttackerArchetype = "bucket_walker"
	AtkRunner       AttackerArchetype = "runner"
	AtkBrute        AttackerArchetype = "brute"
	AtkVaulter      AttackerArchetype = "vaulter"
	AtkDoorWalker   AttackerArchetype = "door_walker"
	AtkCharger      AttackerArchetype = "charger"
	AtkDrummer      AttackerArchetype = "drummer"
	AtkEscort       AttackerArchetype = "escort"
	AtkFloater      AttackerArchetype = "floater"
	AtkDigger       AttackerArchetype = "digger"
	AtkHopper       AttackerArchetype = "hopper"
	AtkSnatcher     AttackerArchetype = "snatcher"
)

// Attacker holds an attacking unit's behavior state. The default machine is
// walk / halt-and-chew; archetype overlays (vault, escort summon, dig,
// steal) layer on top, each gated by its own one-shot flag or timer.
type Attacker struct {
	Archetype AttackerArchetype

	Damage       int
	Cooldown     float64
	CooldownLeft float64
	Range        float64
	Score        int
	Chewing      bool

	// Slow status; expiry resets the velocity multiplier to 1.
	SlowLeft float64

	// One-shot overlays
	HasPole        bool // vault capability still unspent
	Vaulted        bool
	SummonsEscorts bool
	Summoned       bool
	Digs           bool
	Surfaced       bool

	// Accumulated-timer steal (inert until the timer elapses)
	Steals     bool
	StealAfter float64
	StealTimer float64
	Stolen     ecs.EntityID

	Flying bool
}

// Slow applies a slow status: factor goes to the velocity multiplier,
// duration to the countdown this component owns.
func (a *Attacker) Slow(v *Velocity, factor, duration float64) {
	v.Multiplier = factor
	a.SlowLeft = duration
}
