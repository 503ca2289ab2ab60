package event

import "github.com/gardenward/sim/internal/core/ecs"

// Notification boundary consumed by audio/visual-effect collaborators.
// The core emits these and never waits on a consumer.

// Damage is emitted whenever an entity takes a point of resolved damage.
type Damage struct {
	X, Y   float64
	Amount int
	Kind   string // "projectile", "blast", "bite", "spike", "chew"
	Target ecs.EntityID
}

// Explosion is emitted by detonating explosives and splash impacts.
type Explosion struct {
	X, Y   float64
	Radius float64
	Damage int
	Kind   string // "bomb", "mine", "mortar"
}

// Death is emitted by the health system before the tick-end sweep, so
// handlers may still read the dying entity's components.
type Death struct {
	Entity ecs.EntityID
	Score  int
}

// SunDropped signals a currency pickup spawn at a producer's position.
type SunDropped struct {
	X, Y   float64
	Amount int
	Auto   bool
}

// WaveStarted marks a wave's spawn list becoming the active queue.
type WaveStarted struct {
	Level int
	Index int
}

// DefenderPlanted is emitted by the lawn when a cell becomes occupied.
type DefenderPlanted struct {
	Entity   ecs.EntityID
	Row, Col int
}

// AttackerBreached is emitted when an attacker crosses the defended edge.
type AttackerBreached struct {
	Entity ecs.EntityID
	Row    int
}
