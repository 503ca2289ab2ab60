package system

import "time"

// Phase defines execution ordering within a single tick. Movement runs
// before collision so overlap tests see current positions; behaviors and
// projectile resolution run after collision; the sweep is always last.
type Phase int

const (
	PhaseEvents    Phase = iota // 0: dispatch last tick's events
	PhaseMovement               // 1: integrate velocity into position
	PhaseCollision              // 2: pairwise overlap detection
	PhaseBehavior               // 3: defender/attacker state machines, projectile resolution
	PhaseSpawn                  // 4: wave scheduling, sun production
	PhaseHealth                 // 5: death resolution
	PhaseCleanup                // 6: destroy queued entities
)

// System is the interface every ECS system implements.
type System interface {
	Phase() Phase
	Update(dt time.Duration)
}
