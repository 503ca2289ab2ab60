package system

import (
	"time"

	"github.com/gardenward/sim/internal/core/event"
	coresys "github.com/gardenward/sim/internal/core/system"
)

// DispatchSystem rotates the event bus at tick start: everything emitted
// last tick becomes visible to this tick's handlers. Phase 0 (Events).
type DispatchSystem struct {
	bus *event.Bus
}

func NewDispatchSystem(bus *event.Bus) *DispatchSystem {
	return &DispatchSystem{bus: bus}
}

func (s *DispatchSystem) Phase() coresys.Phase { return coresys.PhaseEvents }

func (s *DispatchSystem) Update(_ time.Duration) {
	s.bus.SwapBuffers()
	s.bus.DispatchAll()
}
