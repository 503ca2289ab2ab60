package system

import (
	"sort"
	"time"
)

type entry struct {
	sys     System
	enabled bool
}

// Runner executes systems in phase order each tick. Within a phase, systems
// run in registration order (the sort is stable). A disabled system is
// skipped but keeps its state.
type Runner struct {
	entries []entry
	sorted  bool
}

func NewRunner() *Runner {
	return &Runner{
		entries: make([]entry, 0, 16),
	}
}

func (r *Runner) Register(s System) {
	r.entries = append(r.entries, entry{sys: s, enabled: true})
	r.sorted = false
}

// SetEnabled toggles a registered system. Unknown systems are ignored.
func (r *Runner) SetEnabled(s System, enabled bool) {
	for i := range r.entries {
		if r.entries[i].sys == s {
			r.entries[i].enabled = enabled
			return
		}
	}
}

// Tick runs every enabled system once. A started tick always runs to
// completion; there is no intra-tick suspension or cancellation.
func (r *Runner) Tick(dt time.Duration) {
	r.ensureSorted()
	for _, e := range r.entries {
		if e.enabled {
			e.sys.Update(dt)
		}
	}
}

func (r *Runner) ensureSorted() {
	if !r.sorted {
		sort.SliceStable(r.entries, func(i, j int) bool {
			return r.entries[i].sys.Phase() < r.entries[j].sys.Phase()
		})
		r.sorted = true
	}
}
