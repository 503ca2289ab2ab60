package system

import (
	"github.com/gardenward/sim/internal/component"
	"github.com/gardenward/sim/internal/config"
	"github.com/gardenward/sim/internal/core/ecs"
)

// Shared target-scan helpers. An entity already marked for destruction this
// tick is still component-complete but no longer a valid target; scans skip
// it, as they skip attackers tunneling below the field.

func rowCenterY(cfg config.FieldConfig, row int) float64 {
	return cfg.OriginY + (float64(row)+0.5)*cfg.CellHeight
}

func targetable(w *ecs.World, stores *component.Stores, id ecs.EntityID) bool {
	if w.PendingDestroy(id) {
		return false
	}
	h, ok := stores.Health.Get(id)
	if !ok || h.Dead() {
		return false
	}
	if a, ok := stores.Attacker.Get(id); ok && a.Digs && !a.Surfaced {
		return false
	}
	return true
}

// attackerInRow reports whether any targetable attacker occupies a row.
func attackerInRow(w *ecs.World, stores *component.Stores, row int) bool {
	for _, id := range w.Query(component.KindAttacker, component.KindTransform, component.KindGridCell) {
		cell, _ := stores.GridCell.Get(id)
		if cell.Row == row && targetable(w, stores, id) {
			return true
		}
	}
	return false
}

// nearestAttackerInRow returns the targetable attacker in a row nearest to
// x, with its signed offset dx = attackerX - x.
func nearestAttackerInRow(w *ecs.World, stores *component.Stores, row int, x float64) (ecs.EntityID, float64, bool) {
	var (
		best     ecs.EntityID
		bestDX   float64
		bestDist float64
		found    bool
	)
	for _, id := range w.Query(component.KindAttacker, component.KindTransform, component.KindGridCell) {
		cell, _ := stores.GridCell.Get(id)
		if cell.Row != row || !targetable(w, stores, id) {
			continue
		}
		tr, _ := stores.Transform.Get(id)
		dx := tr.X - x
		dist := dx
		if dist < 0 {
			dist = -dist
		}
		if !found || dist < bestDist {
			best, bestDX, bestDist, found = id, dx, dist, true
		}
	}
	return best, bestDX, found
}

// nearestDefenderInRow returns the defender in a row nearest to x, with its
// signed offset dx = x - defenderX (positive means the defender is toward
// the defended edge).
func nearestDefenderInRow(w *ecs.World, stores *component.Stores, row int, x float64) (ecs.EntityID, float64, bool) {
	var (
		best     ecs.EntityID
		bestDX   float64
		bestDist float64
		found    bool
	)
	for _, id := range w.Query(component.KindDefender, component.KindTransform, component.KindGridCell) {
		if w.PendingDestroy(id) {
			continue
		}
		if h, ok := stores.Health.Get(id); !ok || h.Dead() {
			continue
		}
		cell, _ := stores.GridCell.Get(id)
		if cell.Row != row {
			continue
		}
		tr, _ := stores.Transform.Get(id)
		dx := x - tr.X
		dist := dx
		if dist < 0 {
			dist = -dist
		}
		if !found || dist < bestDist {
			best, bestDX, bestDist, found = id, dx, dist, true
		}
	}
	return best, bestDX, found
}
