package game

import (
	"fmt"

	"github.com/gardenward/sim/internal/component"
	"github.com/gardenward/sim/internal/config"
	"github.com/gardenward/sim/internal/core/ecs"
	"github.com/gardenward/sim/internal/core/event"
	"github.com/gardenward/sim/internal/data"
)

// Lawn is the planting subsystem: the sole mutator of cell occupancy.
// Behavior systems read GridCell components; every occupancy change goes
// through Plant or the death callback.
type Lawn struct {
	cfg     config.FieldConfig
	stores  *component.Stores
	factory Factory
	table   *data.DefenderTable
	state   *State
	bus     *event.Bus

	cells [][]ecs.EntityID // 0 = empty
}

func NewLawn(cfg config.FieldConfig, stores *component.Stores, factory Factory,
	table *data.DefenderTable, state *State, bus *event.Bus) *Lawn {
	cells := make([][]ecs.EntityID, cfg.Rows)
	for r := range cells {
		cells[r] = make([]ecs.EntityID, cfg.Cols)
	}
	return &Lawn{
		cfg:     cfg,
		stores:  stores,
		factory: factory,
		table:   table,
		state:   state,
		bus:     bus,
		cells:   cells,
	}
}

// CellCenter returns the field coordinates of a cell's center.
func (l *Lawn) CellCenter(row, col int) (float64, float64) {
	x := l.cfg.OriginX + (float64(col)+0.5)*l.cfg.CellWidth
	y := l.cfg.OriginY + (float64(row)+0.5)*l.cfg.CellHeight
	return x, y
}

// Occupied reports whether a cell currently holds a defender.
func (l *Lawn) Occupied(row, col int) bool {
	if !l.inBounds(row, col) {
		return false
	}
	return !l.cells[row][col].IsZero()
}

// At returns the defender occupying a cell, or zero.
func (l *Lawn) At(row, col int) ecs.EntityID {
	if !l.inBounds(row, col) {
		return 0
	}
	return l.cells[row][col]
}

// Plant places a defender in a cell, debiting its sun cost. It fails on an
// out-of-bounds cell, an occupied cell, or an unaffordable cost — the three
// conditions the caller (UI collaborator) surfaces to the player.
func (l *Lawn) Plant(archetype string, row, col int) (ecs.EntityID, error) {
	if !l.inBounds(row, col) {
		return 0, fmt.Errorf("plant %s: cell (%d,%d) out of bounds", archetype, row, col)
	}
	if !l.cells[row][col].IsZero() {
		return 0, fmt.Errorf("plant %s: cell (%d,%d) occupied", archetype, row, col)
	}
	cost := l.table.GetOrDefault(archetype).Cost
	if !l.state.SpendSun(cost) {
		return 0, fmt.Errorf("plant %s: need %d sun, have %d", archetype, cost, l.state.Sun())
	}
	x, y := l.CellCenter(row, col)
	id := l.factory.CreateDefender(archetype, x, y, row, col)
	l.cells[row][col] = id
	event.Emit(l.bus, event.DefenderPlanted{Entity: id, Row: row, Col: col})
	return id, nil
}

// OnDeath is the dependent-tracking death callback: when a defender dies,
// its cell opens up again. Registered with the health system so it runs
// before the sweep, while the GridCell is still readable.
func (l *Lawn) OnDeath(id ecs.EntityID) {
	cell, ok := l.stores.GridCell.Get(id)
	if !ok || !cell.Occupied {
		return
	}
	if l.inBounds(cell.Row, cell.Col) && l.cells[cell.Row][cell.Col] == id {
		l.cells[cell.Row][cell.Col] = 0
	}
}

// Release clears a cell without killing its occupant. Used by the snatcher
// overlay when it lifts a defender off the field.
func (l *Lawn) Release(id ecs.EntityID) {
	l.OnDeath(id)
}

func (l *Lawn) inBounds(row, col int) bool {
	return row >= 0 && row < l.cfg.Rows && col >= 0 && col < l.cfg.Cols
}

// Rows returns the lane count.
func (l *Lawn) Rows() int { return l.cfg.Rows }

// CollectSun transfers a collectable pickup's amount to the sun balance and
// marks the pickup for destruction. Called by the input collaborator.
func CollectSun(w *ecs.World, stores *component.Stores, state *State, id ecs.EntityID) bool {
	sp, ok := stores.SunProducer.Get(id)
	if !ok || !sp.Collectable {
		return false
	}
	state.AddSun(sp.Amount)
	w.MarkForDestruction(id)
	return true
}
