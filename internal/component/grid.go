package component

// GridCell ties a defender to exactly one lawn cell. It is the sole source
// of truth for cell occupancy and is mutated only by the lawn (planting
// subsystem); behavior systems read it. Attackers occupy a row but not a
// column: Col is -1 and Occupied is false.
type GridCell struct {
	Row, Col int
	Occupied bool
}
