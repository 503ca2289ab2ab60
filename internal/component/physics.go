package component

// Transform is an entity's position on the play field, in field units.
// X grows toward the attacker spawn edge.
type Transform struct {
	X, Y float64
}

// Velocity drives the movement system: position advances by
// direction · BaseSpeed · Multiplier · dt each tick. Multiplier is the sole
// channel for slow/haste effects; it defaults to 1.0 and is reset by
// whichever behavior system owns the status timer. The movement system
// itself never mutates it.
type Velocity struct {
	DirX, DirY float64
	BaseSpeed  float64
	Multiplier float64
}

// Collision layers. A may hit B only if B's layer is set in A's mask.
const (
	LayerDefender   uint8 = 1 << 0
	LayerAttacker   uint8 = 1 << 1
	LayerProjectile uint8 = 1 << 2
	LayerPickup     uint8 = 1 << 3
)

// HitBox is an axis-aligned box centered at the entity's Transform.
// Inactive boxes are skipped by the collision system entirely.
type HitBox struct {
	W, H    float64
	Layer   uint8
	Mask    uint8
	Trigger bool // overlap without blocking (projectiles, pickups)
	Active  bool
}

// Overlaps reports AABB overlap between two boxes at the given centers.
func (b *HitBox) Overlaps(x, y float64, o *HitBox, ox, oy float64) bool {
	dx := x - ox
	if dx < 0 {
		dx = -dx
	}
	dy := y - oy
	if dy < 0 {
		dy = -dy
	}
	return dx*2 < b.W+o.W && dy*2 < b.H+o.H
}
