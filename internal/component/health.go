package component

// Health is a hit-point pool with an optional armor sub-pool. Incoming
// damage depletes armor first; only the remainder subtracts from health.
// Armor reaching zero permanently clears the Magnetic flag.
type Health struct {
	Current  int
	Max      int
	Armor    int
	Magnetic bool // armor is removable by the support-aura defender
}

// Apply resolves incoming damage against armor then health and returns the
// amount that reached the health pool.
func (h *Health) Apply(damage int) int {
	if damage <= 0 {
		return 0
	}
	if h.Armor > 0 {
		if damage <= h.Armor {
			h.Armor -= damage
			if h.Armor == 0 {
				h.Magnetic = false
			}
			return 0
		}
		damage -= h.Armor
		h.Armor = 0
		h.Magnetic = false
	}
	h.Current -= damage
	return damage
}

// StripArmor zeroes the armor pool without direct damage.
func (h *Health) StripArmor() {
	h.Armor = 0
	h.Magnetic = false
}

func (h *Health) Dead() bool { return h.Current <= 0 }
