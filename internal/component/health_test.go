package component

import "testing"

func TestHealthApplyArmorFirst(t *testing.T) {
	tests := []struct {
		name       string
		health     Health
		damage     int
		wantHP     int
		wantArmor  int
		wantHPLoss int
	}{
		{"No armor", Health{Current: 100, Max: 100}, 30, 70, 0, 30},
		{"Armor absorbs all", Health{Current: 100, Max: 100, Armor: 50}, 30, 100, 20, 0},
		{"Armor breaks through", Health{Current: 100, Max: 100, Armor: 20}, 30, 90, 0, 10},
		{"Exact armor", Health{Current: 100, Max: 100, Armor: 30}, 30, 100, 0, 0},
		{"Zero damage", Health{Current: 100, Max: 100, Armor: 10}, 0, 100, 10, 0},
		{"Negative damage", Health{Current: 100, Max: 100}, -5, 100, 0, 0},
		{"Overkill", Health{Current: 10, Max: 100, Armor: 5}, 50, -35, 0, 45},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := tt.health
			loss := h.Apply(tt.damage)
			if h.Current != tt.wantHP {
				t.Errorf("Expected health %d, got %d", tt.wantHP, h.Current)
			}
			if h.Armor != tt.wantArmor {
				t.Errorf("Expected armor %d, got %d", tt.wantArmor, h.Armor)
			}
			if loss != tt.wantHPLoss {
				t.Errorf("Expected health loss %d, got %d", tt.wantHPLoss, loss)
			}
		})
	}
}

func TestHealthMagneticClearedWithArmor(t *testing.T) {
	h := Health{Current: 100, Max: 100, Armor: 20, Magnetic: true}
	h.Apply(10)
	if !h.Magnetic {
		t.Error("Expected magnetic flag to survive partial armor damage")
	}
	h.Apply(10)
	if h.Armor != 0 {
		t.Fatalf("Expected armor 0, got %d", h.Armor)
	}
	if h.Magnetic {
		t.Error("Expected magnetic flag cleared when armor empties")
	}
}

func TestHealthStripArmor(t *testing.T) {
	h := Health{Current: 100, Max: 100, Armor: 1100, Magnetic: true}
	h.StripArmor()
	if h.Armor != 0 || h.Magnetic {
		t.Errorf("Expected armor stripped, got armor=%d magnetic=%v", h.Armor, h.Magnetic)
	}
	if h.Current != 100 {
		t.Errorf("Expected stripping to leave health alone, got %d", h.Current)
	}
}

func TestHitBoxOverlaps(t *testing.T) {
	a := &HitBox{W: 50, H: 80}
	b := &HitBox{W: 15, H: 15}
	tests := []struct {
		name   string
		ax, ay float64
		bx, by float64
		want   bool
	}{
		{"Same center", 0, 0, 0, 0, true},
		{"Touching edges", 0, 0, 32.5, 0, false},
		{"Just inside", 0, 0, 32.4, 0, true},
		{"Far apart", 0, 0, 200, 0, false},
		{"Vertical miss", 0, 0, 0, 100, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := a.Overlaps(tt.ax, tt.ay, b, tt.bx, tt.by); got != tt.want {
				t.Errorf("Expected overlap %v, got %v", tt.want, got)
			}
		})
	}
}

func TestAttackerSlow(t *testing.T) {
	a := Attacker{}
	v := Velocity{DirX: -1, BaseSpeed: 20, Multiplier: 1}
	a.Slow(&v, 0.5, 3.0)
	if v.Multiplier != 0.5 {
		t.Errorf("Expected multiplier 0.5, got %v", v.Multiplier)
	}
	if a.SlowLeft != 3.0 {
		t.Errorf("Expected slow timer 3.0, got %v", a.SlowLeft)
	}
	if v.BaseSpeed != 20 {
		t.Errorf("Expected base speed untouched, got %v", v.BaseSpeed)
	}
}
