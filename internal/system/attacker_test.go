package system

import (
	"testing"

	"github.com/gardenward/sim/internal/core/event"
)

func TestAttackerChewsObstacle(t *testing.T) {
	r := newRig(t)
	wall := r.plant(t, "barricade", 2, 6)
	wtr, _ := r.stores.Transform.Get(wall)
	walker := r.spawnAt("walker", 2, wtr.X+31)

	// Bites land on the 0.5s cooldown: ticks 1, 11, 21.
	r.tick(21)
	wh, _ := r.stores.Health.Get(wall)
	if wh.Current != 3940 {
		t.Errorf("Expected 3 bites for 60, got health %d", wh.Current)
	}
	a, _ := r.stores.Attacker.Get(walker)
	v, _ := r.stores.Velocity.Get(walker)
	if !a.Chewing || v.DirX != 0 {
		t.Errorf("Expected halted and chewing, got chewing=%v dir=%v", a.Chewing, v.DirX)
	}
}

func TestAttackerResumesWhenObstacleDies(t *testing.T) {
	r := newRig(t)
	wall := r.plant(t, "barricade", 2, 6)
	wtr, _ := r.stores.Transform.Get(wall)
	walker := r.spawnAt("walker", 2, wtr.X+20)

	r.tick(1)
	wh, _ := r.stores.Health.Get(wall)
	wh.Current = 0
	r.tick(1)

	v, _ := r.stores.Velocity.Get(walker)
	if v.DirX != -1 {
		t.Errorf("Expected walker to resume after the obstacle died, got dir %v", v.DirX)
	}
	if r.lawn.Occupied(2, 6) {
		t.Error("Expected eaten-through cell freed")
	}
}

func TestFrostSlowAppliesAndExpires(t *testing.T) {
	r := newRig(t)
	target := r.spawnAt("dummy", 1, 400)
	r.factory.CreateProjectile("frost_bolt", 400, rowCenterY(r.cfg, 1), 1)

	r.tick(1)
	v, _ := r.stores.Velocity.Get(target)
	if v.Multiplier != 0.5 {
		t.Fatalf("Expected half-speed multiplier after frost hit, got %v", v.Multiplier)
	}
	a, _ := r.stores.Attacker.Get(target)
	if a.SlowLeft <= 0 {
		t.Fatal("Expected slow countdown running")
	}

	// 3s slow drains over the following 60 ticks.
	r.tick(65)
	v, _ = r.stores.Velocity.Get(target)
	if v.Multiplier != 1 {
		t.Errorf("Expected multiplier restored after expiry, got %v", v.Multiplier)
	}
}

func TestBreachHaltsAndReportsOnce(t *testing.T) {
	r := newRig(t)
	breaches := 0
	event.Subscribe(r.bus, func(event.AttackerBreached) { breaches++ })

	first := r.spawnAt("walker", 0, 1)
	r.spawnAt("walker", 1, 1)

	r.tick(1)
	if !r.state.Breached() {
		t.Fatal("Expected breached state at the defended edge")
	}
	v, _ := r.stores.Velocity.Get(first)
	if v.DirX != 0 {
		t.Errorf("Expected breacher halted, got dir %v", v.DirX)
	}

	r.tick(2)
	if breaches != 1 {
		t.Errorf("Expected a single breach report, got %d", breaches)
	}
}

func TestVaulterClearsObstacleOnce(t *testing.T) {
	r := newRig(t)
	wall := r.plant(t, "barricade", 3, 5)
	wtr, _ := r.stores.Transform.Get(wall)
	vaulter := r.spawnAt("vaulter", 3, wtr.X+31)

	r.tick(1)
	a, _ := r.stores.Attacker.Get(vaulter)
	tr, _ := r.stores.Transform.Get(vaulter)
	v, _ := r.stores.Velocity.Get(vaulter)
	if !a.Vaulted || a.HasPole {
		t.Fatalf("Expected vault spent, got vaulted=%v pole=%v", a.Vaulted, a.HasPole)
	}
	if tr.X != wtr.X-120 {
		t.Errorf("Expected landing at %v, got %v", wtr.X-120, tr.X)
	}
	if v.BaseSpeed != 15 {
		t.Errorf("Expected reduced base speed 15, got %v", v.BaseSpeed)
	}

	wh, _ := r.stores.Health.Get(wall)
	if wh.Current != 4000 {
		t.Errorf("Expected vault to leave the obstacle intact, got %d", wh.Current)
	}
}

func TestSnatcherLiftsDefender(t *testing.T) {
	r := newRig(t)
	prey := r.plant(t, "sunflower", 1, 4)
	ptr, _ := r.stores.Transform.Get(prey)
	snatcher := r.spawnAt("snatcher", 1, ptr.X+50)

	// 0.2s steal timer elapses on the fourth tick.
	r.tick(6)
	if r.world.Alive(prey) {
		t.Error("Expected stolen defender removed")
	}
	if r.world.Alive(snatcher) {
		t.Error("Expected snatcher to leave with its prize")
	}
	if r.lawn.Occupied(1, 4) {
		t.Error("Expected stolen defender's cell freed")
	}
	if r.state.Score() != 0 {
		t.Errorf("Expected no score for a theft, got %d", r.state.Score())
	}
}

func TestEscortSummonRespectsRowBounds(t *testing.T) {
	r := newRig(t)
	r.spawnAt("drummer", 0, 700)
	r.tick(1)
	if n := r.stores.Attacker.Len(); n != 2 {
		t.Errorf("Expected edge-row summoner plus 1 escort, got %d attackers", n)
	}

	r2 := newRig(t)
	r2.spawnAt("drummer", 2, 700)
	r2.tick(1)
	if n := r2.stores.Attacker.Len(); n != 3 {
		t.Errorf("Expected middle-row summoner plus 2 escorts, got %d attackers", n)
	}
}

func TestEscortSummonFiresOnce(t *testing.T) {
	r := newRig(t)
	r.spawnAt("drummer", 2, 700)
	r.tick(10)
	if n := r.stores.Attacker.Len(); n != 3 {
		t.Errorf("Expected one-shot summon, got %d attackers", n)
	}
}

func TestDiggerSurfacesPastTunnelEnd(t *testing.T) {
	r := newRig(t)
	digger := r.spawnAt("digger", 4, 205)

	// Moving at 25u/s the tunnel end is crossed within 4 ticks.
	r.tick(5)
	a, _ := r.stores.Attacker.Get(digger)
	if !a.Surfaced {
		t.Fatal("Expected digger surfaced past the tunnel end")
	}
	hb, _ := r.stores.HitBox.Get(digger)
	if !hb.Active {
		t.Error("Expected hit box active after surfacing")
	}
	tr, _ := r.stores.Transform.Get(digger)
	if tr.X > 100 || tr.X < 95 {
		t.Errorf("Expected digger walking on from the surface point, got x %v", tr.X)
	}
}

func TestDiggerUntouchableUnderground(t *testing.T) {
	r := newRig(t)
	digger := r.spawnAt("digger", 0, 700)
	r.factory.CreateProjectile("bolt", 700, rowCenterY(r.cfg, 0), 0)

	r.tick(1)
	h, _ := r.stores.Health.Get(digger)
	if h.Current != 270 {
		t.Errorf("Expected underground digger unhit, got health %d", h.Current)
	}
}
