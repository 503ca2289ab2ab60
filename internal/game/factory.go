package game

import (
	"github.com/gardenward/sim/internal/component"
	"github.com/gardenward/sim/internal/core/ecs"
	"github.com/gardenward/sim/internal/data"
)

// Factory is the entity-creation boundary consumed by the wave, behavior,
// and planting systems. The core implementation below assembles component
// sets from the archetype tables; an outer collaborator may wrap it to
// attach visual/animation state the core does not need.
type Factory interface {
	CreateDefender(archetype string, x, y float64, row, col int) ecs.EntityID
	CreateAttacker(archetype string, x, y float64, row int, speedMult, healthMult float64) ecs.EntityID
	CreateProjectile(archetype string, x, y float64, row int) ecs.EntityID
	CreateSunPickup(x, y float64, amount int, auto bool) ecs.EntityID
}

// EntityFactory builds entities from the static archetype tables. Unknown
// archetypes fall back to the documented default templates; creation never
// fails.
type EntityFactory struct {
	world       *ecs.World
	stores      *component.Stores
	defenders   *data.DefenderTable
	attackers   *data.AttackerTable
	projectiles *data.ProjectileTable
}

func NewEntityFactory(world *ecs.World, stores *component.Stores,
	defenders *data.DefenderTable, attackers *data.AttackerTable,
	projectiles *data.ProjectileTable) *EntityFactory {
	return &EntityFactory{
		world:       world,
		stores:      stores,
		defenders:   defenders,
		attackers:   attackers,
		projectiles: projectiles,
	}
}

func (f *EntityFactory) CreateDefender(archetype string, x, y float64, row, col int) ecs.EntityID {
	tmpl := f.defenders.GetOrDefault(archetype)
	family, _ := data.ParseDefenderFamily(tmpl.Family)

	id := f.world.Create()
	f.stores.Transform.Set(id, &component.Transform{X: x, Y: y})
	f.stores.Health.Set(id, &component.Health{Current: tmpl.Health, Max: tmpl.Health})
	f.stores.HitBox.Set(id, &component.HitBox{
		W:      tmpl.Width,
		H:      tmpl.Height,
		Layer:  component.LayerDefender,
		Mask:   component.LayerAttacker,
		Active: true,
	})
	f.stores.GridCell.Set(id, &component.GridCell{Row: row, Col: col, Occupied: true})

	def := &component.Defender{
		Archetype:    component.DefenderArchetype(tmpl.Archetype),
		Family:       family,
		Damage:       tmpl.Damage,
		Cooldown:     tmpl.Cooldown,
		Range:        tmpl.Range,
		BlastRadius:  tmpl.BlastRadius,
		TriggerRange: tmpl.TriggerRange,
		ArmTime:      tmpl.ArmTime,
		ArmLeft:      tmpl.ArmTime,
		Armed:        tmpl.ArmTime <= 0,
		EatTime:      tmpl.EatTime,
		ChewTime:     tmpl.ChewTime,
		Projectile:   component.ProjectileArchetype(tmpl.Projectile),
		ShotCount:    tmpl.ShotCount,
	}
	if def.ShotCount <= 0 {
		def.ShotCount = 1
	}
	f.stores.Defender.Set(id, def)

	if tmpl.SunInterval > 0 {
		f.stores.SunProducer.Set(id, &component.SunProducer{
			Amount:   tmpl.SunAmount,
			Interval: tmpl.SunInterval,
			Left:     tmpl.SunInterval,
			Auto:     false,
		})
	}
	return id
}

func (f *EntityFactory) CreateAttacker(archetype string, x, y float64, row int, speedMult, healthMult float64) ecs.EntityID {
	tmpl := f.attackers.GetOrDefault(archetype)
	if speedMult <= 0 {
		speedMult = 1
	}
	if healthMult <= 0 {
		healthMult = 1
	}

	id := f.world.Create()
	f.stores.Transform.Set(id, &component.Transform{X: x, Y: y})
	// The spawn-time difficulty multiplier is folded into the base speed;
	// Velocity.Multiplier stays the slow-status channel.
	f.stores.Velocity.Set(id, &component.Velocity{
		DirX:       -1,
		BaseSpeed:  tmpl.Speed * speedMult,
		Multiplier: 1,
	})
	f.stores.Health.Set(id, &component.Health{
		Current:  int(float64(tmpl.Health) * healthMult),
		Max:      int(float64(tmpl.Health) * healthMult),
		Armor:    tmpl.Armor,
		Magnetic: tmpl.Magnetic && tmpl.Armor > 0,
	})
	f.stores.HitBox.Set(id, &component.HitBox{
		W:     tmpl.Width,
		H:     tmpl.Height,
		Layer: component.LayerAttacker,
		// Projectile pairs are consumed from the projectile's side only;
		// admitting both directions would leave pair orientation to map
		// iteration order.
		Mask: component.LayerDefender,
		// Tunnelers stay untouchable until they surface.
		Active: !tmpl.Digs,
	})
	f.stores.GridCell.Set(id, &component.GridCell{Row: row, Col: -1})
	f.stores.Attacker.Set(id, &component.Attacker{
		Archetype:      component.AttackerArchetype(tmpl.Archetype),
		Damage:         tmpl.Damage,
		Cooldown:       tmpl.Cooldown,
		Range:          tmpl.Range,
		Score:          tmpl.Score,
		HasPole:        tmpl.HasPole,
		SummonsEscorts: tmpl.SummonsEscorts,
		Digs:           tmpl.Digs,
		Steals:         tmpl.Steals,
		StealAfter:     tmpl.StealAfter,
		Flying:         tmpl.Flying,
	})
	return id
}

func (f *EntityFactory) CreateProjectile(archetype string, x, y float64, row int) ecs.EntityID {
	tmpl := f.projectiles.GetOrDefault(archetype)

	id := f.world.Create()
	f.stores.Transform.Set(id, &component.Transform{X: x, Y: y})
	f.stores.Velocity.Set(id, &component.Velocity{
		DirX:       1,
		BaseSpeed:  tmpl.Speed,
		Multiplier: 1,
	})
	f.stores.HitBox.Set(id, &component.HitBox{
		W:       tmpl.Width,
		H:       tmpl.Height,
		Layer:   component.LayerProjectile,
		Mask:    component.LayerAttacker,
		Trigger: true,
		Active:  true,
	})
	f.stores.GridCell.Set(id, &component.GridCell{Row: row, Col: -1})
	f.stores.Projectile.Set(id, &component.Projectile{
		Archetype:    component.ProjectileArchetype(tmpl.Archetype),
		Damage:       tmpl.Damage,
		Splash:       tmpl.Splash,
		SplashRadius: tmpl.SplashRadius,
		AppliesSlow:  tmpl.AppliesSlow,
		SlowFactor:   tmpl.SlowFactor,
		SlowDuration: tmpl.SlowDuration,
		Pierce:       tmpl.Pierce,
		LifeLeft:     tmpl.Lifetime,
	})
	return id
}

// CreateSunPickup creates a currency pickup. Sky-dropped pickups (auto)
// fall until the sun system rests them; producer-dropped ones sit where
// the producer left them.
func (f *EntityFactory) CreateSunPickup(x, y float64, amount int, auto bool) ecs.EntityID {
	id := f.world.Create()
	f.stores.Transform.Set(id, &component.Transform{X: x, Y: y})
	f.stores.HitBox.Set(id, &component.HitBox{
		W:       40,
		H:       40,
		Layer:   component.LayerPickup,
		Trigger: true,
		Active:  true,
	})
	if auto {
		f.stores.Velocity.Set(id, &component.Velocity{
			DirY:       1,
			BaseSpeed:  50,
			Multiplier: 1,
		})
	}
	f.stores.SunProducer.Set(id, &component.SunProducer{
		Amount:      amount,
		Auto:        auto,
		Collectable: true,
		LifeLeft:    10,
	})
	return id
}
