package component

// ProjectileArchetype names a projectile configuration record.
type ProjectileArchetype string

const (
	ProjBolt        ProjectileArchetype = "bolt"
	ProjFrostBolt   ProjectileArchetype = "frost_bolt"
	ProjMortar      ProjectileArchetype = "mortar"
	ProjFrostMortar ProjectileArchetype = "frost_mortar"
)

// Projectile is a single-hit shot unless Pierce permits surviving N hits.
// LifeLeft counts down in seconds; expiry or crossing the field boundary
// unhit destroys it with no effect.
type Projectile struct {
	Archetype ProjectileArchetype

	Damage       int
	Splash       bool // blast-on-impact area pass
	SplashRadius float64
	AppliesSlow  bool
	SlowFactor   float64
	SlowDuration float64
	Pierce       int
	LifeLeft     float64
}
