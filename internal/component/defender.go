package component

// DefenderArchetype names a defender configuration record. Archetype ids
// are data (yaml table keys), so the type is a string; the closed set below
// is what ships in data/yaml/defender_list.yaml.
type DefenderArchetype string

const (
	DefSunflower     DefenderArchetype = "sunflower"
	DefShooter       DefenderArchetype = "shooter"
	DefFrostShooter  DefenderArchetype = "frost_shooter"
	DefDoubleShooter DefenderArchetype = "double_shooter"
	DefTripleShooter DefenderArchetype = "triple_shooter"
	DefBomb          DefenderArchetype = "bomb"
	DefMine          DefenderArchetype = "mine"
	DefDevourer      DefenderArchetype = "devourer"
	DefSpikeStrip    DefenderArchetype = "spike_strip"
	DefLobber        DefenderArchetype = "lobber"
	DefFrostLobber   DefenderArchetype = "frost_lobber"
	DefMagnet        DefenderArchetype = "magnet"
	DefBarricade     DefenderArchetype = "barricade"
	DefTallBarricade DefenderArchetype = "tall_barricade"
	DefShell         DefenderArchetype = "shell"
)

// DefenderFamily is the behavior-family discriminator deciding which state
// machine drives an archetype.
type DefenderFamily int

const (
	FamilyNone      DefenderFamily = iota // walls, pure producers
	FamilyShooter                         // cooldown-gated row shot
	FamilyExplosive                       // instant or delayed-arm blast
	FamilyMelee                           // lunge-and-chew or contact hazard
	FamilyLobber                          // arcing splash projectile
	FamilySupport                         // passive armor-removal aura
)

// MeleeState is the lunge-and-chew three-state machine.
type MeleeState int

const (
	MeleeIdle MeleeState = iota
	MeleeEating
	MeleeChewing
)

// Defender holds a defending unit's behavior state: cooldowns, the
// arm timer for delayed explosives, and the chew machine for melee units.
// Timers count down in seconds.
type Defender struct {
	Archetype DefenderArchetype
	Family    DefenderFamily

	Damage       int
	Cooldown     float64
	CooldownLeft float64
	Range        float64

	// Explosive family
	BlastRadius  float64
	TriggerRange float64
	ArmTime      float64
	ArmLeft      float64
	Armed        bool

	// Melee family. The contact-hazard damage pulse reuses the cooldown
	// fields as its fixed tick interval.
	State     MeleeState
	StateLeft float64
	EatTime   float64
	ChewTime  float64

	// Shooter/lobber. A slow payload belongs to the projectile archetype,
	// not the firer.
	Projectile ProjectileArchetype
	ShotCount  int
}

// Ready reports whether the attack cooldown has elapsed.
func (d *Defender) Ready() bool { return d.CooldownLeft <= 0 }

// ResetCooldown rearms the attack gate.
func (d *Defender) ResetCooldown() { d.CooldownLeft = d.Cooldown }
