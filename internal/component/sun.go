package component

// SunProducer drives currency production. On a defender it spawns a pickup
// every Interval seconds at the defender's position, independent of the
// attack state machine. On a pickup entity it carries the collectable
// amount and a despawn lifetime.
type SunProducer struct {
	Amount      int
	Interval    float64
	Left        float64
	Auto        bool    // sky-dropped rather than produced by a defender
	RestY       float64 // sky drops fall until here, then sit
	Collectable bool
	LifeLeft    float64 // counts down once the pickup is at rest
}
