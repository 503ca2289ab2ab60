package game

// State is the per-level mutable bookkeeping that is not component data:
// sun balance, score, and the breach flag. Constructed once per level and
// passed explicitly; systems never reach for a global.
type State struct {
	sun      int
	maxSun   int
	score    int
	breached bool
}

func NewState(initialSun, maxSun int) *State {
	return &State{sun: initialSun, maxSun: maxSun}
}

func (s *State) Sun() int { return s.sun }

// AddSun credits collected currency, clamped at the cap.
func (s *State) AddSun(amount int) {
	s.sun += amount
	if s.sun > s.maxSun {
		s.sun = s.maxSun
	}
}

// SpendSun debits cost if affordable and reports success.
func (s *State) SpendSun(cost int) bool {
	if cost > s.sun {
		return false
	}
	s.sun -= cost
	return true
}

func (s *State) Score() int     { return s.score }
func (s *State) AddScore(v int) { s.score += v }
func (s *State) Breached() bool { return s.breached }
func (s *State) MarkBreached()  { s.breached = true }
