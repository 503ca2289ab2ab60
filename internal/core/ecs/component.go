package ecs

// Kind identifies a component type for conjunctive queries. Kinds are small
// integers (< 64) assigned by the game layer when it registers its stores.
type Kind uint8

// MaxKinds bounds the kind space; a query key is a uint64 bitmask.
const MaxKinds = 64

// anyStore is the type-erased view the World keeps of every registered
// store: bulk removal on destroy plus the id-set operations queries need.
type anyStore interface {
	Remove(id EntityID)
	Has(id EntityID) bool
	Len() int
	eachID(fn func(EntityID))
}

// Store is a generic typed map store for ECS components.
// No reflect, no interface{} — pure generics. Every structural mutation
// bumps the owning World's version so cached query results are invalidated.
type Store[T any] struct {
	world *World
	data  map[EntityID]*T
}

// NewStore creates a store for kind and registers it with the world.
// Registering the same kind twice is a programming error and panics.
func NewStore[T any](w *World, kind Kind) *Store[T] {
	s := &Store[T]{
		world: w,
		data:  make(map[EntityID]*T, 256),
	}
	w.register(kind, s)
	return s
}

func (s *Store[T]) Set(id EntityID, c *T) {
	s.data[id] = c
	s.world.bumpVersion()
}

// Get returns the component for id, or (nil, false) when absent. Absence is
// expected during same-tick creation/destruction, never an error.
func (s *Store[T]) Get(id EntityID) (*T, bool) {
	c, ok := s.data[id]
	return c, ok
}

func (s *Store[T]) Remove(id EntityID) {
	if _, ok := s.data[id]; !ok {
		return
	}
	delete(s.data, id)
	s.world.bumpVersion()
}

func (s *Store[T]) Has(id EntityID) bool {
	_, ok := s.data[id]
	return ok
}

func (s *Store[T]) Len() int {
	return len(s.data)
}

func (s *Store[T]) Each(fn func(EntityID, *T)) {
	for id, c := range s.data {
		fn(id, c)
	}
}

func (s *Store[T]) eachID(fn func(EntityID)) {
	for id := range s.data {
		fn(id)
	}
}
