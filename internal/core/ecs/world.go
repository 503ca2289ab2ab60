package ecs

import "fmt"

// World is the top-level ECS container. It owns the entity pool, the
// kind-indexed store table, the deferred destruction queue, and the query
// cache. Entity aliveness is two-state: alive or pending-destroy. A marked
// entity keeps all its components until FlushDestroyQueue runs at tick end,
// so cross-system references stay valid for the remainder of the tick.
type World struct {
	pool         *EntityPool
	stores       [MaxKinds]anyStore
	destroyQueue []EntityID
	pending      map[EntityID]struct{}

	version uint64
	cache   map[uint64]cachedQuery
}

type cachedQuery struct {
	version uint64
	ids     []EntityID
}

func NewWorld() *World {
	return &World{
		pool:         NewEntityPool(),
		destroyQueue: make([]EntityID, 0, 64),
		pending:      make(map[EntityID]struct{}, 64),
		cache:        make(map[uint64]cachedQuery, 16),
	}
}

func (w *World) register(kind Kind, s anyStore) {
	if kind >= MaxKinds {
		panic(fmt.Sprintf("ecs: kind %d out of range", kind))
	}
	if w.stores[kind] != nil {
		panic(fmt.Sprintf("ecs: kind %d registered twice", kind))
	}
	w.stores[kind] = s
}

func (w *World) bumpVersion() {
	w.version++
}

// Version returns the structural version counter. Any component add or
// remove increments it; cached query results are keyed against it.
func (w *World) Version() uint64 { return w.version }

func (w *World) Create() EntityID {
	return w.pool.Create()
}

func (w *World) Alive(id EntityID) bool {
	return w.pool.Alive(id)
}

// PendingDestroy reports whether id has been marked this tick but not yet
// swept. Such entities are alive and queryable, logically on their way out.
func (w *World) PendingDestroy(id EntityID) bool {
	_, ok := w.pending[id]
	return ok
}

// MarkForDestruction queues an entity for end-of-tick cleanup. Idempotent;
// marking a dead or already-marked entity is a no-op.
func (w *World) MarkForDestruction(id EntityID) {
	if !w.pool.Alive(id) {
		return
	}
	if _, ok := w.pending[id]; ok {
		return
	}
	w.pending[id] = struct{}{}
	w.destroyQueue = append(w.destroyQueue, id)
}

// FlushDestroyQueue destroys all queued entities, removing their components
// from every registered store. Called by the cleanup system, once per tick.
func (w *World) FlushDestroyQueue() {
	for _, id := range w.destroyQueue {
		for _, s := range w.stores {
			if s != nil {
				s.Remove(id)
			}
		}
		w.pool.Destroy(id)
		delete(w.pending, id)
	}
	w.destroyQueue = w.destroyQueue[:0]
}

// Query returns the ids of entities carrying every listed kind. The result
// is cached under the conjunctive kind mask until the next structural
// mutation. Callers must not retain the slice across ticks.
// Querying a kind that was never registered is a start-up programming
// error and panics.
func (w *World) Query(kinds ...Kind) []EntityID {
	if len(kinds) == 0 {
		return nil
	}
	var mask uint64
	for _, k := range kinds {
		if k >= MaxKinds || w.stores[k] == nil {
			panic(fmt.Sprintf("ecs: query on unregistered kind %d", k))
		}
		mask |= 1 << k
	}
	if c, ok := w.cache[mask]; ok && c.version == w.version {
		return c.ids
	}

	// Iterate the smallest store, probe the rest.
	smallest := kinds[0]
	for _, k := range kinds[1:] {
		if w.stores[k].Len() < w.stores[smallest].Len() {
			smallest = k
		}
	}
	ids := make([]EntityID, 0, w.stores[smallest].Len())
	w.stores[smallest].eachID(func(id EntityID) {
		for _, k := range kinds {
			if k == smallest {
				continue
			}
			if !w.stores[k].Has(id) {
				return
			}
		}
		ids = append(ids, id)
	})
	w.cache[mask] = cachedQuery{version: w.version, ids: ids}
	return ids
}
