package world

// World is the set of live entities for one session. Entities are kept in
// insertion order so the last inserted is drawn last. Removal is deferred
// until Sweep so the update pass never iterates a shrinking collection.
type World struct {
	entities map[string]Entity
	order    []string
	pending  map[string]struct{}
}

func NewWorld() *World {
	return &World{
		entities: make(map[string]Entity),
		pending:  make(map[string]struct{}),
	}
}

// AddEntity inserts e immediately. It reports false if e is nil or already
// present.
func (w *World) AddEntity(e Entity) bool {
	if e == nil {
		return false
	}
	ID := e.ID()
	if _, ok := w.entities[ID]; ok {
		return false
	}
	w.entities[ID] = e
	w.order = append(w.order, ID)
	return true
}

func (w *World) Entity(ID string) Entity {
	return w.entities[ID]
}

func (w *World) Contains(e Entity) bool {
	_, ok := w.entities[e.ID()]
	return ok
}

// RemoveEntity marks e for removal at the next Sweep. Until then e stays
// visible to iteration and collision queries.
func (w *World) RemoveEntity(e Entity) {
	if _, ok := w.entities[e.ID()]; !ok {
		return
	}
	w.pending[e.ID()] = struct{}{}
}

func (w *World) Removing(e Entity) bool {
	_, ok := w.pending[e.ID()]
	return ok
}

// Sweep physically removes every pending entity and returns how many went.
func (w *World) Sweep() int {
	if len(w.pending) == 0 {
		return 0
	}
	kept := w.order[:0]
	for _, ID := range w.order {
		if _, ok := w.pending[ID]; ok {
			delete(w.entities, ID)
			continue
		}
		kept = append(kept, ID)
	}
	removed := len(w.order) - len(kept)
	w.order = kept
	w.pending = make(map[string]struct{})
	return removed
}

func (w *World) Len() int {
	return len(w.order)
}

// ForEachEntity visits entities in insertion order. Entities added by the
// callback are visited too, within the same call.
func (w *World) ForEachEntity(callback func(Entity)) {
	for i := 0; i < len(w.order); i++ {
		callback(w.entities[w.order[i]])
	}
}

// forEachAtStart runs each phase over the entities present when it was
// called. A phase sees every entity before the next phase begins.
func (w *World) forEachAtStart(phases ...func(Entity)) {
	n := len(w.order)
	for _, phase := range phases {
		for i := 0; i < n; i++ {
			phase(w.entities[w.order[i]])
		}
	}
}

// Count returns how many live entities intersect mask.
func (w *World) Count(mask Kind) int {
	n := 0
	w.ForEachEntity(func(e Entity) {
		if c, ok := e.(Collider); ok && c.Kind()&mask != 0 {
			n++
		}
	})
	return n
}
