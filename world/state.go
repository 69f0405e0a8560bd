package world

// EntityState is the visible state of one collidable entity.
type EntityState struct {
	ID         string
	Kind       Kind
	X, Y, W, H float64
}

// Snapshot is a read-only copy of a loop's state after a frame.
type Snapshot struct {
	Tick     int64
	State    State
	Entities []EntityState
}

// Snapshot copies every collidable entity in render order. Spawners carry
// no geometry and are left out.
func (l *Loop) Snapshot() Snapshot {
	s := Snapshot{
		Tick:     l.tick,
		State:    l.state,
		Entities: make([]EntityState, 0, l.world.Len()),
	}
	l.world.ForEachEntity(func(e Entity) {
		c, ok := e.(Collider)
		if !ok {
			return
		}
		b := c.Bounds()
		s.Entities = append(s.Entities, EntityState{
			ID:   c.ID(),
			Kind: c.Kind(),
			X:    b.X,
			Y:    b.Y,
			W:    b.W,
			H:    b.H,
		})
	})
	return s
}

// ParseState is the inverse of State.String.
func ParseState(s string) State {
	if s == Stopped.String() {
		return Stopped
	}
	return Running
}
