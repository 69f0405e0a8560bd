package world

// Collide reports whether any other live entity whose kind intersects mask
// overlaps e. Entities pending removal still count. It has no side effects;
// the caller decides what a hit means.
func (w *World) Collide(e Collider, mask Kind) bool {
	bounds := e.Bounds()
	for _, ID := range w.order {
		if ID == e.ID() {
			continue
		}
		other, ok := w.entities[ID].(Collider)
		if !ok || other.Kind()&mask == 0 {
			continue
		}
		if bounds.Overlaps(other.Bounds()) {
			return true
		}
	}
	return false
}
