package object

type Coords struct {
	X, Y float64
}

// Rect is an axis-aligned box with a top-left origin.
type Rect struct {
	Coords
	W, H float64
}

func NewRect(x, y, w, h float64) Rect {
	return Rect{
		Coords: Coords{X: x, Y: y},
		W:      w,
		H:      h,
	}
}

func (r *Rect) Bounds() Rect {
	return *r
}

func (r Rect) Right() float64 {
	return r.X + r.W
}

func (r Rect) Bottom() float64 {
	return r.Y + r.H
}

// Overlaps uses half-open intervals, so boxes that only share an edge do not
// overlap.
func (r Rect) Overlaps(o Rect) bool {
	return r.X < o.Right() && r.Right() > o.X && r.Y < o.Bottom() && r.Bottom() > o.Y
}
