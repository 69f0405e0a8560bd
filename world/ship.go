package world

import "starfield/object"

// Ship is an enemy moving straight down.
type Ship struct {
	body
}

func NewShip(x, y, speed float64) *Ship {
	return &Ship{
		body: newBody(KindShip, object.NewRect(x, y, ShipWidth, ShipHeight), speed, SpriteShip),
	}
}

func (s *Ship) Update(f *Frame) {
	s.Y += s.velocity * f.Delta
}

func (s *Ship) Resolve(f *Frame) {
	if f.World.Collide(s, KindPlayer|KindShot|KindLine) {
		f.World.RemoveEntity(s)
	}
}
