package world

import "starfield/object"

// Shot is a player bullet moving straight up.
type Shot struct {
	body
}

func NewShot(x, y, speed float64) *Shot {
	return &Shot{
		body: newBody(KindShot, object.NewRect(x, y, ShotWidth, ShotHeight), speed, SpriteShot),
	}
}

func (s *Shot) Update(f *Frame) {
	s.Y -= s.velocity * f.Delta
}

func (s *Shot) Resolve(f *Frame) {
	if f.World.Collide(s, KindShip|KindShot|KindLine) {
		f.World.RemoveEntity(s)
	}
	if s.Y < 0 {
		f.World.RemoveEntity(s)
	}
}
