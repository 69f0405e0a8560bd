package world

import (
	"math/rand"

	"github.com/segmentio/ksuid"
)

// Spawner releases a fixed wave of ships, one every Rate seconds, then
// removes itself. It is neither drawn nor collided against.
type Spawner struct {
	id        string
	remaining int
	Rate      float64
	ShipSpeed float64
	// MaxX is the exclusive upper bound for a ship's left edge.
	MaxX  float64
	delay float64
	rng   *rand.Rand
}

func NewSpawner(size int, rate, shipSpeed, maxX float64, rng *rand.Rand) *Spawner {
	if size < 0 {
		size = 0
	}
	return &Spawner{
		id:        ksuid.New().String(),
		remaining: size,
		Rate:      rate,
		ShipSpeed: shipSpeed,
		MaxX:      maxX,
		rng:       rng,
	}
}

func (s *Spawner) ID() string {
	return s.id
}

func (s *Spawner) Remaining() int {
	return s.remaining
}

func (s *Spawner) Update(f *Frame) {
	if s.remaining <= 0 {
		f.World.RemoveEntity(s)
		return
	}
	s.delay -= f.Delta
	if s.delay >= 0 {
		return
	}
	s.delay = s.Rate
	f.World.AddEntity(NewShip(s.rng.Float64()*s.MaxX, ShipStartY, s.ShipSpeed))
	s.remaining--
	if s.remaining == 0 {
		f.World.RemoveEntity(s)
	}
}
