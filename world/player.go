package world

import (
	"math"
	"starfield/object"
)

type Player struct {
	body
	FireRate  float64
	ShotSpeed float64
	// When Bounded, the left edge is kept within [0, MaxX].
	Bounded bool
	MaxX    float64
	delay   float64
}

func NewPlayer(x, y, speed, fireRate, shotSpeed float64) *Player {
	return &Player{
		body:      newBody(KindPlayer, object.NewRect(x, y, PlayerWidth, PlayerHeight), speed, SpritePlayer),
		FireRate:  fireRate,
		ShotSpeed: shotSpeed,
	}
}

// Bound keeps the player's left edge within [0, maxX].
func (p *Player) Bound(maxX float64) {
	p.Bounded = true
	p.MaxX = math.Max(0, maxX)
}

// Cooldown is the time left before the player may fire again.
func (p *Player) Cooldown() float64 {
	return p.delay
}

func (p *Player) Update(f *Frame) {
	if f.Input.Left {
		p.X -= p.velocity * f.Delta
	}
	if f.Input.Right {
		p.X += p.velocity * f.Delta
	}
	if p.Bounded {
		p.X = math.Max(0, math.Min(p.X, p.MaxX))
	}

	p.delay -= f.Delta
	if f.Input.Fire && p.delay <= 0 {
		p.delay = p.FireRate
		f.World.AddEntity(NewShot(p.X+ShotOffsetX, p.Y-ShotOffsetY, p.ShotSpeed))
	}
}

func (p *Player) Resolve(f *Frame) {
	if f.World.Collide(p, KindShip|KindLine) {
		f.Stop()
	}
}
