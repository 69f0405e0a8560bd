package world

import "time"

const (
	PlayerWidth  = 102.0
	PlayerHeight = 83.0
	ShipWidth    = 66.0
	ShipHeight   = 74.0
	ShotWidth    = 10.0
	ShotHeight   = 38.0

	ShotOffsetX = 45.0 // relative to the player's left edge
	ShotOffsetY = 30.0 // above the player's top edge
	ShipStartY  = 5.0

	MaxFrameDelta = 100 * time.Millisecond
)

const (
	SpriteShot       = "img/bullet.png"
	SpriteShip       = "img/enemy.png"
	SpritePlayer     = "img/ship.png"
	SpriteBackground = "img/starfield.png"
)

// Sprites lists every asset the game draws.
func Sprites() []string {
	return []string{SpriteShot, SpriteShip, SpritePlayer, SpriteBackground}
}

type Tuning struct {
	Width, Height float64

	PlayerSpeed float64 // px/s
	FireRate    float64 // seconds between shots
	ShotSpeed   float64 // px/s
	ShipSpeed   float64 // px/s
	SpawnRate   float64 // seconds between ships
	WaveSize    int
}

func DefaultTuning() Tuning {
	return Tuning{
		Width:       660,
		Height:      617,
		PlayerSpeed: 200,
		FireRate:    0.2,
		ShotSpeed:   300,
		ShipSpeed:   100,
		SpawnRate:   0.5,
		WaveSize:    50,
	}
}
