package client

import (
	"starfield/world"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var keyBindings = map[ebiten.Key]world.Key{
	ebiten.KeyLeft:  world.KeyLeft,
	ebiten.KeyRight: world.KeyRight,
	ebiten.KeySpace: world.KeyFire,
}

// handleKeys forwards this tick's key-down and key-up events to the loop.
func handleKeys(loop *world.Loop) {
	for key, action := range keyBindings {
		if inpututil.IsKeyJustPressed(key) {
			loop.Press(action)
		}
		if inpututil.IsKeyJustReleased(key) {
			loop.Release(action)
		}
	}
}

// syncKeys presses whatever is already held, for keys pressed before the
// loop existed.
func syncKeys(loop *world.Loop) {
	for key, action := range keyBindings {
		if ebiten.IsKeyPressed(key) {
			loop.Press(action)
		}
	}
}
