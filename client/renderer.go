package client

import (
	"starfield/object"

	"github.com/hajimehoshi/ebiten/v2"
)

// Renderer draws sprites onto one target image.
type Renderer struct {
	target *ebiten.Image
	assets *Assets
}

func NewRenderer(target *ebiten.Image, assets *Assets) *Renderer {
	return &Renderer{
		target: target,
		assets: assets,
	}
}

// FillPattern tiles sprite over the whole target.
func (r *Renderer) FillPattern(sprite string) {
	image := r.assets.Image(sprite)
	tileWidth, tileHeight := image.Size()
	if tileWidth <= 0 || tileHeight <= 0 {
		return
	}
	width, height := r.target.Size()
	for y := 0; y < height; y += tileHeight {
		for x := 0; x < width; x += tileWidth {
			opt := &ebiten.DrawImageOptions{}
			opt.GeoM.Translate(float64(x), float64(y))
			r.target.DrawImage(image, opt)
		}
	}
}

// DrawSprite scales sprite to fill rect.
func (r *Renderer) DrawSprite(sprite string, rect object.Rect) {
	image := r.assets.Image(sprite)
	width, height := image.Size()
	if width <= 0 || height <= 0 {
		return
	}
	opt := &ebiten.DrawImageOptions{}
	opt.GeoM.Scale(rect.W/float64(width), rect.H/float64(height))
	opt.GeoM.Translate(rect.X, rect.Y)
	opt.Filter = ebiten.FilterLinear
	r.target.DrawImage(image, opt)
}
