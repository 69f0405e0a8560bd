package world

import (
	"starfield/object"

	"github.com/segmentio/ksuid"
)

// Line is an invisible boundary. Ships crossing it are destroyed and the
// player touching it ends the game.
type Line struct {
	id string
	object.Rect
}

func NewLine(r object.Rect) *Line {
	return &Line{
		id:   ksuid.New().String(),
		Rect: r,
	}
}

func (l *Line) ID() string {
	return l.id
}

func (l *Line) Kind() Kind {
	return KindLine
}
