package world

import (
	"starfield/object"
	"strings"

	"github.com/segmentio/ksuid"
)

// Kind tags an entity for collision queries. It never changes after
// construction.
type Kind uint8

const (
	KindPlayer Kind = 1 << iota
	KindShip
	KindShot
	KindLine
)

var kindNames = []struct {
	kind Kind
	name string
}{
	{KindPlayer, "player"},
	{KindShip, "ship"},
	{KindShot, "shot"},
	{KindLine, "line"},
}

func (k Kind) String() string {
	var names []string
	for _, n := range kindNames {
		if k&n.kind != 0 {
			names = append(names, n.name)
		}
	}
	if len(names) == 0 {
		return "none"
	}
	return strings.Join(names, "|")
}

// ParseKind is the inverse of Kind.String.
func ParseKind(s string) Kind {
	var k Kind
	for _, part := range strings.Split(s, "|") {
		for _, n := range kindNames {
			if part == n.name {
				k |= n.kind
			}
		}
	}
	return k
}

type Entity interface {
	ID() string
}

// Updatable entities move, spawn and fire in the first half of a frame.
type Updatable interface {
	Entity
	Update(f *Frame)
}

// Resolver entities react to collisions once everything has moved.
type Resolver interface {
	Entity
	Resolve(f *Frame)
}

type Collider interface {
	Entity
	Kind() Kind
	Bounds() object.Rect
}

type Drawable interface {
	Entity
	Bounds() object.Rect
	Sprite() string
}

// body is shared by everything that moves and gets drawn.
type body struct {
	id string
	object.Rect
	kind     Kind
	velocity float64
	sprite   string
}

func newBody(kind Kind, r object.Rect, velocity float64, sprite string) body {
	return body{
		id:       ksuid.New().String(),
		Rect:     r,
		kind:     kind,
		velocity: velocity,
		sprite:   sprite,
	}
}

func (b *body) ID() string {
	return b.id
}

func (b *body) Kind() Kind {
	return b.kind
}

func (b *body) Sprite() string {
	return b.sprite
}
