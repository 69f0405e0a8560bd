package world

import (
	"math/rand"
	"starfield/object"
	"time"
)

type State int

const (
	Running State = iota
	Stopped
)

func (s State) String() string {
	if s == Stopped {
		return "stopped"
	}
	return "running"
}

// Frame is what an entity sees during one update pass.
type Frame struct {
	Delta float64 // seconds
	World *World
	Input Input
	stop  func()
}

// Stop ends the game after the current pass.
func (f *Frame) Stop() {
	if f.stop != nil {
		f.stop()
	}
}

// Canvas is the drawing surface a Loop renders to.
type Canvas interface {
	FillPattern(sprite string)
	DrawSprite(sprite string, r object.Rect)
}

// Loop drives one game session: delta computation, the update pass, the
// removal sweep and the render pass.
type Loop struct {
	world   *World
	player  *Player
	input   Input
	state   State
	last    time.Duration
	started bool
	tick    int64
	delta   float64
}

// NewLoop seeds a world with the player, the wave spawner and a boundary
// line just below the playfield.
func NewLoop(t Tuning, rng *rand.Rand) *Loop {
	w := NewWorld()
	player := NewPlayer(t.Width/2-60, t.Height-100, t.PlayerSpeed, t.FireRate, t.ShotSpeed)
	player.Bound(t.Width - PlayerWidth)
	w.AddEntity(player)
	w.AddEntity(NewSpawner(t.WaveSize, t.SpawnRate, t.ShipSpeed, t.Width-ShipWidth, rng))
	w.AddEntity(NewLine(object.NewRect(0, t.Height, t.Width, 1)))
	return NewLoopWithWorld(w, player)
}

// NewLoopWithWorld runs an already populated world. player may be nil.
func NewLoopWithWorld(w *World, player *Player) *Loop {
	return &Loop{
		world:  w,
		player: player,
		state:  Running,
	}
}

func (l *Loop) World() *World {
	return l.world
}

func (l *Loop) Player() *Player {
	return l.player
}

func (l *Loop) State() State {
	return l.state
}

func (l *Loop) Running() bool {
	return l.state == Running
}

func (l *Loop) Tick() int64 {
	return l.tick
}

// Delta is the step used by the most recent frame, in seconds.
func (l *Loop) Delta() float64 {
	return l.delta
}

func (l *Loop) Input() Input {
	return l.input
}

func (l *Loop) Press(key Key) {
	l.input.Press(key)
}

func (l *Loop) Release(key Key) {
	l.input.Release(key)
}

// Stop is terminal.
func (l *Loop) Stop() {
	l.state = Stopped
}

// Step runs one frame at time now, measured from any fixed origin. The first
// call only seeds the clock, so its delta is zero. It reports whether a frame
// ran.
func (l *Loop) Step(now time.Duration) bool {
	if l.state != Running {
		return false
	}
	if !l.started {
		l.last = now
		l.started = true
	}
	elapsed := now - l.last
	if elapsed > MaxFrameDelta {
		elapsed = MaxFrameDelta
	}
	if elapsed < 0 {
		elapsed = 0
	}
	l.last = now
	return l.Advance(elapsed.Seconds())
}

// Advance runs one frame with an explicit delta in seconds: the update pass,
// the resolve pass and then the sweep. Collisions are resolved only after
// every entity has moved. Entities added during the frame are first updated
// on the next one, but they already collide.
func (l *Loop) Advance(delta float64) bool {
	if l.state != Running {
		return false
	}
	l.delta = delta
	l.tick++

	frame := &Frame{
		Delta: delta,
		World: l.world,
		Input: l.input,
		stop:  l.Stop,
	}
	l.world.forEachAtStart(func(e Entity) {
		if u, ok := e.(Updatable); ok {
			u.Update(frame)
		}
	}, func(e Entity) {
		if r, ok := e.(Resolver); ok {
			r.Resolve(frame)
		}
	})
	l.world.Sweep()
	return true
}

func (l *Loop) Render(c Canvas) {
	c.FillPattern(SpriteBackground)
	l.world.ForEachEntity(func(e Entity) {
		if d, ok := e.(Drawable); ok {
			c.DrawSprite(d.Sprite(), d.Bounds())
		}
	})
}
