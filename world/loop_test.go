package world

import (
	"math/rand"
	"starfield/object"
	"testing"
	"time"
)

type drawCall struct {
	sprite string
	rect   object.Rect
}

type fakeCanvas struct {
	pattern string
	fills   int
	draws   []drawCall
}

func (c *fakeCanvas) FillPattern(sprite string) {
	c.pattern = sprite
	c.fills++
	c.draws = nil
}

func (c *fakeCanvas) DrawSprite(sprite string, r object.Rect) {
	c.draws = append(c.draws, drawCall{sprite, r})
}

func TestStepClampsDelta(t *testing.T) {
	loop := NewLoopWithWorld(NewWorld(), nil)
	tests := []struct {
		now  time.Duration
		want float64
	}{
		{time.Hour, 0}, // first frame only seeds the clock
		{time.Hour + 16*time.Millisecond, 0.016},
		{time.Hour + 5*time.Second, 0.1},
		{time.Hour + 4*time.Second, 0},
		{time.Hour + 4*time.Second + 50*time.Millisecond, 0.05},
	}
	for i, tt := range tests {
		if !loop.Step(tt.now) {
			t.Fatalf("step %d did not run", i)
		}
		if got := loop.Delta(); got != tt.want {
			t.Fatalf("step %d delta = %v, want %v", i, got, tt.want)
		}
	}
	if loop.Tick() != int64(len(tests)) {
		t.Fatalf("tick = %d, want %d", loop.Tick(), len(tests))
	}
}

func TestPlayerHitStopsLoop(t *testing.T) {
	w := NewWorld()
	player := NewPlayer(100, 100, 200, 0.2, 300)
	ship := NewShip(120, 90, 100)
	w.AddEntity(player)
	w.AddEntity(ship)
	loop := NewLoopWithWorld(w, player)

	if !loop.Step(0) {
		t.Fatal("first step did not run")
	}
	if loop.State() != Stopped {
		t.Fatalf("state = %s, want stopped", loop.State())
	}
	if w.Contains(ship) {
		t.Fatal("ship should have been removed in the final frame")
	}

	tick := loop.Tick()
	x := player.X
	loop.Press(KeyRight)
	if loop.Step(time.Second) || loop.Advance(1) {
		t.Fatal("stopped loop ran another frame")
	}
	if loop.Tick() != tick || player.X != x {
		t.Fatal("stopped loop changed state")
	}
}

// TestShipLandingOnIdlePlayerEndsGame lets a ship descend onto a player that
// never moves. The ship is the one that closes the gap.
func TestShipLandingOnIdlePlayerEndsGame(t *testing.T) {
	w := NewWorld()
	player := NewPlayer(270, 517, 200, 0.2, 300)
	ship := NewShip(290, 400, 100)
	w.AddEntity(player)
	w.AddEntity(ship)
	loop := NewLoopWithWorld(w, player)

	for i := 0; i < 50 && loop.Running(); i++ {
		loop.Advance(0.1)
	}
	if loop.Running() {
		t.Fatalf("ship reached bottom=%f over the player and the game kept running", ship.Bottom())
	}
	if w.Contains(ship) {
		t.Fatal("ship survived hitting the player")
	}
	if ship.Bottom() <= player.Y {
		t.Fatalf("game stopped at ship bottom=%f before reaching the player", ship.Bottom())
	}
}

func TestLoopAccessors(t *testing.T) {
	loop := NewLoop(DefaultTuning(), rand.New(rand.NewSource(1)))
	player := loop.Player()
	if player == nil || !loop.World().Contains(player) {
		t.Fatal("Player() is not the player in the world")
	}
	if !player.Bounded || player.MaxX != DefaultTuning().Width-PlayerWidth {
		t.Fatalf("player bound = %v %f", player.Bounded, player.MaxX)
	}

	loop.Press(KeyFire)
	loop.Press(KeyLeft)
	if in := loop.Input(); !in.Fire || !in.Left || in.Right {
		t.Fatalf("input after presses = %+v", in)
	}
	loop.Release(KeyLeft)
	if in := loop.Input(); !in.Fire || in.Left {
		t.Fatalf("input after release = %+v", in)
	}
}

func TestPlayerHitsBoundary(t *testing.T) {
	w := NewWorld()
	player := NewPlayer(0, 100, 200, 0.2, 300)
	w.AddEntity(player)
	w.AddEntity(NewLine(object.NewRect(-1, 0, 1, 1000)))
	loop := NewLoopWithWorld(w, player)

	loop.Advance(0.1)
	if !loop.Running() {
		t.Fatal("touching edge counted as a hit")
	}
	loop.Press(KeyLeft)
	loop.Advance(0.1)
	if loop.Running() {
		t.Fatal("player crossed the boundary without stopping the game")
	}
}

func TestRender(t *testing.T) {
	loop := NewLoop(DefaultTuning(), rand.New(rand.NewSource(1)))
	canvas := &fakeCanvas{}
	loop.Render(canvas)

	if canvas.pattern != SpriteBackground {
		t.Fatalf("background = %q, want %q", canvas.pattern, SpriteBackground)
	}
	if len(canvas.draws) != 1 || canvas.draws[0].sprite != SpritePlayer {
		t.Fatalf("draws = %+v, want only the player", canvas.draws)
	}
	if r := canvas.draws[0].rect; r.X != 270 || r.Y != 517 || r.W != PlayerWidth || r.H != PlayerHeight {
		t.Fatalf("player drawn at %+v", r)
	}

	for i := 0; i < 20; i++ {
		loop.Advance(0.1)
	}
	loop.Render(canvas)
	if canvas.fills != 2 {
		t.Fatalf("fills = %d, want 2", canvas.fills)
	}
	if len(canvas.draws) < 2 {
		t.Fatalf("draws = %d, want player and ships", len(canvas.draws))
	}
	if canvas.draws[0].sprite != SpritePlayer {
		t.Fatalf("first draw = %q, want the player", canvas.draws[0].sprite)
	}
	for _, d := range canvas.draws[1:] {
		if d.sprite != SpriteShip {
			t.Fatalf("draw %q, want ships after the player", d.sprite)
		}
	}
}

func TestSeededGameEnds(t *testing.T) {
	loop := NewLoop(DefaultTuning(), rand.New(rand.NewSource(42)))
	for i := 0; i < 2000 && loop.Running(); i++ {
		loop.Advance(0.1)
	}
	if loop.Running() {
		t.Fatal("idle player survived the whole wave")
	}
	if n := loop.World().Count(KindShip); n > DefaultTuning().WaveSize {
		t.Fatalf("%d ships alive, more than the wave size", n)
	}
}

func TestSnapshot(t *testing.T) {
	loop := NewLoop(DefaultTuning(), rand.New(rand.NewSource(1)))
	loop.Advance(0.1)
	s := loop.Snapshot()
	if s.Tick != 1 || s.State != Running {
		t.Fatalf("snapshot header = %d %s", s.Tick, s.State)
	}
	// player, boundary line and the first ship; the spawner has no geometry
	if len(s.Entities) != 3 {
		t.Fatalf("snapshot has %d entities, want 3", len(s.Entities))
	}
	if s.Entities[0].Kind != KindPlayer || s.Entities[1].Kind != KindLine || s.Entities[2].Kind != KindShip {
		t.Fatalf("snapshot kinds = %s %s %s", s.Entities[0].Kind, s.Entities[1].Kind, s.Entities[2].Kind)
	}
	if ParseState(Stopped.String()) != Stopped || ParseState(Running.String()) != Running {
		t.Fatal("state names do not round trip")
	}
}
