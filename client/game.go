package client

import (
	"errors"
	"fmt"
	"log"
	"math/rand"
	"starfield/world"
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// ErrQuit is returned from Update when the player asks to leave.
var ErrQuit = errors.New("quit")

// Publisher receives a snapshot after every frame.
type Publisher interface {
	Publish(world.Snapshot)
}

type Game struct {
	*Assets
	tuning    world.Tuning
	rng       *rand.Rand
	publisher Publisher
	ready     chan struct{}

	loop  *world.Loop
	start time.Time
	frame *ebiten.Image
}

// NewGame shows a loading screen until assets are ready, then starts a
// session. publisher may be nil.
func NewGame(assets *Assets, tuning world.Tuning, publisher Publisher) *Game {
	g := &Game{
		Assets:    assets,
		tuning:    tuning,
		rng:       rand.New(rand.NewSource(time.Now().UnixNano())),
		publisher: publisher,
		ready:     make(chan struct{}),
	}
	assets.OnReady(func() {
		close(g.ready)
	})
	return g
}

func (g *Game) assetsReady() bool {
	select {
	case <-g.ready:
		return true
	default:
		return false
	}
}

func (g *Game) startLoop() {
	g.loop = world.NewLoop(g.tuning, g.rng)
	g.frame = ebiten.NewImage(int(g.tuning.Width), int(g.tuning.Height))
	g.start = time.Now()
	syncKeys(g.loop)
	log.Printf("assets ready, wave of %d ships", g.tuning.WaveSize)
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ErrQuit
	}
	if g.loop == nil {
		if !g.assetsReady() {
			return nil
		}
		g.startLoop()
	}

	handleKeys(g.loop)
	if !g.loop.Step(time.Since(g.start)) {
		return nil
	}
	g.loop.Render(NewRenderer(g.frame, g.Assets))
	if !g.loop.Running() {
		log.Printf("game over at tick %d", g.loop.Tick())
	}
	if g.publisher != nil {
		g.publisher.Publish(g.loop.Snapshot())
	}
	return nil
}

func (g *Game) debugString() string {
	lines := []string{
		fmt.Sprintf("Version: %s, TPS: %0.02f, FPS: %0.02f", strings.TrimSpace(Version), ebiten.CurrentTPS(), ebiten.CurrentFPS()),
	}
	if g.loop != nil {
		lines = append(lines, fmt.Sprintf("Entities: %d, Tick: %d", g.loop.World().Len(), g.loop.Tick()))
	}
	return strings.Join(lines, "\n")
}

func (g *Game) Draw(screen *ebiten.Image) {
	if g.frame == nil {
		msg := "loading..."
		if failures := g.Failures(); failures != "" {
			msg += "\n" + failures
		}
		ebitenutil.DebugPrint(screen, msg)
		return
	}
	screen.DrawImage(g.frame, &ebiten.DrawImageOptions{})
	ebitenutil.DebugPrint(screen, g.debugString())
	if !g.loop.Running() {
		ebitenutil.DebugPrintAt(screen, "GAME OVER", int(g.tuning.Width)/2-27, int(g.tuning.Height)/2)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	return int(g.tuning.Width), int(g.tuning.Height)
}
