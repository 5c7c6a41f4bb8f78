package game

import (
	"fmt"
	"time"

	"github.com/cbodonnell/blaster/client/input"
	"github.com/cbodonnell/blaster/client/render"
	"github.com/cbodonnell/blaster/pkg/game"
	"github.com/cbodonnell/blaster/pkg/game/constants"
	"github.com/cbodonnell/blaster/pkg/game/types"
	"github.com/cbodonnell/blaster/pkg/log"
	"github.com/cbodonnell/blaster/pkg/queue"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// maxDeltaTime bounds a single step after the window was stalled.
const maxDeltaTime = 0.25

// Game implements ebiten.Game interface, which has Update, Draw and Layout methods.
type Game struct {
	// debug is a boolean value indicating whether debug mode is enabled.
	debug bool
	// sessionID identifies this run in the logs.
	sessionID string
	// loop advances the simulation.
	loop *game.Loop
	// poller turns window input into loop events.
	poller *input.Poller
	// renderer draws objects to the screen.
	renderer *render.ScreenRenderer
	// lastUpdate is the wall-clock time of the previous Update.
	lastUpdate time.Time
	// directions is reused across ticks.
	directions []types.Direction
	// screenWidth and screenHeight are the last reported layout size.
	screenWidth  int
	screenHeight int
}

type NewGameOptions struct {
	Debug     bool
	SessionID string
	Width     int
	Height    int
}

func NewGame(opts NewGameOptions) (ebiten.Game, error) {
	width, height := opts.Width, opts.Height
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid window size %dx%d", width, height)
	}

	events := queue.NewInMemoryQueue[types.InputEvent](queue.QueueBufferSize)
	loop := game.NewLoop(game.NewLoopOptions{
		Viewport: game.NewViewport(width, height),
		Events:   events,
	})

	g := &Game{
		debug:        opts.Debug,
		sessionID:    opts.SessionID,
		loop:         loop,
		poller:       input.NewPoller(events),
		renderer:     render.NewScreenRenderer(true),
		directions:   make([]types.Direction, 0, 4),
		screenWidth:  width,
		screenHeight: height,
	}

	return g, nil
}

func (g *Game) Update() error {
	now := time.Now()
	dt := 0.0
	if !g.lastUpdate.IsZero() {
		dt = now.Sub(g.lastUpdate).Seconds()
	}
	g.lastUpdate = now
	if dt > maxDeltaTime {
		log.Debug("Clamping frame time %0.3fs", dt)
		dt = maxDeltaTime
	}

	g.poller.Poll()
	g.directions = input.AppendDirections(g.directions[:0])
	g.loop.Step(dt, g.directions)

	if g.loop.State() == game.LoopStateStopped {
		log.Info("Closing session %s", g.sessionID)
		g.loop.Manager().Clear()
		return ebiten.Termination
	}

	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(constants.ClearColor)

	g.renderer.SetTarget(screen)
	g.loop.Render(g.renderer)
	g.renderer.SetTarget(nil)

	render.DrawHUD(screen, render.HUDStats{
		Objects: g.loop.Manager().Len(),
		Frame:   g.loop.Frame(),
	})

	if g.debug {
		g.drawDebugOverlay(screen)
	}
}

func (g *Game) drawDebugOverlay(screen *ebiten.Image) {
	ebitenutil.DebugPrint(screen, fmt.Sprintf("\n   FPS: %0.1f", ebiten.ActualFPS()))
	ebitenutil.DebugPrint(screen, fmt.Sprintf("\n\n   TPS: %0.1f", ebiten.ActualTPS()))

	if player, ok := g.loop.Player(); ok {
		p := player.Position()
		ebitenutil.DebugPrint(screen, fmt.Sprintf("\n\n\n   Player: (%0.1f, %0.1f)", p.X, p.Y))
	}
}

// Layout keeps one world unit per screen pixel and reports size changes to the loop.
func (g *Game) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	if outsideWidth != g.screenWidth || outsideHeight != g.screenHeight {
		g.screenWidth = outsideWidth
		g.screenHeight = outsideHeight
		if err := g.loop.Events().Enqueue(types.NewResizeEvent(outsideWidth, outsideHeight)); err != nil {
			log.Warn("Dropped resize event: %v", err)
		}
	}
	return g.screenWidth, g.screenHeight
}
