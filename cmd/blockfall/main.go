package main

import (
	"context"
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/plus3/blockfall/debugui"
	debugui_ebiten "github.com/plus3/blockfall/debugui/ebiten"
	"github.com/plus3/blockfall/engine"
)

// Game implements ebiten.Game on top of a session.
type Game struct {
	session *engine.Session
	geo     geometry
	ctx     context.Context

	overlay   *debugui_ebiten.Overlay
	gamePanel *debugui.GamePanel
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	if g.overlay != nil {
		g.overlay.Update()
		if g.overlay.Input().WantCaptureKeyboard {
			return nil
		}
	}

	g.handle(inpututil.IsKeyJustPressed(ebiten.KeyEnter), inpututil.IsKeyJustPressed(ebiten.KeyR), pressedEvents())
	return nil
}

// handle applies one tick of input. Game events only reach the session while
// its driver runs, so a reset from any source pauses play until restarted.
func (g *Game) handle(start, reset bool, events []engine.Event) {
	switch {
	case start:
		g.session.Start(g.ctx)
	case reset:
		if g.gamePanel != nil {
			g.gamePanel.Restart()
		} else {
			g.session.Reset()
			g.session.Start(g.ctx)
		}
	}

	if !g.session.Running() {
		return
	}
	for _, ev := range events {
		g.session.Run(ev)
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	snap := g.session.DisplayState()
	showProjection := g.gamePanel == nil || g.gamePanel.ShowProjection

	drawBoard(screen, g.geo, snap, showProjection)
	drawStatus(screen, g.geo, snap, g.session.Running())

	if g.overlay != nil {
		g.overlay.Draw(screen)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if g.overlay != nil {
		g.overlay.Layout(outsideWidth, outsideHeight)
	}
	return outsideWidth, outsideHeight
}

func main() {
	width := flag.Int("width", 10, "The width of the play area in cells.")
	height := flag.Int("height", 20, "The height of the play area in cells.")
	cell := flag.Int("cell", 28, "The size of one cell in pixels.")
	seed := flag.Uint64("seed", 0, "Seed for piece selection (0 picks a random seed).")
	debug := flag.Bool("debug", false, "Show the Dear ImGui debug panels.")
	flag.Parse()

	area, err := engine.NewArea(*width, *height)
	if err != nil {
		log.Fatalf("Invalid play area: %v", err)
	}

	var opts []engine.Option
	if *seed != 0 {
		opts = append(opts, engine.WithSeed(*seed))
	}
	eng, err := engine.NewGame(area, opts...)
	if err != nil {
		log.Fatalf("Failed to create game: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	game := &Game{
		session: engine.NewSession(eng),
		geo:     geometry{area: area, cell: *cell},
		ctx:     ctx,
	}

	w, h := game.geo.windowSize()
	if *debug {
		layer := &debugui.Layer{}
		game.gamePanel = debugui.NewGamePanel(ctx, game.session)
		layer.Add(game.gamePanel.Render)
		layer.Add(debugui.NewDriverPanel(game.session).Render)
		game.overlay = debugui_ebiten.NewOverlay("Blockfall", w+480, max(h, 600), layer)
	} else {
		ebiten.SetWindowSize(w, h)
		ebiten.SetWindowTitle("Blockfall")
	}
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(game); err != nil {
		log.Fatalf("Game exited: %v", err)
	}
}
