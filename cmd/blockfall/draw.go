package main

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/plus3/blockfall/engine"
)

const (
	margin     = 16
	panelCells = 6
)

var (
	backgroundColor = color.RGBA{20, 20, 28, 255}
	boardColor      = color.RGBA{36, 36, 48, 255}
	gridColor       = color.RGBA{48, 48, 62, 255}
	playerColor     = color.RGBA{255, 223, 186, 255}
	projectionColor = color.RGBA{179, 229, 252, 160}
	blockColor      = color.RGBA{186, 225, 255, 255}
	nextColor       = color.RGBA{186, 255, 201, 255}
)

// geometry places area cells on screen: the board at the top-left margin and
// a side panel for the preview and score to its right.
type geometry struct {
	area engine.Area
	cell int
}

func (g geometry) cellRect(c engine.Cell) (x, y, size float32) {
	return float32(margin + c.X*g.cell), float32(margin + c.Y*g.cell), float32(g.cell)
}

func (g geometry) boardSize() (int, int) {
	return g.area.Width * g.cell, g.area.Height * g.cell
}

func (g geometry) panelOrigin() (int, int) {
	w, _ := g.boardSize()
	return margin*2 + w, margin
}

func (g geometry) previewRect(c engine.Cell) (x, y, size float32) {
	px, py := g.panelOrigin()
	size = float32(g.cell) * 0.75
	return float32(px) + float32(c.X)*size, float32(py+margin) + float32(c.Y)*size, size
}

// windowSize is the smallest window that fits the board and the panel.
func (g geometry) windowSize() (int, int) {
	w, h := g.boardSize()
	return w + panelCells*g.cell + margin*3, h + margin*2
}

func drawBoard(screen *ebiten.Image, geo geometry, snap engine.Snapshot, showProjection bool) {
	screen.Fill(backgroundColor)

	w, h := geo.boardSize()
	vector.DrawFilledRect(screen, margin, margin, float32(w), float32(h), boardColor, false)
	for y := range geo.area.Height {
		for x := range geo.area.Width {
			cx, cy, size := geo.cellRect(engine.Cell{X: x, Y: y})
			vector.StrokeRect(screen, cx, cy, size, size, 1, gridColor, false)
		}
	}

	if showProjection {
		for _, c := range snap.Projection {
			x, y, size := geo.cellRect(c)
			vector.StrokeRect(screen, x+1, y+1, size-2, size-2, 2, projectionColor, false)
		}
	}
	for _, c := range snap.Blocks {
		x, y, size := geo.cellRect(c)
		vector.DrawFilledRect(screen, x+1, y+1, size-2, size-2, blockColor, false)
	}
	for _, c := range snap.Player {
		x, y, size := geo.cellRect(c)
		vector.DrawFilledRect(screen, x+1, y+1, size-2, size-2, playerColor, false)
	}

	px, py := geo.panelOrigin()
	ebitenutil.DebugPrintAt(screen, "NEXT", px, py)
	for _, c := range snap.Next {
		x, y, size := geo.previewRect(c)
		vector.DrawFilledRect(screen, x+1, y+1, size-2, size-2, nextColor, false)
	}

	textY := py + margin + 5*geo.cell
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("SCORE %d", snap.Score), px, textY)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("LEVEL %d", snap.Level), px, textY+16)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("LINES %d", snap.Stats.Lines), px, textY+32)
}

func drawStatus(screen *ebiten.Image, geo geometry, snap engine.Snapshot, started bool) {
	px, py := geo.panelOrigin()
	y := py + margin + 5*geo.cell + 64
	switch {
	case snap.State == engine.StateGameOver:
		ebitenutil.DebugPrintAt(screen, "GAME OVER\nR: new game", px, y)
	case !started:
		ebitenutil.DebugPrintAt(screen, "ENTER: start", px, y)
	}
}
