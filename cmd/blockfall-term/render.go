package main

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/plus3/blockfall/engine"
)

const (
	blockRune      = '█'
	projectionRune = '░'
	// Each cell is two columns wide so blocks look square.
	cellWidth = 2
)

var (
	borderStyle     = tcell.StyleDefault.Foreground(tcell.ColorGray)
	playerStyle     = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	projectionStyle = tcell.StyleDefault.Foreground(tcell.ColorDarkGray)
	blockStyle      = tcell.StyleDefault.Foreground(tcell.ColorTeal)
	nextStyle       = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	textStyle       = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	alertStyle      = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
)

// layout maps area cells to screen positions. The board sits inside a border
// at the top-left corner, with a side panel to its right.
type layout struct {
	area engine.Area
}

func (l layout) cell(c engine.Cell) (int, int) {
	return 1 + c.X*cellWidth, 1 + c.Y
}

func (l layout) panelX() int {
	return l.area.Width*cellWidth + 4
}

func render(screen tcell.Screen, snap engine.Snapshot, started bool) {
	screen.Clear()
	l := layout{area: snap.Area}

	drawBorder(screen, l)

	for _, c := range snap.Projection {
		drawCell(screen, l, c, projectionRune, projectionStyle)
	}
	for _, c := range snap.Blocks {
		drawCell(screen, l, c, blockRune, blockStyle)
	}
	for _, c := range snap.Player {
		drawCell(screen, l, c, blockRune, playerStyle)
	}

	x := l.panelX()
	drawText(screen, x, 1, textStyle, fmt.Sprintf("Score: %d", snap.Score))
	drawText(screen, x, 2, textStyle, fmt.Sprintf("Level: %d", snap.Level))
	drawText(screen, x, 3, textStyle, fmt.Sprintf("Lines: %d", snap.Stats.Lines))
	drawText(screen, x, 5, textStyle, "Next:")
	for _, c := range snap.Next {
		px, py := x+c.X*cellWidth, 6+c.Y
		screen.SetContent(px, py, blockRune, nil, nextStyle)
		screen.SetContent(px+1, py, blockRune, nil, nextStyle)
	}

	switch {
	case snap.State == engine.StateGameOver:
		drawText(screen, x, 11, alertStyle, "GAME OVER")
		drawText(screen, x, 12, textStyle, "r: new game")
	case !started:
		drawText(screen, x, 11, textStyle, "Enter: start")
	}
	drawText(screen, x, 13, textStyle, "q: quit")

	screen.Show()
}

func drawBorder(screen tcell.Screen, l layout) {
	right := 1 + l.area.Width*cellWidth
	bottom := 1 + l.area.Height
	for y := 0; y <= bottom; y++ {
		screen.SetContent(0, y, '│', nil, borderStyle)
		screen.SetContent(right, y, '│', nil, borderStyle)
	}
	for x := 0; x <= right; x++ {
		screen.SetContent(x, 0, '─', nil, borderStyle)
		screen.SetContent(x, bottom, '─', nil, borderStyle)
	}
	screen.SetContent(0, 0, '┌', nil, borderStyle)
	screen.SetContent(right, 0, '┐', nil, borderStyle)
	screen.SetContent(0, bottom, '└', nil, borderStyle)
	screen.SetContent(right, bottom, '┘', nil, borderStyle)
}

func drawCell(screen tcell.Screen, l layout, c engine.Cell, r rune, style tcell.Style) {
	x, y := l.cell(c)
	screen.SetContent(x, y, r, nil, style)
	screen.SetContent(x+1, y, r, nil, style)
}

func drawText(screen tcell.Screen, x, y int, style tcell.Style, text string) {
	for _, r := range text {
		screen.SetContent(x, y, r, nil, style)
		x++
	}
}
