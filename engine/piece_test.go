package engine_test

import (
	"fmt"
	"testing"

	"github.com/plus3/blockfall/engine"
	"github.com/stretchr/testify/assert"
)

func TestReposition(t *testing.T) {
	area := engine.Area{Width: 4, Height: 4}
	i := engine.ShapeOf(engine.KindI)

	tests := []struct {
		name     string
		rotation int
		anchor   engine.Cell
		want     engine.Cell
	}{
		{"flat at origin", 0, engine.Cell{X: 0, Y: 0}, engine.Cell{X: 2, Y: 0}},
		{"upright at origin", 1, engine.Cell{X: 0, Y: 0}, engine.Cell{X: 0, Y: 2}},
		{"flat at far corner", 0, engine.Cell{X: 4, Y: 4}, engine.Cell{X: 2, Y: 3}},
		{"upright at far corner", 1, engine.Cell{X: 4, Y: 4}, engine.Cell{X: 3, Y: 2}},
		{"already inside", 0, engine.Cell{X: 2, Y: 1}, engine.Cell{X: 2, Y: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, engine.Reposition(i, tt.rotation, tt.anchor, area))
		})
	}
}

func TestPieceCellsStayInsideArea(t *testing.T) {
	areas := []engine.Area{
		{Width: 4, Height: 4},
		{Width: 5, Height: 7},
		{Width: 10, Height: 20},
	}

	for _, area := range areas {
		t.Run(fmt.Sprintf("%dx%d", area.Width, area.Height), func(t *testing.T) {
			for _, k := range allKinds() {
				for r := range 4 {
					for y := range area.Height + 3 {
						for x := range area.Width + 3 {
							p := engine.NewPiece(k, r, engine.Cell{X: x, Y: y}, area)
							for _, c := range p.Cells() {
								assert.True(t, area.Contains(c), "%s r=%d anchor=(%d,%d) cell=%v", k, r, x, y, c)
							}
						}
					}
				}
			}
		})
	}
}

func TestPieceTransformStaysInsideArea(t *testing.T) {
	area := engine.Area{Width: 6, Height: 8}
	dirs := []engine.Direction{
		engine.DirectionLeft,
		engine.DirectionRight,
		engine.DirectionUp,
		engine.DirectionDown,
		engine.DirectionRotate,
	}

	for _, k := range allKinds() {
		p := engine.NewPiece(k, 0, area.TopMiddle(), area)
		for i := range 200 {
			dir := dirs[i%len(dirs)]
			step := i % 7
			p = p.Transform(dir, step, area)
			for _, c := range p.Cells() {
				assert.True(t, area.Contains(c), "%s after %s by %d: %v", k, dir, step, c)
			}
		}
	}
}

func TestPieceTransform(t *testing.T) {
	area := engine.Area{Width: 10, Height: 20}
	p := engine.NewPiece(engine.KindT, 0, engine.Cell{X: 5, Y: 5}, area)

	t.Run("moves are new values", func(t *testing.T) {
		moved := p.Transform(engine.DirectionLeft, 1, area)
		assert.Equal(t, engine.Cell{X: 4, Y: 5}, moved.Anchor())
		assert.Equal(t, engine.Cell{X: 5, Y: 5}, p.Anchor())
	})

	t.Run("each direction", func(t *testing.T) {
		assert.Equal(t, engine.Cell{X: 7, Y: 5}, p.Transform(engine.DirectionRight, 2, area).Anchor())
		assert.Equal(t, engine.Cell{X: 5, Y: 4}, p.Transform(engine.DirectionUp, 1, area).Anchor())
		assert.Equal(t, engine.Cell{X: 5, Y: 8}, p.Transform(engine.DirectionDown, 3, area).Anchor())
	})

	t.Run("rotation wraps", func(t *testing.T) {
		assert.Equal(t, 1, p.Transform(engine.DirectionRotate, 1, area).Rotation())
		assert.Equal(t, 1, p.Transform(engine.DirectionRotate, 5, area).Rotation())
		assert.Equal(t, 3, p.Transform(engine.DirectionRotate, -1, area).Rotation())
		assert.Equal(t, p, p.Transform(engine.DirectionRotate, 0, area))
	})

	t.Run("left saturates then repositions", func(t *testing.T) {
		moved := p.Transform(engine.DirectionLeft, 50, area)
		assert.Equal(t, engine.Cell{X: 1, Y: 5}, moved.Anchor())
	})

	t.Run("right clamps at the wall", func(t *testing.T) {
		moved := p.Transform(engine.DirectionRight, 50, area)
		assert.Equal(t, engine.Cell{X: 8, Y: 5}, moved.Anchor())
	})

	t.Run("up saturates then repositions", func(t *testing.T) {
		moved := p.Transform(engine.DirectionUp, 50, area)
		assert.Equal(t, engine.Cell{X: 5, Y: 1}, moved.Anchor())
	})
}

func TestPieceLowestRow(t *testing.T) {
	area := engine.Area{Width: 10, Height: 20}

	assert.Equal(t, 5, engine.NewPiece(engine.KindT, 0, engine.Cell{X: 5, Y: 5}, area).LowestRow())
	assert.Equal(t, 6, engine.NewPiece(engine.KindI, 1, engine.Cell{X: 5, Y: 5}, area).LowestRow())
}

func TestRandomPiece(t *testing.T) {
	area := engine.Area{Width: 10, Height: 20}

	t.Run("uses the source for shape and rotation", func(t *testing.T) {
		p := engine.RandomPiece(script(int(engine.KindL), 2), area)
		assert.Equal(t, engine.KindL, p.Kind())
		assert.Equal(t, 2, p.Rotation())
	})

	t.Run("spawns at the top middle", func(t *testing.T) {
		p := engine.RandomPiece(only(engine.KindO, 0), area)
		assert.Equal(t, engine.Cell{X: 5, Y: 1}, p.Anchor())
		assert.ElementsMatch(t, []engine.Cell{{X: 4, Y: 0}, {X: 4, Y: 1}, {X: 5, Y: 1}, {X: 5, Y: 0}}, p.Cells())
	})
}

func TestDirectionString(t *testing.T) {
	assert.Equal(t, "Rotate", engine.DirectionRotate.String())
	assert.Equal(t, "Left", engine.DirectionLeft.String())
}
