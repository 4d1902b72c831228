package engine_test

import (
	"testing"

	"github.com/plus3/blockfall/engine"
	"github.com/stretchr/testify/require"
)

// scriptedSource replays values cyclically, reduced modulo n.
type scriptedSource struct {
	values []int
	next   int
}

func script(values ...int) *scriptedSource {
	return &scriptedSource{values: values}
}

func (s *scriptedSource) IntN(n int) int {
	v := s.values[s.next%len(s.values)]
	s.next++
	return v % n
}

// only yields pieces of a single kind and rotation.
func only(k engine.Kind, rotation int) *scriptedSource {
	return script(int(k), rotation)
}

func newGame(t testing.TB, width, height int, opts ...engine.Option) *engine.Game {
	t.Helper()
	game, err := engine.NewGame(engine.Area{Width: width, Height: height}, opts...)
	require.NoError(t, err)
	return game
}

func allCells(area engine.Area) []engine.Cell {
	cells := make([]engine.Cell, 0, area.Width*area.Height)
	for y := range area.Height {
		for x := range area.Width {
			cells = append(cells, engine.Cell{X: x, Y: y})
		}
	}
	return cells
}
