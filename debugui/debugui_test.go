package debugui_test

import (
	"context"
	"testing"
	"time"

	"github.com/plus3/blockfall/debugui"
	"github.com/plus3/blockfall/engine"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestColumnHeights(t *testing.T) {
	snap := engine.Snapshot{
		Area: engine.Area{Width: 4, Height: 6},
		Blocks: []engine.Cell{
			{X: 3, Y: 1},
			{X: 0, Y: 4}, {X: 3, Y: 4},
			{X: 0, Y: 5}, {X: 1, Y: 5}, {X: 3, Y: 5},
		},
	}

	assert.Equal(t, []int{2, 1, 0, 5}, debugui.ColumnHeights(snap))
	assert.Equal(t, []int{0, 0}, debugui.ColumnHeights(engine.Snapshot{Area: engine.Area{Width: 2, Height: 4}}))
}

func TestMillis(t *testing.T) {
	history := []time.Duration{500 * time.Millisecond, 375 * time.Millisecond, 1500 * time.Microsecond}

	got := debugui.Millis(nil, history)
	assert.InDeltaSlice(t, []float32{500, 375, 1.5}, got, 1e-4)

	reused := debugui.Millis(got[:0], history[:1])
	assert.Equal(t, []float32{500}, reused)
}

func TestLayerKeepsItems(t *testing.T) {
	var layer debugui.Layer
	layer.Add(func() {})
	layer.Add(func() {})
	assert.Equal(t, 2, layer.Len())
}

func TestGamePanelRestart(t *testing.T) {
	game, err := engine.NewGame(engine.Area{Width: 10, Height: 20}, engine.WithSeed(9))
	require.NoError(t, err)
	session := engine.NewSession(game)

	ctx, cancel := context.WithCancel(context.Background())
	defer func() {
		cancel()
		session.Wait()
	}()

	panel := debugui.NewGamePanel(ctx, session)
	require.True(t, session.Start(ctx))
	session.Run(engine.EventDrop)
	require.Len(t, session.DisplayState().Blocks, 4)

	assert.True(t, panel.Restart())
	assert.True(t, session.Running(), "the driver runs again after a panel reset")
	assert.Empty(t, session.DisplayState().Blocks)
	assert.True(t, panel.ShowProjection)
}
