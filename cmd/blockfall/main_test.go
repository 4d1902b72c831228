package main

import (
	"context"
	"testing"

	"github.com/plus3/blockfall/engine"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGameHandleInput(t *testing.T) {
	eng, err := engine.NewGame(engine.Area{Width: 10, Height: 20}, engine.WithSeed(6))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	g := &Game{session: engine.NewSession(eng), ctx: ctx}
	defer func() {
		cancel()
		g.session.Wait()
	}()
	drop := []engine.Event{engine.EventDrop}

	g.handle(false, false, drop)
	assert.Empty(t, g.session.DisplayState().Blocks, "input is ignored before start")

	g.handle(true, false, nil)
	require.True(t, g.session.Running())
	g.handle(false, false, drop)
	assert.Len(t, g.session.DisplayState().Blocks, 4)

	// A reset from outside the key handler stops the driver and pauses play.
	g.session.Reset()
	g.handle(false, false, drop)
	assert.Empty(t, g.session.DisplayState().Blocks)
	assert.False(t, g.session.Running())

	g.handle(false, true, nil)
	assert.True(t, g.session.Running())
	g.handle(false, false, drop)
	assert.Len(t, g.session.DisplayState().Blocks, 4)
}
