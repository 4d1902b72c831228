package main

import (
	"context"
	"math"
	"time"

	"github.com/plus3/blockfall/engine"
)

// weights scores a board after a placement. Positive weights reward a feature.
type weights struct {
	Height    float64
	Lines     float64
	Holes     float64
	Bumpiness float64
}

// defaultWeights are the well known hand-tuned values for the four classic
// features: aggregate height, cleared lines, holes and bumpiness.
var defaultWeights = weights{
	Height:    -0.510066,
	Lines:     0.760666,
	Holes:     -0.35663,
	Bumpiness: -0.184483,
}

// placement is a sequence of inputs: rotate, push against the left wall,
// then move right shift times and drop.
type placement struct {
	rotation int
	shift    int
}

func (p placement) apply(g *engine.Game) bool {
	width := g.Area().Width
	for range p.rotation {
		g.Run(engine.EventRotate)
	}
	for range width {
		g.Run(engine.EventMoveLeft)
	}
	for range p.shift {
		g.Run(engine.EventMoveRight)
	}
	_, ok := g.Run(engine.EventDrop)
	return ok
}

type bot struct {
	weights weights
}

// choose tries every rotation and column on a clone of g and returns the
// placement with the best board afterwards.
func (b *bot) choose(g *engine.Game) placement {
	best := placement{}
	bestScore := math.Inf(-1)
	lines := g.Stats().Lines

	for rotation := range 4 {
		for shift := range g.Area().Width {
			p := placement{rotation: rotation, shift: shift}
			trial := g.Clone(nil)
			if !p.apply(trial) {
				continue
			}
			if score := b.evaluate(trial, trial.Stats().Lines-lines); score > bestScore {
				best, bestScore = p, score
			}
		}
	}
	return best
}

func (b *bot) evaluate(g *engine.Game, lines int) float64 {
	heights := g.ColumnHeights()
	blocks := len(g.DisplayState().Blocks)

	var aggregate, bumpiness int
	for i, h := range heights {
		aggregate += h
		if i > 0 {
			bumpiness += abs(h - heights[i-1])
		}
	}
	holes := aggregate - blocks

	return b.weights.Height*float64(aggregate) +
		b.weights.Lines*float64(lines) +
		b.weights.Holes*float64(holes) +
		b.weights.Bumpiness*float64(bumpiness)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

type gameResult struct {
	Pieces   int
	Lines    int
	Score    uint64
	Clears   [5]int
	Elapsed  time.Duration
	GameOver bool
}

// play lets b place pieces until the game ends, maxPieces have landed, or ctx
// is done.
func play(ctx context.Context, g *engine.Game, b *bot, maxPieces int) gameResult {
	start := time.Now()
	for ctx.Err() == nil && g.State() == engine.StateActive {
		if maxPieces > 0 && g.Stats().Pieces >= maxPieces {
			break
		}
		b.choose(g).apply(g)
	}

	stats := g.Stats()
	return gameResult{
		Pieces:   stats.Pieces,
		Lines:    stats.Lines,
		Score:    g.Score(),
		Clears:   stats.Clears,
		Elapsed:  time.Since(start),
		GameOver: g.State() == engine.StateGameOver,
	}
}
