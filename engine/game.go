package engine

import (
	"fmt"
	"math/rand/v2"
	"time"
)

const (
	baseInterval   = 1500 * time.Millisecond
	pointsPerLevel = 100
)

// Stats counts landings and cleared lines over the life of a game.
type Stats struct {
	Pieces int
	Lines  int
	// Clears[n] counts landings that cleared exactly n rows.
	Clears [5]int
}

// Landing describes a piece joining the stack.
type Landing struct {
	Kind     Kind
	Lines    int
	Points   uint64
	Score    uint64
	GameOver bool
}

// Game is the rules state machine. It is not safe for concurrent use; wrap it
// in a Session to share it between goroutines.
type Game struct {
	area     Area
	src      Source
	score    uint64
	piece    Piece
	next     Piece
	stack    *Stack
	distance int
	state    State
	stats    Stats

	landed *Landing
}

// Option configures a Game.
type Option func(*Game)

// WithSource sets the randomness used to pick pieces.
func WithSource(src Source) Option {
	return func(g *Game) {
		g.src = src
	}
}

// WithSeed makes piece selection deterministic.
func WithSeed(seed uint64) Option {
	return WithSource(rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)))
}

// NewGame creates an active game with a current and a queued piece.
func NewGame(area Area, opts ...Option) (*Game, error) {
	if err := area.Validate(); err != nil {
		return nil, fmt.Errorf("new game: %w", err)
	}

	g := &Game{area: area}
	for _, opt := range opts {
		opt(g)
	}
	if g.src == nil {
		g.src = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	g.init()
	return g, nil
}

func (g *Game) init() {
	g.score = 0
	g.stats = Stats{}
	g.state = StateActive
	g.landed = nil
	g.stack = NewStack(g.area.Height)
	g.piece = RandomPiece(g.src, g.area)
	g.next = RandomPiece(g.src, g.area)
	g.distance = g.stack.DistanceTo(g.piece)
}

// Reset starts over on the same area with the same randomness source.
func (g *Game) Reset() {
	g.init()
}

// Run applies one event and returns the recommended delay before the next
// automatic MoveDown. It returns false once the game is over; further events
// are ignored. Illegal moves are silently rejected.
func (g *Game) Run(ev Event) (time.Duration, bool) {
	if g.state == StateGameOver {
		return 0, false
	}

	switch ev {
	case EventMoveLeft:
		g.shift(DirectionLeft)
	case EventMoveRight:
		g.shift(DirectionRight)
	case EventMoveUp:
		g.shift(DirectionUp)
	case EventRotate:
		g.shift(DirectionRotate)
	case EventMoveDown:
		g.moveDown()
	case EventDrop:
		g.drop()
	}

	if g.state == StateGameOver {
		return 0, false
	}
	return g.Interval(), true
}

// shift commits the transformed piece only if it does not overlap the stack.
func (g *Game) shift(dir Direction) {
	candidate := g.piece.Transform(dir, 1, g.area)
	if d := g.stack.DistanceTo(candidate); d > 0 {
		g.piece = candidate
		g.distance = d
	}
}

func (g *Game) moveDown() {
	if g.distance == 1 {
		g.land()
		return
	}
	g.shift(DirectionDown)
}

func (g *Game) drop() {
	g.piece = g.projection()
	g.distance = g.stack.DistanceTo(g.piece)
	g.moveDown()
}

func (g *Game) projection() Piece {
	return g.piece.Transform(DirectionDown, max(0, g.distance-1), g.area)
}

func (g *Game) land() {
	kind := g.piece.Kind()
	g.stack.Add(g.piece)

	lines := g.stack.ClearCompletedRows(g.area.Width)
	points := uint64(1)<<lines - 1
	g.score += points

	g.stats.Pieces++
	g.stats.Lines += lines
	if lines < len(g.stats.Clears) {
		g.stats.Clears[lines]++
	}

	g.piece, g.next = g.next, RandomPiece(g.src, g.area)
	g.distance = g.stack.DistanceTo(g.piece)
	if g.distance == 0 {
		g.state = StateGameOver
	}

	g.landed = &Landing{
		Kind:     kind,
		Lines:    lines,
		Points:   points,
		Score:    g.score,
		GameOver: g.state == StateGameOver,
	}
}

// takeLanding returns and forgets the most recent landing.
func (g *Game) takeLanding() (Landing, bool) {
	if g.landed == nil {
		return Landing{}, false
	}
	l := *g.landed
	g.landed = nil
	return l, true
}

// Score returns the current score.
func (g *Game) Score() uint64 {
	return g.score
}

// Level is the score-derived speed level.
func (g *Game) Level() int {
	return int(g.score / pointsPerLevel)
}

// Interval is the recommended delay between automatic drops at the current
// level. It shrinks as the score grows.
func (g *Game) Interval() time.Duration {
	return baseInterval / time.Duration(g.Level()+3)
}

// State returns the lifecycle phase.
func (g *Game) State() State {
	return g.state
}

// Area returns the play area.
func (g *Game) Area() Area {
	return g.area
}

// Stats returns the landing counters.
func (g *Game) Stats() Stats {
	return g.stats
}

// Distance returns the cached gap between the current piece and the stack.
func (g *Game) Distance() int {
	return g.distance
}

// ColumnHeights returns a fresh per-column height profile of the stack.
func (g *Game) ColumnHeights() []int {
	return g.stack.ColumnHeights(g.area.Width)
}

// Clone returns an independent copy of g that draws future pieces from src.
// A nil src gives the clone a fixed-seed source, so exploring moves on a
// clone never consumes the original's randomness.
func (g *Game) Clone(src Source) *Game {
	if src == nil {
		src = rand.New(rand.NewPCG(1, 2))
	}
	c := *g
	c.src = src
	c.stack = g.stack.Clone()
	c.landed = nil
	return &c
}
