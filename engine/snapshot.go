package engine

// Snapshot is a read-only copy of everything a renderer needs. It shares no
// memory with the Game that produced it.
type Snapshot struct {
	// Player holds the cells of the falling piece.
	Player []Cell
	// Kind is the shape of the falling piece.
	Kind Kind
	// Next holds the queued piece laid out inside PreviewArea.
	Next     []Cell
	NextKind Kind
	// Projection holds where Player would come to rest if dropped now. It is
	// empty when the piece already overlaps the stack.
	Projection []Cell
	// Blocks holds every settled cell, top to bottom then left to right.
	Blocks []Cell

	Area  Area
	Score uint64
	Level int
	State State
	Stats Stats
}

// DisplayState exports the current state for rendering.
func (g *Game) DisplayState() Snapshot {
	player := g.piece.Cells()
	next := g.next.Transform(DirectionRotate, 0, PreviewArea).Cells()

	snap := Snapshot{
		Player:   player[:],
		Kind:     g.piece.Kind(),
		Next:     next[:],
		NextKind: g.next.Kind(),
		Blocks:   g.stack.Cells(),
		Area:     g.area,
		Score:    g.score,
		Level:    g.Level(),
		State:    g.state,
		Stats:    g.stats,
	}
	if g.distance > 0 {
		projection := g.projection().Cells()
		snap.Projection = projection[:]
	}
	return snap
}
