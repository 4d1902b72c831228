package engine

// Event is an abstract player or timer action.
type Event uint8

const (
	EventMoveLeft Event = iota
	EventMoveRight
	EventMoveUp
	EventMoveDown
	EventRotate
	EventDrop
)

// State is the lifecycle phase of a game.
type State uint8

const (
	StateActive State = iota
	StateGameOver
)
