package engine

import (
	"errors"
	"fmt"
)

// ErrAreaTooSmall is returned when an area cannot hold every rotated shape.
var ErrAreaTooSmall = errors.New("area too small for the shape catalog")

// InvariantError describes an internal consistency breach. It is raised with
// panic, never returned: it means a caller or this package has a logic bug,
// and continuing would corrupt the settled stack.
type InvariantError struct {
	Op     string
	Cell   Cell
	Reason string
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("engine: %s (%d,%d): %s", e.Op, e.Cell.X, e.Cell.Y, e.Reason)
}

func violate(op string, c Cell, reason string) {
	panic(&InvariantError{Op: op, Cell: c, Reason: reason})
}
