package engine

import (
	"slices"

	"github.com/kamstrup/intmap"
)

type row = intmap.Map[int, struct{}]

// Stack holds the settled cells. Rows are stored bottom-up: rows[0] is the
// row just above the floor, so clearing a row lets everything above it drop
// by one simply by removing it from the slice.
type Stack struct {
	floor int
	rows  []*row
}

// NewStack creates an empty stack resting on floor, the first y below the
// play area.
func NewStack(floor int) *Stack {
	return &Stack{floor: floor}
}

// Add settles the cells of p. It panics with *InvariantError if a cell is at
// or below the floor, or already occupied.
func (s *Stack) Add(p Piece) {
	for _, c := range p.Cells() {
		s.addCell(c)
	}
}

func (s *Stack) addCell(c Cell) {
	if c.Y >= s.floor || c.Y < 0 || c.X < 0 {
		violate("stack add", c, "cell outside the stack")
	}
	if s.Occupied(c) {
		violate("stack add", c, "cell already settled")
	}
	index := s.floor - c.Y - 1
	for len(s.rows) <= index {
		s.rows = append(s.rows, intmap.New[int, struct{}](4))
	}
	s.rows[index].Put(c.X, struct{}{})
}

// ClearCompletedRows removes every row holding width cells and returns how
// many were removed.
func (s *Stack) ClearCompletedRows(width int) int {
	before := len(s.rows)
	s.rows = slices.DeleteFunc(s.rows, func(r *row) bool {
		return r.Len() >= width
	})
	return before - len(s.rows)
}

// NearestObstruction returns the y of the first occupied cell in column at
// or below threshold, or the floor when the column is clear.
func (s *Stack) NearestObstruction(column, threshold int) int {
	limit := max(0, min(s.floor-threshold, len(s.rows)))
	free := 0
	for i := limit - 1; i >= 0; i-- {
		if _, ok := s.rows[i].Get(column); ok {
			break
		}
		free++
	}
	return s.floor - limit + free
}

// DistanceTo returns the smallest vertical gap between a cell of p and the
// obstruction below it. 1 means p is resting; 0 means p overlaps the stack.
func (s *Stack) DistanceTo(p Piece) int {
	cells := p.Cells()
	distance := s.NearestObstruction(cells[0].X, cells[0].Y) - cells[0].Y
	for _, c := range cells[1:] {
		distance = min(distance, s.NearestObstruction(c.X, c.Y)-c.Y)
	}
	return distance
}

// Occupied reports whether c is settled.
func (s *Stack) Occupied(c Cell) bool {
	index := s.floor - c.Y - 1
	if index < 0 || index >= len(s.rows) {
		return false
	}
	_, ok := s.rows[index].Get(c.X)
	return ok
}

// Height returns the number of tracked rows, including empty rows below the
// topmost occupied one.
func (s *Stack) Height() int {
	return len(s.rows)
}

// Cells returns every settled cell, ordered top to bottom then left to right.
func (s *Stack) Cells() []Cell {
	cells := make([]Cell, 0, len(s.rows)*4)
	for i, r := range s.rows {
		y := s.floor - i - 1
		r.ForEach(func(x int, _ struct{}) bool {
			cells = append(cells, Cell{X: x, Y: y})
			return true
		})
	}
	slices.SortFunc(cells, func(a, b Cell) int {
		if a.Y != b.Y {
			return a.Y - b.Y
		}
		return a.X - b.X
	})
	return cells
}

// ColumnHeights returns, per column, how many rows above the floor the
// topmost settled cell reaches. Empty columns report 0.
func (s *Stack) ColumnHeights(width int) []int {
	heights := make([]int, width)
	for i, r := range s.rows {
		r.ForEach(func(x int, _ struct{}) bool {
			if x < width {
				heights[x] = max(heights[x], i+1)
			}
			return true
		})
	}
	return heights
}

// Clone returns a deep copy of s.
func (s *Stack) Clone() *Stack {
	c := &Stack{floor: s.floor, rows: make([]*row, len(s.rows))}
	for i, r := range s.rows {
		dup := intmap.New[int, struct{}](max(4, r.Len()))
		r.ForEach(func(x int, v struct{}) bool {
			dup.Put(x, v)
			return true
		})
		c.rows[i] = dup
	}
	return c
}
