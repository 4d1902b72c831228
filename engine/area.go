package engine

import "fmt"

// Cell is an absolute grid coordinate. Y grows downward and (0, 0) is the
// top-left corner of the play area.
type Cell struct {
	X, Y int
}

// Area is the play field, anchored at the origin.
type Area struct {
	Width  int
	Height int
}

// PreviewArea is the small window the next piece is re-laid into for display.
var PreviewArea = Area{Width: 4, Height: 4}

// NewArea creates an Area and validates it against the shape catalog.
func NewArea(width, height int) (Area, error) {
	area := Area{Width: width, Height: height}
	if err := area.Validate(); err != nil {
		return Area{}, err
	}
	return area, nil
}

// Validate reports whether every shape fits the area in every rotation.
// Reposition has no fallback for a shape larger than the area, so such
// areas are rejected up front.
func (a Area) Validate() error {
	w, h := catalogExtent()
	if a.Width < w || a.Height < h {
		return fmt.Errorf("%w: %dx%d, need at least %dx%d", ErrAreaTooSmall, a.Width, a.Height, w, h)
	}
	return nil
}

// Contains reports whether c lies inside the area.
func (a Area) Contains(c Cell) bool {
	return c.X >= 0 && c.X < a.Width && c.Y >= 0 && c.Y < a.Height
}

// TopMiddle is the spawn anchor: horizontal center, top row.
func (a Area) TopMiddle() Cell {
	return Cell{X: a.Width / 2, Y: 0}
}
