package engine

// Direction is a single piece transform.
type Direction uint8

const (
	DirectionLeft Direction = iota
	DirectionRight
	DirectionUp
	DirectionDown
	DirectionRotate
)

// Source supplies the randomness used to pick pieces. *rand.Rand from
// math/rand/v2 satisfies it.
type Source interface {
	IntN(n int) int
}

// Piece is a shape at a rotation and anchor. Pieces are values: every
// transform yields a new Piece and leaves the receiver untouched.
type Piece struct {
	shape    Shape
	rotation int
	anchor   Cell
}

// NewPiece places a shape of kind k at anchor, shifted as little as needed to
// keep all four cells inside area.
func NewPiece(k Kind, rotation int, anchor Cell, area Area) Piece {
	shape := ShapeOf(k)
	rotation = normRotation(rotation)
	return Piece{
		shape:    shape,
		rotation: rotation,
		anchor:   Reposition(shape, rotation, anchor, area),
	}
}

// RandomPiece picks a uniformly random shape and rotation and places it at
// the top middle of area.
func RandomPiece(src Source, area Area) Piece {
	k := Kind(src.IntN(NumKinds))
	rotation := src.IntN(4)
	return NewPiece(k, rotation, area.TopMiddle(), area)
}

// Kind returns the catalog shape of the piece.
func (p Piece) Kind() Kind {
	return p.shape.Kind
}

// Rotation returns the number of clockwise quarter turns, in 0..3.
func (p Piece) Rotation() int {
	return p.rotation
}

// Anchor returns the reference point the offsets are relative to.
func (p Piece) Anchor() Cell {
	return p.anchor
}

// Transform returns a copy of p moved step cells in dir, or rotated step
// quarter turns for DirectionRotate, then repositioned inside area.
// Moves saturate at zero before repositioning.
func (p Piece) Transform(dir Direction, step int, area Area) Piece {
	next := p
	switch dir {
	case DirectionLeft:
		next.anchor.X = max(0, next.anchor.X-step)
	case DirectionRight:
		next.anchor.X += step
	case DirectionUp:
		next.anchor.Y = max(0, next.anchor.Y-step)
	case DirectionDown:
		next.anchor.Y += step
	case DirectionRotate:
		next.rotation = normRotation(next.rotation + step)
	}
	next.anchor = Reposition(next.shape, next.rotation, next.anchor, area)
	return next
}

// Cells returns the four absolute cells covered by the piece.
func (p Piece) Cells() [4]Cell {
	var cells [4]Cell
	for i, o := range p.shape.Rotate(p.rotation).Offsets {
		cells[i] = Cell{X: p.anchor.X + o.DX, Y: p.anchor.Y + o.DY}
	}
	return cells
}

// LowestRow returns the y of the bottommost cell.
func (p Piece) LowestRow() int {
	return p.anchor.Y + p.shape.Rotate(p.rotation).Bounds().Bottom
}

// Reposition shifts anchor by the minimum amount that keeps every cell of
// shape, turned by rotation, inside area. Each axis is corrected
// independently; a shape larger than the area is not supported (see
// Area.Validate).
func Reposition(shape Shape, rotation int, anchor Cell, area Area) Cell {
	b := shape.Rotate(rotation).Bounds()
	return Cell{
		X: clampAxis(anchor.X, b.Left, b.Right, area.Width),
		Y: clampAxis(anchor.Y, b.Top, b.Bottom, area.Height),
	}
}

func clampAxis(pos, low, high, size int) int {
	lowCorrection := min(0, pos+low)
	highCorrection := max(0, pos+high-size+1)
	return pos - lowCorrection - highCorrection
}
