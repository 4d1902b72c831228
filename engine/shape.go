package engine

// Kind identifies one of the seven catalog shapes.
type Kind uint8

const (
	KindI Kind = iota
	KindS
	KindZ
	KindO
	KindJ
	KindL
	KindT
)

// NumKinds is the size of the shape catalog.
const NumKinds = 7

// Offset is a cell position relative to a piece anchor.
type Offset struct {
	DX, DY int
}

// Shape is an immutable set of four offsets.
type Shape struct {
	Kind    Kind
	Offsets [4]Offset
}

// Bounds holds the extreme offsets of a shape on each axis, inclusive.
type Bounds struct {
	Left, Right, Top, Bottom int
}

var catalog = [NumKinds]Shape{
	{KindI, [4]Offset{{-2, 0}, {-1, 0}, {0, 0}, {1, 0}}},
	{KindS, [4]Offset{{-1, 0}, {0, 0}, {0, -1}, {1, -1}}},
	{KindZ, [4]Offset{{-1, -1}, {0, 0}, {0, -1}, {1, 0}}},
	{KindO, [4]Offset{{-1, -1}, {-1, 0}, {0, 0}, {0, -1}}},
	{KindJ, [4]Offset{{-1, -1}, {-1, 0}, {0, 0}, {1, 0}}},
	{KindL, [4]Offset{{1, -1}, {-1, 0}, {0, 0}, {1, 0}}},
	{KindT, [4]Offset{{-1, 0}, {0, 0}, {0, -1}, {1, 0}}},
}

// ShapeOf returns the canonical (unrotated) shape for k.
func ShapeOf(k Kind) Shape {
	if int(k) >= NumKinds {
		panic("engine: unknown shape kind " + k.String())
	}
	return catalog[k]
}

// Rotate returns the shape turned clockwise by r quarter turns. Any integer
// is accepted; r is reduced with a Euclidean modulo, so -1 is the same as 3.
func (s Shape) Rotate(r int) Shape {
	r = normRotation(r)
	if r == 0 {
		return s
	}
	for i, o := range s.Offsets {
		s.Offsets[i] = rotateOffset(o, r)
	}
	return s
}

// Bounds returns the extreme offsets of s.
func (s Shape) Bounds() Bounds {
	b := Bounds{Left: s.Offsets[0].DX, Right: s.Offsets[0].DX, Top: s.Offsets[0].DY, Bottom: s.Offsets[0].DY}
	for _, o := range s.Offsets[1:] {
		b.Left = min(b.Left, o.DX)
		b.Right = max(b.Right, o.DX)
		b.Top = min(b.Top, o.DY)
		b.Bottom = max(b.Bottom, o.DY)
	}
	return b
}

// rotateOffset applies the closed-form quarter-turn transform. The shift
// term is a half-cell correction that keeps the rotated box aligned to the
// grid without floating point.
func rotateOffset(o Offset, r int) Offset {
	return Offset{
		DX: o.DX*turn(r) + o.DY*turn(r-1) - shift(r),
		DY: o.DX*turn(r+1) + o.DY*turn(r) - shift(r+1),
	}
}

// turn yields 1, 0, -1, 0 for r = 0..3.
func turn(r int) int {
	r = normRotation(r)
	return (1 - (r & 1)) * (1 - (r & 2))
}

// shift yields 0, 0, 1, 1 for r = 0..3.
func shift(r int) int {
	r = normRotation(r)
	return (r & 2) >> 1
}

func normRotation(r int) int {
	return ((r % 4) + 4) % 4
}

// catalogExtent is the widest and tallest footprint of any shape in any
// rotation.
func catalogExtent() (width, height int) {
	for _, s := range catalog {
		for r := range 4 {
			b := s.Rotate(r).Bounds()
			width = max(width, b.Right-b.Left+1)
			height = max(height, b.Bottom-b.Top+1)
		}
	}
	return width, height
}
