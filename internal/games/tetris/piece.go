package tetris

import "github.com/vovakirdan/tui-tetris/internal/core"

// PieceType identifies one of the seven tetrominoes.
type PieceType int

const (
	PieceO PieceType = iota
	PieceI
	PieceS
	PieceZ
	PieceJ
	PieceL
	PieceT
)

const pieceTypeCount = 7

// AllPieceTypes lists every tetromino in canonical order.
var AllPieceTypes = [pieceTypeCount]PieceType{PieceO, PieceI, PieceS, PieceZ, PieceJ, PieceL, PieceT}

// Valid returns true for the seven known piece types.
func (t PieceType) Valid() bool {
	return t >= PieceO && t <= PieceT
}

// String returns the single-letter name of the piece type.
func (t PieceType) String() string {
	switch t {
	case PieceO:
		return "O"
	case PieceI:
		return "I"
	case PieceS:
		return "S"
	case PieceZ:
		return "Z"
	case PieceJ:
		return "J"
	case PieceL:
		return "L"
	case PieceT:
		return "T"
	default:
		return "?"
	}
}

// Color returns the display color of the piece type.
func (t PieceType) Color() core.Color {
	switch t {
	case PieceO:
		return core.ColorYellow
	case PieceI:
		return core.ColorCyan
	case PieceS:
		return core.ColorGreen
	case PieceZ:
		return core.ColorRed
	case PieceJ:
		return core.ColorBlue
	case PieceL:
		return core.ColorOrange
	case PieceT:
		return core.ColorMagenta
	default:
		return core.ColorDefault
	}
}

// Rotation is one of the four orientation states.
type Rotation int

const (
	Rot0 Rotation = iota
	Rot90
	Rot180
	Rot270
)

const rotationCount = 4

// Valid returns true for the four rotation states.
func (r Rotation) Valid() bool {
	return r >= Rot0 && r <= Rot270
}

// Degrees returns the clockwise angle of the rotation state.
func (r Rotation) Degrees() int {
	return int(r) * 90
}

// Direction is a rotation direction.
type Direction int

const (
	Clockwise Direction = iota
	CounterClockwise
)

// String returns "CW" or "CCW".
func (d Direction) String() string {
	if d == CounterClockwise {
		return "CCW"
	}
	return "CW"
}

// Rotate steps a rotation state one quarter turn in the given direction.
func Rotate(d Direction, r Rotation) Rotation {
	if d == CounterClockwise {
		return (r + rotationCount - 1) % rotationCount
	}
	return (r + 1) % rotationCount
}

// Point is a board coordinate. X grows rightward, Y grows downward.
type Point struct {
	X, Y int
}

// Piece is a tetromino placed on the board. Position is the top-left
// corner of the shape's bounding box in board coordinates.
type Piece struct {
	Type     PieceType
	Rotation Rotation
	Position Point
}

// NewPiece creates a piece of the given type in spawn orientation at (x, y).
func NewPiece(t PieceType, x, y int) Piece {
	return Piece{Type: t, Rotation: Rot0, Position: Point{X: x, Y: y}}
}

// Shape returns the occupancy pattern for the piece's type and rotation.
func (p Piece) Shape() Shape {
	return ShapeOf(p.Type, p.Rotation)
}

// IsOccupied reports whether the piece covers the board cell (row, col).
// Cells outside the piece's bounding box are simply not occupied.
func IsOccupied(row, col int, p Piece) bool {
	return p.Shape().At(row-p.Position.Y, col-p.Position.X)
}

// Width returns the width of the piece's bounding box.
func Width(p Piece) int {
	return p.Shape().Size()
}

// Height returns the height of the piece's bounding box.
func Height(p Piece) int {
	return p.Shape().Size()
}

// Cells returns the board coordinates of every occupied cell of the piece,
// ordered by row then column.
func (p Piece) Cells() []Point {
	s := p.Shape()
	cells := make([]Point, 0, 4)
	for r := 0; r < s.Size(); r++ {
		for c := 0; c < s.Size(); c++ {
			if s.At(r, c) {
				cells = append(cells, Point{X: p.Position.X + c, Y: p.Position.Y + r})
			}
		}
	}
	return cells
}

// Translate returns a copy of the piece moved by (dx, dy).
func (p Piece) Translate(dx, dy int) Piece {
	p.Position.X += dx
	p.Position.Y += dy
	return p
}

// WithRotation returns a copy of the piece in the given rotation state.
func (p Piece) WithRotation(r Rotation) Piece {
	p.Rotation = r
	return p
}

// Collides reports whether any occupied cell of the piece lies on an
// occupied board cell, left or right of the board, or below the floor.
// Cells above row 0 are allowed so pieces may overhang the top edge.
func Collides(p Piece, b Board) bool {
	for _, c := range p.Cells() {
		if c.X < 0 || c.X >= b.Columns() || c.Y >= b.Rows() {
			return true
		}
		if c.Y >= 0 && b.At(c.X, c.Y) {
			return true
		}
	}
	return false
}
