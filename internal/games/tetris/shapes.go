package tetris

// Shape is the occupancy pattern of one tetromino in one rotation state.
// S, Z, J, L and T use a 3x3 box, I and O a 4x4 box.
type Shape struct {
	size  int
	cells [4][4]bool
}

// Size returns the side length of the shape's bounding box.
func (s Shape) Size() int {
	return s.size
}

// At reports whether the shape has a set cell at (row, col).
// Offsets outside the bounding box are empty.
func (s Shape) At(row, col int) bool {
	if row < 0 || row >= s.size || col < 0 || col >= s.size {
		return false
	}
	return s.cells[row][col]
}

// String renders the shape with '#' for set cells.
func (s Shape) String() string {
	out := make([]byte, 0, s.size*(s.size+1))
	for r := 0; r < s.size; r++ {
		if r > 0 {
			out = append(out, '\n')
		}
		for c := 0; c < s.size; c++ {
			if s.cells[r][c] {
				out = append(out, '#')
			} else {
				out = append(out, '.')
			}
		}
	}
	return string(out)
}

// shape builds a Shape from row patterns. Any byte other than '.' is set.
func shape(rows ...string) Shape {
	s := Shape{size: len(rows)}
	for r, line := range rows {
		for c := 0; c < len(line); c++ {
			s.cells[r][c] = line[c] != '.'
		}
	}
	return s
}

// shapes holds the 28 fixed patterns, indexed by [PieceType][Rotation].
// Rotation states follow the standard rotation system: 0 is the spawn
// orientation, then 90, 180 and 270 degrees clockwise.
var shapes = [pieceTypeCount][rotationCount]Shape{
	PieceO: {
		shape("....", ".##.", ".##.", "...."),
		shape("....", ".##.", ".##.", "...."),
		shape("....", ".##.", ".##.", "...."),
		shape("....", ".##.", ".##.", "...."),
	},
	PieceI: {
		shape("....", "####", "....", "...."),
		shape("..#.", "..#.", "..#.", "..#."),
		shape("....", "....", "####", "...."),
		shape(".#..", ".#..", ".#..", ".#.."),
	},
	PieceS: {
		shape(".##", "##.", "..."),
		shape(".#.", ".##", "..#"),
		shape("...", ".##", "##."),
		shape("#..", "##.", ".#."),
	},
	PieceZ: {
		shape("##.", ".##", "..."),
		shape("..#", ".##", ".#."),
		shape("...", "##.", ".##"),
		shape(".#.", "##.", "#.."),
	},
	PieceJ: {
		shape("#..", "###", "..."),
		shape(".##", ".#.", ".#."),
		shape("...", "###", "..#"),
		shape(".#.", ".#.", "##."),
	},
	PieceL: {
		shape("..#", "###", "..."),
		shape(".#.", ".#.", ".##"),
		shape("...", "###", "#.."),
		shape("##.", ".#.", ".#."),
	},
	PieceT: {
		shape(".#.", "###", "..."),
		shape(".#.", ".##", ".#."),
		shape("...", "###", ".#."),
		shape(".#.", "##.", ".#."),
	},
}

// ShapeOf returns the fixed pattern for a piece type in a rotation state.
// Unknown types or rotations yield an empty shape.
func ShapeOf(t PieceType, r Rotation) Shape {
	if !t.Valid() || !r.Valid() {
		return Shape{}
	}
	return shapes[t][r]
}
