package tetris

// Kick is a candidate (dx, dy) offset tried when rotating a piece.
// Offsets are in board coordinates, so positive dy moves the piece down.
type Kick struct {
	DX, DY int
}

// Wall kick tables for the standard rotation system, indexed by
// [from rotation][direction]. Each row is tried in order and always starts
// with the unkicked (0, 0) attempt.
var (
	kicksJLSTZ = [rotationCount][2][]Kick{
		Rot0: {
			Clockwise:        {{0, 0}, {-1, 0}, {-1, -1}, {0, 2}, {-1, 2}},
			CounterClockwise: {{0, 0}, {1, 0}, {1, -1}, {0, 2}, {1, 2}},
		},
		Rot90: {
			Clockwise:        {{0, 0}, {1, 0}, {1, 1}, {0, -2}, {1, -2}},
			CounterClockwise: {{0, 0}, {1, 0}, {1, 1}, {0, -2}, {1, -2}},
		},
		Rot180: {
			Clockwise:        {{0, 0}, {1, 0}, {1, -1}, {0, 2}, {1, 2}},
			CounterClockwise: {{0, 0}, {-1, 0}, {-1, -1}, {0, 2}, {-1, 2}},
		},
		Rot270: {
			Clockwise:        {{0, 0}, {-1, 0}, {-1, 1}, {0, -2}, {-1, -2}},
			CounterClockwise: {{0, 0}, {-1, 0}, {-1, 1}, {0, -2}, {-1, -2}},
		},
	}

	kicksI = [rotationCount][2][]Kick{
		Rot0: {
			Clockwise:        {{0, 0}, {-2, 0}, {1, 0}, {-2, 1}, {1, -2}},
			CounterClockwise: {{0, 0}, {-1, 0}, {2, 0}, {-1, -2}, {2, 1}},
		},
		Rot90: {
			Clockwise:        {{0, 0}, {-1, 0}, {2, 0}, {-1, -2}, {2, 1}},
			CounterClockwise: {{0, 0}, {2, 0}, {-1, 0}, {2, -1}, {-1, 2}},
		},
		Rot180: {
			Clockwise:        {{0, 0}, {2, 0}, {-1, 0}, {2, -1}, {-1, 2}},
			CounterClockwise: {{0, 0}, {1, 0}, {-2, 0}, {1, 2}, {-2, -1}},
		},
		Rot270: {
			Clockwise:        {{0, 0}, {1, 0}, {-2, 0}, {1, 2}, {-2, -1}},
			CounterClockwise: {{0, 0}, {-2, 0}, {1, 0}, {-2, 1}, {1, -2}},
		},
	}

	kicksO = []Kick{{0, 0}}
)

// WallKicks returns the ordered kick offsets for rotating a piece of type t
// out of rotation r in direction d. The returned slice is a copy.
func WallKicks(r Rotation, d Direction, t PieceType) []Kick {
	var table []Kick
	switch {
	case !r.Valid() || (d != Clockwise && d != CounterClockwise):
		table = kicksO
	case t == PieceO:
		table = kicksO
	case t == PieceI:
		table = kicksI[r][d]
	default:
		table = kicksJLSTZ[r][d]
	}

	out := make([]Kick, len(table))
	copy(out, table)
	return out
}

// RotatePiece rotates p one quarter turn in direction d, trying each wall
// kick in table order. The first candidate that does not collide with the
// board wins. If every candidate collides, p is returned unchanged with
// ok set to false.
func RotatePiece(d Direction, p Piece, b Board) (Piece, bool) {
	rotated := p.WithRotation(Rotate(d, p.Rotation))
	for _, k := range WallKicks(p.Rotation, d, p.Type) {
		candidate := rotated.Translate(k.DX, k.DY)
		if !Collides(candidate, b) {
			return candidate, true
		}
	}
	return p, false
}
