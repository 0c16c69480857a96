package tetris

import (
	"fmt"
	"strings"
)

// Standard playfield geometry.
const (
	DefaultRows           = 22
	DefaultColumns        = 10
	DefaultObstructedRows = 2
)

// Board is the playfield grid. Cells are stored in row-major order:
// index = y*columns + x, with y growing downward.
//
// Board behaves as an immutable value: every operation that changes cells
// returns a new Board and leaves the receiver untouched.
type Board struct {
	rows       int
	columns    int
	obstructed int
	cells      []bool
}

// EmptyBoard creates a board with all cells empty.
// The top obstructedRows rows form the hidden buffer above the visible field.
func EmptyBoard(rows, columns, obstructedRows int) Board {
	if rows < 0 {
		rows = 0
	}
	if columns < 0 {
		columns = 0
	}
	return Board{
		rows:       rows,
		columns:    columns,
		obstructed: obstructedRows,
		cells:      make([]bool, rows*columns),
	}
}

// Rows returns the total number of rows including the hidden buffer.
func (b Board) Rows() int {
	return b.rows
}

// Columns returns the board width.
func (b Board) Columns() int {
	return b.columns
}

// ObstructedRows returns the number of hidden buffer rows.
func (b Board) ObstructedRows() int {
	return b.obstructed
}

// VisibleRows returns the number of rows in the visible play field.
func (b Board) VisibleRows() int {
	return b.rows - b.obstructed
}

// InBounds returns true if (x, y) addresses a cell of the board.
func (b Board) InBounds(x, y int) bool {
	return x >= 0 && x < b.columns && y >= 0 && y < b.rows
}

// At reports whether the cell at (x, y) is occupied.
// Out-of-bounds cells read as empty.
func (b Board) At(x, y int) bool {
	if !b.InBounds(x, y) {
		return false
	}
	return b.cells[y*b.columns+x]
}

// With returns a copy of the board with the cell at (x, y) set to filled.
// Out-of-bounds coordinates leave the copy unchanged.
func (b Board) With(x, y int, filled bool) Board {
	next := b.clone()
	if next.InBounds(x, y) {
		next.cells[y*next.columns+x] = filled
	}
	return next
}

// clone returns a deep copy of the board.
func (b Board) clone() Board {
	cells := make([]bool, len(b.cells))
	copy(cells, b.cells)
	b.cells = cells
	return b
}

// Merge returns a board where every cell occupied by the piece is set.
// Collision is not validated; cells falling outside the grid are dropped.
func Merge(p Piece, b Board) Board {
	next := b.clone()
	for _, c := range p.Cells() {
		if next.InBounds(c.X, c.Y) {
			next.cells[c.Y*next.columns+c.X] = true
		}
	}
	return next
}

// rowFull reports whether every cell of row y is occupied.
func (b Board) rowFull(y int) bool {
	if b.columns == 0 {
		return false
	}
	for x := 0; x < b.columns; x++ {
		if !b.cells[y*b.columns+x] {
			return false
		}
	}
	return true
}

// CountFullRows returns the number of rows whose every cell is occupied.
func CountFullRows(b Board) int {
	count := 0
	for y := 0; y < b.rows; y++ {
		if b.rowFull(y) {
			count++
		}
	}
	return count
}

// RemoveFullRows removes all full rows, compacts the remaining rows downward
// keeping their order, and pads the top with empty rows so the dimensions
// are preserved.
func RemoveFullRows(b Board) Board {
	next := EmptyBoard(b.rows, b.columns, b.obstructed)

	// Copy surviving rows bottom-up
	dst := b.rows - 1
	for y := b.rows - 1; y >= 0; y-- {
		if b.rowFull(y) {
			continue
		}
		copy(next.cells[dst*b.columns:(dst+1)*b.columns], b.cells[y*b.columns:(y+1)*b.columns])
		dst--
	}
	return next
}

// DropHiddenRows discards the top n rows. It is a view helper used to render
// only the visible region; the result is not meant to be played on.
func DropHiddenRows(n int, b Board) Board {
	if n < 0 {
		n = 0
	}
	if n > b.rows {
		n = b.rows
	}
	next := EmptyBoard(b.rows-n, b.columns, 0)
	copy(next.cells, b.cells[n*b.columns:])
	return next
}

// FilledCount returns the number of occupied cells.
func (b Board) FilledCount() int {
	count := 0
	for _, c := range b.cells {
		if c {
			count++
		}
	}
	return count
}

// Equal returns true if two boards have the same dimensions and contents.
func (b Board) Equal(other Board) bool {
	if b.rows != other.rows || b.columns != other.columns || b.obstructed != other.obstructed {
		return false
	}
	for i, c := range b.cells {
		if c != other.cells[i] {
			return false
		}
	}
	return true
}

// String renders the board as text, one line per row, '#' for occupied
// cells and '.' for empty ones.
func (b Board) String() string {
	var sb strings.Builder
	sb.Grow(b.rows * (b.columns + 1))
	for y := 0; y < b.rows; y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x := 0; x < b.columns; x++ {
			if b.cells[y*b.columns+x] {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
	}
	return sb.String()
}

// ParseBoard builds a board from the text form produced by String.
// Any character other than '.' marks an occupied cell.
func ParseBoard(text string, obstructedRows int) (Board, error) {
	lines := strings.Split(strings.TrimSpace(text), "\n")
	columns := len(strings.TrimSpace(lines[0]))
	b := EmptyBoard(len(lines), columns, obstructedRows)

	for y, line := range lines {
		line = strings.TrimSpace(line)
		if len(line) != columns {
			return Board{}, fmt.Errorf("tetris: row %d has %d cells, want %d", y, len(line), columns)
		}
		for x := 0; x < columns; x++ {
			if line[x] != '.' {
				b.cells[y*columns+x] = true
			}
		}
	}
	return b, nil
}
