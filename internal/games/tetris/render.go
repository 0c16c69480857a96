package tetris

import (
	"fmt"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

const (
	cellWidth  = 2  // Each board cell is two characters wide
	panelWidth = 14 // Side panel with preview and stats
	panelGap   = 2
)

// Visual cells
const (
	blockCell = "[]"
	ghostCell = "::"
	emptyCell = " ."
)

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	board := g.lastBoard
	var play *Gameplay
	switch st := g.state.(type) {
	case Gameplay:
		play = &st
	case Paused:
		play = &st.Game
	}
	if play != nil {
		board = play.Board
	}

	visible := board.VisibleRows()
	boxW := board.Columns()*cellWidth + 2
	boxH := visible + 2
	totalW := boxW + panelGap + panelWidth

	boardX := (g.screenW - totalW) / 2
	boardY := 1
	if boardX < 0 {
		boardX = 0
	}

	dst.DrawTextColored(boardX+(boxW-len("TETRIS"))/2, 0, "TETRIS", core.ColorBrightWhite)
	dst.DrawBox(core.NewRect(boardX, boardY, boxW, boxH))

	g.renderBoard(dst, board, play, boardX+1, boardY+1)
	g.renderPanel(dst, play, boardX+boxW+panelGap, boardY)
	g.renderOverlays(dst, boardX+boxW/2, boardY+boxH/2)
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Window too small")
	dst.DrawTextCentered(y+1, fmt.Sprintf("Need at least %dx%d", minScreenW, minScreenH))
}

// renderBoard draws locked cells, the ghost and the falling piece.
// Only the visible rows are shown; the hidden buffer is cut off.
func (g *Game) renderBoard(dst *core.Screen, board Board, play *Gameplay, originX, originY int) {
	hidden := board.ObstructedRows()
	view := DropHiddenRows(hidden, board)

	for y := 0; y < view.Rows(); y++ {
		for x := 0; x < view.Columns(); x++ {
			px := originX + x*cellWidth
			if view.At(x, y) {
				dst.DrawTextColored(px, originY+y, blockCell, core.ColorWhite)
			} else {
				dst.DrawTextColored(px, originY+y, emptyCell, core.ColorGray)
			}
		}
	}

	if play == nil || !play.HasPiece {
		return
	}

	if ghost, ok := GhostPiece(*play); ok {
		g.drawPiece(dst, ghost, hidden, originX, originY, ghostCell, core.ColorGray)
	}
	g.drawPiece(dst, play.Piece, hidden, originX, originY, blockCell, play.Piece.Type.Color())
}

// drawPiece draws the cells of a piece that lie in the visible region.
func (g *Game) drawPiece(dst *core.Screen, p Piece, hidden, originX, originY int, glyph string, color core.Color) {
	for _, c := range p.Cells() {
		row := c.Y - hidden
		if row < 0 {
			continue
		}
		dst.DrawTextColored(originX+c.X*cellWidth, originY+row, glyph, color)
	}
}

// renderPanel draws the preview and stats next to the board.
func (g *Game) renderPanel(dst *core.Screen, play *Gameplay, x, y int) {
	var score, level, lines int
	switch st := g.state.(type) {
	case GameOver:
		score, level, lines = st.Score, st.Level, st.LinesCleared
	default:
		if play != nil {
			score, level, lines = play.Score, play.Level, play.LinesCleared
		}
	}

	dst.DrawText(x, y, "NEXT")
	row := y + 1
	if play != nil {
		preview := g.machine.Rules().VisibleNextCount
		for i := 0; i < preview && i < len(play.Next); i++ {
			row = g.drawPreview(dst, play.Next[i], x, row)
		}
	}

	row = core.Max(row, y+4) + 1
	dst.DrawText(x, row, fmt.Sprintf("SCORE %d", score))
	dst.DrawText(x, row+1, fmt.Sprintf("LEVEL %d", level))
	dst.DrawText(x, row+2, fmt.Sprintf("LINES %d", lines))

	if play != nil {
		ghost := "off"
		if play.GhostEnabled {
			ghost = "on"
		}
		dst.DrawText(x, row+4, "GHOST "+ghost)
	}
}

// drawPreview draws a piece type in spawn orientation, skipping empty rows
// of its bounding box. Returns the next free row.
func (g *Game) drawPreview(dst *core.Screen, t PieceType, x, y int) int {
	s := ShapeOf(t, Rot0)
	for r := 0; r < s.Size(); r++ {
		filled := false
		for c := 0; c < s.Size(); c++ {
			if s.At(r, c) {
				filled = true
				dst.DrawTextColored(x+c*cellWidth, y, blockCell, t.Color())
			}
		}
		if filled {
			y++
		}
	}
	return y + 1
}

// renderOverlays draws game state overlays.
func (g *Game) renderOverlays(dst *core.Screen, centerX, centerY int) {
	switch st := g.state.(type) {
	case Start:
		drawOverlay(dst, centerX, centerY, "TETRIS", "Press Enter to start")
	case Paused:
		drawOverlay(dst, centerX, centerY, "PAUSED", "Press P to resume")
	case GameOver:
		drawOverlay(dst, centerX, centerY, "GAME OVER", fmt.Sprintf("Score: %d", st.Score), "Press R to restart")
	}
}

// drawOverlay draws a centered text overlay.
func drawOverlay(dst *core.Screen, centerX, centerY int, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		if len(line) > maxLen {
			maxLen = len(line)
		}
	}

	boxW := maxLen + 4
	boxH := len(lines) + 2
	boxX := centerX - boxW/2
	boxY := centerY - boxH/2

	// Clear area behind overlay
	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBoxColored(core.NewRect(boxX, boxY, boxW, boxH), core.ColorYellow)

	for i, line := range lines {
		dst.DrawText(centerX-len(line)/2, boxY+1+i, line)
	}
}

// Controls returns the control hints for the game.
func (g *Game) Controls() string {
	return "←/→: Move | ↓: Soft drop | Space: Drop | ↑/X: Rotate | Z: Rotate back | G: Ghost | P: Pause | Q: Quit"
}
