package tetris

// Snapshot captures the complete game state for determinism testing.
type Snapshot struct {
	Tick     uint64
	State    string // "start", "gameplay", "paused" or "game_over"
	Score    int
	Level    int
	Lines    int
	Board    string // Board.String() of the current (or last) board
	Piece    Piece
	HasPiece bool
	Next     []PieceType
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:  g.tick,
		State: StateName(g.state),
		Board: g.lastBoard.String(),
	}

	var play Gameplay
	switch st := g.state.(type) {
	case Gameplay:
		play = st
	case Paused:
		play = st.Game
	case GameOver:
		snap.Score, snap.Level, snap.Lines = st.Score, st.Level, st.LinesCleared
		return snap
	default:
		return snap
	}

	snap.Score = play.Score
	snap.Level = play.Level
	snap.Lines = play.LinesCleared
	snap.Board = play.Board.String()
	snap.Piece = play.Piece
	snap.HasPiece = play.HasPiece
	snap.Next = append([]PieceType(nil), play.Next...)
	return snap
}
