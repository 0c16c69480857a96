package tetris

import (
	"math"
	"time"
)

// Rules holds the tunable parameters of the game.
type Rules struct {
	Rows           int
	Columns        int
	ObstructedRows int

	// LevelUpEvery is the number of cleared lines per level.
	LevelUpEvery int
	// VisibleNextCount is how many upcoming pieces stay queued for preview
	// after a piece is taken.
	VisibleNextCount int
	// LineScores holds the base score for clearing 0, 1, 2, 3 and 4+ lines
	// in one lock. It is multiplied by the level before the lock.
	LineScores []int
	// GhostEnabled is the landing preview setting for a new game.
	GhostEnabled bool

	// Gravity interval at level 1, multiplied by GravityFactor per level.
	GravityBase   time.Duration
	GravityFactor float64
	// GravityMin is a floor for the interval at very high levels.
	GravityMin time.Duration
	// GravityFixed disables acceleration: every level uses GravityBase.
	GravityFixed bool
}

// DefaultRules returns the standard rules: a 10x22 board with two hidden
// rows, a level every 25 lines and one piece of look-ahead.
func DefaultRules() Rules {
	return Rules{
		Rows:             DefaultRows,
		Columns:          DefaultColumns,
		ObstructedRows:   DefaultObstructedRows,
		LevelUpEvery:     25,
		VisibleNextCount: 1,
		LineScores:       []int{0, 40, 100, 300, 1200},
		GhostEnabled:     true,
		GravityBase:      1000 * time.Millisecond,
		GravityFactor:    0.9,
		GravityMin:       50 * time.Millisecond,
	}
}

// GravityDelay returns the interval between automatic downward moves:
// GravityBase * GravityFactor^(level-1), never below GravityMin.
func (r Rules) GravityDelay(level int) time.Duration {
	if level < 1 {
		level = 1
	}
	if r.GravityFixed {
		return r.GravityBase
	}
	delay := time.Duration(float64(r.GravityBase) * math.Pow(r.GravityFactor, float64(level-1)))
	if delay < r.GravityMin {
		delay = r.GravityMin
	}
	return delay
}

// LineScore returns the base score for clearing n lines in one lock.
// Counts beyond the table use its last entry.
func (r Rules) LineScore(n int) int {
	if n <= 0 || len(r.LineScores) == 0 {
		return 0
	}
	if n >= len(r.LineScores) {
		n = len(r.LineScores) - 1
	}
	return r.LineScores[n]
}

// LevelFor returns the level reached after clearing the given total of lines.
func (r Rules) LevelFor(lines int) int {
	if r.LevelUpEvery <= 0 {
		return 1
	}
	return lines/r.LevelUpEvery + 1
}

// Machine is the game state machine. Update is a pure function of the
// message and the current state; Machine only carries the rules.
type Machine struct {
	rules Rules
}

// NewMachine creates a machine using the given rules.
func NewMachine(rules Rules) Machine {
	return Machine{rules: rules}
}

// Rules returns the machine's rules.
func (m Machine) Rules() Rules {
	return m.rules
}

// Init returns the initial state.
func (m Machine) Init() State {
	return Start{}
}

// Update applies one message to a state and returns the next state plus an
// optional effect for the driver. Messages that make no sense in the
// current state leave it unchanged and return no effect.
func (m Machine) Update(msg Msg, s State) (State, Effect) {
	switch st := s.(type) {
	case Start:
		if _, ok := msg.(Begin); ok {
			return m.begin()
		}
		return st, nil

	case GameOver:
		if _, ok := msg.(Begin); ok {
			return m.begin()
		}
		return st, nil

	case Paused:
		if _, ok := msg.(Pause); ok {
			return m.resume(st.Game)
		}
		return st, nil

	case Gameplay:
		return m.updateGameplay(msg, st)

	default:
		return s, nil
	}
}

// begin starts a fresh game and immediately takes the first piece.
func (m Machine) begin() (State, Effect) {
	g := Gameplay{
		Board:        EmptyBoard(m.rules.Rows, m.rules.Columns, m.rules.ObstructedRows),
		Next:         nil,
		Level:        1,
		GhostEnabled: m.rules.GhostEnabled,
	}
	return m.takeNext(g)
}

// resume leaves Paused. A game that was waiting for a bag asks again, since
// an answer delivered while paused is ignored.
func (m Machine) resume(g Gameplay) (State, Effect) {
	if !g.HasPiece {
		return m.takeNext(g)
	}
	return g, nil
}

func (m Machine) updateGameplay(msg Msg, g Gameplay) (State, Effect) {
	switch msg := msg.(type) {
	case NextBag:
		next := append(append([]PieceType(nil), g.Next...), validTypes(msg.Types)...)
		g = g.withNext(next)
		if !g.HasPiece {
			return m.takeNext(g)
		}
		return g, nil

	case Move:
		if !g.HasPiece {
			return g, nil
		}
		return m.move(msg, g)

	case Pause:
		return Paused{Game: g}, nil

	case ToggleGhost:
		g.GhostEnabled = !g.GhostEnabled
		return g, nil

	default:
		return g, nil
	}
}

// move applies a translation or rotation to the falling piece.
func (m Machine) move(msg Move, g Gameplay) (State, Effect) {
	switch msg.Kind {
	case MoveLeft:
		return m.shift(g, -1), nil
	case MoveRight:
		return m.shift(g, 1), nil
	case MoveDown:
		next := g.Piece.Translate(0, 1)
		if !Collides(next, g.Board) {
			g.Piece = next
			return g, nil
		}
		return m.lock(g)
	case MoveDrop:
		g.Piece = dropPiece(g.Piece, g.Board)
		return m.lock(g)
	case MoveRotate:
		g.Piece, _ = RotatePiece(msg.Direction, g.Piece, g.Board)
		return g, nil
	default:
		return g, nil
	}
}

// shift moves the piece dx columns if the target is free.
func (m Machine) shift(g Gameplay, dx int) Gameplay {
	next := g.Piece.Translate(dx, 0)
	if !Collides(next, g.Board) {
		g.Piece = next
	}
	return g
}

// dropPiece moves p down until one more row would collide.
func dropPiece(p Piece, b Board) Piece {
	for {
		next := p.Translate(0, 1)
		if Collides(next, b) {
			return p
		}
		p = next
	}
}

// lock merges the falling piece into the board, clears full rows, updates
// the score and level, and takes the next piece. A piece that locks while
// its top row is still inside the hidden buffer ends the game.
func (m Machine) lock(g Gameplay) (State, Effect) {
	if g.Piece.Position.Y < m.rules.ObstructedRows {
		return GameOver{
			LinesCleared: g.LinesCleared,
			Level:        g.Level,
			Score:        g.Score,
		}, nil
	}

	board := Merge(g.Piece, g.Board)
	cleared := CountFullRows(board)
	if cleared > 0 {
		board = RemoveFullRows(board)
	}

	g.Score += m.rules.LineScore(cleared) * g.Level
	g.LinesCleared += cleared
	g.Level = m.rules.LevelFor(g.LinesCleared)
	g.Board = board
	g.Piece = Piece{}
	g.HasPiece = false

	return m.takeNext(g)
}

// takeNext pops the head of the queue into a freshly spawned piece, or asks
// for a new bag when the queue is not longer than the preview.
func (m Machine) takeNext(g Gameplay) (State, Effect) {
	if len(g.Next) <= m.rules.VisibleNextCount {
		return g, RequestBagEffect()
	}

	t := g.Next[0]
	g = g.withNext(g.Next[1:])
	g.Piece = m.SpawnPiece(t)
	g.HasPiece = true
	return g, nil
}

// SpawnPiece places a new piece of type t horizontally centered on row 0.
func (m Machine) SpawnPiece(t PieceType) Piece {
	p := NewPiece(t, 0, 0)
	p.Position.X = (m.rules.Columns - Width(p)) / 2
	return p
}

// GhostPiece returns where the falling piece would land if dropped.
// It reports false when the preview is disabled or no piece is falling.
func GhostPiece(g Gameplay) (Piece, bool) {
	if !g.GhostEnabled || !g.HasPiece {
		return Piece{}, false
	}
	return dropPiece(g.Piece, g.Board), true
}

// Ghost returns a copy of the board with the landed ghost piece merged in,
// for display only. The gameplay state is not changed.
func Ghost(g Gameplay) (Board, bool) {
	p, ok := GhostPiece(g)
	if !ok {
		return Board{}, false
	}
	return Merge(p, g.Board), true
}

// validTypes filters out unknown piece types from an external bag.
func validTypes(types []PieceType) []PieceType {
	out := make([]PieceType, 0, len(types))
	for _, t := range types {
		if t.Valid() {
			out = append(out, t)
		}
	}
	return out
}
