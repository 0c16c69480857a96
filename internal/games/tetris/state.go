package tetris

// State is one of Start, Gameplay, Paused or GameOver.
// Each transition produces a fresh value; states are never shared for
// mutation between transitions.
type State interface {
	isState()
}

// Start is the state before the first game: no board, waiting for Begin.
type Start struct{}

// Gameplay is the live play state.
type Gameplay struct {
	// Piece is the falling piece. It is only meaningful when HasPiece is set;
	// HasPiece is false while the machine waits for a NextBag answer.
	Piece    Piece
	HasPiece bool

	Board        Board
	Next         []PieceType // Upcoming piece types, head first
	LinesCleared int
	Level        int
	Score        int
	GhostEnabled bool
}

// Paused carries the full gameplay payload while updates are suspended.
type Paused struct {
	Game Gameplay
}

// GameOver is the terminal summary of a finished game.
type GameOver struct {
	LinesCleared int
	Level        int
	Score        int
}

func (Start) isState()    {}
func (Gameplay) isState() {}
func (Paused) isState()   {}
func (GameOver) isState() {}

// withNext returns a copy of g whose Next slice is not shared with g.
func (g Gameplay) withNext(next []PieceType) Gameplay {
	g.Next = append([]PieceType(nil), next...)
	return g
}

// Msg is a discrete input delivered to the machine.
type Msg interface {
	isMsg()
}

// Begin starts a new game from Start or GameOver.
type Begin struct{}

// NextBag delivers a freshly drawn bag of piece types.
type NextBag struct {
	Types []PieceType
}

// MoveKind enumerates the piece moves.
type MoveKind int

const (
	MoveLeft MoveKind = iota
	MoveRight
	MoveDown
	MoveDrop
	MoveRotate
)

// String returns a readable name for the move kind.
func (k MoveKind) String() string {
	switch k {
	case MoveLeft:
		return "Left"
	case MoveRight:
		return "Right"
	case MoveDown:
		return "Down"
	case MoveDrop:
		return "Drop"
	case MoveRotate:
		return "Rotate"
	default:
		return "Unknown"
	}
}

// Move asks to move or rotate the falling piece.
// Direction is only used by MoveRotate.
type Move struct {
	Kind      MoveKind
	Direction Direction
}

// Pause toggles between Gameplay and Paused.
type Pause struct{}

// ToggleGhost flips whether the landing preview is shown.
type ToggleGhost struct{}

func (Begin) isMsg()       {}
func (NextBag) isMsg()     {}
func (Move) isMsg()        {}
func (Pause) isMsg()       {}
func (ToggleGhost) isMsg() {}

// Convenience constructors for the move messages.
var (
	Left  = Move{Kind: MoveLeft}
	Right = Move{Kind: MoveRight}
	Down  = Move{Kind: MoveDown}
	Drop  = Move{Kind: MoveDrop}
)

// RotateMsg returns the rotation message for a direction.
func RotateMsg(d Direction) Move {
	return Move{Kind: MoveRotate, Direction: d}
}

// Effect is a request to the driver. The machine never performs effects
// itself; answers arrive later as ordinary messages.
type Effect interface {
	isEffect()
}

// RequestBag asks for one uniformly drawn integer in [Min, Max], to be
// answered with NextBag{Types: BagFromIndex(n)}.
type RequestBag struct {
	Min, Max int
}

func (RequestBag) isEffect() {}

// StateName returns a short tag for a state, used by snapshots and the HUD.
func StateName(s State) string {
	switch s.(type) {
	case Start:
		return "start"
	case Gameplay:
		return "gameplay"
	case Paused:
		return "paused"
	case GameOver:
		return "game_over"
	default:
		return "unknown"
	}
}
