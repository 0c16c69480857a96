package tetris

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaultMachine() Machine {
	return NewMachine(DefaultRules())
}

// playing returns a gameplay state with the given piece falling on b.
func playing(p Piece, b Board) Gameplay {
	return Gameplay{
		Piece:        p,
		HasPiece:     true,
		Board:        b,
		Level:        1,
		GhostEnabled: true,
	}
}

func emptyDefaultBoard() Board {
	return EmptyBoard(DefaultRows, DefaultColumns, DefaultObstructedRows)
}

// fillRow returns b with row y filled except the listed columns.
func fillRow(b Board, y int, holes ...int) Board {
	skip := map[int]bool{}
	for _, x := range holes {
		skip[x] = true
	}
	for x := 0; x < b.Columns(); x++ {
		if !skip[x] {
			b = b.With(x, y, true)
		}
	}
	return b
}

func TestInitIsStart(t *testing.T) {
	assert.Equal(t, Start{}, defaultMachine().Init())
}

func TestBeginRequestsBag(t *testing.T) {
	m := defaultMachine()

	for _, from := range []State{Start{}, GameOver{Score: 500, Level: 3, LinesCleared: 60}} {
		next, eff := m.Update(Begin{}, from)

		gp, ok := next.(Gameplay)
		require.True(t, ok, "got %T", next)
		assert.False(t, gp.HasPiece)
		assert.Empty(t, gp.Next)
		assert.Equal(t, 1, gp.Level)
		assert.Zero(t, gp.Score)
		assert.Zero(t, gp.LinesCleared)
		assert.True(t, gp.GhostEnabled)
		assert.True(t, gp.Board.Equal(emptyDefaultBoard()))
		assert.Equal(t, RequestBag{Min: 1, Max: BagPermutations}, eff)
	}
}

func TestNextBagSpawnsCenteredPiece(t *testing.T) {
	m := defaultMachine()
	s, _ := m.Update(Begin{}, Start{})

	bag := []PieceType{PieceO, PieceI, PieceS, PieceZ, PieceJ, PieceL, PieceT}
	next, eff := m.Update(NextBag{Types: bag}, s)
	assert.Nil(t, eff)

	gp := next.(Gameplay)
	require.True(t, gp.HasPiece)
	assert.Equal(t, PieceO, gp.Piece.Type)
	assert.Equal(t, Rot0, gp.Piece.Rotation)
	assert.Equal(t, Point{X: 3, Y: 0}, gp.Piece.Position)
	assert.Equal(t, bag[1:], gp.Next)

	// The caller's slice is not retained.
	bag[1] = PieceT
	assert.Equal(t, PieceI, gp.Next[0])
}

func TestSpawnPieceCentering(t *testing.T) {
	m := defaultMachine()
	assert.Equal(t, 3, m.SpawnPiece(PieceI).Position.X)
	assert.Equal(t, 3, m.SpawnPiece(PieceT).Position.X)
	assert.Equal(t, 0, m.SpawnPiece(PieceT).Position.Y)
}

func TestNextBagAppendsWhilePieceFalls(t *testing.T) {
	m := defaultMachine()
	gp := playing(NewPiece(PieceT, 3, 5), emptyDefaultBoard())
	gp.Next = []PieceType{PieceI}

	next, eff := m.Update(NextBag{Types: []PieceType{PieceS, PieceType(99), PieceZ}}, gp)
	assert.Nil(t, eff)

	out := next.(Gameplay)
	assert.Equal(t, []PieceType{PieceI, PieceS, PieceZ}, out.Next, "unknown types dropped")
	assert.Equal(t, gp.Piece, out.Piece)
	assert.Equal(t, []PieceType{PieceI}, gp.Next, "input state untouched")
}

func TestShortBagKeepsWaiting(t *testing.T) {
	m := defaultMachine()
	s, _ := m.Update(Begin{}, Start{})

	// One type is not more than the preview, so another bag is requested.
	next, eff := m.Update(NextBag{Types: []PieceType{PieceT}}, s)
	assert.Equal(t, RequestBagEffect(), eff)
	gp := next.(Gameplay)
	assert.False(t, gp.HasPiece)
	assert.Equal(t, []PieceType{PieceT}, gp.Next)
}

func TestDownLocksAtFloor(t *testing.T) {
	m := defaultMachine()
	gp := playing(NewPiece(PieceO, 4, 19), emptyDefaultBoard())

	next, eff := m.Update(Down, gp)
	assert.Equal(t, RequestBagEffect(), eff)

	out := next.(Gameplay)
	assert.False(t, out.HasPiece)
	assert.Zero(t, out.Score)
	assert.Zero(t, out.LinesCleared)
	assert.Equal(t, 4, out.Board.FilledCount())
	for _, c := range []Point{{5, 20}, {6, 20}, {5, 21}, {6, 21}} {
		assert.True(t, out.Board.At(c.X, c.Y), "cell %v", c)
	}
}

func TestDownMovesWhenFree(t *testing.T) {
	m := defaultMachine()
	gp := playing(NewPiece(PieceT, 3, 5), emptyDefaultBoard())

	next, eff := m.Update(Down, gp)
	assert.Nil(t, eff)
	assert.Equal(t, 6, next.(Gameplay).Piece.Position.Y)
}

func TestLockTakesNextFromQueue(t *testing.T) {
	m := defaultMachine()
	gp := playing(NewPiece(PieceO, 4, 19), emptyDefaultBoard())
	gp.Next = []PieceType{PieceJ, PieceL}

	next, eff := m.Update(Down, gp)
	assert.Nil(t, eff)

	out := next.(Gameplay)
	require.True(t, out.HasPiece)
	assert.Equal(t, PieceJ, out.Piece.Type)
	assert.Equal(t, []PieceType{PieceL}, out.Next)
}

func TestLineClearScoring(t *testing.T) {
	tests := []struct {
		name      string
		board     func() Board
		piece     Piece
		lines     int
		level     int
		wantScore int
		wantLines int
		wantLevel int
	}{
		{
			name: "single",
			board: func() Board {
				return fillRow(emptyDefaultBoard(), 21, 0, 1, 2, 3)
			},
			piece:     NewPiece(PieceI, 0, 20),
			level:     1,
			wantScore: 40,
			wantLines: 1,
			wantLevel: 1,
		},
		{
			name: "tetris",
			board: func() Board {
				b := emptyDefaultBoard()
				for y := 18; y < 22; y++ {
					b = fillRow(b, y, 0)
				}
				return b
			},
			piece:     NewPiece(PieceI, -1, 18).WithRotation(Rot270),
			level:     1,
			wantScore: 1200,
			wantLines: 4,
			wantLevel: 1,
		},
		{
			name: "double at level 2",
			board: func() Board {
				b := fillRow(emptyDefaultBoard(), 21, 4, 5)
				return fillRow(b, 20, 4, 5)
			},
			piece:     NewPiece(PieceO, 3, 19),
			lines:     25,
			level:     2,
			wantScore: 200,
			wantLines: 27,
			wantLevel: 2,
		},
		{
			name: "level up uses previous level",
			board: func() Board {
				return fillRow(emptyDefaultBoard(), 21, 0, 1, 2, 3)
			},
			piece:     NewPiece(PieceI, 0, 20),
			lines:     24,
			level:     1,
			wantScore: 40,
			wantLines: 25,
			wantLevel: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := defaultMachine()
			gp := playing(tt.piece, tt.board())
			gp.LinesCleared = tt.lines
			gp.Level = tt.level
			require.False(t, Collides(gp.Piece, gp.Board))

			next, _ := m.Update(Down, gp)
			out, ok := next.(Gameplay)
			require.True(t, ok, "got %T", next)

			assert.Equal(t, tt.wantScore, out.Score)
			assert.Equal(t, tt.wantLines, out.LinesCleared)
			assert.Equal(t, tt.wantLevel, out.Level)
			assert.Zero(t, CountFullRows(out.Board))
		})
	}
}

func TestGameOverCarriesStats(t *testing.T) {
	m := defaultMachine()
	b := fillRow(emptyDefaultBoard(), 3, 0)
	gp := playing(NewPiece(PieceO, 3, 0), b) // blocked by row 3 while still in the hidden buffer
	gp.Score = 1234
	gp.Level = 4
	gp.LinesCleared = 80

	next, eff := m.Update(Down, gp)
	assert.Nil(t, eff)
	assert.Equal(t, GameOver{LinesCleared: 80, Level: 4, Score: 1234}, next)
}

func TestDropLocksAtLandingRow(t *testing.T) {
	m := defaultMachine()
	gp := playing(NewPiece(PieceO, 3, 0), emptyDefaultBoard())

	ghost, ok := GhostPiece(gp)
	require.True(t, ok)
	assert.Equal(t, 19, ghost.Position.Y)

	next, eff := m.Update(Drop, gp)
	assert.Equal(t, RequestBagEffect(), eff)

	out := next.(Gameplay)
	assert.True(t, out.Board.Equal(Merge(ghost, gp.Board)))
}

func TestShiftRespectsWalls(t *testing.T) {
	m := defaultMachine()
	gp := playing(NewPiece(PieceO, -1, 5), emptyDefaultBoard()) // touching the left wall

	next, _ := m.Update(Left, gp)
	assert.Equal(t, gp, next)

	next, _ = m.Update(Right, gp)
	assert.Equal(t, 0, next.(Gameplay).Piece.Position.X)
}

func TestRotateMessage(t *testing.T) {
	m := defaultMachine()
	gp := playing(NewPiece(PieceT, 3, 5), emptyDefaultBoard())

	next, eff := m.Update(RotateMsg(Clockwise), gp)
	assert.Nil(t, eff)
	assert.Equal(t, Rot90, next.(Gameplay).Piece.Rotation)

	next, _ = m.Update(RotateMsg(CounterClockwise), gp)
	assert.Equal(t, Rot270, next.(Gameplay).Piece.Rotation)
}

func TestPauseRoundTrip(t *testing.T) {
	m := defaultMachine()
	gp := playing(NewPiece(PieceZ, 2, 7), fillRow(emptyDefaultBoard(), 21, 5))
	gp.Next = []PieceType{PieceL, PieceJ}
	gp.Score = 300

	paused, eff := m.Update(Pause{}, gp)
	assert.Nil(t, eff)
	assert.Equal(t, Paused{Game: gp}, paused)

	// Everything but Pause is ignored while paused.
	for _, msg := range []Msg{Left, Down, Drop, RotateMsg(Clockwise), ToggleGhost{}, Begin{}, NextBag{Types: []PieceType{PieceO}}} {
		next, eff := m.Update(msg, paused)
		assert.Equal(t, paused, next, "%T", msg)
		assert.Nil(t, eff)
	}

	resumed, eff := m.Update(Pause{}, paused)
	assert.Nil(t, eff)
	assert.Equal(t, gp, resumed)
}

func TestResumeWithoutPieceRequestsBag(t *testing.T) {
	m := defaultMachine()
	s, _ := m.Update(Begin{}, Start{})

	paused, _ := m.Update(Pause{}, s)
	resumed, eff := m.Update(Pause{}, paused)
	assert.IsType(t, Gameplay{}, resumed)
	assert.Equal(t, RequestBagEffect(), eff)
}

func TestToggleGhost(t *testing.T) {
	m := defaultMachine()
	gp := playing(NewPiece(PieceT, 3, 5), emptyDefaultBoard())

	next, _ := m.Update(ToggleGhost{}, gp)
	off := next.(Gameplay)
	assert.False(t, off.GhostEnabled)

	off.GhostEnabled = true
	assert.Equal(t, gp, off, "only the ghost flag changes")

	_, ok := GhostPiece(next.(Gameplay))
	assert.False(t, ok)
	_, ok = Ghost(next.(Gameplay))
	assert.False(t, ok)
}

func TestGhostBoard(t *testing.T) {
	gp := playing(NewPiece(PieceO, 3, 0), emptyDefaultBoard())
	b, ok := Ghost(gp)
	require.True(t, ok)
	assert.Equal(t, 4, b.FilledCount())
	assert.True(t, b.At(4, 21))
	assert.Zero(t, gp.Board.FilledCount())
}

func TestIgnoredMessages(t *testing.T) {
	m := defaultMachine()

	for _, s := range []State{Start{}, GameOver{Score: 10}} {
		for _, msg := range []Msg{Left, Down, Drop, RotateMsg(Clockwise), Pause{}, ToggleGhost{}, NextBag{Types: AllPieceTypes[:]}} {
			next, eff := m.Update(msg, s)
			assert.Equal(t, s, next, "%T in %s", msg, StateName(s))
			assert.Nil(t, eff)
		}
	}

	// Moves are ignored while waiting for a bag.
	waiting, _ := m.Update(Begin{}, Start{})
	next, eff := m.Update(Drop, waiting)
	assert.Equal(t, waiting, next)
	assert.Nil(t, eff)
}

func TestRulesHelpers(t *testing.T) {
	r := DefaultRules()

	assert.Equal(t, 0, r.LineScore(0))
	assert.Equal(t, 40, r.LineScore(1))
	assert.Equal(t, 100, r.LineScore(2))
	assert.Equal(t, 300, r.LineScore(3))
	assert.Equal(t, 1200, r.LineScore(4))
	assert.Equal(t, 1200, r.LineScore(5))

	assert.Equal(t, 1, r.LevelFor(0))
	assert.Equal(t, 1, r.LevelFor(24))
	assert.Equal(t, 2, r.LevelFor(25))
	assert.Equal(t, 5, r.LevelFor(100))

	assert.Equal(t, time.Second, r.GravityDelay(1))
	assert.Equal(t, 900*time.Millisecond, r.GravityDelay(2))
	assert.Equal(t, 50*time.Millisecond, r.GravityDelay(100))

	r.GravityFixed = true
	assert.Equal(t, time.Second, r.GravityDelay(10))
}

func TestStateName(t *testing.T) {
	assert.Equal(t, "start", StateName(Start{}))
	assert.Equal(t, "gameplay", StateName(Gameplay{}))
	assert.Equal(t, "paused", StateName(Paused{}))
	assert.Equal(t, "game_over", StateName(GameOver{}))
}
