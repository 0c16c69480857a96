// Package tetris implements a falling-block puzzle game.
//
// The engine (Board, Piece, wall kicks, bag randomizer and Machine) is pure:
// Machine.Update maps a message and a state to the next state plus an
// optional effect request. Game adapts the engine to the arcade platform by
// turning fixed-rate ticks and input actions into messages and by answering
// effect requests with a seeded random source.
package tetris

import (
	"math"
	"math/rand"
	"time"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/registry"
)

// Minimum screen size: board (22 wide, 22 tall) plus the side panel.
const (
	minScreenW = 40
	minScreenH = 23
)

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names are ignored.
func SetDifficultyPreset(preset string) {
	p, err := config.ParseDifficulty(preset)
	if err != nil {
		difficultyPreset = ""
		return
	}
	difficultyPreset = p
}

func init() {
	registry.Register("tetris", func() registry.Game {
		return New()
	})
}

// RulesFromConfig converts a loaded configuration into engine rules.
func RulesFromConfig(cfg config.TetrisConfig) Rules {
	return Rules{
		Rows:             cfg.Board.Rows,
		Columns:          cfg.Board.Columns,
		ObstructedRows:   cfg.Board.ObstructedRows,
		LevelUpEvery:     cfg.Rules.LevelUpEvery,
		VisibleNextCount: cfg.Rules.VisibleNextCount,
		LineScores:       append([]int(nil), cfg.Rules.LineScores...),
		GhostEnabled:     cfg.Rules.GhostEnabled,
		GravityBase:      time.Duration(cfg.Gravity.BaseDelayMS) * time.Millisecond,
		GravityFactor:    cfg.Gravity.Factor,
		GravityMin:       time.Duration(cfg.Gravity.MinDelayMS) * time.Millisecond,
		GravityFixed:     cfg.Gravity.Fixed,
	}
}

// Game drives the state machine for the arcade platform.
type Game struct {
	cfg     *config.TetrisConfig
	machine Machine
	state   State
	queue   []Msg // Pending messages, delivered one at a time in order
	rng     *rand.Rand

	tick         uint64
	tickRate     int
	gravityTicks int // Ticks since the last automatic downward move

	// lastBoard is the most recent gameplay board, kept as the backdrop of
	// the game over screen.
	lastBoard Board

	screenW  int
	screenH  int
	tooSmall bool
}

// New creates a game that loads its configuration on Reset.
func New() *Game {
	return &Game{}
}

// NewWithConfig creates a game with an explicit configuration.
func NewWithConfig(cfg config.TetrisConfig) *Game {
	return &Game{cfg: &cfg}
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "tetris"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Tetris"
}

// Reset initializes the game and puts it on the start screen.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	if g.cfg == nil {
		cfg, _, err := config.LoadTetris(configPath)
		if err != nil {
			cfg = config.DefaultTetrisConfig()
		}
		if difficultyPreset != "" {
			config.ApplyTetrisPreset(&cfg, difficultyPreset)
		}
		g.cfg = &cfg
	}

	g.machine = NewMachine(RulesFromConfig(*g.cfg))
	g.state = g.machine.Init()
	g.queue = g.queue[:0]
	g.rng = rand.New(rand.NewSource(runtime.Seed))
	g.tick = 0
	g.tickRate = runtime.TickRate
	if g.tickRate <= 0 {
		g.tickRate = 60
	}
	g.gravityTicks = 0
	g.lastBoard = EmptyBoard(g.cfg.Board.Rows, g.cfg.Board.Columns, g.cfg.Board.ObstructedRows)
	g.Resize(runtime.ScreenW, runtime.ScreenH)
}

// Resize updates the screen dimensions without touching the game state.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	g.tooSmall = w < minScreenW || h < minScreenH
}

// Step advances the game by one tick: input actions are queued in arrival
// order, gravity adds a downward move when its interval has elapsed, and the
// queue is drained through the state machine.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	if g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	for _, a := range in.Actions() {
		if msg, ok := actionMsg(a); ok {
			g.Send(msg)
		}
	}
	g.drain()

	g.applyGravity()
	g.drain()

	return core.StepResult{State: g.State()}
}

// Send queues a message for delivery on the next drain.
func (g *Game) Send(msg Msg) {
	g.queue = append(g.queue, msg)
}

// drain delivers queued messages until the queue is empty. Effects are
// answered by queueing their response behind any pending messages.
func (g *Game) drain() {
	for len(g.queue) > 0 {
		msg := g.queue[0]
		g.queue = g.queue[1:]

		next, eff := g.machine.Update(msg, g.state)
		g.state = next
		if gp, ok := next.(Gameplay); ok {
			g.lastBoard = gp.Board
		}
		g.handleEffect(eff)
	}
}

// handleEffect performs a side effect requested by the machine.
func (g *Game) handleEffect(eff Effect) {
	switch e := eff.(type) {
	case RequestBag:
		n := e.Min
		if e.Max > e.Min {
			n += g.rng.Intn(e.Max - e.Min + 1)
		}
		g.Send(NextBag{Types: BagFromIndex(n)})
	}
}

// applyGravity counts ticks while playing and queues a downward move when
// the level's gravity interval has elapsed. Gravity is suspended in every
// other state.
func (g *Game) applyGravity() {
	gp, ok := g.state.(Gameplay)
	if !ok {
		g.gravityTicks = 0
		return
	}

	g.gravityTicks++
	if g.gravityTicks >= g.gravityInterval(gp.Level) {
		g.gravityTicks = 0
		g.Send(Down)
	}
}

// gravityInterval converts the level's gravity delay to a number of ticks.
func (g *Game) gravityInterval(level int) int {
	delay := g.machine.Rules().GravityDelay(level)
	ticks := int(math.Ceil(delay.Seconds() * float64(g.tickRate)))
	if ticks < 1 {
		ticks = 1
	}
	return ticks
}

// actionMsg translates a platform action into a machine message.
func actionMsg(a core.Action) (Msg, bool) {
	switch a {
	case core.ActionLeft:
		return Left, true
	case core.ActionRight:
		return Right, true
	case core.ActionDown:
		return Down, true
	case core.ActionDrop:
		return Drop, true
	case core.ActionRotateCW:
		return RotateMsg(Clockwise), true
	case core.ActionRotateCCW:
		return RotateMsg(CounterClockwise), true
	case core.ActionToggleGhost:
		return ToggleGhost{}, true
	case core.ActionPause:
		return Pause{}, true
	case core.ActionConfirm, core.ActionRestart:
		return Begin{}, true
	default:
		return nil, false
	}
}

// Current returns the current machine state.
func (g *Game) Current() State {
	return g.state
}

// GravityDelay returns the gravity interval for the current level, or zero
// when gravity is suspended.
func (g *Game) GravityDelay() time.Duration {
	gp, ok := g.state.(Gameplay)
	if !ok {
		return 0
	}
	return g.machine.Rules().GravityDelay(gp.Level)
}

// State returns the current platform-level game state.
func (g *Game) State() core.GameState {
	switch st := g.state.(type) {
	case Gameplay:
		return core.GameState{Score: st.Score, Level: st.Level}
	case Paused:
		return core.GameState{Score: st.Game.Score, Level: st.Game.Level, Paused: true}
	case GameOver:
		return core.GameState{Score: st.Score, Level: st.Level, GameOver: true}
	default:
		return core.GameState{Paused: g.tooSmall}
	}
}
