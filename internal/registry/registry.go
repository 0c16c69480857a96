// Package registry keeps the set of playable games. Games register a
// factory from init(), so the CLI and the TUI platform can create them by ID
// without importing the game packages directly.
package registry

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

// ErrUnknownGame is returned by Create for an unregistered ID.
var ErrUnknownGame = errors.New("registry: unknown game")

// Game is what the platform drives. Implementations hold pure logic and
// never import Bubble Tea; the platform maps keys, owns the clock and
// paints the screen buffer.
type Game interface {
	// ID is the stable identifier used on the command line.
	ID() string

	// Title is the display name.
	Title() string

	// Reset (re)initializes the game for the given runtime settings.
	Reset(cfg core.RuntimeConfig)

	// Step advances the game by one fixed tick. Actions in the frame are
	// applied in the order they were pressed.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current state into dst.
	Render(dst *core.Screen)

	// State reports score and run status.
	State() core.GameState
}

// Resizer is implemented by games that react to terminal resizes without
// being reset.
type Resizer interface {
	Resize(w, h int)
}

// ControlsProvider is implemented by games that describe their key bindings.
type ControlsProvider interface {
	Controls() string
}

// GameInfo describes a registered game.
type GameInfo struct {
	ID       string
	Title    string
	Controls string
}

// Factory creates a fresh game instance.
type Factory func() Game

var (
	mu        sync.RWMutex
	factories = make(map[string]Factory)
	infos     = make(map[string]GameInfo)
)

// Register adds a game factory. It panics on a duplicate ID.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}

	factories[id] = f

	// Metadata comes from a throwaway instance
	g := f()
	info := GameInfo{ID: id, Title: g.Title()}
	if cp, ok := g.(ControlsProvider); ok {
		info.Controls = cp.Controls()
	}
	infos[id] = info
}

// List returns all registered games sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(infos))
	for _, info := range infos {
		result = append(result, info)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})
	return result
}

// Info returns the metadata of a registered game.
func Info(id string) (GameInfo, bool) {
	mu.RLock()
	defer mu.RUnlock()

	info, ok := infos[id]
	return info, ok
}

// Create instantiates a game by ID.
func Create(id string) (Game, error) {
	mu.RLock()
	f, ok := factories[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownGame, id)
	}
	return f(), nil
}

// Exists reports whether a game is registered under id.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
