package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/registry"
)

// Options tune a Model beyond the runtime config.
type Options struct {
	// Logger receives platform events. Nil disables logging.
	Logger *log.Logger

	// ScreenshotDir is where ctrl+s writes text screenshots.
	// Empty means ~/.tetris/screenshots.
	ScreenshotDir string
}

// Model is the Bubble Tea model that drives one game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	config     core.RuntimeConfig
	keys       KeyMap
	help       help.Model
	inputFrame core.InputFrame
	gameState  core.GameState
	logger     *log.Logger
	shotDir    string
	quitting   bool
}

// NewModel creates a model for the given game. A zero seed is replaced by
// the current time.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts Options) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	h := help.New()
	h.Styles.ShortKey = helpStyle
	h.Styles.ShortDesc = helpStyle
	h.Styles.FullKey = helpStyle
	h.Styles.FullDesc = helpStyle

	m := Model{
		game:       game,
		config:     cfg,
		keys:       DefaultKeyMap(),
		help:       h,
		inputFrame: core.NewInputFrame(),
		logger:     logger,
		shotDir:    opts.ScreenshotDir,
	}
	m.screen = core.NewScreen(cfg.ScreenW, m.playHeight())
	m.help.Width = cfg.ScreenW
	return m
}

// Init resets the game and starts the tick loop.
func (m Model) Init() tea.Cmd {
	cfg := m.config
	cfg.ScreenH = m.playHeight()
	m.game.Reset(cfg)
	m.logger.Debug("game started", "game", m.game.ID(), "seed", cfg.Seed, "tick_rate", cfg.TickRate)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg.Width, msg.Height)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey queues game actions and handles platform keys.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Screenshot):
		m.saveScreenshot()
		return m, nil
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m.handleResize(m.config.ScreenW, m.config.ScreenH)
	}

	action := m.keys.Action(msg)
	switch action {
	case core.ActionNone:
		return m, nil
	case core.ActionQuit:
		m.quitting = true
		m.logger.Debug("quit", "game", m.game.ID(), "score", m.gameState.Score)
		return m, tea.Quit
	}

	m.inputFrame.Set(action)
	return m, nil
}

// handleResize updates the screen buffer and tells the game about the new
// size. Games that cannot resize in place are reset.
func (m Model) handleResize(w, h int) (tea.Model, tea.Cmd) {
	m.config.ScreenW = w
	m.config.ScreenH = h
	m.help.Width = w

	playH := m.playHeight()
	m.screen.Resize(w, playH)

	if r, ok := m.game.(registry.Resizer); ok {
		r.Resize(w, playH)
		return m, nil
	}

	cfg := m.config
	cfg.ScreenH = playH
	m.game.Reset(cfg)
	return m, nil
}

// handleTick advances the game by one step with the input gathered since
// the previous tick.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	prev := m.gameState
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.inputFrame.Clear()

	if m.gameState.GameOver && !prev.GameOver {
		m.logger.Info("game over", "game", m.game.ID(), "score", m.gameState.Score, "level", m.gameState.Level)
	}

	return m, tickCmd(m.config.TickRate)
}

// playHeight is the number of rows left for the game after the help view.
func (m Model) playHeight() int {
	h := m.config.ScreenH - m.helpHeight()
	if h < 0 {
		h = 0
	}
	return h
}

func (m Model) helpHeight() int {
	if !m.help.ShowAll {
		return 1
	}
	rows := 0
	for _, col := range m.keys.FullHelp() {
		rows = max(rows, len(col))
	}
	return rows
}

// saveScreenshot writes the current screen to a text file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	dir := m.shotDir
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			m.logger.Warn("screenshot skipped", "error", err)
			return
		}
		dir = filepath.Join(home, ".tetris", "screenshots")
	}

	path, err := writeScreenshot(dir, m.game.ID(), m.screen, time.Now())
	if err != nil {
		m.logger.Warn("screenshot failed", "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// writeScreenshot stores the plain-text screen under dir and returns the
// file path.
func writeScreenshot(dir, gameID string, s *core.Screen, at time.Time) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create screenshot dir: %w", err)
	}

	name := fmt.Sprintf("%s_%s.txt", gameID, at.Format("20060102_150405"))
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(s.String()), 0o600); err != nil {
		return "", fmt.Errorf("write screenshot: %w", err)
	}
	return path, nil
}

// View renders the game followed by the key help.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)

	var sb strings.Builder
	sb.WriteString(RenderScreen(m.screen))
	sb.WriteByte('\n')
	sb.WriteString(m.help.View(m.keys))
	return sb.String()
}

// GameState returns the state reported by the last tick.
func (m Model) GameState() core.GameState {
	return m.gameState
}

// Run starts a Bubble Tea program on the local terminal.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) error {
	p := tea.NewProgram(
		NewModel(game, cfg, opts),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
