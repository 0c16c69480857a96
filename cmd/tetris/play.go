package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/games/tetris"
	"github.com/vovakirdan/tui-tetris/internal/platform/tui"
)

var (
	flagConfig     string
	flagDifficulty string
	flagShotDir    string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Start a game in the current terminal.

Controls:
  ←/→ or A/D     - Move
  ↓ or S         - Soft drop
  Space          - Hard drop
  ↑, W or X      - Rotate clockwise
  Z              - Rotate counter-clockwise
  G              - Toggle ghost piece
  Enter          - Start
  P/Esc          - Pause
  R              - Restart (after game over)
  Ctrl+S         - Save a text screenshot
  ?              - Toggle full help
  Q/Ctrl+C       - Quit

Difficulty options:
  easy   - Ghost on, three preview pieces, slower acceleration
  normal - Values from the config file
  hard   - Ghost off, faster start and acceleration
  fixed  - Gravity never speeds up

Config search order:
  --config path, ~/.tetris/configs/tetris.yaml, ./configs/tetris.yaml,
  then the embedded defaults.

Examples:
  tetris play
  tetris play --difficulty easy
  tetris play --config ./my-tetris.yaml
  tetris play --seed 42 --log-file tetris.log --log-level debug`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().StringVar(&flagShotDir, "screenshots", "", "Directory for ctrl+s screenshots (default ~/.tetris/screenshots)")
}

func runPlay(_ *cobra.Command, _ []string) error {
	// The terminal belongs to the game, so logs only go to --log-file.
	logger, closeLog, err := newLogger("tetris", io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()

	cfg, err := loadEffectiveConfig()
	if err != nil {
		return err
	}

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width, height = w, h
	}

	runtime := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	logger.Info("starting", "size", fmt.Sprintf("%dx%d", width, height), "fps", flagFPS, "difficulty", flagDifficulty)

	game := tetris.NewWithConfig(cfg)
	if err := tui.Run(game, runtime, tui.Options{Logger: logger, ScreenshotDir: flagShotDir}); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}

// loadEffectiveConfig loads the game config from --config or the search
// path and applies the --difficulty preset.
func loadEffectiveConfig() (config.TetrisConfig, error) {
	preset, err := config.ParseDifficulty(flagDifficulty)
	if err != nil {
		return config.TetrisConfig{}, err
	}

	cfg, _, err := config.LoadTetris(flagConfig)
	if err != nil {
		return config.TetrisConfig{}, err
	}

	config.ApplyTetrisPreset(&cfg, preset)
	return cfg, nil
}
